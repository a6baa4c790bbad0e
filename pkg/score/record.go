package score

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/metrics"
)

// Net score weights. They sum to 1.
const (
	WeightRampUp         = 0.05
	WeightCorrectness    = 0.10
	WeightBusFactor      = 0.10
	WeightResponsiveness = 0.25
	WeightLicense        = 0.50
)

// Record is the scored result for one input URL.
type Record struct {
	URL string
	metrics.Scores
	NetScore float64
}

// NewRecord builds a Record and computes its net score.
func NewRecord(url string, s metrics.Scores) Record {
	return Record{URL: url, Scores: s, NetScore: NetScore(s)}
}

// NetScore is the weighted sum of the sub-scores.
func NetScore(s metrics.Scores) float64 {
	return metrics.Clamp(WeightRampUp*s.RampUp +
		WeightCorrectness*s.Correctness +
		WeightBusFactor*s.BusFactor +
		WeightResponsiveness*s.Responsiveness +
		WeightLicense*s.License)
}

// Rank sorts records by net score, highest first. Ties keep input order.
func Rank(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) int {
		return cmp.Compare(b.NetScore, a.NetScore)
	})
}

// line fixes the key order of a rendered record.
type line struct {
	URL            string      `json:"URL"`
	NetScore       json.Number `json:"NET_SCORE"`
	RampUp         json.Number `json:"RAMP_UP_SCORE"`
	Correctness    json.Number `json:"CORRECTNESS_SCORE"`
	BusFactor      json.Number `json:"BUS_FACTOR_SCORE"`
	Responsiveness json.Number `json:"RESPONSIVE_MAINTAINER_SCORE"`
	License        json.Number `json:"LICENSE_SCORE"`
}

func number(v float64) json.Number {
	return json.Number(fmt.Sprintf("%.2f", v))
}

// Render writes one JSON object per record, one per line.
func Render(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, r := range records {
		err := enc.Encode(line{
			URL:            r.URL,
			NetScore:       number(r.NetScore),
			RampUp:         number(r.RampUp),
			Correctness:    number(r.Correctness),
			BusFactor:      number(r.BusFactor),
			Responsiveness: number(r.Responsiveness),
			License:        number(r.License),
		})
		if err != nil {
			return err
		}
	}
	return nil
}
