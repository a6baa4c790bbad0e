package metrics

import (
	"math"
	"slices"

	"github.com/montanaflynn/stats"
)

// rampUpPeak normalizes the ramp-up curve so a 150 line README scores 1.
const rampUpPeak = 0.2613

// CompatibleLicenses lists the SPDX identifiers compatible with LGPL-2.1.
var CompatibleLicenses = []string{
	"LGPL-2.1-only",
	"LGPL-2.1",
	"LGPL-2.1-or-later",
	"LGPL-3.0-only",
	"LGPL-3.0",
	"BSD-3-Clause",
	"MIT",
	"X11",
	"CC0-1.0",
	"Unlicense",
}

// Clamp forces v into [0,1]. NaN becomes 0.
func Clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// RampUp scores README length. It peaks near 150 lines and falls off
// towards 0 for empty and very long files.
func RampUp(lines int) float64 {
	if lines <= 0 {
		return 0
	}
	x := float64(lines) / 150 * 0.7
	return Clamp(stats.NormPdf(x, 0, 1) * math.Sqrt(x) / rampUpPeak)
}

// Correctness is the share of closed issues, pull requests excluded.
func Correctness(all, closed int) float64 {
	if all <= 0 || closed < 0 || all < closed {
		return 0
	}
	return Clamp(float64(closed) / float64(all))
}

// BusFactor grows with the number of users who can be mentioned in the
// repository: 0 for one or none, approaching 1 for many.
func BusFactor(users int) float64 {
	n := float64(users)
	return Clamp(2*n/(n+1) - 1)
}

// Responsiveness maps the number of pull requests updated in the last year
// through the standard normal CDF, centred at 26.
func Responsiveness(pulls int) float64 {
	return Clamp(stats.NormCdf(float64(pulls)/13-2, 0, 1))
}

// Compatibility is 1 when spdx is in [CompatibleLicenses], else 0.
func Compatibility(spdx string) float64 {
	if slices.Contains(CompatibleLicenses, spdx) {
		return 1
	}
	return 0
}
