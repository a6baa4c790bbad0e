// Package report summarizes test runs for the report command.
//
// Two inputs are read: a plain-text test log where every line is one test
// case and passing lines start with the token "ok", and an llvm-cov style
// JSON export carrying data[0].totals.lines.percent.
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/errors"
)

// Summary is the combined result of a test log and a coverage export.
type Summary struct {
	Total    int
	Passed   int
	Coverage float64 // percent, 0-100
}

// String renders the one-line report.
func (s Summary) String() string {
	return fmt.Sprintf("%d/%d test cases passed. %.2f%% line coverage achieved.", s.Passed, s.Total, s.Coverage)
}

// Build reads both files into a Summary.
func Build(testLog, coverage string) (Summary, error) {
	total, passed, err := TestCases(testLog)
	if err != nil {
		return Summary{}, err
	}
	pct, err := CodeCoverage(coverage)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Total: total, Passed: passed, Coverage: pct}, nil
}

// TestCases counts the lines of the test log and those whose first
// space-separated token is "ok".
func TestCases(path string) (total, passed int, err error) {
	f, err := open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		total++
		first, _, _ := strings.Cut(sc.Text(), " ")
		if first == "ok" {
			passed++
		}
	}
	if err := sc.Err(); err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "read test log %s", path)
	}
	return total, passed, nil
}

type coverageExport struct {
	Data []struct {
		Totals struct {
			Lines struct {
				Percent *float64 `json:"percent"`
			} `json:"lines"`
		} `json:"totals"`
	} `json:"data"`
}

// CodeCoverage reads the line coverage percentage from a coverage export.
func CodeCoverage(path string) (float64, error) {
	f, err := open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var doc coverageExport
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse coverage %s", path)
	}
	if len(doc.Data) == 0 || doc.Data[0].Totals.Lines.Percent == nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "coverage %s has no data[0].totals.lines.percent", path)
	}
	return *doc.Data[0].Totals.Lines.Percent, nil
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "%s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	return f, nil
}
