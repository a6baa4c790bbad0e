package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/errors"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTestCases(t *testing.T) {
	tests := []struct {
		name          string
		log           string
		total, passed int
	}{
		{"empty", "", 0, 0},
		{"all pass", "ok metrics::ramp_up\nok metrics::correctness\n", 2, 2},
		{"mixed", "ok a\nFAILED b\nok c\nokay d\n", 4, 2},
		{"bare ok", "ok\n", 1, 1},
		{"leading space", " ok a\n", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, passed, err := TestCases(writeFile(t, "tests.txt", tt.log))
			if err != nil {
				t.Fatalf("TestCases() error = %v", err)
			}
			if total != tt.total || passed != tt.passed {
				t.Errorf("TestCases() = %d/%d, want %d/%d", passed, total, tt.passed, tt.total)
			}
		})
	}
}

func TestCodeCoverage(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		want    float64
		wantErr bool
	}{
		{"llvm-cov export", `{"data":[{"totals":{"lines":{"count":200,"covered":150,"percent":75.5}}}],"type":"llvm.coverage.json.export"}`, 75.5, false},
		{"zero", `{"data":[{"totals":{"lines":{"percent":0}}}]}`, 0, false},
		{"no data", `{"data":[]}`, 0, true},
		{"no percent", `{"data":[{"totals":{"lines":{}}}]}`, 0, true},
		{"not json", `coverage: 75%`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CodeCoverage(writeFile(t, "cov.json", tt.json))
			if (err != nil) != tt.wantErr {
				t.Fatalf("CodeCoverage() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("CodeCoverage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	logPath := writeFile(t, "tests.txt", "ok a\nok b\nFAILED c\n")
	covPath := writeFile(t, "cov.json", `{"data":[{"totals":{"lines":{"percent":81.234}}}]}`)

	s, err := Build(logPath, covPath)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := "2/3 test cases passed. 81.23% line coverage achieved."
	if s.String() != want {
		t.Errorf("String() = %q, want %q", s.String(), want)
	}

	_, err = Build(filepath.Join(t.TempDir(), "missing"), covPath)
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Build(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}
