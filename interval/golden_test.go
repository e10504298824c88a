package interval

import (
	"encoding/json"
	"flag"
	"os"
	"testing"
	"time"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

type goldenCase struct {
	Name    string `json:"name"`
	Input   string `json:"input"`
	Date    string `json:"date,omitempty"` // RFC 3339 reference date; empty disallows calendar units
	Seconds int64  `json:"seconds"`
	Error   string `json:"error,omitempty"`
}

const goldenPath = "../data/golden/interval.json"

// runGoldenCase parses the case's input under its date policy.
func runGoldenCase(t *testing.T, tc goldenCase) (time.Duration, error) {
	t.Helper()
	if tc.Date == "" {
		return Parse(tc.Input)
	}
	date, err := time.Parse(time.RFC3339, tc.Date)
	if err != nil {
		t.Fatalf("bad reference date %q: %v", tc.Date, err)
	}
	return ParseWithDate(tc.Input, date)
}

func TestGolden(t *testing.T) {
	if *updateGolden {
		updateGoldenFile(t)
		return
	}

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skip("golden file not found, run with -update to generate")
		}
		t.Fatalf("reading golden file: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			got, err := runGoldenCase(t, tc)

			if tc.Error != "" {
				if err == nil {
					t.Fatalf("got %v, want error %q", got, tc.Error)
				}
				if err.Error() != tc.Error {
					t.Errorf("error: got %q, want %q", err.Error(), tc.Error)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gotSecs := int64(got / time.Second); gotSecs != tc.Seconds {
				t.Errorf("got %d seconds, want %d", gotSecs, tc.Seconds)
			}
		})
	}
}

func updateGoldenFile(t *testing.T) {
	t.Helper()

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("reading golden file for update: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file for update: %v", err)
	}

	for i := range cases {
		tc := &cases[i]
		got, err := runGoldenCase(t, *tc)
		if err != nil {
			tc.Seconds = 0
			tc.Error = err.Error()
		} else {
			tc.Seconds = int64(got / time.Second)
			tc.Error = ""
		}
	}

	out, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		t.Fatalf("marshaling golden data: %v", err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(goldenPath, out, 0644); err != nil {
		t.Fatalf("writing golden file: %v", err)
	}

	t.Log("golden file updated, review with: git diff data/golden/interval.json")
}
