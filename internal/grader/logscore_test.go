package grader

import (
	"testing"
)

func TestParseLogTotalPointsMarker(t *testing.T) {
	cases := []struct {
		name string
		log  string
		want int
	}{
		{"plain", "some output\nPoints 12/15\nmore output", 12},
		{"attached", "Total Points: 12/15", 12},
		{"zero", "Points 0/15", 0},
		{"full", "🏆 Points 15/15", 15},
	}

	for _, tc := range cases {
		total, ok := ParseLogTotal(tc.log)
		if !ok {
			t.Errorf("%s: expected a parse, got none", tc.name)
			continue
		}
		if total != tc.want {
			t.Errorf("%s: invalid total %d, expected %d", tc.name, total, tc.want)
		}
	}
}

func TestParseLogTotalLineFallback(t *testing.T) {
	// No "Points" marker, but a slash line carries the total.
	total, ok := ParseLogTotal("test run finished\nscore 7/15 achieved\n")
	if !ok || total != 7 {
		t.Fatalf("Invalid fallback parse: %d (%v), expected 7", total, ok)
	}
}

func TestParseLogTotalNoMatch(t *testing.T) {
	logs := []string{
		"",
		"all tests passed",
		"Points without any slash",
		"path is a\\b\\c",
	}
	for _, log := range logs {
		if total, ok := ParseLogTotal(log); ok {
			t.Errorf("Unexpected parse of %q: %d", log, total)
		}
	}
}

func TestParseLogTotalGarbageToken(t *testing.T) {
	// Token before the slash is not an unsigned integer.
	if total, ok := ParseLogTotal("Points abc/15"); ok {
		t.Fatalf("Unexpected parse: %d", total)
	}
	if total, ok := ParseLogTotal("Points -3/15"); ok {
		t.Fatalf("Parsed a negative total: %d", total)
	}
}
