package grader

import (
	"strconv"
	"strings"
)

const pointsMarker = "Points"

// ParseLogTotal recovers the platform-reported point total from a job
// log. The total appears only as free text, typically "Points 12/15", so
// this is a heuristic: first the text after the "Points" marker, then the
// first log line containing a "/", parsing the whitespace-delimited token
// right before the slash as an unsigned integer. The second value of the
// return is false when nothing parseable was found.
func ParseLogTotal(logText string) (int, bool) {
	if idx := strings.Index(logText, pointsMarker); idx >= 0 {
		if total, ok := parseBeforeSlash(logText[idx+len(pointsMarker):]); ok {
			return total, true
		}
	}

	for _, line := range strings.Split(logText, "\n") {
		if !strings.Contains(line, "/") {
			continue
		}
		return parseBeforeSlash(line)
	}

	return 0, false
}

func parseBeforeSlash(text string) (int, bool) {
	slash := strings.Index(text, "/")
	if slash < 0 {
		return 0, false
	}

	fields := strings.Fields(text[:slash])
	if len(fields) == 0 {
		return 0, false
	}

	total, err := strconv.ParseUint(fields[len(fields)-1], 10, 32)
	if err != nil {
		return 0, false
	}
	return int(total), true
}
