package blame

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

const TimestampLayout = "2006-01-02 15:04:05 -0700"

type Attribution struct {
	Author    string
	Timestamp time.Time
}

// ParseLine parses one line of default git blame output:
//
//	<hash> (<author> <date> <time> <tz> <line>) <code>
//
// The author may contain spaces, so the fields are taken from the right.
func ParseLine(line string) (*Attribution, error) {
	start := strings.IndexByte(line, '(')
	if start < 0 {
		return nil, newError(ErrMalformedLine, "", errors.Errorf("missing '(' in %q", line))
	}

	end := strings.IndexByte(line[start+1:], ')')
	if end < 0 {
		return nil, newError(ErrMalformedLine, "", errors.Errorf("missing ')' in %q", line))
	}

	info := strings.TrimSpace(line[start+1 : start+1+end])

	if len(strings.Fields(info)) < 5 {
		return nil, newError(ErrMalformedLine, "", errors.Errorf("expected author, date, time, timezone and line in %q", info))
	}

	rest, _ := cutLast(info)
	rest, tz := cutLast(rest)
	rest, hms := cutLast(rest)
	author, date := cutLast(rest)

	ts, err := time.Parse(TimestampLayout, date+" "+hms+" "+tz)
	if err != nil {
		return nil, newError(ErrTimestamp, "", err)
	}

	return &Attribution{
		Author:    author,
		Timestamp: ts.UTC(),
	}, nil
}

// cutLast splits s at its last space. Runs of spaces around the cut are dropped,
// so padded output still yields clean tokens.
func cutLast(s string) (string, string) {
	i := strings.LastIndexByte(s, ' ')
	if i < 0 {
		return "", s
	}

	return strings.TrimRight(s[:i], " "), s[i+1:]
}
