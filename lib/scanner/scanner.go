package scanner

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/go-enry/go-enry/v2"
	"github.com/pkg/errors"
)

var (
	ErrFileUnreadable = errors.New("file unreadable")
	ErrNotText        = errors.New("not a text file")
)

var DefaultMarkers = []string{"// TODO", "# TODO"}

// binarySampleSize is how much of the file is checked to decide if it is text.
const binarySampleSize = 8000

type Scanner struct {
	markers []string
}

func New(extraMarkers ...string) *Scanner {
	markers := make([]string, 0, len(DefaultMarkers)+len(extraMarkers))
	markers = append(markers, DefaultMarkers...)
	for _, m := range extraMarkers {
		if m != "" {
			markers = append(markers, m)
		}
	}

	return &Scanner{
		markers: markers,
	}
}

func (s *Scanner) Matches(line string) bool {
	for _, m := range s.markers {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}

// ScanFile calls found for every line of the file that contains a marker.
// Line numbers are 1-based and count every physical line, including lines that
// are not valid UTF-8, which are skipped.
func (s *Scanner) ScanFile(path string, found func(line int, text string)) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(ErrFileUnreadable, "%v", err)
	}

	defer file.Close()

	return s.Scan(file, found)
}

func (s *Scanner) Scan(input io.Reader, found func(line int, text string)) error {
	reader := bufio.NewReaderSize(input, binarySampleSize)

	sample, err := reader.Peek(binarySampleSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return errors.Wrapf(ErrFileUnreadable, "%v", err)
	}

	if enry.IsBinary(sample) {
		return ErrNotText
	}

	for lineNumber := 1; ; lineNumber++ {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return errors.Wrapf(ErrFileUnreadable, "line %v: %v", lineNumber, err)
		}

		if line == "" && err == io.EOF {
			return nil
		}

		if utf8.ValidString(line) && s.Matches(line) {
			found(lineNumber, strings.TrimSpace(line))
		}

		if err == io.EOF {
			return nil
		}
	}
}
