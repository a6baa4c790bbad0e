package score

import (
	"bufio"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/errors"
)

const maxLineSize = 1 << 20

// ReadURLs reads one URL per line from r. Surrounding whitespace is trimmed
// and blank lines are skipped. A line that does not parse as a URL, or has no
// scheme, fails the whole read. URLs without a host are kept; the resolver
// skips them.
func ReadURLs(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var urls []string
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		u, err := url.Parse(line)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidURL, err, "line %d: %q is not a URL", n, line)
		}
		if !u.IsAbs() {
			return nil, errors.New(errors.ErrCodeInvalidURL, "line %d: %q has no scheme", n, line)
		}
		urls = append(urls, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read url list")
	}
	return urls, nil
}

// ReadURLFile opens path and reads it with [ReadURLs].
func ReadURLFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "url file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open url file %s", path)
	}
	defer f.Close()
	return ReadURLs(f)
}
