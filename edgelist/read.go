package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/apclust/affinity"
)

// MaxLineBytes bounds a single input line. Longer lines fail with
// ErrUnreadableSource.
const MaxLineBytes = 1 << 20

// Read parses links from r for a universe of n nodes. Reading stops at the
// first line that does not start with two integers, blank lines included;
// only '#' header lines before the first link are skipped.
//
// Errors:
//   - affinity.ErrMalformedInput when a parsed index lies outside [0,n).
//   - ErrUnreadableSource when r fails mid-stream.
func Read(r io.Reader, n int) ([]affinity.Link, error) {
	var links []affinity.Link
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if len(links) == 0 && strings.HasPrefix(strings.TrimSpace(text), "#") {
			continue
		}
		link, ok := parseLink(text)
		if !ok {
			break
		}
		if link.Source < 0 || link.Source >= n || link.Target < 0 || link.Target >= n {
			return nil, fmt.Errorf("%w: line %d: %d→%d outside [0,%d)",
				affinity.ErrMalformedInput, line, link.Source, link.Target, n)
		}
		links = append(links, link)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrUnreadableSource, line+1, err)
	}

	return links, nil
}

// ReadFile opens path and reads it with Read.
func ReadFile(path string, n int) ([]affinity.Link, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadableSource, err)
	}
	defer f.Close()

	links, err := Read(f, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return links, nil
}

// parseLink reads the first two fields of text as integers.
func parseLink(text string) (affinity.Link, bool) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return affinity.Link{}, false
	}
	u, err := strconv.Atoi(fields[0])
	if err != nil {
		return affinity.Link{}, false
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return affinity.Link{}, false
	}

	return affinity.Link{Source: u, Target: v}, true
}
