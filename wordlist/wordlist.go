// Package wordlist loads word lists from local files or HTTP(S) URLs.
//
// A word list is one word per line. Lines are trimmed and lowercased,
// blank lines are dropped, and the input order is preserved so that scan
// results stay reproducible across runs.
package wordlist

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// ErrSourceUnavailable marks a word-list path or URL that cannot be read.
var ErrSourceUnavailable = errors.New("word list source unavailable")

// tracer writes to trace with key 'leetscan.wordlist'
func tracer() tracing.Trace {
	return tracing.Select("leetscan.wordlist")
}

// Load reads all words from source, which is either an http:// / https://
// URL or a local file path. Failures wrap ErrSourceUnavailable.
func Load(ctx context.Context, source string) ([]string, error) {
	var stream io.ReadCloser
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			resp.Body.Close()
			return nil, fmt.Errorf("%w: %s answered %s", ErrSourceUnavailable, source, resp.Status)
		}
		stream = resp.Body
	} else {
		file, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
		}
		stream = file
	}
	defer stream.Close()
	words, err := Read(stream)
	if err != nil {
		return nil, err
	}
	tracer().Infof("loaded %d words from %s", len(words), source)
	return words, nil
}

// Read collects words from an already open stream.
func Read(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return words, nil
}
