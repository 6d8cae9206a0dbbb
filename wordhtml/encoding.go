package wordhtml

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// decodedReader wraps r so the tree parser always sees UTF-8, and reports
// the charset name actually used. Word exports arrive in windows-1252 as
// often as UTF-8, so the encoding must be settled before tree parsing. An
// explicit override wins; otherwise the encoding is sniffed from the BOM,
// meta tags, and content heuristics. An unknown override name is a
// configuration error, not a degradation.
func decodedReader(r io.Reader, override string) (io.Reader, string, error) {
	if override != "" {
		enc, err := htmlindex.Get(override)
		if err != nil {
			return nil, "", fmt.Errorf("unknown charset %q: %w", override, err)
		}
		name, _ := htmlindex.Name(enc)
		return transform.NewReader(r, enc.NewDecoder()), name, nil
	}

	br := bufio.NewReader(r)
	peek, err := br.Peek(1024)
	if err != nil && err != io.EOF {
		return nil, "", fmt.Errorf("sniffing charset: %w", err)
	}
	enc, name, _ := charset.DetermineEncoding(peek, "")
	return transform.NewReader(br, enc.NewDecoder()), name, nil
}
