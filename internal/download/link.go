// Package download turns a byte payload into an inline download link.
package download

import (
	"encoding/base64"
	"errors"
	"fmt"
	"html"
	"io"
	"strings"
)

// ErrEncoding is returned when EncodeLinkFrom cannot read its payload.
var ErrEncoding = errors.New("encode download")

// maxPayload bounds what EncodeLinkFrom reads; data URIs beyond a few
// megabytes are refused by browsers.
const maxPayload = 8 << 20

// EncodeLink returns an HTML anchor whose href embeds data as base64 and
// whose download attribute names the file "<fileLabel>.pdf". Any byte slice
// is accepted; an empty one yields an empty payload.
func EncodeLink(data []byte, fileLabel, buttonLabel string) string {
	var b strings.Builder
	b.WriteString(`<a href="data:application/octet-stream;base64,`)
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	b.WriteString(`" download="`)
	b.WriteString(html.EscapeString(fileLabel))
	b.WriteString(`.pdf"><button type="button">`)
	b.WriteString(html.EscapeString(buttonLabel))
	b.WriteString(`</button></a>`)
	return b.String()
}

// EncodeLinkFrom reads the payload from r first.
func EncodeLinkFrom(r io.Reader, fileLabel, buttonLabel string) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxPayload+1))
	if err != nil {
		return "", fmt.Errorf("%w: read payload: %w", ErrEncoding, err)
	}
	if len(data) > maxPayload {
		return "", fmt.Errorf("%w: payload larger than %d bytes", ErrEncoding, maxPayload)
	}
	return EncodeLink(data, fileLabel, buttonLabel), nil
}
