package download

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeLink(t *testing.T) {
	link := EncodeLink([]byte{0, 1}, "report", "Download")
	assert.Contains(t, link, "AAE=")
	assert.Contains(t, link, "report.pdf")
	assert.Contains(t, link, "data:application/octet-stream;base64,")
	assert.Contains(t, link, ">Download</button>")
}

func TestEncodeLinkEscapesLabels(t *testing.T) {
	link := EncodeLink([]byte("x"), `a"b`, "<b>Get</b>")
	assert.Contains(t, link, `download="a&#34;b.pdf"`)
	assert.Contains(t, link, "&lt;b&gt;Get&lt;/b&gt;")
	assert.NotContains(t, link, "<b>")
}

func TestEncodeLinkEmpty(t *testing.T) {
	for _, data := range [][]byte{nil, {}} {
		link := EncodeLink(data, "report", "Download")
		assert.Contains(t, link, `href="data:application/octet-stream;base64,"`)
		assert.Contains(t, link, `download="report.pdf"`)
	}

	link := EncodeLink([]byte{1}, "", "Download")
	assert.Contains(t, link, `download=".pdf"`)
	assert.Contains(t, link, "AQ==")

	link, err := EncodeLinkFrom(strings.NewReader(""), "empty", "Save")
	require.NoError(t, err)
	assert.Contains(t, link, `download="empty.pdf"`)
}

type failingReader struct{}

var errBroken = errors.New("broken pipe")

func (failingReader) Read([]byte) (int, error) { return 0, errBroken }

func TestEncodeLinkFrom(t *testing.T) {
	link, err := EncodeLinkFrom(strings.NewReader("pdf"), "guide", "Save")
	require.NoError(t, err)
	assert.Contains(t, link, base64.StdEncoding.EncodeToString([]byte("pdf")))

	_, err = EncodeLinkFrom(failingReader{}, "guide", "Save")
	assert.ErrorIs(t, err, ErrEncoding)
	assert.ErrorIs(t, err, errBroken)

	_, err = EncodeLinkFrom(bytes.NewReader(make([]byte, maxPayload+1)), "guide", "Save")
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestPlaceholderPDF(t *testing.T) {
	pdf := PlaceholderPDF()
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-1.4\n")))
	assert.True(t, bytes.HasSuffix(pdf, []byte("%%EOF\n")))

	xref := bytes.Index(pdf, []byte("xref\n"))
	require.Positive(t, xref)
	assert.Contains(t, string(pdf), "startxref\n"+strconv.Itoa(xref)+"\n")

	pdf[0] = 'X'
	assert.Equal(t, byte('%'), PlaceholderPDF()[0])
}
