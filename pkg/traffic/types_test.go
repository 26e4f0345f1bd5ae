package traffic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderCaseInsensitive(t *testing.T) {
	h := Header{}
	h.Set("Content-Type", "text/xml")
	assert.Equal(t, "text/xml", h.Get("content-type"))
	assert.Equal(t, "text/xml", h.Get("CONTENT-TYPE"))
	h.Del("Content-type")
	assert.Empty(t, h.Get("content-type"))

	var nilHeader Header
	assert.Empty(t, nilHeader.Get("x"))
}

func TestParseRawCRLF(t *testing.T) {
	c := ParseRaw([]byte("POST /a HTTP/1.1\r\nHost: x\r\n\r\nbody"))
	require.Len(t, c.Lines, 2)
	assert.Equal(t, "POST /a HTTP/1.1", c.Lines[0])
	assert.Equal(t, "Host: x", c.Lines[1])
	assert.Equal(t, "body", string(c.Body()))
}

func TestParseRawLF(t *testing.T) {
	c := ParseRaw([]byte("GET / HTTP/1.1\nHost: x\n\npayload"))
	require.Len(t, c.Lines, 2)
	assert.Equal(t, "payload", string(c.Body()))
}

func TestParseRawNoBody(t *testing.T) {
	c := ParseRaw([]byte("GET / HTTP/1.1\r\nHost: x\r\n\r\n"))
	assert.Empty(t, c.Body())

	c = ParseRaw([]byte("GET / HTTP/1.1"))
	assert.Empty(t, c.Body())
	require.Len(t, c.Lines, 1)
}

func TestCaptureBodyBounds(t *testing.T) {
	c := &Capture{Raw: []byte("abc"), BodyOffset: -1}
	assert.Nil(t, c.Body())
	c.BodyOffset = 3
	assert.Nil(t, c.Body())

	var nilCapture *Capture
	assert.Nil(t, nilCapture.Body())
}

func TestTrimPath(t *testing.T) {
	assert.Equal(t, "/", TrimPath(""))
	assert.Equal(t, "/", TrimPath("/"))
	assert.Equal(t, "/a", TrimPath("/a/"))
	assert.Equal(t, "/a/b", TrimPath("/a/b"))
}
