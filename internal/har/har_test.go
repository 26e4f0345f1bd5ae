package har

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const sampleHAR = `{
  "log": {
    "version": "1.2",
    "entries": [
      {
        "request": {
          "method": "POST",
          "url": "https://api.example.com/graphql",
          "headers": [
            {"name": "Content-Type", "value": "application/json"},
            {"name": "Authorization", "value": "Bearer tok1234"}
          ],
          "postData": {"text": "{\"operationName\":\"GetUser\"}"}
        }
      },
      {
        "request": {
          "method": "GET",
          "url": "http://example.com:8080/api/users/42?page=2",
          "headers": []
        }
      },
      {
        "request": {"method": "", "url": ""}
      }
    ]
  }
}`

func TestValid(t *testing.T) {
	assert.True(t, Valid([]byte(sampleHAR)))
	assert.False(t, Valid([]byte(`{"log":{}}`)))
	assert.False(t, Valid([]byte(`not json`)))
}

func TestParse(t *testing.T) {
	entries := Parse([]byte(sampleHAR))
	require.Len(t, entries, 2, "残缺条目被跳过")

	first := entries[0]
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, "api.example.com", first.Service.Host)
	assert.Equal(t, 443, first.Service.Port)
	assert.True(t, first.Service.TLS)
	assert.Equal(t, "POST /graphql HTTP/1.1", first.Capture.Lines[0])
	assert.Contains(t, first.Capture.Lines, "Content-Type: application/json")
	assert.Equal(t, `{"operationName":"GetUser"}`, string(first.Capture.Body()))
	require.NotNil(t, first.Capture.URL)
	assert.Equal(t, "/graphql", first.Capture.URL.Path)

	second := entries[1]
	assert.Equal(t, 1, second.Index)
	assert.Equal(t, "example.com", second.Service.Host)
	assert.Equal(t, 8080, second.Service.Port)
	assert.False(t, second.Service.TLS)
	assert.Equal(t, "GET /api/users/42?page=2 HTTP/1.1", second.Capture.Lines[0])
	assert.Empty(t, second.Capture.Body())
}

func TestParseGarbage(t *testing.T) {
	assert.Empty(t, Parse([]byte("totally broken")))
	assert.Empty(t, Parse([]byte(`{"log":{"entries":[]}}`)))
}

func TestAnnotate(t *testing.T) {
	out := Annotate([]byte(sampleHAR), map[int]string{
		0: "POST-GetUser",
		1: "GET-/api/users/{id}",
	})

	assert.Equal(t, "POST-GetUser", gjson.GetBytes(out, "log.entries.0.comment").String())
	assert.Equal(t, "GET-/api/users/{id}", gjson.GetBytes(out, "log.entries.1.comment").String())
	// 其余内容不受影响
	assert.Equal(t, "POST", gjson.GetBytes(out, "log.entries.0.request.method").String())
}
