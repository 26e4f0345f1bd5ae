package labeler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retab/pkg/model"
	"retab/pkg/traffic"
)

func newEngine() *Engine {
	return New(model.DefaultOptions(), nil)
}

func label(t *testing.T, e *Engine, raw string) Result {
	t.Helper()
	return e.Label(traffic.Service{Host: "example.com", Port: 443, TLS: true}, traffic.ParseRaw([]byte(raw)))
}

func TestLabelRESTWithIDNormalization(t *testing.T) {
	res := label(t, newEngine(), "GET /api/users/42 HTTP/1.1\r\nHost: example.com\r\n\r\n")
	assert.Equal(t, "GET-/api/users/{id}", res.Label)
	assert.Equal(t, model.ShapeREST, res.Shape)
	assert.Equal(t, "GET", res.Method)
}

func TestLabelGraphQLOperation(t *testing.T) {
	raw := "POST /api HTTP/1.1\r\nContent-Type: application/json\r\n\r\n" +
		`{"operationName":"GetUser","query":"query GetUser{user{id}}"}`
	res := label(t, newEngine(), raw)
	assert.Equal(t, "POST-GetUser", res.Label)
	assert.Equal(t, model.ShapeGraphQL, res.Shape)
}

func TestLabelSOAP(t *testing.T) {
	raw := "POST /ws HTTP/1.1\r\nContent-Type: text/xml\r\n\r\n" +
		`<soapenv:Envelope><soapenv:Body><GetBalance/></soapenv:Body></soapenv:Envelope>`
	res := label(t, newEngine(), raw)
	assert.Equal(t, "SOAP-GetBalance", res.Label)
	assert.Equal(t, model.ShapeSOAP, res.Shape)
}

func TestLabelWebSocket(t *testing.T) {
	raw := "GET /live/feed/ HTTP/1.1\r\nUpgrade: websocket\r\nConnection: Upgrade\r\n\r\n"
	res := label(t, newEngine(), raw)
	assert.Equal(t, "WS-/live/feed", res.Label)
	assert.Equal(t, model.ShapeWebSocket, res.Shape)
}

func TestLabelAuthHintSuffix(t *testing.T) {
	raw := "GET /v1/accounts HTTP/1.1\r\nAuthorization: Bearer abcd1234efgh\r\n\r\n"
	res := label(t, newEngine(), raw)
	assert.True(t, strings.HasSuffix(res.Label, "[..efgh]"), res.Label)
}

func TestLabelDeduplicates(t *testing.T) {
	e := newEngine()
	raw := "GET /api/users HTTP/1.1\r\n\r\n"
	assert.Equal(t, "GET-/api/users", label(t, e, raw).Label)
	assert.Equal(t, "GET-/api/users (2)", label(t, e, raw).Label)
	assert.Equal(t, "GET-/api/users (3)", label(t, e, raw).Label)
}

func TestLabelTruncatesLongPath(t *testing.T) {
	path := "/very/long" + strings.Repeat("/segment", 12) + "/resource"
	res := label(t, newEngine(), "POST "+path+" HTTP/1.1\r\n\r\n")
	assert.LessOrEqual(t, len(res.Label), 60)
	assert.True(t, strings.HasPrefix(res.Label, "POST-"), res.Label)
	assert.True(t, strings.HasSuffix(res.Label, "/resource"), res.Label)
}

func TestLabelNilCapture(t *testing.T) {
	// 完全没有输入也必须产出标签
	res := newEngine().Label(traffic.Service{}, nil)
	assert.Equal(t, "GET-/", res.Label)
}

func TestConfigureBounds(t *testing.T) {
	e := newEngine()
	opt := model.DefaultOptions()

	opt.MaxLabelLength = 500
	e.Configure(opt)
	assert.Equal(t, model.DefaultLabelLength, e.Options().MaxLabelLength, "越界值保持原值")

	opt.MaxLabelLength = 10
	e.Configure(opt)
	assert.Equal(t, 10, e.Options().MaxLabelLength)

	opt.MaxLabelLength = 3
	e.Configure(opt)
	assert.Equal(t, 10, e.Options().MaxLabelLength)
}

func TestStats(t *testing.T) {
	e := newEngine()
	label(t, e, "GET /a HTTP/1.1\r\n\r\n")
	label(t, e, "GET /b HTTP/1.1\r\nUpgrade: websocket\r\n\r\n")

	stats := e.Stats()
	require.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.ByShape[model.ShapeREST])
	assert.Equal(t, int64(1), stats.ByShape[model.ShapeWebSocket])
	assert.Equal(t, 2, stats.CacheSize)
}
