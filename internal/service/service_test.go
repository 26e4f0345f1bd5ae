package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"retab/pkg/model"
	"retab/pkg/traffic"
)

const sampleHAR = `{"log":{"entries":[
  {"request":{"method":"GET","url":"https://example.com/api/users/42","headers":[]}},
  {"request":{"method":"POST","url":"https://example.com/graphql",
    "headers":[{"name":"Content-Type","value":"application/json"}],
    "postData":{"text":"{\"operationName\":\"GetUser\",\"query\":\"query GetUser{user{id}}\"}"}}}
]}}`

func newTestService(d model.Dispatcher) *Service {
	return New(Config{Options: model.DefaultOptions(), Dispatcher: d})
}

func TestLabelCaptureDispatches(t *testing.T) {
	var gotSvc traffic.Service
	var gotLabel string
	s := newTestService(func(svc traffic.Service, raw []byte, label string) error {
		gotSvc = svc
		gotLabel = label
		return nil
	})

	raw := traffic.ParseRaw([]byte("GET /api/users/42 HTTP/1.1\r\n\r\n"))
	label := s.LabelCapture(traffic.Service{Host: "example.com", Port: 443, TLS: true}, raw)

	assert.Equal(t, "GET-/api/users/{id}", label)
	assert.Equal(t, "GET-/api/users/{id}", gotLabel)
	assert.Equal(t, "example.com", gotSvc.Host)
}

func TestLabelCaptureSurvivesDispatchError(t *testing.T) {
	s := newTestService(func(traffic.Service, []byte, string) error {
		return assert.AnError
	})
	label := s.LabelCapture(traffic.Service{}, traffic.ParseRaw([]byte("GET / HTTP/1.1\r\n\r\n")))
	assert.Equal(t, "GET-/", label, "派发失败不影响标签返回")
}

func TestLabelHAR(t *testing.T) {
	s := newTestService(nil)
	annotated, results, err := s.LabelHAR([]byte(sampleHAR))
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "GET-/api/users/{id}", results[0].Label)
	assert.Equal(t, model.ShapeREST, results[0].Shape)
	assert.Equal(t, "POST-GetUser", results[1].Label)
	assert.Equal(t, model.ShapeGraphQL, results[1].Shape)

	assert.Equal(t, "GET-/api/users/{id}", gjson.GetBytes(annotated, "log.entries.0.comment").String())
	assert.Equal(t, "POST-GetUser", gjson.GetBytes(annotated, "log.entries.1.comment").String())
}

func TestLabelHARRejectsGarbage(t *testing.T) {
	s := newTestService(nil)
	_, _, err := s.LabelHAR([]byte("not a har"))
	assert.ErrorIs(t, err, ErrNotHAR)
}

func TestConfigureAndStats(t *testing.T) {
	s := newTestService(nil)
	opt := model.DefaultOptions()
	opt.IncludeMethodPrefix = false
	s.Configure(opt)

	label := s.LabelCapture(traffic.Service{}, traffic.ParseRaw([]byte("GET /api HTTP/1.1\r\n\r\n")))
	assert.Equal(t, "/api", label)

	stats := s.Stats()
	assert.Equal(t, int64(1), stats.Total)
}
