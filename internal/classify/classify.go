package classify

import (
	"strings"

	"retab/internal/extract"
	"retab/pkg/model"
)

// Detect 按固定优先级判定请求的协议形态，首个命中的规则即生效：
// WebSocket → GraphQL → SOAP → REST（兜底）。
func Detect(r extract.Structured) model.Shape {
	if strings.EqualFold(r.Headers.Get("upgrade"), "websocket") {
		return model.ShapeWebSocket
	}
	if looksGraphQL(r) {
		return model.ShapeGraphQL
	}
	if strings.Contains(strings.ToLower(r.Headers.Get("content-type")), "xml") && r.Body != "" {
		return model.ShapeSOAP
	}
	return model.ShapeREST
}

// looksGraphQL 判断是否为GraphQL请求：路径、查询串或JSON体中的query字段
func looksGraphQL(r extract.Structured) bool {
	if strings.Contains(strings.ToLower(r.Path), "graphql") {
		return true
	}
	if strings.Contains(strings.ToLower(r.Query), "query=") {
		return true
	}
	ct := strings.ToLower(r.Headers.Get("content-type"))
	return strings.Contains(ct, "application/json") && r.Body != "" && strings.Contains(r.Body, `"query"`)
}
