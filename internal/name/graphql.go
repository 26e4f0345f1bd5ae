package name

import (
	"regexp"
	"strings"
)

var (
	reGQLOp = regexp.MustCompile(`(?:query|mutation|subscription)\s+([a-zA-Z0-9_]+)`)
	reHash  = regexp.MustCompile(`:\s*"([a-fA-F0-9]+)"`)
)

// GraphQL 合成GraphQL请求的标签。按优先级解析操作名：
// 体内operationName → 体内query声明 → 持久化查询哈希 → 查询串query参数，
// 全部失败时退化为字面量"graphql"。
func GraphQL(method, query, body string, methodPrefix bool) string {
	var op string
	if body != "" {
		op = gqlFromBody(body)
	}
	if op == "" && query != "" {
		op = gqlFromQuery(query)
	}
	if op == "" {
		return "graphql"
	}
	if methodPrefix {
		return method + "-" + op
	}
	return op
}

func gqlFromBody(body string) string {
	if op := extractJSONString(body, "operationName"); op != "" {
		return op
	}
	if raw := extractJSONString(body, "query"); raw != "" {
		if m := reGQLOp.FindStringSubmatch(raw); m != nil {
			return m[1]
		}
	}
	if h := persistedHash(body); h != "" {
		if len(h) > 6 {
			h = h[:6]
		}
		return "gql-" + h
	}
	return ""
}

func gqlFromQuery(q string) string {
	if val := queryValue(q, "query"); val != "" {
		if m := reGQLOp.FindStringSubmatch(val); m != nil {
			return m[1]
		}
	}
	return ""
}

// persistedHash 在sha256Hash键名之后的有限窗口内找一个带引号的十六进制串
func persistedHash(body string) string {
	idx := strings.Index(body, "sha256Hash")
	if idx < 0 {
		return ""
	}
	lo := idx + 10
	hi := idx + 90
	if lo > len(body) {
		return ""
	}
	if hi > len(body) {
		hi = len(body)
	}
	if m := reHash.FindStringSubmatch(body[lo:hi]); m != nil {
		return m[1]
	}
	return ""
}
