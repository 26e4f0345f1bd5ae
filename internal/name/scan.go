package name

import (
	"net/url"
	"strings"
)

// extractJSONString 按键名定点提取JSON字符串值，不经过完整解析，
// 因此对残缺或畸形的JSON同样安全。值为字面量"null"时视为不存在。
func extractJSONString(text, key string) string {
	tag := `"` + key + `"`
	i := strings.Index(text, tag)
	if i < 0 {
		return ""
	}
	rest := strings.TrimLeft(text[i+len(tag):], " \t\r\n")
	if rest == "" || rest[0] != ':' {
		return ""
	}
	rest = strings.TrimLeft(rest[1:], " \t\r\n")
	if rest == "" || rest[0] != '"' {
		return ""
	}
	end := strings.IndexByte(rest[1:], '"')
	if end < 0 {
		return ""
	}
	val := rest[1 : 1+end]
	if val == "null" {
		return ""
	}
	return val
}

// queryValue 从查询串中提取单个参数值，不构建完整字典。
// 解码失败时返回原始值。
func queryValue(qs, key string) string {
	search := key + "="
	i := strings.Index(qs, search)
	for i >= 0 {
		if i == 0 || qs[i-1] == '&' {
			start := i + len(search)
			raw := qs[start:]
			if end := strings.IndexByte(raw, '&'); end >= 0 {
				raw = raw[:end]
			}
			if dec, err := url.QueryUnescape(raw); err == nil {
				return dec
			}
			return raw
		}
		next := strings.Index(qs[i+1:], search)
		if next < 0 {
			break
		}
		i = i + 1 + next
	}
	return ""
}
