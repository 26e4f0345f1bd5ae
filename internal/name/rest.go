package name

import (
	"regexp"
	"strings"

	"retab/pkg/model"
	"retab/pkg/traffic"
)

var (
	reDigits = regexp.MustCompile(`^\d+$`)
	reUUID   = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-`)
	reHex24  = regexp.MustCompile(`^[0-9a-fA-F]{24,}$`)
)

// REST 合成通用REST请求的标签：方法前缀 + 归一化路径 + 内容类型提示
// + 可选的查询串与认证提示。
func REST(method, path, query string, headers traffic.Header, opt model.Options) string {
	if override := headers.Get("x-http-method-override"); override != "" {
		method = strings.ToUpper(override)
	}

	path = traffic.TrimPath(path)
	if opt.NormalizeIDs {
		path = normalizeIDs(path)
	}

	var b strings.Builder
	if opt.IncludeMethodPrefix {
		b.WriteString(method)
		b.WriteString("-")
	}
	if path == "" {
		path = "/"
	}
	b.WriteString(path)

	ct := strings.ToLower(headers.Get("content-type"))
	if strings.Contains(ct, "multipart/form-data") {
		b.WriteString("[multi]")
	} else if strings.Contains(ct, "x-www-form-urlencoded") {
		b.WriteString("[form]")
	}

	if opt.IncludeQueryString && query != "" {
		b.WriteString("?")
		if len(query) > 30 {
			query = query[:30]
		}
		b.WriteString(query)
	}

	if opt.IncludeAuthHint {
		if hint := AuthHint(headers.Get("authorization")); hint != "" {
			b.WriteString(hint)
		}
	}

	return b.String()
}

// normalizeIDs 把纯数字、UUID前缀或24位以上十六进制的路径段替换为{id}
func normalizeIDs(path string) string {
	segs := strings.Split(path, "/")
	for i, s := range segs {
		if s == "" {
			continue
		}
		if reDigits.MatchString(s) || reUUID.MatchString(s) || reHex24.MatchString(s) {
			segs[i] = "{id}"
		}
	}
	return strings.Join(segs, "/")
}
