package extract

import (
	"strings"
	"unicode/utf8"

	"retab/pkg/traffic"
)

// 超过该大小的请求体视为不存在，避免对超大报文做子串扫描
const maxBodyBytes = 65536

// Structured 从原始请求提取出的结构化记录
type Structured struct {
	Method  string
	Path    string
	Query   string
	Headers traffic.Header
	Body    string
}

// Request 将捕获的原始请求提取为结构化记录。
// 任何一步失败都就地替换为默认值，绝不向上抛出。
func Request(c *traffic.Capture) Structured {
	r := Structured{
		Method:  "GET",
		Path:    "/",
		Headers: traffic.Header{},
	}
	if c == nil {
		return r
	}

	if m := methodFromLine(c.Lines); m != "" {
		r.Method = m
	}
	r.Path, r.Query = pathQuery(c)
	r.Headers = headerMap(c.Lines)
	r.Body = bodyText(c)
	return r
}

// methodFromLine 从起始行取HTTP方法，取不到返回空串
func methodFromLine(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	parts := strings.SplitN(lines[0], " ", 2)
	if len(parts) == 0 || parts[0] == "" {
		return ""
	}
	return parts[0]
}

// pathQuery 优先使用宿主预解析的URL，否则回退到切分起始行
func pathQuery(c *traffic.Capture) (string, string) {
	if c.URL != nil {
		p := c.URL.Path
		if p == "" {
			p = "/"
		}
		return traffic.TrimPath(p), c.URL.RawQuery
	}
	return pathQueryFromLine(c.Lines)
}

func pathQueryFromLine(lines []string) (string, string) {
	if len(lines) == 0 {
		return "/", ""
	}
	tokens := strings.Split(lines[0], " ")
	if len(tokens) < 2 || tokens[1] == "" {
		return "/", ""
	}
	raw := tokens[1]
	if sep := strings.IndexByte(raw, '?'); sep >= 0 {
		return traffic.TrimPath(raw[:sep]), raw[sep+1:]
	}
	return traffic.TrimPath(raw), ""
}

// headerMap 解析头部行：跳过起始行，按第一个冒号切分并归一化键名。
// 重复的头部以最后一次出现为准。
func headerMap(lines []string) traffic.Header {
	out := traffic.Header{}
	for i := 1; i < len(lines); i++ {
		line := lines[i]
		sep := strings.IndexByte(line, ':')
		if sep <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:sep])
		out[strings.ToLower(key)] = strings.TrimSpace(line[sep+1:])
	}
	return out
}

// bodyText 解码请求体。空体、超限或非法UTF-8都视为不存在，
// 从不做部分解码，以免把多字节序列截在码点中间。
func bodyText(c *traffic.Capture) string {
	chunk := c.Body()
	if len(chunk) == 0 || len(chunk) > maxBodyBytes {
		return ""
	}
	if !utf8.Valid(chunk) {
		return ""
	}
	return string(chunk)
}
