package traffic

import (
	"bytes"
	"net/url"
	"strings"
)

// Service 目标服务描述：主机、端口、是否TLS
type Service struct {
	Host string `json:"host"`
	Port int    `json:"port"`
	TLS  bool   `json:"tls"`
}

// Header 封装通用的头部操作
type Header map[string]string

// Get 获取指定 Header 的值（大小写不敏感）
func (h Header) Get(key string) string {
	if h == nil {
		return ""
	}
	return h[strings.ToLower(key)]
}

// Set 设置指定 Header 的值（自动转换为小写）
func (h Header) Set(key, value string) {
	h[strings.ToLower(key)] = value
}

// Del 删除指定 Header
func (h Header) Del(key string) {
	delete(h, strings.ToLower(key))
}

// Capture 中立的原始请求模型：宿主捕获到的一次HTTP请求
type Capture struct {
	Lines      []string // 头部行序列，第0行为起始行 METHOD PATH VERSION
	BodyOffset int      // 请求体在 Raw 中的字节偏移
	Raw        []byte   // 完整原始请求字节
	URL        *url.URL // 可选：宿主预解析的URL
}

// Body 返回请求体字节范围，偏移越界时返回nil
func (c *Capture) Body() []byte {
	if c == nil || c.BodyOffset < 0 || c.BodyOffset >= len(c.Raw) {
		return nil
	}
	return c.Raw[c.BodyOffset:]
}

// ParseRaw 将完整的原始HTTP请求字节切分为捕获模型
func ParseRaw(raw []byte) *Capture {
	head := raw
	offset := len(raw)
	if idx := bytes.Index(raw, []byte("\r\n\r\n")); idx >= 0 {
		head = raw[:idx]
		offset = idx + 4
	} else if idx := bytes.Index(raw, []byte("\n\n")); idx >= 0 {
		head = raw[:idx]
		offset = idx + 2
	}

	var lines []string
	for _, line := range strings.Split(string(head), "\n") {
		line = strings.TrimRight(line, "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return &Capture{Lines: lines, BodyOffset: offset, Raw: raw}
}

// TrimPath 去掉路径末尾的斜杠，根路径保持为 "/"
func TrimPath(p string) string {
	if p == "" {
		return "/"
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		return p[:len(p)-1]
	}
	return p
}
