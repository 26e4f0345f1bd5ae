// Package har 提供HAR导出文件与中立捕获模型之间的转换。
// 解析端刻意使用宽容的定点提取，单个残缺条目只会被跳过，
// 不会拖垮整个文件的处理。
package har

import (
	"bytes"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"retab/pkg/traffic"
)

// Entry HAR条目重建出的捕获及其来源下标
type Entry struct {
	Index   int // log.entries数组中的下标
	Service traffic.Service
	Capture *traffic.Capture
}

// Valid 判断字节流是否为可处理的HAR结构
func Valid(data []byte) bool {
	return gjson.GetBytes(data, "log.entries").IsArray()
}

// Parse 宽容地解析HAR字节流，跳过无法重建的条目
func Parse(data []byte) []Entry {
	var out []Entry
	idx := 0
	gjson.GetBytes(data, "log.entries").ForEach(func(_, e gjson.Result) bool {
		if en, ok := toEntry(idx, e); ok {
			out = append(out, en)
		}
		idx++
		return true
	})
	return out
}

// Annotate 把标签写回对应条目的comment字段
func Annotate(data []byte, labels map[int]string) []byte {
	out := data
	for idx, label := range labels {
		path := "log.entries." + strconv.Itoa(idx) + ".comment"
		if v, err := sjson.SetBytes(out, path, label); err == nil {
			out = v
		}
	}
	return out
}

// toEntry 从单个HAR条目重建起始行、头部行与请求体
func toEntry(idx int, e gjson.Result) (Entry, bool) {
	method := e.Get("request.method").String()
	rawURL := e.Get("request.url").String()
	if method == "" || rawURL == "" {
		return Entry{}, false
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		u = nil
	}

	target := rawURL
	svc := traffic.Service{}
	if u != nil {
		svc = serviceFromURL(u)
		target = u.RequestURI()
	}

	lines := []string{fmt.Sprintf("%s %s HTTP/1.1", method, target)}
	e.Get("request.headers").ForEach(func(_, h gjson.Result) bool {
		name := h.Get("name").String()
		if name != "" {
			lines = append(lines, name+": "+h.Get("value").String())
		}
		return true
	})

	body := e.Get("request.postData.text").String()

	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteString("\r\n")
	}
	buf.WriteString("\r\n")
	offset := buf.Len()
	buf.WriteString(body)

	return Entry{
		Index:   idx,
		Service: svc,
		Capture: &traffic.Capture{
			Lines:      lines,
			BodyOffset: offset,
			Raw:        buf.Bytes(),
			URL:        u,
		},
	}, true
}

func serviceFromURL(u *url.URL) traffic.Service {
	tls := strings.EqualFold(u.Scheme, "https") || strings.EqualFold(u.Scheme, "wss")
	port := 80
	if tls {
		port = 443
	}
	if p := u.Port(); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			port = n
		}
	}
	return traffic.Service{Host: u.Hostname(), Port: port, TLS: tls}
}
