package name

import (
	"regexp"
	"strings"
)

var reXMLTag = regexp.MustCompile(`<([a-zA-Z][\w.-]*:)?([a-zA-Z][\w.-]*)`)

// 信封骨架标签不具备业务含义，取名时跳过
var soapSkip = map[string]bool{
	"envelope": true,
	"header":   true,
	"body":     true,
	"xml":      true,
}

// SOAP 扫描XML体中的开标签，取第一个有业务含义的标签名。
// 最多尝试8次，全部跳过则返回"SOAP-request"。
func SOAP(body string) string {
	pos := 0
	for i := 0; i < 8; i++ {
		loc := reXMLTag.FindStringSubmatchIndex(body[pos:])
		if loc == nil {
			break
		}
		tag := body[pos+loc[4] : pos+loc[5]]
		if !soapSkip[strings.ToLower(tag)] {
			return "SOAP-" + tag
		}
		pos += loc[1]
	}
	return "SOAP-request"
}
