package name

import (
	"encoding/base64"
	"strings"
)

// AuthHint 根据authorization头生成认证提示。
// Bearer取令牌末4位，Basic取用户名前8位；解码失败或方案未知时返回空串。
func AuthHint(val string) string {
	if val == "" {
		return ""
	}
	low := strings.ToLower(val)
	switch {
	case strings.HasPrefix(low, "bearer "):
		tok := strings.TrimSpace(val[7:])
		if len(tok) >= 4 {
			return "[.." + tok[len(tok)-4:] + "]"
		}
		return "[bearer]"
	case strings.HasPrefix(low, "basic "):
		raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(val[6:]))
		if err != nil {
			return ""
		}
		user := string(raw)
		if sep := strings.IndexByte(user, ':'); sep >= 0 {
			user = user[:sep]
		}
		if len(user) > 8 {
			user = user[:8]
		}
		return "[" + user + "]"
	}
	return ""
}
