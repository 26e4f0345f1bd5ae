package name

import "retab/pkg/traffic"

// WebSocket 合成WebSocket升级请求的标签
func WebSocket(path string) string {
	return "WS-" + traffic.TrimPath(path)
}
