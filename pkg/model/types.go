package model

import "retab/pkg/traffic"

// Shape 请求的协议形态
type Shape string

const (
	ShapeWebSocket Shape = "websocket"
	ShapeGraphQL   Shape = "graphql"
	ShapeSOAP      Shape = "soap"
	ShapeREST      Shape = "rest"
)

// Options 标签生成选项，由调用方按次注入
type Options struct {
	IncludeMethodPrefix bool `json:"includeMethodPrefix"`
	IncludeQueryString  bool `json:"includeQueryString"`
	NormalizeIDs        bool `json:"normalizeIds"`
	IncludeAuthHint     bool `json:"includeAuthHint"`
	MaxLabelLength      int  `json:"maxLabelLength"`
}

// 标签长度上限的取值边界
const (
	MinLabelLength     = 10
	MaxLabelLengthCap  = 200
	DefaultLabelLength = 60
)

// DefaultOptions 返回默认选项
func DefaultOptions() Options {
	return Options{
		IncludeMethodPrefix: true,
		IncludeQueryString:  false,
		NormalizeIDs:        true,
		IncludeAuthHint:     true,
		MaxLabelLength:      DefaultLabelLength,
	}
}

// EngineStats 引擎统计信息
type EngineStats struct {
	Total       int64           `json:"total"`
	ByShape     map[Shape]int64 `json:"byShape"`
	CacheSize   int             `json:"cacheSize"`
	CacheResets int64           `json:"cacheResets"`
}

// LabeledEntry HAR批量标注的单条结果
type LabeledEntry struct {
	Index int    `json:"index"`
	Label string `json:"label"`
	Shape Shape  `json:"shape"`
}

// Dispatcher 宿主提供的回调：以标签label创建一份可编辑的请求副本
type Dispatcher func(svc traffic.Service, raw []byte, label string) error
