package labeler

import (
	"sync"
	"time"

	"retab/internal/classify"
	"retab/internal/dedupe"
	"retab/internal/extract"
	"retab/internal/logger"
	"retab/internal/name"
	"retab/pkg/model"
	"retab/pkg/traffic"
)

// FallbackLabel 标签生成完全失败时的兜底标签，
// 调用方的后续动作绝不能因为取名失败而中断。
const FallbackLabel = "request"

// Result 一次标签生成的结果
type Result struct {
	Label  string
	Shape  model.Shape
	Method string
}

// Engine 标签生成引擎。显式构造、显式持有去重缓存与选项，
// 不依赖任何进程级单例。可被多个goroutine并发调用。
type Engine struct {
	mu    sync.RWMutex
	opt   model.Options
	cache *dedupe.Cache
	log   logger.Logger

	statsMu sync.Mutex
	total   int64
	byShape map[model.Shape]int64
}

// New 创建引擎。非法的选项值会被替换为默认值。
func New(opt model.Options, l logger.Logger) *Engine {
	if l == nil {
		l = logger.NewNop()
	}
	e := &Engine{
		opt:     model.DefaultOptions(),
		cache:   dedupe.New(),
		log:     l,
		byShape: make(map[model.Shape]int64),
	}
	e.Configure(opt)
	return e
}

// Configure 更新命名选项。长度上限超出[10,200]时保持原值不变。
func (e *Engine) Configure(opt model.Options) {
	e.mu.Lock()
	defer e.mu.Unlock()
	prev := e.opt.MaxLabelLength
	e.opt = opt
	if opt.MaxLabelLength < model.MinLabelLength || opt.MaxLabelLength > model.MaxLabelLengthCap {
		e.opt.MaxLabelLength = prev
	}
}

// Options 返回当前生效的选项快照
func (e *Engine) Options() model.Options {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.opt
}

// Label 为一次捕获生成最终标签。每个内部阶段失败时都退化为
// 安全默认值；即便如此仍有未预期错误时，恢复并返回兜底标签。
func (e *Engine) Label(svc traffic.Service, c *traffic.Capture) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("标签生成发生未预期错误", "host", svc.Host, "error", r)
			res = Result{Label: FallbackLabel, Shape: model.ShapeREST, Method: "GET"}
		}
	}()

	start := time.Now()
	opt := e.Options()

	req := extract.Request(c)
	shape := classify.Detect(req)

	var raw string
	switch shape {
	case model.ShapeWebSocket:
		raw = name.WebSocket(req.Path)
	case model.ShapeGraphQL:
		raw = name.GraphQL(req.Method, req.Query, req.Body, opt.IncludeMethodPrefix)
	case model.ShapeSOAP:
		raw = name.SOAP(req.Body)
	default:
		raw = name.REST(req.Method, req.Path, req.Query, req.Headers, opt)
	}

	label := e.cache.Apply(name.Truncate(raw, opt.MaxLabelLength))
	e.bump(shape)
	e.log.Debug("生成请求标签",
		"host", svc.Host, "shape", string(shape), "label", label, "duration", time.Since(start))
	return Result{Label: label, Shape: shape, Method: req.Method}
}

// Stats 返回引擎统计快照
func (e *Engine) Stats() model.EngineStats {
	e.statsMu.Lock()
	defer e.statsMu.Unlock()
	byShape := make(map[model.Shape]int64, len(e.byShape))
	for k, v := range e.byShape {
		byShape[k] = v
	}
	return model.EngineStats{
		Total:       e.total,
		ByShape:     byShape,
		CacheSize:   e.cache.Len(),
		CacheResets: e.cache.Resets(),
	}
}

func (e *Engine) bump(shape model.Shape) {
	e.statsMu.Lock()
	e.total++
	e.byShape[shape]++
	e.statsMu.Unlock()
}
