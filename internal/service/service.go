package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"retab/internal/ctxkeys"
	"retab/internal/har"
	"retab/internal/labeler"
	"retab/internal/logger"
	"retab/internal/storage"
	"retab/pkg/model"
	"retab/pkg/traffic"
)

// ErrNotHAR 输入字节流缺少log.entries结构
var ErrNotHAR = errors.New("不是有效的HAR文件")

// Service 标签服务实现：协调引擎、历史存储与派发回调
type Service struct {
	engine   *labeler.Engine
	store    *storage.Store
	dispatch model.Dispatcher
	log      logger.Logger
}

// Config 服务构造参数
type Config struct {
	Options    model.Options
	Store      *storage.Store // 可为nil，表示不落历史
	Dispatcher model.Dispatcher
	Logger     logger.Logger
}

// New 创建标签服务
func New(cfg Config) *Service {
	l := cfg.Logger
	if l == nil {
		l = logger.NewNop()
	}
	return &Service{
		engine:   labeler.New(cfg.Options, l),
		store:    cfg.Store,
		dispatch: cfg.Dispatcher,
		log:      l,
	}
}

// LabelCapture 为单个捕获生成最终标签，落历史并派发。
// 存储或派发失败只记录日志，标签照常返回。
func (s *Service) LabelCapture(svc traffic.Service, c *traffic.Capture) string {
	res := s.engine.Label(svc, c)
	s.persist(svc, res)

	if s.dispatch != nil {
		var raw []byte
		if c != nil {
			raw = c.Raw
		}
		if err := s.dispatch(svc, raw, res.Label); err != nil {
			s.log.Error("派发请求失败", "label", res.Label, "error", err)
		}
	}
	return res.Label
}

// LabelHAR 为HAR中的每个请求生成标签，返回写回comment后的
// 字节流与逐条结果
func (s *Service) LabelHAR(data []byte) ([]byte, []model.LabeledEntry, error) {
	if !har.Valid(data) {
		return nil, nil, ErrNotHAR
	}

	entries := har.Parse(data)
	labels := make(map[int]string, len(entries))
	results := make([]model.LabeledEntry, 0, len(entries))
	for _, en := range entries {
		res := s.engine.Label(en.Service, en.Capture)
		s.persist(en.Service, res)
		labels[en.Index] = res.Label
		results = append(results, model.LabeledEntry{
			Index: en.Index,
			Label: res.Label,
			Shape: res.Shape,
		})
	}
	return har.Annotate(data, labels), results, nil
}

// Configure 更新命名选项
func (s *Service) Configure(opt model.Options) {
	s.engine.Configure(opt)
}

// Stats 返回引擎统计
func (s *Service) Stats() model.EngineStats {
	return s.engine.Stats()
}

func (s *Service) persist(svc traffic.Service, res labeler.Result) {
	if s.store == nil {
		return
	}
	ctx := context.WithValue(context.Background(), ctxkeys.TraceIDKey{}, uuid.NewString())
	rec := &storage.LabelRecord{
		Host:   svc.Host,
		Port:   svc.Port,
		TLS:    svc.TLS,
		Method: res.Method,
		Shape:  string(res.Shape),
		Label:  res.Label,
	}
	if err := s.store.Save(ctx, rec); err != nil {
		s.log.Warn("写入标签历史失败", "label", res.Label, "error", err)
	}
}
