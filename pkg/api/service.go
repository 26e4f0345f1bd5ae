package api

import (
	"retab/internal/logger"
	"retab/internal/service"
	"retab/internal/storage"
	"retab/pkg/model"
	"retab/pkg/traffic"
)

// Service 服务接口
type Service interface {
	// LabelCapture 为单个捕获生成最终标签并派发
	LabelCapture(svc traffic.Service, c *traffic.Capture) string

	// LabelHAR 为HAR中的每个请求生成标签并写回注释
	LabelHAR(data []byte) ([]byte, []model.LabeledEntry, error)

	// Configure 更新命名选项
	Configure(opt model.Options)

	// Stats 获取引擎统计信息
	Stats() model.EngineStats
}

// NewService 创建并返回服务接口实现
func NewService(opt model.Options, store *storage.Store, d model.Dispatcher, l logger.Logger) Service {
	return service.New(service.Config{
		Options:    opt,
		Store:      store,
		Dispatcher: d,
		Logger:     l,
	})
}
