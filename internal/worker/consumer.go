package worker

import (
	"context"

	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/provider"
	"github.com/storefront-next/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 队列任务消费者
type Consumer struct {
	container *provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(container *provider.Container) *Consumer {
	return &Consumer{container: container}
}

// Register 注册任务处理器
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if mux == nil {
		return
	}
	mux.HandleFunc(queue.TaskAssetCleanup, c.HandleAssetCleanup)
}

// HandleAssetCleanup 处理资产清理任务。文件缺失不算失败，不触发重试。
func (c *Consumer) HandleAssetCleanup(ctx context.Context, task *asynq.Task) error {
	payload, err := queue.ParseAssetCleanupPayload(task)
	if err != nil {
		logger.Errorw("asset_cleanup_payload_invalid", "error", err)
		return nil
	}
	if c.container == nil || c.container.UploadService == nil {
		logger.Warnw("asset_cleanup_skipped", "reason", "upload_service_missing", "path", payload.Path)
		return nil
	}
	c.container.UploadService.Remove(payload.Path)
	return nil
}
