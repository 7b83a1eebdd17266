package queue

import (
	"encoding/json"

	"github.com/storefront-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskAssetCleanup 上传资产清理任务
	TaskAssetCleanup = constants.TaskAssetCleanup
)

// AssetCleanupPayload 资产清理任务负载
type AssetCleanupPayload struct {
	Path string `json:"path"`
}

// NewAssetCleanupTask 创建资产清理任务
func NewAssetCleanupTask(payload AssetCleanupPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskAssetCleanup, data), nil
}

// ParseAssetCleanupPayload 解析资产清理任务负载
func ParseAssetCleanupPayload(task *asynq.Task) (AssetCleanupPayload, error) {
	var payload AssetCleanupPayload
	err := json.Unmarshal(task.Payload(), &payload)
	return payload, err
}
