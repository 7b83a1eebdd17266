package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/queue"
)

// ErrUploadTooLarge 文件超过大小上限
var ErrUploadTooLarge = fmt.Errorf("upload exceeds size limit")

// ErrUploadType 文件类型不在白名单
var ErrUploadType = fmt.Errorf("upload type not allowed")

// UploadService 图片上传与资产删除
type UploadService struct {
	cfg   *config.Config
	queue *queue.Client
}

// NewUploadService 创建上传服务
func NewUploadService(cfg *config.Config, qc *queue.Client) *UploadService {
	return &UploadService{cfg: cfg, queue: qc}
}

// SaveFile 保存上传的图片，返回以 /uploads/ 开头的公开路径。
// 文件名用 UUID 重写，保留原始扩展名。
func (s *UploadService) SaveFile(file *multipart.FileHeader, scene string) (string, error) {
	if s.cfg.Upload.MaxSize > 0 && file.Size > s.cfg.Upload.MaxSize {
		return "", ErrUploadTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !contains(s.cfg.Upload.AllowedExtensions, ext) {
		return "", ErrUploadType
	}
	contentType := file.Header.Get("Content-Type")
	if contentType != "" && !contains(s.cfg.Upload.AllowedTypes, contentType) {
		return "", ErrUploadType
	}

	dir := filepath.Join(s.cfg.Upload.Dir, scene)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(dir, name)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	logger.Infow("upload_saved", "scene", scene, "path", dst, "size", file.Size)
	return "/" + filepath.ToSlash(filepath.Join(s.cfg.Upload.Dir, scene, name)), nil
}

// Remove 删除磁盘上的资产文件。删除失败只记日志，不向上传播。
func (s *UploadService) Remove(path string) error {
	local := s.localPath(path)
	if local == "" {
		return nil
	}
	if err := os.Remove(local); err != nil && !os.IsNotExist(err) {
		logger.Warnw("asset_remove_failed", "path", local, "error", err)
		return nil
	}
	logger.Infow("asset_removed", "path", local)
	return nil
}

// RemoveAsync 异步删除资产。队列不可用时降级为同步删除。
func (s *UploadService) RemoveAsync(path string) {
	if path == "" {
		return
	}
	if s.queue != nil && s.queue.Enabled() {
		if err := s.queue.EnqueueAssetCleanup(queue.AssetCleanupPayload{Path: path}); err != nil {
			logger.Warnw("asset_cleanup_enqueue_failed", "path", path, "error", err)
			_ = s.Remove(path)
		}
		return
	}
	_ = s.Remove(path)
}

// localPath 把 /uploads/... 公开路径转换为磁盘路径
func (s *UploadService) localPath(path string) string {
	if path == "" {
		return ""
	}
	trimmed := strings.TrimPrefix(path, "/")
	// 只允许删除上传目录内的文件
	cleaned := filepath.Clean(filepath.FromSlash(trimmed))
	if !strings.HasPrefix(cleaned, filepath.Clean(s.cfg.Upload.Dir)+string(os.PathSeparator)) {
		return ""
	}
	return cleaned
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
