package app

import (
	"context"
	"errors"

	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/provider"
	"github.com/storefront-next/internal/router"
	"github.com/storefront-next/internal/worker"
)

// BuildRunner 构建服务运行器
func BuildRunner(cfg *config.Config, mode string) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	container := provider.NewContainer(cfg)

	var services []Service

	if mode == ModeAll || mode == ModeAPI {
		engine, err := router.SetupRouter(cfg, container)
		if err != nil {
			return nil, err
		}
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		services = append(services, NewHTTPService(addr, engine))
	}

	if mode == ModeAll || mode == ModeWorker {
		consumer := worker.NewConsumer(container)
		workerService, err := worker.NewService(&cfg.Queue, consumer)
		if err != nil {
			return nil, err
		}
		services = append(services, workerService)
	}

	if len(services) == 0 {
		return nil, errors.New("no services initialized (check mode and config)")
	}

	services = append(services, newCleanupService(container))
	return NewRunner(services...), nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, err := BuildRunner(opts.Config, opts.Mode)
	if err != nil {
		return err
	}

	addr := opts.Config.Server.Host + ":" + opts.Config.Server.Port
	opts.Logger.Infow("app_start", "addr", addr, "mode", opts.Mode)
	return RunWithOptions(runner, opts)
}

// cleanupService 停机时断开 WebSocket 客户端并关闭队列客户端
type cleanupService struct {
	container *provider.Container
}

func newCleanupService(c *provider.Container) *cleanupService {
	return &cleanupService{container: c}
}

func (s *cleanupService) Name() string { return "cleanup" }

func (s *cleanupService) Start(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func (s *cleanupService) Stop(ctx context.Context) error {
	if s.container == nil {
		return nil
	}
	if s.container.Hub != nil {
		s.container.Hub.Close()
	}
	if s.container.QueueClient != nil {
		return s.container.QueueClient.Close()
	}
	return nil
}
