package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/logger"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

// main 主程序入口
//
// 启动流程：
// 配置 → 日志 → 指标/追踪(可选) → Wire组装应用 → HTTP服务 → 等待信号优雅关闭
//
// @title          Book Catalog API
// @version        1.0
// @description    图书目录服务：查询、分组、新增和评价
// @host           localhost:3000
// @BasePath       /
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志
	zlog, syncLog, err := logger.NewForConfig(cfg)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer syncLog()

	// 3. 指标（独立端口）
	var metricsSrv *http.Server
	if cfg.Metrics.Enabled {
		metrics.InitMetrics()
		metricsSrv = &http.Server{
			Addr:              (config.ServerConfig{Port: cfg.Metrics.Port}).Addr(),
			Handler:           newMetricsEngine(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				zlog.Error("metrics server stopped", zap.Error(err))
			}
		}()
	}

	// 4. 链路追踪
	if cfg.Tracing.Enabled {
		shutdownTracer, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if err != nil {
			zlog.Warn("tracing disabled", zap.String("endpoint", cfg.Tracing.Endpoint), zap.Error(err))
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
				defer cancel()
				if err := shutdownTracer(ctx); err != nil {
					zlog.Warn("shutdown tracer", zap.Error(err))
				}
			}()
		}
	}

	// 5. 依赖注入（wire_gen.go）
	app, cleanup, err := InitializeApp(cfg, zlog)
	if err != nil {
		zlog.Fatal("初始化应用失败", zap.Error(err))
	}
	defer cleanup()

	count := app.Catalog.Count(context.Background())
	metrics.SetGauge(metrics.CatalogBooks, float64(count))

	// 6. 创建HTTP服务器
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      app.Engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		zlog.Info("server started",
			zap.String("addr", srv.Addr),
			zap.String("mode", cfg.Server.Mode),
			zap.String("data_file", cfg.Catalog.DataFile),
			zap.Int("books", count),
			zap.Bool("query_cache", cfg.Cache.Enabled),
			zap.Bool("events", cfg.MQ.Enabled),
			zap.Bool("swagger", cfg.Server.EnableSwagger),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	// 7. 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		zlog.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-serveErr:
		// 端口被占用等启动失败，走同一套清理
		zlog.Error("server failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("server forced to shutdown", zap.Error(err))
	}
	if metricsSrv != nil {
		if err := metricsSrv.Shutdown(ctx); err != nil {
			zlog.Warn("metrics server forced to shutdown", zap.Error(err))
		}
	}

	zlog.Info("server exited")
}
