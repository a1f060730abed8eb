package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/vendotha/mini-event-finder/internal/api"
	"github.com/vendotha/mini-event-finder/internal/api/handler"
	"github.com/vendotha/mini-event-finder/internal/api/middleware"
	"github.com/vendotha/mini-event-finder/internal/application"
	"github.com/vendotha/mini-event-finder/internal/config"
	"github.com/vendotha/mini-event-finder/internal/infrastructure/memory"
	"github.com/vendotha/mini-event-finder/internal/pkg/logger"
	"github.com/vendotha/mini-event-finder/internal/pkg/metrics"
	"github.com/vendotha/mini-event-finder/internal/worker"
)

func main() {
	cfg := config.Load()
	defer logger.Sync()

	// メトリクス初期化
	m := metrics.Init()

	// リポジトリとサービス
	// ストアはプロセスメモリ上にあり、再起動で初期データに戻る
	eventRepo := memory.NewEventRepository()
	eventService := application.NewEventService(eventRepo)

	eventHandler := handler.NewEventHandler(eventService)
	healthHandler := handler.NewHealthHandler()

	// Echo セットアップ
	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.CustomHTTPErrorHandler
	middleware.SetupMiddleware(e)
	e.Use(middleware.PrometheusMiddleware(m))

	// ルーティング
	e.GET("/health", healthHandler.Check)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()), middleware.MetricsBasicAuth())

	g := e.Group("/api")
	g.GET("/events", eventHandler.List)
	g.GET("/events/:id", eventHandler.GetByID)
	g.POST("/events", eventHandler.Create)

	// ストア統計ワーカー起動
	workerCtx, cancelWorker := context.WithCancel(context.Background())
	statsCollector := worker.NewStoreStatsCollector(eventRepo, m, 30*time.Second)
	go statsCollector.Start(workerCtx)

	// サーバー起動
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("APIサーバー起動", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("サーバー起動エラー", zap.Error(err))
		}
	}()

	// シグナル待機
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("サーバーをシャットダウンしています...")

	cancelWorker()
	statsCollector.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("サーバーシャットダウンエラー", zap.Error(err))
	}

	logger.Info("サーバーが正常にシャットダウンしました")
}
