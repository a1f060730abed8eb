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
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/vendotha/mini-event-finder/internal/api/middleware"
	"github.com/vendotha/mini-event-finder/internal/client"
	"github.com/vendotha/mini-event-finder/internal/config"
	"github.com/vendotha/mini-event-finder/internal/pkg/logger"
	"github.com/vendotha/mini-event-finder/internal/web"
)

func main() {
	cfg := config.Load()
	defer logger.Sync()

	// APIクライアント
	apiClient := client.New(&cfg.Client)
	pageHandler := web.NewPageHandler(apiClient)

	// Echo セットアップ
	e := echo.New()
	e.HideBanner = true
	e.Renderer = web.NewRenderer()
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.RequestLogger())
	e.Use(echomw.Recover())

	// ページルーティング
	e.GET("/", pageHandler.List)
	e.GET("/events/:id", pageHandler.Detail)
	e.GET("/create", pageHandler.CreateForm)
	e.POST("/create", pageHandler.CreateSubmit)

	// サーバー起動
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Web.Port)
		logger.Info("Webサーバー起動",
			zap.String("addr", addr),
			zap.String("api_base_url", cfg.Client.BaseURL),
		)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("サーバー起動エラー", zap.Error(err))
		}
	}()

	// シグナル待機
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("サーバーをシャットダウンしています...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("サーバーシャットダウンエラー", zap.Error(err))
	}

	logger.Info("サーバーが正常にシャットダウンしました")
}
