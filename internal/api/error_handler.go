package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/vendotha/mini-event-finder/internal/pkg/logger"
)

// MessageResponse はエラーレスポンスの統一フォーマット
// 正常系以外のボディはすべて {"message": "..."} の形で返す
type MessageResponse struct {
	Message string `json:"message"`
}

// CustomHTTPErrorHandler はハンドラーまで届かなかったエラーのための
// カスタムエラーハンドラー（ルート不一致、バインド失敗など）
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		code    = http.StatusInternalServerError
		message = "Internal Server Error"
	)

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}

	// 5xx エラーのみログを出力
	if code >= 500 {
		logger.Error("サーバーエラー",
			zap.Int("status", code),
			zap.String("path", c.Request().URL.Path),
			zap.Error(err),
		)
	}

	if err := c.JSON(code, MessageResponse{Message: message}); err != nil {
		logger.Error("エラーレスポンス送信失敗", zap.Error(err))
	}
}
