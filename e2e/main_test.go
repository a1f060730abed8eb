package e2e

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vendotha/mini-event-finder/internal/api"
	"github.com/vendotha/mini-event-finder/internal/api/handler"
	"github.com/vendotha/mini-event-finder/internal/api/middleware"
	"github.com/vendotha/mini-event-finder/internal/application"
	"github.com/vendotha/mini-event-finder/internal/infrastructure/memory"
)

// TestServer はE2Eテスト用のサーバー
// ストアはインメモリなのでテストごとに作り直せば完全に分離される
type TestServer struct {
	Echo *echo.Echo
	Repo *memory.EventRepository
}

// NewTestServer は本番と同じ構成のテスト用サーバーを作成する
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	eventRepo := memory.NewEventRepository()
	eventService := application.NewEventService(eventRepo)

	eventHandler := handler.NewEventHandler(eventService)
	healthHandler := handler.NewHealthHandler()

	e := echo.New()
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.CustomHTTPErrorHandler
	middleware.SetupMiddleware(e)

	e.GET("/health", healthHandler.Check)

	g := e.Group("/api")
	g.GET("/events", eventHandler.List)
	g.GET("/events/:id", eventHandler.GetByID)
	g.POST("/events", eventHandler.Create)

	return &TestServer{Echo: e, Repo: eventRepo}
}

// Request はHTTPリクエストを実行する
func (s *TestServer) Request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}
