package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vendotha/mini-event-finder/internal/api"
	"github.com/vendotha/mini-event-finder/internal/application"
	"github.com/vendotha/mini-event-finder/internal/domain/event"
)

// MockEventService はEventServiceInterfaceのモック
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) CreateEvent(ctx context.Context, input application.CreateEventInput) (*event.Event, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.Event), args.Error(1)
}

func (m *MockEventService) GetEvent(ctx context.Context, id string) (*event.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.Event), args.Error(1)
}

func (m *MockEventService) ListEvents(ctx context.Context, locationFilter string) ([]*event.Event, error) {
	args := m.Called(ctx, locationFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*event.Event), args.Error(1)
}

func TestEventHandler_List(t *testing.T) {
	e := NewTestEcho()

	t.Run("イベント一覧を取得できる", func(t *testing.T) {
		mockService := new(MockEventService)
		expectedEvents := []*event.Event{
			{ID: "1", Title: "イベント1", Location: "Hyderabad", Date: "2025-11-15", MaxParticipants: 50, CurrentParticipants: 25},
			{ID: "2", Title: "イベント2", Location: "Bangalore", Date: "2025-12-05", MaxParticipants: 100, CurrentParticipants: 45},
		}

		mockService.On("ListEvents", mock.Anything, "").Return(expectedEvents, nil)

		handler := NewEventHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.List(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp []*EventResponse
		err = json.Unmarshal(rec.Body.Bytes(), &resp)
		require.NoError(t, err)
		require.Len(t, resp, 2)
		assert.Equal(t, "1", resp[0].ID)
		assert.Equal(t, 25, resp[0].CurrentParticipants)

		mockService.AssertExpectations(t)
	})

	t.Run("locationクエリパラメータがサービスに渡る", func(t *testing.T) {
		mockService := new(MockEventService)
		mockService.On("ListEvents", mock.Anything, "hyderabad").Return([]*event.Event{}, nil)

		handler := NewEventHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/events?location=hyderabad", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.List(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		// 空の結果でも null ではなく [] を返す
		assert.JSONEq(t, "[]", rec.Body.String())

		mockService.AssertExpectations(t)
	})
}

func TestEventHandler_GetByID(t *testing.T) {
	e := NewTestEcho()

	t.Run("存在するイベントを取得できる", func(t *testing.T) {
		mockService := new(MockEventService)
		expectedEvent := &event.Event{
			ID:                  "1",
			Title:               "Tech Meetup Hyderabad",
			Location:            "Hyderabad",
			Date:                "2025-11-15",
			MaxParticipants:     50,
			CurrentParticipants: 25,
		}

		mockService.On("GetEvent", mock.Anything, "1").Return(expectedEvent, nil)

		handler := NewEventHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/events/1", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/api/events/:id")
		c.SetParamNames("id")
		c.SetParamValues("1")

		err := handler.GetByID(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp EventResponse
		err = json.Unmarshal(rec.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, "Tech Meetup Hyderabad", resp.Title)

		mockService.AssertExpectations(t)
	})

	t.Run("存在しないIDは404と固定メッセージ", func(t *testing.T) {
		mockService := new(MockEventService)
		mockService.On("GetEvent", mock.Anything, "999").Return(nil, event.ErrEventNotFound)

		handler := NewEventHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/events/999", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/api/events/:id")
		c.SetParamNames("id")
		c.SetParamValues("999")

		err := handler.GetByID(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp api.MessageResponse
		err = json.Unmarshal(rec.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, "Event not found", resp.Message)

		mockService.AssertExpectations(t)
	})
}

func TestEventHandler_Create(t *testing.T) {
	e := NewTestEcho()

	t.Run("正常にイベントを作成できる", func(t *testing.T) {
		mockService := new(MockEventService)
		expectedEvent := &event.Event{
			ID:                  "4",
			Title:               "新しいイベント",
			Description:         "説明",
			Location:            "Chennai",
			Date:                "2025-12-10",
			MaxParticipants:     40,
			CurrentParticipants: 0,
		}

		mockService.On("CreateEvent", mock.Anything, mock.AnythingOfType("application.CreateEventInput")).
			Return(expectedEvent, nil)

		handler := NewEventHandler(mockService)

		reqBody := `{
			"title": "新しいイベント",
			"description": "説明",
			"location": "Chennai",
			"date": "2025-12-10",
			"maxParticipants": 40
		}`
		req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(reqBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Create(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp EventResponse
		err = json.Unmarshal(rec.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, "4", resp.ID)
		assert.Equal(t, 0, resp.CurrentParticipants)

		mockService.AssertExpectations(t)
	})

	t.Run("必須フィールド不足は400と固定メッセージ", func(t *testing.T) {
		mockService := new(MockEventService)
		handler := NewEventHandler(mockService)

		reqBody := `{"title": "タイトルだけ"}`
		req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(reqBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Create(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp api.MessageResponse
		err = json.Unmarshal(rec.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, "Missing required fields: title, location, date, maxParticipants", resp.Message)

		// バリデーションで弾かれるためサービスは呼ばれない
		mockService.AssertNotCalled(t, "CreateEvent")
	})

	t.Run("定員0は欠落として扱う", func(t *testing.T) {
		mockService := new(MockEventService)
		handler := NewEventHandler(mockService)

		reqBody := `{"title": "T", "location": "L", "date": "2025-01-01", "maxParticipants": 0}`
		req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(reqBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Create(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "CreateEvent")
	})

	t.Run("不正なJSONは400", func(t *testing.T) {
		mockService := new(MockEventService)
		handler := NewEventHandler(mockService)

		req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader("invalid json"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Create(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "CreateEvent")
	})
}
