package web

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vendotha/mini-event-finder/internal/client"
	"github.com/vendotha/mini-event-finder/internal/domain/event"
	"github.com/vendotha/mini-event-finder/internal/view"
)

// ユーザー向けエラーメッセージ
// 失敗の原因（通信エラーかバリデーションエラーか）は区別しない
const (
	msgFetchEventsFailed = "Failed to fetch events. Is the backend server running?"
	msgFetchDetailFailed = "Failed to fetch event details."
	msgCreateFailed      = "Failed to create event. Please check your input."
)

// EventAPI はページが必要とするAPIクライアントのインターフェース
type EventAPI interface {
	ListEvents(ctx context.Context, location string) ([]*event.Event, error)
	GetEvent(ctx context.Context, id string) (*event.Event, error)
	CreateEvent(ctx context.Context, input client.CreateEventInput) (*event.Event, error)
}

// PageHandler はフロントエンドのページハンドラー
type PageHandler struct {
	api EventAPI
}

func NewPageHandler(api EventAPI) *PageHandler {
	return &PageHandler{api: api}
}

// EventCard は一覧ページのカード表示用データ
type EventCard struct {
	*event.Event
	Status  view.Status
	Percent int
}

func toEventCard(e *event.Event) EventCard {
	return EventCard{
		Event:   e,
		Status:  view.StatusOf(e),
		Percent: int(view.CapacityPercent(e)),
	}
}

// ListPageData は一覧ページのテンプレートデータ
type ListPageData struct {
	Events   []EventCard
	Total    int
	Search   string
	Status   string
	Sort     string
	ErrorMsg string
}

// List は一覧ページを表示する
// 検索・絞り込み・並び替えは取得済みデータに対してローカルで適用し、
// APIを再度呼ぶことはない
func (h *PageHandler) List(c echo.Context) error {
	events, err := h.api.ListEvents(c.Request().Context(), "")
	if err != nil {
		return c.Render(http.StatusOK, "list.html", ListPageData{ErrorMsg: msgFetchEventsFailed})
	}

	q := view.DefaultQuery()
	q.Search = c.QueryParam("search")
	if s := c.QueryParam("status"); s != "" {
		q.Status = view.Status(s)
	}
	if s := c.QueryParam("sort"); s != "" {
		q.SortBy = view.SortKey(s)
	}

	displayed := view.Apply(events, q)
	cards := make([]EventCard, len(displayed))
	for i, e := range displayed {
		cards[i] = toEventCard(e)
	}

	return c.Render(http.StatusOK, "list.html", ListPageData{
		Events: cards,
		Total:  len(events),
		Search: q.Search,
		Status: string(q.Status),
		Sort:   string(q.SortBy),
	})
}

// DetailPageData は詳細ページのテンプレートデータ
type DetailPageData struct {
	Event    *EventCard
	ErrorMsg string
}

// Detail は詳細ページを表示する
func (h *PageHandler) Detail(c echo.Context) error {
	id := c.Param("id")
	e, err := h.api.GetEvent(c.Request().Context(), id)
	if err != nil {
		return c.Render(http.StatusOK, "detail.html", DetailPageData{ErrorMsg: msgFetchDetailFailed})
	}

	card := toEventCard(e)
	return c.Render(http.StatusOK, "detail.html", DetailPageData{Event: &card})
}

// CreatePageData は作成ページのテンプレートデータ
type CreatePageData struct {
	Form     client.CreateEventInput
	ErrorMsg string
}

// CreateForm は作成フォームを表示する
func (h *PageHandler) CreateForm(c echo.Context) error {
	return c.Render(http.StatusOK, "create.html", CreatePageData{})
}

// CreateSubmit はフォーム送信を処理する
// 成功時は一覧へリダイレクトし、失敗時は入力値を保持したままエラーを表示する
func (h *PageHandler) CreateSubmit(c echo.Context) error {
	var maxParticipants int
	fmt.Sscanf(c.FormValue("maxParticipants"), "%d", &maxParticipants)

	input := client.CreateEventInput{
		Title:           c.FormValue("title"),
		Description:     c.FormValue("description"),
		Location:        c.FormValue("location"),
		Date:            c.FormValue("date"),
		MaxParticipants: maxParticipants,
	}

	if _, err := h.api.CreateEvent(c.Request().Context(), input); err != nil {
		return c.Render(http.StatusOK, "create.html", CreatePageData{Form: input, ErrorMsg: msgCreateFailed})
	}

	return c.Redirect(http.StatusSeeOther, "/")
}
