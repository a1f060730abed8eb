package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/vendotha/mini-event-finder/internal/config"
	"github.com/vendotha/mini-event-finder/internal/domain/event"
)

// Client はイベントAPIの型付きHTTPクライアント
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New はクライアントを作成する
func New(cfg *config.ClientConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// APIError はAPIが返したエラーレスポンスを表す
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("APIエラー (status=%d): %s", e.StatusCode, e.Message)
}

// CreateEventInput はイベント作成リクエストのボディ
type CreateEventInput struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Location        string `json:"location"`
	Date            string `json:"date"`
	MaxParticipants int    `json:"maxParticipants"`
}

// ListEvents はイベント一覧を取得する
// location が空でない場合はクエリパラメータとして付与する
func (c *Client) ListEvents(ctx context.Context, location string) ([]*event.Event, error) {
	endpoint := c.baseURL + "/api/events"
	if location != "" {
		endpoint += "?location=" + url.QueryEscape(location)
	}

	var events []*event.Event
	if err := c.doGet(ctx, endpoint, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetEvent はIDからイベントを取得する
func (c *Client) GetEvent(ctx context.Context, id string) (*event.Event, error) {
	endpoint := c.baseURL + "/api/events/" + url.PathEscape(id)

	var e event.Event
	if err := c.doGet(ctx, endpoint, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateEvent は新しいイベントを作成する
func (c *Client) CreateEvent(ctx context.Context, input CreateEventInput) (*event.Event, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("リクエストのエンコードに失敗しました: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/events", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗しました: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("リクエストの送信に失敗しました: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, decodeAPIError(resp)
	}

	var created event.Event
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("レスポンスのデコードに失敗しました: %w", err)
	}
	return &created, nil
}

// doGet はGETリクエストを送り、2xxならボディをデコードする
func (c *Client) doGet(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("リクエストの作成に失敗しました: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("リクエストの送信に失敗しました: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("レスポンスのデコードに失敗しました: %w", err)
	}
	return nil
}

// decodeAPIError は {"message": "..."} 形式のエラーボディをAPIErrorに変換する
func decodeAPIError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Message == "" {
		body.Message = http.StatusText(resp.StatusCode)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: body.Message}
}
