package memory

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/vendotha/mini-event-finder/internal/domain/event"
)

// EventRepository はイベントリポジトリのインメモリ実装
// プロセスのライフタイムだけ有効で、再起動で初期状態に戻る
// 複数のHTTPリクエストから同時にアクセスされるため、
// スライスとIDカウンターへのアクセスは単一のRWMutexで直列化する
type EventRepository struct {
	mu     sync.RWMutex
	events []*event.Event
	byID   map[string]*event.Event
	nextID int
}

// NewEventRepository は初期データ入りのEventRepositoryを作成する
func NewEventRepository() *EventRepository {
	r := NewEmptyEventRepository()
	for _, e := range seedEvents() {
		r.events = append(r.events, e)
		r.byID[e.ID] = e
	}
	r.nextID = 4
	return r
}

// NewEmptyEventRepository は初期データなしのEventRepositoryを作成する
// テストで空のストアから始めたい場合に使う
func NewEmptyEventRepository() *EventRepository {
	return &EventRepository{
		byID:   make(map[string]*event.Event),
		nextID: 1,
	}
}

// seedEvents は起動時の初期データを返す
func seedEvents() []*event.Event {
	return []*event.Event{
		{ID: "1", Title: "Tech Meetup Hyderabad", Description: "A meetup for tech enthusiasts.", Location: "Hyderabad", Date: "2025-11-15", MaxParticipants: 50, CurrentParticipants: 25},
		{ID: "2", Title: "Startup Pitch Night", Description: "Pitch your startup idea.", Location: "Hyderabad", Date: "2025-11-20", MaxParticipants: 30, CurrentParticipants: 10},
		{ID: "3", Title: "Open Source Conference", Description: "Discussing the future of open source.", Location: "Bangalore", Date: "2025-12-05", MaxParticipants: 100, CurrentParticipants: 45},
	}
}

// Create は新しいイベントを追加する
// IDはカウンターを文字列化して採番し、カウンターをインクリメントする
// 採番されたIDは単調増加し、削除がないため再利用されない
func (r *EventRepository) Create(ctx context.Context, e *event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e.ID = strconv.Itoa(r.nextID)
	r.nextID++

	// 外部の参照に後から書き換えられないようコピーを保持する
	stored := *e
	r.events = append(r.events, &stored)
	r.byID[stored.ID] = &stored
	return nil
}

// GetByID はIDからイベントを取得する
func (r *EventRepository) GetByID(ctx context.Context, id string) (*event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return nil, event.ErrEventNotFound
	}
	copied := *e
	return &copied, nil
}

// List はイベント一覧を挿入順で取得する
// location が空でない場合、小文字化した上での完全一致（部分一致ではない）で絞り込む
func (r *EventRepository) List(ctx context.Context, location string) ([]*event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filter := strings.ToLower(location)
	results := make([]*event.Event, 0, len(r.events))
	for _, e := range r.events {
		if filter != "" && strings.ToLower(e.Location) != filter {
			continue
		}
		copied := *e
		results = append(results, &copied)
	}
	return results, nil
}

// Count は保持しているイベント数を返す
func (r *EventRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.events), nil
}
