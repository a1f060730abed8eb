package application

import (
	"context"
	"fmt"

	"github.com/vendotha/mini-event-finder/internal/domain/event"
)

type EventService struct {
	eventRepo event.Repository
}

func NewEventService(eventRepo event.Repository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

type CreateEventInput struct {
	Title           string
	Description     string
	Location        string
	Date            string
	MaxParticipants int
}

// CreateEvent は新しいイベントを作成する
// 必須フィールドが欠けている場合はストアを変更せずにエラーを返す
func (s *EventService) CreateEvent(ctx context.Context, input CreateEventInput) (*event.Event, error) {
	e := event.NewEvent(input.Title, input.Description, input.Location, input.Date, input.MaxParticipants)
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if err := s.eventRepo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("イベント作成に失敗しました: %w", err)
	}
	return e, nil
}

// GetEvent はIDからイベントを取得する
func (s *EventService) GetEvent(ctx context.Context, id string) (*event.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

// ListEvents はイベント一覧を取得する
// locationFilter が空でない場合、場所の完全一致（大文字小文字を区別しない）で絞り込む
func (s *EventService) ListEvents(ctx context.Context, locationFilter string) ([]*event.Event, error) {
	return s.eventRepo.List(ctx, locationFilter)
}
