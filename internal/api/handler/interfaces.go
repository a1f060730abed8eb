package handler

import (
	"context"

	"github.com/vendotha/mini-event-finder/internal/application"
	"github.com/vendotha/mini-event-finder/internal/domain/event"
)

// EventServiceInterface はイベントサービスのインターフェース
type EventServiceInterface interface {
	CreateEvent(ctx context.Context, input application.CreateEventInput) (*event.Event, error)
	GetEvent(ctx context.Context, id string) (*event.Event, error)
	ListEvents(ctx context.Context, locationFilter string) ([]*event.Event, error)
}
