package event

import "context"

// Repository はイベントリポジトリのインターフェース
type Repository interface {
	// Create は新しいイベントを追加し、IDを採番する
	Create(ctx context.Context, event *Event) error

	// GetByID はIDからイベントを取得する
	GetByID(ctx context.Context, id string) (*Event, error)

	// List はイベント一覧を挿入順で取得する
	// location が空でない場合、大文字小文字を区別しない完全一致で絞り込む
	List(ctx context.Context, location string) ([]*Event, error)

	// Count は保持しているイベント数を返す
	Count(ctx context.Context) (int, error)
}
