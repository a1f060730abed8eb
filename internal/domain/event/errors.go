package event

import "errors"

// Event ドメインのエラー定義
var (
	ErrEventNotFound         = errors.New("イベントが見つかりません")
	ErrMissingRequiredFields = errors.New("必須フィールドが不足しています")
)
