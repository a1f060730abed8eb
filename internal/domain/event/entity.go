package event

// Event はイベントエンティティを表す
// Date はタイムゾーンを持たないカレンダー日付の文字列（例: "2025-11-20"）で、
// 形式の検証は行わずそのまま保持する
type Event struct {
	ID                  string `json:"id"`
	Title               string `json:"title"`
	Description         string `json:"description"`
	Location            string `json:"location"`
	Date                string `json:"date"`
	MaxParticipants     int    `json:"maxParticipants"`
	CurrentParticipants int    `json:"currentParticipants"`
}

// NewEvent は新しいイベントを作成する
// ID はリポジトリが採番するためここでは設定しない
// 参加者数は必ず 0 から始まる
func NewEvent(title, description, location, date string, maxParticipants int) *Event {
	return &Event{
		Title:               title,
		Description:         description,
		Location:            location,
		Date:                date,
		MaxParticipants:     maxParticipants,
		CurrentParticipants: 0,
	}
}

// Validate は作成時の必須フィールドを検証する
// title / location / date は空文字以外、maxParticipants はゼロ以外が必須
// maxParticipants が正の数かどうかはここでは検証しない
func (e *Event) Validate() error {
	if e.Title == "" || e.Location == "" || e.Date == "" || e.MaxParticipants == 0 {
		return ErrMissingRequiredFields
	}
	return nil
}
