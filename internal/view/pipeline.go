package view

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/vendotha/mini-event-finder/internal/domain/event"
)

// Status は定員の埋まり具合による絞り込みステータス
type Status string

const (
	StatusAll        Status = "all"
	StatusOpen       Status = "open"
	StatusAlmostFull Status = "almost-full"
	StatusFull       Status = "full"
)

// SortKey は並び替えのキー
type SortKey string

const (
	SortByDate         SortKey = "date"
	SortByParticipants SortKey = "participants"
	SortByTitle        SortKey = "title"
)

// Query は一覧表示の検索・絞り込み・並び替え条件
type Query struct {
	Search string
	Status Status
	SortBy SortKey
}

// DefaultQuery は初期表示の条件（絞り込みなし・日付昇順）を返す
func DefaultQuery() Query {
	return Query{Status: StatusAll, SortBy: SortByDate}
}

// CapacityPercent は定員に対する参加率（%）を返す
func CapacityPercent(e *event.Event) float64 {
	return float64(e.CurrentParticipants) / float64(e.MaxParticipants) * 100
}

// StatusOf はイベントの埋まり具合ステータスを返す
func StatusOf(e *event.Event) Status {
	pct := CapacityPercent(e)
	switch {
	case pct >= 100:
		return StatusFull
	case pct >= 80:
		return StatusAlmostFull
	default:
		return StatusOpen
	}
}

// Apply は取得済みのイベント一覧に検索・絞り込み・並び替えを適用した
// 新しいスライスを返す。入力は変更しない
// 絞り込みを先に、並び替えを後に適用する
func Apply(events []*event.Event, q Query) []*event.Event {
	filtered := make([]*event.Event, 0, len(events))
	search := strings.ToLower(q.Search)

	for _, e := range events {
		if search != "" && !matchesSearch(e, search) {
			continue
		}
		if q.Status != "" && q.Status != StatusAll && StatusOf(e) != q.Status {
			continue
		}
		filtered = append(filtered, e)
	}

	sortEvents(filtered, q.SortBy)
	return filtered
}

// matchesSearch はタイトル・場所・説明のいずれかに部分一致するか返す
func matchesSearch(e *event.Event, lowered string) bool {
	return strings.Contains(strings.ToLower(e.Title), lowered) ||
		strings.Contains(strings.ToLower(e.Location), lowered) ||
		strings.Contains(strings.ToLower(e.Description), lowered)
}

func sortEvents(events []*event.Event, key SortKey) {
	switch key {
	case SortByParticipants:
		// 参加者数の降順
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].CurrentParticipants > events[j].CurrentParticipants
		})
	case SortByTitle:
		// ロケールを考慮したタイトル昇順
		c := collate.New(language.Und)
		sort.SliceStable(events, func(i, j int) bool {
			return c.CompareString(events[i].Title, events[j].Title) < 0
		})
	default:
		// 日付の昇順。パースできない日付はゼロ値として先頭に並ぶ
		sort.SliceStable(events, func(i, j int) bool {
			return parseDate(events[i].Date).Before(parseDate(events[j].Date))
		})
	}
}

func parseDate(s string) time.Time {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}
