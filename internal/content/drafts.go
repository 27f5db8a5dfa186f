package content

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyCaption = errors.New("caption required")

// Draft is a post composed on the Add tab. Drafts live only in memory.
type Draft struct {
	ID        string
	Caption   string
	CreatedAt time.Time
}

// DraftBox holds drafts newest first.
type DraftBox struct {
	drafts []Draft
	now    func() time.Time
}

func NewDraftBox(now func() time.Time) *DraftBox {
	if now == nil {
		now = time.Now
	}
	return &DraftBox{now: now}
}

func (b *DraftBox) Add(caption string) (Draft, error) {
	caption = strings.TrimSpace(caption)
	if caption == "" {
		return Draft{}, ErrEmptyCaption
	}
	d := Draft{ID: uuid.NewString(), Caption: caption, CreatedAt: b.now()}
	b.drafts = append([]Draft{d}, b.drafts...)
	return d, nil
}

func (b *DraftBox) List() []Draft {
	return append([]Draft(nil), b.drafts...)
}

func (b *DraftBox) Len() int { return len(b.drafts) }
