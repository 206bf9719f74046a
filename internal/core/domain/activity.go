package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Timestamp layouts of rendered activity records. Microseconds are left
// out when they are zero.
const (
	ActivityTimeLayout       = "2006-01-02 15:04:05.000000"
	ActivityTimeLayoutSecond = "2006-01-02 15:04:05"
)

type ActivityEntry struct {
	ID        string
	Timestamp time.Time
	Item      string
	Quantity  int
}

func (e ActivityEntry) String() string {
	layout := ActivityTimeLayout
	if e.Timestamp.Nanosecond()/int(time.Microsecond) == 0 {
		layout = ActivityTimeLayoutSecond
	}
	return fmt.Sprintf("%s: Added %d of %s", e.Timestamp.Format(layout), e.Quantity, e.Item)
}

// ActivityLog is an append-only record of successful additions. It lives
// only as long as its owner and is never persisted.
type ActivityLog struct {
	newID   func() string
	now     func() time.Time
	entries []ActivityEntry
}

// NewActivityLog returns an empty log. Nil generators fall back to
// uuid.NewString and time.Now.
func NewActivityLog(newID func() string, now func() time.Time) *ActivityLog {
	if newID == nil {
		newID = uuid.NewString
	}
	if now == nil {
		now = time.Now
	}
	return &ActivityLog{newID: newID, now: now}
}

func (l *ActivityLog) RecordAdd(item string, quantity int) ActivityEntry {
	entry := ActivityEntry{
		ID:        l.newID(),
		Timestamp: l.now(),
		Item:      item,
		Quantity:  quantity,
	}
	l.entries = append(l.entries, entry)
	return entry
}

func (l *ActivityLog) Entries() []ActivityEntry {
	if l == nil {
		return nil
	}
	return append([]ActivityEntry(nil), l.entries...)
}

// Lines renders every entry in append order.
func (l *ActivityLog) Lines() []string {
	entries := l.Entries()
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.String())
	}
	return lines
}

func (l *ActivityLog) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}
