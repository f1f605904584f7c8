package model

import (
	"time"
)

type HistoryEntryType string

const (
	HistoryIssue       HistoryEntryType = "Issue"
	HistoryReturn      HistoryEntryType = "Return"
	HistoryReservation HistoryEntryType = "Reservation"
)

type HistoryEntry struct {
	Type      HistoryEntryType `json:"type"`
	Timestamp time.Time        `json:"timestamp"`
	// ReferenceID is the transaction or reservation id.
	ReferenceID string `json:"referenceId"`
	ArticleID   string `json:"articleId"`
	BookID      string `json:"bookId,omitempty"`
	Detail      string `json:"detail"`

	seq int64
}

func (e HistoryEntry) Seq() int64 { return e.seq }

func NewHistoryEntry(typ HistoryEntryType, ts time.Time, seq int64, refID, articleID, bookID, detail string) HistoryEntry {
	return HistoryEntry{
		Type:        typ,
		Timestamp:   ts,
		ReferenceID: refID,
		ArticleID:   articleID,
		BookID:      bookID,
		Detail:      detail,
		seq:         seq,
	}
}

type HistoryQuery struct {
	From      *time.Time
	To        *time.Time
	ArticleID string
}

func (q HistoryQuery) Match(e HistoryEntry) bool {
	if q.From != nil && e.Timestamp.Before(*q.From) {
		return false
	}
	if q.To != nil && e.Timestamp.After(*q.To) {
		return false
	}
	return q.ArticleID == "" || q.ArticleID == e.ArticleID
}

type History struct {
	MemberID string         `json:"memberId"`
	Items    []HistoryEntry `json:"items"`
}
