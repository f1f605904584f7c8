package model

import (
	"time"
)

type Article struct {
	ID     string `json:"id" db:"id"`
	Title  string `json:"title" db:"title"`
	Author string `json:"author,omitempty" db:"author"`
	ISBN   string `json:"isbn,omitempty" db:"isbn"`
}

// Book is a physical copy of an Article.
type Book struct {
	ID         string     `json:"id" db:"id"`
	ArticleID  string     `json:"articleId" db:"article_id"`
	CopyNumber int        `json:"copyNumber" db:"copy_number"`
	Barcode    string     `json:"barcode,omitempty" db:"barcode"`
	Status     BookStatus `json:"status" db:"status"`
	Condition  Condition  `json:"condition,omitempty" db:"condition"`
	Location   string     `json:"location,omitempty" db:"location"`

	// MaintenanceLog has one "<RFC 3339 time>: <status>[, reason]" line per
	// manual status change.
	MaintenanceLog string `json:"maintenanceLog,omitempty" db:"maintenance_log"`
}

type Member struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type Transaction struct {
	ID        string          `json:"id" db:"id"`
	Seq       int64           `json:"-" db:"seq"`
	Type      TransactionType `json:"transactionType" db:"transaction_type"`
	ArticleID string          `json:"articleId" db:"article_id"`
	BookID    string          `json:"bookId" db:"book_id"`
	MemberID  string          `json:"libraryMemberId" db:"member_id"`
	Date      time.Time       `json:"date" db:"date"`
	DueDate   *time.Time      `json:"dueDate,omitempty" db:"due_date"`
	Returned  bool            `json:"returned" db:"returned"`
	// LinkedTransaction points a Return to its Issue.
	LinkedTransaction string `json:"linkedTransaction,omitempty" db:"linked_transaction"`
}

func (t Transaction) Overdue(now time.Time) bool {
	return t.Type == TransactionIssue && !t.Returned && t.DueDate != nil && t.DueDate.Before(now)
}

type Reservation struct {
	ID        string            `json:"id" db:"id"`
	Seq       int64             `json:"-" db:"seq"`
	ArticleID string            `json:"articleId" db:"article_id"`
	MemberID  string            `json:"memberId" db:"member_id"`
	Status    ReservationStatus `json:"status" db:"status"`
	// SelectedBook is picked by the member or offered on return.
	SelectedBook       string     `json:"selectedBook,omitempty" db:"selected_book"`
	CreatedAt          time.Time  `json:"createdAt" db:"created_at"`
	ExpiresAt          time.Time  `json:"expiresAt" db:"expires_at"`
	OfferedAt          *time.Time `json:"offeredAt,omitempty" db:"offered_at"`
	CancellationReason string     `json:"cancellationReason,omitempty" db:"cancellation_reason"`
	IssueTransaction   string     `json:"issueTransaction,omitempty" db:"issue_transaction"`
}

// Holds reports whether the selected copy is Reserved for this reservation.
func (r Reservation) Holds() bool {
	return r.Status == ReservationActive && r.SelectedBook != "" && r.OfferedAt != nil
}

// Waiting reports whether the reservation can be offered a freed copy.
func (r Reservation) Waiting() bool {
	return r.Status == ReservationActive && r.OfferedAt == nil
}

// QueueLess orders Active reservations: creation time, then insertion sequence.
func QueueLess(a, b Reservation) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.Seq < b.Seq
}
