package model

import (
	"time"
)

type CreateArticleRequest struct {
	ID     string `json:"id"`
	Title  string `json:"title" validate:"required"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
}

type AddBookRequest struct {
	ArticleID  string    `json:"-" validate:"required"`
	CopyNumber int       `json:"copyNumber" validate:"gte=0"`
	Barcode    string    `json:"barcode"`
	Condition  Condition `json:"condition" validate:"omitempty,oneof=EXCELLENT GOOD BAD"`
	Location   string    `json:"location"`
}

type RegisterMemberRequest struct {
	ID   string `json:"id"`
	Name string `json:"name" validate:"required"`
}

type SetBookStatusRequest struct {
	Status BookStatus `json:"status" validate:"required,oneof=Available Maintenance Lost Damaged"`
	Reason string     `json:"reason"`
}

type IssueRequest struct {
	ArticleID string `json:"articleId" validate:"required"`
	BookID    string `json:"bookId" validate:"required"`
	MemberID  string `json:"libraryMemberId" validate:"required"`
	// Date defaults to now, DueDate to Date plus the loan period.
	Date    time.Time  `json:"date"`
	DueDate *time.Time `json:"dueDate,omitempty"`
}

type ValidateTransactionRequest struct {
	Type              TransactionType `json:"transactionType" validate:"required,oneof=Issue Return"`
	ArticleID         string          `json:"articleId" validate:"required"`
	BookID            string          `json:"bookId" validate:"required"`
	MemberID          string          `json:"libraryMemberId"`
	LinkedTransaction string          `json:"linkedTransaction"`
}

type EnqueueRequest struct {
	ArticleID string `json:"articleId" validate:"required"`
	MemberID  string `json:"memberId" validate:"required"`
}

type SelectBookRequest struct {
	BookID string `json:"bookId" validate:"required"`
}

type CancelReservationRequest struct {
	Reason string `json:"reason"`
}

type ExpireRequest struct {
	Now *time.Time `json:"now,omitempty"`
}

type ExpireResult struct {
	Expired int `json:"expired"`
}

type FulfillResult struct {
	Reservation      Reservation `json:"reservation"`
	IssueTransaction Transaction `json:"issueTransaction"`
}

type IssuedBook struct {
	Book        Book        `json:"book"`
	Transaction Transaction `json:"transaction"`
	DueDate     time.Time   `json:"dueDate"`
	Overdue     bool        `json:"overdue"`
}

type BookHistory struct {
	Book         Book          `json:"book"`
	CurrentIssue *Transaction  `json:"currentIssue,omitempty"`
	Transactions []Transaction `json:"transactions"`
}

type QueueEntry struct {
	Position int `json:"position"`
	Reservation
}

type Queue struct {
	ArticleID string       `json:"articleId"`
	Items     []QueueEntry `json:"items"`
}

func NewQueue(articleID string, reservations []Reservation) Queue {
	items := make([]QueueEntry, 0, len(reservations))
	for i, r := range reservations {
		items = append(items, QueueEntry{Position: i + 1, Reservation: r})
	}
	return Queue{ArticleID: articleID, Items: items}
}

type QueuePosition struct {
	ReservationID string `json:"reservationId"`
	Position      int    `json:"position"`
}

type WorkflowStatus struct {
	ReservationID     string            `json:"reservationId"`
	ReservationStatus ReservationStatus `json:"reservationStatus"`
	SelectedBook      string            `json:"selectedBook,omitempty"`
	BookStatus        BookStatus        `json:"bookStatus,omitempty"`
	QueuePosition     int               `json:"queuePosition,omitempty"`
	IssueTransaction  *Transaction      `json:"issueTransaction,omitempty"`
	ReturnTransaction *Transaction      `json:"returnTransaction,omitempty"`
}

type ArticleAvailability struct {
	ArticleID string `json:"articleId"`
	Title     string `json:"title"`
	Available int    `json:"availableQty"`
	Total     int    `json:"totalQty"`
}

type ListBooks struct {
	Items []Book `json:"items"`
}
