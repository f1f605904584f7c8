package model

import (
	"time"
)

type EventType string

const (
	EventBookIssued           EventType = "BookIssued"
	EventBookReturned         EventType = "BookReturned"
	EventBookStatusChanged    EventType = "BookStatusChanged"
	EventReservationCreated   EventType = "ReservationCreated"
	EventReservationOffered   EventType = "ReservationOffered"
	EventReservationRequeued  EventType = "ReservationRequeued"
	EventReservationFulfilled EventType = "ReservationFulfilled"
	EventReservationCancelled EventType = "ReservationCancelled"
	EventReservationExpired   EventType = "ReservationExpired"
)

// Event is published after the change it describes has been committed.
type Event struct {
	Type          EventType  `json:"type"`
	Timestamp     time.Time  `json:"timestamp"`
	ArticleID     string     `json:"articleId"`
	BookID        string     `json:"bookId,omitempty"`
	MemberID      string     `json:"memberId,omitempty"`
	ReservationID string     `json:"reservationId,omitempty"`
	TransactionID string     `json:"transactionId,omitempty"`
	BookStatus    BookStatus `json:"bookStatus,omitempty"`
	Reason        string     `json:"reason,omitempty"`
}

// ExpireTrigger is the payload of an external expiry sweep request.
type ExpireTrigger struct {
	Now *time.Time `json:"now,omitempty"`
}
