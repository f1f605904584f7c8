package model

type BookStatus string

const (
	BookAvailable   BookStatus = "Available"
	BookIssued      BookStatus = "Issued"
	BookReserved    BookStatus = "Reserved"
	BookMaintenance BookStatus = "Maintenance"
	BookLost        BookStatus = "Lost"
	BookDamaged     BookStatus = "Damaged"
)

func (s BookStatus) Valid() bool {
	switch s {
	case BookAvailable, BookIssued, BookReserved, BookMaintenance, BookLost, BookDamaged:
		return true
	}
	return false
}

// OutOfCirculation reports the administrative statuses a copy can be parked in.
func (s BookStatus) OutOfCirculation() bool {
	return s == BookMaintenance || s == BookLost || s == BookDamaged
}

// CanTransition is the single table of legal copy status changes.
func (s BookStatus) CanTransition(to BookStatus) bool {
	if !s.Valid() || !to.Valid() || s == to {
		return false
	}
	if to.OutOfCirculation() {
		return true
	}
	switch s {
	case BookAvailable:
		return to == BookIssued || to == BookReserved
	case BookIssued:
		return to == BookAvailable
	case BookReserved:
		return to == BookIssued || to == BookAvailable
	case BookMaintenance, BookLost, BookDamaged:
		return to == BookAvailable
	}
	return false
}

type ReservationStatus string

const (
	ReservationActive    ReservationStatus = "Active"
	ReservationFulfilled ReservationStatus = "Fulfilled"
	ReservationCancelled ReservationStatus = "Cancelled"
	ReservationExpired   ReservationStatus = "Expired"
)

func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationFulfilled || s == ReservationCancelled || s == ReservationExpired
}

type TransactionType string

const (
	TransactionIssue  TransactionType = "Issue"
	TransactionReturn TransactionType = "Return"
)

type Condition string

const (
	ConditionExcellent Condition = "EXCELLENT"
	ConditionGood      Condition = "GOOD"
	ConditionBad       Condition = "BAD"
)
