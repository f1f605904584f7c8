package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")

	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidState      = errors.New("invalid reservation state")

	ErrNotAvailable    = errors.New("book is not available")
	ErrNotIssued       = errors.New("book is not issued")
	ErrAlreadyReturned = errors.New("transaction already returned")

	ErrArticleMismatch = errors.New("book does not belong to article")
	ErrBookMismatch    = errors.New("return book does not match issue book")
	ErrMemberRequired  = errors.New("library member is required")
	ErrMissingReason   = errors.New("cancellation reason is required")
	ErrInvalidRange    = errors.New("from date must be before to date")

	ErrDuplicateReservation = errors.New("member already has an active reservation for this article")
	ErrAlreadyBorrowed      = errors.New("member already has a copy of this article issued")
	ErrNoBookSelected       = errors.New("reservation has no selected book")
	ErrNotFulfilled         = errors.New("reservation is not fulfilled")
	ErrNotQueued            = errors.New("reservation is not queued")

	ErrDuplicateCopy = errors.New("copy number or barcode already exists")
	ErrArticleInUse  = errors.New("article is referenced by copies")
)

// StorageError wraps a persistence failure the core does not interpret.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
