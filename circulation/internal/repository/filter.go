package repository

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

// Filter is a composable predicate usable both as a SQL condition and as an
// in-memory match.
type Filter[T any] struct {
	conds   []sq.Sqlizer
	matches []func(T) bool
}

func newFilter[T any](cond sq.Sqlizer, match func(T) bool) Filter[T] {
	return Filter[T]{conds: []sq.Sqlizer{cond}, matches: []func(T) bool{match}}
}

// And returns a filter matching both f and other.
func (f Filter[T]) And(other Filter[T]) Filter[T] {
	conds := make([]sq.Sqlizer, 0, len(f.conds)+len(other.conds))
	conds = append(append(conds, f.conds...), other.conds...)
	matches := make([]func(T) bool, 0, len(f.matches)+len(other.matches))
	matches = append(append(matches, f.matches...), other.matches...)
	return Filter[T]{conds: conds, matches: matches}
}

func (f Filter[T]) Match(v T) bool {
	for _, m := range f.matches {
		if !m(v) {
			return false
		}
	}
	return true
}

// Where returns the SQL condition, nil for the match-all filter.
func (f Filter[T]) Where() sq.Sqlizer {
	if len(f.conds) == 0 {
		return nil
	}
	return sq.And(f.conds)
}

type (
	BookFilter        = Filter[model.Book]
	TransactionFilter = Filter[model.Transaction]
	ReservationFilter = Filter[model.Reservation]
)

func AllBooks() BookFilter { return BookFilter{} }

func BooksOfArticle(articleID string) BookFilter {
	return newFilter(sq.Eq{"article_id": articleID}, func(b model.Book) bool {
		return b.ArticleID == articleID
	})
}

func BooksWithStatus(statuses ...model.BookStatus) BookFilter {
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}
	return newFilter(sq.Eq{"status": values}, func(b model.Book) bool {
		for _, s := range statuses {
			if b.Status == s {
				return true
			}
		}
		return false
	})
}

func BookWithCopyNumber(n int) BookFilter {
	return newFilter(sq.Eq{"copy_number": n}, func(b model.Book) bool {
		return b.CopyNumber == n
	})
}

func BookWithBarcode(barcode string) BookFilter {
	return newFilter(sq.Eq{"barcode": barcode}, func(b model.Book) bool {
		return b.Barcode == barcode
	})
}

func AllTransactions() TransactionFilter { return TransactionFilter{} }

func TransactionsOfMember(memberID string) TransactionFilter {
	return newFilter(sq.Eq{"member_id": memberID}, func(t model.Transaction) bool {
		return t.MemberID == memberID
	})
}

func TransactionsOfArticle(articleID string) TransactionFilter {
	return newFilter(sq.Eq{"article_id": articleID}, func(t model.Transaction) bool {
		return t.ArticleID == articleID
	})
}

func TransactionsOfBook(bookID string) TransactionFilter {
	return newFilter(sq.Eq{"book_id": bookID}, func(t model.Transaction) bool {
		return t.BookID == bookID
	})
}

func TransactionsOfType(typ model.TransactionType) TransactionFilter {
	return newFilter(sq.Eq{"transaction_type": string(typ)}, func(t model.Transaction) bool {
		return t.Type == typ
	})
}

func TransactionsNotReturned() TransactionFilter {
	return newFilter(sq.Eq{"returned": false}, func(t model.Transaction) bool {
		return !t.Returned
	})
}

func TransactionsLinkedTo(issueID string) TransactionFilter {
	return newFilter(sq.Eq{"linked_transaction": issueID}, func(t model.Transaction) bool {
		return t.LinkedTransaction == issueID
	})
}

func AllReservations() ReservationFilter { return ReservationFilter{} }

func ReservationsOfArticle(articleID string) ReservationFilter {
	return newFilter(sq.Eq{"article_id": articleID}, func(r model.Reservation) bool {
		return r.ArticleID == articleID
	})
}

func ReservationsOfMember(memberID string) ReservationFilter {
	return newFilter(sq.Eq{"member_id": memberID}, func(r model.Reservation) bool {
		return r.MemberID == memberID
	})
}

func ReservationsWithStatus(status model.ReservationStatus) ReservationFilter {
	return newFilter(sq.Eq{"status": string(status)}, func(r model.Reservation) bool {
		return r.Status == status
	})
}

func ReservationsExpiredBefore(now time.Time) ReservationFilter {
	return newFilter(sq.Lt{"expires_at": now}, func(r model.Reservation) bool {
		return r.ExpiresAt.Before(now)
	})
}

func ReservationsSelecting(bookID string) ReservationFilter {
	return newFilter(sq.Eq{"selected_book": bookID}, func(r model.Reservation) bool {
		return r.SelectedBook == bookID
	})
}
