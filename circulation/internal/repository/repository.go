package repository

import (
	"context"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

type CatalogRepository interface {
	GetArticle(ctx context.Context, id string) (model.Article, error)
	ListArticles(ctx context.Context) ([]model.Article, error)
	SaveArticle(ctx context.Context, article model.Article) error

	GetBook(ctx context.Context, id string) (model.Book, error)
	// ListBooks returns copies ordered by article and copy number.
	ListBooks(ctx context.Context, filter BookFilter) ([]model.Book, error)
	SaveBook(ctx context.Context, book model.Book) error

	GetMember(ctx context.Context, id string) (model.Member, error)
	SaveMember(ctx context.Context, member model.Member) error
}

type LedgerRepository interface {
	GetTransaction(ctx context.Context, id string) (model.Transaction, error)
	// ListTransactions returns entries ordered by date and insertion sequence.
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)
	// SaveTransaction upserts and assigns Seq on first insert.
	SaveTransaction(ctx context.Context, txn *model.Transaction) error
}

type ReservationRepository interface {
	GetReservation(ctx context.Context, id string) (model.Reservation, error)
	// ListReservations returns reservations in queue order.
	ListReservations(ctx context.Context, filter ReservationFilter) ([]model.Reservation, error)
	// SaveReservation upserts and assigns Seq on first insert.
	SaveReservation(ctx context.Context, r *model.Reservation) error
}

// Repository is the persistence boundary of the circulation core.
// Reads inside WithTx observe the writes made earlier in the same fn.
type Repository interface {
	CatalogRepository
	LedgerRepository
	ReservationRepository

	// WithTx runs fn atomically: all writes commit together or none do.
	// Nested calls join the outer transaction.
	WithTx(ctx context.Context, fn func(repo Repository) error) error
}
