package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

type memoryState struct {
	articles     map[string]model.Article
	books        map[string]model.Book
	members      map[string]model.Member
	transactions map[string]model.Transaction
	reservations map[string]model.Reservation
}

func newMemoryState() *memoryState {
	return &memoryState{
		articles:     make(map[string]model.Article),
		books:        make(map[string]model.Book),
		members:      make(map[string]model.Member),
		transactions: make(map[string]model.Transaction),
		reservations: make(map[string]model.Reservation),
	}
}

type memoryStore struct {
	mu    sync.RWMutex
	state *memoryState
	seq   int64
}

// memoryRepository reads through staged writes first when it runs inside
// WithTx; staged is nil outside a transaction.
type memoryRepository struct {
	store  *memoryStore
	staged *memoryState
	log    *zap.Logger
}

var _ Repository = (*memoryRepository)(nil)

func NewMemoryRepository(log *zap.Logger) Repository {
	return &memoryRepository{
		store: &memoryStore{state: newMemoryState()},
		log:   log.Named("memory_repo"),
	}
}

func (r *memoryRepository) WithTx(ctx context.Context, fn func(repo Repository) error) error {
	if r.staged != nil {
		return fn(r)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	tx := &memoryRepository{store: r.store, staged: newMemoryState(), log: r.log}
	if err := fn(tx); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	st := r.store.state
	merge(st.articles, tx.staged.articles)
	merge(st.books, tx.staged.books)
	merge(st.members, tx.staged.members)
	merge(st.transactions, tx.staged.transactions)
	merge(st.reservations, tx.staged.reservations)
	return nil
}

func merge[T any](dst, src map[string]T) {
	for k, v := range src {
		dst[k] = v
	}
}

func lookup[T any](r *memoryRepository, table func(*memoryState) map[string]T, id string) (T, bool) {
	if r.staged != nil {
		if v, ok := table(r.staged)[id]; ok {
			return v, true
		}
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	v, ok := table(r.store.state)[id]
	return v, ok
}

func collect[T any](r *memoryRepository, table func(*memoryState) map[string]T, filter Filter[T]) []T {
	r.store.mu.RLock()
	committed := table(r.store.state)
	out := make([]T, 0)
	for id, v := range committed {
		if r.staged != nil {
			if _, ok := table(r.staged)[id]; ok {
				continue
			}
		}
		if filter.Match(v) {
			out = append(out, v)
		}
	}
	r.store.mu.RUnlock()

	if r.staged != nil {
		for _, v := range table(r.staged) {
			if filter.Match(v) {
				out = append(out, v)
			}
		}
	}
	return out
}

func put[T any](r *memoryRepository, table func(*memoryState) map[string]T, id string, v T) {
	if r.staged != nil {
		table(r.staged)[id] = v
		return
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	table(r.store.state)[id] = v
}

func (r *memoryRepository) nextSeq() int64 {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.seq++
	return r.store.seq
}

func articles(s *memoryState) map[string]model.Article         { return s.articles }
func books(s *memoryState) map[string]model.Book               { return s.books }
func members(s *memoryState) map[string]model.Member           { return s.members }
func transactions(s *memoryState) map[string]model.Transaction { return s.transactions }
func reservations(s *memoryState) map[string]model.Reservation { return s.reservations }

func (r *memoryRepository) GetArticle(_ context.Context, id string) (model.Article, error) {
	a, ok := lookup(r, articles, id)
	if !ok {
		return model.Article{}, errors.Wrapf(errs.ErrNotFound, "article %s", id)
	}
	return a, nil
}

func (r *memoryRepository) ListArticles(_ context.Context) ([]model.Article, error) {
	items := collect(r, articles, Filter[model.Article]{})
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *memoryRepository) SaveArticle(_ context.Context, article model.Article) error {
	put(r, articles, article.ID, article)
	return nil
}

func (r *memoryRepository) GetBook(_ context.Context, id string) (model.Book, error) {
	b, ok := lookup(r, books, id)
	if !ok {
		return model.Book{}, errors.Wrapf(errs.ErrNotFound, "book %s", id)
	}
	return b, nil
}

func (r *memoryRepository) ListBooks(_ context.Context, filter BookFilter) ([]model.Book, error) {
	items := collect(r, books, filter)
	sort.Slice(items, func(i, j int) bool {
		if items[i].ArticleID != items[j].ArticleID {
			return items[i].ArticleID < items[j].ArticleID
		}
		if items[i].CopyNumber != items[j].CopyNumber {
			return items[i].CopyNumber < items[j].CopyNumber
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (r *memoryRepository) SaveBook(_ context.Context, book model.Book) error {
	put(r, books, book.ID, book)
	return nil
}

func (r *memoryRepository) GetMember(_ context.Context, id string) (model.Member, error) {
	m, ok := lookup(r, members, id)
	if !ok {
		return model.Member{}, errors.Wrapf(errs.ErrNotFound, "member %s", id)
	}
	return m, nil
}

func (r *memoryRepository) SaveMember(_ context.Context, member model.Member) error {
	put(r, members, member.ID, member)
	return nil
}

func (r *memoryRepository) GetTransaction(_ context.Context, id string) (model.Transaction, error) {
	t, ok := lookup(r, transactions, id)
	if !ok {
		return model.Transaction{}, errors.Wrapf(errs.ErrNotFound, "transaction %s", id)
	}
	return t, nil
}

func (r *memoryRepository) ListTransactions(_ context.Context, filter TransactionFilter) ([]model.Transaction, error) {
	items := collect(r, transactions, filter)
	sort.Slice(items, func(i, j int) bool {
		if !items[i].Date.Equal(items[j].Date) {
			return items[i].Date.Before(items[j].Date)
		}
		return items[i].Seq < items[j].Seq
	})
	return items, nil
}

func (r *memoryRepository) SaveTransaction(_ context.Context, txn *model.Transaction) error {
	if txn.Seq == 0 {
		txn.Seq = r.nextSeq()
	}
	put(r, transactions, txn.ID, *txn)
	return nil
}

func (r *memoryRepository) GetReservation(_ context.Context, id string) (model.Reservation, error) {
	res, ok := lookup(r, reservations, id)
	if !ok {
		return model.Reservation{}, errors.Wrapf(errs.ErrNotFound, "reservation %s", id)
	}
	return res, nil
}

func (r *memoryRepository) ListReservations(_ context.Context, filter ReservationFilter) ([]model.Reservation, error) {
	items := collect(r, reservations, filter)
	sort.Slice(items, func(i, j int) bool { return model.QueueLess(items[i], items[j]) })
	return items, nil
}

func (r *memoryRepository) SaveReservation(_ context.Context, res *model.Reservation) error {
	if res.Seq == 0 {
		res.Seq = r.nextSeq()
	}
	put(r, reservations, res.ID, *res)
	return nil
}
