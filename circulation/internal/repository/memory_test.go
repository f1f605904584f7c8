package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

func TestMemoryRepository_WithTx(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("commit", func(t *testing.T) {
		t.Parallel()
		repo := NewMemoryRepository(zap.NewNop())
		err := repo.WithTx(ctx, func(tx Repository) error {
			if err := tx.SaveBook(ctx, model.Book{ID: "b1", ArticleID: "a1", CopyNumber: 1, Status: model.BookAvailable}); err != nil {
				return err
			}
			// read your own writes
			b, err := tx.GetBook(ctx, "b1")
			require.NoError(t, err)
			require.Equal(t, model.BookAvailable, b.Status)

			// invisible outside until commit
			_, err = repo.GetBook(ctx, "b1")
			require.ErrorIs(t, err, errs.ErrNotFound)
			return nil
		})
		require.NoError(t, err)

		b, err := repo.GetBook(ctx, "b1")
		require.NoError(t, err)
		require.Equal(t, "a1", b.ArticleID)
	})

	t.Run("rollback", func(t *testing.T) {
		t.Parallel()
		repo := NewMemoryRepository(zap.NewNop())
		require.NoError(t, repo.SaveBook(ctx, model.Book{ID: "b1", ArticleID: "a1", Status: model.BookAvailable}))

		boom := errors.New("boom")
		err := repo.WithTx(ctx, func(tx Repository) error {
			require.NoError(t, tx.SaveBook(ctx, model.Book{ID: "b1", ArticleID: "a1", Status: model.BookIssued}))
			require.NoError(t, tx.SaveMember(ctx, model.Member{ID: "m1", Name: "Ann"}))
			return boom
		})
		require.ErrorIs(t, err, boom)

		b, err := repo.GetBook(ctx, "b1")
		require.NoError(t, err)
		require.Equal(t, model.BookAvailable, b.Status)
		_, err = repo.GetMember(ctx, "m1")
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("nested joins outer", func(t *testing.T) {
		t.Parallel()
		repo := NewMemoryRepository(zap.NewNop())
		boom := errors.New("boom")
		err := repo.WithTx(ctx, func(tx Repository) error {
			require.NoError(t, tx.WithTx(ctx, func(inner Repository) error {
				return inner.SaveMember(ctx, model.Member{ID: "m1"})
			}))
			return boom
		})
		require.ErrorIs(t, err, boom)
		_, err = repo.GetMember(ctx, "m1")
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		repo := NewMemoryRepository(zap.NewNop())
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		called := false
		err := repo.WithTx(cctx, func(Repository) error {
			called = true
			return nil
		})
		require.ErrorIs(t, err, context.Canceled)
		require.False(t, called)
	})
}

func TestMemoryRepository_ListInsideTx(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewMemoryRepository(zap.NewNop())
	for i, status := range []model.BookStatus{model.BookAvailable, model.BookAvailable, model.BookIssued} {
		require.NoError(t, repo.SaveBook(ctx, model.Book{
			ID: string(rune('a' + i)), ArticleID: "a1", CopyNumber: i + 1, Status: status,
		}))
	}

	err := repo.WithTx(ctx, func(tx Repository) error {
		// staged update shadows the committed row
		require.NoError(t, tx.SaveBook(ctx, model.Book{ID: "a", ArticleID: "a1", CopyNumber: 1, Status: model.BookIssued}))
		available, err := tx.ListBooks(ctx, BooksOfArticle("a1").And(BooksWithStatus(model.BookAvailable)))
		require.NoError(t, err)
		require.Len(t, available, 1)
		require.Equal(t, "b", available[0].ID)
		return nil
	})
	require.NoError(t, err)

	all, err := repo.ListBooks(ctx, AllBooks())
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, b := range all {
		require.Equal(t, i+1, b.CopyNumber)
	}
}

func TestMemoryRepository_Ordering(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewMemoryRepository(zap.NewNop())
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	first := &model.Reservation{ID: "z", ArticleID: "a1", MemberID: "m1", Status: model.ReservationActive, CreatedAt: t0}
	second := &model.Reservation{ID: "a", ArticleID: "a1", MemberID: "m2", Status: model.ReservationActive, CreatedAt: t0}
	earlier := &model.Reservation{ID: "m", ArticleID: "a1", MemberID: "m3", Status: model.ReservationActive, CreatedAt: t0.Add(-time.Minute)}
	for _, r := range []*model.Reservation{first, second, earlier} {
		require.NoError(t, repo.SaveReservation(ctx, r))
		require.NotZero(t, r.Seq)
	}
	require.Less(t, first.Seq, second.Seq)

	seq := first.Seq
	first.Status = model.ReservationCancelled
	require.NoError(t, repo.SaveReservation(ctx, first))
	require.Equal(t, seq, first.Seq)

	items, err := repo.ListReservations(ctx, AllReservations())
	require.NoError(t, err)
	require.Equal(t, []string{"m", "z", "a"}, []string{items[0].ID, items[1].ID, items[2].ID})

	active, err := repo.ListReservations(ctx, ReservationsWithStatus(model.ReservationActive))
	require.NoError(t, err)
	require.Len(t, active, 2)

	t1 := &model.Transaction{ID: "t1", Type: model.TransactionIssue, MemberID: "m1", Date: t0}
	t2 := &model.Transaction{ID: "t2", Type: model.TransactionReturn, MemberID: "m1", Date: t0, LinkedTransaction: "t1"}
	t0tx := &model.Transaction{ID: "t0", Type: model.TransactionIssue, MemberID: "m2", Date: t0.Add(-time.Hour)}
	for _, txn := range []*model.Transaction{t1, t2, t0tx} {
		require.NoError(t, repo.SaveTransaction(ctx, txn))
	}
	txns, err := repo.ListTransactions(ctx, AllTransactions())
	require.NoError(t, err)
	require.Equal(t, []string{"t0", "t1", "t2"}, []string{txns[0].ID, txns[1].ID, txns[2].ID})

	linked, err := repo.ListTransactions(ctx, TransactionsLinkedTo("t1"))
	require.NoError(t, err)
	require.Len(t, linked, 1)
	require.Equal(t, "t2", linked[0].ID)
}

func TestMemoryRepository_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewMemoryRepository(zap.NewNop())

	_, err := repo.GetArticle(ctx, "x")
	require.ErrorIs(t, err, errs.ErrNotFound)
	_, err = repo.GetTransaction(ctx, "x")
	require.ErrorIs(t, err, errs.ErrNotFound)
	_, err = repo.GetReservation(ctx, "x")
	require.ErrorIs(t, err, errs.ErrNotFound)

	articles, err := repo.ListArticles(ctx)
	require.NoError(t, err)
	require.Empty(t, articles)
}
