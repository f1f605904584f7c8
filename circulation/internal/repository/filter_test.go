package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

func TestFilter_Where(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		where    func() (string, []interface{}, error)
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name: "single",
			where: func() (string, []interface{}, error) {
				return BooksOfArticle("a1").Where().ToSql()
			},
			wantSQL:  "(article_id = ?)",
			wantArgs: []interface{}{"a1"},
		},
		{
			name: "status in",
			where: func() (string, []interface{}, error) {
				return BooksWithStatus(model.BookAvailable, model.BookReserved).Where().ToSql()
			},
			wantSQL:  "(status IN (?,?))",
			wantArgs: []interface{}{"Available", "Reserved"},
		},
		{
			name: "copy of article",
			where: func() (string, []interface{}, error) {
				return BooksOfArticle("a1").And(BookWithCopyNumber(2)).Where().ToSql()
			},
			wantSQL:  "(article_id = ? AND copy_number = ?)",
			wantArgs: []interface{}{"a1", 2},
		},
		{
			name: "combined",
			where: func() (string, []interface{}, error) {
				return ReservationsWithStatus(model.ReservationActive).And(ReservationsExpiredBefore(now)).Where().ToSql()
			},
			wantSQL:  "(status = ? AND expires_at < ?)",
			wantArgs: []interface{}{"Active", now},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sql, args, err := tt.where()
			require.NoError(t, err)
			require.Equal(t, tt.wantSQL, sql)
			require.Equal(t, tt.wantArgs, args)
		})
	}

	require.Nil(t, AllBooks().Where())
	require.Nil(t, AllTransactions().Where())
}

func TestFilter_Match(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	active := ReservationsOfArticle("a1").And(ReservationsWithStatus(model.ReservationActive))
	require.True(t, active.Match(model.Reservation{ArticleID: "a1", Status: model.ReservationActive}))
	require.False(t, active.Match(model.Reservation{ArticleID: "a2", Status: model.ReservationActive}))
	require.False(t, active.Match(model.Reservation{ArticleID: "a1", Status: model.ReservationExpired}))

	stale := ReservationsExpiredBefore(now)
	require.True(t, stale.Match(model.Reservation{ExpiresAt: now.Add(-time.Second)}))
	require.False(t, stale.Match(model.Reservation{ExpiresAt: now}))

	open := TransactionsOfType(model.TransactionIssue).And(TransactionsNotReturned())
	require.True(t, open.Match(model.Transaction{Type: model.TransactionIssue}))
	require.False(t, open.Match(model.Transaction{Type: model.TransactionIssue, Returned: true}))
	require.False(t, open.Match(model.Transaction{Type: model.TransactionReturn}))

	copy2 := BooksOfArticle("a1").And(BookWithCopyNumber(2))
	require.True(t, copy2.Match(model.Book{ArticleID: "a1", CopyNumber: 2}))
	require.False(t, copy2.Match(model.Book{ArticleID: "a1", CopyNumber: 3}))

	ofBook := TransactionsOfBook("b1")
	require.True(t, ofBook.Match(model.Transaction{BookID: "b1"}))
	require.False(t, ofBook.Match(model.Transaction{BookID: "b2"}))

	require.True(t, AllBooks().Match(model.Book{}))
}
