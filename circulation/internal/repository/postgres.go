package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type repository struct {
	pool *pgxpool.Pool
	db   querier
	inTx bool
	log  *zap.Logger
}

var _ Repository = (*repository)(nil)

func NewRepository(pool *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		pool: pool,
		db:   pool,
		log:  log.Named("repo"),
	}, nil
}

const (
	articleTableName     = `article`
	bookTableName        = `book`
	memberTableName      = `library_member`
	transactionTableName = `library_transaction`
	reservationTableName = `reservation`

	reservationActiveConstraint = `reservation_active_member_uniq`
	bookCopyConstraint          = `book_article_copy_uniq`
	bookBarcodeConstraint       = `book_barcode_uniq`
)

var (
	qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	articleColumns     = []string{"id", "title", "author", "isbn"}
	bookColumns        = []string{"id", "article_id", "copy_number", "barcode", "status", "condition", "location", "maintenance_log"}
	memberColumns      = []string{"id", "name"}
	transactionColumns = []string{"id", "seq", "transaction_type", "article_id", "book_id", "member_id", "date", "due_date", "returned", "linked_transaction"}
	reservationColumns = []string{"id", "seq", "article_id", "member_id", "status", "selected_book", "created_at", "expires_at", "offered_at", "cancellation_reason", "issue_transaction"}
)

func (r *repository) WithTx(ctx context.Context, fn func(repo Repository) error) error {
	if r.inTx {
		return fn(r)
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Storage("begin", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			r.log.Warn("rollback", zap.Error(rbErr))
		}
	}()

	if err = fn(&repository{pool: r.pool, db: tx, inTx: true, log: r.log}); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return errs.Storage("commit", err)
	}
	return nil
}

// lockRow locks the selected rows until the transaction ends.
func (r *repository) lockRow(q sq.SelectBuilder) sq.SelectBuilder {
	if r.inTx {
		return q.Suffix("FOR UPDATE")
	}
	return q
}

func getOne[T any](ctx context.Context, r *repository, op string, q sq.SelectBuilder) (T, error) {
	var zero T
	query, args, err := q.ToSql()
	if err != nil {
		return zero, errs.Storage(op, err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return zero, errs.Storage(op, err)
	}
	defer rows.Close()

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, errs.ErrNotFound
		}
		r.log.Error(op, zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return zero, errs.Storage(op, err)
	}
	return item, nil
}

func getList[T any](ctx context.Context, r *repository, op string, q sq.SelectBuilder, where sq.Sqlizer) ([]T, error) {
	if where != nil {
		q = q.Where(where)
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, errs.Storage(op, err)
	}
	r.log.Debug(op, zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errs.Storage(op, err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, errs.Storage(op, errors.Wrap(err, "pgx.CollectRows"))
	}
	return items, nil
}

func (r *repository) exec(ctx context.Context, op string, q sq.Sqlizer) error {
	query, args, err := q.ToSql()
	if err != nil {
		return errs.Storage(op, err)
	}
	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		return r.mapWriteErr(op, err)
	}
	return nil
}

func (r *repository) mapWriteErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		switch pgErr.ConstraintName {
		case reservationActiveConstraint:
			return errs.ErrDuplicateReservation
		case bookCopyConstraint, bookBarcodeConstraint:
			return errs.ErrDuplicateCopy
		}
	}
	return errs.Storage(op, err)
}

func (r *repository) GetArticle(ctx context.Context, id string) (model.Article, error) {
	q := r.lockRow(qb.Select(articleColumns...).From(articleTableName).Where(sq.Eq{"id": id}).Limit(1))
	a, err := getOne[model.Article](ctx, r, "GetArticle", q)
	if errors.Is(err, errs.ErrNotFound) {
		return a, errors.Wrapf(err, "article %s", id)
	}
	return a, err
}

func (r *repository) ListArticles(ctx context.Context) ([]model.Article, error) {
	q := qb.Select(articleColumns...).From(articleTableName).OrderBy("id")
	return getList[model.Article](ctx, r, "ListArticles", q, nil)
}

func (r *repository) SaveArticle(ctx context.Context, article model.Article) error {
	q := qb.Insert(articleTableName).
		Columns(articleColumns...).
		Values(article.ID, article.Title, article.Author, article.ISBN).
		Suffix("ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title, author = EXCLUDED.author, isbn = EXCLUDED.isbn")
	return r.exec(ctx, "SaveArticle", q)
}

func (r *repository) GetBook(ctx context.Context, id string) (model.Book, error) {
	q := r.lockRow(qb.Select(bookColumns...).From(bookTableName).Where(sq.Eq{"id": id}).Limit(1))
	b, err := getOne[model.Book](ctx, r, "GetBook", q)
	if errors.Is(err, errs.ErrNotFound) {
		return b, errors.Wrapf(err, "book %s", id)
	}
	return b, err
}

func (r *repository) ListBooks(ctx context.Context, filter BookFilter) ([]model.Book, error) {
	q := qb.Select(bookColumns...).From(bookTableName).OrderBy("article_id", "copy_number", "id")
	return getList[model.Book](ctx, r, "ListBooks", q, filter.Where())
}

func (r *repository) SaveBook(ctx context.Context, book model.Book) error {
	q := qb.Insert(bookTableName).
		Columns(bookColumns...).
		Values(book.ID, book.ArticleID, book.CopyNumber, book.Barcode, string(book.Status), string(book.Condition), book.Location, book.MaintenanceLog).
		Suffix(`ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, condition = EXCLUDED.condition,
			location = EXCLUDED.location, barcode = EXCLUDED.barcode, maintenance_log = EXCLUDED.maintenance_log`)
	return r.exec(ctx, "SaveBook", q)
}

func (r *repository) GetMember(ctx context.Context, id string) (model.Member, error) {
	q := qb.Select(memberColumns...).From(memberTableName).Where(sq.Eq{"id": id}).Limit(1)
	m, err := getOne[model.Member](ctx, r, "GetMember", q)
	if errors.Is(err, errs.ErrNotFound) {
		return m, errors.Wrapf(err, "member %s", id)
	}
	return m, err
}

func (r *repository) SaveMember(ctx context.Context, member model.Member) error {
	q := qb.Insert(memberTableName).
		Columns(memberColumns...).
		Values(member.ID, member.Name).
		Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name")
	return r.exec(ctx, "SaveMember", q)
}

func (r *repository) GetTransaction(ctx context.Context, id string) (model.Transaction, error) {
	q := r.lockRow(qb.Select(transactionColumns...).From(transactionTableName).Where(sq.Eq{"id": id}).Limit(1))
	t, err := getOne[model.Transaction](ctx, r, "GetTransaction", q)
	if errors.Is(err, errs.ErrNotFound) {
		return t, errors.Wrapf(err, "transaction %s", id)
	}
	return t, err
}

func (r *repository) ListTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error) {
	q := qb.Select(transactionColumns...).From(transactionTableName).OrderBy("date", "seq")
	return getList[model.Transaction](ctx, r, "ListTransactions", q, filter.Where())
}

// SaveTransaction only ever updates the returned flag of an existing row.
func (r *repository) SaveTransaction(ctx context.Context, txn *model.Transaction) error {
	const q = `
insert into library_transaction (id, transaction_type, article_id, book_id, member_id, date, due_date, returned, linked_transaction)
values (@id, @transaction_type, @article_id, @book_id, @member_id, @date, @due_date, @returned, @linked_transaction)
on conflict (id) do update set returned = excluded.returned
returning seq`
	args := pgx.NamedArgs{
		"id":                 txn.ID,
		"transaction_type":   string(txn.Type),
		"article_id":         txn.ArticleID,
		"book_id":            txn.BookID,
		"member_id":          txn.MemberID,
		"date":               txn.Date,
		"due_date":           txn.DueDate,
		"returned":           txn.Returned,
		"linked_transaction": txn.LinkedTransaction,
	}
	if err := r.db.QueryRow(ctx, q, args).Scan(&txn.Seq); err != nil {
		return r.mapWriteErr("SaveTransaction", err)
	}
	return nil
}

func (r *repository) GetReservation(ctx context.Context, id string) (model.Reservation, error) {
	q := r.lockRow(qb.Select(reservationColumns...).From(reservationTableName).Where(sq.Eq{"id": id}).Limit(1))
	res, err := getOne[model.Reservation](ctx, r, "GetReservation", q)
	if errors.Is(err, errs.ErrNotFound) {
		return res, errors.Wrapf(err, "reservation %s", id)
	}
	return res, err
}

func (r *repository) ListReservations(ctx context.Context, filter ReservationFilter) ([]model.Reservation, error) {
	q := qb.Select(reservationColumns...).From(reservationTableName).OrderBy("created_at", "seq")
	return getList[model.Reservation](ctx, r, "ListReservations", q, filter.Where())
}

func (r *repository) SaveReservation(ctx context.Context, res *model.Reservation) error {
	const q = `
insert into reservation (id, article_id, member_id, status, selected_book, created_at, expires_at, offered_at, cancellation_reason, issue_transaction)
values (@id, @article_id, @member_id, @status, @selected_book, @created_at, @expires_at, @offered_at, @cancellation_reason, @issue_transaction)
on conflict (id) do update set
    status = excluded.status,
    selected_book = excluded.selected_book,
    expires_at = excluded.expires_at,
    offered_at = excluded.offered_at,
    cancellation_reason = excluded.cancellation_reason,
    issue_transaction = excluded.issue_transaction
returning seq`
	args := pgx.NamedArgs{
		"id":                  res.ID,
		"article_id":          res.ArticleID,
		"member_id":           res.MemberID,
		"status":              string(res.Status),
		"selected_book":       res.SelectedBook,
		"created_at":          res.CreatedAt,
		"expires_at":          res.ExpiresAt,
		"offered_at":          res.OfferedAt,
		"cancellation_reason": res.CancellationReason,
		"issue_transaction":   res.IssueTransaction,
	}
	if err := r.db.QueryRow(ctx, q, args).Scan(&res.Seq); err != nil {
		return r.mapWriteErr("SaveReservation", err)
	}
	return nil
}
