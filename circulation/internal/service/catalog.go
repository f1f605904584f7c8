package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
)

func (s *Service) CreateArticle(ctx context.Context, req model.CreateArticleRequest) (model.Article, error) {
	article := model.Article{
		ID:     strings.TrimSpace(req.ID),
		Title:  req.Title,
		Author: req.Author,
		ISBN:   req.ISBN,
	}
	if article.ID == "" {
		article.ID = uuid.NewString()
	}
	err := s.mutate(ctx, []string{articleKey(article.ID)}, func(repo repository.Repository, _ *effects) error {
		if _, err := repo.GetArticle(ctx, article.ID); err == nil {
			books, err := repo.ListBooks(ctx, repository.BooksOfArticle(article.ID))
			if err != nil {
				return err
			}
			if len(books) > 0 {
				return errors.Wrapf(errs.ErrArticleInUse, "article %s has %d copies", article.ID, len(books))
			}
		} else if !errors.Is(err, errs.ErrNotFound) {
			return err
		}
		return repo.SaveArticle(ctx, article)
	})
	if err != nil {
		return model.Article{}, err
	}
	return article, nil
}

func (s *Service) GetArticle(ctx context.Context, articleID string) (model.Article, error) {
	return s.repo.GetArticle(ctx, articleID)
}

// AddBook registers a new copy. A zero CopyNumber takes the next free number
// of the article.
func (s *Service) AddBook(ctx context.Context, req model.AddBookRequest) (model.Book, error) {
	book := model.Book{
		ID:         uuid.NewString(),
		ArticleID:  req.ArticleID,
		CopyNumber: req.CopyNumber,
		Barcode:    strings.TrimSpace(req.Barcode),
		Status:     model.BookAvailable,
		Condition:  req.Condition,
		Location:   req.Location,
	}
	if book.Condition == "" {
		book.Condition = model.ConditionExcellent
	}
	keys := []string{articleKey(book.ArticleID), barcodeKey(book.Barcode)}
	err := s.mutate(ctx, keys, func(repo repository.Repository, fx *effects) error {
		if _, err := repo.GetArticle(ctx, book.ArticleID); err != nil {
			return err
		}
		if book.CopyNumber != 0 {
			same, err := repo.ListBooks(ctx,
				repository.BooksOfArticle(book.ArticleID).And(repository.BookWithCopyNumber(book.CopyNumber)))
			if err != nil {
				return err
			}
			if len(same) > 0 {
				return errors.Wrapf(errs.ErrDuplicateCopy, "copy %d of article %s", book.CopyNumber, book.ArticleID)
			}
		} else {
			copies, err := repo.ListBooks(ctx, repository.BooksOfArticle(book.ArticleID))
			if err != nil {
				return err
			}
			for _, c := range copies {
				if c.CopyNumber > book.CopyNumber {
					book.CopyNumber = c.CopyNumber
				}
			}
			book.CopyNumber++
		}
		if book.Barcode != "" {
			same, err := repo.ListBooks(ctx, repository.BookWithBarcode(book.Barcode))
			if err != nil {
				return err
			}
			if len(same) > 0 {
				return errors.Wrapf(errs.ErrDuplicateCopy, "barcode %s", book.Barcode)
			}
		}
		if err := repo.SaveBook(ctx, book); err != nil {
			return err
		}
		// a new copy serves the queue like a returned one
		return s.offerNext(ctx, repo, fx, &book, s.now())
	})
	if err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (s *Service) GetBook(ctx context.Context, bookID string) (model.Book, error) {
	return s.repo.GetBook(ctx, bookID)
}

const defaultBookHistoryLimit = 10

// GetBookHistory lists the ledger entries of one copy, newest first, and the
// unreturned Issue of the current borrower when the copy is Issued.
// A non-positive limit means the default.
func (s *Service) GetBookHistory(ctx context.Context, bookID string, limit int) (model.BookHistory, error) {
	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return model.BookHistory{}, err
	}
	txns, err := s.repo.ListTransactions(ctx, repository.TransactionsOfBook(bookID))
	if err != nil {
		return model.BookHistory{}, err
	}
	if limit <= 0 {
		limit = defaultBookHistoryLimit
	}

	history := model.BookHistory{Book: book, Transactions: make([]model.Transaction, 0, min(limit, len(txns)))}
	for i := len(txns) - 1; i >= 0; i-- {
		txn := txns[i]
		if book.Status == model.BookIssued && history.CurrentIssue == nil &&
			txn.Type == model.TransactionIssue && !txn.Returned {
			history.CurrentIssue = &txn
		}
		if len(history.Transactions) < limit {
			history.Transactions = append(history.Transactions, txn)
		}
	}
	return history, nil
}

func (s *Service) ListBooks(ctx context.Context, articleID string, statuses ...model.BookStatus) (model.ListBooks, error) {
	if _, err := s.repo.GetArticle(ctx, articleID); err != nil {
		return model.ListBooks{}, err
	}
	filter := repository.BooksOfArticle(articleID)
	if len(statuses) > 0 {
		filter = filter.And(repository.BooksWithStatus(statuses...))
	}
	books, err := s.repo.ListBooks(ctx, filter)
	if err != nil {
		return model.ListBooks{}, err
	}
	return model.ListBooks{Items: books}, nil
}

// FindAvailableBooks lists the Available copies of an article by copy number.
func (s *Service) FindAvailableBooks(ctx context.Context, articleID string) ([]model.Book, error) {
	books, err := s.ListBooks(ctx, articleID, model.BookAvailable)
	if err != nil {
		return nil, err
	}
	return books.Items, nil
}

// SetBookStatus moves a copy into or out of the administrative statuses.
// Issued and Reserved are owned by the ledger and the queue. Every change is
// appended to the copy's maintenance log, with the reason when one is given.
func (s *Service) SetBookStatus(ctx context.Context, bookID string, status model.BookStatus, reason string) (model.Book, error) {
	reason = strings.TrimSpace(reason)
	if !status.OutOfCirculation() && status != model.BookAvailable {
		return model.Book{}, errors.Wrapf(errs.ErrInvalidTransition, "status %s is not set manually", status)
	}
	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return model.Book{}, err
	}
	keys := []string{articleKey(book.ArticleID), bookKey(book.ID)}
	err = s.mutate(ctx, keys, func(repo repository.Repository, fx *effects) error {
		book, err = repo.GetBook(ctx, bookID)
		if err != nil {
			return err
		}
		from := book.Status
		if status == model.BookAvailable && !from.OutOfCirculation() {
			return errors.Wrapf(errs.ErrInvalidTransition, "book %s: %s -> %s", book.ID, from, status)
		}
		if err = transition(&book, status); err != nil {
			return err
		}
		now := s.now()
		book.MaintenanceLog = appendLog(book.MaintenanceLog, now, from, status, reason)
		if from == model.BookReserved {
			if err = s.dropHold(ctx, repo, fx, book.ID, now); err != nil {
				return err
			}
		}
		if err = repo.SaveBook(ctx, book); err != nil {
			return err
		}
		s.log.Info("book status changed", zap.String("book", book.ID),
			zap.String("from", string(from)), zap.String("to", string(book.Status)), zap.String("reason", reason))
		fx.emit(model.Event{
			Type:       model.EventBookStatusChanged,
			Timestamp:  now,
			ArticleID:  book.ArticleID,
			BookID:     book.ID,
			BookStatus: book.Status,
			Reason:     reason,
		})
		return s.offerNext(ctx, repo, fx, &book, now)
	})
	if err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func appendLog(log string, at time.Time, from, to model.BookStatus, reason string) string {
	line := at.Format(time.RFC3339) + ": " + string(to)
	switch {
	case reason != "":
		line += ", " + reason
	case to == model.BookAvailable && from.OutOfCirculation():
		line += ", returned to service"
	}
	if log == "" {
		return line
	}
	return log + "\n" + line
}

// dropHold puts the reservation holding a withdrawn copy back in line.
func (s *Service) dropHold(ctx context.Context, repo repository.Repository, fx *effects, bookID string, now time.Time) error {
	holders, err := repo.ListReservations(ctx,
		repository.ReservationsSelecting(bookID).And(repository.ReservationsWithStatus(model.ReservationActive)))
	if err != nil {
		return err
	}
	for _, r := range holders {
		if !r.Holds() {
			continue
		}
		r.SelectedBook = ""
		r.OfferedAt = nil
		r.ExpiresAt = now.Add(s.cfg.ReservationTTL)
		if err = repo.SaveReservation(ctx, &r); err != nil {
			return err
		}
		s.log.Info("hold dropped", zap.String("reservation", r.ID), zap.String("book", bookID))
		fx.emit(model.Event{
			Type:          model.EventReservationRequeued,
			Timestamp:     now,
			ArticleID:     r.ArticleID,
			BookID:        bookID,
			MemberID:      r.MemberID,
			ReservationID: r.ID,
		})
	}
	return nil
}

func (s *Service) RegisterMember(ctx context.Context, req model.RegisterMemberRequest) (model.Member, error) {
	member := model.Member{ID: strings.TrimSpace(req.ID), Name: req.Name}
	if member.ID == "" {
		member.ID = uuid.NewString()
	}
	if err := s.repo.SaveMember(ctx, member); err != nil {
		return model.Member{}, err
	}
	return member, nil
}

// AvailabilityReport counts Available and total copies per article; all
// articles when none are given.
func (s *Service) AvailabilityReport(ctx context.Context, articleIDs ...string) ([]model.ArticleAvailability, error) {
	var articles []model.Article
	if len(articleIDs) == 0 {
		all, err := s.repo.ListArticles(ctx)
		if err != nil {
			return nil, err
		}
		articles = all
	} else {
		for _, id := range articleIDs {
			a, err := s.repo.GetArticle(ctx, id)
			if err != nil {
				return nil, err
			}
			articles = append(articles, a)
		}
	}

	report := make([]model.ArticleAvailability, 0, len(articles))
	for _, a := range articles {
		books, err := s.repo.ListBooks(ctx, repository.BooksOfArticle(a.ID))
		if err != nil {
			return nil, err
		}
		row := model.ArticleAvailability{ArticleID: a.ID, Title: a.Title, Total: len(books)}
		for _, b := range books {
			if b.Status == model.BookAvailable {
				row.Available++
			}
		}
		report = append(report, row)
	}
	return report, nil
}
