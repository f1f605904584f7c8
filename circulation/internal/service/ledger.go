package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
)

// CreateIssue lends an Available copy to a member.
func (s *Service) CreateIssue(ctx context.Context, req model.IssueRequest) (model.Transaction, error) {
	book, err := s.repo.GetBook(ctx, req.BookID)
	if err != nil {
		return model.Transaction{}, err
	}
	if book.ArticleID != req.ArticleID {
		return model.Transaction{}, errors.Wrapf(errs.ErrArticleMismatch, "book %s, article %s", book.ID, req.ArticleID)
	}

	var txn model.Transaction
	keys := []string{articleKey(book.ArticleID), bookKey(book.ID)}
	err = s.mutate(ctx, keys, func(repo repository.Repository, fx *effects) error {
		if _, err := repo.GetMember(ctx, req.MemberID); err != nil {
			return err
		}
		book, err := repo.GetBook(ctx, req.BookID)
		if err != nil {
			return err
		}
		if book.Status != model.BookAvailable {
			return errors.Wrapf(errs.ErrNotAvailable, "book %s is %s", book.ID, book.Status)
		}
		txn, err = s.issue(ctx, repo, fx, &book, req.MemberID, req.Date, req.DueDate)
		return err
	})
	if err != nil {
		return model.Transaction{}, err
	}
	return txn, nil
}

// issue records an Issue and moves the copy to Issued. The caller has
// checked the copy may be lent.
func (s *Service) issue(ctx context.Context, repo repository.Repository, fx *effects,
	book *model.Book, memberID string, date time.Time, dueDate *time.Time,
) (model.Transaction, error) {
	if date.IsZero() {
		date = s.now()
	}
	if dueDate == nil {
		due := date.Add(s.cfg.LoanPeriod)
		dueDate = &due
	}
	if err := transition(book, model.BookIssued); err != nil {
		return model.Transaction{}, err
	}
	txn := model.Transaction{
		ID:        uuid.NewString(),
		Type:      model.TransactionIssue,
		ArticleID: book.ArticleID,
		BookID:    book.ID,
		MemberID:  memberID,
		Date:      date,
		DueDate:   dueDate,
	}
	if err := repo.SaveTransaction(ctx, &txn); err != nil {
		return model.Transaction{}, err
	}
	if err := repo.SaveBook(ctx, *book); err != nil {
		return model.Transaction{}, err
	}
	fx.emit(model.Event{
		Type:          model.EventBookIssued,
		Timestamp:     date,
		ArticleID:     book.ArticleID,
		BookID:        book.ID,
		MemberID:      memberID,
		TransactionID: txn.ID,
		BookStatus:    book.Status,
	})
	return txn, nil
}

// CreateReturn closes an Issue. The copy goes to the head waiting reservation
// of its article, or back to Available.
func (s *Service) CreateReturn(ctx context.Context, issueID string) (model.Transaction, error) {
	issue, err := s.repo.GetTransaction(ctx, issueID)
	if err != nil {
		return model.Transaction{}, err
	}
	if issue.Type != model.TransactionIssue {
		return model.Transaction{}, errors.Wrapf(errs.ErrNotIssued, "transaction %s is a %s", issue.ID, issue.Type)
	}

	var ret model.Transaction
	keys := []string{articleKey(issue.ArticleID), bookKey(issue.BookID)}
	err = s.mutate(ctx, keys, func(repo repository.Repository, fx *effects) error {
		issue, err := repo.GetTransaction(ctx, issueID)
		if err != nil {
			return err
		}
		if issue.Returned {
			return errors.Wrapf(errs.ErrAlreadyReturned, "transaction %s", issue.ID)
		}
		book, err := repo.GetBook(ctx, issue.BookID)
		if err != nil {
			return err
		}
		if book.Status != model.BookIssued {
			return errors.Wrapf(errs.ErrNotIssued, "book %s is %s", book.ID, book.Status)
		}

		now := s.now()
		issue.Returned = true
		if err = repo.SaveTransaction(ctx, &issue); err != nil {
			return err
		}
		ret = model.Transaction{
			ID:                uuid.NewString(),
			Type:              model.TransactionReturn,
			ArticleID:         issue.ArticleID,
			BookID:            issue.BookID,
			MemberID:          issue.MemberID,
			Date:              now,
			LinkedTransaction: issue.ID,
		}
		if err = repo.SaveTransaction(ctx, &ret); err != nil {
			return err
		}
		if err = transition(&book, model.BookAvailable); err != nil {
			return err
		}
		if err = repo.SaveBook(ctx, book); err != nil {
			return err
		}
		fx.emit(model.Event{
			Type:          model.EventBookReturned,
			Timestamp:     now,
			ArticleID:     book.ArticleID,
			BookID:        book.ID,
			MemberID:      issue.MemberID,
			TransactionID: ret.ID,
			BookStatus:    book.Status,
		})
		return s.offerNext(ctx, repo, fx, &book, now)
	})
	if err != nil {
		return model.Transaction{}, err
	}
	return ret, nil
}

func (s *Service) GetTransaction(ctx context.Context, id string) (model.Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

// GetMemberIssuedBooks lists the member's unreturned loans.
func (s *Service) GetMemberIssuedBooks(ctx context.Context, memberID string) ([]model.IssuedBook, error) {
	if _, err := s.repo.GetMember(ctx, memberID); err != nil {
		return nil, err
	}
	txns, err := s.repo.ListTransactions(ctx, repository.TransactionsOfMember(memberID).
		And(repository.TransactionsOfType(model.TransactionIssue)).
		And(repository.TransactionsNotReturned()))
	if err != nil {
		return nil, err
	}
	now := s.now()
	issued := make([]model.IssuedBook, 0, len(txns))
	for _, txn := range txns {
		book, err := s.repo.GetBook(ctx, txn.BookID)
		if err != nil {
			return nil, err
		}
		item := model.IssuedBook{
			Book:        book,
			Transaction: txn,
			Overdue:     txn.Overdue(now),
		}
		if txn.DueDate != nil {
			item.DueDate = *txn.DueDate
		}
		issued = append(issued, item)
	}
	return issued, nil
}
