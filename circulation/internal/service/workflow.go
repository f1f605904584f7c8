package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
)

// CreateReturnFromReservation returns the copy issued when the reservation
// was fulfilled.
func (s *Service) CreateReturnFromReservation(ctx context.Context, reservationID string) (model.Transaction, error) {
	r, err := s.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return model.Transaction{}, err
	}
	if r.Status != model.ReservationFulfilled || r.IssueTransaction == "" {
		return model.Transaction{}, errors.Wrapf(errs.ErrNotFulfilled, "reservation %s is %s", r.ID, r.Status)
	}
	return s.CreateReturn(ctx, r.IssueTransaction)
}

// ValidateTransaction checks a transaction draft against the catalog and
// the ledger without recording it.
func (s *Service) ValidateTransaction(ctx context.Context, req model.ValidateTransactionRequest) error {
	book, err := s.repo.GetBook(ctx, req.BookID)
	if err != nil {
		return err
	}
	if book.ArticleID != req.ArticleID {
		return errors.Wrapf(errs.ErrArticleMismatch, "book %s, article %s", book.ID, req.ArticleID)
	}
	if req.Type != model.TransactionReturn {
		return nil
	}
	if req.MemberID == "" {
		return errs.ErrMemberRequired
	}
	if req.LinkedTransaction == "" {
		return nil
	}
	issue, err := s.repo.GetTransaction(ctx, req.LinkedTransaction)
	if err != nil {
		return err
	}
	if issue.BookID != req.BookID {
		return errors.Wrapf(errs.ErrBookMismatch, "issue %s lent book %s", issue.ID, issue.BookID)
	}
	return nil
}

func (s *Service) GetWorkflowStatus(ctx context.Context, reservationID string) (model.WorkflowStatus, error) {
	r, err := s.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return model.WorkflowStatus{}, err
	}
	status := model.WorkflowStatus{
		ReservationID:     r.ID,
		ReservationStatus: r.Status,
		SelectedBook:      r.SelectedBook,
	}
	if r.SelectedBook != "" {
		book, err := s.repo.GetBook(ctx, r.SelectedBook)
		if err != nil {
			return model.WorkflowStatus{}, err
		}
		status.BookStatus = book.Status
	}
	if r.Status == model.ReservationActive {
		if status.QueuePosition, err = s.position(ctx, s.repo, r); err != nil {
			return model.WorkflowStatus{}, err
		}
	}
	if r.IssueTransaction == "" {
		return status, nil
	}

	issue, err := s.repo.GetTransaction(ctx, r.IssueTransaction)
	if err != nil {
		return model.WorkflowStatus{}, err
	}
	status.IssueTransaction = &issue
	if !issue.Returned {
		return status, nil
	}
	returns, err := s.repo.ListTransactions(ctx, repository.TransactionsLinkedTo(issue.ID).
		And(repository.TransactionsOfType(model.TransactionReturn)))
	if err != nil {
		return model.WorkflowStatus{}, err
	}
	if len(returns) > 0 {
		status.ReturnTransaction = &returns[len(returns)-1]
	}
	return status, nil
}
