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

func activeOf(articleID string) repository.ReservationFilter {
	return repository.ReservationsOfArticle(articleID).
		And(repository.ReservationsWithStatus(model.ReservationActive))
}

// Enqueue appends a reservation to the article queue.
func (s *Service) Enqueue(ctx context.Context, req model.EnqueueRequest) (model.Reservation, error) {
	var res model.Reservation
	err := s.mutate(ctx, []string{articleKey(req.ArticleID)}, func(repo repository.Repository, fx *effects) error {
		if _, err := repo.GetArticle(ctx, req.ArticleID); err != nil {
			return err
		}
		if _, err := repo.GetMember(ctx, req.MemberID); err != nil {
			return err
		}
		dup, err := repo.ListReservations(ctx, activeOf(req.ArticleID).And(repository.ReservationsOfMember(req.MemberID)))
		if err != nil {
			return err
		}
		if len(dup) > 0 {
			return errors.Wrapf(errs.ErrDuplicateReservation, "reservation %s", dup[0].ID)
		}
		loans, err := repo.ListTransactions(ctx, repository.TransactionsOfMember(req.MemberID).
			And(repository.TransactionsOfArticle(req.ArticleID)).
			And(repository.TransactionsOfType(model.TransactionIssue)).
			And(repository.TransactionsNotReturned()))
		if err != nil {
			return err
		}
		if len(loans) > 0 {
			return errors.Wrapf(errs.ErrAlreadyBorrowed, "transaction %s", loans[0].ID)
		}

		now := s.now()
		res = model.Reservation{
			ID:        uuid.NewString(),
			ArticleID: req.ArticleID,
			MemberID:  req.MemberID,
			Status:    model.ReservationActive,
			CreatedAt: now,
			ExpiresAt: now.Add(s.cfg.ReservationTTL),
		}
		if err = repo.SaveReservation(ctx, &res); err != nil {
			return err
		}
		fx.emit(model.Event{
			Type:          model.EventReservationCreated,
			Timestamp:     now,
			ArticleID:     res.ArticleID,
			MemberID:      res.MemberID,
			ReservationID: res.ID,
		})
		return nil
	})
	if err != nil {
		return model.Reservation{}, err
	}
	return res, nil
}

func (s *Service) GetReservation(ctx context.Context, reservationID string) (model.Reservation, error) {
	return s.repo.GetReservation(ctx, reservationID)
}

func (s *Service) GetQueue(ctx context.Context, articleID string) (model.Queue, error) {
	if _, err := s.repo.GetArticle(ctx, articleID); err != nil {
		return model.Queue{}, err
	}
	active, err := s.repo.ListReservations(ctx, activeOf(articleID))
	if err != nil {
		return model.Queue{}, err
	}
	return model.NewQueue(articleID, active), nil
}

// GetPosition is the 1-based rank of an Active reservation in its queue.
func (s *Service) GetPosition(ctx context.Context, reservationID string) (model.QueuePosition, error) {
	r, err := s.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return model.QueuePosition{}, err
	}
	pos, err := s.position(ctx, s.repo, r)
	if err != nil {
		return model.QueuePosition{}, err
	}
	return model.QueuePosition{ReservationID: r.ID, Position: pos}, nil
}

func (s *Service) position(ctx context.Context, repo repository.ReservationRepository, r model.Reservation) (int, error) {
	if r.Status != model.ReservationActive {
		return 0, errors.Wrapf(errs.ErrNotQueued, "reservation %s is %s", r.ID, r.Status)
	}
	active, err := repo.ListReservations(ctx, activeOf(r.ArticleID))
	if err != nil {
		return 0, err
	}
	for i, a := range active {
		if a.ID == r.ID {
			return i + 1, nil
		}
	}
	return 0, errors.Wrapf(errs.ErrNotQueued, "reservation %s", r.ID)
}

// lockReservation runs fn with the reservation re-read under its article lock.
func (s *Service) lockReservation(ctx context.Context, reservationID string, extra []string,
	fn func(repo repository.Repository, fx *effects, r *model.Reservation) error,
) error {
	r, err := s.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return err
	}
	keys := append([]string{articleKey(r.ArticleID)}, extra...)
	return s.mutate(ctx, keys, func(repo repository.Repository, fx *effects) error {
		r, err := repo.GetReservation(ctx, reservationID)
		if err != nil {
			return err
		}
		return fn(repo, fx, &r)
	})
}

// SelectBook binds an Available copy of the article to a waiting reservation.
func (s *Service) SelectBook(ctx context.Context, reservationID, bookID string) (model.Reservation, error) {
	var res model.Reservation
	err := s.lockReservation(ctx, reservationID, []string{bookKey(bookID)},
		func(repo repository.Repository, _ *effects, r *model.Reservation) error {
			if r.Status != model.ReservationActive || r.Holds() {
				return errors.Wrapf(errs.ErrInvalidState, "reservation %s is %s", r.ID, r.Status)
			}
			book, err := repo.GetBook(ctx, bookID)
			if err != nil {
				return err
			}
			if book.ArticleID != r.ArticleID {
				return errors.Wrapf(errs.ErrArticleMismatch, "book %s, article %s", book.ID, r.ArticleID)
			}
			if book.Status != model.BookAvailable {
				return errors.Wrapf(errs.ErrNotAvailable, "book %s is %s", book.ID, book.Status)
			}
			r.SelectedBook = book.ID
			if err = repo.SaveReservation(ctx, r); err != nil {
				return err
			}
			res = *r
			return nil
		})
	if err != nil {
		return model.Reservation{}, err
	}
	return res, nil
}

// CancelReservation ends an Active reservation. A copy held for it moves on
// to the next waiting reservation.
func (s *Service) CancelReservation(ctx context.Context, reservationID, reason string) (model.Reservation, error) {
	reason = strings.TrimSpace(reason)
	var res model.Reservation
	err := s.lockReservation(ctx, reservationID, nil,
		func(repo repository.Repository, fx *effects, r *model.Reservation) error {
			if r.Status != model.ReservationActive {
				return errors.Wrapf(errs.ErrInvalidState, "reservation %s is %s", r.ID, r.Status)
			}
			if reason == "" {
				return errs.ErrMissingReason
			}
			r.CancellationReason = reason
			if err := s.finish(ctx, repo, fx, r, model.ReservationCancelled, model.EventReservationCancelled, s.now()); err != nil {
				return err
			}
			res = *r
			return nil
		})
	if err != nil {
		return model.Reservation{}, err
	}
	return res, nil
}

// finish moves an Active reservation to a terminal status at now and releases
// its hold.
func (s *Service) finish(ctx context.Context, repo repository.Repository, fx *effects,
	r *model.Reservation, status model.ReservationStatus, event model.EventType, now time.Time,
) error {
	held := r.Holds()
	r.Status = status
	if err := repo.SaveReservation(ctx, r); err != nil {
		return err
	}
	fx.emit(model.Event{
		Type:          event,
		Timestamp:     now,
		ArticleID:     r.ArticleID,
		BookID:        r.SelectedBook,
		MemberID:      r.MemberID,
		ReservationID: r.ID,
	})
	if !held {
		return nil
	}
	return s.release(ctx, repo, fx, r.SelectedBook, now)
}

// FulfillReservation issues the selected copy to the reservation's member.
func (s *Service) FulfillReservation(ctx context.Context, reservationID string) (model.FulfillResult, error) {
	r, err := s.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return model.FulfillResult{}, err
	}
	var result model.FulfillResult
	err = s.lockReservation(ctx, reservationID, []string{bookKey(r.SelectedBook)},
		func(repo repository.Repository, fx *effects, r *model.Reservation) error {
			if r.Status != model.ReservationActive {
				return errors.Wrapf(errs.ErrInvalidState, "reservation %s is %s", r.ID, r.Status)
			}
			if r.SelectedBook == "" {
				return errors.Wrapf(errs.ErrNoBookSelected, "reservation %s", r.ID)
			}
			book, err := repo.GetBook(ctx, r.SelectedBook)
			if err != nil {
				return err
			}
			switch {
			case book.Status == model.BookAvailable:
			case book.Status == model.BookReserved && r.Holds():
			default:
				return errors.Wrapf(errs.ErrNotAvailable, "book %s is %s", book.ID, book.Status)
			}
			if book.ArticleID != r.ArticleID {
				return errors.Wrapf(errs.ErrArticleMismatch, "book %s, article %s", book.ID, r.ArticleID)
			}

			txn, err := s.issue(ctx, repo, fx, &book, r.MemberID, time.Time{}, nil)
			if err != nil {
				return err
			}
			r.Status = model.ReservationFulfilled
			r.IssueTransaction = txn.ID
			if err = repo.SaveReservation(ctx, r); err != nil {
				return err
			}
			fx.emit(model.Event{
				Type:          model.EventReservationFulfilled,
				Timestamp:     txn.Date,
				ArticleID:     r.ArticleID,
				BookID:        book.ID,
				MemberID:      r.MemberID,
				ReservationID: r.ID,
				TransactionID: txn.ID,
			})
			result = model.FulfillResult{Reservation: *r, IssueTransaction: txn}
			return nil
		})
	if err != nil {
		return model.FulfillResult{}, err
	}
	return result, nil
}

// ExpireStaleReservations expires Active reservations past their deadline
// and returns how many it changed. Running it again for the same instant
// changes nothing.
func (s *Service) ExpireStaleReservations(ctx context.Context, now time.Time) (int, error) {
	stale, err := s.repo.ListReservations(ctx, repository.ReservationsWithStatus(model.ReservationActive).
		And(repository.ReservationsExpiredBefore(now)))
	if err != nil {
		return 0, err
	}
	expired := 0
	for _, candidate := range stale {
		changed := false
		err = s.lockReservation(ctx, candidate.ID, nil,
			func(repo repository.Repository, fx *effects, r *model.Reservation) error {
				if r.Status != model.ReservationActive || !r.ExpiresAt.Before(now) {
					return nil
				}
				changed = true
				// a copy freed by the sweep is offered with the sweep's own clock,
				// so a second run at the same instant finds nothing to expire
				return s.finish(ctx, repo, fx, r, model.ReservationExpired, model.EventReservationExpired, now)
			})
		if err != nil {
			return expired, err
		}
		if changed {
			expired++
		}
	}
	if expired > 0 {
		s.log.Info("reservations expired", zap.Int("count", expired), zap.Time("now", now))
	}
	return expired, nil
}
