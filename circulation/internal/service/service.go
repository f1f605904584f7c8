package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/config"
	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
	"github.com/Astemirdum/library-circulation/pkg/keylock"
)

// Notifier receives circulation events once the change is committed.
type Notifier interface {
	Publish(ctx context.Context, events ...model.Event) error
}

type nopNotifier struct{}

func (nopNotifier) Publish(context.Context, ...model.Event) error { return nil }

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	locks    *keylock.Locker
	notifier Notifier
	history  *historyCache
	cfg      config.Circulation
	now      func() time.Time
}

func NewService(repo repository.Repository, notifier Notifier, cfg config.Circulation, log *zap.Logger) *Service {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	def := config.DefaultCirculation()
	if cfg.LoanPeriod <= 0 {
		cfg.LoanPeriod = def.LoanPeriod
	}
	if cfg.ReservationTTL <= 0 {
		cfg.ReservationTTL = def.ReservationTTL
	}
	if cfg.PickupWindow <= 0 {
		cfg.PickupWindow = def.PickupWindow
	}
	return &Service{
		log:      log.Named("service"),
		repo:     repo,
		locks:    keylock.New(),
		notifier: notifier,
		history:  newHistoryCache(),
		cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Now is the service clock; sweeps triggered without an explicit time use it.
func (s *Service) Now() time.Time {
	return s.now()
}

func articleKey(id string) string { return "article:" + id }
func bookKey(id string) string    { return "book:" + id }
func barcodeKey(code string) string {
	if code == "" {
		return ""
	}
	return "barcode:" + code
}

// effects collects what has to happen after commit.
type effects struct {
	events  []model.Event
	members map[string]struct{}
}

func (fx *effects) emit(ev model.Event) {
	fx.events = append(fx.events, ev)
	fx.touch(ev.MemberID)
}

func (fx *effects) touch(memberIDs ...string) {
	for _, id := range memberIDs {
		if id == "" {
			continue
		}
		if fx.members == nil {
			fx.members = make(map[string]struct{})
		}
		fx.members[id] = struct{}{}
	}
}

// mutate runs fn under the keyed locks inside one repository transaction.
// Events and history invalidation are applied only after a successful commit.
func (s *Service) mutate(ctx context.Context, keys []string, fn func(repo repository.Repository, fx *effects) error) error {
	unlock, err := s.locks.Lock(ctx, keys...)
	if err != nil {
		return err
	}
	fx := &effects{}
	err = s.repo.WithTx(ctx, func(repo repository.Repository) error {
		return fn(repo, fx)
	})
	unlock()
	if err != nil {
		return err
	}
	s.apply(ctx, fx)
	return nil
}

func (s *Service) apply(ctx context.Context, fx *effects) {
	members := make([]string, 0, len(fx.members))
	for id := range fx.members {
		members = append(members, id)
	}
	s.history.invalidate(members...)

	if len(fx.events) == 0 {
		return
	}
	if err := s.notifier.Publish(ctx, fx.events...); err != nil {
		s.log.Warn("publish events", zap.Int("count", len(fx.events)), zap.Error(err))
	}
}

func transition(book *model.Book, to model.BookStatus) error {
	if !book.Status.CanTransition(to) {
		return errors.Wrapf(errs.ErrInvalidTransition, "book %s: %s -> %s", book.ID, book.Status, to)
	}
	book.Status = to
	return nil
}

// offerNext hands an Available copy to the head waiting reservation of its
// article. The copy stays Available when nobody waits. The pickup deadline
// counts from now.
func (s *Service) offerNext(ctx context.Context, repo repository.Repository, fx *effects, book *model.Book, now time.Time) error {
	if book.Status != model.BookAvailable {
		return nil
	}
	active, err := repo.ListReservations(ctx,
		repository.ReservationsOfArticle(book.ArticleID).And(repository.ReservationsWithStatus(model.ReservationActive)))
	if err != nil {
		return err
	}
	for _, r := range active {
		if !r.Waiting() {
			continue
		}
		if err = transition(book, model.BookReserved); err != nil {
			return err
		}
		if err = repo.SaveBook(ctx, *book); err != nil {
			return err
		}
		r.SelectedBook = book.ID
		r.OfferedAt = &now
		r.ExpiresAt = now.Add(s.cfg.PickupWindow)
		if err = repo.SaveReservation(ctx, &r); err != nil {
			return err
		}
		s.log.Debug("copy offered",
			zap.String("book", book.ID), zap.String("reservation", r.ID), zap.String("member", r.MemberID))
		fx.emit(model.Event{
			Type:          model.EventReservationOffered,
			Timestamp:     now,
			ArticleID:     r.ArticleID,
			BookID:        book.ID,
			MemberID:      r.MemberID,
			ReservationID: r.ID,
			BookStatus:    book.Status,
		})
		return nil
	}
	return nil
}

// release returns a copy held for a reservation to circulation and offers
// it to the next waiting reservation.
func (s *Service) release(ctx context.Context, repo repository.Repository, fx *effects, bookID string, now time.Time) error {
	book, err := repo.GetBook(ctx, bookID)
	if err != nil {
		return err
	}
	if book.Status != model.BookReserved {
		return nil
	}
	if err = transition(&book, model.BookAvailable); err != nil {
		return err
	}
	if err = repo.SaveBook(ctx, book); err != nil {
		return err
	}
	return s.offerNext(ctx, repo, fx, &book, now)
}
