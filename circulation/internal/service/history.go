package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
)

type cachedHistory struct {
	gen   uint64
	items []model.HistoryEntry
}

// historyCache keeps one merged history per member. Every invalidation bumps
// the member generation, so a build racing with a commit is never stored.
type historyCache struct {
	mu      sync.Mutex
	entries map[string]cachedHistory
	gens    map[string]uint64
	group   singleflight.Group
}

func newHistoryCache() *historyCache {
	return &historyCache{
		entries: make(map[string]cachedHistory),
		gens:    make(map[string]uint64),
	}
}

func (c *historyCache) get(memberID string, build func() ([]model.HistoryEntry, error)) ([]model.HistoryEntry, error) {
	c.mu.Lock()
	gen := c.gens[memberID]
	if e, ok := c.entries[memberID]; ok && e.gen == gen {
		c.mu.Unlock()
		return e.items, nil
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do(memberID+"@"+strconv.FormatUint(gen, 10), func() (interface{}, error) {
		items, err := build()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		if c.gens[memberID] == gen {
			c.entries[memberID] = cachedHistory{gen: gen, items: items}
		}
		c.mu.Unlock()
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.HistoryEntry), nil
}

func (c *historyCache) invalidate(memberIDs ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range memberIDs {
		c.gens[id]++
		delete(c.entries, id)
	}
}

// GetHistory merges the member's ledger entries and reservations, oldest first.
func (s *Service) GetHistory(ctx context.Context, memberID string, q model.HistoryQuery) (model.History, error) {
	if q.From != nil && q.To != nil && q.From.After(*q.To) {
		return model.History{}, errors.Wrapf(errs.ErrInvalidRange, "%s > %s", q.From, q.To)
	}
	if _, err := s.repo.GetMember(ctx, memberID); err != nil {
		return model.History{}, err
	}
	all, err := s.history.get(memberID, func() ([]model.HistoryEntry, error) {
		return s.buildHistory(ctx, memberID)
	})
	if err != nil {
		return model.History{}, err
	}

	items := make([]model.HistoryEntry, 0, len(all))
	for _, e := range all {
		if q.Match(e) {
			items = append(items, e)
		}
	}
	return model.History{MemberID: memberID, Items: items}, nil
}

func (s *Service) buildHistory(ctx context.Context, memberID string) ([]model.HistoryEntry, error) {
	var (
		txns         []model.Transaction
		reservations []model.Reservation
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txns, err = s.repo.ListTransactions(gCtx, repository.TransactionsOfMember(memberID))
		return err
	})
	g.Go(func() error {
		var err error
		reservations, err = s.repo.ListReservations(gCtx, repository.ReservationsOfMember(memberID))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries := make([]model.HistoryEntry, 0, len(txns)+len(reservations))
	for _, t := range txns {
		entries = append(entries, transactionEntry(t))
	}
	for _, r := range reservations {
		entries = append(entries, reservationEntry(r))
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.Before(b.Timestamp)
		}
		if a.Seq() != b.Seq() {
			return a.Seq() < b.Seq()
		}
		return a.ReferenceID < b.ReferenceID
	})
	return entries, nil
}

func transactionEntry(t model.Transaction) model.HistoryEntry {
	if t.Type == model.TransactionReturn {
		return model.NewHistoryEntry(model.HistoryReturn, t.Date, t.Seq, t.ID, t.ArticleID, t.BookID,
			fmt.Sprintf("returned book %s", t.BookID))
	}
	detail := fmt.Sprintf("issued book %s", t.BookID)
	if t.DueDate != nil {
		detail += ", due " + t.DueDate.Format("2006-01-02")
	}
	return model.NewHistoryEntry(model.HistoryIssue, t.Date, t.Seq, t.ID, t.ArticleID, t.BookID, detail)
}

func reservationEntry(r model.Reservation) model.HistoryEntry {
	detail := fmt.Sprintf("reservation %s", r.Status)
	if r.CancellationReason != "" {
		detail += ": " + r.CancellationReason
	}
	return model.NewHistoryEntry(model.HistoryReservation, r.CreatedAt, r.Seq, r.ID, r.ArticleID, r.SelectedBook, detail)
}
