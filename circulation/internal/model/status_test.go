package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBookStatus_CanTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from, to BookStatus
		want     bool
	}{
		{BookAvailable, BookIssued, true},
		{BookAvailable, BookReserved, true},
		{BookAvailable, BookMaintenance, true},
		{BookAvailable, BookAvailable, false},
		{BookIssued, BookAvailable, true},
		{BookIssued, BookReserved, false},
		{BookIssued, BookLost, true},
		{BookReserved, BookIssued, true},
		{BookReserved, BookAvailable, true},
		{BookReserved, BookDamaged, true},
		{BookMaintenance, BookAvailable, true},
		{BookMaintenance, BookIssued, false},
		{BookLost, BookReserved, false},
		{BookDamaged, BookLost, true},
		{"Shelved", BookAvailable, false},
		{BookAvailable, "Shelved", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestReservation_HoldsWaiting(t *testing.T) {
	t.Parallel()
	now := time.Now()

	waiting := Reservation{Status: ReservationActive}
	require.True(t, waiting.Waiting())
	require.False(t, waiting.Holds())

	// a member's own choice is not a hold
	chosen := Reservation{Status: ReservationActive, SelectedBook: "b1"}
	require.True(t, chosen.Waiting())
	require.False(t, chosen.Holds())

	held := Reservation{Status: ReservationActive, SelectedBook: "b1", OfferedAt: &now}
	require.True(t, held.Holds())
	require.False(t, held.Waiting())

	held.Status = ReservationExpired
	require.False(t, held.Holds())
	require.False(t, held.Waiting())
}

func TestHistoryQuery_Match(t *testing.T) {
	t.Parallel()
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	from, to := t0, t0.Add(time.Hour)
	q := HistoryQuery{From: &from, To: &to, ArticleID: "a1"}

	require.True(t, q.Match(HistoryEntry{Timestamp: t0, ArticleID: "a1"}))
	require.True(t, q.Match(HistoryEntry{Timestamp: to, ArticleID: "a1"}))
	require.False(t, q.Match(HistoryEntry{Timestamp: t0.Add(-time.Second), ArticleID: "a1"}))
	require.False(t, q.Match(HistoryEntry{Timestamp: t0, ArticleID: "a2"}))
	require.True(t, HistoryQuery{}.Match(HistoryEntry{}))
}
