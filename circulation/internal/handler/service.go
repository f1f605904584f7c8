package handler

import (
	"context"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CirculationService interface {
	CreateArticle(ctx context.Context, req model.CreateArticleRequest) (model.Article, error)
	AddBook(ctx context.Context, req model.AddBookRequest) (model.Book, error)
	GetBook(ctx context.Context, bookID string) (model.Book, error)
	GetBookHistory(ctx context.Context, bookID string, limit int) (model.BookHistory, error)
	ListBooks(ctx context.Context, articleID string, statuses ...model.BookStatus) (model.ListBooks, error)
	FindAvailableBooks(ctx context.Context, articleID string) ([]model.Book, error)
	SetBookStatus(ctx context.Context, bookID string, status model.BookStatus, reason string) (model.Book, error)
	RegisterMember(ctx context.Context, req model.RegisterMemberRequest) (model.Member, error)
	AvailabilityReport(ctx context.Context, articleIDs ...string) ([]model.ArticleAvailability, error)

	CreateIssue(ctx context.Context, req model.IssueRequest) (model.Transaction, error)
	CreateReturn(ctx context.Context, issueID string) (model.Transaction, error)
	GetMemberIssuedBooks(ctx context.Context, memberID string) ([]model.IssuedBook, error)
	ValidateTransaction(ctx context.Context, req model.ValidateTransactionRequest) error

	Enqueue(ctx context.Context, req model.EnqueueRequest) (model.Reservation, error)
	GetQueue(ctx context.Context, articleID string) (model.Queue, error)
	GetPosition(ctx context.Context, reservationID string) (model.QueuePosition, error)
	SelectBook(ctx context.Context, reservationID, bookID string) (model.Reservation, error)
	FulfillReservation(ctx context.Context, reservationID string) (model.FulfillResult, error)
	CancelReservation(ctx context.Context, reservationID, reason string) (model.Reservation, error)
	CreateReturnFromReservation(ctx context.Context, reservationID string) (model.Transaction, error)
	GetWorkflowStatus(ctx context.Context, reservationID string) (model.WorkflowStatus, error)
	ExpireStaleReservations(ctx context.Context, now time.Time) (int, error)

	GetHistory(ctx context.Context, memberID string, q model.HistoryQuery) (model.History, error)
}

var _ CirculationService = (*service.Service)(nil)
