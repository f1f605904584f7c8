package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/handler"
	service_mocks "github.com/Astemirdum/library-circulation/circulation/internal/handler/mocks"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/validate"
)

type response struct {
	expectedCode int
	expectedBody string
	// bodyContains is checked instead of expectedBody when set
	bodyContains string
}

type routeCase struct {
	name         string
	mockBehavior func(r *service_mocks.MockCirculationService)
	method       string
	target       string
	body         string
	response     response
}

func runRouteCases(t *testing.T, route string, register func(e *echo.Echo, h *handler.Handler, route string), tests []routeCase) {
	t.Helper()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCirculationService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			register(e, h, route)

			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			r := httptest.NewRequest(tt.method, tt.target, body)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			check(t, tt.response, w)
		})
	}
}

func check(t *testing.T, resp response, w *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, resp.expectedCode, w.Code)
	got := strings.Trim(w.Body.String(), "\n")
	if resp.bodyContains != "" {
		require.Contains(t, got, resp.bodyContains)
		return
	}
	require.Equal(t, resp.expectedBody, got)
}

func TestHandler_CreateIssue(t *testing.T) {
	t.Parallel()
	date := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	due := date.Add(14 * 24 * time.Hour)
	req := model.IssueRequest{ArticleID: "A1", BookID: "B1", MemberID: "M1", Date: date}

	runRouteCases(t, "/transactions/issue", func(e *echo.Echo, h *handler.Handler, route string) {
		e.POST(route, h.CreateIssue)
	}, []routeCase{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().CreateIssue(context.Background(), req).Return(model.Transaction{
					ID:        "T1",
					Type:      model.TransactionIssue,
					ArticleID: "A1",
					BookID:    "B1",
					MemberID:  "M1",
					Date:      date,
					DueDate:   &due,
				}, nil)
			},
			method: http.MethodPost,
			target: "/transactions/issue",
			body:   `{"articleId":"A1","bookId":"B1","libraryMemberId":"M1","date":"2024-03-01T10:00:00Z"}`,
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":"T1","transactionType":"Issue","articleId":"A1","bookId":"B1","libraryMemberId":"M1","date":"2024-03-01T10:00:00Z","dueDate":"2024-03-15T10:00:00Z","returned":false}`,
			},
		},
		{
			name: "err. not available",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().CreateIssue(context.Background(), req).
					Return(model.Transaction{}, errors.Wrapf(errs.ErrNotAvailable, "book %s is %s", "B1", model.BookIssued))
			},
			method: http.MethodPost,
			target: "/transactions/issue",
			body:   `{"articleId":"A1","bookId":"B1","libraryMemberId":"M1","date":"2024-03-01T10:00:00Z"}`,
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"book B1 is Issued: book is not available"}`,
			},
		},
		{
			name:         "err. book required",
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			method:       http.MethodPost,
			target:       "/transactions/issue",
			body:         `{"articleId":"A1","libraryMemberId":"M1"}`,
			response: response{
				expectedCode: http.StatusBadRequest,
				bodyContains: "BookID",
			},
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().CreateIssue(context.Background(), req).
					Return(model.Transaction{}, errs.Storage("SaveTransaction", errors.New("db internal")))
			},
			method: http.MethodPost,
			target: "/transactions/issue",
			body:   `{"articleId":"A1","bookId":"B1","libraryMemberId":"M1","date":"2024-03-01T10:00:00Z"}`,
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"internal error"}`,
			},
		},
	})
}

func TestHandler_Cancel(t *testing.T) {
	t.Parallel()
	runRouteCases(t, "/reservations/:reservationId/cancel", func(e *echo.Echo, h *handler.Handler, route string) {
		e.POST(route, h.Cancel)
	}, []routeCase{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().CancelReservation(context.Background(), "R1", "changed my mind").
					Return(model.Reservation{
						ID:                 "R1",
						ArticleID:          "A1",
						MemberID:           "M1",
						Status:             model.ReservationCancelled,
						CreatedAt:          time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
						ExpiresAt:          time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
						CancellationReason: "changed my mind",
					}, nil)
			},
			method: http.MethodPost,
			target: "/reservations/R1/cancel",
			body:   `{"reason":"changed my mind"}`,
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":"R1","articleId":"A1","memberId":"M1","status":"Cancelled","createdAt":"2024-03-01T00:00:00Z","expiresAt":"2024-03-08T00:00:00Z","cancellationReason":"changed my mind"}`,
			},
		},
		{
			name: "err. missing reason",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().CancelReservation(context.Background(), "R1", "").Return(model.Reservation{}, errs.ErrMissingReason)
			},
			method: http.MethodPost,
			target: "/reservations/R1/cancel",
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"cancellation reason is required"}`,
			},
		},
		{
			name: "err. not active",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().CancelReservation(context.Background(), "R1", "late").
					Return(model.Reservation{}, errors.Wrapf(errs.ErrInvalidState, "reservation %s is %s", "R1", model.ReservationFulfilled))
			},
			method: http.MethodPost,
			target: "/reservations/R1/cancel",
			body:   `{"reason":"late"}`,
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"reservation R1 is Fulfilled: invalid reservation state"}`,
			},
		},
	})
}

func TestHandler_Position(t *testing.T) {
	t.Parallel()
	runRouteCases(t, "/reservations/:reservationId/position", func(e *echo.Echo, h *handler.Handler, route string) {
		e.GET(route, h.Position)
	}, []routeCase{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().GetPosition(context.Background(), "R2").
					Return(model.QueuePosition{ReservationID: "R2", Position: 2}, nil)
			},
			method: http.MethodGet,
			target: "/reservations/R2/position",
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"reservationId":"R2","position":2}`,
			},
		},
		{
			name: "err. not queued",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().GetPosition(context.Background(), "R2").
					Return(model.QueuePosition{}, errors.Wrapf(errs.ErrNotQueued, "reservation %s is %s", "R2", model.ReservationExpired))
			},
			method: http.MethodGet,
			target: "/reservations/R2/position",
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"reservation R2 is Expired: reservation is not queued"}`,
			},
		},
	})
}

func TestHandler_ListBooks(t *testing.T) {
	t.Parallel()
	runRouteCases(t, "/articles/:articleId/books", func(e *echo.Echo, h *handler.Handler, route string) {
		e.GET(route, h.ListBooks)
	}, []routeCase{
		{
			name: "ok. status filter",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().ListBooks(context.Background(), "A1", model.BookAvailable, model.BookReserved).
					Return(model.ListBooks{Items: []model.Book{
						{ID: "B1", ArticleID: "A1", CopyNumber: 1, Status: model.BookAvailable, Condition: model.ConditionGood},
					}}, nil)
			},
			method: http.MethodGet,
			target: "/articles/A1/books?status=Available,Reserved",
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"items":[{"id":"B1","articleId":"A1","copyNumber":1,"status":"Available","condition":"GOOD"}]}`,
			},
		},
		{
			name:         "err. bad status",
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			method:       http.MethodGet,
			target:       "/articles/A1/books?status=Borrowed",
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"status is invalid"}`,
			},
		},
		{
			name: "err. unknown article",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().ListBooks(context.Background(), "A9").
					Return(model.ListBooks{}, errors.Wrapf(errs.ErrNotFound, "article %s", "A9"))
			},
			method: http.MethodGet,
			target: "/articles/A9/books",
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"article A9: not found"}`,
			},
		},
	})
}

func TestHandler_History(t *testing.T) {
	t.Parallel()
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	issuedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	runRouteCases(t, "/members/:memberId/history", func(e *echo.Echo, h *handler.Handler, route string) {
		e.GET(route, h.History)
	}, []routeCase{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().GetHistory(context.Background(), "M1", model.HistoryQuery{From: &from, To: &to}).
					Return(model.History{MemberID: "M1", Items: []model.HistoryEntry{
						model.NewHistoryEntry(model.HistoryIssue, issuedAt, 1, "T1", "A1", "B1", "issued book B1"),
					}}, nil)
			},
			method: http.MethodGet,
			target: "/members/M1/history?from=2024-01-01T00:00:00Z&to=2024-12-31T00:00:00Z",
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"memberId":"M1","items":[{"type":"Issue","timestamp":"2024-03-01T10:00:00Z","referenceId":"T1","articleId":"A1","bookId":"B1","detail":"issued book B1"}]}`,
			},
		},
		{
			name:         "err. bad from",
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			method:       http.MethodGet,
			target:       "/members/M1/history?from=yesterday",
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"from is invalid"}`,
			},
		},
		{
			name: "err. inverted range",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().GetHistory(context.Background(), "M1", model.HistoryQuery{From: &to, To: &from}).
					Return(model.History{}, errs.ErrInvalidRange)
			},
			method: http.MethodGet,
			target: "/members/M1/history?from=2024-12-31T00:00:00Z&to=2024-01-01T00:00:00Z",
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"from date must be before to date"}`,
			},
		},
	})
}

func TestHandler_Expire(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	runRouteCases(t, "/reservations/expire", func(e *echo.Echo, h *handler.Handler, route string) {
		e.POST(route, h.Expire)
	}, []routeCase{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().ExpireStaleReservations(context.Background(), now).Return(2, nil)
			},
			method: http.MethodPost,
			target: "/reservations/expire",
			body:   `{"now":"2024-05-01T12:00:00Z"}`,
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"expired":2}`,
			},
		},
	})
}

func TestHandler_BookTransactions(t *testing.T) {
	t.Parallel()
	issuedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	due := issuedAt.Add(14 * 24 * time.Hour)
	issue := model.Transaction{
		ID: "T2", Type: model.TransactionIssue, ArticleID: "A1", BookID: "B1", MemberID: "M2", Date: issuedAt, DueDate: &due,
	}

	runRouteCases(t, "/books/:bookId/transactions", func(e *echo.Echo, h *handler.Handler, route string) {
		e.GET(route, h.BookTransactions)
	}, []routeCase{
		{
			name: "ok. current issue",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().GetBookHistory(context.Background(), "B1", 1).Return(model.BookHistory{
					Book:         model.Book{ID: "B1", ArticleID: "A1", CopyNumber: 1, Status: model.BookIssued},
					CurrentIssue: &issue,
					Transactions: []model.Transaction{issue},
				}, nil)
			},
			method: http.MethodGet,
			target: "/books/B1/transactions?limit=1",
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"book":{"id":"B1","articleId":"A1","copyNumber":1,"status":"Issued"},` +
					`"currentIssue":{"id":"T2","transactionType":"Issue","articleId":"A1","bookId":"B1","libraryMemberId":"M2","date":"2024-03-01T10:00:00Z","dueDate":"2024-03-15T10:00:00Z","returned":false},` +
					`"transactions":[{"id":"T2","transactionType":"Issue","articleId":"A1","bookId":"B1","libraryMemberId":"M2","date":"2024-03-01T10:00:00Z","dueDate":"2024-03-15T10:00:00Z","returned":false}]}`,
			},
		},
		{
			name: "ok. default limit",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().GetBookHistory(context.Background(), "B1", 0).Return(model.BookHistory{
					Book:         model.Book{ID: "B1", ArticleID: "A1", CopyNumber: 1, Status: model.BookAvailable},
					Transactions: []model.Transaction{},
				}, nil)
			},
			method: http.MethodGet,
			target: "/books/B1/transactions",
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"book":{"id":"B1","articleId":"A1","copyNumber":1,"status":"Available"},"transactions":[]}`,
			},
		},
		{
			name:         "err. bad limit",
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			method:       http.MethodGet,
			target:       "/books/B1/transactions?limit=0",
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"limit is invalid"}`,
			},
		},
		{
			name: "err. unknown book",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().GetBookHistory(context.Background(), "B9", 0).
					Return(model.BookHistory{}, errors.Wrapf(errs.ErrNotFound, "book %s", "B9"))
			},
			method: http.MethodGet,
			target: "/books/B9/transactions",
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"book B9: not found"}`,
			},
		},
	})
}

func TestHandler_SetBookStatus(t *testing.T) {
	t.Parallel()
	runRouteCases(t, "/books/:bookId/status", func(e *echo.Echo, h *handler.Handler, route string) {
		e.PUT(route, h.SetBookStatus)
	}, []routeCase{
		{
			name: "ok. with reason",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().SetBookStatus(context.Background(), "B1", model.BookMaintenance, "torn spine").
					Return(model.Book{
						ID: "B1", ArticleID: "A1", CopyNumber: 1, Status: model.BookMaintenance,
						MaintenanceLog: "2024-03-01T10:00:00Z: Maintenance, torn spine",
					}, nil)
			},
			method: http.MethodPut,
			target: "/books/B1/status",
			body:   `{"status":"Maintenance","reason":"torn spine"}`,
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":"B1","articleId":"A1","copyNumber":1,"status":"Maintenance","maintenanceLog":"2024-03-01T10:00:00Z: Maintenance, torn spine"}`,
			},
		},
		{
			name: "ok. without reason",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().SetBookStatus(context.Background(), "B1", model.BookLost, "").
					Return(model.Book{ID: "B1", ArticleID: "A1", CopyNumber: 1, Status: model.BookLost}, nil)
			},
			method: http.MethodPut,
			target: "/books/B1/status",
			body:   `{"status":"Lost"}`,
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":"B1","articleId":"A1","copyNumber":1,"status":"Lost"}`,
			},
		},
		{
			name:         "err. engine-owned status",
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			method:       http.MethodPut,
			target:       "/books/B1/status",
			body:         `{"status":"Issued"}`,
			response: response{
				expectedCode: http.StatusBadRequest,
				bodyContains: "Status",
			},
		},
		{
			name: "err. storage",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().SetBookStatus(context.Background(), "B1", model.BookDamaged, "").
					Return(model.Book{}, errs.Storage("SaveBook", errors.New("connection reset")))
			},
			method: http.MethodPut,
			target: "/books/B1/status",
			body:   `{"status":"Damaged"}`,
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"internal error"}`,
			},
		},
	})
}
