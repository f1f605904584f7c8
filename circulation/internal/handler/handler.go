package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	md "github.com/Astemirdum/library-circulation/pkg/middleware"
	"github.com/Astemirdum/library-circulation/pkg/validate"
	_ "github.com/Astemirdum/library-circulation/swagger"
)

type Handler struct {
	circulationSvc CirculationService
	log            *zap.Logger
}

func New(circulationSvc CirculationService, log *zap.Logger) *Handler {
	return &Handler{
		circulationSvc: circulationSvc,
		log:            log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/articles", h.CreateArticle)
	api.GET("/articles/:articleId/books", h.ListBooks)
	api.POST("/articles/:articleId/books", h.AddBook)
	api.GET("/articles/:articleId/available", h.AvailableBooks)
	api.GET("/articles/:articleId/queue", h.GetQueue)

	api.GET("/books/:bookId", h.GetBook)
	api.GET("/books/:bookId/transactions", h.BookTransactions)
	api.PUT("/books/:bookId/status", h.SetBookStatus)

	api.POST("/members", h.RegisterMember)
	api.GET("/members/:memberId/issued", h.IssuedBooks)
	api.GET("/members/:memberId/history", h.History)

	api.POST("/transactions/issue", h.CreateIssue)
	api.POST("/transactions/:transactionId/return", h.CreateReturn)
	api.POST("/transactions/validate", h.ValidateTransaction)

	api.POST("/reservations", h.Enqueue)
	api.POST("/reservations/expire", h.Expire)
	api.GET("/reservations/:reservationId/position", h.Position)
	api.PUT("/reservations/:reservationId/book", h.SelectBook)
	api.POST("/reservations/:reservationId/fulfill", h.Fulfill)
	api.POST("/reservations/:reservationId/cancel", h.Cancel)
	api.POST("/reservations/:reservationId/return", h.ReturnReservation)
	api.GET("/reservations/:reservationId/status", h.WorkflowStatus)

	api.GET("/reports/availability", h.AvailabilityReport)

	return e
}

// httpError maps domain failures to status codes. Storage failures are
// logged and answered without their driver details.
func (h *Handler) httpError(err error) error {
	code := http.StatusInternalServerError
	switch {
	case errs.IsStorage(err):
		h.log.Error("storage failure", zap.Error(err))
		return echo.NewHTTPError(code, "internal error")
	case errors.Is(err, errs.ErrNotFound), errors.Is(err, errs.ErrNotQueued):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrArticleMismatch),
		errors.Is(err, errs.ErrBookMismatch),
		errors.Is(err, errs.ErrMemberRequired),
		errors.Is(err, errs.ErrMissingReason),
		errors.Is(err, errs.ErrInvalidRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrNotAvailable),
		errors.Is(err, errs.ErrNotIssued),
		errors.Is(err, errs.ErrAlreadyReturned),
		errors.Is(err, errs.ErrDuplicateReservation),
		errors.Is(err, errs.ErrAlreadyBorrowed),
		errors.Is(err, errs.ErrNoBookSelected),
		errors.Is(err, errs.ErrNotFulfilled),
		errors.Is(err, errs.ErrDuplicateCopy),
		errors.Is(err, errs.ErrArticleInUse):
		code = http.StatusConflict
	}
	return echo.NewHTTPError(code, err.Error())
}

func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) CreateArticle(c echo.Context) error {
	var req model.CreateArticleRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	article, err := h.circulationSvc.CreateArticle(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, article)
}

func (h *Handler) ListBooks(c echo.Context) error {
	var statuses []model.BookStatus
	if param := c.QueryParam("status"); param != "" {
		for _, s := range strings.Split(param, ",") {
			status := model.BookStatus(strings.TrimSpace(s))
			if !status.Valid() {
				return echo.NewHTTPError(http.StatusBadRequest, "status is invalid")
			}
			statuses = append(statuses, status)
		}
	}
	books, err := h.circulationSvc.ListBooks(c.Request().Context(), c.Param("articleId"), statuses...)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) AddBook(c echo.Context) error {
	var req model.AddBookRequest
	req.ArticleID = c.Param("articleId")
	if err := bind(c, &req); err != nil {
		return err
	}
	book, err := h.circulationSvc.AddBook(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) AvailableBooks(c echo.Context) error {
	books, err := h.circulationSvc.FindAvailableBooks(c.Request().Context(), c.Param("articleId"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, model.ListBooks{Items: books})
}

func (h *Handler) GetQueue(c echo.Context) error {
	queue, err := h.circulationSvc.GetQueue(c.Request().Context(), c.Param("articleId"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, queue)
}

func (h *Handler) GetBook(c echo.Context) error {
	book, err := h.circulationSvc.GetBook(c.Request().Context(), c.Param("bookId"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// BookTransactions returns the copy's newest transactions and its current
// issue, if any.
func (h *Handler) BookTransactions(c echo.Context) error {
	var limit int
	if param := c.QueryParam("limit"); param != "" {
		n, err := strconv.Atoi(param)
		if err != nil || n < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit is invalid")
		}
		limit = n
	}
	history, err := h.circulationSvc.GetBookHistory(c.Request().Context(), c.Param("bookId"), limit)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, history)
}

func (h *Handler) SetBookStatus(c echo.Context) error {
	var req model.SetBookStatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	book, err := h.circulationSvc.SetBookStatus(c.Request().Context(), c.Param("bookId"), req.Status, req.Reason)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) RegisterMember(c echo.Context) error {
	var req model.RegisterMemberRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	member, err := h.circulationSvc.RegisterMember(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, member)
}

func (h *Handler) IssuedBooks(c echo.Context) error {
	issued, err := h.circulationSvc.GetMemberIssuedBooks(c.Request().Context(), c.Param("memberId"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, issued)
}

func parseTime(c echo.Context, name string) (*time.Time, error) {
	param := c.QueryParam(name)
	if param == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, param)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return &t, nil
}

func (h *Handler) History(c echo.Context) error {
	from, err := parseTime(c, "from")
	if err != nil {
		return err
	}
	to, err := parseTime(c, "to")
	if err != nil {
		return err
	}
	q := model.HistoryQuery{From: from, To: to, ArticleID: c.QueryParam("articleId")}
	history, err := h.circulationSvc.GetHistory(c.Request().Context(), c.Param("memberId"), q)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, history)
}

func (h *Handler) CreateIssue(c echo.Context) error {
	var req model.IssueRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	txn, err := h.circulationSvc.CreateIssue(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, txn)
}

func (h *Handler) CreateReturn(c echo.Context) error {
	txn, err := h.circulationSvc.CreateReturn(c.Request().Context(), c.Param("transactionId"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, txn)
}

func (h *Handler) ValidateTransaction(c echo.Context) error {
	var req model.ValidateTransactionRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.circulationSvc.ValidateTransaction(c.Request().Context(), req); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Enqueue(c echo.Context) error {
	var req model.EnqueueRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.circulationSvc.Enqueue(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *Handler) Position(c echo.Context) error {
	pos, err := h.circulationSvc.GetPosition(c.Request().Context(), c.Param("reservationId"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, pos)
}

func (h *Handler) SelectBook(c echo.Context) error {
	var req model.SelectBookRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.circulationSvc.SelectBook(c.Request().Context(), c.Param("reservationId"), req.BookID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) Fulfill(c echo.Context) error {
	result, err := h.circulationSvc.FulfillReservation(c.Request().Context(), c.Param("reservationId"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) Cancel(c echo.Context) error {
	var req model.CancelReservationRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.circulationSvc.CancelReservation(c.Request().Context(), c.Param("reservationId"), req.Reason)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) ReturnReservation(c echo.Context) error {
	txn, err := h.circulationSvc.CreateReturnFromReservation(c.Request().Context(), c.Param("reservationId"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, txn)
}

func (h *Handler) WorkflowStatus(c echo.Context) error {
	status, err := h.circulationSvc.GetWorkflowStatus(c.Request().Context(), c.Param("reservationId"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, status)
}

func (h *Handler) Expire(c echo.Context) error {
	var req model.ExpireRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}
	n, err := h.circulationSvc.ExpireStaleReservations(c.Request().Context(), now)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, model.ExpireResult{Expired: n})
}

func (h *Handler) AvailabilityReport(c echo.Context) error {
	report, err := h.circulationSvc.AvailabilityReport(c.Request().Context(), c.QueryParams()["articleId"]...)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, report)
}
