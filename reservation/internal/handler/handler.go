package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/table-reservation/pkg/metrics"
	md "github.com/Astemirdum/table-reservation/pkg/middleware"
	"github.com/Astemirdum/table-reservation/pkg/validate"
	"github.com/Astemirdum/table-reservation/reservation/internal/errs"
	"github.com/Astemirdum/table-reservation/reservation/internal/model"
	_ "github.com/Astemirdum/table-reservation/swagger"
)

type Handler struct {
	reservationSvc ReservationService
	log            *zap.Logger
	metrics        *metrics.Metrics
}

type Option func(*Handler)

// WithMetrics exposes /metrics and records request latency and refusals.
func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handler) {
		h.metrics = m
	}
}

func New(reservationSvc ReservationService, log *zap.Logger, opts ...Option) *Handler {
	h := &Handler{
		reservationSvc: reservationSvc,
		log:            log.Named("handler"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.HideBanner = true
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost},
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)
	if h.metrics != nil {
		base.GET("/metrics", echo.WrapHandler(h.metrics.Handler()))
	}

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	if h.metrics != nil {
		api.Use(h.metrics.Middleware())
	}
	h.register(api)

	return e
}

func (h *Handler) register(api *echo.Group) {
	api.POST("/reservations", h.CreateReservation)
	api.GET("/reservations", h.GetReservationsByPeriod)
	api.GET("/reservations/:id", h.GetReservation)
	api.POST("/reservations/:id/confirm", h.ConfirmReservation)
	api.POST("/reservations/:id/cancel", h.CancelReservation)

	api.GET("/tables", h.ListTables)
	api.GET("/tables/:number/reservations", h.GetReservationsByTable)
	api.GET("/tables/status/:status", h.GetTablesByLatestStatus)
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// CreateReservation godoc
// @Summary     Create a reservation
// @Tags        reservations
// @Accept      json
// @Produce     json
// @Param       request body model.CreateReservationRequest true "reservation"
// @Success     201 {object} model.Reservation
// @Failure     400,409,500 {object} echo.HTTPError
// @Router      /reservations [post]
func (h *Handler) CreateReservation(c echo.Context) error {
	var req model.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	resp, err := h.reservationSvc.CreateReservation(ctx, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// GetReservation godoc
// @Summary     Get a reservation
// @Tags        reservations
// @Produce     json
// @Param       id path int true "reservation id"
// @Success     200 {object} model.Reservation
// @Failure     400,404,500 {object} echo.HTTPError
// @Router      /reservations/{id} [get]
func (h *Handler) GetReservation(c echo.Context) error {
	id, err := reservationID(c)
	if err != nil {
		return err
	}
	resp, err := h.reservationSvc.GetReservation(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ConfirmReservation godoc
// @Summary     Confirm a pending reservation
// @Tags        reservations
// @Produce     json
// @Param       id path int true "reservation id"
// @Success     200 {object} model.Reservation
// @Failure     400,404,409,500 {object} echo.HTTPError
// @Router      /reservations/{id}/confirm [post]
func (h *Handler) ConfirmReservation(c echo.Context) error {
	id, err := reservationID(c)
	if err != nil {
		return err
	}
	resp, err := h.reservationSvc.ConfirmReservation(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// CancelReservation godoc
// @Summary     Cancel a pending reservation
// @Tags        reservations
// @Produce     json
// @Param       id path int true "reservation id"
// @Success     200 {object} model.Reservation
// @Failure     400,404,409,500 {object} echo.HTTPError
// @Router      /reservations/{id}/cancel [post]
func (h *Handler) CancelReservation(c echo.Context) error {
	id, err := reservationID(c)
	if err != nil {
		return err
	}
	resp, err := h.reservationSvc.CancelReservation(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetReservationsByPeriod godoc
// @Summary     Reservations with a date in [dateStart, dateEnd]
// @Tags        reservations
// @Produce     json
// @Param       dateStart query string true "YYYY-MM-DD"
// @Param       dateEnd   query string true "YYYY-MM-DD"
// @Success     200 {array} model.Reservation
// @Failure     400,500 {object} echo.HTTPError
// @Router      /reservations [get]
func (h *Handler) GetReservationsByPeriod(c echo.Context) error {
	var req model.PeriodRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	items, err := h.reservationSvc.ReservationsByPeriod(c.Request().Context(), req.DateStart, req.DateEnd)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// ListTables godoc
// @Summary     Registered tables
// @Tags        tables
// @Produce     json
// @Success     200 {array} model.Table
// @Failure     500 {object} echo.HTTPError
// @Router      /tables [get]
func (h *Handler) ListTables(c echo.Context) error {
	tables, err := h.reservationSvc.ListTables(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, tables)
}

// GetReservationsByTable godoc
// @Summary     Reservations of a table
// @Tags        tables
// @Produce     json
// @Param       number path int true "table number"
// @Success     200 {array} model.Reservation
// @Failure     400,500 {object} echo.HTTPError
// @Router      /tables/{number}/reservations [get]
func (h *Handler) GetReservationsByTable(c echo.Context) error {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid table number")
	}
	items, err := h.reservationSvc.ReservationsByTable(c.Request().Context(), number)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// GetTablesByLatestStatus godoc
// @Summary     Tables whose latest reservation has the status
// @Tags        tables
// @Produce     json
// @Param       status path string true "Pending, Confirmed or Cancelled"
// @Success     200 {array} model.TableStatus
// @Failure     400,500 {object} echo.HTTPError
// @Router      /tables/status/{status} [get]
func (h *Handler) GetTablesByLatestStatus(c echo.Context) error {
	status := model.Status(c.Param("status"))
	items, err := h.reservationSvc.TablesByLatestStatus(c.Request().Context(), status)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func reservationID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid reservation id")
	}
	return id, nil
}

func (h *Handler) httpError(err error) error {
	code, reason := http.StatusInternalServerError, "internal"
	switch {
	case errors.Is(err, errs.ErrInvalidStatus):
		code, reason = http.StatusBadRequest, "invalid_status"
	case errors.Is(err, errs.ErrUnknownTable):
		code, reason = http.StatusBadRequest, "unknown_table"
	case errors.Is(err, errs.ErrInvalidDateTime), errors.Is(err, errs.ErrInvalidReservation):
		code, reason = http.StatusBadRequest, "invalid_reservation"
	case errors.Is(err, errs.ErrNotFound):
		code, reason = http.StatusNotFound, "not_found"
	case errors.Is(err, errs.ErrDoubleBooking):
		code, reason = http.StatusConflict, "double_booking"
	case errors.Is(err, errs.ErrInvalidTransition):
		code, reason = http.StatusConflict, "invalid_transition"
	default:
		h.log.Error("request failed", zap.Error(err))
	}
	if h.metrics != nil {
		h.metrics.Reject(reason)
	}
	return echo.NewHTTPError(code, err.Error())
}
