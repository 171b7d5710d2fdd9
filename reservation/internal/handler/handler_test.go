package handler_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/table-reservation/pkg/metrics"
	"github.com/Astemirdum/table-reservation/reservation/internal/errs"
	"github.com/Astemirdum/table-reservation/reservation/internal/handler"
	"github.com/Astemirdum/table-reservation/reservation/internal/model"

	service_mocks "github.com/Astemirdum/table-reservation/reservation/internal/handler/mocks"
)

type response struct {
	expectedCode int
	expectedBody string
	bodyContains string
}

type mockBehavior func(r *service_mocks.MockReservationService)

type testCase struct {
	name         string
	method       string
	target       string
	body         string
	mockBehavior mockBehavior
	response     response
}

func run(t *testing.T, tests []testCase) {
	t.Helper()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockReservationService(c)
			h := handler.New(svc, zap.NewNop())
			e := h.NewRouter()

			var body io.Reader = http.NoBody
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			r := httptest.NewRequest(tt.method, tt.target, body)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			got := strings.Trim(w.Body.String(), "\n")
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, got)
			}
			if tt.response.bodyContains != "" {
				require.Contains(t, got, tt.response.bodyContains)
			}
		})
	}
}

var joao = model.Reservation{
	ID:              1,
	Date:            "2024-07-20",
	Time:            "19:00",
	TableNumber:     5,
	PartySize:       4,
	ResponsibleName: "João",
	Status:          model.StatusPending,
}

const joaoJSON = `{"id":1,"date":"2024-07-20","time":"19:00","tableNumber":5,"partySize":4,"responsibleName":"João","status":"Pending"}`

func TestHandler_CreateReservation(t *testing.T) {
	t.Parallel()
	req := model.CreateReservationRequest{
		Date:            "2024-07-20",
		Time:            "19:00",
		TableNumber:     5,
		PartySize:       4,
		ResponsibleName: "João",
		Status:          model.StatusPending,
	}
	const body = `{"date":"2024-07-20","time":"19:00","tableNumber":5,"partySize":4,"responsibleName":"João","status":"Pending"}`

	run(t, []testCase{
		{
			name:   "ok",
			method: http.MethodPost,
			target: "/api/v1/reservations",
			body:   body,
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().CreateReservation(gomock.Any(), req).Return(joao, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: joaoJSON,
			},
		},
		{
			name:   "ok. server assigned",
			method: http.MethodPost,
			target: "/api/v1/reservations",
			body:   `{"date":"2024-07-20","time":"19:00","tableNumber":5,"partySize":4,"responsibleName":"João","server":"Carlos"}`,
			mockBehavior: func(r *service_mocks.MockReservationService) {
				server := "Carlos"
				r.EXPECT().CreateReservation(gomock.Any(), model.CreateReservationRequest{
					Date:            "2024-07-20",
					Time:            "19:00",
					TableNumber:     5,
					PartySize:       4,
					ResponsibleName: "João",
					Server:          &server,
				}).Return(model.Reservation{ID: 2, Date: "2024-07-20", Time: "19:00", TableNumber: 5, PartySize: 4,
					ResponsibleName: "João", Status: model.StatusPending, Server: &server}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":2,"date":"2024-07-20","time":"19:00","tableNumber":5,"partySize":4,"responsibleName":"João","status":"Pending","server":"Carlos"}`,
			},
		},
		{
			name:         "err. table required",
			method:       http.MethodPost,
			target:       "/api/v1/reservations",
			body:         `{"date":"2024-07-20","time":"19:00","partySize":4,"responsibleName":"João"}`,
			mockBehavior: func(r *service_mocks.MockReservationService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				bodyContains: "TableNumber",
			},
		},
		{
			name:         "err. bad date",
			method:       http.MethodPost,
			target:       "/api/v1/reservations",
			body:         `{"date":"20/07/2024","time":"19:00","tableNumber":5,"partySize":4,"responsibleName":"João"}`,
			mockBehavior: func(r *service_mocks.MockReservationService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				bodyContains: "Date",
			},
		},
		{
			name:         "err. single digit hour",
			method:       http.MethodPost,
			target:       "/api/v1/reservations",
			body:         `{"date":"2024-07-20","time":"9:30","tableNumber":5,"partySize":4,"responsibleName":"João"}`,
			mockBehavior: func(r *service_mocks.MockReservationService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				bodyContains: "Time",
			},
		},
		{
			name:         "err. unpadded month",
			method:       http.MethodPost,
			target:       "/api/v1/reservations",
			body:         `{"date":"2024-7-20","time":"09:30","tableNumber":5,"partySize":4,"responsibleName":"João"}`,
			mockBehavior: func(r *service_mocks.MockReservationService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				bodyContains: "Date",
			},
		},
		{
			name:   "err. invalid date time from service",
			method: http.MethodPost,
			target: "/api/v1/reservations",
			body:   body,
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().CreateReservation(gomock.Any(), req).
					Return(model.Reservation{}, errors.Wrap(errs.ErrInvalidDateTime, `time "9:30"`))
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"time \"9:30\": date must be YYYY-MM-DD and time HH:MM"}`,
			},
		},
		{
			name:   "err. double booking",
			method: http.MethodPost,
			target: "/api/v1/reservations",
			body:   body,
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().CreateReservation(gomock.Any(), req).
					Return(model.Reservation{}, errors.Wrap(errs.ErrDoubleBooking, "table 5 at 2024-07-20 19:00"))
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"table 5 at 2024-07-20 19:00: table already booked for this date and time"}`,
			},
		},
		{
			name:   "err. unknown table",
			method: http.MethodPost,
			target: "/api/v1/reservations",
			body:   body,
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().CreateReservation(gomock.Any(), req).
					Return(model.Reservation{}, errors.Wrap(errs.ErrUnknownTable, "table 5"))
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"table 5: unknown table"}`,
			},
		},
		{
			name:   "err. internal",
			method: http.MethodPost,
			target: "/api/v1/reservations",
			body:   body,
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().CreateReservation(gomock.Any(), req).
					Return(model.Reservation{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	})
}

func TestHandler_Transitions(t *testing.T) {
	t.Parallel()
	confirmed := joao
	confirmed.Status = model.StatusConfirmed

	run(t, []testCase{
		{
			name:   "confirm ok",
			method: http.MethodPost,
			target: "/api/v1/reservations/1/confirm",
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().ConfirmReservation(gomock.Any(), int64(1)).Return(confirmed, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: strings.Replace(joaoJSON, "Pending", "Confirmed", 1),
			},
		},
		{
			name:   "confirm twice",
			method: http.MethodPost,
			target: "/api/v1/reservations/1/confirm",
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().ConfirmReservation(gomock.Any(), int64(1)).
					Return(model.Reservation{}, errors.Wrap(errs.ErrInvalidTransition, "reservation 1 is Confirmed"))
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"reservation 1 is Confirmed: reservation is no longer pending"}`,
			},
		},
		{
			name:   "cancel not found",
			method: http.MethodPost,
			target: "/api/v1/reservations/99/cancel",
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().CancelReservation(gomock.Any(), int64(99)).
					Return(model.Reservation{}, errors.Wrap(errs.ErrNotFound, "reservation 99"))
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"reservation 99: reservation not found"}`,
			},
		},
		{
			name:         "bad id",
			method:       http.MethodPost,
			target:       "/api/v1/reservations/abc/cancel",
			mockBehavior: func(r *service_mocks.MockReservationService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid reservation id"}`,
			},
		},
		{
			name:   "get ok",
			method: http.MethodGet,
			target: "/api/v1/reservations/1",
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().GetReservation(gomock.Any(), int64(1)).Return(joao, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: joaoJSON,
			},
		},
	})
}

func TestHandler_Queries(t *testing.T) {
	t.Parallel()
	run(t, []testCase{
		{
			name:   "period ok",
			method: http.MethodGet,
			target: "/api/v1/reservations?dateStart=2024-07-01&dateEnd=2024-07-31",
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().ReservationsByPeriod(gomock.Any(), "2024-07-01", "2024-07-31").
					Return([]model.Reservation{joao}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: "[" + joaoJSON + "]",
			},
		},
		{
			name:   "period empty",
			method: http.MethodGet,
			target: "/api/v1/reservations?dateStart=2025-01-01&dateEnd=2025-01-31",
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().ReservationsByPeriod(gomock.Any(), "2025-01-01", "2025-01-31").
					Return([]model.Reservation{}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[]`,
			},
		},
		{
			name:         "period missing end",
			method:       http.MethodGet,
			target:       "/api/v1/reservations?dateStart=2024-07-01",
			mockBehavior: func(r *service_mocks.MockReservationService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				bodyContains: "DateEnd",
			},
		},
		{
			name:         "period unpadded start",
			method:       http.MethodGet,
			target:       "/api/v1/reservations?dateStart=2024-7-01&dateEnd=2024-07-31",
			mockBehavior: func(r *service_mocks.MockReservationService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				bodyContains: "DateStart",
			},
		},
		{
			name:   "by table",
			method: http.MethodGet,
			target: "/api/v1/tables/5/reservations",
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().ReservationsByTable(gomock.Any(), 5).Return([]model.Reservation{joao}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: "[" + joaoJSON + "]",
			},
		},
		{
			name:         "by table bad number",
			method:       http.MethodGet,
			target:       "/api/v1/tables/zero/reservations",
			mockBehavior: func(r *service_mocks.MockReservationService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid table number"}`,
			},
		},
		{
			name:   "latest status",
			method: http.MethodGet,
			target: "/api/v1/tables/status/Confirmed",
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().TablesByLatestStatus(gomock.Any(), model.StatusConfirmed).
					Return([]model.TableStatus{{TableNumber: 5, Status: model.StatusConfirmed, ReservationID: 1, Date: "2024-07-20", Time: "19:00"}}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[{"tableNumber":5,"status":"Confirmed","reservationId":1,"date":"2024-07-20","time":"19:00"}]`,
			},
		},
		{
			name:   "latest status invalid",
			method: http.MethodGet,
			target: "/api/v1/tables/status/Seated",
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().TablesByLatestStatus(gomock.Any(), model.Status("Seated")).
					Return(nil, errors.Wrap(errs.ErrInvalidStatus, `"Seated"`))
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				bodyContains: "invalid reservation status",
			},
		},
		{
			name:   "tables",
			method: http.MethodGet,
			target: "/api/v1/tables",
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().ListTables(gomock.Any()).Return([]model.Table{{Number: 1}, {Number: 2}}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[{"number":1},{"number":2}]`,
			},
		},
		{
			name:         "health",
			method:       http.MethodGet,
			target:       "/manage/health",
			mockBehavior: func(r *service_mocks.MockReservationService) {},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: "OK",
			},
		},
	})
}

func TestHandler_Metrics(t *testing.T) {
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockReservationService(c)
	svc.EXPECT().ConfirmReservation(gomock.Any(), int64(1)).
		Return(model.Reservation{}, errors.Wrap(errs.ErrInvalidTransition, "reservation 1 is Confirmed"))

	e := handler.New(svc, zap.NewNop(), handler.WithMetrics(metrics.New("reservation"))).NewRouter()

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/reservations/1/confirm", http.NoBody))
	require.Equal(t, http.StatusConflict, w.Code)

	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `reservation_rejected_total{reason="invalid_transition"} 1`)
	require.Contains(t, w.Body.String(), `route="/api/v1/reservations/:id/confirm"`)
}
