package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"agenda/config"
	"agenda/infras/jwt"
	jwtMocks "agenda/infras/jwt/mocks"
	otelMocks "agenda/infras/otel/mocks"
	appointmentMocks "agenda/internal/domains/appointment/mocks"
	"agenda/internal/domains/appointment/model/dto"
	"agenda/internal/handlers/appointment"
	"agenda/permissions"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/transport/http/middleware"
	"agenda/transport/http/router"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	jwt          *jwtMocks.MockJWT
	appointments *appointmentMocks.MockAppointmentService
}

func newMux(t *testing.T) (*chi.Mux, fixture) {
	t.Helper()

	ctrl := gomock.NewController(t)
	otel := otelMocks.NewOtel()

	f := fixture{
		jwt:          jwtMocks.NewMockJWT(ctrl),
		appointments: appointmentMocks.NewMockAppointmentService(ctrl),
	}

	cfg := &config.Config{}
	cfg.App.APIKey = "internal-key"

	r := router.New(
		router.DomainHandlers{Appointment: appointment.New(f.appointments, otel)},
		middleware.NewAuthRoleMiddleware(f.jwt, otel, permissions.Get(), cfg),
	)

	mux := chi.NewRouter()
	r.SetupRoutes(mux)

	return mux, f
}

func claims(userID, role string) *jwt.Claims {
	return &jwt.Claims{UserID: userID, Username: userID, Role: role, Type: jwt.AccessToken}
}

func TestRouter_Access(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		headers   map[string]string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name:   "public slots without token",
			method: http.MethodGet,
			path:   "/v1/appointments/slots?professional_id=b1&service_id=s1&date=2030-01-07",
			setupMock: func(f fixture) {
				f.appointments.EXPECT().Slots(gomock.Any(), gomock.Any()).Return(dto.SlotsResponse{Slots: []string{"08:00"}}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "api docs are public",
			method:   http.MethodGet,
			path:     "/swagger/doc.json",
			wantCode: http.StatusOK,
		},
		{
			name:     "metrics are public",
			method:   http.MethodGet,
			path:     "/metrics",
			wantCode: http.StatusOK,
		},
		{
			name:     "listing needs a token",
			method:   http.MethodGet,
			path:     "/v1/appointments",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:    "expired token",
			method:  http.MethodGet,
			path:    "/v1/appointments",
			headers: map[string]string{constant.RequestHeaderAuthorization: "Bearer old"},
			setupMock: func(f fixture) {
				f.jwt.EXPECT().ValidateToken("old", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:    "professional lists with identity in context",
			method:  http.MethodGet,
			path:    "/v1/appointments/",
			headers: map[string]string{constant.RequestHeaderAuthorization: "Bearer tok"},
			setupMock: func(f fixture) {
				f.jwt.EXPECT().ValidateToken("tok", jwt.AccessToken).Return(claims("b1", constant.RoleProfessional), nil)
				f.appointments.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, _ gDto.QueryParams, _ gDto.FilterGroup) (dto.GetAppointmentsResponse, error) {
						assert.Equal(t, "b1", ctx.Value(constant.ContextKeyUserID))
						assert.Equal(t, constant.RoleProfessional, ctx.Value(constant.ContextKeyUserRole))

						return dto.GetAppointmentsResponse{}, nil
					})
			},
			wantCode: http.StatusOK,
		},
		{
			name:    "professional cannot export reports",
			method:  http.MethodPost,
			path:    "/v1/reports/commissions/export?month=2030-01",
			headers: map[string]string{constant.RequestHeaderAuthorization: "Bearer tok"},
			setupMock: func(f fixture) {
				f.jwt.EXPECT().ValidateToken("tok", jwt.AccessToken).Return(claims("b1", constant.RoleProfessional), nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:    "api key acts as admin",
			method:  http.MethodPost,
			path:    "/v1/appointments/a1/cancel",
			headers: map[string]string{constant.RequestHeaderAPIKey: "internal-key"},
			setupMock: func(f fixture) {
				f.appointments.EXPECT().
					Cancel(gomock.Any(), "a1").
					DoAndReturn(func(ctx context.Context, _ string) (dto.CancelAppointmentResponse, error) {
						assert.Equal(t, constant.RoleAdmin, ctx.Value(constant.ContextKeyUserRole))

						return dto.CancelAppointmentResponse{}, nil
					})
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "wrong api key",
			method:   http.MethodPost,
			path:     "/v1/appointments/a1/cancel",
			headers:  map[string]string{constant.RequestHeaderAPIKey: "guess"},
			wantCode: http.StatusForbidden,
		},
		{
			name:    "public booking keeps an optional identity",
			method:  http.MethodPost,
			path:    "/v1/appointments",
			headers: map[string]string{constant.RequestHeaderAuthorization: "Bearer tok"},
			setupMock: func(f fixture) {
				f.jwt.EXPECT().ValidateToken("tok", jwt.AccessToken).Return(claims("admin", constant.RoleAdmin), nil)
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, f := newMux(t)
			if tt.setupMock != nil {
				tt.setupMock(f)
			}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
