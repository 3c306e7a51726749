package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"agenda/config"
	"agenda/infras/jwt"
	jwtMocks "agenda/infras/jwt/mocks"
	"agenda/infras/otel/mocks"
	"agenda/internal/domains/auth/model/dto"
	"agenda/internal/domains/auth/service"
	professionalMocks "agenda/internal/domains/professional/mocks"
	professionalModel "agenda/internal/domains/professional/model"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// passwordHash is the bcrypt hash of "password".
const passwordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

func newService(t *testing.T) (service.Auth, *professionalMocks.MockProfessional, *jwtMocks.MockJWT) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := professionalMocks.NewMockProfessional(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	cfg := &config.Config{}
	cfg.App.Admin.Username = "owner"
	cfg.App.Admin.Password = "s3cret-admin"

	return service.New(mockRepo, cfg, mocks.NewOtel(), mockJWT), mockRepo, mockJWT
}

func barber() professionalModel.Professional {
	username := "bruno"

	return professionalModel.Professional{
		ID:           "b1",
		Name:         "Bruno",
		Active:       true,
		Username:     &username,
		PasswordHash: passwordHash,
	}
}

func tokens() *jwt.TokenPair {
	return &jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token", TokenType: "Bearer", ExpiresIn: 900}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(repo *professionalMocks.MockProfessional, mockJWT *jwtMocks.MockJWT)
		wantRole  string
		wantCode  int
		wantErr   bool
	}{
		{
			name: "configured admin",
			req:  dto.LoginRequest{Username: "owner", Password: "s3cret-admin"},
			setupMock: func(_ *professionalMocks.MockProfessional, mockJWT *jwtMocks.MockJWT) {
				mockJWT.EXPECT().GenerateTokenPair(service.AdminUserID, "owner", constant.RoleAdmin).Return(tokens(), nil)
			},
			wantRole: constant.RoleAdmin,
		},
		{
			name: "professional",
			req:  dto.LoginRequest{Username: "bruno", Password: "password"},
			setupMock: func(repo *professionalMocks.MockProfessional, mockJWT *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(barber(), nil)
				mockJWT.EXPECT().GenerateTokenPair("b1", "bruno", constant.RoleProfessional).Return(tokens(), nil)
			},
			wantRole: constant.RoleProfessional,
		},
		{
			name: "wrong admin password falls through to professionals",
			req:  dto.LoginRequest{Username: "owner", Password: "guess"},
			setupMock: func(repo *professionalMocks.MockProfessional, _ *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(professionalModel.Professional{}, nil)
			},
			wantCode: http.StatusUnauthorized,
			wantErr:  true,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Username: "bruno", Password: "wrongpassword"},
			setupMock: func(repo *professionalMocks.MockProfessional, _ *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(barber(), nil)
			},
			wantCode: http.StatusUnauthorized,
			wantErr:  true,
		},
		{
			name: "professional without credentials",
			req:  dto.LoginRequest{Username: "bruno", Password: "password"},
			setupMock: func(repo *professionalMocks.MockProfessional, _ *jwtMocks.MockJWT) {
				noLogin := barber()
				noLogin.PasswordHash = ""

				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(noLogin, nil)
			},
			wantCode: http.StatusUnauthorized,
			wantErr:  true,
		},
		{
			name: "inactive professional",
			req:  dto.LoginRequest{Username: "bruno", Password: "password"},
			setupMock: func(repo *professionalMocks.MockProfessional, _ *jwtMocks.MockJWT) {
				inactive := barber()
				inactive.Active = false

				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)
			},
			wantCode: http.StatusForbidden,
			wantErr:  true,
		},
		{
			name: "repository error",
			req:  dto.LoginRequest{Username: "bruno", Password: "password"},
			setupMock: func(repo *professionalMocks.MockProfessional, _ *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(professionalModel.Professional{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  true,
		},
		{
			name: "token generation error",
			req:  dto.LoginRequest{Username: "bruno", Password: "password"},
			setupMock: func(repo *professionalMocks.MockProfessional, mockJWT *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(barber(), nil)
				mockJWT.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("token generation failed"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, mockJWT := newService(t)
			tt.setupMock(repo, mockJWT)

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
			assert.Equal(t, tt.wantRole, res.Role)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.RefreshTokenRequest
		setupMock func(mockJWT *jwtMocks.MockJWT)
		wantErr   bool
	}{
		{
			name: "successful token refresh",
			req:  dto.RefreshTokenRequest{RefreshToken: "valid-refresh-token"},
			setupMock: func(mockJWT *jwtMocks.MockJWT) {
				mockJWT.EXPECT().RefreshTokens("valid-refresh-token").Return(tokens(), nil)
			},
		},
		{
			name: "invalid refresh token",
			req:  dto.RefreshTokenRequest{RefreshToken: "invalid-refresh-token"},
			setupMock: func(mockJWT *jwtMocks.MockJWT) {
				mockJWT.EXPECT().RefreshTokens("invalid-refresh-token").Return(nil, errors.New("invalid token"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, mockJWT := newService(t)
			tt.setupMock(mockJWT)

			res, err := svc.RefreshToken(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.AccessToken)
			assert.NotEmpty(t, res.RefreshToken)
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	professionalCtx := context.WithValue(
		context.WithValue(context.Background(), constant.ContextKeyUserID, "b1"),
		constant.ContextKeyUserRole, constant.RoleProfessional,
	)
	adminCtx := context.WithValue(
		context.WithValue(context.Background(), constant.ContextKeyUserID, service.AdminUserID),
		constant.ContextKeyUserRole, constant.RoleAdmin,
	)

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.ChangePasswordRequest
		setupMock func(repo *professionalMocks.MockProfessional)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "successful password change",
			ctx:  professionalCtx,
			req:  dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "newpassword123"},
			setupMock: func(repo *professionalMocks.MockProfessional) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(barber(), nil)
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.NotEqual(t, passwordHash, fields["password_hash"])
						assert.Equal(t, "b1", fields[constant.FieldModifiedBy])

						return nil
					})
			},
		},
		{
			name:      "admin is rejected",
			ctx:       adminCtx,
			req:       dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "newpassword123"},
			setupMock: func(*professionalMocks.MockProfessional) {},
			wantCode:  http.StatusBadRequest,
			wantErr:   true,
		},
		{
			name: "professional not found",
			ctx:  professionalCtx,
			req:  dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "newpassword123"},
			setupMock: func(repo *professionalMocks.MockProfessional) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(professionalModel.Professional{}, nil)
			},
			wantCode: http.StatusNotFound,
			wantErr:  true,
		},
		{
			name: "wrong current password",
			ctx:  professionalCtx,
			req:  dto.ChangePasswordRequest{CurrentPassword: "wrongpassword", NewPassword: "newpassword123"},
			setupMock: func(repo *professionalMocks.MockProfessional) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(barber(), nil)
			},
			wantCode: http.StatusBadRequest,
			wantErr:  true,
		},
		{
			name: "update password error",
			ctx:  professionalCtx,
			req:  dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "newpassword123"},
			setupMock: func(repo *professionalMocks.MockProfessional) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(barber(), nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("update error"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			err := svc.ChangePassword(tt.ctx, tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}
