package service

import (
	"context"
	"crypto/subtle"
	"fmt"

	"agenda/config"
	"agenda/infras/jwt"
	"agenda/infras/otel"
	"agenda/internal/domains/auth/model/dto"
	professionalModel "agenda/internal/domains/professional/model"
	professionalRepo "agenda/internal/domains/professional/repository"
	"agenda/shared"
	"agenda/shared/constant"
	"agenda/shared/failure"
	"agenda/shared/password"

	"github.com/rs/zerolog/log"
)

// AdminUserID identifies the configured administrator in tokens and audit columns.
const AdminUserID = "admin"

const invalidCredentials = "invalid username or password"

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
}

type serviceImpl struct {
	professionalRepo professionalRepo.Professional
	cfg              *config.Config
	otel             otel.Otel
	jwtService       jwt.JWT
}

func New(professionalRepo professionalRepo.Professional, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		professionalRepo: professionalRepo,
		cfg:              cfg,
		otel:             otel,
		jwtService:       jwt,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if s.isAdmin(req) {
		return s.issue(AdminUserID, req.Username, constant.RoleAdmin)
	}

	professional, err := s.professionalRepo.Get(ctx, shared.FilterByField(req.Username, professionalModel.FieldUsername, professionalModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get professional by username")

		return res, fmt.Errorf("failed to get professional: %w", err)
	}

	if professional.ID == constant.Empty || professional.PasswordHash == constant.Empty {
		log.Warn().Str("username", req.Username).Msg("login attempt with unknown username")

		return res, failure.Unauthorized(invalidCredentials) // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, professional.PasswordHash); err != nil {
		log.Warn().Str("username", req.Username).Msg("login attempt with wrong password")

		return res, failure.Unauthorized(invalidCredentials) // nolint:wrapcheck
	}

	if !professional.Active {
		return res, failure.Forbidden("professional account is deactivated") // nolint:wrapcheck
	}

	return s.issue(professional.ID, req.Username, constant.RoleProfessional)
}

func (s *serviceImpl) isAdmin(req dto.LoginRequest) bool {
	admin := s.cfg.App.Admin
	if admin.Username == constant.Empty || admin.Password == constant.Empty || req.Username != admin.Username {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(req.Password), []byte(admin.Password)) == 1
}

func (s *serviceImpl) issue(userID, username, role string) (res dto.LoginResponse, err error) {
	tokenPair, err := s.jwtService.GenerateTokenPair(userID, username, role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	log.Info().Str("user_id", userID).Str("role", role).Msg("user logged in")

	res.FromTokenPair(tokenPair, userID, role)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(&err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

// ChangePassword lets a professional replace their own password. The admin password lives in configuration.
func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(&err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if role != constant.RoleProfessional {
		return failure.BadRequestFromString("only professional accounts can change their password here") // nolint:wrapcheck
	}

	filter := shared.FilterByID(userID, professionalModel.FieldID, professionalModel.TableName)

	professional, err := s.professionalRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get professional")

		return fmt.Errorf("failed to get professional: %w", err)
	}

	if professional.ID == constant.Empty {
		return failure.NotFound("professional not found") // nolint:wrapcheck
	}

	if err := password.Verify(req.CurrentPassword, professional.PasswordHash); err != nil {
		return failure.BadRequestFromString("current password is incorrect") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatedFields := shared.TransformFields(dto.UpdatePasswordRequest{PasswordHash: hashedPassword}, userID)

	if err = s.professionalRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
