package service

import (
	"context"
	"fmt"

	"agenda/config"
	"agenda/infras/otel"
	"agenda/internal/domains/professional/model"
	"agenda/internal/domains/professional/model/dto"
	"agenda/internal/domains/professional/repository"
	"agenda/shared"
	"agenda/shared/cache"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/failure"
	"agenda/shared/password"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetProfessional    = "professional:get"
	cacheGetAllProfessional = "professional:gets"
	cacheCountProfessional  = "professional:count"

	fieldPasswordHash = "password_hash"
)

type Professional interface {
	Create(ctx context.Context, req dto.CreateProfessionalRequest) (dto.ProfessionalResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetProfessionalsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ProfessionalResponse, error)
	Update(ctx context.Context, req dto.UpdateProfessionalRequest, id string) error
}

type serviceImpl struct {
	repo  repository.Professional
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Professional, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Professional {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateProfessionalRequest) (res dto.ProfessionalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var hash string
	if req.Username != constant.Empty {
		hash, err = password.Hash(req.Password)
		if err != nil {
			return res, failure.BadRequest(err) // nolint:wrapcheck
		}
	}

	professional := req.ToModel(user, hash)

	if err = s.repo.Insert(ctx, professional); err != nil {
		if shared.IsPqError(err, constant.PqErrorCodeUniqueViolation) {
			return res, failure.Conflict("username already taken") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create professional")

		return res, fmt.Errorf("failed to create professional: %w", err)
	}

	s.invalidate(ctx, constant.Empty)

	res.FromModel(professional)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetProfessionalsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllProfessional, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for professionals")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count professionals: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get professionals")

		return res, fmt.Errorf("failed to get professionals: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save professionals to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountProfessional, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count professionals")

		return res, fmt.Errorf("failed to count professionals: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save professional count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ProfessionalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(cacheGetProfessional, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	professional, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get professional")

		return res, fmt.Errorf("failed to get professional: %w", err)
	}

	if professional.ID == constant.Empty {
		return res, failure.NotFound("professional not found") // nolint:wrapcheck
	}

	res.FromModel(professional)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save professional to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateProfessionalRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check professional existence")

		return fmt.Errorf("failed to check professional existence: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("professional not found") // nolint:wrapcheck
	}

	fields := shared.TransformFields(req, user)

	if req.Password != nil {
		hash, err := password.Hash(*req.Password)
		if err != nil {
			return failure.BadRequest(err) // nolint:wrapcheck
		}

		fields[fieldPasswordHash] = hash
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		if shared.IsPqError(err, constant.PqErrorCodeUniqueViolation) {
			return failure.Conflict("username already taken") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update professional")

		return fmt.Errorf("failed to update professional: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetProfessional, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete professional cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllProfessional)
		shared.InvalidateCaches(c, s.cache, cacheCountProfessional)
	}()
}
