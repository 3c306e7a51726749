package service

import (
	"context"
	"errors"
	"fmt"

	"agenda/config"
	"agenda/infras/otel"
	"agenda/internal/domains/blockrule/model"
	"agenda/internal/domains/blockrule/model/dto"
	"agenda/internal/domains/blockrule/repository"
	"agenda/shared"
	"agenda/shared/cache"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllBlockRule = "blockrule:gets"
	cacheCountBlockRule  = "blockrule:count"
)

type BlockRule interface {
	Create(ctx context.Context, req dto.CreateBlockRuleRequest) (dto.BlockRuleResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBlockRulesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	// Delete removes a rule. A recurring rule is a single row, so its whole weekly series goes with it.
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.BlockRule
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.BlockRule, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) BlockRule {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBlockRuleRequest) (res dto.BlockRuleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	rule, err := req.ToModel(user)
	if err != nil {
		if errors.Is(err, model.ErrAmbiguousBlockRule) {
			return res, failure.BadRequestFromString("block rule needs exactly one of date or week_day matching its type, and slot rules need start_time before end_time") // nolint:wrapcheck
		}

		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, rule); err != nil {
		log.Error().Err(err).Msg("failed to create block rule")

		return res, fmt.Errorf("failed to create block rule: %w", err)
	}

	s.invalidate(ctx)

	log.Info().
		Str("professional_id", rule.ProfessionalID).
		Str("type", string(rule.Type)).
		Str("scope", string(rule.Scope)).
		Msg("block rule created")

	res.FromModel(rule)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBlockRulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBlockRule, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count block rules: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get block rules")

		return res, fmt.Errorf("failed to get block rules: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save block rules to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBlockRule, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count block rules")

		return res, fmt.Errorf("failed to count block rules: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save block rule count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	rule, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get block rule")

		return fmt.Errorf("failed to get block rule: %w", err)
	}

	if rule.ID == constant.Empty {
		return failure.NotFound("block rule not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete block rule")

		return fmt.Errorf("failed to delete block rule: %w", err)
	}

	if rule.Type == model.TypeRecurring && rule.WeekDay != nil {
		log.Info().Str("id", id).Int("week_day", *rule.WeekDay).Msg("recurring block series removed")
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBlockRule)
		shared.InvalidateCaches(c, s.cache, cacheCountBlockRule)
	}()
}
