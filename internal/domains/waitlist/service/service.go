package service

import (
	"context"
	"fmt"

	"agenda/config"
	"agenda/infras/otel"
	catalogModel "agenda/internal/domains/catalog/model"
	catalogService "agenda/internal/domains/catalog/service"
	"agenda/internal/domains/waitlist/model"
	"agenda/internal/domains/waitlist/model/dto"
	"agenda/internal/domains/waitlist/repository"
	"agenda/shared"
	"agenda/shared/cache"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/failure"
	"agenda/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllEntry = "waitlist:gets"
	cacheCountEntry  = "waitlist:count"
)

type Waitlist interface {
	Join(ctx context.Context, req dto.JoinWaitlistRequest) (dto.EntryResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEntriesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Withdraw(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo    repository.Waitlist
	catalog catalogService.Catalog
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(
	repo repository.Waitlist,
	catalog catalogService.Catalog,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Waitlist {
	return &serviceImpl{
		repo:    repo,
		catalog: catalog,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func (s *serviceImpl) Join(ctx context.Context, req dto.JoinWaitlistRequest) (res dto.EntryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Join")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	entry, err := req.ToModel(user)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if entry.Date.Before(timezone.TodayDate().Time) {
		return res, failure.BadRequestFromString("cannot join the waitlist for a past date") // nolint:wrapcheck
	}

	item, err := s.catalog.Get(ctx, entry.ServiceID)
	if err != nil {
		return res, fmt.Errorf("failed to get waitlist service: %w", err)
	}

	if item.Type != catalogModel.TypeService || !item.Active {
		return res, failure.BadRequestFromString("waitlist requires an active service") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, entry); err != nil {
		log.Error().Err(err).Msg("failed to join waitlist")

		return res, fmt.Errorf("failed to join waitlist: %w", err)
	}

	s.invalidate(ctx)

	log.Info().
		Str("professional_id", entry.ProfessionalID).
		Str("date", entry.Date.Key()).
		Msg("client joined waitlist")

	res.FromModel(entry)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEntriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllEntry, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count waitlist entries: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get waitlist entries")

		return res, fmt.Errorf("failed to get waitlist entries: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save waitlist entries to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountEntry, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count waitlist entries")

		return res, fmt.Errorf("failed to count waitlist entries: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save waitlist count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Withdraw(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Withdraw")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	entry, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get waitlist entry")

		return fmt.Errorf("failed to get waitlist entry: %w", err)
	}

	if entry.ID == constant.Empty {
		return failure.NotFound("waitlist entry not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to withdraw waitlist entry")

		return fmt.Errorf("failed to withdraw waitlist entry: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllEntry)
		shared.InvalidateCaches(c, s.cache, cacheCountEntry)
	}()
}

// Invalidate drops cached waitlist listings after entries are consumed elsewhere, e.g. by a promotion.
func Invalidate(ctx context.Context, redisCache cache.RedisCache) {
	shared.InvalidateCaches(ctx, redisCache, cacheGetAllEntry)
	shared.InvalidateCaches(ctx, redisCache, cacheCountEntry)
}
