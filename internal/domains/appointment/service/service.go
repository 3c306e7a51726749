package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Appointment=MockAppointmentService

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"agenda/config"
	"agenda/infras/kafka"
	"agenda/infras/metrics"
	"agenda/infras/otel"
	"agenda/infras/postgres"
	"agenda/internal/domains/appointment/model"
	"agenda/internal/domains/appointment/model/dto"
	"agenda/internal/domains/appointment/repository"
	blockRuleRepo "agenda/internal/domains/blockrule/repository"
	catalogModel "agenda/internal/domains/catalog/model"
	catalogService "agenda/internal/domains/catalog/service"
	professionalModel "agenda/internal/domains/professional/model"
	professionalRepo "agenda/internal/domains/professional/repository"
	waitlistModel "agenda/internal/domains/waitlist/model"
	waitlistRepo "agenda/internal/domains/waitlist/repository"
	waitlistService "agenda/internal/domains/waitlist/service"
	"agenda/internal/scheduling"
	"agenda/shared"
	"agenda/shared/cache"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/failure"
	"agenda/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAppointment    = "appointment:get"
	cacheGetAllAppointment = "appointment:gets"
	cacheCountAppointment  = "appointment:count"
)

const (
	outcomeBooked   = "booked"
	outcomeConflict = "conflict"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

type Appointment interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAppointmentsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.AppointmentResponse, error)
	Slots(ctx context.Context, req dto.SlotsRequest) (dto.SlotsResponse, error)
	Book(ctx context.Context, req dto.BookAppointmentRequest) (dto.AppointmentResponse, error)
	Confirm(ctx context.Context, id string) (dto.AppointmentResponse, error)
	// Cancel frees the slot and books it for the first waitlist entry that fits, in the same transaction.
	Cancel(ctx context.Context, id string) (dto.CancelAppointmentResponse, error)
	Complete(ctx context.Context, req dto.CompleteAppointmentRequest, id string) (dto.CompleteAppointmentResponse, error)
}

type Dependencies struct {
	Repo          repository.Appointment
	BlockRules    blockRuleRepo.BlockRule
	Waitlist      waitlistRepo.Waitlist
	Professionals professionalRepo.Professional
	Catalog       catalogService.Catalog
	Transactor    postgres.Transactor
	Kafka         kafka.Client
	Metrics       *metrics.Scheduling
}

type serviceImpl struct {
	Dependencies
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(deps Dependencies, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Appointment {
	return &serviceImpl{
		Dependencies: deps,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAppointmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter = scopeToActor(ctx, filter)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAppointment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count appointments: %w", err)
	}

	models, err := s.Repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointments")

		return res, fmt.Errorf("failed to get appointments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return s.count(ctx, req, scopeToActor(ctx, filter))
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountAppointment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.Repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count appointments")

		return res, fmt.Errorf("failed to count appointments: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointment count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(cacheGetAppointment, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		if !canAccess(ctx, res.ProfessionalID) {
			return dto.AppointmentResponse{}, failure.ResourceRestrictedError
		}

		return res, nil
	}

	appt, err := s.Repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointment")

		return res, fmt.Errorf("failed to get appointment: %w", err)
	}

	if appt.ID == constant.Empty {
		return res, failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	if !canAccess(ctx, appt.ProfessionalID) {
		return res, failure.ResourceRestrictedError
	}

	res.FromModel(appt)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointment to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Slots(ctx context.Context, req dto.SlotsRequest) (res dto.SlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Slots")
	defer scope.End()
	defer scope.TraceIfError(&err)

	started := time.Now()
	defer func() { s.Metrics.ObserveSlotQuery(time.Since(started)) }()

	date, err := timezone.ParseDateValue(req.Date)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	window, err := scheduling.NewDayWindow(s.cfg.Schedule.DayStart, s.cfg.Schedule.DayEnd, s.cfg.Schedule.GranularityMinutes)
	if err != nil {
		log.Error().Err(err).Msg("invalid schedule configuration")

		return res, fmt.Errorf("failed to build day window: %w", err)
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return res, err
	}

	if _, err = s.bookableService(catalog, req.ServiceID); err != nil {
		return res, err
	}

	appointments, err := s.Repo.GetAll(ctx, gDto.QueryParams{}, repository.OnDay(req.ProfessionalID, date))
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointments of the day")

		return res, fmt.Errorf("failed to get appointments of the day: %w", err)
	}

	rules, err := s.BlockRules.GetAll(ctx, gDto.QueryParams{}, blockRuleRepo.ForProfessional(req.ProfessionalID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get block rules")

		return res, fmt.Errorf("failed to get block rules: %w", err)
	}

	snapshot := scheduling.Snapshot{Appointments: appointments, Rules: rules, Catalog: catalog}
	duration := catalog.DurationOf(req.ServiceID)

	slots, err := snapshot.EnumerateSlots(req.ProfessionalID, date, duration, window, timezone.Now())
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	res = dto.SlotsResponse{
		ProfessionalID:    req.ProfessionalID,
		ServiceID:         req.ServiceID,
		Date:              date.Key(),
		DurationMinutes:   duration,
		Slots:             slots,
		WaitlistSuggested: len(slots) == 0,
	}

	return res, nil
}

func (s *serviceImpl) Book(ctx context.Context, req dto.BookAppointmentRequest) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Book")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return res, err
	}

	item, err := s.bookableService(catalog, req.ServiceID)
	if err != nil {
		s.Metrics.ObserveBooking(outcomeRejected)

		return res, err
	}

	appt, err := req.ToModel(user, item.Price)
	if err != nil {
		s.Metrics.ObserveBooking(outcomeRejected)

		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if appt.Date.Before(timezone.TodayDate().Time) {
		s.Metrics.ObserveBooking(outcomeRejected)

		return res, failure.BadRequestFromString("cannot book an appointment in the past") // nolint:wrapcheck
	}

	if appt.Date.Equal(timezone.TodayDate()) && startsBeforeNow(appt.Time) {
		s.Metrics.ObserveBooking(outcomeRejected)

		return res, failure.BadRequestFromString("cannot book a start time that has already passed today") // nolint:wrapcheck
	}

	if err = s.activeProfessional(ctx, appt.ProfessionalID); err != nil {
		s.Metrics.ObserveBooking(outcomeRejected)

		return res, err
	}

	err = s.Transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.Repo.LockDay(ctx, tx, appt.DayKey()); err != nil {
			return fmt.Errorf("failed to lock professional day: %w", err)
		}

		snapshot, err := s.daySnapshotTx(ctx, tx, appt.ProfessionalID, appt.Date, catalog)
		if err != nil {
			return err
		}

		conflict, err := snapshot.FindConflict(appt.ProfessionalID, appt.Date, appt.Time, catalog.DurationOf(appt.ServiceID))
		if err != nil {
			return failure.BadRequest(err) // nolint:wrapcheck
		}

		switch conflict {
		case scheduling.ConflictBlocked:
			return failure.SlotUnavailableError.WithReason(failure.ReasonBlocked)
		case scheduling.ConflictOccupied:
			return failure.SlotUnavailableError
		}

		if err := s.Repo.InsertTx(ctx, tx, appt); err != nil {
			if shared.IsPqError(err, constant.PqErrorCodeUniqueViolation) {
				return failure.SlotUnavailableError
			}

			return fmt.Errorf("failed to insert appointment: %w", err)
		}

		return nil
	})
	if err != nil {
		switch {
		case failure.Is(err, http.StatusConflict):
			s.Metrics.ObserveBooking(outcomeConflict)
		case failure.Is(err, http.StatusBadRequest):
			s.Metrics.ObserveBooking(outcomeRejected)
		default:
			s.Metrics.ObserveBooking(outcomeError)
			log.Error().Err(err).Msg("failed to book appointment")
		}

		return res, err
	}

	s.Metrics.ObserveBooking(outcomeBooked)
	s.invalidate(ctx, appt.ID)
	s.publish(ctx, s.cfg.Kafka.Topics.Appointment, model.NewEvent(model.EventBooked, appt, appt.CreatedAt))

	log.Info().
		Str("id", appt.ID).
		Str("professional_id", appt.ProfessionalID).
		Str("date", appt.Date.Key()).
		Str("start_time", appt.Time).
		Msg("appointment booked")

	res.FromModel(appt)

	return res, nil
}

func (s *serviceImpl) Confirm(ctx context.Context, id string) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	var appt model.Appointment

	err = s.Transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		appt, err = s.getTx(ctx, tx, id)
		if err != nil {
			return err
		}

		if appt.Status != model.StatusPending {
			return failure.Conflict(fmt.Sprintf("only pending appointments can be confirmed, this one is %s", appt.Status)) // nolint:wrapcheck
		}

		update := map[string]any{
			model.FieldStatus:         model.StatusConfirmed,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}

		if err := s.Repo.UpdateTx(ctx, tx, update, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to confirm appointment: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, err
	}

	appt.Status = model.StatusConfirmed
	appt.ModifiedAt = now
	appt.ModifiedBy = user

	s.invalidate(ctx, id)

	res.FromModel(appt)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (res dto.CancelAppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return res, err
	}

	var (
		cancelled model.Appointment
		promotion scheduling.Promotion
		promoted  bool
	)

	err = s.Transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		appt, err := s.getTx(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := s.Repo.LockDay(ctx, tx, appt.DayKey()); err != nil {
			return fmt.Errorf("failed to lock professional day: %w", err)
		}

		// Re-read under the lock; the status may have moved since the first read.
		appt, err = s.getTx(ctx, tx, id)
		if err != nil {
			return err
		}

		if appt.Status == model.StatusCancelled || appt.Status == model.StatusCompleted {
			return failure.Conflict(fmt.Sprintf("appointment is already %s", appt.Status)) // nolint:wrapcheck
		}

		update := map[string]any{
			model.FieldStatus:         model.StatusCancelled,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}

		if err := s.Repo.UpdateTx(ctx, tx, update, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to cancel appointment: %w", err)
		}

		appt.Status = model.StatusCancelled
		appt.ModifiedAt = now
		appt.ModifiedBy = user
		cancelled = appt

		snapshot, err := s.daySnapshotTx(ctx, tx, appt.ProfessionalID, appt.Date, catalog)
		if err != nil {
			return err
		}

		entries, err := s.Waitlist.GetAllTx(ctx, tx, waitlistRepo.ArrivalOrder(),
			shared.FilterByField(appt.Date.Key(), waitlistModel.FieldDate, waitlistModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to get waitlist of the day: %w", err)
		}

		promotion, promoted = scheduling.PromoteAfterCancellation(appt, entries, catalog, snapshot.WithCancelled(appt.ID).Checker(), now)
		if !promoted {
			return nil
		}

		promotion.Appointment.CreatedBy = user
		promotion.Appointment.ModifiedBy = user

		if err := s.Repo.InsertTx(ctx, tx, promotion.Appointment); err != nil {
			return fmt.Errorf("failed to book promoted waitlist entry: %w", err)
		}

		if err := s.Waitlist.DeleteTx(ctx, tx, shared.FilterByID(promotion.Entry.ID, waitlistModel.FieldID, waitlistModel.TableName)); err != nil {
			return fmt.Errorf("failed to remove promoted waitlist entry: %w", err)
		}

		return nil
	})
	if err != nil {
		if failure.GetCode(err) == http.StatusInternalServerError {
			log.Error().Err(err).Msg("failed to cancel appointment")
		}

		return res, err
	}

	s.Metrics.ObserveCancellation(promoted)
	s.invalidate(ctx, id)
	s.publish(ctx, s.cfg.Kafka.Topics.Appointment, model.NewEvent(model.EventCancelled, cancelled, now))

	res.Appointment.FromModel(cancelled)

	if promoted {
		event := model.NewEvent(model.EventPromoted, promotion.Appointment, now)
		event.WaitlistID = promotion.Entry.ID
		s.publish(ctx, s.cfg.Kafka.Topics.Waitlist, event)

		go waitlistService.Invalidate(context.WithoutCancel(ctx), s.cache)

		log.Info().
			Str("cancelled_id", cancelled.ID).
			Str("promoted_id", promotion.Appointment.ID).
			Str("waitlist_id", promotion.Entry.ID).
			Msg("waitlist entry promoted into freed slot")

		res.Promoted = &dto.AppointmentResponse{}
		res.Promoted.FromModel(promotion.Appointment)
	}

	return res, nil
}

func (s *serviceImpl) Complete(ctx context.Context, req dto.CompleteAppointmentRequest, id string) (res dto.CompleteAppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Complete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return res, err
	}

	var (
		extrasTotal float64
		extraNames  []string
	)

	for _, extraID := range req.Extras {
		extra, ok := catalog.Lookup(extraID)
		if !ok {
			return res, failure.BadRequestFromString(fmt.Sprintf("unknown extra item %s", extraID)) // nolint:wrapcheck
		}

		extrasTotal += extra.Price
		extraNames = append(extraNames, extra.Name)
	}

	var appt model.Appointment

	err = s.Transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		appt, err = s.getTx(ctx, tx, id)
		if err != nil {
			return err
		}

		if appt.Status != model.StatusPending && appt.Status != model.StatusConfirmed {
			return failure.Conflict(fmt.Sprintf("appointment is %s and cannot be completed", appt.Status)) // nolint:wrapcheck
		}

		final := scheduling.FinalPrice(appt.TotalPrice, extrasTotal, req.Discount, req.Tip)
		discount, tip := req.Discount, req.Tip

		appt.Status = model.StatusCompleted
		appt.FinalPrice = &final
		appt.Discount = &discount
		appt.Tip = &tip
		appt.PaymentMethod = req.PaymentMethod
		appt.Notes = withExtras(appt.Notes, extraNames)
		appt.ModifiedAt = now
		appt.ModifiedBy = user

		update := map[string]any{
			model.FieldStatus:         appt.Status,
			model.FieldFinalPrice:     final,
			model.FieldDiscount:       discount,
			model.FieldTip:            tip,
			model.FieldPaymentMethod:  appt.PaymentMethod,
			model.FieldNotes:          appt.Notes,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}

		if err := s.Repo.UpdateTx(ctx, tx, update, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to complete appointment: %w", err)
		}

		return nil
	})
	if err != nil {
		if failure.GetCode(err) == http.StatusInternalServerError {
			log.Error().Err(err).Msg("failed to complete appointment")
		}

		return res, err
	}

	commission, err := s.commission(ctx, appt, catalog)
	if err != nil {
		log.Warn().Err(err).Str("id", id).Msg("appointment completed without commission")
	}

	s.Metrics.ObserveCompletion(appt.PaymentMethod)
	s.invalidate(ctx, id)

	event := model.NewEvent(model.EventCompleted, appt, now)
	event.Amount = appt.ChargedPrice()
	s.publish(ctx, s.cfg.Kafka.Topics.Appointment, event)

	res.Appointment.FromModel(appt)
	res.Commission = commission

	return res, nil
}

func (s *serviceImpl) commission(ctx context.Context, appt model.Appointment, catalog scheduling.Catalog) (float64, error) {
	item, ok := catalog.Lookup(appt.ServiceID)
	if !ok {
		return 0, fmt.Errorf("service %s is no longer in the catalog", appt.ServiceID)
	}

	professional, err := s.Professionals.Get(ctx, shared.FilterByID(appt.ProfessionalID, professionalModel.FieldID, professionalModel.TableName))
	if err != nil {
		return 0, fmt.Errorf("failed to get professional: %w", err)
	}

	if professional.ID == constant.Empty {
		return 0, fmt.Errorf("professional %s not found", appt.ProfessionalID)
	}

	return scheduling.Commission(appt, item, professional) //nolint:wrapcheck
}

func (s *serviceImpl) getTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Appointment, error) {
	appt, err := s.Repo.GetTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return appt, fmt.Errorf("failed to get appointment: %w", err)
	}

	if appt.ID == constant.Empty {
		return appt, failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	if !canAccess(ctx, appt.ProfessionalID) {
		return appt, failure.ResourceRestrictedError
	}

	return appt, nil
}

func (s *serviceImpl) daySnapshotTx(
	ctx context.Context,
	tx *sqlx.Tx,
	professionalID string,
	date timezone.Date,
	catalog scheduling.Catalog,
) (scheduling.Snapshot, error) {
	appointments, err := s.Repo.GetAllTx(ctx, tx, gDto.QueryParams{}, repository.OnDay(professionalID, date))
	if err != nil {
		return scheduling.Snapshot{}, fmt.Errorf("failed to get appointments of the day: %w", err)
	}

	rules, err := s.BlockRules.GetAllTx(ctx, tx, gDto.QueryParams{}, blockRuleRepo.ForProfessional(professionalID))
	if err != nil {
		return scheduling.Snapshot{}, fmt.Errorf("failed to get block rules: %w", err)
	}

	return scheduling.Snapshot{Appointments: appointments, Rules: rules, Catalog: catalog}, nil
}

func (s *serviceImpl) loadCatalog(ctx context.Context) (scheduling.Catalog, error) {
	items, err := s.Catalog.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	return scheduling.NewCatalog(items), nil
}

func (s *serviceImpl) bookableService(catalog scheduling.Catalog, serviceID string) (catalogModel.Item, error) {
	item, ok := catalog.Lookup(serviceID)
	if !ok || !item.IsService() {
		return item, failure.NotFound("service not found") // nolint:wrapcheck
	}

	if !item.Active {
		return item, failure.BadRequestFromString("service is not active") // nolint:wrapcheck
	}

	return item, nil
}

func (s *serviceImpl) activeProfessional(ctx context.Context, id string) error {
	professional, err := s.Professionals.Get(ctx, shared.FilterByID(id, professionalModel.FieldID, professionalModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get professional")

		return fmt.Errorf("failed to get professional: %w", err)
	}

	if professional.ID == constant.Empty {
		return failure.NotFound("professional not found") // nolint:wrapcheck
	}

	if !professional.Active {
		return failure.BadRequestFromString("professional is not active") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) publish(ctx context.Context, topic string, events ...model.Event) {
	go func() {
		c := context.WithoutCancel(ctx)

		messages := make([]kafka.Message, len(events))
		for i, event := range events {
			messages[i] = kafka.Message{Key: event.ProfessionalID + "|" + event.Date, Value: event}
		}

		if err := s.Kafka.SendMessages(c, topic, messages...); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("failed to publish appointment events")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetAppointment, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete appointment cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllAppointment)
		shared.InvalidateCaches(c, s.cache, cacheCountAppointment)
	}()
}

func withExtras(notes string, extras []string) string {
	if len(extras) == 0 {
		return notes
	}

	line := "extras: " + strings.Join(extras, ", ")
	if notes == "" {
		return line
	}

	return notes + "\n" + line
}

// canAccess lets professionals reach only their own agenda.
func canAccess(ctx context.Context, professionalID string) bool {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role != constant.RoleProfessional {
		return true
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return user == professionalID
}

func scopeToActor(ctx context.Context, filter gDto.FilterGroup) gDto.FilterGroup {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role != constant.RoleProfessional {
		return filter
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	own := gDto.Filter{
		Field:    model.FieldProfessionalID,
		ArgName:  "actor_professional_id",
		Value:    user,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	}

	return gDto.And(filter, own)
}

// startsBeforeNow matches EnumerateSlots: a start at the current minute is already gone.
func startsBeforeNow(start string) bool {
	minutes, err := timezone.ToMinutes(start)

	return err == nil && minutes <= timezone.MinuteOfDay(timezone.Now())
}
