package waitlist

import (
	"net/http"

	"agenda/infras/otel"
	"agenda/internal/domains/waitlist/model"
	"agenda/internal/domains/waitlist/model/dto"
	"agenda/internal/domains/waitlist/service"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/failure"
	"agenda/shared/timezone"
	"agenda/shared/validator"
	"agenda/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Waitlist
	otel    otel.Otel
}

func New(service service.Waitlist, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/waitlist", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.JoinWaitlist)
		routerGroup.Get("/", handler.GetEntries)
		routerGroup.Delete("/{id}", handler.WithdrawEntry)
	})
}

// JoinWaitlist queues a client for a fully booked day.
// @Summary Join the waitlist
// @Tags Waitlist
// @Accept json
// @Produce json
// @Param request body dto.JoinWaitlistRequest true "Waitlist entry"
// @Success 201 {object} response.Data[dto.EntryResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/waitlist [post]
func (handler *Handler) JoinWaitlist(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".JoinWaitlist")
	defer scope.End()

	req := dto.JoinWaitlistRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	entry, err := handler.service.Join(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to join waitlist")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Waitlist entry created for " + entry.Date)

	response.WithJSON(w, http.StatusCreated, entry)
}

// GetEntries lists waiting clients in arrival order.
// @Summary List waitlist entries
// @Tags Waitlist
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param date query string false "Day (YYYY-MM-DD)"
// @Param professional_id query string false "Filter by requested professional"
// @Success 200 {object} response.Data[dto.GetEntriesResponse]
// @Failure 400 {object} response.Error
// @Router /v1/waitlist [get]
// @Security BearerAuth
func (handler *Handler) GetEntries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEntries")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	queryParams.DefaultSort(model.FieldCreatedAt, gDto.SortDirAsc)
	queryParams.TieBreak = model.FieldSeq

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if date := r.URL.Query().Get(constant.RequestParamDate); date != "" {
		day, err := timezone.ParseDateValue(date)
		if err != nil {
			err = failure.BadRequest(err)
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}

		filterGroup.Add(gDto.Filter{
			Field:    model.FieldDate,
			Operator: gDto.FilterOperatorEq,
			Value:    day.Key(),
			Table:    model.TableName,
		})
	}

	if professionalID := r.URL.Query().Get(constant.RequestParamProfessionalID); professionalID != "" {
		filterGroup.Add(gDto.Filter{
			Field:    model.FieldProfessionalID,
			Operator: gDto.FilterOperatorEq,
			Value:    professionalID,
			Table:    model.TableName,
		})
	}

	entries, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get waitlist entries")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, entries)
}

// WithdrawEntry
// @Summary Remove a waitlist entry
// @Tags Waitlist
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/waitlist/{id} [delete]
// @Security BearerAuth
func (handler *Handler) WithdrawEntry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".WithdrawEntry")
	defer scope.End()

	if err := handler.service.Withdraw(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to withdraw waitlist entry")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Waitlist entry removed successfully")
}
