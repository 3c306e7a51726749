package appointment

import (
	"net/http"

	"agenda/infras/otel"
	"agenda/internal/domains/appointment/model"
	"agenda/internal/domains/appointment/model/dto"
	"agenda/internal/domains/appointment/service"
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
	service service.Appointment
	otel    otel.Otel
}

func New(service service.Appointment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/appointments", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAppointments)
		routerGroup.Post("/", handler.BookAppointment)
		routerGroup.Get("/slots", handler.GetSlots)
		routerGroup.Get("/{id}", handler.GetAppointmentByID)
		routerGroup.Patch("/{id}/confirm", handler.ConfirmAppointment)
		routerGroup.Post("/{id}/cancel", handler.CancelAppointment)
		routerGroup.Post("/{id}/complete", handler.CompleteAppointment)
	})
}

// GetAppointments lists the agenda. Professionals only ever see their own appointments.
// @Summary List appointments
// @Tags Appointment
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param professional_id query string false "Filter by professional"
// @Param date query string false "Day (YYYY-MM-DD)"
// @Param status query string false "pending, confirmed, completed or cancelled"
// @Success 200 {object} response.Data[dto.GetAppointmentsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments [get]
// @Security BearerAuth
func (handler *Handler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.DefaultSort(model.FieldDate, gDto.SortDirAsc)

	filterGroup, err := listFilter(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid appointment filter")

		response.WithError(w, err)

		return
	}

	appointments, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get appointments")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, appointments)
}

// GetSlots returns the free start times of a professional's day for a service.
// @Summary Free slots
// @Tags Appointment
// @Produce json
// @Param professional_id query string true "Professional ID"
// @Param service_id query string true "Service ID"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.SlotsResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/appointments/slots [get]
func (handler *Handler) GetSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlots")
	defer scope.End()

	query := r.URL.Query()
	req := dto.SlotsRequest{
		ProfessionalID: query.Get(constant.RequestParamProfessionalID),
		ServiceID:      query.Get(constant.RequestParamServiceID),
		Date:           query.Get(constant.RequestParamDate),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	slots, err := handler.service.Slots(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to enumerate slots")

		response.WithError(w, err)

		return
	}

	scope.SetAttribute("slots.count", len(slots.Slots))

	response.WithJSON(w, http.StatusOK, slots)
}

// BookAppointment books a slot. Taken or blocked slots answer 409.
// @Summary Book an appointment
// @Tags Appointment
// @Accept json
// @Produce json
// @Param request body dto.BookAppointmentRequest true "Booking"
// @Success 201 {object} response.Data[dto.AppointmentResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments [post]
func (handler *Handler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookAppointment")
	defer scope.End()

	req := dto.BookAppointmentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	appointment, err := handler.service.Book(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book appointment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointment booked " + appointment.ID)

	response.WithJSON(w, http.StatusCreated, appointment)
}

// GetAppointmentByID
// @Summary Get an appointment
// @Tags Appointment
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Data[dto.AppointmentResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/appointments/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetAppointmentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointmentByID")
	defer scope.End()

	appointment, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get appointment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, appointment)
}

// ConfirmAppointment
// @Summary Confirm a pending appointment
// @Tags Appointment
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Data[dto.AppointmentResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/appointments/{id}/confirm [patch]
// @Security BearerAuth
func (handler *Handler) ConfirmAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmAppointment")
	defer scope.End()

	appointment, err := handler.service.Confirm(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm appointment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, appointment)
}

// CancelAppointment frees the slot and returns the waitlist booking that took it, if any.
// @Summary Cancel an appointment
// @Tags Appointment
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Data[dto.CancelAppointmentResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/appointments/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelAppointment")
	defer scope.End()

	res, err := handler.service.Cancel(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel appointment")

		response.WithError(w, err)

		return
	}

	if res.Promoted != nil {
		scope.AddEvent("Waitlist entry promoted to appointment " + res.Promoted.ID)
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CompleteAppointment registers payment and returns the professional's commission.
// @Summary Complete an appointment
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.CompleteAppointmentRequest true "Payment"
// @Success 200 {object} response.Data[dto.CompleteAppointmentResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/appointments/{id}/complete [post]
// @Security BearerAuth
func (handler *Handler) CompleteAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteAppointment")
	defer scope.End()

	req := dto.CompleteAppointmentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Complete(ctx, req, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete appointment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Appointment completed by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

func listFilter(r *http.Request) (gDto.FilterGroup, error) {
	query := r.URL.Query()
	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if professionalID := query.Get(constant.RequestParamProfessionalID); professionalID != "" {
		filterGroup.Add(gDto.Filter{
			Field:    model.FieldProfessionalID,
			Operator: gDto.FilterOperatorEq,
			Value:    professionalID,
			Table:    model.TableName,
		})
	}

	if date := query.Get(constant.RequestParamDate); date != "" {
		day, err := timezone.ParseDateValue(date)
		if err != nil {
			return filterGroup, failure.BadRequest(err) // nolint:wrapcheck
		}

		filterGroup.Add(gDto.Filter{
			Field:    model.FieldDate,
			Operator: gDto.FilterOperatorEq,
			Value:    day.Key(),
			Table:    model.TableName,
		})
	}

	if status := query.Get(constant.RequestParamStatus); status != "" {
		if err := validator.ValidateVar(status, "oneof=pending confirmed completed cancelled"); err != nil {
			return filterGroup, err // nolint:wrapcheck
		}

		filterGroup.Add(gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	return filterGroup, nil
}
