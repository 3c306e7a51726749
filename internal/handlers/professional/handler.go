package professional

import (
	"net/http"

	"agenda/infras/otel"
	"agenda/internal/domains/professional/model"
	"agenda/internal/domains/professional/model/dto"
	"agenda/internal/domains/professional/service"
	"agenda/shared"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/validator"
	"agenda/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Professional
	otel    otel.Otel
}

func New(service service.Professional, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/professionals", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateProfessional)
		routerGroup.Get("/", handler.GetProfessionals)
		routerGroup.Get("/{id}", handler.GetProfessionalByID)
		routerGroup.Patch("/{id}", handler.UpdateProfessional)
	})
}

// CreateProfessional registers a professional, optionally with login credentials.
// @Summary Create a professional
// @Tags Professional
// @Accept json
// @Produce json
// @Param request body dto.CreateProfessionalRequest true "Professional"
// @Success 201 {object} response.Data[dto.ProfessionalResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/professionals [post]
// @Security BearerAuth
func (handler *Handler) CreateProfessional(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProfessional")
	defer scope.End()

	req := dto.CreateProfessionalRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	professional, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create professional")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Professional created by user " + user)

	response.WithJSON(w, http.StatusCreated, professional)
}

// GetProfessionals
// @Summary List professionals
// @Tags Professional
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetProfessionalsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/professionals [get]
func (handler *Handler) GetProfessionals(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfessionals")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if name := r.URL.Query().Get(model.FieldName); name != "" {
		filterGroup.Add(gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Add(gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	professionals, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get professionals")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, professionals)
}

// GetProfessionalByID
// @Summary Get a professional
// @Tags Professional
// @Produce json
// @Param id path string true "Professional ID"
// @Success 200 {object} response.Data[dto.ProfessionalResponse]
// @Failure 404 {object} response.Error
// @Router /v1/professionals/{id} [get]
func (handler *Handler) GetProfessionalByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfessionalByID")
	defer scope.End()

	professional, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get professional")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, professional)
}

// UpdateProfessional
// @Summary Update a professional
// @Tags Professional
// @Accept json
// @Produce json
// @Param id path string true "Professional ID"
// @Param request body dto.UpdateProfessionalRequest true "Fields to change"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/professionals/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProfessional(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfessional")
	defer scope.End()

	req := dto.UpdateProfessionalRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update professional")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Professional updated by user " + user)

	response.WithMessage(w, http.StatusOK, "Professional updated successfully")
}
