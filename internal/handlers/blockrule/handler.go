package blockrule

import (
	"net/http"

	"agenda/infras/otel"
	"agenda/internal/domains/blockrule/model"
	"agenda/internal/domains/blockrule/model/dto"
	"agenda/internal/domains/blockrule/service"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/validator"
	"agenda/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.BlockRule
	otel    otel.Otel
}

func New(service service.BlockRule, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/block-rules", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBlockRule)
		routerGroup.Get("/", handler.GetBlockRules)
		routerGroup.Delete("/{id}", handler.DeleteBlockRule)
	})
}

// CreateBlockRule closes a professional's agenda for a day, a weekday or a time range.
// @Summary Create a block rule
// @Tags BlockRule
// @Accept json
// @Produce json
// @Param request body dto.CreateBlockRuleRequest true "Block rule"
// @Success 201 {object} response.Data[dto.BlockRuleResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/block-rules [post]
// @Security BearerAuth
func (handler *Handler) CreateBlockRule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBlockRule")
	defer scope.End()

	req := dto.CreateBlockRuleRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	rule, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create block rule")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Block rule created by user " + user)

	response.WithJSON(w, http.StatusCreated, rule)
}

// GetBlockRules
// @Summary List block rules
// @Tags BlockRule
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param professional_id query string false "Filter by professional"
// @Success 200 {object} response.Data[dto.GetBlockRulesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/block-rules [get]
// @Security BearerAuth
func (handler *Handler) GetBlockRules(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlockRules")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if professionalID := r.URL.Query().Get(constant.RequestParamProfessionalID); professionalID != "" {
		filterGroup.Add(gDto.Filter{
			Field:    model.FieldProfessionalID,
			Operator: gDto.FilterOperatorEq,
			Value:    professionalID,
			Table:    model.TableName,
		})
	}

	rules, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get block rules")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rules)
}

// DeleteBlockRule removes a rule; a recurring rule takes its whole series with it.
// @Summary Delete a block rule
// @Tags BlockRule
// @Produce json
// @Param id path string true "Block rule ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/block-rules/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBlockRule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBlockRule")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete block rule")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Block rule deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "Block rule deleted successfully")
}
