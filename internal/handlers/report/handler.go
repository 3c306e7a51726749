package report

import (
	"net/http"

	"agenda/infras/otel"
	"agenda/internal/domains/report/model/dto"
	"agenda/internal/domains/report/service"
	"agenda/shared/constant"
	"agenda/shared/validator"
	"agenda/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/commissions", handler.GetCommissions)
		routerGroup.Get("/commissions/csv", handler.DownloadCommissions)
		routerGroup.Post("/commissions/export", handler.ExportCommissions)
	})
}

// GetCommissions
// @Summary Monthly commission report
// @Tags Report
// @Produce json
// @Param month query string true "Month (YYYY-MM)"
// @Success 200 {object} response.Data[dto.CommissionReportResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/commissions [get]
// @Security BearerAuth
func (handler *Handler) GetCommissions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCommissions")
	defer scope.End()

	req, err := monthRequest(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Commissions(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build commission report")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DownloadCommissions returns the report as a CSV attachment.
// @Summary Monthly commission report as CSV
// @Tags Report
// @Produce text/csv
// @Param month query string true "Month (YYYY-MM)"
// @Success 200 {file} file
// @Failure 400 {object} response.Error
// @Router /v1/reports/commissions/csv [get]
// @Security BearerAuth
func (handler *Handler) DownloadCommissions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DownloadCommissions")
	defer scope.End()

	req, err := monthRequest(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Commissions(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build commission report")

		response.WithError(w, err)

		return
	}

	data, err := res.CSV()
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to render commission report")

		response.WithError(w, err)

		return
	}

	response.WithFile(w, constant.ContentTypeCSV, "commissions-"+res.Month+".csv", data)
}

// ExportCommissions uploads the CSV to object storage and returns its URL.
// @Summary Export the monthly commission report
// @Tags Report
// @Produce json
// @Param month query string true "Month (YYYY-MM)"
// @Success 201 {object} response.Data[dto.ExportResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/commissions/export [post]
// @Security BearerAuth
func (handler *Handler) ExportCommissions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportCommissions")
	defer scope.End()

	req, err := monthRequest(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.ExportCommissions(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export commission report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Commission report exported to " + res.URL)

	response.WithJSON(w, http.StatusCreated, res)
}

func monthRequest(r *http.Request) (dto.CommissionReportRequest, error) {
	req := dto.CommissionReportRequest{Month: r.URL.Query().Get(constant.RequestParamMonth)}

	return req, validator.ValidateStruct(&req)
}
