package service

import (
	"context"
	"fmt"

	"agenda/config"
	"agenda/infras/otel"
	"agenda/infras/s3"
	appointmentRepo "agenda/internal/domains/appointment/repository"
	catalogModel "agenda/internal/domains/catalog/model"
	catalogService "agenda/internal/domains/catalog/service"
	professionalModel "agenda/internal/domains/professional/model"
	professionalRepo "agenda/internal/domains/professional/repository"
	"agenda/internal/domains/report/model"
	"agenda/internal/domains/report/model/dto"
	"agenda/internal/scheduling"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/failure"
	"agenda/shared/timezone"

	"github.com/rs/zerolog/log"
)

const exportDirectory = "reports/commissions"

type Report interface {
	// Commissions totals completed appointments of the month per active professional.
	Commissions(ctx context.Context, req dto.CommissionReportRequest) (dto.CommissionReportResponse, error)
	ExportCommissions(ctx context.Context, req dto.CommissionReportRequest) (dto.ExportResponse, error)
}

type serviceImpl struct {
	appointments  appointmentRepo.Appointment
	professionals professionalRepo.Professional
	catalog       catalogService.Catalog
	storage       s3.S3
	cfg           *config.Config
	otel          otel.Otel
}

func New(
	appointments appointmentRepo.Appointment,
	professionals professionalRepo.Professional,
	catalog catalogService.Catalog,
	storage s3.S3,
	cfg *config.Config,
	otel otel.Otel,
) Report {
	return &serviceImpl{
		appointments:  appointments,
		professionals: professionals,
		catalog:       catalog,
		storage:       storage,
		cfg:           cfg,
		otel:          otel,
	}
}

func (s *serviceImpl) Commissions(ctx context.Context, req dto.CommissionReportRequest) (res dto.CommissionReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Commissions")
	defer scope.End()
	defer scope.TraceIfError(&err)

	period, err := model.ParsePeriod(req.Month)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	rows, err := s.build(ctx, period)
	if err != nil {
		return res, err
	}

	res.FromModels(period, rows)

	return res, nil
}

func (s *serviceImpl) ExportCommissions(ctx context.Context, req dto.CommissionReportRequest) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportCommissions")
	defer scope.End()
	defer scope.TraceIfError(&err)

	report, err := s.Commissions(ctx, req)
	if err != nil {
		return res, err
	}

	data, err := report.CSV()
	if err != nil {
		log.Error().Err(err).Msg("failed to render commission report")

		return res, fmt.Errorf("failed to render commission report: %w", err)
	}

	fileName := fmt.Sprintf("commissions-%s-%d.csv", report.Month, timezone.Now().Unix())

	url, err := s.storage.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, exportDirectory, fileName, constant.ContentTypeCSV, data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload commission report")

		return res, fmt.Errorf("failed to upload commission report: %w", err)
	}

	log.Info().Str("month", report.Month).Str("url", url).Msg("commission report exported")

	return dto.ExportResponse{Month: report.Month, FileName: fileName, URL: url}, nil
}

func (s *serviceImpl) build(ctx context.Context, period model.Period) ([]model.ProfessionalCommission, error) {
	professionals, err := s.professionals.GetAll(ctx, gDto.QueryParams{}, activeProfessionals(ctx))
	if err != nil {
		log.Error().Err(err).Msg("failed to get professionals")

		return nil, fmt.Errorf("failed to get professionals: %w", err)
	}

	appointments, err := s.appointments.GetAll(ctx, gDto.QueryParams{}, appointmentRepo.InMonth(period.From, period.To))
	if err != nil {
		log.Error().Err(err).Msg("failed to get completed appointments")

		return nil, fmt.Errorf("failed to get completed appointments: %w", err)
	}

	items, err := s.catalog.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	catalog := scheduling.NewCatalog(items)

	rows := make([]model.ProfessionalCommission, len(professionals))
	index := make(map[string]int, len(professionals))

	for i, professional := range professionals {
		rows[i] = model.ProfessionalCommission{ProfessionalID: professional.ID, Name: professional.Name}
		index[professional.ID] = i
	}

	for _, appt := range appointments {
		i, ok := index[appt.ProfessionalID]
		if !ok {
			continue
		}

		// Sales of a service that left the catalog still count as services.
		item, ok := catalog.Lookup(appt.ServiceID)
		if !ok {
			item = catalogModel.Item{ID: appt.ServiceID, Type: catalogModel.TypeService}
		}

		row := &rows[i]
		row.Appointments++
		row.Sales += appt.ChargedPrice()

		commission, err := scheduling.Commission(appt, item, professionals[i])
		if err != nil {
			log.Warn().Err(err).Str("appointment_id", appt.ID).Msg("appointment left out of commission")

			continue
		}

		row.Commission += commission
		row.Breakdown.Add(item.Category(), commission)
	}

	return rows, nil
}

// activeProfessionals lists every active professional, or only the caller when a professional asks.
func activeProfessionals(ctx context.Context) gDto.FilterGroup {
	filter := gDto.And(
		gDto.Filter{Field: professionalModel.FieldActive, Value: true, Operator: gDto.FilterOperatorEq, Table: professionalModel.TableName},
	)

	if role, _ := ctx.Value(constant.ContextKeyUserRole).(string); role == constant.RoleProfessional {
		user, _ := ctx.Value(constant.ContextKeyUserID).(string)
		filter.Add(gDto.Filter{
			Field: professionalModel.FieldID, Value: user, Operator: gDto.FilterOperatorEq, Table: professionalModel.TableName,
		})
	}

	return filter
}
