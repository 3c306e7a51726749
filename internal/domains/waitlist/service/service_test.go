package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"agenda/config"
	"agenda/infras/otel/mocks"
	catalogMocks "agenda/internal/domains/catalog/mocks"
	catalogDto "agenda/internal/domains/catalog/model/dto"
	waitlistMocks "agenda/internal/domains/waitlist/mocks"
	"agenda/internal/domains/waitlist/model"
	"agenda/internal/domains/waitlist/model/dto"
	"agenda/internal/domains/waitlist/service"
	cacheMocks "agenda/shared/cache/mocks"
	gDto "agenda/shared/dto"
	"agenda/shared/failure"
	"agenda/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo    *waitlistMocks.MockWaitlist
	catalog *catalogMocks.MockCatalogService
	cache   *cacheMocks.MockRedisCache
}

func newService(t *testing.T) (service.Waitlist, fixture) {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:    waitlistMocks.NewMockWaitlist(ctrl),
		catalog: catalogMocks.NewMockCatalogService(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(f.repo, f.catalog, cfg, f.cache, mocks.NewOtel()), f
}

func TestWaitlistService_Join(t *testing.T) {
	future := timezone.TodayDate().AddDays(3).Key()
	past := timezone.TodayDate().AddDays(-1).Key()

	activeService := catalogDto.ItemResponse{ID: "s1", Type: "service", Active: true}

	tests := []struct {
		name      string
		req       dto.JoinWaitlistRequest
		setupMock func(f fixture)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "any professional",
			req:  dto.JoinWaitlistRequest{ClientName: "Ana", ClientPhone: "555", ServiceID: "s1", ProfessionalID: model.AnyProfessional, Date: future},
			setupMock: func(f fixture) {
				f.catalog.EXPECT().Get(gomock.Any(), "s1").Return(activeService, nil)
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, entry model.Entry) error {
						assert.NotEmpty(t, entry.ID)
						assert.Equal(t, future, entry.Date.Key())
						assert.True(t, entry.Accepts("b2"))

						return nil
					})
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name:      "past date",
			req:       dto.JoinWaitlistRequest{ClientName: "Ana", ClientPhone: "555", ServiceID: "s1", ProfessionalID: "b1", Date: past},
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
			wantErr:   true,
		},
		{
			name: "unknown service",
			req:  dto.JoinWaitlistRequest{ClientName: "Ana", ClientPhone: "555", ServiceID: "nope", ProfessionalID: "b1", Date: future},
			setupMock: func(f fixture) {
				f.catalog.EXPECT().Get(gomock.Any(), "nope").Return(catalogDto.ItemResponse{}, failure.NotFound("catalog item not found"))
			},
			wantCode: http.StatusNotFound,
			wantErr:  true,
		},
		{
			name: "product is not bookable",
			req:  dto.JoinWaitlistRequest{ClientName: "Ana", ClientPhone: "555", ServiceID: "p1", ProfessionalID: "b1", Date: future},
			setupMock: func(f fixture) {
				f.catalog.EXPECT().Get(gomock.Any(), "p1").Return(catalogDto.ItemResponse{ID: "p1", Type: "product", Active: true}, nil)
			},
			wantCode: http.StatusBadRequest,
			wantErr:  true,
		},
		{
			name: "repository error",
			req:  dto.JoinWaitlistRequest{ClientName: "Ana", ClientPhone: "555", ServiceID: "s1", ProfessionalID: "b1", Date: future},
			setupMock: func(f fixture) {
				f.catalog.EXPECT().Get(gomock.Any(), "s1").Return(activeService, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, f := newService(t)
			tt.setupMock(f)

			res, err := svc.Join(context.Background(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.req.ProfessionalID, res.ProfessionalID)
		})
	}
}

func TestWaitlistService_GetAll(t *testing.T) {
	svc, f := newService(t)

	params := gDto.QueryParams{Page: 1, Limit: 10}
	entries := []model.Entry{
		{ID: "w1", ProfessionalID: "b1", Date: timezone.NewDate(2024, time.January, 15)},
		{ID: "w2", ProfessionalID: model.AnyProfessional, Date: timezone.NewDate(2024, time.January, 15)},
	}

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return(entries, nil)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).Return(nil).Times(2)

	res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
	require.Len(t, res.Entries, 2)
	assert.Equal(t, "2024-01-15", res.Entries[0].Date)
}

func TestWaitlistService_Withdraw(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "success",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Entry{ID: "w1"}, nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "not found",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Entry{}, nil)
			},
			wantCode: http.StatusNotFound,
			wantErr:  true,
		},
		{
			name: "delete error",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Entry{ID: "w1"}, nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, f := newService(t)
			tt.setupMock(f)

			err := svc.Withdraw(context.Background(), "w1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}
