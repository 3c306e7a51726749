package dto_test

import (
	"testing"

	"agenda/internal/domains/blockrule/model"
	"agenda/internal/domains/blockrule/model/dto"
	"agenda/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestCreateBlockRuleRequest_ToModel(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateBlockRuleRequest
		wantErr bool
	}{
		{
			name: "single slot",
			req: dto.CreateBlockRuleRequest{
				ProfessionalID: "b1", Type: "single", Scope: "slot", Date: "2024-01-15",
				StartTime: ptr("10:00"), EndTime: ptr("12:00"), Reason: "lunch",
			},
		},
		{
			name: "recurring day for everyone",
			req:  dto.CreateBlockRuleRequest{ProfessionalID: "all", Type: "recurring", Scope: "day", WeekDay: ptr(0)},
		},
		{
			name: "day scope drops times",
			req: dto.CreateBlockRuleRequest{
				ProfessionalID: "b1", Type: "single", Scope: "day", Date: "2024-01-15",
				StartTime: ptr("10:00"),
			},
		},
		{
			name:    "single with weekday",
			req:     dto.CreateBlockRuleRequest{ProfessionalID: "b1", Type: "single", Scope: "day", Date: "2024-01-15", WeekDay: ptr(1)},
			wantErr: true,
		},
		{
			name:    "recurring without weekday",
			req:     dto.CreateBlockRuleRequest{ProfessionalID: "b1", Type: "recurring", Scope: "day"},
			wantErr: true,
		},
		{
			name: "slot reversed",
			req: dto.CreateBlockRuleRequest{
				ProfessionalID: "b1", Type: "single", Scope: "slot", Date: "2024-01-15",
				StartTime: ptr("12:00"), EndTime: ptr("10:00"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := tt.req.ToModel("admin")
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrAmbiguousBlockRule)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, rule.ID)
			assert.Equal(t, "admin", rule.CreatedBy)

			if rule.Scope == model.ScopeDay {
				assert.Nil(t, rule.StartTime)
			}
		})
	}
}

func TestCreateBlockRuleRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateBlockRuleRequest
		wantErr bool
	}{
		{name: "valid", req: dto.CreateBlockRuleRequest{ProfessionalID: "b1", Type: "single", Scope: "day", Date: "2024-01-15"}},
		{name: "bad type", req: dto.CreateBlockRuleRequest{ProfessionalID: "b1", Type: "weekly", Scope: "day"}, wantErr: true},
		{name: "bad date", req: dto.CreateBlockRuleRequest{ProfessionalID: "b1", Type: "single", Scope: "day", Date: "15/01/2024"}, wantErr: true},
		{name: "bad time", req: dto.CreateBlockRuleRequest{ProfessionalID: "b1", Type: "single", Scope: "slot", Date: "2024-01-15", StartTime: ptr("9:00")}, wantErr: true},
		{name: "weekday out of range", req: dto.CreateBlockRuleRequest{ProfessionalID: "b1", Type: "recurring", Scope: "day", WeekDay: ptr(7)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
