package model_test

import (
	"testing"
	"time"

	"agenda/internal/domains/blockrule/model"
	"agenda/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func TestBlockRule_Validate(t *testing.T) {
	monday := timezone.NewDate(2024, time.January, 15)

	tests := []struct {
		name    string
		rule    model.BlockRule
		wantErr bool
	}{
		{
			name: "single day",
			rule: model.BlockRule{Type: model.TypeSingle, Scope: model.ScopeDay, Date: &monday},
		},
		{
			name: "recurring slot",
			rule: model.BlockRule{
				Type: model.TypeRecurring, Scope: model.ScopeSlot, WeekDay: ptr(1),
				StartTime: ptr("08:00"), EndTime: ptr("09:00"),
			},
		},
		{
			name:    "single without date",
			rule:    model.BlockRule{Type: model.TypeSingle, Scope: model.ScopeDay},
			wantErr: true,
		},
		{
			name:    "both date and weekday",
			rule:    model.BlockRule{Type: model.TypeSingle, Scope: model.ScopeDay, Date: &monday, WeekDay: ptr(1)},
			wantErr: true,
		},
		{
			name:    "recurring with date",
			rule:    model.BlockRule{Type: model.TypeRecurring, Scope: model.ScopeDay, Date: &monday},
			wantErr: true,
		},
		{
			name:    "weekday out of range",
			rule:    model.BlockRule{Type: model.TypeRecurring, Scope: model.ScopeDay, WeekDay: ptr(7)},
			wantErr: true,
		},
		{
			name:    "slot without end",
			rule:    model.BlockRule{Type: model.TypeSingle, Scope: model.ScopeSlot, Date: &monday, StartTime: ptr("10:00")},
			wantErr: true,
		},
		{
			name: "slot start after end",
			rule: model.BlockRule{
				Type: model.TypeSingle, Scope: model.ScopeSlot, Date: &monday,
				StartTime: ptr("12:00"), EndTime: ptr("10:00"),
			},
			wantErr: true,
		},
		{
			name: "slot malformed time",
			rule: model.BlockRule{
				Type: model.TypeSingle, Scope: model.ScopeSlot, Date: &monday,
				StartTime: ptr("9:00"), EndTime: ptr("10:00"),
			},
			wantErr: true,
		},
		{
			name:    "unknown scope",
			rule:    model.BlockRule{Type: model.TypeSingle, Scope: "week", Date: &monday},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrAmbiguousBlockRule)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBlockRule_OnDate(t *testing.T) {
	monday := timezone.NewDate(2024, time.January, 15)
	nextMonday := monday.AddDays(7)
	tuesday := monday.AddDays(1)

	single := model.BlockRule{Type: model.TypeSingle, Date: &monday}
	recurring := model.BlockRule{Type: model.TypeRecurring, WeekDay: ptr(1)}

	assert.True(t, single.OnDate(monday))
	assert.False(t, single.OnDate(nextMonday))
	assert.True(t, recurring.OnDate(monday))
	assert.True(t, recurring.OnDate(nextMonday))
	assert.False(t, recurring.OnDate(tuesday))
}

func TestBlockRule_AppliesTo(t *testing.T) {
	assert.True(t, model.BlockRule{ProfessionalID: "all"}.AppliesTo("b1"))
	assert.True(t, model.BlockRule{ProfessionalID: "b1"}.AppliesTo("b1"))
	assert.False(t, model.BlockRule{ProfessionalID: "b2"}.AppliesTo("b1"))
}
