package scheduling_test

import (
	"testing"

	blockRuleModel "agenda/internal/domains/blockrule/model"
	"agenda/internal/scheduling"
	"agenda/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchingRule(t *testing.T) {
	lunch := blockRuleModel.BlockRule{
		ID: "r1", ProfessionalID: "b1", Type: blockRuleModel.TypeSingle, Scope: blockRuleModel.ScopeSlot,
		Date: &monday, StartTime: ptr("10:00"), EndTime: ptr("12:00"),
	}
	mondayMornings := blockRuleModel.BlockRule{
		ID: "r2", ProfessionalID: "b1", Type: blockRuleModel.TypeRecurring, Scope: blockRuleModel.ScopeSlot,
		WeekDay: ptr(1), StartTime: ptr("08:00"), EndTime: ptr("09:00"),
	}
	holiday := blockRuleModel.BlockRule{
		ID: "r3", ProfessionalID: "all", Type: blockRuleModel.TypeSingle, Scope: blockRuleModel.ScopeDay,
		Date: &tuesday,
	}
	broken := blockRuleModel.BlockRule{
		ID: "r4", ProfessionalID: "b1", Type: blockRuleModel.TypeSingle, Scope: blockRuleModel.ScopeSlot,
		Date: &monday, WeekDay: ptr(1), StartTime: ptr("13:00"), EndTime: ptr("14:00"),
	}

	tests := []struct {
		name           string
		rules          []blockRuleModel.BlockRule
		professionalID string
		date           timezone.Date
		start          string
		duration       int
		wantID         string
		wantMatch      bool
		wantErr        bool
	}{
		{name: "overlaps block start", rules: []blockRuleModel.BlockRule{lunch}, professionalID: "b1", date: monday, start: "09:30", duration: 60, wantID: "r1", wantMatch: true},
		{name: "ends before block", rules: []blockRuleModel.BlockRule{lunch}, professionalID: "b1", date: monday, start: "08:00", duration: 60},
		{name: "touches block end", rules: []blockRuleModel.BlockRule{lunch}, professionalID: "b1", date: monday, start: "12:00", duration: 30},
		{name: "touches block start", rules: []blockRuleModel.BlockRule{lunch}, professionalID: "b1", date: monday, start: "09:30", duration: 30},
		{name: "other professional", rules: []blockRuleModel.BlockRule{lunch}, professionalID: "b2", date: monday, start: "10:30", duration: 30},
		{name: "other date", rules: []blockRuleModel.BlockRule{lunch}, professionalID: "b1", date: tuesday, start: "10:30", duration: 30},
		{name: "recurring on monday", rules: []blockRuleModel.BlockRule{mondayMornings}, professionalID: "b1", date: monday.AddDays(14), start: "08:30", duration: 30, wantID: "r2", wantMatch: true},
		{name: "recurring after range", rules: []blockRuleModel.BlockRule{mondayMornings}, professionalID: "b1", date: monday, start: "09:00", duration: 30},
		{name: "day scope for all", rules: []blockRuleModel.BlockRule{holiday}, professionalID: "b2", date: tuesday, start: "17:00", duration: 30, wantID: "r3", wantMatch: true},
		{name: "first match wins", rules: []blockRuleModel.BlockRule{lunch, mondayMornings}, professionalID: "b1", date: monday, start: "08:00", duration: 240, wantID: "r1", wantMatch: true},
		{name: "ambiguous rule ignored", rules: []blockRuleModel.BlockRule{broken}, professionalID: "b1", date: monday, start: "13:00", duration: 30},
		{name: "malformed start", rules: []blockRuleModel.BlockRule{lunch}, professionalID: "b1", date: monday, start: "9:30", duration: 30, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok, err := scheduling.MatchingRule(tt.rules, tt.professionalID, tt.date, tt.start, tt.duration)
			if tt.wantErr {
				require.ErrorIs(t, err, timezone.ErrInvalidTimeFormat)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantMatch, ok)
			assert.Equal(t, tt.wantID, rule.ID)
		})
	}
}
