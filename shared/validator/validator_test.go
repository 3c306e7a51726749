package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"agenda/shared/failure"
	"agenda/shared/validator"

	"github.com/stretchr/testify/assert"
)

type blockRequest struct {
	ProfessionalID string `json:"professional_id" validate:"required"`
	Scope          string `json:"scope"           validate:"required,oneof=day slot"`
	Date           string `json:"date"            validate:"omitempty,datekey"`
	StartTime      string `json:"start_time"      validate:"omitempty,hhmm"`
	EndTime        string `json:"end_time"        validate:"omitempty,hhmm"`
}

type reportRequest struct {
	Month string `validate:"required,month"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    blockRequest
		wantErr string
	}{
		{
			name: "valid slot block",
			data: blockRequest{ProfessionalID: "b1", Scope: "slot", Date: "2024-03-04", StartTime: "10:00", EndTime: "12:00"},
		},
		{
			name: "valid whole day block",
			data: blockRequest{ProfessionalID: "all", Scope: "day"},
		},
		{
			name:    "missing professional",
			data:    blockRequest{Scope: "day"},
			wantErr: "professional_id is required",
		},
		{
			name:    "unknown scope",
			data:    blockRequest{ProfessionalID: "b1", Scope: "week"},
			wantErr: "scope must be one of [day slot]",
		},
		{
			name:    "malformed time",
			data:    blockRequest{ProfessionalID: "b1", Scope: "slot", StartTime: "9:00"},
			wantErr: "start_time must be a time in HH:MM format",
		},
		{
			name:    "time out of range",
			data:    blockRequest{ProfessionalID: "b1", Scope: "slot", EndTime: "24:00"},
			wantErr: "end_time must be a time in HH:MM format",
		},
		{
			name:    "every failing field is reported",
			data:    blockRequest{Scope: "slot", StartTime: "25:00"},
			wantErr: "professional_id is required; start_time must be a time in HH:MM format",
		},
		{
			name:    "malformed date",
			data:    blockRequest{ProfessionalID: "b1", Scope: "day", Date: "04/03/2024"},
			wantErr: "date must be a date in YYYY-MM-DD format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantErr)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidate_Body(t *testing.T) {
	var req blockRequest

	err := validator.Validate(strings.NewReader(`{"professional_id":"b1","scope":"slot","start_time":"10:00","end_time":"12:00"}`), &req)
	assert.NoError(t, err)
	assert.Equal(t, "12:00", req.EndTime)

	err = validator.Validate(strings.NewReader(`{"professional_id":`), &req)
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestValidateMonth(t *testing.T) {
	assert.NoError(t, validator.ValidateStruct(&reportRequest{Month: "2024-03"}))
	assert.Error(t, validator.ValidateStruct(&reportRequest{Month: "2024-13"}))
	assert.Error(t, validator.ValidateStruct(&reportRequest{}))
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("08:30", "hhmm"))
	assert.Error(t, validator.ValidateVar("8:30", "hhmm"))
	assert.NoError(t, validator.ValidateVar("", "empty"))
}

type accountRequest struct {
	Username string   `json:"username"`
	Password string   `json:"password" validate:"required_with=Username,omitempty,min=8"`
	Tags     []string `json:"tags"     validate:"max=2"`
	Internal string   `json:"-"`
}

func TestValidateStruct_Messages(t *testing.T) {
	tests := []struct {
		name    string
		data    accountRequest
		wantErr string
	}{
		{name: "password follows username", data: accountRequest{Username: "ana"}, wantErr: "password is required when username is set"},
		{name: "string length", data: accountRequest{Username: "ana", Password: "short"}, wantErr: "password must be at least 8 characters"},
		{name: "slice length", data: accountRequest{Tags: []string{"a", "b", "c"}}, wantErr: "tags must be at most 2 items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, validator.ValidateStruct(&tt.data), tt.wantErr)
		})
	}
}

func TestValidateStruct_UntaggedFieldIsSnakeCased(t *testing.T) {
	err := validator.ValidateStruct(&reportRequest{})

	assert.EqualError(t, err, "month is required")
}
