package dto

import (
	"fmt"

	"agenda/internal/domains/blockrule/model"
	"agenda/shared"
	gDto "agenda/shared/dto"
	gModel "agenda/shared/model"
	"agenda/shared/timezone"

	"github.com/google/uuid"
)

type CreateBlockRuleRequest struct {
	ProfessionalID string  `json:"professional_id" validate:"required,max=64"`
	Type           string  `json:"type"            validate:"required,oneof=single recurring"`
	Scope          string  `json:"scope"           validate:"required,oneof=day slot"`
	Date           string  `json:"date"            validate:"omitempty,datekey"`
	WeekDay        *int    `json:"week_day"        validate:"omitempty,gte=0,lte=6"`
	StartTime      *string `json:"start_time"      validate:"omitempty,hhmm"`
	EndTime        *string `json:"end_time"        validate:"omitempty,hhmm"`
	Reason         string  `json:"reason"          validate:"omitempty,max=200"`
}

// ToModel builds the rule and checks that its match criteria are unambiguous.
func (c *CreateBlockRuleRequest) ToModel(user string) (model.BlockRule, error) {
	var date *timezone.Date

	if c.Date != "" {
		parsed, err := timezone.ParseDateValue(c.Date)
		if err != nil {
			return model.BlockRule{}, fmt.Errorf("failed to parse block date: %w", err)
		}

		date = &parsed
	}

	now := timezone.Now()

	rule := model.BlockRule{
		ID:             uuid.NewString(),
		ProfessionalID: c.ProfessionalID,
		Type:           model.Type(c.Type),
		Scope:          model.Scope(c.Scope),
		Date:           date,
		WeekDay:        c.WeekDay,
		Reason:         c.Reason,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if rule.Scope == model.ScopeSlot {
		rule.StartTime = c.StartTime
		rule.EndTime = c.EndTime
	}

	if err := rule.Validate(); err != nil {
		return model.BlockRule{}, err
	}

	return rule, nil
}

type BlockRuleResponse struct {
	ID             string  `json:"id"`
	ProfessionalID string  `json:"professional_id"`
	Type           string  `json:"type"`
	Scope          string  `json:"scope"`
	Date           *string `json:"date"`
	WeekDay        *int    `json:"week_day"`
	StartTime      *string `json:"start_time"`
	EndTime        *string `json:"end_time"`
	Reason         string  `json:"reason"`
	gDto.Metadata
}

func (r *BlockRuleResponse) FromModel(model model.BlockRule) {
	r.ID = model.ID
	r.ProfessionalID = model.ProfessionalID
	r.Type = string(model.Type)
	r.Scope = string(model.Scope)
	r.Date = nil

	if model.Date != nil {
		key := model.Date.Key()
		r.Date = &key
	}

	r.WeekDay = model.WeekDay
	r.StartTime = model.StartTime
	r.EndTime = model.EndTime
	r.Reason = model.Reason
	r.Metadata.FromModel(model.Metadata)
}

type GetBlockRulesResponse struct {
	BlockRules []BlockRuleResponse `json:"block_rules"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetBlockRulesResponse) FromModels(models []model.BlockRule, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.BlockRules = make([]BlockRuleResponse, len(models))
	for i, mod := range models {
		r.BlockRules[i].FromModel(mod)
	}
}
