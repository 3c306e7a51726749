package scheduling

import (
	"fmt"

	blockRuleModel "agenda/internal/domains/blockrule/model"
	"agenda/shared/timezone"
)

// MatchingRule returns the first rule that blocks [start, start+duration) for the
// professional on date. Rules that fail validation never match.
func MatchingRule(
	rules []blockRuleModel.BlockRule,
	professionalID string,
	date timezone.Date,
	start string,
	duration int,
) (blockRuleModel.BlockRule, bool, error) {
	reqStart, err := timezone.ToMinutes(start)
	if err != nil {
		return blockRuleModel.BlockRule{}, false, fmt.Errorf("failed to parse requested start: %w", err)
	}

	reqEnd := reqStart + duration

	for _, rule := range rules {
		if rule.Validate() != nil {
			continue
		}

		if !rule.AppliesTo(professionalID) || !rule.OnDate(date) {
			continue
		}

		if rule.Scope == blockRuleModel.ScopeDay {
			return rule, true, nil
		}

		ruleStart, ruleEnd, err := rule.Interval()
		if err != nil {
			continue
		}

		if reqStart < ruleEnd && reqEnd > ruleStart {
			return rule, true, nil
		}
	}

	return blockRuleModel.BlockRule{}, false, nil
}
