package triage

import "strings"

// ruleFor looks up a pathway's red-flag rule set, falling back to the
// generic "other" rules for unknown pathways.
func ruleFor(pathway string) redFlagRule {
	if r, ok := redFlagRules[pathway]; ok {
		return r
	}
	return redFlagRules[SymptomOther]
}

// redFlagScore accumulates the weighted keyword score over the full
// answer history for one pathway. Each answer contributes the weight of
// the first trigger group it matches, never more than one group per
// answer. Recomputed from scratch every turn, so the result depends only
// on (history, pathway).
func redFlagScore(answers []AnswerEntry, pathway string) int {
	rule := ruleFor(pathway)
	score := 0
	for _, entry := range answers {
		lower := strings.ToLower(entry.Answer)
		for _, group := range rule.Triggers {
			if matchesGroup(lower, group.Keywords) {
				score += group.Weight
				break
			}
		}
	}
	if score < 0 {
		score = 0
	}
	return score
}

func matchesGroup(lowerAnswer string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowerAnswer, kw) {
			return true
		}
	}
	return false
}

// riskLevelFor tiers a score against the pathway threshold: twice the
// threshold is high, meeting it is medium.
func riskLevelFor(score int, pathway string) string {
	threshold := ruleFor(pathway).Threshold
	switch {
	case score >= threshold*2:
		return RiskHigh
	case score >= threshold:
		return RiskMedium
	default:
		return RiskLow
	}
}

// checkRedFlags returns the red-flag boolean and risk level for the
// answer history on the given pathway.
func checkRedFlags(answers []AnswerEntry, pathway string) (bool, string) {
	score := redFlagScore(answers, pathway)
	return score >= ruleFor(pathway).Threshold, riskLevelFor(score, pathway)
}
