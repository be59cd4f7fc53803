package triage

import "strings"

// isAffirmative reports whether a trimmed, lower-cased answer equals or
// starts with an affirmative opener.
func isAffirmative(answer string) bool {
	return matchesPhrase(answer, affirmativePhrases)
}

func isNegative(answer string) bool {
	return matchesPhrase(answer, negativePhrases)
}

func matchesPhrase(answer string, phrases []string) bool {
	a := strings.TrimSpace(strings.ToLower(answer))
	for _, p := range phrases {
		if a == p || strings.HasPrefix(a, p) {
			return true
		}
	}
	return false
}

// resolvePathway returns the active pathway for question and rule
// lookups. Before the branch decision is made, branching symptoms use a
// symptom-specific default; everything else is its own pathway.
func resolvePathway(symptom, currentPathway string) string {
	if currentPathway != "" {
		return currentPathway
	}
	if p, ok := defaultPathways[symptom]; ok {
		return p
	}
	return symptom
}

// determineBranch classifies the answer to a symptom's discriminating
// question. An affirmative answer or a domain keyword hit commits the
// "yes" pathway; anything else commits the "no" pathway.
func determineBranch(symptom, answer string) (string, bool) {
	rule, ok := branchRules[symptom]
	if !ok {
		return "", false
	}
	if isAffirmative(answer) || containsAnyKeyword(answer, rule.YesKeywords) {
		return rule.YesPathway, true
	}
	return rule.NoPathway, true
}

// classifyIntro commits a branch early when the answer to the warm-up
// question already carries a decisive domain keyword (e.g. "it came on
// like an explosion" for headache). Plain yes/no phrasing is ignored
// here: the intro question is open-ended, so only the keyword list
// counts, and absence of a hit means the branch question is still asked.
func classifyIntro(symptom, answer string) (string, bool) {
	rule, ok := branchRules[symptom]
	if !ok {
		return "", false
	}
	if containsAnyKeyword(answer, rule.YesKeywords) {
		return rule.YesPathway, true
	}
	return "", false
}

func containsAnyKeyword(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func introQuestion(symptom string) (Question, bool) {
	q, ok := introQuestions[symptom]
	return q, ok
}

func branchQuestion(symptom string) (Question, bool) {
	rule, ok := branchRules[symptom]
	return rule.Question, ok
}

// firstQuestion returns the opening question for a symptom: warm-up
// intro, then branch question, then the first pathway question, then a
// generic freeform prompt for unconfigured symptoms.
func firstQuestion(symptom string) Question {
	if q, ok := introQuestion(symptom); ok {
		return q
	}
	if q, ok := branchQuestion(symptom); ok {
		return q
	}
	if qs := pathwayQuestions[symptom]; len(qs) > 0 {
		return qs[0]
	}
	return freeformQuestion
}
