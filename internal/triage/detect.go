package triage

import (
	"sort"
	"strings"
)

// detectSymptoms scans free text against the symptom lexicon and returns
// every symptom with at least one matching trigger phrase. Order is not
// meaningful; callers re-sort by clinical priority.
func detectSymptoms(text string) []string {
	lower := strings.ToLower(text)
	found := []string{}
	for symptom, keywords := range symptomKeywords {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				found = append(found, symptom)
				break
			}
		}
	}
	// Map iteration order is random; keep detection deterministic.
	sort.Strings(found)
	return found
}

func priorityRank(symptom string) int {
	for i, s := range symptomPriority {
		if s == symptom {
			return i
		}
	}
	return len(symptomPriority)
}

// prioritizeSymptoms stable-sorts symptoms by clinical urgency. Symptoms
// missing from the priority list sort last in their original order.
func prioritizeSymptoms(symptoms []string) []string {
	out := make([]string, len(symptoms))
	copy(out, symptoms)
	sort.SliceStable(out, func(i, j int) bool {
		return priorityRank(out[i]) < priorityRank(out[j])
	})
	return out
}

// nextUntriaged returns the most urgent detected symptom not yet triaged.
func nextUntriaged(detected, triaged []string) (string, bool) {
	for _, s := range prioritizeSymptoms(detected) {
		if !containsString(triaged, s) {
			return s, true
		}
	}
	return "", false
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
