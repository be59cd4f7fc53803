package triage

import "testing"

func TestQuestionIDsAreUnique(t *testing.T) {
	seen := map[string]string{}
	check := func(q Question, where string) {
		if q.ID == "" {
			t.Fatalf("%s: question %q has no ID", where, q.Text)
		}
		if prev, dup := seen[q.ID]; dup {
			t.Fatalf("duplicate question ID %q in %s and %s", q.ID, prev, where)
		}
		seen[q.ID] = where
	}
	for symptom, q := range introQuestions {
		check(q, "intro "+symptom)
	}
	for symptom, r := range branchRules {
		check(r.Question, "branch "+symptom)
	}
	for pathway, qs := range pathwayQuestions {
		for _, q := range qs {
			check(q, "pathway "+pathway)
		}
	}
}

func TestBranchPathwaysHaveQuestions(t *testing.T) {
	for symptom, r := range branchRules {
		for _, p := range []string{r.YesPathway, r.NoPathway} {
			if len(pathwayQuestions[p]) == 0 {
				t.Fatalf("branch of %q points at pathway %q with no questions", symptom, p)
			}
		}
		if defaultPathways[symptom] == "" {
			t.Fatalf("branching symptom %q has no default pathway", symptom)
		}
	}
}

func TestEveryPathwayHasRedFlagRules(t *testing.T) {
	for pathway := range pathwayQuestions {
		rule, ok := redFlagRules[pathway]
		if !ok {
			t.Fatalf("pathway %q has no red-flag rule", pathway)
		}
		if rule.Threshold <= 0 || len(rule.Triggers) == 0 {
			t.Fatalf("pathway %q has a degenerate rule: %+v", pathway, rule)
		}
	}
}

func TestEveryEmergencyRuleHasMessage(t *testing.T) {
	for pathway := range redFlagRules {
		if redFlagMessageFor(pathway) == "" {
			t.Fatalf("pathway %q resolves to an empty red-flag message", pathway)
		}
	}
}

func TestEscalationPathwaysAreFullyConfigured(t *testing.T) {
	for pathway := range immediateEscalationPathways {
		if _, ok := redFlagRules[pathway]; !ok {
			t.Fatalf("escalation pathway %q has no red-flag rule", pathway)
		}
		if _, ok := redFlagMessages[pathway]; !ok {
			t.Fatalf("escalation pathway %q has no emergency message", pathway)
		}
		if len(pathwayQuestions[pathway]) == 0 {
			t.Fatalf("escalation pathway %q has no questions", pathway)
		}
	}
}

func TestLexiconSymptomsAreRanked(t *testing.T) {
	for symptom := range symptomKeywords {
		found := false
		for _, p := range symptomPriority {
			if p == symptom {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("symptom %q missing from the priority order", symptom)
		}
	}
}

func TestQuestionIndexResolvesEveryID(t *testing.T) {
	for pathway, qs := range pathwayQuestions {
		for _, q := range qs {
			got, ok := questionIndex[q.ID]
			if !ok || got.Text != q.Text {
				t.Fatalf("pathway %q question %q not resolvable by ID", pathway, q.ID)
			}
		}
	}
	if _, ok := questionIndex[questionIDPresenting]; !ok {
		t.Fatal("presenting-complaint pseudo question missing from index")
	}
}
