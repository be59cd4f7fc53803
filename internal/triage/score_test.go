package triage

import "testing"

func answers(texts ...string) []AnswerEntry {
	entries := make([]AnswerEntry, len(texts))
	for i, txt := range texts {
		entries[i] = AnswerEntry{Answer: txt}
	}
	return entries
}

func TestRedFlagScoreAccumulates(t *testing.T) {
	history := answers(
		"it's the worst headache of my life, like a thunderclap", // 3
		"yes, I have neck stiffness",                             // 2
	)
	if got := redFlagScore(history, "headache_sah"); got != 5 {
		t.Fatalf("expected score 5, got %d", got)
	}
}

func TestRedFlagScoreOneGroupPerAnswer(t *testing.T) {
	// "alone" (weight 2) and "hopeless" (weight 2) sit in different
	// groups; a single answer counts only the first matching group.
	history := answers("I am alone and it feels hopeless")
	if got := redFlagScore(history, "suicidal thoughts"); got != 2 {
		t.Fatalf("expected score 2, got %d", got)
	}
}

func TestRedFlagScoreCaseInsensitive(t *testing.T) {
	history := answers("WORST HEADACHE ever")
	if got := redFlagScore(history, "headache_sah"); got != 3 {
		t.Fatalf("expected score 3, got %d", got)
	}
}

func TestRedFlagScoreEmptyHistory(t *testing.T) {
	if got := redFlagScore(nil, "headache_sah"); got != 0 {
		t.Fatalf("expected score 0, got %d", got)
	}
}

func TestRiskLevelTiers(t *testing.T) {
	// headache_sah has threshold 2.
	cases := []struct {
		score int
		want  string
	}{
		{0, RiskLow},
		{1, RiskLow},
		{2, RiskMedium},
		{3, RiskMedium},
		{4, RiskHigh},
		{7, RiskHigh},
	}
	for _, c := range cases {
		if got := riskLevelFor(c.score, "headache_sah"); got != c.want {
			t.Fatalf("score %d: expected %s, got %s", c.score, c.want, got)
		}
	}
}

func TestCheckRedFlagsLowThresholdPathway(t *testing.T) {
	// suicidal thoughts has threshold 1, so a single weight-3 trigger
	// puts the score at twice the threshold.
	history := answers("I have a plan and I'm going to do it tonight")
	flag, level := checkRedFlags(history, "suicidal thoughts")
	if !flag {
		t.Fatal("expected red flag")
	}
	if level != RiskHigh {
		t.Fatalf("expected high risk, got %s", level)
	}
}

func TestCheckRedFlagsBelowThreshold(t *testing.T) {
	history := answers("no stiffness in my neck", "my temperature is normal")
	flag, level := checkRedFlags(history, "headache_migraine")
	if flag {
		t.Fatal("expected no red flag")
	}
	if level != RiskLow {
		t.Fatalf("expected low risk, got %s", level)
	}
}

func TestRuleForUnknownPathwayFallsBack(t *testing.T) {
	history := answers("he is unconscious and not breathing")
	flag, level := checkRedFlags(history, "some brand new pathway")
	if !flag {
		t.Fatal("expected fallback rules to fire")
	}
	// threshold 2, weight 3 hit: medium but not high.
	if level != RiskMedium {
		t.Fatalf("expected medium risk from fallback rules, got %s", level)
	}
}

func TestMinorPathwaysHaveRules(t *testing.T) {
	for _, p := range []string{"cough", "sore throat", "joint pain", "vomiting"} {
		if _, ok := redFlagRules[p]; !ok {
			t.Fatalf("expected a red-flag rule for %q", p)
		}
	}
}
