package triage

import "testing"

func TestIsAffirmative(t *testing.T) {
	for _, answer := range []string{"yes", "Yes, definitely", "  YEAH it is  ", "i have", "correct"} {
		if !isAffirmative(answer) {
			t.Fatalf("expected %q to be affirmative", answer)
		}
	}
	for _, answer := range []string{"no", "not that I know of", "maybe"} {
		if isAffirmative(answer) {
			t.Fatalf("expected %q not to be affirmative", answer)
		}
	}
}

func TestIsNegative(t *testing.T) {
	if !isNegative("No, never") || !isNegative("not really") {
		t.Fatal("expected negative answers to match")
	}
	if isNegative("yes") {
		t.Fatal("expected yes not to be negative")
	}
}

func TestResolvePathwayDefaults(t *testing.T) {
	cases := map[string]string{
		"headache":   "headache_sah",
		"chest pain": "chest pain_cardiac",
		"blackout":   "blackout_cardiac",
		"dysuria":    "dysuria_uti",
		"cough":      "cough",
	}
	for symptom, want := range cases {
		if got := resolvePathway(symptom, ""); got != want {
			t.Fatalf("resolvePathway(%q): expected %q, got %q", symptom, want, got)
		}
	}

	if got := resolvePathway("headache", "headache_migraine"); got != "headache_migraine" {
		t.Fatalf("expected committed pathway to win, got %q", got)
	}
}

func TestDetermineBranchHeadache(t *testing.T) {
	p, ok := determineBranch("headache", "yes, it's the worst headache of my life")
	if !ok || p != "headache_sah" {
		t.Fatalf("expected headache_sah, got %q (ok=%v)", p, ok)
	}

	p, ok = determineBranch("headache", "no, just a dull ache like usual")
	if !ok || p != "headache_migraine" {
		t.Fatalf("expected headache_migraine, got %q (ok=%v)", p, ok)
	}
}

func TestDetermineBranchKeywordWithoutAffirmative(t *testing.T) {
	p, ok := determineBranch("chest pain", "like a heavy weight crushing me")
	if !ok || p != "chest pain_cardiac" {
		t.Fatalf("expected chest pain_cardiac, got %q (ok=%v)", p, ok)
	}

	p, ok = determineBranch("blackout", "my wife says I'm diabetic")
	if !ok || p != "blackout_hypogly" {
		t.Fatalf("expected blackout_hypogly, got %q (ok=%v)", p, ok)
	}
}

func TestDetermineBranchUnknownSymptom(t *testing.T) {
	if _, ok := determineBranch("cough", "yes"); ok {
		t.Fatal("expected no branch decision for non-branching symptom")
	}
}

func TestClassifyIntroCommitsOnlyOnKeywords(t *testing.T) {
	p, ok := classifyIntro("headache", "10, it came on like an explosion")
	if !ok || p != "headache_sah" {
		t.Fatalf("expected early headache_sah commit, got %q (ok=%v)", p, ok)
	}

	// A plain severity answer is not decisive; the branch question must
	// still be asked.
	if _, ok := classifyIntro("headache", "about a 6, throbbing"); ok {
		t.Fatal("expected no early commit for a non-decisive answer")
	}

	// Affirmative phrasing alone means nothing for an open question.
	if _, ok := classifyIntro("chest pain", "yes it hurts a lot"); ok {
		t.Fatal("expected no early commit on bare affirmative")
	}
}

func TestFirstQuestion(t *testing.T) {
	if q := firstQuestion("headache"); q.ID != introQuestions["headache"].ID {
		t.Fatalf("expected headache intro, got %q", q.ID)
	}
	if q := firstQuestion("blackout"); q.ID != branchRules["blackout"].Question.ID {
		t.Fatalf("expected blackout branch question, got %q", q.ID)
	}
	if q := firstQuestion("cough"); q.ID != pathwayQuestions["cough"][0].ID {
		t.Fatalf("expected first cough question, got %q", q.ID)
	}
	if q := firstQuestion("urinary frequency"); q.ID != freeformQuestion.ID {
		t.Fatalf("expected freeform prompt, got %q", q.ID)
	}
}
