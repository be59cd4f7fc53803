package triage

import (
	"fmt"
	"strings"
)

// Advance runs one turn of the triage dialogue. It is a pure function of
// the request: the new message is recorded against the question it
// answers, branching and scoring are re-derived from the full history,
// and the response carries the complete state needed for the next call.
// Malformed state never fails a turn; every degenerate input falls back
// to a sensible next question.
func Advance(req TurnRequest) TurnResponse {
	detected := req.DetectedSymptoms
	if len(detected) == 0 {
		detected = detectSymptoms(req.Message)
		if len(detected) == 0 {
			detected = []string{SymptomOther}
		}
	}
	triaged := append([]string{}, req.TriagedSymptoms...)
	pathwayChoice := req.CurrentPathway

	symptomKey := req.SymptomType
	if symptomKey == "" || !containsString(detected, symptomKey) {
		if next, ok := nextUntriaged(detected, triaged); ok {
			symptomKey = next
		} else {
			symptomKey = SymptomOther
		}
	}

	// Terminal state: repeat the disposition without recording anything.
	if req.Phase == PhaseDone {
		pathway := resolvePathway(symptomKey, pathwayChoice)
		redFlag, risk := checkRedFlags(req.AllAnswers, pathway)
		resp := newResponse(symptomKey, req.QuestionIndex, detected, triaged, pathwayChoice, req.AllAnswers)
		resp.Phase = PhaseDone
		resp.NextQuestion = completionMessages[risk]
		resp.RedFlag = redFlag
		if redFlag {
			resp.RedFlagMessage = redFlagMessageFor(pathway)
		}
		resp.RiskLevel = risk
		resp.DifferentialDiagnoses = rankDifferentials(req.AllAnswers, pathway)
		return resp
	}

	idx := req.QuestionIndex
	answered, byID := answeredQuestion(req, symptomKey, pathwayChoice)
	answers := make([]AnswerEntry, 0, len(req.AllAnswers)+1)
	answers = append(answers, req.AllAnswers...)
	answers = append(answers, AnswerEntry{QuestionID: answered.ID, Question: answered.Text, Answer: req.Message})

	// First contact with this symptom: open with the warm-up question,
	// or the branch question when there is no warm-up. No scoring yet.
	if idx == 0 {
		if q, ok := introQuestion(symptomKey); ok {
			return askUnscored(symptomKey, q, 1, detected, triaged, pathwayChoice, answers)
		}
		if q, ok := branchQuestion(symptomKey); ok {
			return askUnscored(symptomKey, q, 1, detected, triaged, pathwayChoice, answers)
		}
	}

	// Commit a pathway for branching symptoms. The branch answer is
	// looked up by question ID (text containment as legacy fallback);
	// a decisive warm-up answer commits early without asking the branch
	// question at all.
	if pathwayChoice == "" {
		if rule, ok := branchRules[symptomKey]; ok {
			if ans, found := findBranchAnswer(answers, rule.Question); found {
				if p, decided := determineBranch(symptomKey, ans); decided {
					pathwayChoice = p
				}
			} else if byID {
				if iq, ok := introQuestion(symptomKey); ok && answered.ID == iq.ID {
					if p, decided := classifyIntro(symptomKey, req.Message); decided {
						pathwayChoice = p
					}
				}
			}
			if pathwayChoice == "" {
				return askUnscored(symptomKey, rule.Question, idx+1, detected, triaged, "", answers)
			}
		}
	}

	questions, pathway := questionListFor(symptomKey, resolvePathway(symptomKey, pathwayChoice))
	redFlag, risk := checkRedFlags(answers, pathway)
	flagMsg := ""
	if redFlag {
		flagMsg = redFlagMessageFor(pathway)
	}
	diffs := rankDifferentials(answers, pathway)

	// Self-harm adjacent pathways never wait for the full questionnaire:
	// a red flag within the first two question turns ends the dialogue
	// with the emergency disposition immediately.
	if redFlag && immediateEscalationPathways[pathway] && idx <= 2 {
		resp := newResponse(symptomKey, idx, detected, triaged, pathwayChoice, answers)
		resp.Phase = PhaseDone
		resp.NextQuestion = redFlagMessageFor(pathway)
		resp.RedFlag = true
		resp.RedFlagMessage = redFlagMessageFor(pathway)
		resp.RiskLevel = RiskHigh
		resp.DifferentialDiagnoses = diffs
		return resp
	}

	if req.Phase == PhaseAdditional {
		if matchesPhrase(req.Message, noMorePhrases) {
			triaged = markTriaged(triaged, detected, symptomKey)
			if nextSym, ok := nextUntriaged(detected, triaged); ok {
				return transitionResponse(nextSym, detected, triaged, redFlag, flagMsg, risk, diffs, answers)
			}
			resp := newResponse(symptomKey, idx, detected, triaged, pathwayChoice, answers)
			resp.Phase = PhaseDone
			resp.NextQuestion = completionMessages[risk]
			resp.RedFlag = redFlag
			resp.RedFlagMessage = flagMsg
			resp.RiskLevel = risk
			resp.DifferentialDiagnoses = diffs
			return resp
		}
		resp := newResponse(symptomKey, idx, detected, triaged, pathwayChoice, answers)
		resp.Phase = PhaseAdditional
		resp.QuestionID = additionalRepeatPrompt.ID
		resp.NextQuestion = additionalRepeatPrompt.Text
		resp.RedFlag = redFlag
		resp.RedFlagMessage = flagMsg
		resp.RiskLevel = risk
		resp.DifferentialDiagnoses = diffs
		return resp
	}

	next := nextQuestionPos(answered, questions, symptomKey, idx)
	if next >= len(questions) {
		// Pathway exhausted (including out-of-range indexes on
		// malformed input). Move to the next symptom or open the
		// close-out phase.
		triaged = markTriaged(triaged, detected, symptomKey)
		if nextSym, ok := nextUntriaged(detected, triaged); ok {
			return transitionResponse(nextSym, detected, triaged, redFlag, flagMsg, risk, diffs, answers)
		}
		resp := newResponse(symptomKey, idx, detected, triaged, pathwayChoice, answers)
		resp.Phase = PhaseAdditional
		resp.QuestionID = additionalEntryPrompt.ID
		resp.NextQuestion = additionalEntryPrompt.Text
		resp.RedFlag = redFlag
		resp.RedFlagMessage = flagMsg
		resp.RiskLevel = risk
		resp.DifferentialDiagnoses = diffs
		return resp
	}

	q := questions[next]
	resp := newResponse(symptomKey, idx+1, detected, triaged, pathwayChoice, answers)
	resp.QuestionID = q.ID
	resp.NextQuestion = q.Text
	resp.RedFlag = redFlag
	resp.RedFlagMessage = flagMsg
	resp.RiskLevel = risk
	resp.DifferentialDiagnoses = diffs
	return resp
}

// answeredQuestion decides which question the incoming message answers.
// Index zero is the free-text presenting complaint. Otherwise the echoed
// question ID wins; callers that do not echo IDs fall back to position
// arithmetic over the symptom's question layout. The boolean reports
// whether attribution came from an explicit ID.
func answeredQuestion(req TurnRequest, symptom, currentPathway string) (Question, bool) {
	if req.QuestionIndex == 0 {
		return Question{ID: questionIDPresenting}, false
	}
	if req.QuestionID != "" {
		if q, ok := questionIndex[req.QuestionID]; ok {
			return q, true
		}
	}
	return layoutQuestion(symptom, currentPathway, req.QuestionIndex-1), false
}

// layoutQuestion maps a 0-based position in a symptom's question layout
// (intro, then branch, then pathway questions) to the question asked
// there. Positions past the end yield a zero Question, which downstream
// logic treats as an exhausted pathway.
func layoutQuestion(symptom, currentPathway string, pos int) Question {
	if q, ok := introQuestion(symptom); ok {
		if pos == 0 {
			return q
		}
		pos--
	}
	if q, ok := branchQuestion(symptom); ok {
		if pos == 0 {
			return q
		}
		pos--
	}
	qs, _ := questionListFor(symptom, resolvePathway(symptom, currentPathway))
	if pos >= 0 && pos < len(qs) {
		return qs[pos]
	}
	return Question{}
}

// questionListFor resolves the active question list, preferring the
// pathway's own list, then the symptom's, mirroring the rule fallbacks:
// an unrecognized pathway degrades to whatever the symptom offers.
func questionListFor(symptom, pathway string) ([]Question, string) {
	if qs := pathwayQuestions[pathway]; len(qs) > 0 {
		return qs, pathway
	}
	if qs := pathwayQuestions[symptom]; len(qs) > 0 {
		return qs, symptom
	}
	return nil, symptom
}

// nextQuestionPos determines which pathway question to present after the
// answered one: the successor of a pathway question, the first question
// after intro or branch, or legacy index arithmetic when the answered
// question could not be identified.
func nextQuestionPos(answered Question, questions []Question, symptom string, idx int) int {
	if answered.ID != "" {
		for i, q := range questions {
			if q.ID == answered.ID {
				return i + 1
			}
		}
		if iq, ok := introQuestion(symptom); ok && answered.ID == iq.ID {
			return 0
		}
		if bq, ok := branchQuestion(symptom); ok && answered.ID == bq.ID {
			return 0
		}
		if answered.ID == questionIDPresenting {
			return 0
		}
	}
	offset := 0
	if _, ok := introQuestion(symptom); ok {
		offset++
	}
	if _, ok := branchQuestion(symptom); ok {
		offset++
	}
	pos := idx - offset
	if pos < 0 {
		pos = 0
	}
	return pos
}

// findBranchAnswer locates the recorded answer to a branch question,
// matching by ID first and by question-text containment for histories
// produced without IDs.
func findBranchAnswer(answers []AnswerEntry, q Question) (string, bool) {
	for _, e := range answers {
		if e.QuestionID != "" && e.QuestionID == q.ID {
			return e.Answer, true
		}
		if e.Question != "" && (strings.Contains(e.Question, q.Text) || strings.Contains(q.Text, e.Question)) {
			return e.Answer, true
		}
	}
	return "", false
}

// markTriaged appends the symptom to the triaged set, preserving the
// invariant that triaged symptoms are a subset of detected ones.
func markTriaged(triaged, detected []string, symptom string) []string {
	if containsString(triaged, symptom) || !containsString(detected, symptom) {
		return triaged
	}
	return append(triaged, symptom)
}

func redFlagMessageFor(pathway string) string {
	if m, ok := redFlagMessages[pathway]; ok {
		return m
	}
	return redFlagMessages[SymptomOther]
}

func newResponse(symptom string, idx int, detected, triaged []string, pathway string, answers []AnswerEntry) TurnResponse {
	return TurnResponse{
		SymptomType:           symptom,
		QuestionIndex:         idx,
		Phase:                 PhaseTriage,
		RiskLevel:             RiskLow,
		DetectedSymptoms:      detected,
		TriagedSymptoms:       triaged,
		CurrentPathway:        pathway,
		DifferentialDiagnoses: []string{},
		AllAnswers:            answers,
	}
}

// askUnscored presents an intro or branch question before any scoring
// applies.
func askUnscored(symptom string, q Question, idx int, detected, triaged []string, pathway string, answers []AnswerEntry) TurnResponse {
	resp := newResponse(symptom, idx, detected, triaged, pathway, answers)
	resp.QuestionID = q.ID
	resp.NextQuestion = q.Text
	return resp
}

// transitionResponse opens the next symptom's dialogue after the current
// one is fully triaged.
func transitionResponse(nextSym string, detected, triaged []string, redFlag bool, flagMsg, risk string, diffs []string, answers []AnswerEntry) TurnResponse {
	q := firstQuestion(nextSym)
	resp := newResponse(nextSym, 1, detected, triaged, "", answers)
	resp.QuestionID = q.ID
	resp.NextQuestion = q.Text
	resp.RedFlag = redFlag
	resp.RedFlagMessage = flagMsg
	resp.RiskLevel = risk
	resp.DifferentialDiagnoses = diffs
	resp.TransitionMessage = fmt.Sprintf("Thank you. Now let me ask you about your %s.", nextSym)
	return resp
}
