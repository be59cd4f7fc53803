// Package triage implements the conversational triage decision engine.
// It is a pure function of (previous turn state, new patient message):
// the caller carries the full state in every request and receives it
// back, updated, in every response. Nothing in this package retains
// state between calls.
package triage

// Phase values carried on the wire.
const (
	PhaseTriage     = "triage"
	PhaseAdditional = "additional"
	PhaseDone       = "done"
)

// Risk levels derived from the red-flag score.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// SymptomOther is the sentinel complaint used when detection finds
// nothing, or when every detected symptom has already been triaged.
const SymptomOther = "other"

// Question is one configured question with a stable identifier. The ID
// travels with the question text in responses and is echoed back by the
// caller, so answers are attributed by ID rather than by comparing
// question strings.
type Question struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// AnswerEntry records one question/answer pair. Entries are append-only:
// the engine never mutates or reorders history it receives.
type AnswerEntry struct {
	QuestionID string `json:"question_id,omitempty"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
}

// TurnRequest is the full state the caller resubmits on every call plus
// the patient's latest free-text message. Every field except Message is
// optional; zero values mean "first call".
type TurnRequest struct {
	Message          string        `json:"message" binding:"required"`
	SymptomType      string        `json:"symptom_type,omitempty"`
	QuestionIndex    int           `json:"question_index"`
	QuestionID       string        `json:"question_id,omitempty"`
	Phase            string        `json:"phase,omitempty"`
	AllAnswers       []AnswerEntry `json:"all_answers,omitempty"`
	DetectedSymptoms []string      `json:"detected_symptoms,omitempty"`
	TriagedSymptoms  []string      `json:"triaged_symptoms,omitempty"`
	CurrentPathway   string        `json:"current_pathway,omitempty"`
}

// TurnResponse carries the next question (or terminal disposition) and
// the complete updated state. Resubmitting the whole response with a new
// message is enough to resume the conversation.
type TurnResponse struct {
	SymptomType           string        `json:"symptom_type"`
	QuestionIndex         int           `json:"question_index"`
	QuestionID            string        `json:"question_id,omitempty"`
	Phase                 string        `json:"phase"`
	NextQuestion          string        `json:"next_question"`
	RedFlag               bool          `json:"red_flag"`
	RedFlagMessage        string        `json:"red_flag_message,omitempty"`
	RiskLevel             string        `json:"risk_level"`
	DetectedSymptoms      []string      `json:"detected_symptoms"`
	TriagedSymptoms       []string      `json:"triaged_symptoms"`
	CurrentPathway        string        `json:"current_pathway,omitempty"`
	TransitionMessage     string        `json:"transition_message,omitempty"`
	DifferentialDiagnoses []string      `json:"differential_diagnoses"`
	AllAnswers            []AnswerEntry `json:"all_answers"`
}
