package triage

// triggerGroup is one weighted keyword group of a red-flag rule set. An
// answer contributes the weight of the first group it matches, at most
// once per answer.
type triggerGroup struct {
	Weight   int
	Keywords []string
}

type redFlagRule struct {
	Threshold int
	Triggers  []triggerGroup
}

// redFlagRules is fully built here and never mutated afterwards.
var redFlagRules = buildRedFlagRules()

func buildRedFlagRules() map[string]redFlagRule {
	rules := map[string]redFlagRule{
		"headache_sah": {
			Threshold: 2,
			Triggers: []triggerGroup{
				{3, []string{"worst headache", "thunderclap", "sudden severe", "explosive"}},
				{2, []string{"neck stiffness", "stiff neck", "cannot bend neck"}},
				{2, []string{"sensitivity to light", "photophobia", "light hurts"}},
				{2, []string{"confusion", "confused", "drowsy", "altered"}},
				{2, []string{"fever", "high temperature"}},
				{1, []string{"vomiting", "nausea"}},
			},
		},
		"headache_migraine": {
			Threshold: 3,
			Triggers: []triggerGroup{
				{2, []string{"neck stiffness", "stiff neck", "fever"}},
				{1, []string{"first time", "never had this before", "unusual for me"}},
			},
		},
		"chest pain_cardiac": {
			Threshold: 2,
			Triggers: []triggerGroup{
				{3, []string{"heart attack", "cardiac arrest"}},
				{2, []string{"radiating to arm", "left arm", "jaw pain", "radiating to jaw"}},
				{2, []string{"shortness of breath", "can't breathe", "difficulty breathing"}},
				{2, []string{"sweating", "cold sweat", "clammy"}},
				{2, []string{"fainted", "syncope", "passed out"}},
				{1, []string{"crushing", "pressure", "squeezing", "heavy"}},
				{1, []string{"palpitations", "heart racing", "irregular"}},
			},
		},
		"chest pain_non_cardiac": {
			Threshold: 3,
			Triggers: []triggerGroup{
				{2, []string{"blood clot", "dvt", "pe", "pulmonary embolism"}},
				{2, []string{"cannot breathe", "severe shortness of breath"}},
				{1, []string{"fever", "cough", "pleuritic"}},
			},
		},
		"shortness of breath": {
			Threshold: 2,
			Triggers: []triggerGroup{
				{3, []string{"cannot breathe at all", "turning blue", "lips blue", "cyanosis"}},
				{2, []string{"chest pain", "chest tightness"}},
				{2, []string{"sudden onset", "came on suddenly"}},
				{2, []string{"blood clot", "pe", "pulmonary embolism"}},
				{1, []string{"worsening", "getting worse", "severe"}},
			},
		},
		"seizure": {
			Threshold: 2,
			Triggers: []triggerGroup{
				{3, []string{"multiple seizures", "not waking up", "status epilepticus"}},
				{2, []string{"first seizure", "never had one before"}},
				{2, []string{"not taking medication", "missed medication"}},
				{1, []string{"confusion", "headache after", "weakness"}},
			},
		},
		"head injury": {
			Threshold: 2,
			Triggers: []triggerGroup{
				{3, []string{"not waking up", "unconscious", "unresponsive"}},
				{2, []string{"lost consciousness", "blacked out"}},
				{2, []string{"memory loss", "cannot remember", "amnesia"}},
				{2, []string{"seizure after", "fitting after"}},
				{2, []string{"blood thinners", "warfarin", "anticoagulant"}},
				{1, []string{"vomiting", "severe headache after", "confusion"}},
			},
		},
		"trauma": {
			Threshold: 2,
			Triggers: []triggerGroup{
				{3, []string{"not breathing", "unconscious", "unresponsive"}},
				{2, []string{"heavy bleeding", "bleeding heavily", "cannot stop bleeding"}},
				{2, []string{"neck injury", "spine injury", "cannot move legs"}},
				{2, []string{"lost consciousness"}},
				{1, []string{"severe pain", "deformity", "bone visible"}},
			},
		},
		"blackout_hypogly": {
			Threshold: 1,
			Triggers: []triggerGroup{
				{3, []string{"unconscious", "not waking up", "unresponsive"}},
				{2, []string{"very low reading", "glucose below 3", "sugar is 2", "sugar is 1"}},
				{2, []string{"seizure", "fitting"}},
				{1, []string{"shaking", "sweating", "confused", "aggressive"}},
			},
		},
		"blackout_cardiac": {
			Threshold: 2,
			Triggers: []triggerGroup{
				{3, []string{"still unconscious", "not waking up"}},
				{2, []string{"heart condition", "pacemaker", "cardiac"}},
				{2, []string{"prolonged", "more than a minute", "several minutes"}},
				{2, []string{"chest pain before", "palpitations before"}},
				{1, []string{"no warning", "without warning", "sudden"}},
			},
		},
		"rectal bleed": {
			Threshold: 2,
			Triggers: []triggerGroup{
				{3, []string{"large amount", "soaking", "heavy bleeding", "blood pouring"}},
				{2, []string{"black stool", "tarry stool", "dark blood", "malaena"}},
				{2, []string{"dizzy", "lightheaded", "faint", "weak"}},
				{2, []string{"abdominal pain", "severe cramping"}},
				{1, []string{"bright red", "small amount"}},
			},
		},
		"suicidal thoughts": {
			Threshold: 1,
			Triggers: []triggerGroup{
				{3, []string{"have a plan", "planning to", "going to do it", "tonight", "today"}},
				{3, []string{"already done", "took something", "hurt myself already"}},
				{2, []string{"alone", "no one with me"}},
				{2, []string{"hopeless", "no point", "no reason"}},
				{1, []string{"thinking about it", "thoughts of"}},
			},
		},
		"overdose": {
			Threshold: 1,
			Triggers: []triggerGroup{
				{3, []string{"unconscious", "not breathing", "unresponsive", "turning blue"}},
				{3, []string{"overdose confirmed", "took too many", "took too much"}},
				{2, []string{"seizure", "fitting", "confusion", "slurring"}},
				{2, []string{"intentional", "on purpose", "wanted to"}},
				{1, []string{"drowsy", "nausea", "vomiting"}},
			},
		},
		"diarrhea": {
			Threshold: 2,
			Triggers: []triggerGroup{
				{3, []string{"blood in stool", "bloody diarrhea", "blood and mucus"}},
				{2, []string{"severe dehydration", "cannot keep fluids", "very weak"}},
				{2, []string{"high fever", "temperature above 39", "rigors"}},
				{1, []string{"more than 48 hours", "persistent", "severe cramping"}},
			},
		},
		SymptomOther: {
			Threshold: 2,
			Triggers: []triggerGroup{
				{3, []string{"unconscious", "not breathing", "cardiac arrest"}},
				{2, []string{"coughing blood", "vomiting blood", "bleeding heavily"}},
				{1, []string{"severe pain", "excruciating"}},
			},
		},
	}

	// Non-emergency pathways share a conservative low-urgency rule set.
	minor := redFlagRule{
		Threshold: 3,
		Triggers: []triggerGroup{
			{2, []string{"severe", "worsening", "cannot cope", "unbearable"}},
			{1, []string{"fever", "blood", "vomiting"}},
		},
	}
	for _, p := range []string{
		"cough", "sore throat", "dysuria_uti", "dysuria_sti",
		"genital discharge", "genital sore", "dyspareunia",
		"joint pain", "migraine", "abdominal pain", "vomiting", "low blood sugar",
	} {
		if _, ok := rules[p]; !ok {
			rules[p] = minor
		}
	}

	return rules
}

// immediateEscalationPathways end the dialogue with the emergency
// disposition as soon as a red flag fires, without waiting for the rest
// of the questionnaire.
var immediateEscalationPathways = map[string]bool{
	"suicidal thoughts": true,
	"overdose":          true,
}

var redFlagMessages = map[string]string{
	"headache_sah":           "🚨 RED FLAG: Your symptoms may indicate a serious neurological emergency such as a subarachnoid haemorrhage or meningitis. Please call 999/112 or go to your nearest emergency department immediately.",
	"headache_migraine":      "⚠️ ATTENTION: While this may be a migraine, some features warrant same-day medical review. Please contact your GP or urgent care today.",
	"chest pain_cardiac":     "🚨 RED FLAG: Your symptoms are consistent with a possible cardiac event such as a heart attack. Please call 999/112 immediately. Do not drive yourself.",
	"chest pain_non_cardiac": "⚠️ ATTENTION: Your chest pain requires prompt assessment. Please seek medical attention today.",
	"shortness of breath":    "🚨 RED FLAG: Severe breathing difficulty can be life-threatening. Please call 999/112 or go to your nearest emergency department immediately.",
	"seizure":                "🚨 RED FLAG: A seizure — especially a first seizure or prolonged seizure — requires urgent evaluation. Please go to your nearest emergency department.",
	"head injury":            "🚨 RED FLAG: Your head injury requires urgent assessment for possible concussion or intracranial injury. Please go to your nearest emergency department.",
	"trauma":                 "🚨 RED FLAG: Based on your description, this injury requires immediate emergency attention. Please call 999/112.",
	"blackout_hypogly":       "🚨 RED FLAG: A hypoglycaemic episode requires immediate treatment. If you cannot take glucose by mouth, call 999/112 now.",
	"blackout_cardiac":       "🚨 RED FLAG: Loss of consciousness may indicate a serious cardiac or neurological cause. Please go to your nearest emergency department immediately.",
	"rectal bleed":           "🚨 RED FLAG: Significant rectal bleeding requires urgent assessment. Please go to your nearest emergency department immediately.",
	"suicidal thoughts":      "🚨 URGENT: You are not alone and help is here. Please call 999/112 now, or contact the Samaritans on 116 123 (free, 24/7). A clinician wants to support you through this.",
	"overdose":               "🚨 RED FLAG: This is a medical emergency. Please call 999/112 immediately. Do not wait for symptoms to worsen.",
	"diarrhea":               "⚠️ ATTENTION: Your symptoms suggest possible serious infection or dehydration. Please seek medical attention today.",
	SymptomOther:             "🚨 RED FLAG: Based on your symptoms, please seek emergency care immediately or call 999/112.",
}

var completionMessages = map[string]string{
	RiskHigh:   "🚨 URGENT: Based on everything you have described, your symptoms require immediate emergency attention. Please call 999/112 or go to your nearest emergency department NOW. Do not wait.",
	RiskMedium: "⚠️ ATTENTION: Based on your symptoms, we recommend you seek medical attention today. Please contact your GP urgently or go to an urgent care centre.",
	RiskLow:    "✅ Thank you for the information. Your responses have been recorded. Please contact your GP or a healthcare professional for further assessment.",
}
