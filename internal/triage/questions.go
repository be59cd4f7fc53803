package triage

import "fmt"

// questionIDPresenting tags the free-text presenting complaint that opens
// the conversation; it is recorded in history with an empty question text.
const questionIDPresenting = "presenting"

// numbered builds the question list for one pathway, assigning each
// question a stable "<pathway>/<index>" identifier.
func numbered(pathway string, texts ...string) []Question {
	qs := make([]Question, len(texts))
	for i, t := range texts {
		qs[i] = Question{ID: fmt.Sprintf("%s/%d", pathway, i), Text: t}
	}
	return qs
}

// Warm-up open questions asked before any branching.
var introQuestions = map[string]Question{
	"headache":   {ID: "headache/intro", Text: "On a scale of 1 to 10, how severe is this headache?"},
	"chest pain": {ID: "chest pain/intro", Text: "Can you describe the chest pain — is it sharp, dull, pressure-like, or burning?"},
	"dysuria":    {ID: "dysuria/intro", Text: "Where exactly do you feel the burning or pain — inside when urinating, at the opening, or deeper in the pelvis or lower back?"},
}

// branchRule is the discriminating question for a symptom with two
// sub-pathways, plus the domain keywords that commit the "yes" side.
type branchRule struct {
	Question    Question
	YesPathway  string
	NoPathway   string
	YesKeywords []string
}

var branchRules = map[string]branchRule{
	"headache": {
		Question:    Question{ID: "headache/branch", Text: "Is this the worst headache you have ever had, or did it come on suddenly like an explosion or thunderclap?"},
		YesPathway:  "headache_sah",
		NoPathway:   "headache_migraine",
		YesKeywords: []string{"worst", "thunderclap", "sudden", "explosion", "never had", "10", "worst ever"},
	},
	"chest pain": {
		Question:    Question{ID: "chest pain/branch", Text: "Does the pain feel like pressure, tightness, squeezing, or a heavy weight on your chest?"},
		YesPathway:  "chest pain_cardiac",
		NoPathway:   "chest pain_non_cardiac",
		YesKeywords: []string{"pressure", "tightness", "squeezing", "heavy", "crushing", "elephant"},
	},
	"blackout": {
		Question:    Question{ID: "blackout/branch", Text: "Are you diabetic or do you have a history of low blood sugar?"},
		YesPathway:  "blackout_hypogly",
		NoPathway:   "blackout_cardiac",
		YesKeywords: []string{"diabetic", "diabetes", "insulin", "low sugar", "hypoglycemia", "glucose"},
	},
	"dysuria": {
		Question:    Question{ID: "dysuria/branch", Text: "Do you also have increased frequency or urgency to urinate, or lower abdominal discomfort?"},
		YesPathway:  "dysuria_uti",
		NoPathway:   "dysuria_sti",
		YesKeywords: []string{"frequency", "urgency", "lower abdomen", "bladder", "keep going toilet"},
	},
}

// Default pathway used for rule lookups before the branch decision has
// been made.
var defaultPathways = map[string]string{
	"headache":   "headache_sah",
	"chest pain": "chest pain_cardiac",
	"blackout":   "blackout_cardiac",
	"dysuria":    "dysuria_uti",
}

// Ordered follow-up questions per pathway.
var pathwayQuestions = map[string][]Question{
	"headache_sah": numbered("headache_sah",
		"Do you have any neck stiffness or pain on bending your neck forward?",
		"Do you have sensitivity to light or does light make it worse?",
		"Do you have any fever, confusion, or feel unusually drowsy?",
		"Did the headache reach maximum intensity within seconds to a couple of minutes?",
		"Do you have any nausea or vomiting with this headache?",
		"Have you had any recent illness, infection, or been around anyone unwell?",
	),
	"headache_migraine": numbered("headache_migraine",
		"Is the pain on one side of your head or both sides?",
		"Do you have any visual disturbances, flashing lights, or blind spots before the headache?",
		"Do you have nausea or sensitivity to light and sound?",
		"Have you had headaches like this before?",
		"Have you taken any pain relief and did it help?",
		"Do you have any neck stiffness or fever alongside this headache?",
	),
	"chest pain_cardiac": numbered("chest pain_cardiac",
		"Does the pain spread or radiate to your left arm, jaw, neck, or shoulder?",
		"Do you have shortness of breath alongside the chest pain?",
		"Are you sweating, feeling clammy, or did you feel faint?",
		"Do you have palpitations or feel your heart racing or beating irregularly?",
		"Do you have a history of heart disease, angina, or a previous heart attack?",
		"When exactly did this start — was it at rest or during exertion?",
	),
	"chest pain_non_cardiac": numbered("chest pain_non_cardiac",
		"Does the pain change when you breathe in deeply or move?",
		"Do you have a cough, fever, or feel generally unwell?",
		"Do you have any heartburn, acid reflux, or did you recently eat?",
		"Do you have any history of blood clots, recent long travel, or leg swelling?",
		"Does pressing on your chest wall reproduce the pain?",
		"Do you have any shortness of breath or difficulty breathing?",
	),
	"shortness of breath": numbered("shortness of breath",
		"Did the shortness of breath come on suddenly or gradually?",
		"Do you have any chest pain or tightness alongside this?",
		"Do you have a history of asthma, COPD, heart failure, or blood clots?",
		"Are you wheezing or making any abnormal sounds when breathing?",
		"Do you have a fever, cough, or any recent illness?",
		"Are you breathless at rest right now, or only on exertion?",
	),
	"seizure": numbered("seizure",
		"Is this the first seizure you have ever had?",
		"How long did the seizure last?",
		"Did you lose consciousness during the seizure?",
		"Are you a known epileptic and were you taking your medications?",
		"Do you have a headache, confusion, or weakness after the seizure?",
		"Did you injure yourself during the seizure?",
	),
	"head injury": numbered("head injury",
		"Did you lose consciousness after the head injury?",
		"Do you remember the event, or do you have any memory loss around it?",
		"Do you have a headache, vomiting, or confusion now?",
		"Did you have a seizure after the injury?",
		"Is there any bleeding from the head or clear fluid from the nose or ears?",
		"Are you on any blood thinners such as warfarin or aspirin?",
	),
	"trauma": numbered("trauma",
		"What happened — can you briefly describe the mechanism of injury?",
		"Where on your body were you injured?",
		"Did you lose consciousness at any point?",
		"Is there any active bleeding, deformity, or inability to move a limb?",
		"Do you have any neck or back pain?",
		"Can you move all your limbs and do you have normal sensation?",
	),
	"blackout_hypogly": numbered("blackout_hypogly",
		"Have you eaten recently or taken insulin today?",
		"Do you have your glucose meter with you — what is your current reading?",
		"Do you feel shaky, sweaty, or confused right now?",
		"Have you had glucose, juice, or anything sweet since the episode?",
		"Do you have someone with you to help monitor you?",
	),
	"blackout_cardiac": numbered("blackout_cardiac",
		"Did you have any warning before blacking out, such as dizziness, palpitations, or chest pain?",
		"How long were you unconscious?",
		"Did anyone witness the episode — did you shake or have any jerking movements?",
		"Do you have a known heart condition or are you on any heart medications?",
		"Did you injure yourself when you fell?",
		"Have you had episodes like this before?",
	),
	"rectal bleed": numbered("rectal bleed",
		"How much blood did you notice — a small amount or a large amount?",
		"What colour was the blood — bright red, dark red, or black and tarry?",
		"Do you have any abdominal or rectal pain?",
		"Do you feel dizzy, weak, or lightheaded?",
		"Do you have a history of haemorrhoids, inflammatory bowel disease, or bowel cancer?",
		"Have you had any recent changes in bowel habit, unintentional weight loss, or night sweats?",
	),
	"suicidal thoughts": numbered("suicidal thoughts",
		"I want to make sure you are safe right now. Are you currently having thoughts of ending your life?",
		"Do you have a specific plan in mind for how you would do this?",
		"Have you already done anything to hurt yourself today?",
		"Are you alone right now, or is there someone with you?",
		"Is there anyone — a family member, friend, or anyone — we can contact to be with you right now?",
	),
	"overdose": numbered("overdose",
		"What substance or medication was taken, and approximately how much?",
		"How long ago was it taken?",
		"Is the person conscious, breathing normally, and responsive?",
		"Was this intentional or accidental?",
		"Are there any other symptoms such as seizures, confusion, or difficulty breathing?",
		"Is there a packet or bottle nearby that we can identify the substance from?",
	),
	"diarrhea": numbered("diarrhea",
		"How long have you had the diarrhea?",
		"How many times have you had loose stools today?",
		"Is there any blood or mucus in the stool?",
		"Do you have a fever, vomiting, or abdominal cramps?",
		"Are you able to keep fluids down?",
		"Have you recently travelled abroad or eaten anything that others also ate?",
	),
	"cough": numbered("cough",
		"How long have you had this cough?",
		"Is it a dry cough or are you coughing up phlegm — and if so, what colour?",
		"Have you coughed up any blood?",
		"Do you have shortness of breath, fever, or chest pain?",
		"Do you have a history of asthma, COPD, or smoking?",
	),
	"sore throat": numbered("sore throat",
		"How long have you had the sore throat?",
		"Do you have difficulty swallowing or is your airway feeling blocked?",
		"Do you have a fever, swollen glands in your neck, or white patches on your tonsils?",
		"Do you have a rash anywhere on your body?",
		"Have you been in contact with anyone with strep throat or similar illness?",
	),
	"dysuria_uti": numbered("dysuria_uti",
		"Do you have any fever, chills, or pain in your back or side (flank pain)?",
		"Is your urine cloudy, dark, or does it have an unusual smell?",
		"Have you had a UTI before, and if so how recently?",
		"Are you sexually active, and could this be related to recent sexual activity?",
		"Do you have any blood in your urine?",
	),
	"dysuria_sti": numbered("dysuria_sti",
		"Do you have any unusual discharge from the genitals?",
		"Do you have any sores, ulcers, or blisters on or around the genitals?",
		"Do you have any pain or discomfort during or after sexual intercourse?",
		"When did you last have unprotected sexual contact?",
		"Have you been tested for sexually transmitted infections before?",
	),
	"genital discharge": numbered("genital discharge",
		"How long have you noticed the discharge?",
		"Can you describe the discharge — colour, consistency, and any odour?",
		"Do you have any pain, burning, or itching alongside the discharge?",
		"Do you have any sores, ulcers, or blisters in the genital area?",
		"Do you have any pain during urination or sexual intercourse?",
		"When did you last have unprotected sexual contact?",
	),
	"genital sore": numbered("genital sore",
		"Can you describe the sore — is it painful, painless, a blister, or an ulcer?",
		"How long have you had it and has it changed in appearance?",
		"Do you have any discharge, burning on urination, or other genital symptoms?",
		"Do you have any swollen lymph nodes in your groin?",
		"When did you last have unprotected sexual contact?",
		"Have you ever been diagnosed with herpes, syphilis, or any STI before?",
	),
	"dyspareunia": numbered("dyspareunia",
		"Is the pain during intercourse, after intercourse, or both?",
		"Where do you feel the pain — superficial at the entry, or deep inside?",
		"Do you have any unusual discharge, bleeding, or other genital symptoms?",
		"Do you have any pelvic pain outside of intercourse?",
		"Have you noticed any changes with your menstrual cycle if applicable?",
	),
	"joint pain": numbered("joint pain",
		"Which joints are affected — one joint or multiple?",
		"Is there any swelling, redness, or warmth around the affected joint?",
		"Did the pain start after an injury or come on by itself?",
		"Is the pain worse in the morning and improves with movement, or worse with activity?",
		"Do you have a fever or feel generally unwell?",
		"Do you have a history of gout, rheumatoid arthritis, or any joint condition?",
	),
	"migraine": numbered("migraine",
		"How long have you had this migraine?",
		"Do you have any visual aura — flashing lights, zigzag lines, or blind spots — before it starts?",
		"Is the pain on one side or both sides of your head?",
		"Do you have nausea, vomiting, or sensitivity to light and sound?",
		"Have you taken your usual migraine medication and did it help?",
		"Is this migraine typical for you, or does anything feel different this time?",
	),
	"abdominal pain": numbered("abdominal pain",
		"Where exactly in your abdomen is the pain — upper, lower, left, right, or all over?",
		"On a scale of 1 to 10, how severe is the pain?",
		"Did the pain come on suddenly or gradually?",
		"Do you have nausea, vomiting, or diarrhea alongside this?",
		"Do you have a fever?",
		"For those who menstruate — is there any chance this could be related to your cycle or pregnancy?",
	),
	"vomiting": numbered("vomiting",
		"How many times have you vomited and over what period of time?",
		"Is there any blood in the vomit?",
		"Do you have abdominal pain, fever, or diarrhea?",
		"Are you able to keep any fluids down at all?",
		"Could this be related to something you ate, a medication, or alcohol?",
	),
	"low blood sugar": numbered("low blood sugar",
		"What is your current blood glucose reading if you have a meter?",
		"Have you eaten or drunk anything sweet since the episode started?",
		"Are you shaking, sweating, confused, or feeling faint right now?",
		"Did you take insulin or oral diabetes medication today and at what dose?",
		"Are you alone or is there someone with you?",
	),
}

// Prompts issued outside pathway question lists.
var (
	// freeformQuestion opens a symptom that has no configured questions.
	freeformQuestion = Question{ID: "freeform", Text: "Tell me more about this symptom."}

	// additionalEntryPrompt is asked when the last symptom's pathway is
	// exhausted; additionalRepeatPrompt keeps the phase open while the
	// patient is still adding information.
	additionalEntryPrompt  = Question{ID: "additional/first", Text: "Is there anything else you would like to add, or any other symptoms you would like to mention?"}
	additionalRepeatPrompt = Question{ID: "additional/more", Text: "Thank you for sharing that. Is there anything else you would like to add?"}
)

// questionIndex resolves a question ID back to its question.
var questionIndex = buildQuestionIndex()

func buildQuestionIndex() map[string]Question {
	idx := make(map[string]Question)
	for _, q := range introQuestions {
		idx[q.ID] = q
	}
	for _, r := range branchRules {
		idx[r.Question.ID] = r.Question
	}
	for _, qs := range pathwayQuestions {
		for _, q := range qs {
			idx[q.ID] = q
		}
	}
	idx[freeformQuestion.ID] = freeformQuestion
	idx[additionalEntryPrompt.ID] = additionalEntryPrompt
	idx[additionalRepeatPrompt.ID] = additionalRepeatPrompt
	idx[questionIDPresenting] = Question{ID: questionIDPresenting}
	return idx
}
