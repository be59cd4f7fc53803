package triage

// Presenting-symptom trigger phrases: what the patient says, not
// diagnoses. Matching is case-insensitive substring.
var symptomKeywords = map[string][]string{
	"headache": {
		"headache", "head pain", "head hurts", "head ache", "pain in my head",
		"head is pounding", "head is killing me", "worst headache",
	},
	"chest pain": {
		"chest pain", "chest hurts", "chest tightness", "pressure in chest",
		"tightness in chest", "chest discomfort", "heart pain", "pain in chest",
	},
	"seizure": {
		"seizure", "fitting", "fit", "convulsion", "shaking uncontrollably",
		"blacked out and shook", "epilepsy", "epileptic",
	},
	"head injury": {
		"hit my head", "head injury", "concussion", "blow to the head",
		"fell and hit", "knocked my head", "sports injury to head", "head trauma",
	},
	"trauma": {
		"trauma", "boxing", "fight", "assault", "knocked out", "accident",
		"fall", "injured", "injury", "hit by", "run over", "knocked down",
	},
	"blackout": {
		"blacked out", "blackout", "fainted", "faint", "lost consciousness",
		"passed out", "syncope", "collapsed", "fell unconscious",
	},
	"rectal bleed": {
		"rectal bleed", "blood in stool", "bleeding from rectum", "blood when wiping",
		"black stool", "bloody stool", "rectal bleeding", "blood in poo",
		"blood in toilet", "blood from back passage",
	},
	"diarrhea": {
		"diarrhea", "diarrhoea", "loose stool", "watery stool", "frequent bowel",
		"runny stool", "bowels running", "loose bowels",
	},
	"suicidal thoughts": {
		"suicide", "suicidal", "want to die", "kill myself", "end my life",
		"no reason to live", "better off dead", "harm myself", "hurt myself",
		"not want to be here", "don't want to live",
	},
	"overdose": {
		"overdose", "took too many", "too many pills", "drug overdose",
		"accidental overdose", "took too much medication", "swallowed too many",
		"took an overdose",
	},
	"shortness of breath": {
		"shortness of breath", "can't breathe", "cannot breathe", "sob",
		"difficulty breathing", "breathless", "out of breath", "dyspnea",
		"dyspnoea", "struggling to breathe", "hard to breathe",
	},
	"vomiting": {
		"vomiting", "vomited", "throwing up", "threw up", "been sick",
		"nausea and vomiting", "sick to stomach",
	},
	"cough": {
		"cough", "coughing", "dry cough", "wet cough", "persistent cough",
		"cannot stop coughing",
	},
	"sore throat": {
		"sore throat", "throat pain", "throat hurts", "difficulty swallowing",
		"painful swallow", "scratchy throat", "throat is killing me",
	},
	"dysuria": {
		"dysuria", "burning when urinating", "burning when peeing",
		"pain when urinating", "pain when peeing", "stinging when urinating",
		"burning urine", "painful urination", "pain passing urine",
	},
	"urinary frequency": {
		"frequent urination", "urinating a lot", "peeing a lot", "going to toilet a lot",
		"cannot hold urine", "urgency to urinate", "urge to urinate",
	},
	"genital discharge": {
		"discharge", "unusual discharge", "penile discharge", "vaginal discharge",
		"discharge from genitals", "fluid from genitals", "abnormal discharge",
	},
	"genital sore": {
		"genital sore", "sore on genitals", "ulcer on genitals", "blister on genitals",
		"genital ulcer", "painful sore down there", "sore down below",
	},
	"dyspareunia": {
		"dyspareunia", "painful intercourse", "pain during sex", "pain after sex",
		"sex is painful", "hurts during sex", "burning after intercourse",
	},
	"joint pain": {
		"joint pain", "joint ache", "arthritis", "swollen joint", "stiff joints",
		"knee pain", "hip pain", "shoulder pain", "elbow pain", "wrist pain",
		"ankle pain", "painful joints",
	},
	"migraine": {
		"migraine", "migraine headache", "aura", "visual aura",
		"one sided headache", "throbbing headache with nausea",
	},
	"abdominal pain": {
		"abdominal pain", "stomach pain", "belly pain", "stomach ache",
		"stomach hurts", "belly hurts", "tummy pain", "cramping", "cramps",
		"pain in stomach", "lower abdominal pain",
	},
	"low blood sugar": {
		"low blood sugar", "hypoglycemia", "hypoglycaemia", "sugar dropped",
		"diabetic episode", "blood sugar low", "glucose low", "feeling shaky diabetic",
	},
}

// Clinical priority order, emergencies first. Symptoms not listed sort
// after everything here.
var symptomPriority = []string{
	"suicidal thoughts", "overdose", "chest pain", "shortness of breath",
	"headache", "seizure", "head injury", "trauma", "blackout",
	"rectal bleed", "low blood sugar", "diarrhea", "abdominal pain",
	"vomiting", "migraine", "dysuria", "urinary frequency",
	"genital discharge", "genital sore", "dyspareunia",
	"cough", "sore throat", "joint pain", SymptomOther,
}

// Affirmative / negative answer openers for yes-no style questions.
// An answer matches if, lower-cased and trimmed, it equals or starts
// with one of these phrases.
var affirmativePhrases = []string{
	"yes", "yeah", "yep", "yup", "correct", "absolutely", "definitely",
	"i do", "i have", "i am", "it is", "that's right", "thats right",
	"positive", "confirmed", "right", "indeed", "certainly", "sure", "always",
}

var negativePhrases = []string{
	"no", "nope", "nah", "negative", "not really", "don't", "dont",
	"i don't", "i dont", "none", "never", "not at all", "no i don't",
}

// Close-out phrases for the "anything else?" phase.
var noMorePhrases = []string{
	"no", "nope", "nothing", "that's all", "thats all",
	"no thanks", "done", "nothing else", "no more", "all good", "that is all",
}
