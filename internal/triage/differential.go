package triage

import (
	"sort"
	"strings"
)

// differentialCandidate is one candidate diagnosis for a pathway.
// Candidates are declared in a-priori clinical likelihood order, which
// also serves as the fallback ranking when no keyword matches at all.
type differentialCandidate struct {
	Diagnosis string
	Keywords  []string
	Weight    int
}

var differentialCandidates = map[string][]differentialCandidate{
	"headache_sah": {
		{"Subarachnoid Haemorrhage (SAH)", []string{"thunderclap", "worst", "sudden", "explosion", "seconds"}, 3},
		{"Meningitis", []string{"neck stiffness", "stiff neck", "fever", "photophobia", "sensitivity to light", "rash"}, 3},
		{"Raised Intracranial Pressure", []string{"drowsy", "confusion", "vomiting", "worse in the morning"}, 2},
		{"Severe Migraine", []string{"nausea", "one side", "aura", "had this before"}, 1},
	},
	"headache_migraine": {
		{"Migraine", []string{"one side", "aura", "flashing", "nausea", "light", "sound", "throbbing"}, 3},
		{"Tension Headache", []string{"both sides", "band", "tight", "stress"}, 2},
		{"Cluster Headache", []string{"behind the eye", "watering", "same time", "clusters"}, 2},
		{"Medication Overuse Headache", []string{"painkillers", "pain relief", "every day", "daily"}, 1},
	},
	"chest pain_cardiac": {
		{"Acute Myocardial Infarction (MI)", []string{"radiating", "left arm", "jaw", "sweating", "clammy", "crushing", "pressure", "angina", "heart attack"}, 3},
		{"Unstable Angina", []string{"angina", "at rest", "exertion", "tightness", "getting worse"}, 2},
		{"Aortic Dissection", []string{"tearing", "ripping", "between shoulder blades", "back"}, 3},
		{"Pericarditis", []string{"sharp", "lying down", "sitting forward", "fever"}, 2},
		{"Panic Attack", []string{"anxious", "panic", "tingling", "stress"}, 1},
	},
	"chest pain_non_cardiac": {
		{"Pulmonary Embolism", []string{"blood clot", "dvt", "travel", "leg swelling", "sudden"}, 3},
		{"Pneumonia / Pleurisy", []string{"fever", "cough", "unwell", "breathe in", "phlegm"}, 2},
		{"Gastro-oesophageal Reflux", []string{"heartburn", "reflux", "burning", "after eating", "ate"}, 2},
		{"Musculoskeletal Chest Pain", []string{"pressing", "movement", "move", "pulled", "tender"}, 1},
	},
	"shortness of breath": {
		{"Asthma Exacerbation", []string{"asthma", "wheez", "inhaler", "tight chest"}, 3},
		{"Pulmonary Embolism", []string{"sudden", "blood clot", "leg swelling", "travel", "chest pain"}, 3},
		{"Pneumonia", []string{"fever", "cough", "phlegm", "unwell"}, 2},
		{"Heart Failure", []string{"heart failure", "swollen ankles", "lying flat", "pillows"}, 2},
		{"COPD Exacerbation", []string{"copd", "smoker", "smoking", "emphysema"}, 2},
	},
	"seizure": {
		{"First Unprovoked Seizure", []string{"first", "never had"}, 3},
		{"Breakthrough Epileptic Seizure", []string{"epilep", "missed medication", "not taking"}, 2},
		{"Status Epilepticus", []string{"multiple", "back to back", "not waking"}, 3},
	},
	"head injury": {
		{"Concussion", []string{"memory loss", "cannot remember", "dazed", "confusion", "dizzy"}, 2},
		{"Intracranial Haemorrhage", []string{"lost consciousness", "vomiting", "blood thinners", "warfarin", "seizure"}, 3},
		{"Skull Fracture", []string{"clear fluid", "bleeding from", "nose or ears"}, 3},
		{"Minor Head Injury", []string{"no loss", "feel fine", "mild"}, 1},
	},
	"blackout_cardiac": {
		{"Cardiac Arrhythmia", []string{"palpitations", "no warning", "heart condition", "pacemaker"}, 3},
		{"Vasovagal Syncope", []string{"standing", "hot", "dizzy", "warning", "lightheaded"}, 2},
		{"Seizure", []string{"shaking", "jerking", "confused after"}, 2},
		{"Postural Hypotension", []string{"standing up", "getting up", "stood up"}, 1},
	},
	"blackout_hypogly": {
		{"Hypoglycaemia", []string{"insulin", "not eaten", "shaky", "sweaty", "glucose", "sugar"}, 3},
		{"Diabetic Medication Error", []string{"dose", "too much", "medication"}, 2},
		{"Vasovagal Syncope", []string{"standing", "hot"}, 1},
	},
	"rectal bleed": {
		{"Haemorrhoids", []string{"bright red", "wiping", "small amount", "itching"}, 2},
		{"Upper Gastrointestinal Bleed", []string{"black", "tarry", "dark", "dizzy", "weak"}, 3},
		{"Inflammatory Bowel Disease", []string{"mucus", "diarrhea", "cramping", "colitis"}, 2},
		{"Colorectal Malignancy", []string{"weight loss", "night sweats", "change in bowel"}, 3},
	},
	"diarrhea": {
		{"Viral Gastroenteritis", []string{"vomiting", "others", "ate", "24 hours"}, 2},
		{"Bacterial Gastroenteritis", []string{"blood", "fever", "travel", "abroad"}, 3},
		{"Inflammatory Bowel Disease Flare", []string{"mucus", "weeks", "persistent"}, 2},
	},
	"dysuria_uti": {
		{"Lower Urinary Tract Infection", []string{"cloudy", "smell", "frequency", "urgency", "burning"}, 3},
		{"Pyelonephritis", []string{"fever", "chills", "flank", "back", "side"}, 3},
		{"Urethritis", []string{"discharge", "sexually", "unprotected"}, 2},
	},
	"dysuria_sti": {
		{"Chlamydia", []string{"discharge", "unprotected", "burning"}, 3},
		{"Genital Herpes", []string{"sore", "blister", "ulcer", "painful"}, 3},
		{"Gonorrhoea", []string{"discharge", "green", "yellow"}, 2},
		{"Trichomoniasis", []string{"itching", "odour", "frothy"}, 1},
	},
	"cough": {
		{"Upper Respiratory Tract Infection", []string{"sore throat", "runny nose", "cold", "days"}, 2},
		{"Pneumonia", []string{"fever", "phlegm", "green", "chest pain", "breath"}, 3},
		{"Asthma", []string{"asthma", "wheez", "night", "inhaler"}, 2},
		{"COPD Exacerbation", []string{"copd", "smoking", "smoker"}, 2},
	},
	"abdominal pain": {
		{"Gastritis / Dyspepsia", []string{"upper", "burning", "after eating"}, 2},
		{"Appendicitis", []string{"right", "lower", "fever", "nausea", "sudden"}, 3},
		{"Biliary Colic", []string{"upper right", "fatty", "shoulder"}, 2},
		{"Gynaecological / Obstetric Cause", []string{"cycle", "pregnan", "period"}, 2},
	},
}

// rankDifferentials scores each configured candidate for the pathway
// against the whole answer history: base weight times the number of
// distinct supporting keywords present (each keyword counts once however
// often it occurs). Returns the top three candidates scoring above zero;
// if nothing scores, the first three in declared likelihood order.
// Pathways without a configured list return an empty slice.
func rankDifferentials(answers []AnswerEntry, pathway string) []string {
	candidates := differentialCandidates[pathway]
	if len(candidates) == 0 {
		return []string{}
	}

	var blob strings.Builder
	for _, entry := range answers {
		blob.WriteString(strings.ToLower(entry.Answer))
		blob.WriteString(" ")
	}
	text := blob.String()

	type scored struct {
		diagnosis string
		score     int
	}
	ranked := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		hits := 0
		for _, kw := range c.Keywords {
			if strings.Contains(text, kw) {
				hits++
			}
		}
		ranked = append(ranked, scored{c.Diagnosis, c.Weight * hits})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	out := []string{}
	for _, r := range ranked {
		if r.score > 0 && len(out) < 3 {
			out = append(out, r.diagnosis)
		}
	}
	if len(out) == 0 {
		for i := 0; i < len(candidates) && i < 3; i++ {
			out = append(out, candidates[i].Diagnosis)
		}
	}
	return out
}
