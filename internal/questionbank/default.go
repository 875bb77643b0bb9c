package questionbank

// DefaultBank returns the built-in cancer screening question catalog.
// Weights and tier bands are product calibration; loading a bank document
// with LoadFile replaces all of them without code changes.
func DefaultBank() *Bank {
	bank, err := FromSchema(defaultSchema())
	if err != nil {
		// The built-in schema is covered by tests; failing to load it is
		// a programming error, not a runtime condition.
		panic(err)
	}
	return bank
}

func intPtr(v int) *int { return &v }

func defaultSchema() *BankSchema {
	return &BankSchema{
		ID:      "cancer-screening-v1",
		Name:    "Cancer Risk Screening",
		Version: "1.0",
		Bands:   &BandsConfig{Moderate: 30, High: 60, Urgent: 80},
		Questions: []QuestionConfig{
			// Symptoms. Asked first so an abandoned session still holds
			// the material answers.
			{
				ID: "persistent-cough", Category: "symptom", Kind: "bool",
				Prompt:  "Do you have a persistent cough that has lasted more than 3 weeks?",
				Weights: map[string]float64{"yes": 12, "no": 0},
			},
			{
				ID: "blood-in-sputum", Category: "symptom", Kind: "bool",
				Prompt:  "Have you noticed blood in your sputum?",
				Weights: map[string]float64{"yes": 20, "no": 0},
				When: &WhenConfig{Requires: []RequireConfig{
					{Question: "persistent-cough", AnyOf: []string{"yes"}},
				}},
			},
			{
				ID: "unexplained-weight-loss", Category: "symptom", Kind: "bool",
				Prompt:  "Have you lost more than 5 kg in the past 6 months without trying?",
				Weights: map[string]float64{"yes": 15, "no": 0},
			},
			{
				ID: "unusual-lumps", Category: "symptom", Kind: "bool",
				Prompt:  "Have you found any unusual lumps or masses anywhere on your body?",
				Weights: map[string]float64{"yes": 18, "no": 0},
			},
			{
				ID: "persistent-fatigue", Category: "symptom", Kind: "bool",
				Prompt:  "Do you feel extremely tired or weak most of the time?",
				Weights: map[string]float64{"yes": 8, "no": 0},
			},
			{
				// Follow-up asked only when fever or night sweats were
				// flagged at intake.
				ID: "night-sweats-fever", Category: "symptom", Kind: "bool",
				Prompt:  "Do you have drenching night sweats or recurring fevers?",
				Weights: map[string]float64{"yes": 14, "no": 0},
				When:    &WhenConfig{AnySymptom: []string{"fever", "night_sweats"}},
			},
			{
				ID: "skin-changes", Category: "symptom", Kind: "bool",
				Prompt:  "Have you noticed any changes in moles or new spots on your skin?",
				Weights: map[string]float64{"yes": 10, "no": 0},
			},
			{
				ID: "persistent-pain", Category: "symptom", Kind: "bool",
				Prompt:  "Do you have persistent pain that does not go away and gets worse?",
				Weights: map[string]float64{"yes": 12, "no": 0},
			},
			{
				ID: "bowel-changes", Category: "symptom", Kind: "bool",
				Prompt:  "Have you noticed persistent changes in your bowel habits?",
				Weights: map[string]float64{"yes": 12, "no": 0},
			},
			{
				ID: "swallowing-difficulties", Category: "symptom", Kind: "choice",
				Prompt:  "Do you have indigestion, difficulty swallowing, or persistent abdominal pain?",
				Choices: []string{"none", "indigestion", "difficulty_swallowing", "abdominal_pain", "multiple"},
				Weights: map[string]float64{"none": 0, "indigestion": 4, "difficulty_swallowing": 8, "abdominal_pain": 8, "multiple": 12},
			},
			{
				ID: "breast-changes", Category: "symptom", Kind: "bool",
				Prompt:  "Have you noticed any changes in your breasts, such as lumps, dimpling, or discharge?",
				Weights: map[string]float64{"yes": 20, "no": 0},
				When:    &WhenConfig{Sexes: []string{"female"}},
			},
			{
				ID: "unusual-bleeding", Category: "symptom", Kind: "bool",
				Prompt:  "Have you experienced any unusual vaginal bleeding or discharge?",
				Weights: map[string]float64{"yes": 18, "no": 0},
				When:    &WhenConfig{Sexes: []string{"female"}},
			},
			{
				ID: "prostate-symptoms", Category: "symptom", Kind: "choice",
				Prompt:  "Do you have any urinary problems or prostate-related symptoms?",
				Choices: []string{"none", "frequent_urination", "difficulty_urinating", "blood_in_urine", "multiple"},
				Weights: map[string]float64{"none": 0, "frequent_urination": 4, "difficulty_urinating": 6, "blood_in_urine": 15, "multiple": 12},
				When:    &WhenConfig{Sexes: []string{"male"}, MinAge: intPtr(40)},
			},
			{
				ID: "testicular-lumps", Category: "symptom", Kind: "bool",
				Prompt:  "Have you noticed any lumps, swelling, or changes in your testicles?",
				Weights: map[string]float64{"yes": 18, "no": 0},
				When:    &WhenConfig{Sexes: []string{"male"}},
			},

			// Family and medical history.
			{
				ID: "family-history", Category: "family_history", Kind: "choice",
				Prompt:  "Has anyone in your immediate family had cancer?",
				Choices: []string{"none", "one_member", "multiple_members", "multiple_generations"},
				Weights: map[string]float64{"none": 0, "one_member": 12, "multiple_members": 20, "multiple_generations": 28},
				// Family history weighs heavier once past typical onset age.
				AgeScale: []AgeScaleConfig{{MinAge: 50, Factor: 1.25}},
			},
			{
				ID: "cancer-diagnosis", Category: "family_history", Kind: "choice",
				Prompt:  "Have you ever been diagnosed with cancer?",
				Choices: []string{"never", "in_treatment", "completed", "monitoring"},
				Weights: map[string]float64{"never": 0, "in_treatment": 25, "completed": 15, "monitoring": 18},
			},
			{
				ID: "hepatitis-status", Category: "family_history", Kind: "choice",
				Prompt:  "Have you been tested for Hepatitis B or C?",
				Choices: []string{"never_tested", "negative", "hep_b_positive", "hep_c_positive", "both_positive"},
				Weights: map[string]float64{"never_tested": 3, "negative": 0, "hep_b_positive": 12, "hep_c_positive": 12, "both_positive": 18},
			},

			// Screening history, gated by demographics.
			{
				ID: "pap-smear", Category: "screening", Kind: "choice",
				Prompt:  "When was your last Pap smear test?",
				Choices: []string{"never", "within_year", "one_to_three_years", "three_to_five_years", "over_five_years"},
				Weights: map[string]float64{"never": 8, "within_year": 0, "one_to_three_years": 2, "three_to_five_years": 4, "over_five_years": 6},
				When:    &WhenConfig{Sexes: []string{"female"}, MinAge: intPtr(30)},
			},
			{
				ID: "mammogram", Category: "screening", Kind: "choice",
				Prompt:  "When was your last mammogram?",
				Choices: []string{"never", "within_year", "one_to_two_years", "two_to_three_years", "over_three_years"},
				Weights: map[string]float64{"never": 8, "within_year": 0, "one_to_two_years": 2, "two_to_three_years": 4, "over_three_years": 6},
				When:    &WhenConfig{Sexes: []string{"female"}, MinAge: intPtr(40)},
			},
			{
				ID: "hpv-status", Category: "screening", Kind: "choice",
				Prompt:  "Have you been tested for HPV?",
				Choices: []string{"never_tested", "negative", "positive", "unknown"},
				Weights: map[string]float64{"never_tested": 4, "negative": 0, "positive": 14, "unknown": 4},
				When:    &WhenConfig{Sexes: []string{"female"}},
			},
			{
				ID: "prostate-screening", Category: "screening", Kind: "choice",
				Prompt:  "When was your last prostate screening (PSA test or rectal exam)?",
				Choices: []string{"never", "within_year", "one_to_two_years", "two_to_three_years", "over_three_years"},
				Weights: map[string]float64{"never": 6, "within_year": 0, "one_to_two_years": 2, "two_to_three_years": 3, "over_three_years": 5},
				When:    &WhenConfig{Sexes: []string{"male"}, MinAge: intPtr(50)},
			},
			{
				ID: "colonoscopy", Category: "screening", Kind: "choice",
				Prompt:  "Have you had a colonoscopy or stool test for colorectal cancer screening?",
				Choices: []string{"never", "colonoscopy_within_ten_years", "stool_test_within_year", "both_done", "overdue"},
				Weights: map[string]float64{"never": 6, "colonoscopy_within_ten_years": 0, "stool_test_within_year": 0, "both_done": 0, "overdue": 6},
				When:    &WhenConfig{MinAge: intPtr(40)},
			},

			// Lifestyle. Asked last.
			{
				ID: "smoking-status", Category: "lifestyle", Kind: "choice",
				Prompt:  "What is your smoking history?",
				Choices: []string{"never", "quit_over_five_years", "quit_within_five_years", "current_light", "current_heavy"},
				Weights: map[string]float64{"never": 0, "quit_over_five_years": 4, "quit_within_five_years": 8, "current_light": 14, "current_heavy": 20},
			},
			{
				ID: "alcohol-consumption", Category: "lifestyle", Kind: "choice",
				Prompt:  "How often do you consume alcohol?",
				Choices: []string{"never", "occasional", "regular", "heavy", "daily"},
				Weights: map[string]float64{"never": 0, "occasional": 1, "regular": 4, "heavy": 8, "daily": 10},
			},
			{
				ID: "sun-exposure", Category: "lifestyle", Kind: "choice",
				Prompt:  "How much time do you spend in the sun without protection?",
				Choices: []string{"minimal", "moderate_protected", "frequent", "excessive_unprotected"},
				Weights: map[string]float64{"minimal": 0, "moderate_protected": 1, "frequent": 4, "excessive_unprotected": 8},
			},
			{
				ID: "occupational-exposure", Category: "lifestyle", Kind: "choice",
				Prompt:  "Have you been exposed to chemicals, radiation, or asbestos at work?",
				Choices: []string{"none", "chemical", "radiation", "asbestos", "multiple"},
				Weights: map[string]float64{"none": 0, "chemical": 8, "radiation": 8, "asbestos": 12, "multiple": 14},
			},
			{
				ID: "diet-quality", Category: "lifestyle", Kind: "choice",
				Prompt:  "How would you rate your diet quality?",
				Choices: []string{"very_healthy", "moderately_healthy", "average", "poor", "very_poor"},
				Weights: map[string]float64{"very_healthy": 0, "moderately_healthy": 1, "average": 2, "poor": 5, "very_poor": 7},
			},
			{
				ID: "exercise-frequency", Category: "lifestyle", Kind: "choice",
				Prompt:  "How often do you exercise?",
				Choices: []string{"daily", "three_to_four_weekly", "one_to_two_weekly", "rarely", "never"},
				Weights: map[string]float64{"daily": 0, "three_to_four_weekly": 1, "one_to_two_weekly": 2, "rarely": 4, "never": 6},
			},
		},
	}
}
