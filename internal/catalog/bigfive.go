package catalog

// BigFive returns the built-in five-factor personality assessment.
// Items are rated 1-5; roughly half are reverse-scored, and two attention
// checks are embedded mid-questionnaire.
func BigFive() *Assessment {
	return &Assessment{
		ID:          "big-five",
		Name:        "Big Five Personality",
		Description: "Five-factor trait profile with percentile and T-score estimates.",
		Kind:        AssessRating,
		ScaleMax:    5,
		Dimensions: []Dimension{
			{ID: "openness", Label: "Openness", Description: "Curiosity, imagination, and appetite for new experience."},
			{ID: "conscientiousness", Label: "Conscientiousness", Description: "Organization, discipline, and follow-through."},
			{ID: "extraversion", Label: "Extraversion", Description: "Energy drawn from social interaction."},
			{ID: "agreeableness", Label: "Agreeableness", Description: "Warmth, cooperation, and trust in others."},
			{ID: "neuroticism", Label: "Neuroticism", Description: "Sensitivity to stress and negative emotion."},
		},
		Questions: []Question{
			{ID: "bf-01", Kind: KindRating, DimensionID: "openness", Text: "I enjoy exploring ideas far outside my usual interests."},
			{ID: "bf-02", Kind: KindRating, DimensionID: "openness", Text: "I prefer familiar routines over new experiences.", ReverseScored: true},
			{ID: "bf-03", Kind: KindRating, DimensionID: "conscientiousness", Text: "I finish what I start, even when it stops being fun."},
			{ID: "bf-04", Kind: KindRating, DimensionID: "conscientiousness", Text: "I often leave tasks half-done.", ReverseScored: true},
			{ID: "bf-05", Kind: KindRating, AttentionCheck: true, AttentionExpect: 2, Text: "To show you are reading carefully, select 'Disagree' for this item."},
			{ID: "bf-06", Kind: KindRating, DimensionID: "extraversion", Text: "Being around groups of people energizes me."},
			{ID: "bf-07", Kind: KindRating, DimensionID: "extraversion", Text: "I need long stretches of solitude to recharge.", ReverseScored: true},
			{ID: "bf-08", Kind: KindRating, DimensionID: "agreeableness", Text: "I give people the benefit of the doubt."},
			{ID: "bf-09", Kind: KindRating, DimensionID: "agreeableness", Text: "I am quick to point out when someone is wrong.", ReverseScored: true},
			{ID: "bf-10", Kind: KindRating, AttentionCheck: true, AttentionExpect: 5, Text: "Select 'Strongly agree' for this item."},
			{ID: "bf-11", Kind: KindRating, DimensionID: "neuroticism", Text: "Small setbacks can ruin my whole day."},
			{ID: "bf-12", Kind: KindRating, DimensionID: "neuroticism", Text: "I stay calm under pressure.", ReverseScored: true},
		},
	}
}
