package catalog

// Archetype returns the built-in forced-choice archetype assessment.
// Each item asks the respondent to pick the statement that fits best;
// every pick is a vote for one archetype dimension.
func Archetype() *Assessment {
	return &Assessment{
		ID:                    "archetype",
		Name:                  "Archetype Profile",
		Description:           "Forced-choice ranking across six archetypes.",
		Kind:                  AssessForcedChoice,
		QuestionsPerDimension: 4,
		Dimensions: []Dimension{
			{ID: "creator", Label: "Creator", Description: "Driven to make new things exist."},
			{ID: "sage", Label: "Sage", Description: "Driven to understand how things work."},
			{ID: "explorer", Label: "Explorer", Description: "Driven toward the unfamiliar."},
			{ID: "caregiver", Label: "Caregiver", Description: "Driven to protect and support others."},
			{ID: "ruler", Label: "Ruler", Description: "Driven to bring order and take charge."},
			{ID: "jester", Label: "Jester", Description: "Driven to lighten and connect."},
		},
		Questions: []Question{
			{ID: "ar-01", Kind: KindForcedChoice, Text: "On a free afternoon I would rather...", Options: []Option{
				{Label: "Build something from scratch", DimensionID: "creator"},
				{Label: "Read about a subject I don't understand yet", DimensionID: "sage"},
				{Label: "Wander somewhere I've never been", DimensionID: "explorer"},
			}},
			{ID: "ar-02", Kind: KindForcedChoice, Text: "Friends would say my instinct is to...", Options: []Option{
				{Label: "Check in on whoever is struggling", DimensionID: "caregiver"},
				{Label: "Organize the group and set a plan", DimensionID: "ruler"},
				{Label: "Break the tension with a joke", DimensionID: "jester"},
			}},
			{ID: "ar-03", Kind: KindForcedChoice, Text: "The compliment that lands hardest is...", Options: []Option{
				{Label: "\"You see things no one else does\"", DimensionID: "creator"},
				{Label: "\"You really know your stuff\"", DimensionID: "sage"},
				{Label: "\"You're fearless\"", DimensionID: "explorer"},
			}},
			{ID: "ar-04", Kind: KindForcedChoice, Text: "In a crisis I am the one who...", Options: []Option{
				{Label: "Keeps everyone fed and calm", DimensionID: "caregiver"},
				{Label: "Takes command of the situation", DimensionID: "ruler"},
				{Label: "Keeps spirits up", DimensionID: "jester"},
			}},
			{ID: "ar-05", Kind: KindForcedChoice, Text: "My work feels meaningful when...", Options: []Option{
				{Label: "Something I imagined becomes real", DimensionID: "creator"},
				{Label: "A confusing problem finally makes sense", DimensionID: "sage"},
				{Label: "It takes me somewhere new", DimensionID: "explorer"},
				{Label: "It directly helps someone", DimensionID: "caregiver"},
			}},
			{ID: "ar-06", Kind: KindForcedChoice, Text: "I lose track of time when...", Options: []Option{
				{Label: "Leading a project toward a goal", DimensionID: "ruler"},
				{Label: "Entertaining people", DimensionID: "jester"},
				{Label: "Following my curiosity down a rabbit hole", DimensionID: "sage"},
			}},
		},
	}
}

// Cognitive returns the built-in correct-answer reasoning assessment.
// The overall result maps onto an IQ-style bell curve.
func Cognitive() *Assessment {
	return &Assessment{
		ID:          "cognitive",
		Name:        "Reasoning Check",
		Description: "Short pattern and logic quiz scored on a bell curve.",
		Kind:        AssessCognitive,
		Dimensions: []Dimension{
			{ID: "numeric", Label: "Numeric", Description: "Number series and arithmetic reasoning."},
			{ID: "verbal", Label: "Verbal", Description: "Analogies and word relations."},
		},
		Questions: []Question{
			{ID: "cg-01", Kind: KindCorrectAnswer, DimensionID: "numeric", Text: "2, 6, 18, 54, ... what comes next?", CorrectAnswer: "162", Options: []Option{
				{Label: "108", Value: "108"}, {Label: "162", Value: "162"}, {Label: "216", Value: "216"},
			}},
			{ID: "cg-02", Kind: KindCorrectAnswer, DimensionID: "numeric", Text: "Which number is one quarter of one half of 96?", CorrectAnswer: "12", Options: []Option{
				{Label: "12", Value: "12"}, {Label: "24", Value: "24"}, {Label: "48", Value: "48"},
			}},
			{ID: "cg-03", Kind: KindCorrectAnswer, DimensionID: "numeric", Text: "5, 8, 13, 20, 29, ... what comes next?", CorrectAnswer: "40", Options: []Option{
				{Label: "38", Value: "38"}, {Label: "40", Value: "40"}, {Label: "42", Value: "42"},
			}},
			{ID: "cg-04", Kind: KindCorrectAnswer, DimensionID: "verbal", Text: "Glove is to hand as sock is to...", CorrectAnswer: "foot", Options: []Option{
				{Label: "Shoe", Value: "shoe"}, {Label: "Foot", Value: "foot"}, {Label: "Leg", Value: "leg"},
			}},
			{ID: "cg-05", Kind: KindCorrectAnswer, DimensionID: "verbal", Text: "Which word does not belong: apple, pear, carrot, plum?", CorrectAnswer: "carrot", Options: []Option{
				{Label: "Apple", Value: "apple"}, {Label: "Carrot", Value: "carrot"}, {Label: "Plum", Value: "plum"},
			}},
			{ID: "cg-06", Kind: KindCorrectAnswer, DimensionID: "verbal", Text: "Scarce is the opposite of...", CorrectAnswer: "abundant", Options: []Option{
				{Label: "Rare", Value: "rare"}, {Label: "Abundant", Value: "abundant"}, {Label: "Hidden", Value: "hidden"},
			}},
		},
	}
}

// Temperament returns the built-in four-dichotomy type assessment.
// Eight dimensions pair into four pole pairs; the result is a four-letter
// code assembled in fixed pole order.
func Temperament() *Assessment {
	return &Assessment{
		ID:          "temperament",
		Name:        "Temperament Type",
		Description: "Four-letter type from four opposing pole pairs.",
		Kind:        AssessDichotomy,
		ScaleMax:    5,
		Dimensions: []Dimension{
			{ID: "extravert", Label: "Extraversion", Description: "Oriented outward, toward people and activity."},
			{ID: "introvert", Label: "Introversion", Description: "Oriented inward, toward reflection."},
			{ID: "sensing", Label: "Sensing", Description: "Attends to concrete facts and detail."},
			{ID: "intuition", Label: "Intuition", Description: "Attends to patterns and possibility."},
			{ID: "thinking", Label: "Thinking", Description: "Decides by impersonal logic."},
			{ID: "feeling", Label: "Feeling", Description: "Decides by values and impact on people."},
			{ID: "judging", Label: "Judging", Description: "Prefers closure and plans."},
			{ID: "perceiving", Label: "Perceiving", Description: "Prefers open options and improvisation."},
		},
		Dichotomies: []Dichotomy{
			{DimA: "extravert", LetterA: "E", DimB: "introvert", LetterB: "I"},
			{DimA: "sensing", LetterA: "S", DimB: "intuition", LetterB: "N"},
			{DimA: "thinking", LetterA: "T", DimB: "feeling", LetterB: "F"},
			{DimA: "judging", LetterA: "J", DimB: "perceiving", LetterB: "P"},
		},
		Questions: []Question{
			{ID: "tp-01", Kind: KindRating, DimensionID: "extravert", Text: "I think out loud, in conversation."},
			{ID: "tp-02", Kind: KindRating, DimensionID: "introvert", Text: "I work through problems privately before sharing."},
			{ID: "tp-03", Kind: KindRating, DimensionID: "sensing", Text: "I trust what I can verify with my own eyes."},
			{ID: "tp-04", Kind: KindRating, DimensionID: "intuition", Text: "I care more about where things are heading than where they are."},
			{ID: "tp-05", Kind: KindRating, DimensionID: "thinking", Text: "A fair decision matters more than a comfortable one."},
			{ID: "tp-06", Kind: KindRating, DimensionID: "feeling", Text: "I weigh how a decision will land on each person involved."},
			{ID: "tp-07", Kind: KindRating, DimensionID: "judging", Text: "Unfinished decisions nag at me until they are settled."},
			{ID: "tp-08", Kind: KindRating, DimensionID: "perceiving", Text: "I like leaving plans loose enough to change."},
		},
	}
}

// BirthChart returns the built-in birth-data assessment. Its free-text
// answers feed the almanac resolvers rather than the scoring pipeline.
func BirthChart() *Assessment {
	return &Assessment{
		ID:          "birth-chart",
		Name:        "Birth Chart",
		Description: "Zodiac, Tzolkin, Chinese zodiac, and Life Path from your birth data.",
		Kind:        AssessBirthChart,
		Questions: []Question{
			{ID: "bc-date", Kind: KindText, Text: "Birth date (YYYY-MM-DD)"},
			{ID: "bc-time", Kind: KindText, Text: "Birth time (HH:MM, or 'unknown')"},
			{ID: "bc-place", Kind: KindText, Text: "Birth place"},
		},
	}
}

// BirthDateQuestionID and BirthTimeQuestionID identify the birth-chart
// text questions consumed by the almanac resolvers.
const (
	BirthDateQuestionID  = "bc-date"
	BirthTimeQuestionID  = "bc-time"
	BirthPlaceQuestionID = "bc-place"
)

// Builtin returns every built-in assessment in display order.
func Builtin() []*Assessment {
	return []*Assessment{BigFive(), Archetype(), Cognitive(), Temperament(), BirthChart()}
}

// ByID returns the built-in assessment with the given id, if present.
func ByID(id string) (*Assessment, bool) {
	for _, a := range Builtin() {
		if a.ID == id {
			return a, true
		}
	}
	return nil, false
}
