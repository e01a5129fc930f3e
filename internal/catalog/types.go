// Package catalog defines the assessment data model: dimensions, questions,
// tagged answer types, and the built-in assessment library. Catalogs are
// plain data; all scoring logic lives in the scoring and almanac packages.
package catalog

// Dimension is an immutable trait or factor an assessment measures.
type Dimension struct {
	ID          string `yaml:"id"`
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
}

// QuestionKind discriminates how a question is answered and scored.
type QuestionKind string

const (
	// KindRating is a Likert-style item rated 1..ScaleMax.
	KindRating QuestionKind = "rating"
	// KindForcedChoice asks the respondent to pick one dimension-tagged option.
	KindForcedChoice QuestionKind = "forced-choice"
	// KindCorrectAnswer has exactly one right option (cognitive items).
	KindCorrectAnswer QuestionKind = "correct-answer"
	// KindText collects free text (birth date, time, place).
	KindText QuestionKind = "text"
)

// Option is one selectable choice on a forced-choice or correct-answer item.
type Option struct {
	Label string `yaml:"label"`
	// DimensionID is the dimension this option votes for (forced-choice).
	DimensionID string `yaml:"dimension,omitempty"`
	// Value is the canonical answer value (correct-answer items).
	Value string `yaml:"value,omitempty"`
}

// Question is a single item within an assessment.
type Question struct {
	ID   string       `yaml:"id"`
	Text string       `yaml:"text"`
	Kind QuestionKind `yaml:"kind"`

	// DimensionID links a rating question to the dimension it loads on.
	// Empty for attention checks and text questions.
	DimensionID string `yaml:"dimension,omitempty"`

	Options []Option `yaml:"options,omitempty"`

	// CorrectAnswer is the canonical right value for correct-answer items.
	CorrectAnswer string `yaml:"correct_answer,omitempty"`

	// ReverseScored flips a rating item: value v becomes ScaleMax+1-v.
	ReverseScored bool `yaml:"reverse_scored,omitempty"`

	// AttentionCheck marks an embedded validity item. The question carries
	// the exact rating the respondent is instructed to select.
	AttentionCheck  bool `yaml:"attention_check,omitempty"`
	AttentionExpect int  `yaml:"attention_expect,omitempty"`
}

// RatingAnswer is a numeric response to a rating question.
type RatingAnswer struct {
	QuestionID string
	Value      int
}

// ChoiceAnswer is a vote for a dimension on a forced-choice question,
// or a picked option value on a correct-answer question.
type ChoiceAnswer struct {
	QuestionID string
	// DimensionID is the dimension voted for (forced-choice items).
	DimensionID string
	// Value is the selected option value (correct-answer items).
	Value string
}

// TextAnswer is a free-text response (birth date, time, place).
type TextAnswer struct {
	QuestionID string
	Text       string
}

// AssessmentKind selects the scoring pipeline for an assessment.
type AssessmentKind string

const (
	AssessRating       AssessmentKind = "rating"
	AssessForcedChoice AssessmentKind = "forced-choice"
	AssessCognitive    AssessmentKind = "cognitive"
	AssessDichotomy    AssessmentKind = "dichotomy"
	AssessBirthChart   AssessmentKind = "birth-chart"
)

// Dichotomy is a pair of opposing dimensions from which one letter is
// chosen by score comparison when assembling a type code.
type Dichotomy struct {
	DimA    string `yaml:"dim_a"`
	DimB    string `yaml:"dim_b"`
	LetterA string `yaml:"letter_a"`
	LetterB string `yaml:"letter_b"`
}

// Assessment is a complete questionnaire definition. Assessments are
// externally authored data; the engine only iterates them.
type Assessment struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Kind        AssessmentKind `yaml:"kind"`

	// ScaleMax is the top of the rating scale (5 or 7). Rating kinds only.
	ScaleMax int `yaml:"scale_max,omitempty"`

	// QuestionsPerDimension is the forced-choice allotment per dimension.
	QuestionsPerDimension int `yaml:"questions_per_dimension,omitempty"`

	Dimensions []Dimension `yaml:"dimensions"`
	Questions  []Question  `yaml:"questions"`

	// Dichotomies drive multi-letter type codes, in fixed pole order.
	Dichotomies []Dichotomy `yaml:"dichotomies,omitempty"`
}

// Dimension returns the dimension with the given id, if present.
func (a *Assessment) Dimension(id string) (Dimension, bool) {
	for _, d := range a.Dimensions {
		if d.ID == id {
			return d, true
		}
	}
	return Dimension{}, false
}

// Question returns the question with the given id, if present.
func (a *Assessment) Question(id string) (Question, bool) {
	for _, q := range a.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
