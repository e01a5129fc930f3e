// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mirit/psyche/ent/llmrequestevent"
	"github.com/mirit/psyche/ent/responseevent"
	"github.com/mirit/psyche/ent/resultsnapshot"
	"github.com/mirit/psyche/ent/schema"
	"github.com/mirit/psyche/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	responseeventMixin := schema.ResponseEvent{}.Mixin()
	responseeventMixinFields0 := responseeventMixin[0].Fields()
	_ = responseeventMixinFields0
	responseeventFields := schema.ResponseEvent{}.Fields()
	_ = responseeventFields
	// responseeventDescTimestamp is the schema descriptor for timestamp field.
	responseeventDescTimestamp := responseeventMixinFields0[1].Descriptor()
	// responseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	responseevent.DefaultTimestamp = responseeventDescTimestamp.Default.(func() time.Time)
	// responseeventDescSessionID is the schema descriptor for session_id field.
	responseeventDescSessionID := responseeventFields[0].Descriptor()
	// responseevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	responseevent.SessionIDValidator = responseeventDescSessionID.Validators[0].(func(string) error)
	// responseeventDescAssessmentID is the schema descriptor for assessment_id field.
	responseeventDescAssessmentID := responseeventFields[1].Descriptor()
	// responseevent.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	responseevent.AssessmentIDValidator = responseeventDescAssessmentID.Validators[0].(func(string) error)
	// responseeventDescQuestionID is the schema descriptor for question_id field.
	responseeventDescQuestionID := responseeventFields[2].Descriptor()
	// responseevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	responseevent.QuestionIDValidator = responseeventDescQuestionID.Validators[0].(func(string) error)
	// responseeventDescKind is the schema descriptor for kind field.
	responseeventDescKind := responseeventFields[3].Descriptor()
	// responseevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	responseevent.KindValidator = responseeventDescKind.Validators[0].(func(string) error)
	resultsnapshotFields := schema.ResultSnapshot{}.Fields()
	_ = resultsnapshotFields
	// resultsnapshotDescResultID is the schema descriptor for result_id field.
	resultsnapshotDescResultID := resultsnapshotFields[0].Descriptor()
	// resultsnapshot.ResultIDValidator is a validator for the "result_id" field. It is called by the builders before save.
	resultsnapshot.ResultIDValidator = resultsnapshotDescResultID.Validators[0].(func(string) error)
	// resultsnapshotDescSessionID is the schema descriptor for session_id field.
	resultsnapshotDescSessionID := resultsnapshotFields[1].Descriptor()
	// resultsnapshot.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	resultsnapshot.SessionIDValidator = resultsnapshotDescSessionID.Validators[0].(func(string) error)
	// resultsnapshotDescAssessmentID is the schema descriptor for assessment_id field.
	resultsnapshotDescAssessmentID := resultsnapshotFields[2].Descriptor()
	// resultsnapshot.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	resultsnapshot.AssessmentIDValidator = resultsnapshotDescAssessmentID.Validators[0].(func(string) error)
	// resultsnapshotDescTypeCode is the schema descriptor for type_code field.
	resultsnapshotDescTypeCode := resultsnapshotFields[3].Descriptor()
	// resultsnapshot.DefaultTypeCode holds the default value on creation for the type_code field.
	resultsnapshot.DefaultTypeCode = resultsnapshotDescTypeCode.Default.(string)
	// resultsnapshotDescFlagged is the schema descriptor for flagged field.
	resultsnapshotDescFlagged := resultsnapshotFields[4].Descriptor()
	// resultsnapshot.DefaultFlagged holds the default value on creation for the flagged field.
	resultsnapshot.DefaultFlagged = resultsnapshotDescFlagged.Default.(bool)
	// resultsnapshotDescTakenAt is the schema descriptor for taken_at field.
	resultsnapshotDescTakenAt := resultsnapshotFields[5].Descriptor()
	// resultsnapshot.DefaultTakenAt holds the default value on creation for the taken_at field.
	resultsnapshot.DefaultTakenAt = resultsnapshotDescTakenAt.Default.(func() time.Time)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAssessmentID is the schema descriptor for assessment_id field.
	sessioneventDescAssessmentID := sessioneventFields[1].Descriptor()
	// sessionevent.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	sessionevent.AssessmentIDValidator = sessioneventDescAssessmentID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescQuestionsAnswered is the schema descriptor for questions_answered field.
	sessioneventDescQuestionsAnswered := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultQuestionsAnswered holds the default value on creation for the questions_answered field.
	sessionevent.DefaultQuestionsAnswered = sessioneventDescQuestionsAnswered.Default.(int)
	// sessioneventDescAttentionFailures is the schema descriptor for attention_failures field.
	sessioneventDescAttentionFailures := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultAttentionFailures holds the default value on creation for the attention_failures field.
	sessionevent.DefaultAttentionFailures = sessioneventDescAttentionFailures.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
}
