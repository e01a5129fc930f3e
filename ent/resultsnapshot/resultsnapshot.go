// Code generated by ent, DO NOT EDIT.

package resultsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the resultsnapshot type in the database.
	Label = "result_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldResultID holds the string denoting the result_id field in the database.
	FieldResultID = "result_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldAssessmentID holds the string denoting the assessment_id field in the database.
	FieldAssessmentID = "assessment_id"
	// FieldTypeCode holds the string denoting the type_code field in the database.
	FieldTypeCode = "type_code"
	// FieldFlagged holds the string denoting the flagged field in the database.
	FieldFlagged = "flagged"
	// FieldTakenAt holds the string denoting the taken_at field in the database.
	FieldTakenAt = "taken_at"
	// FieldScores holds the string denoting the scores field in the database.
	FieldScores = "scores"
	// Table holds the table name of the resultsnapshot in the database.
	Table = "result_snapshots"
)

// Columns holds all SQL columns for resultsnapshot fields.
var Columns = []string{
	FieldID,
	FieldResultID,
	FieldSessionID,
	FieldAssessmentID,
	FieldTypeCode,
	FieldFlagged,
	FieldTakenAt,
	FieldScores,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ResultIDValidator is a validator for the "result_id" field. It is called by the builders before save.
	ResultIDValidator func(string) error
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	AssessmentIDValidator func(string) error
	// DefaultTypeCode holds the default value on creation for the "type_code" field.
	DefaultTypeCode string
	// DefaultFlagged holds the default value on creation for the "flagged" field.
	DefaultFlagged bool
	// DefaultTakenAt holds the default value on creation for the "taken_at" field.
	DefaultTakenAt func() time.Time
)

// OrderOption defines the ordering options for the ResultSnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByResultID orders the results by the result_id field.
func ByResultID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByAssessmentID orders the results by the assessment_id field.
func ByAssessmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssessmentID, opts...).ToFunc()
}

// ByTypeCode orders the results by the type_code field.
func ByTypeCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTypeCode, opts...).ToFunc()
}

// ByFlagged orders the results by the flagged field.
func ByFlagged(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlagged, opts...).ToFunc()
}

// ByTakenAt orders the results by the taken_at field.
func ByTakenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTakenAt, opts...).ToFunc()
}
