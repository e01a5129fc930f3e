// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mirit/psyche/ent/resultsnapshot"
)

// ResultSnapshot is the model entity for the ResultSnapshot schema.
type ResultSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID of the result
	ResultID string `json:"result_id,omitempty"`
	// Session that produced the result
	SessionID string `json:"session_id,omitempty"`
	// Which assessment was scored
	AssessmentID string `json:"assessment_id,omitempty"`
	// Derived type code, if the assessment produces one
	TypeCode string `json:"type_code,omitempty"`
	// Attention-check failures reached the invalidity threshold
	Flagged bool `json:"flagged,omitempty"`
	// When the assessment was completed
	TakenAt time.Time `json:"taken_at,omitempty"`
	// Full TestScores artifact as JSON
	Scores       map[string]interface{} `json:"scores,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResultSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case resultsnapshot.FieldScores:
			values[i] = new([]byte)
		case resultsnapshot.FieldFlagged:
			values[i] = new(sql.NullBool)
		case resultsnapshot.FieldID:
			values[i] = new(sql.NullInt64)
		case resultsnapshot.FieldResultID, resultsnapshot.FieldSessionID, resultsnapshot.FieldAssessmentID, resultsnapshot.FieldTypeCode:
			values[i] = new(sql.NullString)
		case resultsnapshot.FieldTakenAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResultSnapshot fields.
func (_m *ResultSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case resultsnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case resultsnapshot.FieldResultID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_id", values[i])
			} else if value.Valid {
				_m.ResultID = value.String
			}
		case resultsnapshot.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case resultsnapshot.FieldAssessmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assessment_id", values[i])
			} else if value.Valid {
				_m.AssessmentID = value.String
			}
		case resultsnapshot.FieldTypeCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type_code", values[i])
			} else if value.Valid {
				_m.TypeCode = value.String
			}
		case resultsnapshot.FieldFlagged:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field flagged", values[i])
			} else if value.Valid {
				_m.Flagged = value.Bool
			}
		case resultsnapshot.FieldTakenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field taken_at", values[i])
			} else if value.Valid {
				_m.TakenAt = value.Time
			}
		case resultsnapshot.FieldScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Scores); err != nil {
					return fmt.Errorf("unmarshal field scores: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResultSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *ResultSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ResultSnapshot.
// Note that you need to call ResultSnapshot.Unwrap() before calling this method if this ResultSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResultSnapshot) Update() *ResultSnapshotUpdateOne {
	return NewResultSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResultSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResultSnapshot) Unwrap() *ResultSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResultSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResultSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("ResultSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("result_id=")
	builder.WriteString(_m.ResultID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("assessment_id=")
	builder.WriteString(_m.AssessmentID)
	builder.WriteString(", ")
	builder.WriteString("type_code=")
	builder.WriteString(_m.TypeCode)
	builder.WriteString(", ")
	builder.WriteString("flagged=")
	builder.WriteString(fmt.Sprintf("%v", _m.Flagged))
	builder.WriteString(", ")
	builder.WriteString("taken_at=")
	builder.WriteString(_m.TakenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scores))
	builder.WriteByte(')')
	return builder.String()
}

// ResultSnapshots is a parsable slice of ResultSnapshot.
type ResultSnapshots []*ResultSnapshot
