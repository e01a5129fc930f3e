// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mirit/psyche/ent/predicate"
	"github.com/mirit/psyche/ent/resultsnapshot"
)

// ResultSnapshotUpdate is the builder for updating ResultSnapshot entities.
type ResultSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *ResultSnapshotMutation
}

// Where appends a list predicates to the ResultSnapshotUpdate builder.
func (_u *ResultSnapshotUpdate) Where(ps ...predicate.ResultSnapshot) *ResultSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetResultID sets the "result_id" field.
func (_u *ResultSnapshotUpdate) SetResultID(v string) *ResultSnapshotUpdate {
	_u.mutation.SetResultID(v)
	return _u
}

// SetNillableResultID sets the "result_id" field if the given value is not nil.
func (_u *ResultSnapshotUpdate) SetNillableResultID(v *string) *ResultSnapshotUpdate {
	if v != nil {
		_u.SetResultID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ResultSnapshotUpdate) SetSessionID(v string) *ResultSnapshotUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResultSnapshotUpdate) SetNillableSessionID(v *string) *ResultSnapshotUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *ResultSnapshotUpdate) SetAssessmentID(v string) *ResultSnapshotUpdate {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *ResultSnapshotUpdate) SetNillableAssessmentID(v *string) *ResultSnapshotUpdate {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetTypeCode sets the "type_code" field.
func (_u *ResultSnapshotUpdate) SetTypeCode(v string) *ResultSnapshotUpdate {
	_u.mutation.SetTypeCode(v)
	return _u
}

// SetNillableTypeCode sets the "type_code" field if the given value is not nil.
func (_u *ResultSnapshotUpdate) SetNillableTypeCode(v *string) *ResultSnapshotUpdate {
	if v != nil {
		_u.SetTypeCode(*v)
	}
	return _u
}

// SetFlagged sets the "flagged" field.
func (_u *ResultSnapshotUpdate) SetFlagged(v bool) *ResultSnapshotUpdate {
	_u.mutation.SetFlagged(v)
	return _u
}

// SetNillableFlagged sets the "flagged" field if the given value is not nil.
func (_u *ResultSnapshotUpdate) SetNillableFlagged(v *bool) *ResultSnapshotUpdate {
	if v != nil {
		_u.SetFlagged(*v)
	}
	return _u
}

// SetTakenAt sets the "taken_at" field.
func (_u *ResultSnapshotUpdate) SetTakenAt(v time.Time) *ResultSnapshotUpdate {
	_u.mutation.SetTakenAt(v)
	return _u
}

// SetNillableTakenAt sets the "taken_at" field if the given value is not nil.
func (_u *ResultSnapshotUpdate) SetNillableTakenAt(v *time.Time) *ResultSnapshotUpdate {
	if v != nil {
		_u.SetTakenAt(*v)
	}
	return _u
}

// SetScores sets the "scores" field.
func (_u *ResultSnapshotUpdate) SetScores(v map[string]interface{}) *ResultSnapshotUpdate {
	_u.mutation.SetScores(v)
	return _u
}

// Mutation returns the ResultSnapshotMutation object of the builder.
func (_u *ResultSnapshotUpdate) Mutation() *ResultSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResultSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResultSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultSnapshotUpdate) check() error {
	if v, ok := _u.mutation.ResultID(); ok {
		if err := resultsnapshot.ResultIDValidator(v); err != nil {
			return &ValidationError{Name: "result_id", err: fmt.Errorf(`ent: validator failed for field "ResultSnapshot.result_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := resultsnapshot.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResultSnapshot.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := resultsnapshot.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "ResultSnapshot.assessment_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resultsnapshot.Table, resultsnapshot.Columns, sqlgraph.NewFieldSpec(resultsnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ResultID(); ok {
		_spec.SetField(resultsnapshot.FieldResultID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(resultsnapshot.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(resultsnapshot.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TypeCode(); ok {
		_spec.SetField(resultsnapshot.FieldTypeCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Flagged(); ok {
		_spec.SetField(resultsnapshot.FieldFlagged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TakenAt(); ok {
		_spec.SetField(resultsnapshot.FieldTakenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(resultsnapshot.FieldScores, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resultsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResultSnapshotUpdateOne is the builder for updating a single ResultSnapshot entity.
type ResultSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResultSnapshotMutation
}

// SetResultID sets the "result_id" field.
func (_u *ResultSnapshotUpdateOne) SetResultID(v string) *ResultSnapshotUpdateOne {
	_u.mutation.SetResultID(v)
	return _u
}

// SetNillableResultID sets the "result_id" field if the given value is not nil.
func (_u *ResultSnapshotUpdateOne) SetNillableResultID(v *string) *ResultSnapshotUpdateOne {
	if v != nil {
		_u.SetResultID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ResultSnapshotUpdateOne) SetSessionID(v string) *ResultSnapshotUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResultSnapshotUpdateOne) SetNillableSessionID(v *string) *ResultSnapshotUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *ResultSnapshotUpdateOne) SetAssessmentID(v string) *ResultSnapshotUpdateOne {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *ResultSnapshotUpdateOne) SetNillableAssessmentID(v *string) *ResultSnapshotUpdateOne {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetTypeCode sets the "type_code" field.
func (_u *ResultSnapshotUpdateOne) SetTypeCode(v string) *ResultSnapshotUpdateOne {
	_u.mutation.SetTypeCode(v)
	return _u
}

// SetNillableTypeCode sets the "type_code" field if the given value is not nil.
func (_u *ResultSnapshotUpdateOne) SetNillableTypeCode(v *string) *ResultSnapshotUpdateOne {
	if v != nil {
		_u.SetTypeCode(*v)
	}
	return _u
}

// SetFlagged sets the "flagged" field.
func (_u *ResultSnapshotUpdateOne) SetFlagged(v bool) *ResultSnapshotUpdateOne {
	_u.mutation.SetFlagged(v)
	return _u
}

// SetNillableFlagged sets the "flagged" field if the given value is not nil.
func (_u *ResultSnapshotUpdateOne) SetNillableFlagged(v *bool) *ResultSnapshotUpdateOne {
	if v != nil {
		_u.SetFlagged(*v)
	}
	return _u
}

// SetTakenAt sets the "taken_at" field.
func (_u *ResultSnapshotUpdateOne) SetTakenAt(v time.Time) *ResultSnapshotUpdateOne {
	_u.mutation.SetTakenAt(v)
	return _u
}

// SetNillableTakenAt sets the "taken_at" field if the given value is not nil.
func (_u *ResultSnapshotUpdateOne) SetNillableTakenAt(v *time.Time) *ResultSnapshotUpdateOne {
	if v != nil {
		_u.SetTakenAt(*v)
	}
	return _u
}

// SetScores sets the "scores" field.
func (_u *ResultSnapshotUpdateOne) SetScores(v map[string]interface{}) *ResultSnapshotUpdateOne {
	_u.mutation.SetScores(v)
	return _u
}

// Mutation returns the ResultSnapshotMutation object of the builder.
func (_u *ResultSnapshotUpdateOne) Mutation() *ResultSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResultSnapshotUpdate builder.
func (_u *ResultSnapshotUpdateOne) Where(ps ...predicate.ResultSnapshot) *ResultSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResultSnapshotUpdateOne) Select(field string, fields ...string) *ResultSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResultSnapshot entity.
func (_u *ResultSnapshotUpdateOne) Save(ctx context.Context) (*ResultSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultSnapshotUpdateOne) SaveX(ctx context.Context) *ResultSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResultSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultSnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.ResultID(); ok {
		if err := resultsnapshot.ResultIDValidator(v); err != nil {
			return &ValidationError{Name: "result_id", err: fmt.Errorf(`ent: validator failed for field "ResultSnapshot.result_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := resultsnapshot.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResultSnapshot.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := resultsnapshot.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "ResultSnapshot.assessment_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *ResultSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resultsnapshot.Table, resultsnapshot.Columns, sqlgraph.NewFieldSpec(resultsnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResultSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resultsnapshot.FieldID)
		for _, f := range fields {
			if !resultsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resultsnapshot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ResultID(); ok {
		_spec.SetField(resultsnapshot.FieldResultID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(resultsnapshot.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(resultsnapshot.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TypeCode(); ok {
		_spec.SetField(resultsnapshot.FieldTypeCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Flagged(); ok {
		_spec.SetField(resultsnapshot.FieldFlagged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TakenAt(); ok {
		_spec.SetField(resultsnapshot.FieldTakenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(resultsnapshot.FieldScores, field.TypeJSON, value)
	}
	_node = &ResultSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resultsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
