// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mirit/psyche/ent/resultsnapshot"
)

// ResultSnapshotCreate is the builder for creating a ResultSnapshot entity.
type ResultSnapshotCreate struct {
	config
	mutation *ResultSnapshotMutation
	hooks    []Hook
}

// SetResultID sets the "result_id" field.
func (_c *ResultSnapshotCreate) SetResultID(v string) *ResultSnapshotCreate {
	_c.mutation.SetResultID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ResultSnapshotCreate) SetSessionID(v string) *ResultSnapshotCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetAssessmentID sets the "assessment_id" field.
func (_c *ResultSnapshotCreate) SetAssessmentID(v string) *ResultSnapshotCreate {
	_c.mutation.SetAssessmentID(v)
	return _c
}

// SetTypeCode sets the "type_code" field.
func (_c *ResultSnapshotCreate) SetTypeCode(v string) *ResultSnapshotCreate {
	_c.mutation.SetTypeCode(v)
	return _c
}

// SetNillableTypeCode sets the "type_code" field if the given value is not nil.
func (_c *ResultSnapshotCreate) SetNillableTypeCode(v *string) *ResultSnapshotCreate {
	if v != nil {
		_c.SetTypeCode(*v)
	}
	return _c
}

// SetFlagged sets the "flagged" field.
func (_c *ResultSnapshotCreate) SetFlagged(v bool) *ResultSnapshotCreate {
	_c.mutation.SetFlagged(v)
	return _c
}

// SetNillableFlagged sets the "flagged" field if the given value is not nil.
func (_c *ResultSnapshotCreate) SetNillableFlagged(v *bool) *ResultSnapshotCreate {
	if v != nil {
		_c.SetFlagged(*v)
	}
	return _c
}

// SetTakenAt sets the "taken_at" field.
func (_c *ResultSnapshotCreate) SetTakenAt(v time.Time) *ResultSnapshotCreate {
	_c.mutation.SetTakenAt(v)
	return _c
}

// SetNillableTakenAt sets the "taken_at" field if the given value is not nil.
func (_c *ResultSnapshotCreate) SetNillableTakenAt(v *time.Time) *ResultSnapshotCreate {
	if v != nil {
		_c.SetTakenAt(*v)
	}
	return _c
}

// SetScores sets the "scores" field.
func (_c *ResultSnapshotCreate) SetScores(v map[string]interface{}) *ResultSnapshotCreate {
	_c.mutation.SetScores(v)
	return _c
}

// Mutation returns the ResultSnapshotMutation object of the builder.
func (_c *ResultSnapshotCreate) Mutation() *ResultSnapshotMutation {
	return _c.mutation
}

// Save creates the ResultSnapshot in the database.
func (_c *ResultSnapshotCreate) Save(ctx context.Context) (*ResultSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResultSnapshotCreate) SaveX(ctx context.Context) *ResultSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResultSnapshotCreate) defaults() {
	if _, ok := _c.mutation.TypeCode(); !ok {
		v := resultsnapshot.DefaultTypeCode
		_c.mutation.SetTypeCode(v)
	}
	if _, ok := _c.mutation.Flagged(); !ok {
		v := resultsnapshot.DefaultFlagged
		_c.mutation.SetFlagged(v)
	}
	if _, ok := _c.mutation.TakenAt(); !ok {
		v := resultsnapshot.DefaultTakenAt()
		_c.mutation.SetTakenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResultSnapshotCreate) check() error {
	if _, ok := _c.mutation.ResultID(); !ok {
		return &ValidationError{Name: "result_id", err: errors.New(`ent: missing required field "ResultSnapshot.result_id"`)}
	}
	if v, ok := _c.mutation.ResultID(); ok {
		if err := resultsnapshot.ResultIDValidator(v); err != nil {
			return &ValidationError{Name: "result_id", err: fmt.Errorf(`ent: validator failed for field "ResultSnapshot.result_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ResultSnapshot.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := resultsnapshot.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResultSnapshot.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssessmentID(); !ok {
		return &ValidationError{Name: "assessment_id", err: errors.New(`ent: missing required field "ResultSnapshot.assessment_id"`)}
	}
	if v, ok := _c.mutation.AssessmentID(); ok {
		if err := resultsnapshot.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "ResultSnapshot.assessment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TypeCode(); !ok {
		return &ValidationError{Name: "type_code", err: errors.New(`ent: missing required field "ResultSnapshot.type_code"`)}
	}
	if _, ok := _c.mutation.Flagged(); !ok {
		return &ValidationError{Name: "flagged", err: errors.New(`ent: missing required field "ResultSnapshot.flagged"`)}
	}
	if _, ok := _c.mutation.TakenAt(); !ok {
		return &ValidationError{Name: "taken_at", err: errors.New(`ent: missing required field "ResultSnapshot.taken_at"`)}
	}
	if _, ok := _c.mutation.Scores(); !ok {
		return &ValidationError{Name: "scores", err: errors.New(`ent: missing required field "ResultSnapshot.scores"`)}
	}
	return nil
}

func (_c *ResultSnapshotCreate) sqlSave(ctx context.Context) (*ResultSnapshot, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResultSnapshotCreate) createSpec() (*ResultSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &ResultSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(resultsnapshot.Table, sqlgraph.NewFieldSpec(resultsnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ResultID(); ok {
		_spec.SetField(resultsnapshot.FieldResultID, field.TypeString, value)
		_node.ResultID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(resultsnapshot.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.AssessmentID(); ok {
		_spec.SetField(resultsnapshot.FieldAssessmentID, field.TypeString, value)
		_node.AssessmentID = value
	}
	if value, ok := _c.mutation.TypeCode(); ok {
		_spec.SetField(resultsnapshot.FieldTypeCode, field.TypeString, value)
		_node.TypeCode = value
	}
	if value, ok := _c.mutation.Flagged(); ok {
		_spec.SetField(resultsnapshot.FieldFlagged, field.TypeBool, value)
		_node.Flagged = value
	}
	if value, ok := _c.mutation.TakenAt(); ok {
		_spec.SetField(resultsnapshot.FieldTakenAt, field.TypeTime, value)
		_node.TakenAt = value
	}
	if value, ok := _c.mutation.Scores(); ok {
		_spec.SetField(resultsnapshot.FieldScores, field.TypeJSON, value)
		_node.Scores = value
	}
	return _node, _spec
}

// ResultSnapshotCreateBulk is the builder for creating many ResultSnapshot entities in bulk.
type ResultSnapshotCreateBulk struct {
	config
	err      error
	builders []*ResultSnapshotCreate
}

// Save creates the ResultSnapshot entities in the database.
func (_c *ResultSnapshotCreateBulk) Save(ctx context.Context) ([]*ResultSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResultSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResultSnapshotMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ResultSnapshotCreateBulk) SaveX(ctx context.Context) []*ResultSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
