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
	"github.com/astraforge/astraforge/ent/predicate"
	"github.com/astraforge/astraforge/ent/quotaledger"
)

// QuotaLedgerUpdate is the builder for updating QuotaLedger entities.
type QuotaLedgerUpdate struct {
	config
	hooks    []Hook
	mutation *QuotaLedgerMutation
}

// Where appends a list predicates to the QuotaLedgerUpdate builder.
func (_u *QuotaLedgerUpdate) Where(ps ...predicate.QuotaLedger) *QuotaLedgerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequestsUsed sets the "requests_used" field.
func (_u *QuotaLedgerUpdate) SetRequestsUsed(v int) *QuotaLedgerUpdate {
	_u.mutation.ResetRequestsUsed()
	_u.mutation.SetRequestsUsed(v)
	return _u
}

// SetNillableRequestsUsed sets the "requests_used" field if the given value is not nil.
func (_u *QuotaLedgerUpdate) SetNillableRequestsUsed(v *int) *QuotaLedgerUpdate {
	if v != nil {
		_u.SetRequestsUsed(*v)
	}
	return _u
}

// AddRequestsUsed adds value to the "requests_used" field.
func (_u *QuotaLedgerUpdate) AddRequestsUsed(v int) *QuotaLedgerUpdate {
	_u.mutation.AddRequestsUsed(v)
	return _u
}

// SetSandboxesCreated sets the "sandboxes_created" field.
func (_u *QuotaLedgerUpdate) SetSandboxesCreated(v int) *QuotaLedgerUpdate {
	_u.mutation.ResetSandboxesCreated()
	_u.mutation.SetSandboxesCreated(v)
	return _u
}

// SetNillableSandboxesCreated sets the "sandboxes_created" field if the given value is not nil.
func (_u *QuotaLedgerUpdate) SetNillableSandboxesCreated(v *int) *QuotaLedgerUpdate {
	if v != nil {
		_u.SetSandboxesCreated(*v)
	}
	return _u
}

// AddSandboxesCreated adds value to the "sandboxes_created" field.
func (_u *QuotaLedgerUpdate) AddSandboxesCreated(v int) *QuotaLedgerUpdate {
	_u.mutation.AddSandboxesCreated(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuotaLedgerUpdate) SetUpdatedAt(v time.Time) *QuotaLedgerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QuotaLedgerMutation object of the builder.
func (_u *QuotaLedgerUpdate) Mutation() *QuotaLedgerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuotaLedgerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuotaLedgerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuotaLedgerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuotaLedgerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuotaLedgerUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := quotaledger.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *QuotaLedgerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(quotaledger.Table, quotaledger.Columns, sqlgraph.NewFieldSpec(quotaledger.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RequestsUsed(); ok {
		_spec.SetField(quotaledger.FieldRequestsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestsUsed(); ok {
		_spec.AddField(quotaledger.FieldRequestsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SandboxesCreated(); ok {
		_spec.SetField(quotaledger.FieldSandboxesCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSandboxesCreated(); ok {
		_spec.AddField(quotaledger.FieldSandboxesCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(quotaledger.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quotaledger.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuotaLedgerUpdateOne is the builder for updating a single QuotaLedger entity.
type QuotaLedgerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuotaLedgerMutation
}

// SetRequestsUsed sets the "requests_used" field.
func (_u *QuotaLedgerUpdateOne) SetRequestsUsed(v int) *QuotaLedgerUpdateOne {
	_u.mutation.ResetRequestsUsed()
	_u.mutation.SetRequestsUsed(v)
	return _u
}

// SetNillableRequestsUsed sets the "requests_used" field if the given value is not nil.
func (_u *QuotaLedgerUpdateOne) SetNillableRequestsUsed(v *int) *QuotaLedgerUpdateOne {
	if v != nil {
		_u.SetRequestsUsed(*v)
	}
	return _u
}

// AddRequestsUsed adds value to the "requests_used" field.
func (_u *QuotaLedgerUpdateOne) AddRequestsUsed(v int) *QuotaLedgerUpdateOne {
	_u.mutation.AddRequestsUsed(v)
	return _u
}

// SetSandboxesCreated sets the "sandboxes_created" field.
func (_u *QuotaLedgerUpdateOne) SetSandboxesCreated(v int) *QuotaLedgerUpdateOne {
	_u.mutation.ResetSandboxesCreated()
	_u.mutation.SetSandboxesCreated(v)
	return _u
}

// SetNillableSandboxesCreated sets the "sandboxes_created" field if the given value is not nil.
func (_u *QuotaLedgerUpdateOne) SetNillableSandboxesCreated(v *int) *QuotaLedgerUpdateOne {
	if v != nil {
		_u.SetSandboxesCreated(*v)
	}
	return _u
}

// AddSandboxesCreated adds value to the "sandboxes_created" field.
func (_u *QuotaLedgerUpdateOne) AddSandboxesCreated(v int) *QuotaLedgerUpdateOne {
	_u.mutation.AddSandboxesCreated(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuotaLedgerUpdateOne) SetUpdatedAt(v time.Time) *QuotaLedgerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QuotaLedgerMutation object of the builder.
func (_u *QuotaLedgerUpdateOne) Mutation() *QuotaLedgerMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuotaLedgerUpdate builder.
func (_u *QuotaLedgerUpdateOne) Where(ps ...predicate.QuotaLedger) *QuotaLedgerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuotaLedgerUpdateOne) Select(field string, fields ...string) *QuotaLedgerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuotaLedger entity.
func (_u *QuotaLedgerUpdateOne) Save(ctx context.Context) (*QuotaLedger, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuotaLedgerUpdateOne) SaveX(ctx context.Context) *QuotaLedger {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuotaLedgerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuotaLedgerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuotaLedgerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := quotaledger.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *QuotaLedgerUpdateOne) sqlSave(ctx context.Context) (_node *QuotaLedger, err error) {
	_spec := sqlgraph.NewUpdateSpec(quotaledger.Table, quotaledger.Columns, sqlgraph.NewFieldSpec(quotaledger.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuotaLedger.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quotaledger.FieldID)
		for _, f := range fields {
			if !quotaledger.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quotaledger.FieldID {
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
	if value, ok := _u.mutation.RequestsUsed(); ok {
		_spec.SetField(quotaledger.FieldRequestsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestsUsed(); ok {
		_spec.AddField(quotaledger.FieldRequestsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SandboxesCreated(); ok {
		_spec.SetField(quotaledger.FieldSandboxesCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSandboxesCreated(); ok {
		_spec.AddField(quotaledger.FieldSandboxesCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(quotaledger.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &QuotaLedger{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quotaledger.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
