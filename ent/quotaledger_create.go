// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/astraforge/astraforge/ent/quotaledger"
)

// QuotaLedgerCreate is the builder for creating a QuotaLedger entity.
type QuotaLedgerCreate struct {
	config
	mutation *QuotaLedgerMutation
	hooks    []Hook
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *QuotaLedgerCreate) SetWorkspaceID(v string) *QuotaLedgerCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetPeriod sets the "period" field.
func (_c *QuotaLedgerCreate) SetPeriod(v string) *QuotaLedgerCreate {
	_c.mutation.SetPeriod(v)
	return _c
}

// SetRequestsUsed sets the "requests_used" field.
func (_c *QuotaLedgerCreate) SetRequestsUsed(v int) *QuotaLedgerCreate {
	_c.mutation.SetRequestsUsed(v)
	return _c
}

// SetNillableRequestsUsed sets the "requests_used" field if the given value is not nil.
func (_c *QuotaLedgerCreate) SetNillableRequestsUsed(v *int) *QuotaLedgerCreate {
	if v != nil {
		_c.SetRequestsUsed(*v)
	}
	return _c
}

// SetSandboxesCreated sets the "sandboxes_created" field.
func (_c *QuotaLedgerCreate) SetSandboxesCreated(v int) *QuotaLedgerCreate {
	_c.mutation.SetSandboxesCreated(v)
	return _c
}

// SetNillableSandboxesCreated sets the "sandboxes_created" field if the given value is not nil.
func (_c *QuotaLedgerCreate) SetNillableSandboxesCreated(v *int) *QuotaLedgerCreate {
	if v != nil {
		_c.SetSandboxesCreated(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QuotaLedgerCreate) SetUpdatedAt(v time.Time) *QuotaLedgerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QuotaLedgerCreate) SetNillableUpdatedAt(v *time.Time) *QuotaLedgerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the QuotaLedgerMutation object of the builder.
func (_c *QuotaLedgerCreate) Mutation() *QuotaLedgerMutation {
	return _c.mutation
}

// Save creates the QuotaLedger in the database.
func (_c *QuotaLedgerCreate) Save(ctx context.Context) (*QuotaLedger, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuotaLedgerCreate) SaveX(ctx context.Context) *QuotaLedger {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuotaLedgerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuotaLedgerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuotaLedgerCreate) defaults() {
	if _, ok := _c.mutation.RequestsUsed(); !ok {
		v := quotaledger.DefaultRequestsUsed
		_c.mutation.SetRequestsUsed(v)
	}
	if _, ok := _c.mutation.SandboxesCreated(); !ok {
		v := quotaledger.DefaultSandboxesCreated
		_c.mutation.SetSandboxesCreated(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := quotaledger.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuotaLedgerCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "QuotaLedger.workspace_id"`)}
	}
	if _, ok := _c.mutation.Period(); !ok {
		return &ValidationError{Name: "period", err: errors.New(`ent: missing required field "QuotaLedger.period"`)}
	}
	if _, ok := _c.mutation.RequestsUsed(); !ok {
		return &ValidationError{Name: "requests_used", err: errors.New(`ent: missing required field "QuotaLedger.requests_used"`)}
	}
	if _, ok := _c.mutation.SandboxesCreated(); !ok {
		return &ValidationError{Name: "sandboxes_created", err: errors.New(`ent: missing required field "QuotaLedger.sandboxes_created"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "QuotaLedger.updated_at"`)}
	}
	return nil
}

func (_c *QuotaLedgerCreate) sqlSave(ctx context.Context) (*QuotaLedger, error) {
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

func (_c *QuotaLedgerCreate) createSpec() (*QuotaLedger, *sqlgraph.CreateSpec) {
	var (
		_node = &QuotaLedger{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quotaledger.Table, sqlgraph.NewFieldSpec(quotaledger.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(quotaledger.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.Period(); ok {
		_spec.SetField(quotaledger.FieldPeriod, field.TypeString, value)
		_node.Period = value
	}
	if value, ok := _c.mutation.RequestsUsed(); ok {
		_spec.SetField(quotaledger.FieldRequestsUsed, field.TypeInt, value)
		_node.RequestsUsed = value
	}
	if value, ok := _c.mutation.SandboxesCreated(); ok {
		_spec.SetField(quotaledger.FieldSandboxesCreated, field.TypeInt, value)
		_node.SandboxesCreated = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(quotaledger.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// QuotaLedgerCreateBulk is the builder for creating many QuotaLedger entities in bulk.
type QuotaLedgerCreateBulk struct {
	config
	err      error
	builders []*QuotaLedgerCreate
}

// Save creates the QuotaLedger entities in the database.
func (_c *QuotaLedgerCreateBulk) Save(ctx context.Context) ([]*QuotaLedger, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuotaLedger, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuotaLedgerMutation)
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
func (_c *QuotaLedgerCreateBulk) SaveX(ctx context.Context) []*QuotaLedger {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuotaLedgerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuotaLedgerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
