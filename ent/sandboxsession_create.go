// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/astraforge/astraforge/ent/artifact"
	"github.com/astraforge/astraforge/ent/event"
	"github.com/astraforge/astraforge/ent/sandboxsession"
	"github.com/astraforge/astraforge/ent/snapshot"
)

// SandboxSessionCreate is the builder for creating a SandboxSession entity.
type SandboxSessionCreate struct {
	config
	mutation *SandboxSessionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *SandboxSessionCreate) SetUserID(v string) *SandboxSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *SandboxSessionCreate) SetWorkspaceID(v string) *SandboxSessionCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetBackend sets the "backend" field.
func (_c *SandboxSessionCreate) SetBackend(v sandboxsession.Backend) *SandboxSessionCreate {
	_c.mutation.SetBackend(v)
	return _c
}

// SetImage sets the "image" field.
func (_c *SandboxSessionCreate) SetImage(v string) *SandboxSessionCreate {
	_c.mutation.SetImage(v)
	return _c
}

// SetCPULimit sets the "cpu_limit" field.
func (_c *SandboxSessionCreate) SetCPULimit(v string) *SandboxSessionCreate {
	_c.mutation.SetCPULimit(v)
	return _c
}

// SetNillableCPULimit sets the "cpu_limit" field if the given value is not nil.
func (_c *SandboxSessionCreate) SetNillableCPULimit(v *string) *SandboxSessionCreate {
	if v != nil {
		_c.SetCPULimit(*v)
	}
	return _c
}

// SetMemoryLimit sets the "memory_limit" field.
func (_c *SandboxSessionCreate) SetMemoryLimit(v string) *SandboxSessionCreate {
	_c.mutation.SetMemoryLimit(v)
	return _c
}

// SetNillableMemoryLimit sets the "memory_limit" field if the given value is not nil.
func (_c *SandboxSessionCreate) SetNillableMemoryLimit(v *string) *SandboxSessionCreate {
	if v != nil {
		_c.SetMemoryLimit(*v)
	}
	return _c
}

// SetEphemeralStorage sets the "ephemeral_storage" field.
func (_c *SandboxSessionCreate) SetEphemeralStorage(v string) *SandboxSessionCreate {
	_c.mutation.SetEphemeralStorage(v)
	return _c
}

// SetNillableEphemeralStorage sets the "ephemeral_storage" field if the given value is not nil.
func (_c *SandboxSessionCreate) SetNillableEphemeralStorage(v *string) *SandboxSessionCreate {
	if v != nil {
		_c.SetEphemeralStorage(*v)
	}
	return _c
}

// SetNetworkPolicy sets the "network_policy" field.
func (_c *SandboxSessionCreate) SetNetworkPolicy(v string) *SandboxSessionCreate {
	_c.mutation.SetNetworkPolicy(v)
	return _c
}

// SetNillableNetworkPolicy sets the "network_policy" field if the given value is not nil.
func (_c *SandboxSessionCreate) SetNillableNetworkPolicy(v *string) *SandboxSessionCreate {
	if v != nil {
		_c.SetNetworkPolicy(*v)
	}
	return _c
}

// SetSecurityProfile sets the "security_profile" field.
func (_c *SandboxSessionCreate) SetSecurityProfile(v string) *SandboxSessionCreate {
	_c.mutation.SetSecurityProfile(v)
	return _c
}

// SetNillableSecurityProfile sets the "security_profile" field if the given value is not nil.
func (_c *SandboxSessionCreate) SetNillableSecurityProfile(v *string) *SandboxSessionCreate {
	if v != nil {
		_c.SetSecurityProfile(*v)
	}
	return _c
}

// SetBackendRef sets the "backend_ref" field.
func (_c *SandboxSessionCreate) SetBackendRef(v string) *SandboxSessionCreate {
	_c.mutation.SetBackendRef(v)
	return _c
}

// SetNillableBackendRef sets the "backend_ref" field if the given value is not nil.
func (_c *SandboxSessionCreate) SetNillableBackendRef(v *string) *SandboxSessionCreate {
	if v != nil {
		_c.SetBackendRef(*v)
	}
	return _c
}

// SetControlEndpoint sets the "control_endpoint" field.
func (_c *SandboxSessionCreate) SetControlEndpoint(v string) *SandboxSessionCreate {
	_c.mutation.SetControlEndpoint(v)
	return _c
}

// SetNillableControlEndpoint sets the "control_endpoint" field if the given value is not nil.
func (_c *SandboxSessionCreate) SetNillableControlEndpoint(v *string) *SandboxSessionCreate {
	if v != nil {
		_c.SetControlEndpoint(*v)
	}
	return _c
}

// SetWorkspacePath sets the "workspace_path" field.
func (_c *SandboxSessionCreate) SetWorkspacePath(v string) *SandboxSessionCreate {
	_c.mutation.SetWorkspacePath(v)
	return _c
}

// SetNillableWorkspacePath sets the "workspace_path" field if the given value is not nil.
func (_c *SandboxSessionCreate) SetNillableWorkspacePath(v *string) *SandboxSessionCreate {
	if v != nil {
		_c.SetWorkspacePath(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SandboxSessionCreate) SetStatus(v sandboxsession.Status) *SandboxSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SandboxSessionCreate) SetNillableStatus(v *sandboxsession.Status) *SandboxSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SandboxSessionCreate) SetCreatedAt(v time.Time) *SandboxSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SandboxSessionCreate) SetNillableCreatedAt(v *time.Time) *SandboxSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_c *SandboxSessionCreate) SetLastActivityAt(v time.Time) *SandboxSessionCreate {
	_c.mutation.SetLastActivityAt(v)
	return _c
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_c *SandboxSessionCreate) SetNillableLastActivityAt(v *time.Time) *SandboxSessionCreate {
	if v != nil {
		_c.SetLastActivityAt(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *SandboxSessionCreate) SetLastHeartbeatAt(v time.Time) *SandboxSessionCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *SandboxSessionCreate) SetNillableLastHeartbeatAt(v *time.Time) *SandboxSessionCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *SandboxSessionCreate) SetExpiresAt(v time.Time) *SandboxSessionCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *SandboxSessionCreate) SetNillableExpiresAt(v *time.Time) *SandboxSessionCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetIdleTimeoutSec sets the "idle_timeout_sec" field.
func (_c *SandboxSessionCreate) SetIdleTimeoutSec(v int) *SandboxSessionCreate {
	_c.mutation.SetIdleTimeoutSec(v)
	return _c
}

// SetNillableIdleTimeoutSec sets the "idle_timeout_sec" field if the given value is not nil.
func (_c *SandboxSessionCreate) SetNillableIdleTimeoutSec(v *int) *SandboxSessionCreate {
	if v != nil {
		_c.SetIdleTimeoutSec(*v)
	}
	return _c
}

// SetMaxLifetimeSec sets the "max_lifetime_sec" field.
func (_c *SandboxSessionCreate) SetMaxLifetimeSec(v int) *SandboxSessionCreate {
	_c.mutation.SetMaxLifetimeSec(v)
	return _c
}

// SetNillableMaxLifetimeSec sets the "max_lifetime_sec" field if the given value is not nil.
func (_c *SandboxSessionCreate) SetNillableMaxLifetimeSec(v *int) *SandboxSessionCreate {
	if v != nil {
		_c.SetMaxLifetimeSec(*v)
	}
	return _c
}

// SetRestoreSnapshotID sets the "restore_snapshot_id" field.
func (_c *SandboxSessionCreate) SetRestoreSnapshotID(v string) *SandboxSessionCreate {
	_c.mutation.SetRestoreSnapshotID(v)
	return _c
}

// SetNillableRestoreSnapshotID sets the "restore_snapshot_id" field if the given value is not nil.
func (_c *SandboxSessionCreate) SetNillableRestoreSnapshotID(v *string) *SandboxSessionCreate {
	if v != nil {
		_c.SetRestoreSnapshotID(*v)
	}
	return _c
}

// SetCPUSeconds sets the "cpu_seconds" field.
func (_c *SandboxSessionCreate) SetCPUSeconds(v float64) *SandboxSessionCreate {
	_c.mutation.SetCPUSeconds(v)
	return _c
}

// SetNillableCPUSeconds sets the "cpu_seconds" field if the given value is not nil.
func (_c *SandboxSessionCreate) SetNillableCPUSeconds(v *float64) *SandboxSessionCreate {
	if v != nil {
		_c.SetCPUSeconds(*v)
	}
	return _c
}

// SetStorageBytes sets the "storage_bytes" field.
func (_c *SandboxSessionCreate) SetStorageBytes(v int64) *SandboxSessionCreate {
	_c.mutation.SetStorageBytes(v)
	return _c
}

// SetNillableStorageBytes sets the "storage_bytes" field if the given value is not nil.
func (_c *SandboxSessionCreate) SetNillableStorageBytes(v *int64) *SandboxSessionCreate {
	if v != nil {
		_c.SetStorageBytes(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *SandboxSessionCreate) SetErrorMessage(v string) *SandboxSessionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *SandboxSessionCreate) SetNillableErrorMessage(v *string) *SandboxSessionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *SandboxSessionCreate) SetMetadata(v map[string]interface{}) *SandboxSessionCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *SandboxSessionCreate) SetID(v string) *SandboxSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddSnapshotIDs adds the "snapshots" edge to the Snapshot entity by IDs.
func (_c *SandboxSessionCreate) AddSnapshotIDs(ids ...string) *SandboxSessionCreate {
	_c.mutation.AddSnapshotIDs(ids...)
	return _c
}

// AddSnapshots adds the "snapshots" edges to the Snapshot entity.
func (_c *SandboxSessionCreate) AddSnapshots(v ...*Snapshot) *SandboxSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSnapshotIDs(ids...)
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by IDs.
func (_c *SandboxSessionCreate) AddArtifactIDs(ids ...string) *SandboxSessionCreate {
	_c.mutation.AddArtifactIDs(ids...)
	return _c
}

// AddArtifacts adds the "artifacts" edges to the Artifact entity.
func (_c *SandboxSessionCreate) AddArtifacts(v ...*Artifact) *SandboxSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddArtifactIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *SandboxSessionCreate) AddEventIDs(ids ...int) *SandboxSessionCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *SandboxSessionCreate) AddEvents(v ...*Event) *SandboxSessionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the SandboxSessionMutation object of the builder.
func (_c *SandboxSessionCreate) Mutation() *SandboxSessionMutation {
	return _c.mutation
}

// Save creates the SandboxSession in the database.
func (_c *SandboxSessionCreate) Save(ctx context.Context) (*SandboxSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SandboxSessionCreate) SaveX(ctx context.Context) *SandboxSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SandboxSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SandboxSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SandboxSessionCreate) defaults() {
	if _, ok := _c.mutation.WorkspacePath(); !ok {
		v := sandboxsession.DefaultWorkspacePath
		_c.mutation.SetWorkspacePath(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := sandboxsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sandboxsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.LastActivityAt(); !ok {
		v := sandboxsession.DefaultLastActivityAt()
		_c.mutation.SetLastActivityAt(v)
	}
	if _, ok := _c.mutation.LastHeartbeatAt(); !ok {
		v := sandboxsession.DefaultLastHeartbeatAt()
		_c.mutation.SetLastHeartbeatAt(v)
	}
	if _, ok := _c.mutation.CPUSeconds(); !ok {
		v := sandboxsession.DefaultCPUSeconds
		_c.mutation.SetCPUSeconds(v)
	}
	if _, ok := _c.mutation.StorageBytes(); !ok {
		v := sandboxsession.DefaultStorageBytes
		_c.mutation.SetStorageBytes(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SandboxSessionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SandboxSession.user_id"`)}
	}
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "SandboxSession.workspace_id"`)}
	}
	if _, ok := _c.mutation.Backend(); !ok {
		return &ValidationError{Name: "backend", err: errors.New(`ent: missing required field "SandboxSession.backend"`)}
	}
	if v, ok := _c.mutation.Backend(); ok {
		if err := sandboxsession.BackendValidator(v); err != nil {
			return &ValidationError{Name: "backend", err: fmt.Errorf(`ent: validator failed for field "SandboxSession.backend": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Image(); !ok {
		return &ValidationError{Name: "image", err: errors.New(`ent: missing required field "SandboxSession.image"`)}
	}
	if _, ok := _c.mutation.WorkspacePath(); !ok {
		return &ValidationError{Name: "workspace_path", err: errors.New(`ent: missing required field "SandboxSession.workspace_path"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SandboxSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := sandboxsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SandboxSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SandboxSession.created_at"`)}
	}
	if _, ok := _c.mutation.LastActivityAt(); !ok {
		return &ValidationError{Name: "last_activity_at", err: errors.New(`ent: missing required field "SandboxSession.last_activity_at"`)}
	}
	if _, ok := _c.mutation.LastHeartbeatAt(); !ok {
		return &ValidationError{Name: "last_heartbeat_at", err: errors.New(`ent: missing required field "SandboxSession.last_heartbeat_at"`)}
	}
	if _, ok := _c.mutation.CPUSeconds(); !ok {
		return &ValidationError{Name: "cpu_seconds", err: errors.New(`ent: missing required field "SandboxSession.cpu_seconds"`)}
	}
	if _, ok := _c.mutation.StorageBytes(); !ok {
		return &ValidationError{Name: "storage_bytes", err: errors.New(`ent: missing required field "SandboxSession.storage_bytes"`)}
	}
	return nil
}

func (_c *SandboxSessionCreate) sqlSave(ctx context.Context) (*SandboxSession, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected SandboxSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SandboxSessionCreate) createSpec() (*SandboxSession, *sqlgraph.CreateSpec) {
	var (
		_node = &SandboxSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sandboxsession.Table, sqlgraph.NewFieldSpec(sandboxsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(sandboxsession.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(sandboxsession.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.Backend(); ok {
		_spec.SetField(sandboxsession.FieldBackend, field.TypeEnum, value)
		_node.Backend = value
	}
	if value, ok := _c.mutation.Image(); ok {
		_spec.SetField(sandboxsession.FieldImage, field.TypeString, value)
		_node.Image = value
	}
	if value, ok := _c.mutation.CPULimit(); ok {
		_spec.SetField(sandboxsession.FieldCPULimit, field.TypeString, value)
		_node.CPULimit = value
	}
	if value, ok := _c.mutation.MemoryLimit(); ok {
		_spec.SetField(sandboxsession.FieldMemoryLimit, field.TypeString, value)
		_node.MemoryLimit = value
	}
	if value, ok := _c.mutation.EphemeralStorage(); ok {
		_spec.SetField(sandboxsession.FieldEphemeralStorage, field.TypeString, value)
		_node.EphemeralStorage = value
	}
	if value, ok := _c.mutation.NetworkPolicy(); ok {
		_spec.SetField(sandboxsession.FieldNetworkPolicy, field.TypeString, value)
		_node.NetworkPolicy = value
	}
	if value, ok := _c.mutation.SecurityProfile(); ok {
		_spec.SetField(sandboxsession.FieldSecurityProfile, field.TypeString, value)
		_node.SecurityProfile = value
	}
	if value, ok := _c.mutation.BackendRef(); ok {
		_spec.SetField(sandboxsession.FieldBackendRef, field.TypeString, value)
		_node.BackendRef = &value
	}
	if value, ok := _c.mutation.ControlEndpoint(); ok {
		_spec.SetField(sandboxsession.FieldControlEndpoint, field.TypeString, value)
		_node.ControlEndpoint = &value
	}
	if value, ok := _c.mutation.WorkspacePath(); ok {
		_spec.SetField(sandboxsession.FieldWorkspacePath, field.TypeString, value)
		_node.WorkspacePath = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(sandboxsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sandboxsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastActivityAt(); ok {
		_spec.SetField(sandboxsession.FieldLastActivityAt, field.TypeTime, value)
		_node.LastActivityAt = value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(sandboxsession.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(sandboxsession.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.IdleTimeoutSec(); ok {
		_spec.SetField(sandboxsession.FieldIdleTimeoutSec, field.TypeInt, value)
		_node.IdleTimeoutSec = &value
	}
	if value, ok := _c.mutation.MaxLifetimeSec(); ok {
		_spec.SetField(sandboxsession.FieldMaxLifetimeSec, field.TypeInt, value)
		_node.MaxLifetimeSec = &value
	}
	if value, ok := _c.mutation.RestoreSnapshotID(); ok {
		_spec.SetField(sandboxsession.FieldRestoreSnapshotID, field.TypeString, value)
		_node.RestoreSnapshotID = &value
	}
	if value, ok := _c.mutation.CPUSeconds(); ok {
		_spec.SetField(sandboxsession.FieldCPUSeconds, field.TypeFloat64, value)
		_node.CPUSeconds = value
	}
	if value, ok := _c.mutation.StorageBytes(); ok {
		_spec.SetField(sandboxsession.FieldStorageBytes, field.TypeInt64, value)
		_node.StorageBytes = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(sandboxsession.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(sandboxsession.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if nodes := _c.mutation.SnapshotsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sandboxsession.SnapshotsTable,
			Columns: []string{sandboxsession.SnapshotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(snapshot.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ArtifactsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sandboxsession.ArtifactsTable,
			Columns: []string{sandboxsession.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sandboxsession.EventsTable,
			Columns: []string{sandboxsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SandboxSessionCreateBulk is the builder for creating many SandboxSession entities in bulk.
type SandboxSessionCreateBulk struct {
	config
	err      error
	builders []*SandboxSessionCreate
}

// Save creates the SandboxSession entities in the database.
func (_c *SandboxSessionCreateBulk) Save(ctx context.Context) ([]*SandboxSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SandboxSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SandboxSessionMutation)
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
func (_c *SandboxSessionCreateBulk) SaveX(ctx context.Context) []*SandboxSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SandboxSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SandboxSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
