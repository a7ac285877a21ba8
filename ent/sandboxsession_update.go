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
	"github.com/astraforge/astraforge/ent/artifact"
	"github.com/astraforge/astraforge/ent/event"
	"github.com/astraforge/astraforge/ent/predicate"
	"github.com/astraforge/astraforge/ent/sandboxsession"
	"github.com/astraforge/astraforge/ent/snapshot"
)

// SandboxSessionUpdate is the builder for updating SandboxSession entities.
type SandboxSessionUpdate struct {
	config
	hooks    []Hook
	mutation *SandboxSessionMutation
}

// Where appends a list predicates to the SandboxSessionUpdate builder.
func (_u *SandboxSessionUpdate) Where(ps ...predicate.SandboxSession) *SandboxSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCPULimit sets the "cpu_limit" field.
func (_u *SandboxSessionUpdate) SetCPULimit(v string) *SandboxSessionUpdate {
	_u.mutation.SetCPULimit(v)
	return _u
}

// SetNillableCPULimit sets the "cpu_limit" field if the given value is not nil.
func (_u *SandboxSessionUpdate) SetNillableCPULimit(v *string) *SandboxSessionUpdate {
	if v != nil {
		_u.SetCPULimit(*v)
	}
	return _u
}

// ClearCPULimit clears the value of the "cpu_limit" field.
func (_u *SandboxSessionUpdate) ClearCPULimit() *SandboxSessionUpdate {
	_u.mutation.ClearCPULimit()
	return _u
}

// SetMemoryLimit sets the "memory_limit" field.
func (_u *SandboxSessionUpdate) SetMemoryLimit(v string) *SandboxSessionUpdate {
	_u.mutation.SetMemoryLimit(v)
	return _u
}

// SetNillableMemoryLimit sets the "memory_limit" field if the given value is not nil.
func (_u *SandboxSessionUpdate) SetNillableMemoryLimit(v *string) *SandboxSessionUpdate {
	if v != nil {
		_u.SetMemoryLimit(*v)
	}
	return _u
}

// ClearMemoryLimit clears the value of the "memory_limit" field.
func (_u *SandboxSessionUpdate) ClearMemoryLimit() *SandboxSessionUpdate {
	_u.mutation.ClearMemoryLimit()
	return _u
}

// SetEphemeralStorage sets the "ephemeral_storage" field.
func (_u *SandboxSessionUpdate) SetEphemeralStorage(v string) *SandboxSessionUpdate {
	_u.mutation.SetEphemeralStorage(v)
	return _u
}

// SetNillableEphemeralStorage sets the "ephemeral_storage" field if the given value is not nil.
func (_u *SandboxSessionUpdate) SetNillableEphemeralStorage(v *string) *SandboxSessionUpdate {
	if v != nil {
		_u.SetEphemeralStorage(*v)
	}
	return _u
}

// ClearEphemeralStorage clears the value of the "ephemeral_storage" field.
func (_u *SandboxSessionUpdate) ClearEphemeralStorage() *SandboxSessionUpdate {
	_u.mutation.ClearEphemeralStorage()
	return _u
}

// SetNetworkPolicy sets the "network_policy" field.
func (_u *SandboxSessionUpdate) SetNetworkPolicy(v string) *SandboxSessionUpdate {
	_u.mutation.SetNetworkPolicy(v)
	return _u
}

// SetNillableNetworkPolicy sets the "network_policy" field if the given value is not nil.
func (_u *SandboxSessionUpdate) SetNillableNetworkPolicy(v *string) *SandboxSessionUpdate {
	if v != nil {
		_u.SetNetworkPolicy(*v)
	}
	return _u
}

// ClearNetworkPolicy clears the value of the "network_policy" field.
func (_u *SandboxSessionUpdate) ClearNetworkPolicy() *SandboxSessionUpdate {
	_u.mutation.ClearNetworkPolicy()
	return _u
}

// SetSecurityProfile sets the "security_profile" field.
func (_u *SandboxSessionUpdate) SetSecurityProfile(v string) *SandboxSessionUpdate {
	_u.mutation.SetSecurityProfile(v)
	return _u
}

// SetNillableSecurityProfile sets the "security_profile" field if the given value is not nil.
func (_u *SandboxSessionUpdate) SetNillableSecurityProfile(v *string) *SandboxSessionUpdate {
	if v != nil {
		_u.SetSecurityProfile(*v)
	}
	return _u
}

// ClearSecurityProfile clears the value of the "security_profile" field.
func (_u *SandboxSessionUpdate) ClearSecurityProfile() *SandboxSessionUpdate {
	_u.mutation.ClearSecurityProfile()
	return _u
}

// SetBackendRef sets the "backend_ref" field.
func (_u *SandboxSessionUpdate) SetBackendRef(v string) *SandboxSessionUpdate {
	_u.mutation.SetBackendRef(v)
	return _u
}

// SetNillableBackendRef sets the "backend_ref" field if the given value is not nil.
func (_u *SandboxSessionUpdate) SetNillableBackendRef(v *string) *SandboxSessionUpdate {
	if v != nil {
		_u.SetBackendRef(*v)
	}
	return _u
}

// ClearBackendRef clears the value of the "backend_ref" field.
func (_u *SandboxSessionUpdate) ClearBackendRef() *SandboxSessionUpdate {
	_u.mutation.ClearBackendRef()
	return _u
}

// SetControlEndpoint sets the "control_endpoint" field.
func (_u *SandboxSessionUpdate) SetControlEndpoint(v string) *SandboxSessionUpdate {
	_u.mutation.SetControlEndpoint(v)
	return _u
}

// SetNillableControlEndpoint sets the "control_endpoint" field if the given value is not nil.
func (_u *SandboxSessionUpdate) SetNillableControlEndpoint(v *string) *SandboxSessionUpdate {
	if v != nil {
		_u.SetControlEndpoint(*v)
	}
	return _u
}

// ClearControlEndpoint clears the value of the "control_endpoint" field.
func (_u *SandboxSessionUpdate) ClearControlEndpoint() *SandboxSessionUpdate {
	_u.mutation.ClearControlEndpoint()
	return _u
}

// SetWorkspacePath sets the "workspace_path" field.
func (_u *SandboxSessionUpdate) SetWorkspacePath(v string) *SandboxSessionUpdate {
	_u.mutation.SetWorkspacePath(v)
	return _u
}

// SetNillableWorkspacePath sets the "workspace_path" field if the given value is not nil.
func (_u *SandboxSessionUpdate) SetNillableWorkspacePath(v *string) *SandboxSessionUpdate {
	if v != nil {
		_u.SetWorkspacePath(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SandboxSessionUpdate) SetStatus(v sandboxsession.Status) *SandboxSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SandboxSessionUpdate) SetNillableStatus(v *sandboxsession.Status) *SandboxSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *SandboxSessionUpdate) SetLastActivityAt(v time.Time) *SandboxSessionUpdate {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *SandboxSessionUpdate) SetNillableLastActivityAt(v *time.Time) *SandboxSessionUpdate {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *SandboxSessionUpdate) SetLastHeartbeatAt(v time.Time) *SandboxSessionUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *SandboxSessionUpdate) SetNillableLastHeartbeatAt(v *time.Time) *SandboxSessionUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *SandboxSessionUpdate) SetExpiresAt(v time.Time) *SandboxSessionUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *SandboxSessionUpdate) SetNillableExpiresAt(v *time.Time) *SandboxSessionUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *SandboxSessionUpdate) ClearExpiresAt() *SandboxSessionUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetIdleTimeoutSec sets the "idle_timeout_sec" field.
func (_u *SandboxSessionUpdate) SetIdleTimeoutSec(v int) *SandboxSessionUpdate {
	_u.mutation.ResetIdleTimeoutSec()
	_u.mutation.SetIdleTimeoutSec(v)
	return _u
}

// SetNillableIdleTimeoutSec sets the "idle_timeout_sec" field if the given value is not nil.
func (_u *SandboxSessionUpdate) SetNillableIdleTimeoutSec(v *int) *SandboxSessionUpdate {
	if v != nil {
		_u.SetIdleTimeoutSec(*v)
	}
	return _u
}

// AddIdleTimeoutSec adds value to the "idle_timeout_sec" field.
func (_u *SandboxSessionUpdate) AddIdleTimeoutSec(v int) *SandboxSessionUpdate {
	_u.mutation.AddIdleTimeoutSec(v)
	return _u
}

// ClearIdleTimeoutSec clears the value of the "idle_timeout_sec" field.
func (_u *SandboxSessionUpdate) ClearIdleTimeoutSec() *SandboxSessionUpdate {
	_u.mutation.ClearIdleTimeoutSec()
	return _u
}

// SetMaxLifetimeSec sets the "max_lifetime_sec" field.
func (_u *SandboxSessionUpdate) SetMaxLifetimeSec(v int) *SandboxSessionUpdate {
	_u.mutation.ResetMaxLifetimeSec()
	_u.mutation.SetMaxLifetimeSec(v)
	return _u
}

// SetNillableMaxLifetimeSec sets the "max_lifetime_sec" field if the given value is not nil.
func (_u *SandboxSessionUpdate) SetNillableMaxLifetimeSec(v *int) *SandboxSessionUpdate {
	if v != nil {
		_u.SetMaxLifetimeSec(*v)
	}
	return _u
}

// AddMaxLifetimeSec adds value to the "max_lifetime_sec" field.
func (_u *SandboxSessionUpdate) AddMaxLifetimeSec(v int) *SandboxSessionUpdate {
	_u.mutation.AddMaxLifetimeSec(v)
	return _u
}

// ClearMaxLifetimeSec clears the value of the "max_lifetime_sec" field.
func (_u *SandboxSessionUpdate) ClearMaxLifetimeSec() *SandboxSessionUpdate {
	_u.mutation.ClearMaxLifetimeSec()
	return _u
}

// SetRestoreSnapshotID sets the "restore_snapshot_id" field.
func (_u *SandboxSessionUpdate) SetRestoreSnapshotID(v string) *SandboxSessionUpdate {
	_u.mutation.SetRestoreSnapshotID(v)
	return _u
}

// SetNillableRestoreSnapshotID sets the "restore_snapshot_id" field if the given value is not nil.
func (_u *SandboxSessionUpdate) SetNillableRestoreSnapshotID(v *string) *SandboxSessionUpdate {
	if v != nil {
		_u.SetRestoreSnapshotID(*v)
	}
	return _u
}

// ClearRestoreSnapshotID clears the value of the "restore_snapshot_id" field.
func (_u *SandboxSessionUpdate) ClearRestoreSnapshotID() *SandboxSessionUpdate {
	_u.mutation.ClearRestoreSnapshotID()
	return _u
}

// SetCPUSeconds sets the "cpu_seconds" field.
func (_u *SandboxSessionUpdate) SetCPUSeconds(v float64) *SandboxSessionUpdate {
	_u.mutation.ResetCPUSeconds()
	_u.mutation.SetCPUSeconds(v)
	return _u
}

// SetNillableCPUSeconds sets the "cpu_seconds" field if the given value is not nil.
func (_u *SandboxSessionUpdate) SetNillableCPUSeconds(v *float64) *SandboxSessionUpdate {
	if v != nil {
		_u.SetCPUSeconds(*v)
	}
	return _u
}

// AddCPUSeconds adds value to the "cpu_seconds" field.
func (_u *SandboxSessionUpdate) AddCPUSeconds(v float64) *SandboxSessionUpdate {
	_u.mutation.AddCPUSeconds(v)
	return _u
}

// SetStorageBytes sets the "storage_bytes" field.
func (_u *SandboxSessionUpdate) SetStorageBytes(v int64) *SandboxSessionUpdate {
	_u.mutation.ResetStorageBytes()
	_u.mutation.SetStorageBytes(v)
	return _u
}

// SetNillableStorageBytes sets the "storage_bytes" field if the given value is not nil.
func (_u *SandboxSessionUpdate) SetNillableStorageBytes(v *int64) *SandboxSessionUpdate {
	if v != nil {
		_u.SetStorageBytes(*v)
	}
	return _u
}

// AddStorageBytes adds value to the "storage_bytes" field.
func (_u *SandboxSessionUpdate) AddStorageBytes(v int64) *SandboxSessionUpdate {
	_u.mutation.AddStorageBytes(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SandboxSessionUpdate) SetErrorMessage(v string) *SandboxSessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SandboxSessionUpdate) SetNillableErrorMessage(v *string) *SandboxSessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SandboxSessionUpdate) ClearErrorMessage() *SandboxSessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SandboxSessionUpdate) SetMetadata(v map[string]interface{}) *SandboxSessionUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SandboxSessionUpdate) ClearMetadata() *SandboxSessionUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// AddSnapshotIDs adds the "snapshots" edge to the Snapshot entity by IDs.
func (_u *SandboxSessionUpdate) AddSnapshotIDs(ids ...string) *SandboxSessionUpdate {
	_u.mutation.AddSnapshotIDs(ids...)
	return _u
}

// AddSnapshots adds the "snapshots" edges to the Snapshot entity.
func (_u *SandboxSessionUpdate) AddSnapshots(v ...*Snapshot) *SandboxSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSnapshotIDs(ids...)
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by IDs.
func (_u *SandboxSessionUpdate) AddArtifactIDs(ids ...string) *SandboxSessionUpdate {
	_u.mutation.AddArtifactIDs(ids...)
	return _u
}

// AddArtifacts adds the "artifacts" edges to the Artifact entity.
func (_u *SandboxSessionUpdate) AddArtifacts(v ...*Artifact) *SandboxSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArtifactIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *SandboxSessionUpdate) AddEventIDs(ids ...int) *SandboxSessionUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *SandboxSessionUpdate) AddEvents(v ...*Event) *SandboxSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the SandboxSessionMutation object of the builder.
func (_u *SandboxSessionUpdate) Mutation() *SandboxSessionMutation {
	return _u.mutation
}

// ClearSnapshots clears all "snapshots" edges to the Snapshot entity.
func (_u *SandboxSessionUpdate) ClearSnapshots() *SandboxSessionUpdate {
	_u.mutation.ClearSnapshots()
	return _u
}

// RemoveSnapshotIDs removes the "snapshots" edge to Snapshot entities by IDs.
func (_u *SandboxSessionUpdate) RemoveSnapshotIDs(ids ...string) *SandboxSessionUpdate {
	_u.mutation.RemoveSnapshotIDs(ids...)
	return _u
}

// RemoveSnapshots removes "snapshots" edges to Snapshot entities.
func (_u *SandboxSessionUpdate) RemoveSnapshots(v ...*Snapshot) *SandboxSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSnapshotIDs(ids...)
}

// ClearArtifacts clears all "artifacts" edges to the Artifact entity.
func (_u *SandboxSessionUpdate) ClearArtifacts() *SandboxSessionUpdate {
	_u.mutation.ClearArtifacts()
	return _u
}

// RemoveArtifactIDs removes the "artifacts" edge to Artifact entities by IDs.
func (_u *SandboxSessionUpdate) RemoveArtifactIDs(ids ...string) *SandboxSessionUpdate {
	_u.mutation.RemoveArtifactIDs(ids...)
	return _u
}

// RemoveArtifacts removes "artifacts" edges to Artifact entities.
func (_u *SandboxSessionUpdate) RemoveArtifacts(v ...*Artifact) *SandboxSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArtifactIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *SandboxSessionUpdate) ClearEvents() *SandboxSessionUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *SandboxSessionUpdate) RemoveEventIDs(ids ...int) *SandboxSessionUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *SandboxSessionUpdate) RemoveEvents(v ...*Event) *SandboxSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SandboxSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SandboxSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SandboxSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SandboxSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SandboxSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := sandboxsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SandboxSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SandboxSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sandboxsession.Table, sandboxsession.Columns, sqlgraph.NewFieldSpec(sandboxsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CPULimit(); ok {
		_spec.SetField(sandboxsession.FieldCPULimit, field.TypeString, value)
	}
	if _u.mutation.CPULimitCleared() {
		_spec.ClearField(sandboxsession.FieldCPULimit, field.TypeString)
	}
	if value, ok := _u.mutation.MemoryLimit(); ok {
		_spec.SetField(sandboxsession.FieldMemoryLimit, field.TypeString, value)
	}
	if _u.mutation.MemoryLimitCleared() {
		_spec.ClearField(sandboxsession.FieldMemoryLimit, field.TypeString)
	}
	if value, ok := _u.mutation.EphemeralStorage(); ok {
		_spec.SetField(sandboxsession.FieldEphemeralStorage, field.TypeString, value)
	}
	if _u.mutation.EphemeralStorageCleared() {
		_spec.ClearField(sandboxsession.FieldEphemeralStorage, field.TypeString)
	}
	if value, ok := _u.mutation.NetworkPolicy(); ok {
		_spec.SetField(sandboxsession.FieldNetworkPolicy, field.TypeString, value)
	}
	if _u.mutation.NetworkPolicyCleared() {
		_spec.ClearField(sandboxsession.FieldNetworkPolicy, field.TypeString)
	}
	if value, ok := _u.mutation.SecurityProfile(); ok {
		_spec.SetField(sandboxsession.FieldSecurityProfile, field.TypeString, value)
	}
	if _u.mutation.SecurityProfileCleared() {
		_spec.ClearField(sandboxsession.FieldSecurityProfile, field.TypeString)
	}
	if value, ok := _u.mutation.BackendRef(); ok {
		_spec.SetField(sandboxsession.FieldBackendRef, field.TypeString, value)
	}
	if _u.mutation.BackendRefCleared() {
		_spec.ClearField(sandboxsession.FieldBackendRef, field.TypeString)
	}
	if value, ok := _u.mutation.ControlEndpoint(); ok {
		_spec.SetField(sandboxsession.FieldControlEndpoint, field.TypeString, value)
	}
	if _u.mutation.ControlEndpointCleared() {
		_spec.ClearField(sandboxsession.FieldControlEndpoint, field.TypeString)
	}
	if value, ok := _u.mutation.WorkspacePath(); ok {
		_spec.SetField(sandboxsession.FieldWorkspacePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sandboxsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(sandboxsession.FieldLastActivityAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(sandboxsession.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(sandboxsession.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(sandboxsession.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IdleTimeoutSec(); ok {
		_spec.SetField(sandboxsession.FieldIdleTimeoutSec, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIdleTimeoutSec(); ok {
		_spec.AddField(sandboxsession.FieldIdleTimeoutSec, field.TypeInt, value)
	}
	if _u.mutation.IdleTimeoutSecCleared() {
		_spec.ClearField(sandboxsession.FieldIdleTimeoutSec, field.TypeInt)
	}
	if value, ok := _u.mutation.MaxLifetimeSec(); ok {
		_spec.SetField(sandboxsession.FieldMaxLifetimeSec, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxLifetimeSec(); ok {
		_spec.AddField(sandboxsession.FieldMaxLifetimeSec, field.TypeInt, value)
	}
	if _u.mutation.MaxLifetimeSecCleared() {
		_spec.ClearField(sandboxsession.FieldMaxLifetimeSec, field.TypeInt)
	}
	if value, ok := _u.mutation.RestoreSnapshotID(); ok {
		_spec.SetField(sandboxsession.FieldRestoreSnapshotID, field.TypeString, value)
	}
	if _u.mutation.RestoreSnapshotIDCleared() {
		_spec.ClearField(sandboxsession.FieldRestoreSnapshotID, field.TypeString)
	}
	if value, ok := _u.mutation.CPUSeconds(); ok {
		_spec.SetField(sandboxsession.FieldCPUSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCPUSeconds(); ok {
		_spec.AddField(sandboxsession.FieldCPUSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StorageBytes(); ok {
		_spec.SetField(sandboxsession.FieldStorageBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedStorageBytes(); ok {
		_spec.AddField(sandboxsession.FieldStorageBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(sandboxsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(sandboxsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(sandboxsession.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(sandboxsession.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.SnapshotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSnapshotsIDs(); len(nodes) > 0 && !_u.mutation.SnapshotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SnapshotsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArtifactsIDs(); len(nodes) > 0 && !_u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArtifactsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sandboxsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SandboxSessionUpdateOne is the builder for updating a single SandboxSession entity.
type SandboxSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SandboxSessionMutation
}

// SetCPULimit sets the "cpu_limit" field.
func (_u *SandboxSessionUpdateOne) SetCPULimit(v string) *SandboxSessionUpdateOne {
	_u.mutation.SetCPULimit(v)
	return _u
}

// SetNillableCPULimit sets the "cpu_limit" field if the given value is not nil.
func (_u *SandboxSessionUpdateOne) SetNillableCPULimit(v *string) *SandboxSessionUpdateOne {
	if v != nil {
		_u.SetCPULimit(*v)
	}
	return _u
}

// ClearCPULimit clears the value of the "cpu_limit" field.
func (_u *SandboxSessionUpdateOne) ClearCPULimit() *SandboxSessionUpdateOne {
	_u.mutation.ClearCPULimit()
	return _u
}

// SetMemoryLimit sets the "memory_limit" field.
func (_u *SandboxSessionUpdateOne) SetMemoryLimit(v string) *SandboxSessionUpdateOne {
	_u.mutation.SetMemoryLimit(v)
	return _u
}

// SetNillableMemoryLimit sets the "memory_limit" field if the given value is not nil.
func (_u *SandboxSessionUpdateOne) SetNillableMemoryLimit(v *string) *SandboxSessionUpdateOne {
	if v != nil {
		_u.SetMemoryLimit(*v)
	}
	return _u
}

// ClearMemoryLimit clears the value of the "memory_limit" field.
func (_u *SandboxSessionUpdateOne) ClearMemoryLimit() *SandboxSessionUpdateOne {
	_u.mutation.ClearMemoryLimit()
	return _u
}

// SetEphemeralStorage sets the "ephemeral_storage" field.
func (_u *SandboxSessionUpdateOne) SetEphemeralStorage(v string) *SandboxSessionUpdateOne {
	_u.mutation.SetEphemeralStorage(v)
	return _u
}

// SetNillableEphemeralStorage sets the "ephemeral_storage" field if the given value is not nil.
func (_u *SandboxSessionUpdateOne) SetNillableEphemeralStorage(v *string) *SandboxSessionUpdateOne {
	if v != nil {
		_u.SetEphemeralStorage(*v)
	}
	return _u
}

// ClearEphemeralStorage clears the value of the "ephemeral_storage" field.
func (_u *SandboxSessionUpdateOne) ClearEphemeralStorage() *SandboxSessionUpdateOne {
	_u.mutation.ClearEphemeralStorage()
	return _u
}

// SetNetworkPolicy sets the "network_policy" field.
func (_u *SandboxSessionUpdateOne) SetNetworkPolicy(v string) *SandboxSessionUpdateOne {
	_u.mutation.SetNetworkPolicy(v)
	return _u
}

// SetNillableNetworkPolicy sets the "network_policy" field if the given value is not nil.
func (_u *SandboxSessionUpdateOne) SetNillableNetworkPolicy(v *string) *SandboxSessionUpdateOne {
	if v != nil {
		_u.SetNetworkPolicy(*v)
	}
	return _u
}

// ClearNetworkPolicy clears the value of the "network_policy" field.
func (_u *SandboxSessionUpdateOne) ClearNetworkPolicy() *SandboxSessionUpdateOne {
	_u.mutation.ClearNetworkPolicy()
	return _u
}

// SetSecurityProfile sets the "security_profile" field.
func (_u *SandboxSessionUpdateOne) SetSecurityProfile(v string) *SandboxSessionUpdateOne {
	_u.mutation.SetSecurityProfile(v)
	return _u
}

// SetNillableSecurityProfile sets the "security_profile" field if the given value is not nil.
func (_u *SandboxSessionUpdateOne) SetNillableSecurityProfile(v *string) *SandboxSessionUpdateOne {
	if v != nil {
		_u.SetSecurityProfile(*v)
	}
	return _u
}

// ClearSecurityProfile clears the value of the "security_profile" field.
func (_u *SandboxSessionUpdateOne) ClearSecurityProfile() *SandboxSessionUpdateOne {
	_u.mutation.ClearSecurityProfile()
	return _u
}

// SetBackendRef sets the "backend_ref" field.
func (_u *SandboxSessionUpdateOne) SetBackendRef(v string) *SandboxSessionUpdateOne {
	_u.mutation.SetBackendRef(v)
	return _u
}

// SetNillableBackendRef sets the "backend_ref" field if the given value is not nil.
func (_u *SandboxSessionUpdateOne) SetNillableBackendRef(v *string) *SandboxSessionUpdateOne {
	if v != nil {
		_u.SetBackendRef(*v)
	}
	return _u
}

// ClearBackendRef clears the value of the "backend_ref" field.
func (_u *SandboxSessionUpdateOne) ClearBackendRef() *SandboxSessionUpdateOne {
	_u.mutation.ClearBackendRef()
	return _u
}

// SetControlEndpoint sets the "control_endpoint" field.
func (_u *SandboxSessionUpdateOne) SetControlEndpoint(v string) *SandboxSessionUpdateOne {
	_u.mutation.SetControlEndpoint(v)
	return _u
}

// SetNillableControlEndpoint sets the "control_endpoint" field if the given value is not nil.
func (_u *SandboxSessionUpdateOne) SetNillableControlEndpoint(v *string) *SandboxSessionUpdateOne {
	if v != nil {
		_u.SetControlEndpoint(*v)
	}
	return _u
}

// ClearControlEndpoint clears the value of the "control_endpoint" field.
func (_u *SandboxSessionUpdateOne) ClearControlEndpoint() *SandboxSessionUpdateOne {
	_u.mutation.ClearControlEndpoint()
	return _u
}

// SetWorkspacePath sets the "workspace_path" field.
func (_u *SandboxSessionUpdateOne) SetWorkspacePath(v string) *SandboxSessionUpdateOne {
	_u.mutation.SetWorkspacePath(v)
	return _u
}

// SetNillableWorkspacePath sets the "workspace_path" field if the given value is not nil.
func (_u *SandboxSessionUpdateOne) SetNillableWorkspacePath(v *string) *SandboxSessionUpdateOne {
	if v != nil {
		_u.SetWorkspacePath(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SandboxSessionUpdateOne) SetStatus(v sandboxsession.Status) *SandboxSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SandboxSessionUpdateOne) SetNillableStatus(v *sandboxsession.Status) *SandboxSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *SandboxSessionUpdateOne) SetLastActivityAt(v time.Time) *SandboxSessionUpdateOne {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *SandboxSessionUpdateOne) SetNillableLastActivityAt(v *time.Time) *SandboxSessionUpdateOne {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *SandboxSessionUpdateOne) SetLastHeartbeatAt(v time.Time) *SandboxSessionUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *SandboxSessionUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *SandboxSessionUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *SandboxSessionUpdateOne) SetExpiresAt(v time.Time) *SandboxSessionUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *SandboxSessionUpdateOne) SetNillableExpiresAt(v *time.Time) *SandboxSessionUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *SandboxSessionUpdateOne) ClearExpiresAt() *SandboxSessionUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetIdleTimeoutSec sets the "idle_timeout_sec" field.
func (_u *SandboxSessionUpdateOne) SetIdleTimeoutSec(v int) *SandboxSessionUpdateOne {
	_u.mutation.ResetIdleTimeoutSec()
	_u.mutation.SetIdleTimeoutSec(v)
	return _u
}

// SetNillableIdleTimeoutSec sets the "idle_timeout_sec" field if the given value is not nil.
func (_u *SandboxSessionUpdateOne) SetNillableIdleTimeoutSec(v *int) *SandboxSessionUpdateOne {
	if v != nil {
		_u.SetIdleTimeoutSec(*v)
	}
	return _u
}

// AddIdleTimeoutSec adds value to the "idle_timeout_sec" field.
func (_u *SandboxSessionUpdateOne) AddIdleTimeoutSec(v int) *SandboxSessionUpdateOne {
	_u.mutation.AddIdleTimeoutSec(v)
	return _u
}

// ClearIdleTimeoutSec clears the value of the "idle_timeout_sec" field.
func (_u *SandboxSessionUpdateOne) ClearIdleTimeoutSec() *SandboxSessionUpdateOne {
	_u.mutation.ClearIdleTimeoutSec()
	return _u
}

// SetMaxLifetimeSec sets the "max_lifetime_sec" field.
func (_u *SandboxSessionUpdateOne) SetMaxLifetimeSec(v int) *SandboxSessionUpdateOne {
	_u.mutation.ResetMaxLifetimeSec()
	_u.mutation.SetMaxLifetimeSec(v)
	return _u
}

// SetNillableMaxLifetimeSec sets the "max_lifetime_sec" field if the given value is not nil.
func (_u *SandboxSessionUpdateOne) SetNillableMaxLifetimeSec(v *int) *SandboxSessionUpdateOne {
	if v != nil {
		_u.SetMaxLifetimeSec(*v)
	}
	return _u
}

// AddMaxLifetimeSec adds value to the "max_lifetime_sec" field.
func (_u *SandboxSessionUpdateOne) AddMaxLifetimeSec(v int) *SandboxSessionUpdateOne {
	_u.mutation.AddMaxLifetimeSec(v)
	return _u
}

// ClearMaxLifetimeSec clears the value of the "max_lifetime_sec" field.
func (_u *SandboxSessionUpdateOne) ClearMaxLifetimeSec() *SandboxSessionUpdateOne {
	_u.mutation.ClearMaxLifetimeSec()
	return _u
}

// SetRestoreSnapshotID sets the "restore_snapshot_id" field.
func (_u *SandboxSessionUpdateOne) SetRestoreSnapshotID(v string) *SandboxSessionUpdateOne {
	_u.mutation.SetRestoreSnapshotID(v)
	return _u
}

// SetNillableRestoreSnapshotID sets the "restore_snapshot_id" field if the given value is not nil.
func (_u *SandboxSessionUpdateOne) SetNillableRestoreSnapshotID(v *string) *SandboxSessionUpdateOne {
	if v != nil {
		_u.SetRestoreSnapshotID(*v)
	}
	return _u
}

// ClearRestoreSnapshotID clears the value of the "restore_snapshot_id" field.
func (_u *SandboxSessionUpdateOne) ClearRestoreSnapshotID() *SandboxSessionUpdateOne {
	_u.mutation.ClearRestoreSnapshotID()
	return _u
}

// SetCPUSeconds sets the "cpu_seconds" field.
func (_u *SandboxSessionUpdateOne) SetCPUSeconds(v float64) *SandboxSessionUpdateOne {
	_u.mutation.ResetCPUSeconds()
	_u.mutation.SetCPUSeconds(v)
	return _u
}

// SetNillableCPUSeconds sets the "cpu_seconds" field if the given value is not nil.
func (_u *SandboxSessionUpdateOne) SetNillableCPUSeconds(v *float64) *SandboxSessionUpdateOne {
	if v != nil {
		_u.SetCPUSeconds(*v)
	}
	return _u
}

// AddCPUSeconds adds value to the "cpu_seconds" field.
func (_u *SandboxSessionUpdateOne) AddCPUSeconds(v float64) *SandboxSessionUpdateOne {
	_u.mutation.AddCPUSeconds(v)
	return _u
}

// SetStorageBytes sets the "storage_bytes" field.
func (_u *SandboxSessionUpdateOne) SetStorageBytes(v int64) *SandboxSessionUpdateOne {
	_u.mutation.ResetStorageBytes()
	_u.mutation.SetStorageBytes(v)
	return _u
}

// SetNillableStorageBytes sets the "storage_bytes" field if the given value is not nil.
func (_u *SandboxSessionUpdateOne) SetNillableStorageBytes(v *int64) *SandboxSessionUpdateOne {
	if v != nil {
		_u.SetStorageBytes(*v)
	}
	return _u
}

// AddStorageBytes adds value to the "storage_bytes" field.
func (_u *SandboxSessionUpdateOne) AddStorageBytes(v int64) *SandboxSessionUpdateOne {
	_u.mutation.AddStorageBytes(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SandboxSessionUpdateOne) SetErrorMessage(v string) *SandboxSessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SandboxSessionUpdateOne) SetNillableErrorMessage(v *string) *SandboxSessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SandboxSessionUpdateOne) ClearErrorMessage() *SandboxSessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SandboxSessionUpdateOne) SetMetadata(v map[string]interface{}) *SandboxSessionUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SandboxSessionUpdateOne) ClearMetadata() *SandboxSessionUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// AddSnapshotIDs adds the "snapshots" edge to the Snapshot entity by IDs.
func (_u *SandboxSessionUpdateOne) AddSnapshotIDs(ids ...string) *SandboxSessionUpdateOne {
	_u.mutation.AddSnapshotIDs(ids...)
	return _u
}

// AddSnapshots adds the "snapshots" edges to the Snapshot entity.
func (_u *SandboxSessionUpdateOne) AddSnapshots(v ...*Snapshot) *SandboxSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSnapshotIDs(ids...)
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by IDs.
func (_u *SandboxSessionUpdateOne) AddArtifactIDs(ids ...string) *SandboxSessionUpdateOne {
	_u.mutation.AddArtifactIDs(ids...)
	return _u
}

// AddArtifacts adds the "artifacts" edges to the Artifact entity.
func (_u *SandboxSessionUpdateOne) AddArtifacts(v ...*Artifact) *SandboxSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArtifactIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *SandboxSessionUpdateOne) AddEventIDs(ids ...int) *SandboxSessionUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *SandboxSessionUpdateOne) AddEvents(v ...*Event) *SandboxSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the SandboxSessionMutation object of the builder.
func (_u *SandboxSessionUpdateOne) Mutation() *SandboxSessionMutation {
	return _u.mutation
}

// ClearSnapshots clears all "snapshots" edges to the Snapshot entity.
func (_u *SandboxSessionUpdateOne) ClearSnapshots() *SandboxSessionUpdateOne {
	_u.mutation.ClearSnapshots()
	return _u
}

// RemoveSnapshotIDs removes the "snapshots" edge to Snapshot entities by IDs.
func (_u *SandboxSessionUpdateOne) RemoveSnapshotIDs(ids ...string) *SandboxSessionUpdateOne {
	_u.mutation.RemoveSnapshotIDs(ids...)
	return _u
}

// RemoveSnapshots removes "snapshots" edges to Snapshot entities.
func (_u *SandboxSessionUpdateOne) RemoveSnapshots(v ...*Snapshot) *SandboxSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSnapshotIDs(ids...)
}

// ClearArtifacts clears all "artifacts" edges to the Artifact entity.
func (_u *SandboxSessionUpdateOne) ClearArtifacts() *SandboxSessionUpdateOne {
	_u.mutation.ClearArtifacts()
	return _u
}

// RemoveArtifactIDs removes the "artifacts" edge to Artifact entities by IDs.
func (_u *SandboxSessionUpdateOne) RemoveArtifactIDs(ids ...string) *SandboxSessionUpdateOne {
	_u.mutation.RemoveArtifactIDs(ids...)
	return _u
}

// RemoveArtifacts removes "artifacts" edges to Artifact entities.
func (_u *SandboxSessionUpdateOne) RemoveArtifacts(v ...*Artifact) *SandboxSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArtifactIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *SandboxSessionUpdateOne) ClearEvents() *SandboxSessionUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *SandboxSessionUpdateOne) RemoveEventIDs(ids ...int) *SandboxSessionUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *SandboxSessionUpdateOne) RemoveEvents(v ...*Event) *SandboxSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the SandboxSessionUpdate builder.
func (_u *SandboxSessionUpdateOne) Where(ps ...predicate.SandboxSession) *SandboxSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SandboxSessionUpdateOne) Select(field string, fields ...string) *SandboxSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SandboxSession entity.
func (_u *SandboxSessionUpdateOne) Save(ctx context.Context) (*SandboxSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SandboxSessionUpdateOne) SaveX(ctx context.Context) *SandboxSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SandboxSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SandboxSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SandboxSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := sandboxsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SandboxSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SandboxSessionUpdateOne) sqlSave(ctx context.Context) (_node *SandboxSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sandboxsession.Table, sandboxsession.Columns, sqlgraph.NewFieldSpec(sandboxsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SandboxSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sandboxsession.FieldID)
		for _, f := range fields {
			if !sandboxsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sandboxsession.FieldID {
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
	if value, ok := _u.mutation.CPULimit(); ok {
		_spec.SetField(sandboxsession.FieldCPULimit, field.TypeString, value)
	}
	if _u.mutation.CPULimitCleared() {
		_spec.ClearField(sandboxsession.FieldCPULimit, field.TypeString)
	}
	if value, ok := _u.mutation.MemoryLimit(); ok {
		_spec.SetField(sandboxsession.FieldMemoryLimit, field.TypeString, value)
	}
	if _u.mutation.MemoryLimitCleared() {
		_spec.ClearField(sandboxsession.FieldMemoryLimit, field.TypeString)
	}
	if value, ok := _u.mutation.EphemeralStorage(); ok {
		_spec.SetField(sandboxsession.FieldEphemeralStorage, field.TypeString, value)
	}
	if _u.mutation.EphemeralStorageCleared() {
		_spec.ClearField(sandboxsession.FieldEphemeralStorage, field.TypeString)
	}
	if value, ok := _u.mutation.NetworkPolicy(); ok {
		_spec.SetField(sandboxsession.FieldNetworkPolicy, field.TypeString, value)
	}
	if _u.mutation.NetworkPolicyCleared() {
		_spec.ClearField(sandboxsession.FieldNetworkPolicy, field.TypeString)
	}
	if value, ok := _u.mutation.SecurityProfile(); ok {
		_spec.SetField(sandboxsession.FieldSecurityProfile, field.TypeString, value)
	}
	if _u.mutation.SecurityProfileCleared() {
		_spec.ClearField(sandboxsession.FieldSecurityProfile, field.TypeString)
	}
	if value, ok := _u.mutation.BackendRef(); ok {
		_spec.SetField(sandboxsession.FieldBackendRef, field.TypeString, value)
	}
	if _u.mutation.BackendRefCleared() {
		_spec.ClearField(sandboxsession.FieldBackendRef, field.TypeString)
	}
	if value, ok := _u.mutation.ControlEndpoint(); ok {
		_spec.SetField(sandboxsession.FieldControlEndpoint, field.TypeString, value)
	}
	if _u.mutation.ControlEndpointCleared() {
		_spec.ClearField(sandboxsession.FieldControlEndpoint, field.TypeString)
	}
	if value, ok := _u.mutation.WorkspacePath(); ok {
		_spec.SetField(sandboxsession.FieldWorkspacePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sandboxsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(sandboxsession.FieldLastActivityAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(sandboxsession.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(sandboxsession.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(sandboxsession.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IdleTimeoutSec(); ok {
		_spec.SetField(sandboxsession.FieldIdleTimeoutSec, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIdleTimeoutSec(); ok {
		_spec.AddField(sandboxsession.FieldIdleTimeoutSec, field.TypeInt, value)
	}
	if _u.mutation.IdleTimeoutSecCleared() {
		_spec.ClearField(sandboxsession.FieldIdleTimeoutSec, field.TypeInt)
	}
	if value, ok := _u.mutation.MaxLifetimeSec(); ok {
		_spec.SetField(sandboxsession.FieldMaxLifetimeSec, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxLifetimeSec(); ok {
		_spec.AddField(sandboxsession.FieldMaxLifetimeSec, field.TypeInt, value)
	}
	if _u.mutation.MaxLifetimeSecCleared() {
		_spec.ClearField(sandboxsession.FieldMaxLifetimeSec, field.TypeInt)
	}
	if value, ok := _u.mutation.RestoreSnapshotID(); ok {
		_spec.SetField(sandboxsession.FieldRestoreSnapshotID, field.TypeString, value)
	}
	if _u.mutation.RestoreSnapshotIDCleared() {
		_spec.ClearField(sandboxsession.FieldRestoreSnapshotID, field.TypeString)
	}
	if value, ok := _u.mutation.CPUSeconds(); ok {
		_spec.SetField(sandboxsession.FieldCPUSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCPUSeconds(); ok {
		_spec.AddField(sandboxsession.FieldCPUSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StorageBytes(); ok {
		_spec.SetField(sandboxsession.FieldStorageBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedStorageBytes(); ok {
		_spec.AddField(sandboxsession.FieldStorageBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(sandboxsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(sandboxsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(sandboxsession.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(sandboxsession.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.SnapshotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSnapshotsIDs(); len(nodes) > 0 && !_u.mutation.SnapshotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SnapshotsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArtifactsIDs(); len(nodes) > 0 && !_u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArtifactsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SandboxSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sandboxsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
