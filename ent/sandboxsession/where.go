// Code generated by ent, DO NOT EDIT.

package sandboxsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/astraforge/astraforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldUserID, v))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldWorkspaceID, v))
}

// Image applies equality check predicate on the "image" field. It's identical to ImageEQ.
func Image(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldImage, v))
}

// CPULimit applies equality check predicate on the "cpu_limit" field. It's identical to CPULimitEQ.
func CPULimit(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldCPULimit, v))
}

// MemoryLimit applies equality check predicate on the "memory_limit" field. It's identical to MemoryLimitEQ.
func MemoryLimit(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldMemoryLimit, v))
}

// EphemeralStorage applies equality check predicate on the "ephemeral_storage" field. It's identical to EphemeralStorageEQ.
func EphemeralStorage(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldEphemeralStorage, v))
}

// NetworkPolicy applies equality check predicate on the "network_policy" field. It's identical to NetworkPolicyEQ.
func NetworkPolicy(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldNetworkPolicy, v))
}

// SecurityProfile applies equality check predicate on the "security_profile" field. It's identical to SecurityProfileEQ.
func SecurityProfile(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldSecurityProfile, v))
}

// BackendRef applies equality check predicate on the "backend_ref" field. It's identical to BackendRefEQ.
func BackendRef(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldBackendRef, v))
}

// ControlEndpoint applies equality check predicate on the "control_endpoint" field. It's identical to ControlEndpointEQ.
func ControlEndpoint(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldControlEndpoint, v))
}

// WorkspacePath applies equality check predicate on the "workspace_path" field. It's identical to WorkspacePathEQ.
func WorkspacePath(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldWorkspacePath, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldCreatedAt, v))
}

// LastActivityAt applies equality check predicate on the "last_activity_at" field. It's identical to LastActivityAtEQ.
func LastActivityAt(v time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldLastActivityAt, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldExpiresAt, v))
}

// IdleTimeoutSec applies equality check predicate on the "idle_timeout_sec" field. It's identical to IdleTimeoutSecEQ.
func IdleTimeoutSec(v int) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldIdleTimeoutSec, v))
}

// MaxLifetimeSec applies equality check predicate on the "max_lifetime_sec" field. It's identical to MaxLifetimeSecEQ.
func MaxLifetimeSec(v int) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldMaxLifetimeSec, v))
}

// RestoreSnapshotID applies equality check predicate on the "restore_snapshot_id" field. It's identical to RestoreSnapshotIDEQ.
func RestoreSnapshotID(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldRestoreSnapshotID, v))
}

// CPUSeconds applies equality check predicate on the "cpu_seconds" field. It's identical to CPUSecondsEQ.
func CPUSeconds(v float64) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldCPUSeconds, v))
}

// StorageBytes applies equality check predicate on the "storage_bytes" field. It's identical to StorageBytesEQ.
func StorageBytes(v int64) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldStorageBytes, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldErrorMessage, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldContainsFold(FieldUserID, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// BackendEQ applies the EQ predicate on the "backend" field.
func BackendEQ(v Backend) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldBackend, v))
}

// BackendNEQ applies the NEQ predicate on the "backend" field.
func BackendNEQ(v Backend) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNEQ(FieldBackend, v))
}

// BackendIn applies the In predicate on the "backend" field.
func BackendIn(vs ...Backend) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIn(FieldBackend, vs...))
}

// BackendNotIn applies the NotIn predicate on the "backend" field.
func BackendNotIn(vs ...Backend) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotIn(FieldBackend, vs...))
}

// ImageEQ applies the EQ predicate on the "image" field.
func ImageEQ(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldImage, v))
}

// ImageNEQ applies the NEQ predicate on the "image" field.
func ImageNEQ(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNEQ(FieldImage, v))
}

// ImageIn applies the In predicate on the "image" field.
func ImageIn(vs ...string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIn(FieldImage, vs...))
}

// ImageNotIn applies the NotIn predicate on the "image" field.
func ImageNotIn(vs ...string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotIn(FieldImage, vs...))
}

// ImageGT applies the GT predicate on the "image" field.
func ImageGT(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGT(FieldImage, v))
}

// ImageGTE applies the GTE predicate on the "image" field.
func ImageGTE(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGTE(FieldImage, v))
}

// ImageLT applies the LT predicate on the "image" field.
func ImageLT(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLT(FieldImage, v))
}

// ImageLTE applies the LTE predicate on the "image" field.
func ImageLTE(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLTE(FieldImage, v))
}

// ImageContains applies the Contains predicate on the "image" field.
func ImageContains(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldContains(FieldImage, v))
}

// ImageHasPrefix applies the HasPrefix predicate on the "image" field.
func ImageHasPrefix(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldHasPrefix(FieldImage, v))
}

// ImageHasSuffix applies the HasSuffix predicate on the "image" field.
func ImageHasSuffix(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldHasSuffix(FieldImage, v))
}

// ImageEqualFold applies the EqualFold predicate on the "image" field.
func ImageEqualFold(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEqualFold(FieldImage, v))
}

// ImageContainsFold applies the ContainsFold predicate on the "image" field.
func ImageContainsFold(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldContainsFold(FieldImage, v))
}

// CPULimitEQ applies the EQ predicate on the "cpu_limit" field.
func CPULimitEQ(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldCPULimit, v))
}

// CPULimitNEQ applies the NEQ predicate on the "cpu_limit" field.
func CPULimitNEQ(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNEQ(FieldCPULimit, v))
}

// CPULimitIn applies the In predicate on the "cpu_limit" field.
func CPULimitIn(vs ...string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIn(FieldCPULimit, vs...))
}

// CPULimitNotIn applies the NotIn predicate on the "cpu_limit" field.
func CPULimitNotIn(vs ...string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotIn(FieldCPULimit, vs...))
}

// CPULimitGT applies the GT predicate on the "cpu_limit" field.
func CPULimitGT(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGT(FieldCPULimit, v))
}

// CPULimitGTE applies the GTE predicate on the "cpu_limit" field.
func CPULimitGTE(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGTE(FieldCPULimit, v))
}

// CPULimitLT applies the LT predicate on the "cpu_limit" field.
func CPULimitLT(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLT(FieldCPULimit, v))
}

// CPULimitLTE applies the LTE predicate on the "cpu_limit" field.
func CPULimitLTE(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLTE(FieldCPULimit, v))
}

// CPULimitContains applies the Contains predicate on the "cpu_limit" field.
func CPULimitContains(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldContains(FieldCPULimit, v))
}

// CPULimitHasPrefix applies the HasPrefix predicate on the "cpu_limit" field.
func CPULimitHasPrefix(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldHasPrefix(FieldCPULimit, v))
}

// CPULimitHasSuffix applies the HasSuffix predicate on the "cpu_limit" field.
func CPULimitHasSuffix(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldHasSuffix(FieldCPULimit, v))
}

// CPULimitIsNil applies the IsNil predicate on the "cpu_limit" field.
func CPULimitIsNil() predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIsNull(FieldCPULimit))
}

// CPULimitNotNil applies the NotNil predicate on the "cpu_limit" field.
func CPULimitNotNil() predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotNull(FieldCPULimit))
}

// CPULimitEqualFold applies the EqualFold predicate on the "cpu_limit" field.
func CPULimitEqualFold(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEqualFold(FieldCPULimit, v))
}

// CPULimitContainsFold applies the ContainsFold predicate on the "cpu_limit" field.
func CPULimitContainsFold(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldContainsFold(FieldCPULimit, v))
}

// MemoryLimitEQ applies the EQ predicate on the "memory_limit" field.
func MemoryLimitEQ(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldMemoryLimit, v))
}

// MemoryLimitNEQ applies the NEQ predicate on the "memory_limit" field.
func MemoryLimitNEQ(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNEQ(FieldMemoryLimit, v))
}

// MemoryLimitIn applies the In predicate on the "memory_limit" field.
func MemoryLimitIn(vs ...string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIn(FieldMemoryLimit, vs...))
}

// MemoryLimitNotIn applies the NotIn predicate on the "memory_limit" field.
func MemoryLimitNotIn(vs ...string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotIn(FieldMemoryLimit, vs...))
}

// MemoryLimitGT applies the GT predicate on the "memory_limit" field.
func MemoryLimitGT(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGT(FieldMemoryLimit, v))
}

// MemoryLimitGTE applies the GTE predicate on the "memory_limit" field.
func MemoryLimitGTE(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGTE(FieldMemoryLimit, v))
}

// MemoryLimitLT applies the LT predicate on the "memory_limit" field.
func MemoryLimitLT(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLT(FieldMemoryLimit, v))
}

// MemoryLimitLTE applies the LTE predicate on the "memory_limit" field.
func MemoryLimitLTE(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLTE(FieldMemoryLimit, v))
}

// MemoryLimitContains applies the Contains predicate on the "memory_limit" field.
func MemoryLimitContains(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldContains(FieldMemoryLimit, v))
}

// MemoryLimitHasPrefix applies the HasPrefix predicate on the "memory_limit" field.
func MemoryLimitHasPrefix(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldHasPrefix(FieldMemoryLimit, v))
}

// MemoryLimitHasSuffix applies the HasSuffix predicate on the "memory_limit" field.
func MemoryLimitHasSuffix(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldHasSuffix(FieldMemoryLimit, v))
}

// MemoryLimitIsNil applies the IsNil predicate on the "memory_limit" field.
func MemoryLimitIsNil() predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIsNull(FieldMemoryLimit))
}

// MemoryLimitNotNil applies the NotNil predicate on the "memory_limit" field.
func MemoryLimitNotNil() predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotNull(FieldMemoryLimit))
}

// MemoryLimitEqualFold applies the EqualFold predicate on the "memory_limit" field.
func MemoryLimitEqualFold(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEqualFold(FieldMemoryLimit, v))
}

// MemoryLimitContainsFold applies the ContainsFold predicate on the "memory_limit" field.
func MemoryLimitContainsFold(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldContainsFold(FieldMemoryLimit, v))
}

// EphemeralStorageEQ applies the EQ predicate on the "ephemeral_storage" field.
func EphemeralStorageEQ(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldEphemeralStorage, v))
}

// EphemeralStorageNEQ applies the NEQ predicate on the "ephemeral_storage" field.
func EphemeralStorageNEQ(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNEQ(FieldEphemeralStorage, v))
}

// EphemeralStorageIn applies the In predicate on the "ephemeral_storage" field.
func EphemeralStorageIn(vs ...string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIn(FieldEphemeralStorage, vs...))
}

// EphemeralStorageNotIn applies the NotIn predicate on the "ephemeral_storage" field.
func EphemeralStorageNotIn(vs ...string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotIn(FieldEphemeralStorage, vs...))
}

// EphemeralStorageGT applies the GT predicate on the "ephemeral_storage" field.
func EphemeralStorageGT(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGT(FieldEphemeralStorage, v))
}

// EphemeralStorageGTE applies the GTE predicate on the "ephemeral_storage" field.
func EphemeralStorageGTE(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGTE(FieldEphemeralStorage, v))
}

// EphemeralStorageLT applies the LT predicate on the "ephemeral_storage" field.
func EphemeralStorageLT(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLT(FieldEphemeralStorage, v))
}

// EphemeralStorageLTE applies the LTE predicate on the "ephemeral_storage" field.
func EphemeralStorageLTE(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLTE(FieldEphemeralStorage, v))
}

// EphemeralStorageContains applies the Contains predicate on the "ephemeral_storage" field.
func EphemeralStorageContains(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldContains(FieldEphemeralStorage, v))
}

// EphemeralStorageHasPrefix applies the HasPrefix predicate on the "ephemeral_storage" field.
func EphemeralStorageHasPrefix(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldHasPrefix(FieldEphemeralStorage, v))
}

// EphemeralStorageHasSuffix applies the HasSuffix predicate on the "ephemeral_storage" field.
func EphemeralStorageHasSuffix(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldHasSuffix(FieldEphemeralStorage, v))
}

// EphemeralStorageIsNil applies the IsNil predicate on the "ephemeral_storage" field.
func EphemeralStorageIsNil() predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIsNull(FieldEphemeralStorage))
}

// EphemeralStorageNotNil applies the NotNil predicate on the "ephemeral_storage" field.
func EphemeralStorageNotNil() predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotNull(FieldEphemeralStorage))
}

// EphemeralStorageEqualFold applies the EqualFold predicate on the "ephemeral_storage" field.
func EphemeralStorageEqualFold(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEqualFold(FieldEphemeralStorage, v))
}

// EphemeralStorageContainsFold applies the ContainsFold predicate on the "ephemeral_storage" field.
func EphemeralStorageContainsFold(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldContainsFold(FieldEphemeralStorage, v))
}

// NetworkPolicyEQ applies the EQ predicate on the "network_policy" field.
func NetworkPolicyEQ(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldNetworkPolicy, v))
}

// NetworkPolicyNEQ applies the NEQ predicate on the "network_policy" field.
func NetworkPolicyNEQ(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNEQ(FieldNetworkPolicy, v))
}

// NetworkPolicyIn applies the In predicate on the "network_policy" field.
func NetworkPolicyIn(vs ...string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIn(FieldNetworkPolicy, vs...))
}

// NetworkPolicyNotIn applies the NotIn predicate on the "network_policy" field.
func NetworkPolicyNotIn(vs ...string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotIn(FieldNetworkPolicy, vs...))
}

// NetworkPolicyGT applies the GT predicate on the "network_policy" field.
func NetworkPolicyGT(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGT(FieldNetworkPolicy, v))
}

// NetworkPolicyGTE applies the GTE predicate on the "network_policy" field.
func NetworkPolicyGTE(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGTE(FieldNetworkPolicy, v))
}

// NetworkPolicyLT applies the LT predicate on the "network_policy" field.
func NetworkPolicyLT(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLT(FieldNetworkPolicy, v))
}

// NetworkPolicyLTE applies the LTE predicate on the "network_policy" field.
func NetworkPolicyLTE(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLTE(FieldNetworkPolicy, v))
}

// NetworkPolicyContains applies the Contains predicate on the "network_policy" field.
func NetworkPolicyContains(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldContains(FieldNetworkPolicy, v))
}

// NetworkPolicyHasPrefix applies the HasPrefix predicate on the "network_policy" field.
func NetworkPolicyHasPrefix(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldHasPrefix(FieldNetworkPolicy, v))
}

// NetworkPolicyHasSuffix applies the HasSuffix predicate on the "network_policy" field.
func NetworkPolicyHasSuffix(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldHasSuffix(FieldNetworkPolicy, v))
}

// NetworkPolicyIsNil applies the IsNil predicate on the "network_policy" field.
func NetworkPolicyIsNil() predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIsNull(FieldNetworkPolicy))
}

// NetworkPolicyNotNil applies the NotNil predicate on the "network_policy" field.
func NetworkPolicyNotNil() predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotNull(FieldNetworkPolicy))
}

// NetworkPolicyEqualFold applies the EqualFold predicate on the "network_policy" field.
func NetworkPolicyEqualFold(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEqualFold(FieldNetworkPolicy, v))
}

// NetworkPolicyContainsFold applies the ContainsFold predicate on the "network_policy" field.
func NetworkPolicyContainsFold(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldContainsFold(FieldNetworkPolicy, v))
}

// SecurityProfileEQ applies the EQ predicate on the "security_profile" field.
func SecurityProfileEQ(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldSecurityProfile, v))
}

// SecurityProfileNEQ applies the NEQ predicate on the "security_profile" field.
func SecurityProfileNEQ(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNEQ(FieldSecurityProfile, v))
}

// SecurityProfileIn applies the In predicate on the "security_profile" field.
func SecurityProfileIn(vs ...string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIn(FieldSecurityProfile, vs...))
}

// SecurityProfileNotIn applies the NotIn predicate on the "security_profile" field.
func SecurityProfileNotIn(vs ...string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotIn(FieldSecurityProfile, vs...))
}

// SecurityProfileGT applies the GT predicate on the "security_profile" field.
func SecurityProfileGT(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGT(FieldSecurityProfile, v))
}

// SecurityProfileGTE applies the GTE predicate on the "security_profile" field.
func SecurityProfileGTE(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGTE(FieldSecurityProfile, v))
}

// SecurityProfileLT applies the LT predicate on the "security_profile" field.
func SecurityProfileLT(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLT(FieldSecurityProfile, v))
}

// SecurityProfileLTE applies the LTE predicate on the "security_profile" field.
func SecurityProfileLTE(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLTE(FieldSecurityProfile, v))
}

// SecurityProfileContains applies the Contains predicate on the "security_profile" field.
func SecurityProfileContains(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldContains(FieldSecurityProfile, v))
}

// SecurityProfileHasPrefix applies the HasPrefix predicate on the "security_profile" field.
func SecurityProfileHasPrefix(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldHasPrefix(FieldSecurityProfile, v))
}

// SecurityProfileHasSuffix applies the HasSuffix predicate on the "security_profile" field.
func SecurityProfileHasSuffix(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldHasSuffix(FieldSecurityProfile, v))
}

// SecurityProfileIsNil applies the IsNil predicate on the "security_profile" field.
func SecurityProfileIsNil() predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIsNull(FieldSecurityProfile))
}

// SecurityProfileNotNil applies the NotNil predicate on the "security_profile" field.
func SecurityProfileNotNil() predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotNull(FieldSecurityProfile))
}

// SecurityProfileEqualFold applies the EqualFold predicate on the "security_profile" field.
func SecurityProfileEqualFold(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEqualFold(FieldSecurityProfile, v))
}

// SecurityProfileContainsFold applies the ContainsFold predicate on the "security_profile" field.
func SecurityProfileContainsFold(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldContainsFold(FieldSecurityProfile, v))
}

// BackendRefEQ applies the EQ predicate on the "backend_ref" field.
func BackendRefEQ(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldBackendRef, v))
}

// BackendRefNEQ applies the NEQ predicate on the "backend_ref" field.
func BackendRefNEQ(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNEQ(FieldBackendRef, v))
}

// BackendRefIn applies the In predicate on the "backend_ref" field.
func BackendRefIn(vs ...string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIn(FieldBackendRef, vs...))
}

// BackendRefNotIn applies the NotIn predicate on the "backend_ref" field.
func BackendRefNotIn(vs ...string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotIn(FieldBackendRef, vs...))
}

// BackendRefGT applies the GT predicate on the "backend_ref" field.
func BackendRefGT(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGT(FieldBackendRef, v))
}

// BackendRefGTE applies the GTE predicate on the "backend_ref" field.
func BackendRefGTE(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGTE(FieldBackendRef, v))
}

// BackendRefLT applies the LT predicate on the "backend_ref" field.
func BackendRefLT(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLT(FieldBackendRef, v))
}

// BackendRefLTE applies the LTE predicate on the "backend_ref" field.
func BackendRefLTE(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLTE(FieldBackendRef, v))
}

// BackendRefContains applies the Contains predicate on the "backend_ref" field.
func BackendRefContains(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldContains(FieldBackendRef, v))
}

// BackendRefHasPrefix applies the HasPrefix predicate on the "backend_ref" field.
func BackendRefHasPrefix(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldHasPrefix(FieldBackendRef, v))
}

// BackendRefHasSuffix applies the HasSuffix predicate on the "backend_ref" field.
func BackendRefHasSuffix(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldHasSuffix(FieldBackendRef, v))
}

// BackendRefIsNil applies the IsNil predicate on the "backend_ref" field.
func BackendRefIsNil() predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIsNull(FieldBackendRef))
}

// BackendRefNotNil applies the NotNil predicate on the "backend_ref" field.
func BackendRefNotNil() predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotNull(FieldBackendRef))
}

// BackendRefEqualFold applies the EqualFold predicate on the "backend_ref" field.
func BackendRefEqualFold(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEqualFold(FieldBackendRef, v))
}

// BackendRefContainsFold applies the ContainsFold predicate on the "backend_ref" field.
func BackendRefContainsFold(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldContainsFold(FieldBackendRef, v))
}

// ControlEndpointEQ applies the EQ predicate on the "control_endpoint" field.
func ControlEndpointEQ(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldControlEndpoint, v))
}

// ControlEndpointNEQ applies the NEQ predicate on the "control_endpoint" field.
func ControlEndpointNEQ(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNEQ(FieldControlEndpoint, v))
}

// ControlEndpointIn applies the In predicate on the "control_endpoint" field.
func ControlEndpointIn(vs ...string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIn(FieldControlEndpoint, vs...))
}

// ControlEndpointNotIn applies the NotIn predicate on the "control_endpoint" field.
func ControlEndpointNotIn(vs ...string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotIn(FieldControlEndpoint, vs...))
}

// ControlEndpointGT applies the GT predicate on the "control_endpoint" field.
func ControlEndpointGT(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGT(FieldControlEndpoint, v))
}

// ControlEndpointGTE applies the GTE predicate on the "control_endpoint" field.
func ControlEndpointGTE(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGTE(FieldControlEndpoint, v))
}

// ControlEndpointLT applies the LT predicate on the "control_endpoint" field.
func ControlEndpointLT(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLT(FieldControlEndpoint, v))
}

// ControlEndpointLTE applies the LTE predicate on the "control_endpoint" field.
func ControlEndpointLTE(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLTE(FieldControlEndpoint, v))
}

// ControlEndpointContains applies the Contains predicate on the "control_endpoint" field.
func ControlEndpointContains(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldContains(FieldControlEndpoint, v))
}

// ControlEndpointHasPrefix applies the HasPrefix predicate on the "control_endpoint" field.
func ControlEndpointHasPrefix(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldHasPrefix(FieldControlEndpoint, v))
}

// ControlEndpointHasSuffix applies the HasSuffix predicate on the "control_endpoint" field.
func ControlEndpointHasSuffix(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldHasSuffix(FieldControlEndpoint, v))
}

// ControlEndpointIsNil applies the IsNil predicate on the "control_endpoint" field.
func ControlEndpointIsNil() predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIsNull(FieldControlEndpoint))
}

// ControlEndpointNotNil applies the NotNil predicate on the "control_endpoint" field.
func ControlEndpointNotNil() predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotNull(FieldControlEndpoint))
}

// ControlEndpointEqualFold applies the EqualFold predicate on the "control_endpoint" field.
func ControlEndpointEqualFold(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEqualFold(FieldControlEndpoint, v))
}

// ControlEndpointContainsFold applies the ContainsFold predicate on the "control_endpoint" field.
func ControlEndpointContainsFold(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldContainsFold(FieldControlEndpoint, v))
}

// WorkspacePathEQ applies the EQ predicate on the "workspace_path" field.
func WorkspacePathEQ(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldWorkspacePath, v))
}

// WorkspacePathNEQ applies the NEQ predicate on the "workspace_path" field.
func WorkspacePathNEQ(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNEQ(FieldWorkspacePath, v))
}

// WorkspacePathIn applies the In predicate on the "workspace_path" field.
func WorkspacePathIn(vs ...string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIn(FieldWorkspacePath, vs...))
}

// WorkspacePathNotIn applies the NotIn predicate on the "workspace_path" field.
func WorkspacePathNotIn(vs ...string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotIn(FieldWorkspacePath, vs...))
}

// WorkspacePathGT applies the GT predicate on the "workspace_path" field.
func WorkspacePathGT(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGT(FieldWorkspacePath, v))
}

// WorkspacePathGTE applies the GTE predicate on the "workspace_path" field.
func WorkspacePathGTE(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGTE(FieldWorkspacePath, v))
}

// WorkspacePathLT applies the LT predicate on the "workspace_path" field.
func WorkspacePathLT(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLT(FieldWorkspacePath, v))
}

// WorkspacePathLTE applies the LTE predicate on the "workspace_path" field.
func WorkspacePathLTE(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLTE(FieldWorkspacePath, v))
}

// WorkspacePathContains applies the Contains predicate on the "workspace_path" field.
func WorkspacePathContains(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldContains(FieldWorkspacePath, v))
}

// WorkspacePathHasPrefix applies the HasPrefix predicate on the "workspace_path" field.
func WorkspacePathHasPrefix(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldHasPrefix(FieldWorkspacePath, v))
}

// WorkspacePathHasSuffix applies the HasSuffix predicate on the "workspace_path" field.
func WorkspacePathHasSuffix(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldHasSuffix(FieldWorkspacePath, v))
}

// WorkspacePathEqualFold applies the EqualFold predicate on the "workspace_path" field.
func WorkspacePathEqualFold(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEqualFold(FieldWorkspacePath, v))
}

// WorkspacePathContainsFold applies the ContainsFold predicate on the "workspace_path" field.
func WorkspacePathContainsFold(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldContainsFold(FieldWorkspacePath, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLTE(FieldCreatedAt, v))
}

// LastActivityAtEQ applies the EQ predicate on the "last_activity_at" field.
func LastActivityAtEQ(v time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldLastActivityAt, v))
}

// LastActivityAtNEQ applies the NEQ predicate on the "last_activity_at" field.
func LastActivityAtNEQ(v time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNEQ(FieldLastActivityAt, v))
}

// LastActivityAtIn applies the In predicate on the "last_activity_at" field.
func LastActivityAtIn(vs ...time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIn(FieldLastActivityAt, vs...))
}

// LastActivityAtNotIn applies the NotIn predicate on the "last_activity_at" field.
func LastActivityAtNotIn(vs ...time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotIn(FieldLastActivityAt, vs...))
}

// LastActivityAtGT applies the GT predicate on the "last_activity_at" field.
func LastActivityAtGT(v time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGT(FieldLastActivityAt, v))
}

// LastActivityAtGTE applies the GTE predicate on the "last_activity_at" field.
func LastActivityAtGTE(v time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGTE(FieldLastActivityAt, v))
}

// LastActivityAtLT applies the LT predicate on the "last_activity_at" field.
func LastActivityAtLT(v time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLT(FieldLastActivityAt, v))
}

// LastActivityAtLTE applies the LTE predicate on the "last_activity_at" field.
func LastActivityAtLTE(v time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLTE(FieldLastActivityAt, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotNull(FieldExpiresAt))
}

// IdleTimeoutSecEQ applies the EQ predicate on the "idle_timeout_sec" field.
func IdleTimeoutSecEQ(v int) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldIdleTimeoutSec, v))
}

// IdleTimeoutSecNEQ applies the NEQ predicate on the "idle_timeout_sec" field.
func IdleTimeoutSecNEQ(v int) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNEQ(FieldIdleTimeoutSec, v))
}

// IdleTimeoutSecIn applies the In predicate on the "idle_timeout_sec" field.
func IdleTimeoutSecIn(vs ...int) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIn(FieldIdleTimeoutSec, vs...))
}

// IdleTimeoutSecNotIn applies the NotIn predicate on the "idle_timeout_sec" field.
func IdleTimeoutSecNotIn(vs ...int) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotIn(FieldIdleTimeoutSec, vs...))
}

// IdleTimeoutSecGT applies the GT predicate on the "idle_timeout_sec" field.
func IdleTimeoutSecGT(v int) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGT(FieldIdleTimeoutSec, v))
}

// IdleTimeoutSecGTE applies the GTE predicate on the "idle_timeout_sec" field.
func IdleTimeoutSecGTE(v int) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGTE(FieldIdleTimeoutSec, v))
}

// IdleTimeoutSecLT applies the LT predicate on the "idle_timeout_sec" field.
func IdleTimeoutSecLT(v int) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLT(FieldIdleTimeoutSec, v))
}

// IdleTimeoutSecLTE applies the LTE predicate on the "idle_timeout_sec" field.
func IdleTimeoutSecLTE(v int) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLTE(FieldIdleTimeoutSec, v))
}

// IdleTimeoutSecIsNil applies the IsNil predicate on the "idle_timeout_sec" field.
func IdleTimeoutSecIsNil() predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIsNull(FieldIdleTimeoutSec))
}

// IdleTimeoutSecNotNil applies the NotNil predicate on the "idle_timeout_sec" field.
func IdleTimeoutSecNotNil() predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotNull(FieldIdleTimeoutSec))
}

// MaxLifetimeSecEQ applies the EQ predicate on the "max_lifetime_sec" field.
func MaxLifetimeSecEQ(v int) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldMaxLifetimeSec, v))
}

// MaxLifetimeSecNEQ applies the NEQ predicate on the "max_lifetime_sec" field.
func MaxLifetimeSecNEQ(v int) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNEQ(FieldMaxLifetimeSec, v))
}

// MaxLifetimeSecIn applies the In predicate on the "max_lifetime_sec" field.
func MaxLifetimeSecIn(vs ...int) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIn(FieldMaxLifetimeSec, vs...))
}

// MaxLifetimeSecNotIn applies the NotIn predicate on the "max_lifetime_sec" field.
func MaxLifetimeSecNotIn(vs ...int) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotIn(FieldMaxLifetimeSec, vs...))
}

// MaxLifetimeSecGT applies the GT predicate on the "max_lifetime_sec" field.
func MaxLifetimeSecGT(v int) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGT(FieldMaxLifetimeSec, v))
}

// MaxLifetimeSecGTE applies the GTE predicate on the "max_lifetime_sec" field.
func MaxLifetimeSecGTE(v int) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGTE(FieldMaxLifetimeSec, v))
}

// MaxLifetimeSecLT applies the LT predicate on the "max_lifetime_sec" field.
func MaxLifetimeSecLT(v int) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLT(FieldMaxLifetimeSec, v))
}

// MaxLifetimeSecLTE applies the LTE predicate on the "max_lifetime_sec" field.
func MaxLifetimeSecLTE(v int) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLTE(FieldMaxLifetimeSec, v))
}

// MaxLifetimeSecIsNil applies the IsNil predicate on the "max_lifetime_sec" field.
func MaxLifetimeSecIsNil() predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIsNull(FieldMaxLifetimeSec))
}

// MaxLifetimeSecNotNil applies the NotNil predicate on the "max_lifetime_sec" field.
func MaxLifetimeSecNotNil() predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotNull(FieldMaxLifetimeSec))
}

// RestoreSnapshotIDEQ applies the EQ predicate on the "restore_snapshot_id" field.
func RestoreSnapshotIDEQ(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldRestoreSnapshotID, v))
}

// RestoreSnapshotIDNEQ applies the NEQ predicate on the "restore_snapshot_id" field.
func RestoreSnapshotIDNEQ(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNEQ(FieldRestoreSnapshotID, v))
}

// RestoreSnapshotIDIn applies the In predicate on the "restore_snapshot_id" field.
func RestoreSnapshotIDIn(vs ...string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIn(FieldRestoreSnapshotID, vs...))
}

// RestoreSnapshotIDNotIn applies the NotIn predicate on the "restore_snapshot_id" field.
func RestoreSnapshotIDNotIn(vs ...string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotIn(FieldRestoreSnapshotID, vs...))
}

// RestoreSnapshotIDGT applies the GT predicate on the "restore_snapshot_id" field.
func RestoreSnapshotIDGT(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGT(FieldRestoreSnapshotID, v))
}

// RestoreSnapshotIDGTE applies the GTE predicate on the "restore_snapshot_id" field.
func RestoreSnapshotIDGTE(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGTE(FieldRestoreSnapshotID, v))
}

// RestoreSnapshotIDLT applies the LT predicate on the "restore_snapshot_id" field.
func RestoreSnapshotIDLT(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLT(FieldRestoreSnapshotID, v))
}

// RestoreSnapshotIDLTE applies the LTE predicate on the "restore_snapshot_id" field.
func RestoreSnapshotIDLTE(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLTE(FieldRestoreSnapshotID, v))
}

// RestoreSnapshotIDContains applies the Contains predicate on the "restore_snapshot_id" field.
func RestoreSnapshotIDContains(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldContains(FieldRestoreSnapshotID, v))
}

// RestoreSnapshotIDHasPrefix applies the HasPrefix predicate on the "restore_snapshot_id" field.
func RestoreSnapshotIDHasPrefix(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldHasPrefix(FieldRestoreSnapshotID, v))
}

// RestoreSnapshotIDHasSuffix applies the HasSuffix predicate on the "restore_snapshot_id" field.
func RestoreSnapshotIDHasSuffix(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldHasSuffix(FieldRestoreSnapshotID, v))
}

// RestoreSnapshotIDIsNil applies the IsNil predicate on the "restore_snapshot_id" field.
func RestoreSnapshotIDIsNil() predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIsNull(FieldRestoreSnapshotID))
}

// RestoreSnapshotIDNotNil applies the NotNil predicate on the "restore_snapshot_id" field.
func RestoreSnapshotIDNotNil() predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotNull(FieldRestoreSnapshotID))
}

// RestoreSnapshotIDEqualFold applies the EqualFold predicate on the "restore_snapshot_id" field.
func RestoreSnapshotIDEqualFold(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEqualFold(FieldRestoreSnapshotID, v))
}

// RestoreSnapshotIDContainsFold applies the ContainsFold predicate on the "restore_snapshot_id" field.
func RestoreSnapshotIDContainsFold(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldContainsFold(FieldRestoreSnapshotID, v))
}

// CPUSecondsEQ applies the EQ predicate on the "cpu_seconds" field.
func CPUSecondsEQ(v float64) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldCPUSeconds, v))
}

// CPUSecondsNEQ applies the NEQ predicate on the "cpu_seconds" field.
func CPUSecondsNEQ(v float64) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNEQ(FieldCPUSeconds, v))
}

// CPUSecondsIn applies the In predicate on the "cpu_seconds" field.
func CPUSecondsIn(vs ...float64) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIn(FieldCPUSeconds, vs...))
}

// CPUSecondsNotIn applies the NotIn predicate on the "cpu_seconds" field.
func CPUSecondsNotIn(vs ...float64) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotIn(FieldCPUSeconds, vs...))
}

// CPUSecondsGT applies the GT predicate on the "cpu_seconds" field.
func CPUSecondsGT(v float64) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGT(FieldCPUSeconds, v))
}

// CPUSecondsGTE applies the GTE predicate on the "cpu_seconds" field.
func CPUSecondsGTE(v float64) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGTE(FieldCPUSeconds, v))
}

// CPUSecondsLT applies the LT predicate on the "cpu_seconds" field.
func CPUSecondsLT(v float64) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLT(FieldCPUSeconds, v))
}

// CPUSecondsLTE applies the LTE predicate on the "cpu_seconds" field.
func CPUSecondsLTE(v float64) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLTE(FieldCPUSeconds, v))
}

// StorageBytesEQ applies the EQ predicate on the "storage_bytes" field.
func StorageBytesEQ(v int64) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldStorageBytes, v))
}

// StorageBytesNEQ applies the NEQ predicate on the "storage_bytes" field.
func StorageBytesNEQ(v int64) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNEQ(FieldStorageBytes, v))
}

// StorageBytesIn applies the In predicate on the "storage_bytes" field.
func StorageBytesIn(vs ...int64) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIn(FieldStorageBytes, vs...))
}

// StorageBytesNotIn applies the NotIn predicate on the "storage_bytes" field.
func StorageBytesNotIn(vs ...int64) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotIn(FieldStorageBytes, vs...))
}

// StorageBytesGT applies the GT predicate on the "storage_bytes" field.
func StorageBytesGT(v int64) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGT(FieldStorageBytes, v))
}

// StorageBytesGTE applies the GTE predicate on the "storage_bytes" field.
func StorageBytesGTE(v int64) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGTE(FieldStorageBytes, v))
}

// StorageBytesLT applies the LT predicate on the "storage_bytes" field.
func StorageBytesLT(v int64) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLT(FieldStorageBytes, v))
}

// StorageBytesLTE applies the LTE predicate on the "storage_bytes" field.
func StorageBytesLTE(v int64) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLTE(FieldStorageBytes, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldContainsFold(FieldErrorMessage, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.SandboxSession {
	return predicate.SandboxSession(sql.FieldNotNull(FieldMetadata))
}

// HasSnapshots applies the HasEdge predicate on the "snapshots" edge.
func HasSnapshots() predicate.SandboxSession {
	return predicate.SandboxSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SnapshotsTable, SnapshotsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSnapshotsWith applies the HasEdge predicate on the "snapshots" edge with a given conditions (other predicates).
func HasSnapshotsWith(preds ...predicate.Snapshot) predicate.SandboxSession {
	return predicate.SandboxSession(func(s *sql.Selector) {
		step := newSnapshotsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasArtifacts applies the HasEdge predicate on the "artifacts" edge.
func HasArtifacts() predicate.SandboxSession {
	return predicate.SandboxSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ArtifactsTable, ArtifactsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasArtifactsWith applies the HasEdge predicate on the "artifacts" edge with a given conditions (other predicates).
func HasArtifactsWith(preds ...predicate.Artifact) predicate.SandboxSession {
	return predicate.SandboxSession(func(s *sql.Selector) {
		step := newArtifactsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.SandboxSession {
	return predicate.SandboxSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.SandboxSession {
	return predicate.SandboxSession(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SandboxSession) predicate.SandboxSession {
	return predicate.SandboxSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SandboxSession) predicate.SandboxSession {
	return predicate.SandboxSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SandboxSession) predicate.SandboxSession {
	return predicate.SandboxSession(sql.NotPredicates(p))
}
