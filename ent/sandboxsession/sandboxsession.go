// Code generated by ent, DO NOT EDIT.

package sandboxsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the sandboxsession type in the database.
	Label = "sandbox_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldBackend holds the string denoting the backend field in the database.
	FieldBackend = "backend"
	// FieldImage holds the string denoting the image field in the database.
	FieldImage = "image"
	// FieldCPULimit holds the string denoting the cpu_limit field in the database.
	FieldCPULimit = "cpu_limit"
	// FieldMemoryLimit holds the string denoting the memory_limit field in the database.
	FieldMemoryLimit = "memory_limit"
	// FieldEphemeralStorage holds the string denoting the ephemeral_storage field in the database.
	FieldEphemeralStorage = "ephemeral_storage"
	// FieldNetworkPolicy holds the string denoting the network_policy field in the database.
	FieldNetworkPolicy = "network_policy"
	// FieldSecurityProfile holds the string denoting the security_profile field in the database.
	FieldSecurityProfile = "security_profile"
	// FieldBackendRef holds the string denoting the backend_ref field in the database.
	FieldBackendRef = "backend_ref"
	// FieldControlEndpoint holds the string denoting the control_endpoint field in the database.
	FieldControlEndpoint = "control_endpoint"
	// FieldWorkspacePath holds the string denoting the workspace_path field in the database.
	FieldWorkspacePath = "workspace_path"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldLastActivityAt holds the string denoting the last_activity_at field in the database.
	FieldLastActivityAt = "last_activity_at"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldIdleTimeoutSec holds the string denoting the idle_timeout_sec field in the database.
	FieldIdleTimeoutSec = "idle_timeout_sec"
	// FieldMaxLifetimeSec holds the string denoting the max_lifetime_sec field in the database.
	FieldMaxLifetimeSec = "max_lifetime_sec"
	// FieldRestoreSnapshotID holds the string denoting the restore_snapshot_id field in the database.
	FieldRestoreSnapshotID = "restore_snapshot_id"
	// FieldCPUSeconds holds the string denoting the cpu_seconds field in the database.
	FieldCPUSeconds = "cpu_seconds"
	// FieldStorageBytes holds the string denoting the storage_bytes field in the database.
	FieldStorageBytes = "storage_bytes"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// EdgeSnapshots holds the string denoting the snapshots edge name in mutations.
	EdgeSnapshots = "snapshots"
	// EdgeArtifacts holds the string denoting the artifacts edge name in mutations.
	EdgeArtifacts = "artifacts"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// SnapshotFieldID holds the string denoting the ID field of the Snapshot.
	SnapshotFieldID = "snapshot_id"
	// ArtifactFieldID holds the string denoting the ID field of the Artifact.
	ArtifactFieldID = "artifact_id"
	// EventFieldID holds the string denoting the ID field of the Event.
	EventFieldID = "id"
	// Table holds the table name of the sandboxsession in the database.
	Table = "sandbox_sessions"
	// SnapshotsTable is the table that holds the snapshots relation/edge.
	SnapshotsTable = "snapshots"
	// SnapshotsInverseTable is the table name for the Snapshot entity.
	// It exists in this package in order to avoid circular dependency with the "snapshot" package.
	SnapshotsInverseTable = "snapshots"
	// SnapshotsColumn is the table column denoting the snapshots relation/edge.
	SnapshotsColumn = "session_id"
	// ArtifactsTable is the table that holds the artifacts relation/edge.
	ArtifactsTable = "artifacts"
	// ArtifactsInverseTable is the table name for the Artifact entity.
	// It exists in this package in order to avoid circular dependency with the "artifact" package.
	ArtifactsInverseTable = "artifacts"
	// ArtifactsColumn is the table column denoting the artifacts relation/edge.
	ArtifactsColumn = "session_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "events"
	// EventsInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventsInverseTable = "events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "session_id"
)

// Columns holds all SQL columns for sandboxsession fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldWorkspaceID,
	FieldBackend,
	FieldImage,
	FieldCPULimit,
	FieldMemoryLimit,
	FieldEphemeralStorage,
	FieldNetworkPolicy,
	FieldSecurityProfile,
	FieldBackendRef,
	FieldControlEndpoint,
	FieldWorkspacePath,
	FieldStatus,
	FieldCreatedAt,
	FieldLastActivityAt,
	FieldLastHeartbeatAt,
	FieldExpiresAt,
	FieldIdleTimeoutSec,
	FieldMaxLifetimeSec,
	FieldRestoreSnapshotID,
	FieldCPUSeconds,
	FieldStorageBytes,
	FieldErrorMessage,
	FieldMetadata,
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
	// DefaultWorkspacePath holds the default value on creation for the "workspace_path" field.
	DefaultWorkspacePath string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultLastActivityAt holds the default value on creation for the "last_activity_at" field.
	DefaultLastActivityAt func() time.Time
	// DefaultLastHeartbeatAt holds the default value on creation for the "last_heartbeat_at" field.
	DefaultLastHeartbeatAt func() time.Time
	// DefaultCPUSeconds holds the default value on creation for the "cpu_seconds" field.
	DefaultCPUSeconds float64
	// DefaultStorageBytes holds the default value on creation for the "storage_bytes" field.
	DefaultStorageBytes int64
)

// Backend defines the type for the "backend" enum field.
type Backend string

// Backend values.
const (
	BackendLocal   Backend = "local"
	BackendCluster Backend = "cluster"
)

func (b Backend) String() string {
	return string(b)
}

// BackendValidator is a validator for the "backend" field enum values. It is called by the builders before save.
func BackendValidator(b Backend) error {
	switch b {
	case BackendLocal, BackendCluster:
		return nil
	default:
		return fmt.Errorf("sandboxsession: invalid enum value for backend field: %q", b)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusStarting is the default value of the Status enum.
const DefaultStatus = StatusStarting

// Status values.
const (
	StatusStarting   Status = "starting"
	StatusReady      Status = "ready"
	StatusFailed     Status = "failed"
	StatusTerminated Status = "terminated"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusStarting, StatusReady, StatusFailed, StatusTerminated:
		return nil
	default:
		return fmt.Errorf("sandboxsession: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the SandboxSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByBackend orders the results by the backend field.
func ByBackend(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBackend, opts...).ToFunc()
}

// ByImage orders the results by the image field.
func ByImage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImage, opts...).ToFunc()
}

// ByCPULimit orders the results by the cpu_limit field.
func ByCPULimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCPULimit, opts...).ToFunc()
}

// ByMemoryLimit orders the results by the memory_limit field.
func ByMemoryLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemoryLimit, opts...).ToFunc()
}

// ByEphemeralStorage orders the results by the ephemeral_storage field.
func ByEphemeralStorage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEphemeralStorage, opts...).ToFunc()
}

// ByNetworkPolicy orders the results by the network_policy field.
func ByNetworkPolicy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNetworkPolicy, opts...).ToFunc()
}

// BySecurityProfile orders the results by the security_profile field.
func BySecurityProfile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSecurityProfile, opts...).ToFunc()
}

// ByBackendRef orders the results by the backend_ref field.
func ByBackendRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBackendRef, opts...).ToFunc()
}

// ByControlEndpoint orders the results by the control_endpoint field.
func ByControlEndpoint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldControlEndpoint, opts...).ToFunc()
}

// ByWorkspacePath orders the results by the workspace_path field.
func ByWorkspacePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspacePath, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLastActivityAt orders the results by the last_activity_at field.
func ByLastActivityAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivityAt, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByIdleTimeoutSec orders the results by the idle_timeout_sec field.
func ByIdleTimeoutSec(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdleTimeoutSec, opts...).ToFunc()
}

// ByMaxLifetimeSec orders the results by the max_lifetime_sec field.
func ByMaxLifetimeSec(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxLifetimeSec, opts...).ToFunc()
}

// ByRestoreSnapshotID orders the results by the restore_snapshot_id field.
func ByRestoreSnapshotID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRestoreSnapshotID, opts...).ToFunc()
}

// ByCPUSeconds orders the results by the cpu_seconds field.
func ByCPUSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCPUSeconds, opts...).ToFunc()
}

// ByStorageBytes orders the results by the storage_bytes field.
func ByStorageBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStorageBytes, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// BySnapshotsCount orders the results by snapshots count.
func BySnapshotsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSnapshotsStep(), opts...)
	}
}

// BySnapshots orders the results by snapshots terms.
func BySnapshots(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSnapshotsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByArtifactsCount orders the results by artifacts count.
func ByArtifactsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newArtifactsStep(), opts...)
	}
}

// ByArtifacts orders the results by artifacts terms.
func ByArtifacts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newArtifactsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSnapshotsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SnapshotsInverseTable, SnapshotFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SnapshotsTable, SnapshotsColumn),
	)
}
func newArtifactsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ArtifactsInverseTable, ArtifactFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ArtifactsTable, ArtifactsColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, EventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
