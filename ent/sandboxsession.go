// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/astraforge/astraforge/ent/sandboxsession"
)

// SandboxSession is the model entity for the SandboxSession schema.
type SandboxSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Owning user (external reference)
	UserID string `json:"user_id,omitempty"`
	// Owning workspace (external reference)
	WorkspaceID string `json:"workspace_id,omitempty"`
	// Backend holds the value of the "backend" field.
	Backend sandboxsession.Backend `json:"backend,omitempty"`
	// Image holds the value of the "image" field.
	Image string `json:"image,omitempty"`
	// CPULimit holds the value of the "cpu_limit" field.
	CPULimit string `json:"cpu_limit,omitempty"`
	// MemoryLimit holds the value of the "memory_limit" field.
	MemoryLimit string `json:"memory_limit,omitempty"`
	// EphemeralStorage holds the value of the "ephemeral_storage" field.
	EphemeralStorage string `json:"ephemeral_storage,omitempty"`
	// NetworkPolicy holds the value of the "network_policy" field.
	NetworkPolicy string `json:"network_policy,omitempty"`
	// SecurityProfile holds the value of the "security_profile" field.
	SecurityProfile string `json:"security_profile,omitempty"`
	// local://<name> or cluster://<namespace>/<pod>
	BackendRef *string `json:"backend_ref,omitempty"`
	// ControlEndpoint holds the value of the "control_endpoint" field.
	ControlEndpoint *string `json:"control_endpoint,omitempty"`
	// WorkspacePath holds the value of the "workspace_path" field.
	WorkspacePath string `json:"workspace_path,omitempty"`
	// Status holds the value of the "status" field.
	Status sandboxsession.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// LastActivityAt holds the value of the "last_activity_at" field.
	LastActivityAt time.Time `json:"last_activity_at,omitempty"`
	// LastHeartbeatAt holds the value of the "last_heartbeat_at" field.
	LastHeartbeatAt time.Time `json:"last_heartbeat_at,omitempty"`
	// created_at + max_lifetime_sec when set
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	// IdleTimeoutSec holds the value of the "idle_timeout_sec" field.
	IdleTimeoutSec *int `json:"idle_timeout_sec,omitempty"`
	// MaxLifetimeSec holds the value of the "max_lifetime_sec" field.
	MaxLifetimeSec *int `json:"max_lifetime_sec,omitempty"`
	// RestoreSnapshotID holds the value of the "restore_snapshot_id" field.
	RestoreSnapshotID *string `json:"restore_snapshot_id,omitempty"`
	// CPUSeconds holds the value of the "cpu_seconds" field.
	CPUSeconds float64 `json:"cpu_seconds,omitempty"`
	// StorageBytes holds the value of the "storage_bytes" field.
	StorageBytes int64 `json:"storage_bytes,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Free-form: latest_snapshot_id, terminated_reason, ...
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SandboxSessionQuery when eager-loading is set.
	Edges        SandboxSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SandboxSessionEdges holds the relations/edges for other nodes in the graph.
type SandboxSessionEdges struct {
	// Snapshots holds the value of the snapshots edge.
	Snapshots []*Snapshot `json:"snapshots,omitempty"`
	// Artifacts holds the value of the artifacts edge.
	Artifacts []*Artifact `json:"artifacts,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// SnapshotsOrErr returns the Snapshots value or an error if the edge
// was not loaded in eager-loading.
func (e SandboxSessionEdges) SnapshotsOrErr() ([]*Snapshot, error) {
	if e.loadedTypes[0] {
		return e.Snapshots, nil
	}
	return nil, &NotLoadedError{edge: "snapshots"}
}

// ArtifactsOrErr returns the Artifacts value or an error if the edge
// was not loaded in eager-loading.
func (e SandboxSessionEdges) ArtifactsOrErr() ([]*Artifact, error) {
	if e.loadedTypes[1] {
		return e.Artifacts, nil
	}
	return nil, &NotLoadedError{edge: "artifacts"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e SandboxSessionEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[2] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SandboxSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sandboxsession.FieldMetadata:
			values[i] = new([]byte)
		case sandboxsession.FieldCPUSeconds:
			values[i] = new(sql.NullFloat64)
		case sandboxsession.FieldIdleTimeoutSec, sandboxsession.FieldMaxLifetimeSec, sandboxsession.FieldStorageBytes:
			values[i] = new(sql.NullInt64)
		case sandboxsession.FieldID, sandboxsession.FieldUserID, sandboxsession.FieldWorkspaceID, sandboxsession.FieldBackend, sandboxsession.FieldImage, sandboxsession.FieldCPULimit, sandboxsession.FieldMemoryLimit, sandboxsession.FieldEphemeralStorage, sandboxsession.FieldNetworkPolicy, sandboxsession.FieldSecurityProfile, sandboxsession.FieldBackendRef, sandboxsession.FieldControlEndpoint, sandboxsession.FieldWorkspacePath, sandboxsession.FieldStatus, sandboxsession.FieldRestoreSnapshotID, sandboxsession.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case sandboxsession.FieldCreatedAt, sandboxsession.FieldLastActivityAt, sandboxsession.FieldLastHeartbeatAt, sandboxsession.FieldExpiresAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SandboxSession fields.
func (_m *SandboxSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sandboxsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sandboxsession.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case sandboxsession.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case sandboxsession.FieldBackend:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field backend", values[i])
			} else if value.Valid {
				_m.Backend = sandboxsession.Backend(value.String)
			}
		case sandboxsession.FieldImage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image", values[i])
			} else if value.Valid {
				_m.Image = value.String
			}
		case sandboxsession.FieldCPULimit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cpu_limit", values[i])
			} else if value.Valid {
				_m.CPULimit = value.String
			}
		case sandboxsession.FieldMemoryLimit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field memory_limit", values[i])
			} else if value.Valid {
				_m.MemoryLimit = value.String
			}
		case sandboxsession.FieldEphemeralStorage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ephemeral_storage", values[i])
			} else if value.Valid {
				_m.EphemeralStorage = value.String
			}
		case sandboxsession.FieldNetworkPolicy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field network_policy", values[i])
			} else if value.Valid {
				_m.NetworkPolicy = value.String
			}
		case sandboxsession.FieldSecurityProfile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field security_profile", values[i])
			} else if value.Valid {
				_m.SecurityProfile = value.String
			}
		case sandboxsession.FieldBackendRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field backend_ref", values[i])
			} else if value.Valid {
				_m.BackendRef = new(string)
				*_m.BackendRef = value.String
			}
		case sandboxsession.FieldControlEndpoint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field control_endpoint", values[i])
			} else if value.Valid {
				_m.ControlEndpoint = new(string)
				*_m.ControlEndpoint = value.String
			}
		case sandboxsession.FieldWorkspacePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_path", values[i])
			} else if value.Valid {
				_m.WorkspacePath = value.String
			}
		case sandboxsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = sandboxsession.Status(value.String)
			}
		case sandboxsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case sandboxsession.FieldLastActivityAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_activity_at", values[i])
			} else if value.Valid {
				_m.LastActivityAt = value.Time
			}
		case sandboxsession.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = value.Time
			}
		case sandboxsession.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = new(time.Time)
				*_m.ExpiresAt = value.Time
			}
		case sandboxsession.FieldIdleTimeoutSec:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field idle_timeout_sec", values[i])
			} else if value.Valid {
				_m.IdleTimeoutSec = new(int)
				*_m.IdleTimeoutSec = int(value.Int64)
			}
		case sandboxsession.FieldMaxLifetimeSec:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_lifetime_sec", values[i])
			} else if value.Valid {
				_m.MaxLifetimeSec = new(int)
				*_m.MaxLifetimeSec = int(value.Int64)
			}
		case sandboxsession.FieldRestoreSnapshotID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field restore_snapshot_id", values[i])
			} else if value.Valid {
				_m.RestoreSnapshotID = new(string)
				*_m.RestoreSnapshotID = value.String
			}
		case sandboxsession.FieldCPUSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cpu_seconds", values[i])
			} else if value.Valid {
				_m.CPUSeconds = value.Float64
			}
		case sandboxsession.FieldStorageBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field storage_bytes", values[i])
			} else if value.Valid {
				_m.StorageBytes = value.Int64
			}
		case sandboxsession.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case sandboxsession.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SandboxSession.
// This includes values selected through modifiers, order, etc.
func (_m *SandboxSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySnapshots queries the "snapshots" edge of the SandboxSession entity.
func (_m *SandboxSession) QuerySnapshots() *SnapshotQuery {
	return NewSandboxSessionClient(_m.config).QuerySnapshots(_m)
}

// QueryArtifacts queries the "artifacts" edge of the SandboxSession entity.
func (_m *SandboxSession) QueryArtifacts() *ArtifactQuery {
	return NewSandboxSessionClient(_m.config).QueryArtifacts(_m)
}

// QueryEvents queries the "events" edge of the SandboxSession entity.
func (_m *SandboxSession) QueryEvents() *EventQuery {
	return NewSandboxSessionClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this SandboxSession.
// Note that you need to call SandboxSession.Unwrap() before calling this method if this SandboxSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SandboxSession) Update() *SandboxSessionUpdateOne {
	return NewSandboxSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SandboxSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SandboxSession) Unwrap() *SandboxSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SandboxSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SandboxSession) String() string {
	var builder strings.Builder
	builder.WriteString("SandboxSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	builder.WriteString("backend=")
	builder.WriteString(fmt.Sprintf("%v", _m.Backend))
	builder.WriteString(", ")
	builder.WriteString("image=")
	builder.WriteString(_m.Image)
	builder.WriteString(", ")
	builder.WriteString("cpu_limit=")
	builder.WriteString(_m.CPULimit)
	builder.WriteString(", ")
	builder.WriteString("memory_limit=")
	builder.WriteString(_m.MemoryLimit)
	builder.WriteString(", ")
	builder.WriteString("ephemeral_storage=")
	builder.WriteString(_m.EphemeralStorage)
	builder.WriteString(", ")
	builder.WriteString("network_policy=")
	builder.WriteString(_m.NetworkPolicy)
	builder.WriteString(", ")
	builder.WriteString("security_profile=")
	builder.WriteString(_m.SecurityProfile)
	builder.WriteString(", ")
	if v := _m.BackendRef; v != nil {
		builder.WriteString("backend_ref=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ControlEndpoint; v != nil {
		builder.WriteString("control_endpoint=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("workspace_path=")
	builder.WriteString(_m.WorkspacePath)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_activity_at=")
	builder.WriteString(_m.LastActivityAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_heartbeat_at=")
	builder.WriteString(_m.LastHeartbeatAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ExpiresAt; v != nil {
		builder.WriteString("expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.IdleTimeoutSec; v != nil {
		builder.WriteString("idle_timeout_sec=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MaxLifetimeSec; v != nil {
		builder.WriteString("max_lifetime_sec=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RestoreSnapshotID; v != nil {
		builder.WriteString("restore_snapshot_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("cpu_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.CPUSeconds))
	builder.WriteString(", ")
	builder.WriteString("storage_bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.StorageBytes))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteByte(')')
	return builder.String()
}

// SandboxSessions is a parsable slice of SandboxSession.
type SandboxSessions []*SandboxSession
