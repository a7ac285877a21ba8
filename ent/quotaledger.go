// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/astraforge/astraforge/ent/quotaledger"
)

// QuotaLedger is the model entity for the QuotaLedger schema.
type QuotaLedger struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// Calendar month, YYYY-MM
	Period string `json:"period,omitempty"`
	// RequestsUsed holds the value of the "requests_used" field.
	RequestsUsed int `json:"requests_used,omitempty"`
	// SandboxesCreated holds the value of the "sandboxes_created" field.
	SandboxesCreated int `json:"sandboxes_created,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuotaLedger) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quotaledger.FieldID, quotaledger.FieldRequestsUsed, quotaledger.FieldSandboxesCreated:
			values[i] = new(sql.NullInt64)
		case quotaledger.FieldWorkspaceID, quotaledger.FieldPeriod:
			values[i] = new(sql.NullString)
		case quotaledger.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuotaLedger fields.
func (_m *QuotaLedger) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quotaledger.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quotaledger.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case quotaledger.FieldPeriod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field period", values[i])
			} else if value.Valid {
				_m.Period = value.String
			}
		case quotaledger.FieldRequestsUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field requests_used", values[i])
			} else if value.Valid {
				_m.RequestsUsed = int(value.Int64)
			}
		case quotaledger.FieldSandboxesCreated:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sandboxes_created", values[i])
			} else if value.Valid {
				_m.SandboxesCreated = int(value.Int64)
			}
		case quotaledger.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuotaLedger.
// This includes values selected through modifiers, order, etc.
func (_m *QuotaLedger) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuotaLedger.
// Note that you need to call QuotaLedger.Unwrap() before calling this method if this QuotaLedger
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuotaLedger) Update() *QuotaLedgerUpdateOne {
	return NewQuotaLedgerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuotaLedger entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuotaLedger) Unwrap() *QuotaLedger {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuotaLedger is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuotaLedger) String() string {
	var builder strings.Builder
	builder.WriteString("QuotaLedger(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	builder.WriteString("period=")
	builder.WriteString(_m.Period)
	builder.WriteString(", ")
	builder.WriteString("requests_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestsUsed))
	builder.WriteString(", ")
	builder.WriteString("sandboxes_created=")
	builder.WriteString(fmt.Sprintf("%v", _m.SandboxesCreated))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QuotaLedgers is a parsable slice of QuotaLedger.
type QuotaLedgers []*QuotaLedger
