// Code generated by ent, DO NOT EDIT.

package quotaledger

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quotaledger type in the database.
	Label = "quota_ledger"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldPeriod holds the string denoting the period field in the database.
	FieldPeriod = "period"
	// FieldRequestsUsed holds the string denoting the requests_used field in the database.
	FieldRequestsUsed = "requests_used"
	// FieldSandboxesCreated holds the string denoting the sandboxes_created field in the database.
	FieldSandboxesCreated = "sandboxes_created"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the quotaledger in the database.
	Table = "quota_ledgers"
)

// Columns holds all SQL columns for quotaledger fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldPeriod,
	FieldRequestsUsed,
	FieldSandboxesCreated,
	FieldUpdatedAt,
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
	// DefaultRequestsUsed holds the default value on creation for the "requests_used" field.
	DefaultRequestsUsed int
	// DefaultSandboxesCreated holds the default value on creation for the "sandboxes_created" field.
	DefaultSandboxesCreated int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the QuotaLedger queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByPeriod orders the results by the period field.
func ByPeriod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPeriod, opts...).ToFunc()
}

// ByRequestsUsed orders the results by the requests_used field.
func ByRequestsUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestsUsed, opts...).ToFunc()
}

// BySandboxesCreated orders the results by the sandboxes_created field.
func BySandboxesCreated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSandboxesCreated, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
