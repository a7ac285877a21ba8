// Code generated by ent, DO NOT EDIT.

package quotaledger

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/astraforge/astraforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldLTE(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldEQ(FieldWorkspaceID, v))
}

// Period applies equality check predicate on the "period" field. It's identical to PeriodEQ.
func Period(v string) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldEQ(FieldPeriod, v))
}

// RequestsUsed applies equality check predicate on the "requests_used" field. It's identical to RequestsUsedEQ.
func RequestsUsed(v int) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldEQ(FieldRequestsUsed, v))
}

// SandboxesCreated applies equality check predicate on the "sandboxes_created" field. It's identical to SandboxesCreatedEQ.
func SandboxesCreated(v int) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldEQ(FieldSandboxesCreated, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// PeriodEQ applies the EQ predicate on the "period" field.
func PeriodEQ(v string) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldEQ(FieldPeriod, v))
}

// PeriodNEQ applies the NEQ predicate on the "period" field.
func PeriodNEQ(v string) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldNEQ(FieldPeriod, v))
}

// PeriodIn applies the In predicate on the "period" field.
func PeriodIn(vs ...string) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldIn(FieldPeriod, vs...))
}

// PeriodNotIn applies the NotIn predicate on the "period" field.
func PeriodNotIn(vs ...string) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldNotIn(FieldPeriod, vs...))
}

// PeriodGT applies the GT predicate on the "period" field.
func PeriodGT(v string) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldGT(FieldPeriod, v))
}

// PeriodGTE applies the GTE predicate on the "period" field.
func PeriodGTE(v string) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldGTE(FieldPeriod, v))
}

// PeriodLT applies the LT predicate on the "period" field.
func PeriodLT(v string) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldLT(FieldPeriod, v))
}

// PeriodLTE applies the LTE predicate on the "period" field.
func PeriodLTE(v string) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldLTE(FieldPeriod, v))
}

// PeriodContains applies the Contains predicate on the "period" field.
func PeriodContains(v string) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldContains(FieldPeriod, v))
}

// PeriodHasPrefix applies the HasPrefix predicate on the "period" field.
func PeriodHasPrefix(v string) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldHasPrefix(FieldPeriod, v))
}

// PeriodHasSuffix applies the HasSuffix predicate on the "period" field.
func PeriodHasSuffix(v string) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldHasSuffix(FieldPeriod, v))
}

// PeriodEqualFold applies the EqualFold predicate on the "period" field.
func PeriodEqualFold(v string) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldEqualFold(FieldPeriod, v))
}

// PeriodContainsFold applies the ContainsFold predicate on the "period" field.
func PeriodContainsFold(v string) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldContainsFold(FieldPeriod, v))
}

// RequestsUsedEQ applies the EQ predicate on the "requests_used" field.
func RequestsUsedEQ(v int) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldEQ(FieldRequestsUsed, v))
}

// RequestsUsedNEQ applies the NEQ predicate on the "requests_used" field.
func RequestsUsedNEQ(v int) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldNEQ(FieldRequestsUsed, v))
}

// RequestsUsedIn applies the In predicate on the "requests_used" field.
func RequestsUsedIn(vs ...int) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldIn(FieldRequestsUsed, vs...))
}

// RequestsUsedNotIn applies the NotIn predicate on the "requests_used" field.
func RequestsUsedNotIn(vs ...int) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldNotIn(FieldRequestsUsed, vs...))
}

// RequestsUsedGT applies the GT predicate on the "requests_used" field.
func RequestsUsedGT(v int) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldGT(FieldRequestsUsed, v))
}

// RequestsUsedGTE applies the GTE predicate on the "requests_used" field.
func RequestsUsedGTE(v int) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldGTE(FieldRequestsUsed, v))
}

// RequestsUsedLT applies the LT predicate on the "requests_used" field.
func RequestsUsedLT(v int) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldLT(FieldRequestsUsed, v))
}

// RequestsUsedLTE applies the LTE predicate on the "requests_used" field.
func RequestsUsedLTE(v int) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldLTE(FieldRequestsUsed, v))
}

// SandboxesCreatedEQ applies the EQ predicate on the "sandboxes_created" field.
func SandboxesCreatedEQ(v int) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldEQ(FieldSandboxesCreated, v))
}

// SandboxesCreatedNEQ applies the NEQ predicate on the "sandboxes_created" field.
func SandboxesCreatedNEQ(v int) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldNEQ(FieldSandboxesCreated, v))
}

// SandboxesCreatedIn applies the In predicate on the "sandboxes_created" field.
func SandboxesCreatedIn(vs ...int) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldIn(FieldSandboxesCreated, vs...))
}

// SandboxesCreatedNotIn applies the NotIn predicate on the "sandboxes_created" field.
func SandboxesCreatedNotIn(vs ...int) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldNotIn(FieldSandboxesCreated, vs...))
}

// SandboxesCreatedGT applies the GT predicate on the "sandboxes_created" field.
func SandboxesCreatedGT(v int) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldGT(FieldSandboxesCreated, v))
}

// SandboxesCreatedGTE applies the GTE predicate on the "sandboxes_created" field.
func SandboxesCreatedGTE(v int) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldGTE(FieldSandboxesCreated, v))
}

// SandboxesCreatedLT applies the LT predicate on the "sandboxes_created" field.
func SandboxesCreatedLT(v int) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldLT(FieldSandboxesCreated, v))
}

// SandboxesCreatedLTE applies the LTE predicate on the "sandboxes_created" field.
func SandboxesCreatedLTE(v int) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldLTE(FieldSandboxesCreated, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuotaLedger) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuotaLedger) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuotaLedger) predicate.QuotaLedger {
	return predicate.QuotaLedger(sql.NotPredicates(p))
}
