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
	"github.com/astraforge/astraforge/ent/checkpoint"
	"github.com/astraforge/astraforge/ent/conversation"
	"github.com/astraforge/astraforge/ent/document"
	"github.com/astraforge/astraforge/ent/predicate"
)

// ConversationUpdate is the builder for updating Conversation entities.
type ConversationUpdate struct {
	config
	hooks    []Hook
	mutation *ConversationMutation
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdate) Where(ps ...predicate.Conversation) *ConversationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGoal sets the "goal" field.
func (_u *ConversationUpdate) SetGoal(v string) *ConversationUpdate {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableGoal(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConversationUpdate) SetStatus(v conversation.Status) *ConversationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableStatus(v *conversation.Status) *ConversationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ConversationUpdate) SetSummary(v string) *ConversationUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableSummary(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ConversationUpdate) ClearSummary() *ConversationUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetFinalAnswer sets the "final_answer" field.
func (_u *ConversationUpdate) SetFinalAnswer(v string) *ConversationUpdate {
	_u.mutation.SetFinalAnswer(v)
	return _u
}

// SetNillableFinalAnswer sets the "final_answer" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableFinalAnswer(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetFinalAnswer(*v)
	}
	return _u
}

// ClearFinalAnswer clears the value of the "final_answer" field.
func (_u *ConversationUpdate) ClearFinalAnswer() *ConversationUpdate {
	_u.mutation.ClearFinalAnswer()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ConversationUpdate) SetErrorMessage(v string) *ConversationUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableErrorMessage(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ConversationUpdate) ClearErrorMessage() *ConversationUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetLastSnapshotID sets the "last_snapshot_id" field.
func (_u *ConversationUpdate) SetLastSnapshotID(v string) *ConversationUpdate {
	_u.mutation.SetLastSnapshotID(v)
	return _u
}

// SetNillableLastSnapshotID sets the "last_snapshot_id" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableLastSnapshotID(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetLastSnapshotID(*v)
	}
	return _u
}

// ClearLastSnapshotID clears the value of the "last_snapshot_id" field.
func (_u *ConversationUpdate) ClearLastSnapshotID() *ConversationUpdate {
	_u.mutation.ClearLastSnapshotID()
	return _u
}

// SetIsResume sets the "is_resume" field.
func (_u *ConversationUpdate) SetIsResume(v bool) *ConversationUpdate {
	_u.mutation.SetIsResume(v)
	return _u
}

// SetNillableIsResume sets the "is_resume" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableIsResume(v *bool) *ConversationUpdate {
	if v != nil {
		_u.SetIsResume(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ConversationUpdate) SetStartedAt(v time.Time) *ConversationUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableStartedAt(v *time.Time) *ConversationUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ConversationUpdate) ClearStartedAt() *ConversationUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ConversationUpdate) SetCompletedAt(v time.Time) *ConversationUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableCompletedAt(v *time.Time) *ConversationUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ConversationUpdate) ClearCompletedAt() *ConversationUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ConversationUpdate) SetPodID(v string) *ConversationUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillablePodID(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ConversationUpdate) ClearPodID() *ConversationUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *ConversationUpdate) SetLastInteractionAt(v time.Time) *ConversationUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableLastInteractionAt(v *time.Time) *ConversationUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *ConversationUpdate) ClearLastInteractionAt() *ConversationUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *ConversationUpdate) AddDocumentIDs(ids ...string) *ConversationUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *ConversationUpdate) AddDocuments(v ...*Document) *ConversationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// SetCheckpointID sets the "checkpoint" edge to the Checkpoint entity by ID.
func (_u *ConversationUpdate) SetCheckpointID(id string) *ConversationUpdate {
	_u.mutation.SetCheckpointID(id)
	return _u
}

// SetNillableCheckpointID sets the "checkpoint" edge to the Checkpoint entity by ID if the given value is not nil.
func (_u *ConversationUpdate) SetNillableCheckpointID(id *string) *ConversationUpdate {
	if id != nil {
		_u = _u.SetCheckpointID(*id)
	}
	return _u
}

// SetCheckpoint sets the "checkpoint" edge to the Checkpoint entity.
func (_u *ConversationUpdate) SetCheckpoint(v *Checkpoint) *ConversationUpdate {
	return _u.SetCheckpointID(v.ID)
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdate) Mutation() *ConversationMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *ConversationUpdate) ClearDocuments() *ConversationUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *ConversationUpdate) RemoveDocumentIDs(ids ...string) *ConversationUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *ConversationUpdate) RemoveDocuments(v ...*Document) *ConversationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearCheckpoint clears the "checkpoint" edge to the Checkpoint entity.
func (_u *ConversationUpdate) ClearCheckpoint() *ConversationUpdate {
	_u.mutation.ClearCheckpoint()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := conversation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Conversation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ConversationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(conversation.FieldGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(conversation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(conversation.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(conversation.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.FinalAnswer(); ok {
		_spec.SetField(conversation.FieldFinalAnswer, field.TypeString, value)
	}
	if _u.mutation.FinalAnswerCleared() {
		_spec.ClearField(conversation.FieldFinalAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(conversation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(conversation.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.LastSnapshotID(); ok {
		_spec.SetField(conversation.FieldLastSnapshotID, field.TypeString, value)
	}
	if _u.mutation.LastSnapshotIDCleared() {
		_spec.ClearField(conversation.FieldLastSnapshotID, field.TypeString)
	}
	if value, ok := _u.mutation.IsResume(); ok {
		_spec.SetField(conversation.FieldIsResume, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(conversation.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(conversation.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(conversation.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(conversation.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(conversation.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(conversation.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(conversation.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(conversation.FieldLastInteractionAt, field.TypeTime)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.DocumentsTable,
			Columns: []string{conversation.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.DocumentsTable,
			Columns: []string{conversation.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.DocumentsTable,
			Columns: []string{conversation.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   conversation.CheckpointTable,
			Columns: []string{conversation.CheckpointColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   conversation.CheckpointTable,
			Columns: []string{conversation.CheckpointColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversationUpdateOne is the builder for updating a single Conversation entity.
type ConversationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversationMutation
}

// SetGoal sets the "goal" field.
func (_u *ConversationUpdateOne) SetGoal(v string) *ConversationUpdateOne {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableGoal(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConversationUpdateOne) SetStatus(v conversation.Status) *ConversationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableStatus(v *conversation.Status) *ConversationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ConversationUpdateOne) SetSummary(v string) *ConversationUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableSummary(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ConversationUpdateOne) ClearSummary() *ConversationUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetFinalAnswer sets the "final_answer" field.
func (_u *ConversationUpdateOne) SetFinalAnswer(v string) *ConversationUpdateOne {
	_u.mutation.SetFinalAnswer(v)
	return _u
}

// SetNillableFinalAnswer sets the "final_answer" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableFinalAnswer(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetFinalAnswer(*v)
	}
	return _u
}

// ClearFinalAnswer clears the value of the "final_answer" field.
func (_u *ConversationUpdateOne) ClearFinalAnswer() *ConversationUpdateOne {
	_u.mutation.ClearFinalAnswer()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ConversationUpdateOne) SetErrorMessage(v string) *ConversationUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableErrorMessage(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ConversationUpdateOne) ClearErrorMessage() *ConversationUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetLastSnapshotID sets the "last_snapshot_id" field.
func (_u *ConversationUpdateOne) SetLastSnapshotID(v string) *ConversationUpdateOne {
	_u.mutation.SetLastSnapshotID(v)
	return _u
}

// SetNillableLastSnapshotID sets the "last_snapshot_id" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableLastSnapshotID(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetLastSnapshotID(*v)
	}
	return _u
}

// ClearLastSnapshotID clears the value of the "last_snapshot_id" field.
func (_u *ConversationUpdateOne) ClearLastSnapshotID() *ConversationUpdateOne {
	_u.mutation.ClearLastSnapshotID()
	return _u
}

// SetIsResume sets the "is_resume" field.
func (_u *ConversationUpdateOne) SetIsResume(v bool) *ConversationUpdateOne {
	_u.mutation.SetIsResume(v)
	return _u
}

// SetNillableIsResume sets the "is_resume" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableIsResume(v *bool) *ConversationUpdateOne {
	if v != nil {
		_u.SetIsResume(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ConversationUpdateOne) SetStartedAt(v time.Time) *ConversationUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableStartedAt(v *time.Time) *ConversationUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ConversationUpdateOne) ClearStartedAt() *ConversationUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ConversationUpdateOne) SetCompletedAt(v time.Time) *ConversationUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableCompletedAt(v *time.Time) *ConversationUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ConversationUpdateOne) ClearCompletedAt() *ConversationUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ConversationUpdateOne) SetPodID(v string) *ConversationUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillablePodID(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ConversationUpdateOne) ClearPodID() *ConversationUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *ConversationUpdateOne) SetLastInteractionAt(v time.Time) *ConversationUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableLastInteractionAt(v *time.Time) *ConversationUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *ConversationUpdateOne) ClearLastInteractionAt() *ConversationUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *ConversationUpdateOne) AddDocumentIDs(ids ...string) *ConversationUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *ConversationUpdateOne) AddDocuments(v ...*Document) *ConversationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// SetCheckpointID sets the "checkpoint" edge to the Checkpoint entity by ID.
func (_u *ConversationUpdateOne) SetCheckpointID(id string) *ConversationUpdateOne {
	_u.mutation.SetCheckpointID(id)
	return _u
}

// SetNillableCheckpointID sets the "checkpoint" edge to the Checkpoint entity by ID if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableCheckpointID(id *string) *ConversationUpdateOne {
	if id != nil {
		_u = _u.SetCheckpointID(*id)
	}
	return _u
}

// SetCheckpoint sets the "checkpoint" edge to the Checkpoint entity.
func (_u *ConversationUpdateOne) SetCheckpoint(v *Checkpoint) *ConversationUpdateOne {
	return _u.SetCheckpointID(v.ID)
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdateOne) Mutation() *ConversationMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *ConversationUpdateOne) ClearDocuments() *ConversationUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *ConversationUpdateOne) RemoveDocumentIDs(ids ...string) *ConversationUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *ConversationUpdateOne) RemoveDocuments(v ...*Document) *ConversationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearCheckpoint clears the "checkpoint" edge to the Checkpoint entity.
func (_u *ConversationUpdateOne) ClearCheckpoint() *ConversationUpdateOne {
	_u.mutation.ClearCheckpoint()
	return _u
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdateOne) Where(ps ...predicate.Conversation) *ConversationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversationUpdateOne) Select(field string, fields ...string) *ConversationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Conversation entity.
func (_u *ConversationUpdateOne) Save(ctx context.Context) (*Conversation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdateOne) SaveX(ctx context.Context) *Conversation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := conversation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Conversation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ConversationUpdateOne) sqlSave(ctx context.Context) (_node *Conversation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Conversation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversation.FieldID)
		for _, f := range fields {
			if !conversation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversation.FieldID {
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
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(conversation.FieldGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(conversation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(conversation.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(conversation.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.FinalAnswer(); ok {
		_spec.SetField(conversation.FieldFinalAnswer, field.TypeString, value)
	}
	if _u.mutation.FinalAnswerCleared() {
		_spec.ClearField(conversation.FieldFinalAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(conversation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(conversation.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.LastSnapshotID(); ok {
		_spec.SetField(conversation.FieldLastSnapshotID, field.TypeString, value)
	}
	if _u.mutation.LastSnapshotIDCleared() {
		_spec.ClearField(conversation.FieldLastSnapshotID, field.TypeString)
	}
	if value, ok := _u.mutation.IsResume(); ok {
		_spec.SetField(conversation.FieldIsResume, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(conversation.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(conversation.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(conversation.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(conversation.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(conversation.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(conversation.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(conversation.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(conversation.FieldLastInteractionAt, field.TypeTime)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.DocumentsTable,
			Columns: []string{conversation.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.DocumentsTable,
			Columns: []string{conversation.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.DocumentsTable,
			Columns: []string{conversation.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   conversation.CheckpointTable,
			Columns: []string{conversation.CheckpointColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   conversation.CheckpointTable,
			Columns: []string{conversation.CheckpointColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Conversation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
