// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/astraforge/astraforge/ent/apikey"
	"github.com/astraforge/astraforge/ent/artifact"
	"github.com/astraforge/astraforge/ent/checkpoint"
	"github.com/astraforge/astraforge/ent/conversation"
	"github.com/astraforge/astraforge/ent/document"
	"github.com/astraforge/astraforge/ent/event"
	"github.com/astraforge/astraforge/ent/predicate"
	"github.com/astraforge/astraforge/ent/quotaledger"
	"github.com/astraforge/astraforge/ent/sandboxsession"
	"github.com/astraforge/astraforge/ent/snapshot"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAPIKey         = "APIKey"
	TypeArtifact       = "Artifact"
	TypeCheckpoint     = "Checkpoint"
	TypeConversation   = "Conversation"
	TypeDocument       = "Document"
	TypeEvent          = "Event"
	TypeQuotaLedger    = "QuotaLedger"
	TypeSandboxSession = "SandboxSession"
	TypeSnapshot       = "Snapshot"
)

// APIKeyMutation represents an operation that mutates the APIKey nodes in the graph.
type APIKeyMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	name          *string
	key_hash      *string
	created_at    *time.Time
	last_used_at  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*APIKey, error)
	predicates    []predicate.APIKey
}

var _ ent.Mutation = (*APIKeyMutation)(nil)

// apikeyOption allows management of the mutation configuration using functional options.
type apikeyOption func(*APIKeyMutation)

// newAPIKeyMutation creates new mutation for the APIKey entity.
func newAPIKeyMutation(c config, op Op, opts ...apikeyOption) *APIKeyMutation {
	m := &APIKeyMutation{
		config:        c,
		op:            op,
		typ:           TypeAPIKey,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAPIKeyID sets the ID field of the mutation.
func withAPIKeyID(id string) apikeyOption {
	return func(m *APIKeyMutation) {
		var (
			err   error
			once  sync.Once
			value *APIKey
		)
		m.oldValue = func(ctx context.Context) (*APIKey, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().APIKey.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAPIKey sets the old APIKey of the mutation.
func withAPIKey(node *APIKey) apikeyOption {
	return func(m *APIKeyMutation) {
		m.oldValue = func(context.Context) (*APIKey, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m APIKeyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m APIKeyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of APIKey entities.
func (m *APIKeyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *APIKeyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *APIKeyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().APIKey.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *APIKeyMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *APIKeyMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *APIKeyMutation) ResetUserID() {
	m.user_id = nil
}

// SetName sets the "name" field.
func (m *APIKeyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *APIKeyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *APIKeyMutation) ClearName() {
	m.name = nil
	m.clearedFields[apikey.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *APIKeyMutation) NameCleared() bool {
	_, ok := m.clearedFields[apikey.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *APIKeyMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, apikey.FieldName)
}

// SetKeyHash sets the "key_hash" field.
func (m *APIKeyMutation) SetKeyHash(s string) {
	m.key_hash = &s
}

// KeyHash returns the value of the "key_hash" field in the mutation.
func (m *APIKeyMutation) KeyHash() (r string, exists bool) {
	v := m.key_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyHash returns the old "key_hash" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldKeyHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyHash: %w", err)
	}
	return oldValue.KeyHash, nil
}

// ResetKeyHash resets all changes to the "key_hash" field.
func (m *APIKeyMutation) ResetKeyHash() {
	m.key_hash = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *APIKeyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *APIKeyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *APIKeyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastUsedAt sets the "last_used_at" field.
func (m *APIKeyMutation) SetLastUsedAt(t time.Time) {
	m.last_used_at = &t
}

// LastUsedAt returns the value of the "last_used_at" field in the mutation.
func (m *APIKeyMutation) LastUsedAt() (r time.Time, exists bool) {
	v := m.last_used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsedAt returns the old "last_used_at" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldLastUsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsedAt: %w", err)
	}
	return oldValue.LastUsedAt, nil
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (m *APIKeyMutation) ClearLastUsedAt() {
	m.last_used_at = nil
	m.clearedFields[apikey.FieldLastUsedAt] = struct{}{}
}

// LastUsedAtCleared returns if the "last_used_at" field was cleared in this mutation.
func (m *APIKeyMutation) LastUsedAtCleared() bool {
	_, ok := m.clearedFields[apikey.FieldLastUsedAt]
	return ok
}

// ResetLastUsedAt resets all changes to the "last_used_at" field.
func (m *APIKeyMutation) ResetLastUsedAt() {
	m.last_used_at = nil
	delete(m.clearedFields, apikey.FieldLastUsedAt)
}

// Where appends a list predicates to the APIKeyMutation builder.
func (m *APIKeyMutation) Where(ps ...predicate.APIKey) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the APIKeyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *APIKeyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.APIKey, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *APIKeyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *APIKeyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (APIKey).
func (m *APIKeyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *APIKeyMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_id != nil {
		fields = append(fields, apikey.FieldUserID)
	}
	if m.name != nil {
		fields = append(fields, apikey.FieldName)
	}
	if m.key_hash != nil {
		fields = append(fields, apikey.FieldKeyHash)
	}
	if m.created_at != nil {
		fields = append(fields, apikey.FieldCreatedAt)
	}
	if m.last_used_at != nil {
		fields = append(fields, apikey.FieldLastUsedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *APIKeyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case apikey.FieldUserID:
		return m.UserID()
	case apikey.FieldName:
		return m.Name()
	case apikey.FieldKeyHash:
		return m.KeyHash()
	case apikey.FieldCreatedAt:
		return m.CreatedAt()
	case apikey.FieldLastUsedAt:
		return m.LastUsedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *APIKeyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case apikey.FieldUserID:
		return m.OldUserID(ctx)
	case apikey.FieldName:
		return m.OldName(ctx)
	case apikey.FieldKeyHash:
		return m.OldKeyHash(ctx)
	case apikey.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case apikey.FieldLastUsedAt:
		return m.OldLastUsedAt(ctx)
	}
	return nil, fmt.Errorf("unknown APIKey field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *APIKeyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case apikey.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case apikey.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case apikey.FieldKeyHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyHash(v)
		return nil
	case apikey.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case apikey.FieldLastUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsedAt(v)
		return nil
	}
	return fmt.Errorf("unknown APIKey field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *APIKeyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *APIKeyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *APIKeyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown APIKey numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *APIKeyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(apikey.FieldName) {
		fields = append(fields, apikey.FieldName)
	}
	if m.FieldCleared(apikey.FieldLastUsedAt) {
		fields = append(fields, apikey.FieldLastUsedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *APIKeyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *APIKeyMutation) ClearField(name string) error {
	switch name {
	case apikey.FieldName:
		m.ClearName()
		return nil
	case apikey.FieldLastUsedAt:
		m.ClearLastUsedAt()
		return nil
	}
	return fmt.Errorf("unknown APIKey nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *APIKeyMutation) ResetField(name string) error {
	switch name {
	case apikey.FieldUserID:
		m.ResetUserID()
		return nil
	case apikey.FieldName:
		m.ResetName()
		return nil
	case apikey.FieldKeyHash:
		m.ResetKeyHash()
		return nil
	case apikey.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case apikey.FieldLastUsedAt:
		m.ResetLastUsedAt()
		return nil
	}
	return fmt.Errorf("unknown APIKey field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *APIKeyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *APIKeyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *APIKeyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *APIKeyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *APIKeyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *APIKeyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *APIKeyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown APIKey unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *APIKeyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown APIKey edge %s", name)
}

// ArtifactMutation represents an operation that mutates the Artifact nodes in the graph.
type ArtifactMutation struct {
	config
	op             Op
	typ            string
	id             *string
	filename       *string
	content_type   *string
	size_bytes     *int64
	addsize_bytes  *int64
	storage_path   *string
	download_url   *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*Artifact, error)
	predicates     []predicate.Artifact
}

var _ ent.Mutation = (*ArtifactMutation)(nil)

// artifactOption allows management of the mutation configuration using functional options.
type artifactOption func(*ArtifactMutation)

// newArtifactMutation creates new mutation for the Artifact entity.
func newArtifactMutation(c config, op Op, opts ...artifactOption) *ArtifactMutation {
	m := &ArtifactMutation{
		config:        c,
		op:            op,
		typ:           TypeArtifact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withArtifactID sets the ID field of the mutation.
func withArtifactID(id string) artifactOption {
	return func(m *ArtifactMutation) {
		var (
			err   error
			once  sync.Once
			value *Artifact
		)
		m.oldValue = func(ctx context.Context) (*Artifact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Artifact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArtifact sets the old Artifact of the mutation.
func withArtifact(node *Artifact) artifactOption {
	return func(m *ArtifactMutation) {
		m.oldValue = func(context.Context) (*Artifact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ArtifactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ArtifactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Artifact entities.
func (m *ArtifactMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ArtifactMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ArtifactMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Artifact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ArtifactMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ArtifactMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ArtifactMutation) ResetSessionID() {
	m.session = nil
}

// SetFilename sets the "filename" field.
func (m *ArtifactMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *ArtifactMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *ArtifactMutation) ResetFilename() {
	m.filename = nil
}

// SetContentType sets the "content_type" field.
func (m *ArtifactMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *ArtifactMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ResetContentType resets all changes to the "content_type" field.
func (m *ArtifactMutation) ResetContentType() {
	m.content_type = nil
}

// SetSizeBytes sets the "size_bytes" field.
func (m *ArtifactMutation) SetSizeBytes(i int64) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *ArtifactMutation) SizeBytes() (r int64, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldSizeBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *ArtifactMutation) AddSizeBytes(i int64) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *ArtifactMutation) AddedSizeBytes() (r int64, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *ArtifactMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
}

// SetStoragePath sets the "storage_path" field.
func (m *ArtifactMutation) SetStoragePath(s string) {
	m.storage_path = &s
}

// StoragePath returns the value of the "storage_path" field in the mutation.
func (m *ArtifactMutation) StoragePath() (r string, exists bool) {
	v := m.storage_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStoragePath returns the old "storage_path" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldStoragePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoragePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoragePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoragePath: %w", err)
	}
	return oldValue.StoragePath, nil
}

// ResetStoragePath resets all changes to the "storage_path" field.
func (m *ArtifactMutation) ResetStoragePath() {
	m.storage_path = nil
}

// SetDownloadURL sets the "download_url" field.
func (m *ArtifactMutation) SetDownloadURL(s string) {
	m.download_url = &s
}

// DownloadURL returns the value of the "download_url" field in the mutation.
func (m *ArtifactMutation) DownloadURL() (r string, exists bool) {
	v := m.download_url
	if v == nil {
		return
	}
	return *v, true
}

// OldDownloadURL returns the old "download_url" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldDownloadURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDownloadURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDownloadURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDownloadURL: %w", err)
	}
	return oldValue.DownloadURL, nil
}

// ClearDownloadURL clears the value of the "download_url" field.
func (m *ArtifactMutation) ClearDownloadURL() {
	m.download_url = nil
	m.clearedFields[artifact.FieldDownloadURL] = struct{}{}
}

// DownloadURLCleared returns if the "download_url" field was cleared in this mutation.
func (m *ArtifactMutation) DownloadURLCleared() bool {
	_, ok := m.clearedFields[artifact.FieldDownloadURL]
	return ok
}

// ResetDownloadURL resets all changes to the "download_url" field.
func (m *ArtifactMutation) ResetDownloadURL() {
	m.download_url = nil
	delete(m.clearedFields, artifact.FieldDownloadURL)
}

// SetCreatedAt sets the "created_at" field.
func (m *ArtifactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ArtifactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ArtifactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the SandboxSession entity.
func (m *ArtifactMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[artifact.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the SandboxSession entity was cleared.
func (m *ArtifactMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *ArtifactMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *ArtifactMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the ArtifactMutation builder.
func (m *ArtifactMutation) Where(ps ...predicate.Artifact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ArtifactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ArtifactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Artifact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ArtifactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ArtifactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Artifact).
func (m *ArtifactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ArtifactMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.session != nil {
		fields = append(fields, artifact.FieldSessionID)
	}
	if m.filename != nil {
		fields = append(fields, artifact.FieldFilename)
	}
	if m.content_type != nil {
		fields = append(fields, artifact.FieldContentType)
	}
	if m.size_bytes != nil {
		fields = append(fields, artifact.FieldSizeBytes)
	}
	if m.storage_path != nil {
		fields = append(fields, artifact.FieldStoragePath)
	}
	if m.download_url != nil {
		fields = append(fields, artifact.FieldDownloadURL)
	}
	if m.created_at != nil {
		fields = append(fields, artifact.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ArtifactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case artifact.FieldSessionID:
		return m.SessionID()
	case artifact.FieldFilename:
		return m.Filename()
	case artifact.FieldContentType:
		return m.ContentType()
	case artifact.FieldSizeBytes:
		return m.SizeBytes()
	case artifact.FieldStoragePath:
		return m.StoragePath()
	case artifact.FieldDownloadURL:
		return m.DownloadURL()
	case artifact.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ArtifactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case artifact.FieldSessionID:
		return m.OldSessionID(ctx)
	case artifact.FieldFilename:
		return m.OldFilename(ctx)
	case artifact.FieldContentType:
		return m.OldContentType(ctx)
	case artifact.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case artifact.FieldStoragePath:
		return m.OldStoragePath(ctx)
	case artifact.FieldDownloadURL:
		return m.OldDownloadURL(ctx)
	case artifact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Artifact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArtifactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case artifact.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case artifact.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case artifact.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case artifact.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case artifact.FieldStoragePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoragePath(v)
		return nil
	case artifact.FieldDownloadURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDownloadURL(v)
		return nil
	case artifact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Artifact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ArtifactMutation) AddedFields() []string {
	var fields []string
	if m.addsize_bytes != nil {
		fields = append(fields, artifact.FieldSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ArtifactMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case artifact.FieldSizeBytes:
		return m.AddedSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArtifactMutation) AddField(name string, value ent.Value) error {
	switch name {
	case artifact.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown Artifact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ArtifactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(artifact.FieldDownloadURL) {
		fields = append(fields, artifact.FieldDownloadURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ArtifactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ArtifactMutation) ClearField(name string) error {
	switch name {
	case artifact.FieldDownloadURL:
		m.ClearDownloadURL()
		return nil
	}
	return fmt.Errorf("unknown Artifact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ArtifactMutation) ResetField(name string) error {
	switch name {
	case artifact.FieldSessionID:
		m.ResetSessionID()
		return nil
	case artifact.FieldFilename:
		m.ResetFilename()
		return nil
	case artifact.FieldContentType:
		m.ResetContentType()
		return nil
	case artifact.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case artifact.FieldStoragePath:
		m.ResetStoragePath()
		return nil
	case artifact.FieldDownloadURL:
		m.ResetDownloadURL()
		return nil
	case artifact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Artifact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ArtifactMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, artifact.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ArtifactMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case artifact.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ArtifactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ArtifactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ArtifactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, artifact.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ArtifactMutation) EdgeCleared(name string) bool {
	switch name {
	case artifact.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ArtifactMutation) ClearEdge(name string) error {
	switch name {
	case artifact.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Artifact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ArtifactMutation) ResetEdge(name string) error {
	switch name {
	case artifact.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Artifact edge %s", name)
}

// CheckpointMutation represents an operation that mutates the Checkpoint nodes in the graph.
type CheckpointMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	state               *map[string]interface{}
	next_node           *string
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	conversation        *string
	clearedconversation bool
	done                bool
	oldValue            func(context.Context) (*Checkpoint, error)
	predicates          []predicate.Checkpoint
}

var _ ent.Mutation = (*CheckpointMutation)(nil)

// checkpointOption allows management of the mutation configuration using functional options.
type checkpointOption func(*CheckpointMutation)

// newCheckpointMutation creates new mutation for the Checkpoint entity.
func newCheckpointMutation(c config, op Op, opts ...checkpointOption) *CheckpointMutation {
	m := &CheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckpointID sets the ID field of the mutation.
func withCheckpointID(id string) checkpointOption {
	return func(m *CheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *Checkpoint
		)
		m.oldValue = func(ctx context.Context) (*Checkpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Checkpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckpoint sets the old Checkpoint of the mutation.
func withCheckpoint(node *Checkpoint) checkpointOption {
	return func(m *CheckpointMutation) {
		m.oldValue = func(context.Context) (*Checkpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Checkpoint entities.
func (m *CheckpointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckpointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckpointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Checkpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *CheckpointMutation) SetConversationID(s string) {
	m.conversation = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *CheckpointMutation) ConversationID() (r string, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *CheckpointMutation) ResetConversationID() {
	m.conversation = nil
}

// SetState sets the "state" field.
func (m *CheckpointMutation) SetState(value map[string]interface{}) {
	m.state = &value
}

// State returns the value of the "state" field in the mutation.
func (m *CheckpointMutation) State() (r map[string]interface{}, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldState(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *CheckpointMutation) ResetState() {
	m.state = nil
}

// SetNextNode sets the "next_node" field.
func (m *CheckpointMutation) SetNextNode(s string) {
	m.next_node = &s
}

// NextNode returns the value of the "next_node" field in the mutation.
func (m *CheckpointMutation) NextNode() (r string, exists bool) {
	v := m.next_node
	if v == nil {
		return
	}
	return *v, true
}

// OldNextNode returns the old "next_node" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldNextNode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextNode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextNode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextNode: %w", err)
	}
	return oldValue.NextNode, nil
}

// ResetNextNode resets all changes to the "next_node" field.
func (m *CheckpointMutation) ResetNextNode() {
	m.next_node = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CheckpointMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CheckpointMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CheckpointMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (m *CheckpointMutation) ClearConversation() {
	m.clearedconversation = true
	m.clearedFields[checkpoint.FieldConversationID] = struct{}{}
}

// ConversationCleared reports if the "conversation" edge to the Conversation entity was cleared.
func (m *CheckpointMutation) ConversationCleared() bool {
	return m.clearedconversation
}

// ConversationIDs returns the "conversation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConversationID instead. It exists only for internal usage by the builders.
func (m *CheckpointMutation) ConversationIDs() (ids []string) {
	if id := m.conversation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConversation resets all changes to the "conversation" edge.
func (m *CheckpointMutation) ResetConversation() {
	m.conversation = nil
	m.clearedconversation = false
}

// Where appends a list predicates to the CheckpointMutation builder.
func (m *CheckpointMutation) Where(ps ...predicate.Checkpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Checkpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Checkpoint).
func (m *CheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckpointMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.conversation != nil {
		fields = append(fields, checkpoint.FieldConversationID)
	}
	if m.state != nil {
		fields = append(fields, checkpoint.FieldState)
	}
	if m.next_node != nil {
		fields = append(fields, checkpoint.FieldNextNode)
	}
	if m.updated_at != nil {
		fields = append(fields, checkpoint.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldConversationID:
		return m.ConversationID()
	case checkpoint.FieldState:
		return m.State()
	case checkpoint.FieldNextNode:
		return m.NextNode()
	case checkpoint.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkpoint.FieldConversationID:
		return m.OldConversationID(ctx)
	case checkpoint.FieldState:
		return m.OldState(ctx)
	case checkpoint.FieldNextNode:
		return m.OldNextNode(ctx)
	case checkpoint.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Checkpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case checkpoint.FieldState:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case checkpoint.FieldNextNode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextNode(v)
		return nil
	case checkpoint.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckpointMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckpointMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Checkpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckpointMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckpointMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Checkpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckpointMutation) ResetField(name string) error {
	switch name {
	case checkpoint.FieldConversationID:
		m.ResetConversationID()
		return nil
	case checkpoint.FieldState:
		m.ResetState()
		return nil
	case checkpoint.FieldNextNode:
		m.ResetNextNode()
		return nil
	case checkpoint.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.conversation != nil {
		edges = append(edges, checkpoint.EdgeConversation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckpointMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case checkpoint.EdgeConversation:
		if id := m.conversation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedconversation {
		edges = append(edges, checkpoint.EdgeConversation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckpointMutation) EdgeCleared(name string) bool {
	switch name {
	case checkpoint.EdgeConversation:
		return m.clearedconversation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckpointMutation) ClearEdge(name string) error {
	switch name {
	case checkpoint.EdgeConversation:
		m.ClearConversation()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckpointMutation) ResetEdge(name string) error {
	switch name {
	case checkpoint.EdgeConversation:
		m.ResetConversation()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint edge %s", name)
}

// ConversationMutation represents an operation that mutates the Conversation nodes in the graph.
type ConversationMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	session_id          *string
	user_id             *string
	workspace_id        *string
	goal                *string
	status              *conversation.Status
	summary             *string
	final_answer        *string
	error_message       *string
	last_snapshot_id    *string
	is_resume           *bool
	created_at          *time.Time
	started_at          *time.Time
	completed_at        *time.Time
	pod_id              *string
	last_interaction_at *time.Time
	clearedFields       map[string]struct{}
	documents           map[string]struct{}
	removeddocuments    map[string]struct{}
	cleareddocuments    bool
	checkpoint          *string
	clearedcheckpoint   bool
	done                bool
	oldValue            func(context.Context) (*Conversation, error)
	predicates          []predicate.Conversation
}

var _ ent.Mutation = (*ConversationMutation)(nil)

// conversationOption allows management of the mutation configuration using functional options.
type conversationOption func(*ConversationMutation)

// newConversationMutation creates new mutation for the Conversation entity.
func newConversationMutation(c config, op Op, opts ...conversationOption) *ConversationMutation {
	m := &ConversationMutation{
		config:        c,
		op:            op,
		typ:           TypeConversation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversationID sets the ID field of the mutation.
func withConversationID(id string) conversationOption {
	return func(m *ConversationMutation) {
		var (
			err   error
			once  sync.Once
			value *Conversation
		)
		m.oldValue = func(ctx context.Context) (*Conversation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Conversation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversation sets the old Conversation of the mutation.
func withConversation(node *Conversation) conversationOption {
	return func(m *ConversationMutation) {
		m.oldValue = func(context.Context) (*Conversation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Conversation entities.
func (m *ConversationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Conversation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ConversationMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ConversationMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ConversationMutation) ResetSessionID() {
	m.session_id = nil
}

// SetUserID sets the "user_id" field.
func (m *ConversationMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ConversationMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ConversationMutation) ResetUserID() {
	m.user_id = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *ConversationMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *ConversationMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *ConversationMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetGoal sets the "goal" field.
func (m *ConversationMutation) SetGoal(s string) {
	m.goal = &s
}

// Goal returns the value of the "goal" field in the mutation.
func (m *ConversationMutation) Goal() (r string, exists bool) {
	v := m.goal
	if v == nil {
		return
	}
	return *v, true
}

// OldGoal returns the old "goal" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldGoal(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoal: %w", err)
	}
	return oldValue.Goal, nil
}

// ResetGoal resets all changes to the "goal" field.
func (m *ConversationMutation) ResetGoal() {
	m.goal = nil
}

// SetStatus sets the "status" field.
func (m *ConversationMutation) SetStatus(c conversation.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ConversationMutation) Status() (r conversation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldStatus(ctx context.Context) (v conversation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ConversationMutation) ResetStatus() {
	m.status = nil
}

// SetSummary sets the "summary" field.
func (m *ConversationMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *ConversationMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *ConversationMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[conversation.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *ConversationMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[conversation.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *ConversationMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, conversation.FieldSummary)
}

// SetFinalAnswer sets the "final_answer" field.
func (m *ConversationMutation) SetFinalAnswer(s string) {
	m.final_answer = &s
}

// FinalAnswer returns the value of the "final_answer" field in the mutation.
func (m *ConversationMutation) FinalAnswer() (r string, exists bool) {
	v := m.final_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalAnswer returns the old "final_answer" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldFinalAnswer(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalAnswer: %w", err)
	}
	return oldValue.FinalAnswer, nil
}

// ClearFinalAnswer clears the value of the "final_answer" field.
func (m *ConversationMutation) ClearFinalAnswer() {
	m.final_answer = nil
	m.clearedFields[conversation.FieldFinalAnswer] = struct{}{}
}

// FinalAnswerCleared returns if the "final_answer" field was cleared in this mutation.
func (m *ConversationMutation) FinalAnswerCleared() bool {
	_, ok := m.clearedFields[conversation.FieldFinalAnswer]
	return ok
}

// ResetFinalAnswer resets all changes to the "final_answer" field.
func (m *ConversationMutation) ResetFinalAnswer() {
	m.final_answer = nil
	delete(m.clearedFields, conversation.FieldFinalAnswer)
}

// SetErrorMessage sets the "error_message" field.
func (m *ConversationMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ConversationMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ConversationMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[conversation.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ConversationMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[conversation.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ConversationMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, conversation.FieldErrorMessage)
}

// SetLastSnapshotID sets the "last_snapshot_id" field.
func (m *ConversationMutation) SetLastSnapshotID(s string) {
	m.last_snapshot_id = &s
}

// LastSnapshotID returns the value of the "last_snapshot_id" field in the mutation.
func (m *ConversationMutation) LastSnapshotID() (r string, exists bool) {
	v := m.last_snapshot_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSnapshotID returns the old "last_snapshot_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldLastSnapshotID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSnapshotID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSnapshotID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSnapshotID: %w", err)
	}
	return oldValue.LastSnapshotID, nil
}

// ClearLastSnapshotID clears the value of the "last_snapshot_id" field.
func (m *ConversationMutation) ClearLastSnapshotID() {
	m.last_snapshot_id = nil
	m.clearedFields[conversation.FieldLastSnapshotID] = struct{}{}
}

// LastSnapshotIDCleared returns if the "last_snapshot_id" field was cleared in this mutation.
func (m *ConversationMutation) LastSnapshotIDCleared() bool {
	_, ok := m.clearedFields[conversation.FieldLastSnapshotID]
	return ok
}

// ResetLastSnapshotID resets all changes to the "last_snapshot_id" field.
func (m *ConversationMutation) ResetLastSnapshotID() {
	m.last_snapshot_id = nil
	delete(m.clearedFields, conversation.FieldLastSnapshotID)
}

// SetIsResume sets the "is_resume" field.
func (m *ConversationMutation) SetIsResume(b bool) {
	m.is_resume = &b
}

// IsResume returns the value of the "is_resume" field in the mutation.
func (m *ConversationMutation) IsResume() (r bool, exists bool) {
	v := m.is_resume
	if v == nil {
		return
	}
	return *v, true
}

// OldIsResume returns the old "is_resume" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldIsResume(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsResume is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsResume requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsResume: %w", err)
	}
	return oldValue.IsResume, nil
}

// ResetIsResume resets all changes to the "is_resume" field.
func (m *ConversationMutation) ResetIsResume() {
	m.is_resume = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ConversationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConversationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConversationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ConversationMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ConversationMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ConversationMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[conversation.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ConversationMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[conversation.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ConversationMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, conversation.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ConversationMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ConversationMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ConversationMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[conversation.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ConversationMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[conversation.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ConversationMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, conversation.FieldCompletedAt)
}

// SetPodID sets the "pod_id" field.
func (m *ConversationMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *ConversationMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *ConversationMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[conversation.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *ConversationMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[conversation.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *ConversationMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, conversation.FieldPodID)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *ConversationMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *ConversationMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *ConversationMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[conversation.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *ConversationMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[conversation.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *ConversationMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, conversation.FieldLastInteractionAt)
}

// AddDocumentIDs adds the "documents" edge to the Document entity by ids.
func (m *ConversationMutation) AddDocumentIDs(ids ...string) {
	if m.documents == nil {
		m.documents = make(map[string]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the Document entity.
func (m *ConversationMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the Document entity was cleared.
func (m *ConversationMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the Document entity by IDs.
func (m *ConversationMutation) RemoveDocumentIDs(ids ...string) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the Document entity.
func (m *ConversationMutation) RemovedDocumentsIDs() (ids []string) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *ConversationMutation) DocumentsIDs() (ids []string) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *ConversationMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// SetCheckpointID sets the "checkpoint" edge to the Checkpoint entity by id.
func (m *ConversationMutation) SetCheckpointID(id string) {
	m.checkpoint = &id
}

// ClearCheckpoint clears the "checkpoint" edge to the Checkpoint entity.
func (m *ConversationMutation) ClearCheckpoint() {
	m.clearedcheckpoint = true
}

// CheckpointCleared reports if the "checkpoint" edge to the Checkpoint entity was cleared.
func (m *ConversationMutation) CheckpointCleared() bool {
	return m.clearedcheckpoint
}

// CheckpointID returns the "checkpoint" edge ID in the mutation.
func (m *ConversationMutation) CheckpointID() (id string, exists bool) {
	if m.checkpoint != nil {
		return *m.checkpoint, true
	}
	return
}

// CheckpointIDs returns the "checkpoint" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CheckpointID instead. It exists only for internal usage by the builders.
func (m *ConversationMutation) CheckpointIDs() (ids []string) {
	if id := m.checkpoint; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCheckpoint resets all changes to the "checkpoint" edge.
func (m *ConversationMutation) ResetCheckpoint() {
	m.checkpoint = nil
	m.clearedcheckpoint = false
}

// Where appends a list predicates to the ConversationMutation builder.
func (m *ConversationMutation) Where(ps ...predicate.Conversation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Conversation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Conversation).
func (m *ConversationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversationMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.session_id != nil {
		fields = append(fields, conversation.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, conversation.FieldUserID)
	}
	if m.workspace_id != nil {
		fields = append(fields, conversation.FieldWorkspaceID)
	}
	if m.goal != nil {
		fields = append(fields, conversation.FieldGoal)
	}
	if m.status != nil {
		fields = append(fields, conversation.FieldStatus)
	}
	if m.summary != nil {
		fields = append(fields, conversation.FieldSummary)
	}
	if m.final_answer != nil {
		fields = append(fields, conversation.FieldFinalAnswer)
	}
	if m.error_message != nil {
		fields = append(fields, conversation.FieldErrorMessage)
	}
	if m.last_snapshot_id != nil {
		fields = append(fields, conversation.FieldLastSnapshotID)
	}
	if m.is_resume != nil {
		fields = append(fields, conversation.FieldIsResume)
	}
	if m.created_at != nil {
		fields = append(fields, conversation.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, conversation.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, conversation.FieldCompletedAt)
	}
	if m.pod_id != nil {
		fields = append(fields, conversation.FieldPodID)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, conversation.FieldLastInteractionAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversation.FieldSessionID:
		return m.SessionID()
	case conversation.FieldUserID:
		return m.UserID()
	case conversation.FieldWorkspaceID:
		return m.WorkspaceID()
	case conversation.FieldGoal:
		return m.Goal()
	case conversation.FieldStatus:
		return m.Status()
	case conversation.FieldSummary:
		return m.Summary()
	case conversation.FieldFinalAnswer:
		return m.FinalAnswer()
	case conversation.FieldErrorMessage:
		return m.ErrorMessage()
	case conversation.FieldLastSnapshotID:
		return m.LastSnapshotID()
	case conversation.FieldIsResume:
		return m.IsResume()
	case conversation.FieldCreatedAt:
		return m.CreatedAt()
	case conversation.FieldStartedAt:
		return m.StartedAt()
	case conversation.FieldCompletedAt:
		return m.CompletedAt()
	case conversation.FieldPodID:
		return m.PodID()
	case conversation.FieldLastInteractionAt:
		return m.LastInteractionAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversation.FieldSessionID:
		return m.OldSessionID(ctx)
	case conversation.FieldUserID:
		return m.OldUserID(ctx)
	case conversation.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case conversation.FieldGoal:
		return m.OldGoal(ctx)
	case conversation.FieldStatus:
		return m.OldStatus(ctx)
	case conversation.FieldSummary:
		return m.OldSummary(ctx)
	case conversation.FieldFinalAnswer:
		return m.OldFinalAnswer(ctx)
	case conversation.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case conversation.FieldLastSnapshotID:
		return m.OldLastSnapshotID(ctx)
	case conversation.FieldIsResume:
		return m.OldIsResume(ctx)
	case conversation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case conversation.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case conversation.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case conversation.FieldPodID:
		return m.OldPodID(ctx)
	case conversation.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	}
	return nil, fmt.Errorf("unknown Conversation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversation.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case conversation.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case conversation.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case conversation.FieldGoal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoal(v)
		return nil
	case conversation.FieldStatus:
		v, ok := value.(conversation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case conversation.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case conversation.FieldFinalAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalAnswer(v)
		return nil
	case conversation.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case conversation.FieldLastSnapshotID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSnapshotID(v)
		return nil
	case conversation.FieldIsResume:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsResume(v)
		return nil
	case conversation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case conversation.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case conversation.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case conversation.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case conversation.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Conversation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversation.FieldSummary) {
		fields = append(fields, conversation.FieldSummary)
	}
	if m.FieldCleared(conversation.FieldFinalAnswer) {
		fields = append(fields, conversation.FieldFinalAnswer)
	}
	if m.FieldCleared(conversation.FieldErrorMessage) {
		fields = append(fields, conversation.FieldErrorMessage)
	}
	if m.FieldCleared(conversation.FieldLastSnapshotID) {
		fields = append(fields, conversation.FieldLastSnapshotID)
	}
	if m.FieldCleared(conversation.FieldStartedAt) {
		fields = append(fields, conversation.FieldStartedAt)
	}
	if m.FieldCleared(conversation.FieldCompletedAt) {
		fields = append(fields, conversation.FieldCompletedAt)
	}
	if m.FieldCleared(conversation.FieldPodID) {
		fields = append(fields, conversation.FieldPodID)
	}
	if m.FieldCleared(conversation.FieldLastInteractionAt) {
		fields = append(fields, conversation.FieldLastInteractionAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversationMutation) ClearField(name string) error {
	switch name {
	case conversation.FieldSummary:
		m.ClearSummary()
		return nil
	case conversation.FieldFinalAnswer:
		m.ClearFinalAnswer()
		return nil
	case conversation.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case conversation.FieldLastSnapshotID:
		m.ClearLastSnapshotID()
		return nil
	case conversation.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case conversation.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case conversation.FieldPodID:
		m.ClearPodID()
		return nil
	case conversation.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown Conversation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversationMutation) ResetField(name string) error {
	switch name {
	case conversation.FieldSessionID:
		m.ResetSessionID()
		return nil
	case conversation.FieldUserID:
		m.ResetUserID()
		return nil
	case conversation.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case conversation.FieldGoal:
		m.ResetGoal()
		return nil
	case conversation.FieldStatus:
		m.ResetStatus()
		return nil
	case conversation.FieldSummary:
		m.ResetSummary()
		return nil
	case conversation.FieldFinalAnswer:
		m.ResetFinalAnswer()
		return nil
	case conversation.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case conversation.FieldLastSnapshotID:
		m.ResetLastSnapshotID()
		return nil
	case conversation.FieldIsResume:
		m.ResetIsResume()
		return nil
	case conversation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case conversation.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case conversation.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case conversation.FieldPodID:
		m.ResetPodID()
		return nil
	case conversation.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.documents != nil {
		edges = append(edges, conversation.EdgeDocuments)
	}
	if m.checkpoint != nil {
		edges = append(edges, conversation.EdgeCheckpoint)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case conversation.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	case conversation.EdgeCheckpoint:
		if id := m.checkpoint; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeddocuments != nil {
		edges = append(edges, conversation.EdgeDocuments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case conversation.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocuments {
		edges = append(edges, conversation.EdgeDocuments)
	}
	if m.clearedcheckpoint {
		edges = append(edges, conversation.EdgeCheckpoint)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversationMutation) EdgeCleared(name string) bool {
	switch name {
	case conversation.EdgeDocuments:
		return m.cleareddocuments
	case conversation.EdgeCheckpoint:
		return m.clearedcheckpoint
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversationMutation) ClearEdge(name string) error {
	switch name {
	case conversation.EdgeCheckpoint:
		m.ClearCheckpoint()
		return nil
	}
	return fmt.Errorf("unknown Conversation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversationMutation) ResetEdge(name string) error {
	switch name {
	case conversation.EdgeDocuments:
		m.ResetDocuments()
		return nil
	case conversation.EdgeCheckpoint:
		m.ResetCheckpoint()
		return nil
	}
	return fmt.Errorf("unknown Conversation edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	filename            *string
	content_type        *string
	size_bytes          *int64
	addsize_bytes       *int64
	storage_path        *string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	conversation        *string
	clearedconversation bool
	done                bool
	oldValue            func(context.Context) (*Document, error)
	predicates          []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id string) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *DocumentMutation) SetConversationID(s string) {
	m.conversation = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *DocumentMutation) ConversationID() (r string, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *DocumentMutation) ResetConversationID() {
	m.conversation = nil
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetContentType sets the "content_type" field.
func (m *DocumentMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *DocumentMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ResetContentType resets all changes to the "content_type" field.
func (m *DocumentMutation) ResetContentType() {
	m.content_type = nil
}

// SetSizeBytes sets the "size_bytes" field.
func (m *DocumentMutation) SetSizeBytes(i int64) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *DocumentMutation) SizeBytes() (r int64, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSizeBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *DocumentMutation) AddSizeBytes(i int64) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *DocumentMutation) AddedSizeBytes() (r int64, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *DocumentMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
}

// SetStoragePath sets the "storage_path" field.
func (m *DocumentMutation) SetStoragePath(s string) {
	m.storage_path = &s
}

// StoragePath returns the value of the "storage_path" field in the mutation.
func (m *DocumentMutation) StoragePath() (r string, exists bool) {
	v := m.storage_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStoragePath returns the old "storage_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStoragePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoragePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoragePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoragePath: %w", err)
	}
	return oldValue.StoragePath, nil
}

// ResetStoragePath resets all changes to the "storage_path" field.
func (m *DocumentMutation) ResetStoragePath() {
	m.storage_path = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (m *DocumentMutation) ClearConversation() {
	m.clearedconversation = true
	m.clearedFields[document.FieldConversationID] = struct{}{}
}

// ConversationCleared reports if the "conversation" edge to the Conversation entity was cleared.
func (m *DocumentMutation) ConversationCleared() bool {
	return m.clearedconversation
}

// ConversationIDs returns the "conversation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConversationID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) ConversationIDs() (ids []string) {
	if id := m.conversation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConversation resets all changes to the "conversation" edge.
func (m *DocumentMutation) ResetConversation() {
	m.conversation = nil
	m.clearedconversation = false
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.conversation != nil {
		fields = append(fields, document.FieldConversationID)
	}
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.content_type != nil {
		fields = append(fields, document.FieldContentType)
	}
	if m.size_bytes != nil {
		fields = append(fields, document.FieldSizeBytes)
	}
	if m.storage_path != nil {
		fields = append(fields, document.FieldStoragePath)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldConversationID:
		return m.ConversationID()
	case document.FieldFilename:
		return m.Filename()
	case document.FieldContentType:
		return m.ContentType()
	case document.FieldSizeBytes:
		return m.SizeBytes()
	case document.FieldStoragePath:
		return m.StoragePath()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldConversationID:
		return m.OldConversationID(ctx)
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldContentType:
		return m.OldContentType(ctx)
	case document.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case document.FieldStoragePath:
		return m.OldStoragePath(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case document.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case document.FieldStoragePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoragePath(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addsize_bytes != nil {
		fields = append(fields, document.FieldSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldSizeBytes:
		return m.AddedSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldConversationID:
		m.ResetConversationID()
		return nil
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldContentType:
		m.ResetContentType()
		return nil
	case document.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case document.FieldStoragePath:
		m.ResetStoragePath()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.conversation != nil {
		edges = append(edges, document.EdgeConversation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeConversation:
		if id := m.conversation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedconversation {
		edges = append(edges, document.EdgeConversation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeConversation:
		return m.clearedconversation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	case document.EdgeConversation:
		m.ClearConversation()
		return nil
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeConversation:
		m.ResetConversation()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	channel        *string
	payload        *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*Event, error)
	predicates     []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *EventMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *EventMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *EventMutation) ResetSessionID() {
	m.session = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the SandboxSession entity.
func (m *EventMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[event.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the SandboxSession entity was cleared.
func (m *EventMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *EventMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *EventMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.session != nil {
		fields = append(fields, event.FieldSessionID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldSessionID:
		return m.SessionID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldSessionID:
		return m.OldSessionID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldSessionID:
		m.ResetSessionID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, event.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, event.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// QuotaLedgerMutation represents an operation that mutates the QuotaLedger nodes in the graph.
type QuotaLedgerMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	workspace_id         *string
	period               *string
	requests_used        *int
	addrequests_used     *int
	sandboxes_created    *int
	addsandboxes_created *int
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*QuotaLedger, error)
	predicates           []predicate.QuotaLedger
}

var _ ent.Mutation = (*QuotaLedgerMutation)(nil)

// quotaledgerOption allows management of the mutation configuration using functional options.
type quotaledgerOption func(*QuotaLedgerMutation)

// newQuotaLedgerMutation creates new mutation for the QuotaLedger entity.
func newQuotaLedgerMutation(c config, op Op, opts ...quotaledgerOption) *QuotaLedgerMutation {
	m := &QuotaLedgerMutation{
		config:        c,
		op:            op,
		typ:           TypeQuotaLedger,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuotaLedgerID sets the ID field of the mutation.
func withQuotaLedgerID(id int) quotaledgerOption {
	return func(m *QuotaLedgerMutation) {
		var (
			err   error
			once  sync.Once
			value *QuotaLedger
		)
		m.oldValue = func(ctx context.Context) (*QuotaLedger, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuotaLedger.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuotaLedger sets the old QuotaLedger of the mutation.
func withQuotaLedger(node *QuotaLedger) quotaledgerOption {
	return func(m *QuotaLedgerMutation) {
		m.oldValue = func(context.Context) (*QuotaLedger, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuotaLedgerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuotaLedgerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuotaLedgerMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuotaLedgerMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuotaLedger.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *QuotaLedgerMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *QuotaLedgerMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the QuotaLedger entity.
// If the QuotaLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaLedgerMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *QuotaLedgerMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetPeriod sets the "period" field.
func (m *QuotaLedgerMutation) SetPeriod(s string) {
	m.period = &s
}

// Period returns the value of the "period" field in the mutation.
func (m *QuotaLedgerMutation) Period() (r string, exists bool) {
	v := m.period
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriod returns the old "period" field's value of the QuotaLedger entity.
// If the QuotaLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaLedgerMutation) OldPeriod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriod: %w", err)
	}
	return oldValue.Period, nil
}

// ResetPeriod resets all changes to the "period" field.
func (m *QuotaLedgerMutation) ResetPeriod() {
	m.period = nil
}

// SetRequestsUsed sets the "requests_used" field.
func (m *QuotaLedgerMutation) SetRequestsUsed(i int) {
	m.requests_used = &i
	m.addrequests_used = nil
}

// RequestsUsed returns the value of the "requests_used" field in the mutation.
func (m *QuotaLedgerMutation) RequestsUsed() (r int, exists bool) {
	v := m.requests_used
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestsUsed returns the old "requests_used" field's value of the QuotaLedger entity.
// If the QuotaLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaLedgerMutation) OldRequestsUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestsUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestsUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestsUsed: %w", err)
	}
	return oldValue.RequestsUsed, nil
}

// AddRequestsUsed adds i to the "requests_used" field.
func (m *QuotaLedgerMutation) AddRequestsUsed(i int) {
	if m.addrequests_used != nil {
		*m.addrequests_used += i
	} else {
		m.addrequests_used = &i
	}
}

// AddedRequestsUsed returns the value that was added to the "requests_used" field in this mutation.
func (m *QuotaLedgerMutation) AddedRequestsUsed() (r int, exists bool) {
	v := m.addrequests_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequestsUsed resets all changes to the "requests_used" field.
func (m *QuotaLedgerMutation) ResetRequestsUsed() {
	m.requests_used = nil
	m.addrequests_used = nil
}

// SetSandboxesCreated sets the "sandboxes_created" field.
func (m *QuotaLedgerMutation) SetSandboxesCreated(i int) {
	m.sandboxes_created = &i
	m.addsandboxes_created = nil
}

// SandboxesCreated returns the value of the "sandboxes_created" field in the mutation.
func (m *QuotaLedgerMutation) SandboxesCreated() (r int, exists bool) {
	v := m.sandboxes_created
	if v == nil {
		return
	}
	return *v, true
}

// OldSandboxesCreated returns the old "sandboxes_created" field's value of the QuotaLedger entity.
// If the QuotaLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaLedgerMutation) OldSandboxesCreated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSandboxesCreated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSandboxesCreated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSandboxesCreated: %w", err)
	}
	return oldValue.SandboxesCreated, nil
}

// AddSandboxesCreated adds i to the "sandboxes_created" field.
func (m *QuotaLedgerMutation) AddSandboxesCreated(i int) {
	if m.addsandboxes_created != nil {
		*m.addsandboxes_created += i
	} else {
		m.addsandboxes_created = &i
	}
}

// AddedSandboxesCreated returns the value that was added to the "sandboxes_created" field in this mutation.
func (m *QuotaLedgerMutation) AddedSandboxesCreated() (r int, exists bool) {
	v := m.addsandboxes_created
	if v == nil {
		return
	}
	return *v, true
}

// ResetSandboxesCreated resets all changes to the "sandboxes_created" field.
func (m *QuotaLedgerMutation) ResetSandboxesCreated() {
	m.sandboxes_created = nil
	m.addsandboxes_created = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *QuotaLedgerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *QuotaLedgerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the QuotaLedger entity.
// If the QuotaLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaLedgerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *QuotaLedgerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the QuotaLedgerMutation builder.
func (m *QuotaLedgerMutation) Where(ps ...predicate.QuotaLedger) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuotaLedgerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuotaLedgerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuotaLedger, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuotaLedgerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuotaLedgerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuotaLedger).
func (m *QuotaLedgerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuotaLedgerMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.workspace_id != nil {
		fields = append(fields, quotaledger.FieldWorkspaceID)
	}
	if m.period != nil {
		fields = append(fields, quotaledger.FieldPeriod)
	}
	if m.requests_used != nil {
		fields = append(fields, quotaledger.FieldRequestsUsed)
	}
	if m.sandboxes_created != nil {
		fields = append(fields, quotaledger.FieldSandboxesCreated)
	}
	if m.updated_at != nil {
		fields = append(fields, quotaledger.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuotaLedgerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quotaledger.FieldWorkspaceID:
		return m.WorkspaceID()
	case quotaledger.FieldPeriod:
		return m.Period()
	case quotaledger.FieldRequestsUsed:
		return m.RequestsUsed()
	case quotaledger.FieldSandboxesCreated:
		return m.SandboxesCreated()
	case quotaledger.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuotaLedgerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quotaledger.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case quotaledger.FieldPeriod:
		return m.OldPeriod(ctx)
	case quotaledger.FieldRequestsUsed:
		return m.OldRequestsUsed(ctx)
	case quotaledger.FieldSandboxesCreated:
		return m.OldSandboxesCreated(ctx)
	case quotaledger.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QuotaLedger field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuotaLedgerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quotaledger.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case quotaledger.FieldPeriod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriod(v)
		return nil
	case quotaledger.FieldRequestsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestsUsed(v)
		return nil
	case quotaledger.FieldSandboxesCreated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSandboxesCreated(v)
		return nil
	case quotaledger.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QuotaLedger field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuotaLedgerMutation) AddedFields() []string {
	var fields []string
	if m.addrequests_used != nil {
		fields = append(fields, quotaledger.FieldRequestsUsed)
	}
	if m.addsandboxes_created != nil {
		fields = append(fields, quotaledger.FieldSandboxesCreated)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuotaLedgerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quotaledger.FieldRequestsUsed:
		return m.AddedRequestsUsed()
	case quotaledger.FieldSandboxesCreated:
		return m.AddedSandboxesCreated()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuotaLedgerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quotaledger.FieldRequestsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequestsUsed(v)
		return nil
	case quotaledger.FieldSandboxesCreated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSandboxesCreated(v)
		return nil
	}
	return fmt.Errorf("unknown QuotaLedger numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuotaLedgerMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuotaLedgerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuotaLedgerMutation) ClearField(name string) error {
	return fmt.Errorf("unknown QuotaLedger nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuotaLedgerMutation) ResetField(name string) error {
	switch name {
	case quotaledger.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case quotaledger.FieldPeriod:
		m.ResetPeriod()
		return nil
	case quotaledger.FieldRequestsUsed:
		m.ResetRequestsUsed()
		return nil
	case quotaledger.FieldSandboxesCreated:
		m.ResetSandboxesCreated()
		return nil
	case quotaledger.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown QuotaLedger field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuotaLedgerMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuotaLedgerMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuotaLedgerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuotaLedgerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuotaLedgerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuotaLedgerMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuotaLedgerMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuotaLedger unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuotaLedgerMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuotaLedger edge %s", name)
}

// SandboxSessionMutation represents an operation that mutates the SandboxSession nodes in the graph.
type SandboxSessionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	user_id             *string
	workspace_id        *string
	backend             *sandboxsession.Backend
	image               *string
	cpu_limit           *string
	memory_limit        *string
	ephemeral_storage   *string
	network_policy      *string
	security_profile    *string
	backend_ref         *string
	control_endpoint    *string
	workspace_path      *string
	status              *sandboxsession.Status
	created_at          *time.Time
	last_activity_at    *time.Time
	last_heartbeat_at   *time.Time
	expires_at          *time.Time
	idle_timeout_sec    *int
	addidle_timeout_sec *int
	max_lifetime_sec    *int
	addmax_lifetime_sec *int
	restore_snapshot_id *string
	cpu_seconds         *float64
	addcpu_seconds      *float64
	storage_bytes       *int64
	addstorage_bytes    *int64
	error_message       *string
	metadata            *map[string]interface{}
	clearedFields       map[string]struct{}
	snapshots           map[string]struct{}
	removedsnapshots    map[string]struct{}
	clearedsnapshots    bool
	artifacts           map[string]struct{}
	removedartifacts    map[string]struct{}
	clearedartifacts    bool
	events              map[int]struct{}
	removedevents       map[int]struct{}
	clearedevents       bool
	done                bool
	oldValue            func(context.Context) (*SandboxSession, error)
	predicates          []predicate.SandboxSession
}

var _ ent.Mutation = (*SandboxSessionMutation)(nil)

// sandboxsessionOption allows management of the mutation configuration using functional options.
type sandboxsessionOption func(*SandboxSessionMutation)

// newSandboxSessionMutation creates new mutation for the SandboxSession entity.
func newSandboxSessionMutation(c config, op Op, opts ...sandboxsessionOption) *SandboxSessionMutation {
	m := &SandboxSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSandboxSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSandboxSessionID sets the ID field of the mutation.
func withSandboxSessionID(id string) sandboxsessionOption {
	return func(m *SandboxSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *SandboxSession
		)
		m.oldValue = func(ctx context.Context) (*SandboxSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SandboxSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSandboxSession sets the old SandboxSession of the mutation.
func withSandboxSession(node *SandboxSession) sandboxsessionOption {
	return func(m *SandboxSessionMutation) {
		m.oldValue = func(context.Context) (*SandboxSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SandboxSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SandboxSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SandboxSession entities.
func (m *SandboxSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SandboxSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SandboxSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SandboxSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SandboxSessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SandboxSessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SandboxSession entity.
// If the SandboxSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxSessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SandboxSessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *SandboxSessionMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *SandboxSessionMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the SandboxSession entity.
// If the SandboxSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxSessionMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *SandboxSessionMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetBackend sets the "backend" field.
func (m *SandboxSessionMutation) SetBackend(s sandboxsession.Backend) {
	m.backend = &s
}

// Backend returns the value of the "backend" field in the mutation.
func (m *SandboxSessionMutation) Backend() (r sandboxsession.Backend, exists bool) {
	v := m.backend
	if v == nil {
		return
	}
	return *v, true
}

// OldBackend returns the old "backend" field's value of the SandboxSession entity.
// If the SandboxSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxSessionMutation) OldBackend(ctx context.Context) (v sandboxsession.Backend, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBackend is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBackend requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBackend: %w", err)
	}
	return oldValue.Backend, nil
}

// ResetBackend resets all changes to the "backend" field.
func (m *SandboxSessionMutation) ResetBackend() {
	m.backend = nil
}

// SetImage sets the "image" field.
func (m *SandboxSessionMutation) SetImage(s string) {
	m.image = &s
}

// Image returns the value of the "image" field in the mutation.
func (m *SandboxSessionMutation) Image() (r string, exists bool) {
	v := m.image
	if v == nil {
		return
	}
	return *v, true
}

// OldImage returns the old "image" field's value of the SandboxSession entity.
// If the SandboxSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxSessionMutation) OldImage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImage: %w", err)
	}
	return oldValue.Image, nil
}

// ResetImage resets all changes to the "image" field.
func (m *SandboxSessionMutation) ResetImage() {
	m.image = nil
}

// SetCPULimit sets the "cpu_limit" field.
func (m *SandboxSessionMutation) SetCPULimit(s string) {
	m.cpu_limit = &s
}

// CPULimit returns the value of the "cpu_limit" field in the mutation.
func (m *SandboxSessionMutation) CPULimit() (r string, exists bool) {
	v := m.cpu_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldCPULimit returns the old "cpu_limit" field's value of the SandboxSession entity.
// If the SandboxSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxSessionMutation) OldCPULimit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCPULimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCPULimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCPULimit: %w", err)
	}
	return oldValue.CPULimit, nil
}

// ClearCPULimit clears the value of the "cpu_limit" field.
func (m *SandboxSessionMutation) ClearCPULimit() {
	m.cpu_limit = nil
	m.clearedFields[sandboxsession.FieldCPULimit] = struct{}{}
}

// CPULimitCleared returns if the "cpu_limit" field was cleared in this mutation.
func (m *SandboxSessionMutation) CPULimitCleared() bool {
	_, ok := m.clearedFields[sandboxsession.FieldCPULimit]
	return ok
}

// ResetCPULimit resets all changes to the "cpu_limit" field.
func (m *SandboxSessionMutation) ResetCPULimit() {
	m.cpu_limit = nil
	delete(m.clearedFields, sandboxsession.FieldCPULimit)
}

// SetMemoryLimit sets the "memory_limit" field.
func (m *SandboxSessionMutation) SetMemoryLimit(s string) {
	m.memory_limit = &s
}

// MemoryLimit returns the value of the "memory_limit" field in the mutation.
func (m *SandboxSessionMutation) MemoryLimit() (r string, exists bool) {
	v := m.memory_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldMemoryLimit returns the old "memory_limit" field's value of the SandboxSession entity.
// If the SandboxSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxSessionMutation) OldMemoryLimit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemoryLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemoryLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemoryLimit: %w", err)
	}
	return oldValue.MemoryLimit, nil
}

// ClearMemoryLimit clears the value of the "memory_limit" field.
func (m *SandboxSessionMutation) ClearMemoryLimit() {
	m.memory_limit = nil
	m.clearedFields[sandboxsession.FieldMemoryLimit] = struct{}{}
}

// MemoryLimitCleared returns if the "memory_limit" field was cleared in this mutation.
func (m *SandboxSessionMutation) MemoryLimitCleared() bool {
	_, ok := m.clearedFields[sandboxsession.FieldMemoryLimit]
	return ok
}

// ResetMemoryLimit resets all changes to the "memory_limit" field.
func (m *SandboxSessionMutation) ResetMemoryLimit() {
	m.memory_limit = nil
	delete(m.clearedFields, sandboxsession.FieldMemoryLimit)
}

// SetEphemeralStorage sets the "ephemeral_storage" field.
func (m *SandboxSessionMutation) SetEphemeralStorage(s string) {
	m.ephemeral_storage = &s
}

// EphemeralStorage returns the value of the "ephemeral_storage" field in the mutation.
func (m *SandboxSessionMutation) EphemeralStorage() (r string, exists bool) {
	v := m.ephemeral_storage
	if v == nil {
		return
	}
	return *v, true
}

// OldEphemeralStorage returns the old "ephemeral_storage" field's value of the SandboxSession entity.
// If the SandboxSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxSessionMutation) OldEphemeralStorage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEphemeralStorage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEphemeralStorage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEphemeralStorage: %w", err)
	}
	return oldValue.EphemeralStorage, nil
}

// ClearEphemeralStorage clears the value of the "ephemeral_storage" field.
func (m *SandboxSessionMutation) ClearEphemeralStorage() {
	m.ephemeral_storage = nil
	m.clearedFields[sandboxsession.FieldEphemeralStorage] = struct{}{}
}

// EphemeralStorageCleared returns if the "ephemeral_storage" field was cleared in this mutation.
func (m *SandboxSessionMutation) EphemeralStorageCleared() bool {
	_, ok := m.clearedFields[sandboxsession.FieldEphemeralStorage]
	return ok
}

// ResetEphemeralStorage resets all changes to the "ephemeral_storage" field.
func (m *SandboxSessionMutation) ResetEphemeralStorage() {
	m.ephemeral_storage = nil
	delete(m.clearedFields, sandboxsession.FieldEphemeralStorage)
}

// SetNetworkPolicy sets the "network_policy" field.
func (m *SandboxSessionMutation) SetNetworkPolicy(s string) {
	m.network_policy = &s
}

// NetworkPolicy returns the value of the "network_policy" field in the mutation.
func (m *SandboxSessionMutation) NetworkPolicy() (r string, exists bool) {
	v := m.network_policy
	if v == nil {
		return
	}
	return *v, true
}

// OldNetworkPolicy returns the old "network_policy" field's value of the SandboxSession entity.
// If the SandboxSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxSessionMutation) OldNetworkPolicy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNetworkPolicy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNetworkPolicy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNetworkPolicy: %w", err)
	}
	return oldValue.NetworkPolicy, nil
}

// ClearNetworkPolicy clears the value of the "network_policy" field.
func (m *SandboxSessionMutation) ClearNetworkPolicy() {
	m.network_policy = nil
	m.clearedFields[sandboxsession.FieldNetworkPolicy] = struct{}{}
}

// NetworkPolicyCleared returns if the "network_policy" field was cleared in this mutation.
func (m *SandboxSessionMutation) NetworkPolicyCleared() bool {
	_, ok := m.clearedFields[sandboxsession.FieldNetworkPolicy]
	return ok
}

// ResetNetworkPolicy resets all changes to the "network_policy" field.
func (m *SandboxSessionMutation) ResetNetworkPolicy() {
	m.network_policy = nil
	delete(m.clearedFields, sandboxsession.FieldNetworkPolicy)
}

// SetSecurityProfile sets the "security_profile" field.
func (m *SandboxSessionMutation) SetSecurityProfile(s string) {
	m.security_profile = &s
}

// SecurityProfile returns the value of the "security_profile" field in the mutation.
func (m *SandboxSessionMutation) SecurityProfile() (r string, exists bool) {
	v := m.security_profile
	if v == nil {
		return
	}
	return *v, true
}

// OldSecurityProfile returns the old "security_profile" field's value of the SandboxSession entity.
// If the SandboxSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxSessionMutation) OldSecurityProfile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecurityProfile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecurityProfile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecurityProfile: %w", err)
	}
	return oldValue.SecurityProfile, nil
}

// ClearSecurityProfile clears the value of the "security_profile" field.
func (m *SandboxSessionMutation) ClearSecurityProfile() {
	m.security_profile = nil
	m.clearedFields[sandboxsession.FieldSecurityProfile] = struct{}{}
}

// SecurityProfileCleared returns if the "security_profile" field was cleared in this mutation.
func (m *SandboxSessionMutation) SecurityProfileCleared() bool {
	_, ok := m.clearedFields[sandboxsession.FieldSecurityProfile]
	return ok
}

// ResetSecurityProfile resets all changes to the "security_profile" field.
func (m *SandboxSessionMutation) ResetSecurityProfile() {
	m.security_profile = nil
	delete(m.clearedFields, sandboxsession.FieldSecurityProfile)
}

// SetBackendRef sets the "backend_ref" field.
func (m *SandboxSessionMutation) SetBackendRef(s string) {
	m.backend_ref = &s
}

// BackendRef returns the value of the "backend_ref" field in the mutation.
func (m *SandboxSessionMutation) BackendRef() (r string, exists bool) {
	v := m.backend_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldBackendRef returns the old "backend_ref" field's value of the SandboxSession entity.
// If the SandboxSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxSessionMutation) OldBackendRef(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBackendRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBackendRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBackendRef: %w", err)
	}
	return oldValue.BackendRef, nil
}

// ClearBackendRef clears the value of the "backend_ref" field.
func (m *SandboxSessionMutation) ClearBackendRef() {
	m.backend_ref = nil
	m.clearedFields[sandboxsession.FieldBackendRef] = struct{}{}
}

// BackendRefCleared returns if the "backend_ref" field was cleared in this mutation.
func (m *SandboxSessionMutation) BackendRefCleared() bool {
	_, ok := m.clearedFields[sandboxsession.FieldBackendRef]
	return ok
}

// ResetBackendRef resets all changes to the "backend_ref" field.
func (m *SandboxSessionMutation) ResetBackendRef() {
	m.backend_ref = nil
	delete(m.clearedFields, sandboxsession.FieldBackendRef)
}

// SetControlEndpoint sets the "control_endpoint" field.
func (m *SandboxSessionMutation) SetControlEndpoint(s string) {
	m.control_endpoint = &s
}

// ControlEndpoint returns the value of the "control_endpoint" field in the mutation.
func (m *SandboxSessionMutation) ControlEndpoint() (r string, exists bool) {
	v := m.control_endpoint
	if v == nil {
		return
	}
	return *v, true
}

// OldControlEndpoint returns the old "control_endpoint" field's value of the SandboxSession entity.
// If the SandboxSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxSessionMutation) OldControlEndpoint(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldControlEndpoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldControlEndpoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldControlEndpoint: %w", err)
	}
	return oldValue.ControlEndpoint, nil
}

// ClearControlEndpoint clears the value of the "control_endpoint" field.
func (m *SandboxSessionMutation) ClearControlEndpoint() {
	m.control_endpoint = nil
	m.clearedFields[sandboxsession.FieldControlEndpoint] = struct{}{}
}

// ControlEndpointCleared returns if the "control_endpoint" field was cleared in this mutation.
func (m *SandboxSessionMutation) ControlEndpointCleared() bool {
	_, ok := m.clearedFields[sandboxsession.FieldControlEndpoint]
	return ok
}

// ResetControlEndpoint resets all changes to the "control_endpoint" field.
func (m *SandboxSessionMutation) ResetControlEndpoint() {
	m.control_endpoint = nil
	delete(m.clearedFields, sandboxsession.FieldControlEndpoint)
}

// SetWorkspacePath sets the "workspace_path" field.
func (m *SandboxSessionMutation) SetWorkspacePath(s string) {
	m.workspace_path = &s
}

// WorkspacePath returns the value of the "workspace_path" field in the mutation.
func (m *SandboxSessionMutation) WorkspacePath() (r string, exists bool) {
	v := m.workspace_path
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspacePath returns the old "workspace_path" field's value of the SandboxSession entity.
// If the SandboxSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxSessionMutation) OldWorkspacePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspacePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspacePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspacePath: %w", err)
	}
	return oldValue.WorkspacePath, nil
}

// ResetWorkspacePath resets all changes to the "workspace_path" field.
func (m *SandboxSessionMutation) ResetWorkspacePath() {
	m.workspace_path = nil
}

// SetStatus sets the "status" field.
func (m *SandboxSessionMutation) SetStatus(s sandboxsession.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SandboxSessionMutation) Status() (r sandboxsession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SandboxSession entity.
// If the SandboxSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxSessionMutation) OldStatus(ctx context.Context) (v sandboxsession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SandboxSessionMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SandboxSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SandboxSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SandboxSession entity.
// If the SandboxSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SandboxSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastActivityAt sets the "last_activity_at" field.
func (m *SandboxSessionMutation) SetLastActivityAt(t time.Time) {
	m.last_activity_at = &t
}

// LastActivityAt returns the value of the "last_activity_at" field in the mutation.
func (m *SandboxSessionMutation) LastActivityAt() (r time.Time, exists bool) {
	v := m.last_activity_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivityAt returns the old "last_activity_at" field's value of the SandboxSession entity.
// If the SandboxSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxSessionMutation) OldLastActivityAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivityAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivityAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivityAt: %w", err)
	}
	return oldValue.LastActivityAt, nil
}

// ResetLastActivityAt resets all changes to the "last_activity_at" field.
func (m *SandboxSessionMutation) ResetLastActivityAt() {
	m.last_activity_at = nil
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *SandboxSessionMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *SandboxSessionMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the SandboxSession entity.
// If the SandboxSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxSessionMutation) OldLastHeartbeatAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *SandboxSessionMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *SandboxSessionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *SandboxSessionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the SandboxSession entity.
// If the SandboxSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxSessionMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *SandboxSessionMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[sandboxsession.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *SandboxSessionMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[sandboxsession.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *SandboxSessionMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, sandboxsession.FieldExpiresAt)
}

// SetIdleTimeoutSec sets the "idle_timeout_sec" field.
func (m *SandboxSessionMutation) SetIdleTimeoutSec(i int) {
	m.idle_timeout_sec = &i
	m.addidle_timeout_sec = nil
}

// IdleTimeoutSec returns the value of the "idle_timeout_sec" field in the mutation.
func (m *SandboxSessionMutation) IdleTimeoutSec() (r int, exists bool) {
	v := m.idle_timeout_sec
	if v == nil {
		return
	}
	return *v, true
}

// OldIdleTimeoutSec returns the old "idle_timeout_sec" field's value of the SandboxSession entity.
// If the SandboxSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxSessionMutation) OldIdleTimeoutSec(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdleTimeoutSec is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdleTimeoutSec requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdleTimeoutSec: %w", err)
	}
	return oldValue.IdleTimeoutSec, nil
}

// AddIdleTimeoutSec adds i to the "idle_timeout_sec" field.
func (m *SandboxSessionMutation) AddIdleTimeoutSec(i int) {
	if m.addidle_timeout_sec != nil {
		*m.addidle_timeout_sec += i
	} else {
		m.addidle_timeout_sec = &i
	}
}

// AddedIdleTimeoutSec returns the value that was added to the "idle_timeout_sec" field in this mutation.
func (m *SandboxSessionMutation) AddedIdleTimeoutSec() (r int, exists bool) {
	v := m.addidle_timeout_sec
	if v == nil {
		return
	}
	return *v, true
}

// ClearIdleTimeoutSec clears the value of the "idle_timeout_sec" field.
func (m *SandboxSessionMutation) ClearIdleTimeoutSec() {
	m.idle_timeout_sec = nil
	m.addidle_timeout_sec = nil
	m.clearedFields[sandboxsession.FieldIdleTimeoutSec] = struct{}{}
}

// IdleTimeoutSecCleared returns if the "idle_timeout_sec" field was cleared in this mutation.
func (m *SandboxSessionMutation) IdleTimeoutSecCleared() bool {
	_, ok := m.clearedFields[sandboxsession.FieldIdleTimeoutSec]
	return ok
}

// ResetIdleTimeoutSec resets all changes to the "idle_timeout_sec" field.
func (m *SandboxSessionMutation) ResetIdleTimeoutSec() {
	m.idle_timeout_sec = nil
	m.addidle_timeout_sec = nil
	delete(m.clearedFields, sandboxsession.FieldIdleTimeoutSec)
}

// SetMaxLifetimeSec sets the "max_lifetime_sec" field.
func (m *SandboxSessionMutation) SetMaxLifetimeSec(i int) {
	m.max_lifetime_sec = &i
	m.addmax_lifetime_sec = nil
}

// MaxLifetimeSec returns the value of the "max_lifetime_sec" field in the mutation.
func (m *SandboxSessionMutation) MaxLifetimeSec() (r int, exists bool) {
	v := m.max_lifetime_sec
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxLifetimeSec returns the old "max_lifetime_sec" field's value of the SandboxSession entity.
// If the SandboxSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxSessionMutation) OldMaxLifetimeSec(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxLifetimeSec is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxLifetimeSec requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxLifetimeSec: %w", err)
	}
	return oldValue.MaxLifetimeSec, nil
}

// AddMaxLifetimeSec adds i to the "max_lifetime_sec" field.
func (m *SandboxSessionMutation) AddMaxLifetimeSec(i int) {
	if m.addmax_lifetime_sec != nil {
		*m.addmax_lifetime_sec += i
	} else {
		m.addmax_lifetime_sec = &i
	}
}

// AddedMaxLifetimeSec returns the value that was added to the "max_lifetime_sec" field in this mutation.
func (m *SandboxSessionMutation) AddedMaxLifetimeSec() (r int, exists bool) {
	v := m.addmax_lifetime_sec
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaxLifetimeSec clears the value of the "max_lifetime_sec" field.
func (m *SandboxSessionMutation) ClearMaxLifetimeSec() {
	m.max_lifetime_sec = nil
	m.addmax_lifetime_sec = nil
	m.clearedFields[sandboxsession.FieldMaxLifetimeSec] = struct{}{}
}

// MaxLifetimeSecCleared returns if the "max_lifetime_sec" field was cleared in this mutation.
func (m *SandboxSessionMutation) MaxLifetimeSecCleared() bool {
	_, ok := m.clearedFields[sandboxsession.FieldMaxLifetimeSec]
	return ok
}

// ResetMaxLifetimeSec resets all changes to the "max_lifetime_sec" field.
func (m *SandboxSessionMutation) ResetMaxLifetimeSec() {
	m.max_lifetime_sec = nil
	m.addmax_lifetime_sec = nil
	delete(m.clearedFields, sandboxsession.FieldMaxLifetimeSec)
}

// SetRestoreSnapshotID sets the "restore_snapshot_id" field.
func (m *SandboxSessionMutation) SetRestoreSnapshotID(s string) {
	m.restore_snapshot_id = &s
}

// RestoreSnapshotID returns the value of the "restore_snapshot_id" field in the mutation.
func (m *SandboxSessionMutation) RestoreSnapshotID() (r string, exists bool) {
	v := m.restore_snapshot_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRestoreSnapshotID returns the old "restore_snapshot_id" field's value of the SandboxSession entity.
// If the SandboxSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxSessionMutation) OldRestoreSnapshotID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRestoreSnapshotID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRestoreSnapshotID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRestoreSnapshotID: %w", err)
	}
	return oldValue.RestoreSnapshotID, nil
}

// ClearRestoreSnapshotID clears the value of the "restore_snapshot_id" field.
func (m *SandboxSessionMutation) ClearRestoreSnapshotID() {
	m.restore_snapshot_id = nil
	m.clearedFields[sandboxsession.FieldRestoreSnapshotID] = struct{}{}
}

// RestoreSnapshotIDCleared returns if the "restore_snapshot_id" field was cleared in this mutation.
func (m *SandboxSessionMutation) RestoreSnapshotIDCleared() bool {
	_, ok := m.clearedFields[sandboxsession.FieldRestoreSnapshotID]
	return ok
}

// ResetRestoreSnapshotID resets all changes to the "restore_snapshot_id" field.
func (m *SandboxSessionMutation) ResetRestoreSnapshotID() {
	m.restore_snapshot_id = nil
	delete(m.clearedFields, sandboxsession.FieldRestoreSnapshotID)
}

// SetCPUSeconds sets the "cpu_seconds" field.
func (m *SandboxSessionMutation) SetCPUSeconds(f float64) {
	m.cpu_seconds = &f
	m.addcpu_seconds = nil
}

// CPUSeconds returns the value of the "cpu_seconds" field in the mutation.
func (m *SandboxSessionMutation) CPUSeconds() (r float64, exists bool) {
	v := m.cpu_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldCPUSeconds returns the old "cpu_seconds" field's value of the SandboxSession entity.
// If the SandboxSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxSessionMutation) OldCPUSeconds(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCPUSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCPUSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCPUSeconds: %w", err)
	}
	return oldValue.CPUSeconds, nil
}

// AddCPUSeconds adds f to the "cpu_seconds" field.
func (m *SandboxSessionMutation) AddCPUSeconds(f float64) {
	if m.addcpu_seconds != nil {
		*m.addcpu_seconds += f
	} else {
		m.addcpu_seconds = &f
	}
}

// AddedCPUSeconds returns the value that was added to the "cpu_seconds" field in this mutation.
func (m *SandboxSessionMutation) AddedCPUSeconds() (r float64, exists bool) {
	v := m.addcpu_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetCPUSeconds resets all changes to the "cpu_seconds" field.
func (m *SandboxSessionMutation) ResetCPUSeconds() {
	m.cpu_seconds = nil
	m.addcpu_seconds = nil
}

// SetStorageBytes sets the "storage_bytes" field.
func (m *SandboxSessionMutation) SetStorageBytes(i int64) {
	m.storage_bytes = &i
	m.addstorage_bytes = nil
}

// StorageBytes returns the value of the "storage_bytes" field in the mutation.
func (m *SandboxSessionMutation) StorageBytes() (r int64, exists bool) {
	v := m.storage_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageBytes returns the old "storage_bytes" field's value of the SandboxSession entity.
// If the SandboxSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxSessionMutation) OldStorageBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageBytes: %w", err)
	}
	return oldValue.StorageBytes, nil
}

// AddStorageBytes adds i to the "storage_bytes" field.
func (m *SandboxSessionMutation) AddStorageBytes(i int64) {
	if m.addstorage_bytes != nil {
		*m.addstorage_bytes += i
	} else {
		m.addstorage_bytes = &i
	}
}

// AddedStorageBytes returns the value that was added to the "storage_bytes" field in this mutation.
func (m *SandboxSessionMutation) AddedStorageBytes() (r int64, exists bool) {
	v := m.addstorage_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetStorageBytes resets all changes to the "storage_bytes" field.
func (m *SandboxSessionMutation) ResetStorageBytes() {
	m.storage_bytes = nil
	m.addstorage_bytes = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *SandboxSessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SandboxSessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the SandboxSession entity.
// If the SandboxSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxSessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *SandboxSessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[sandboxsession.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *SandboxSessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[sandboxsession.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SandboxSessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, sandboxsession.FieldErrorMessage)
}

// SetMetadata sets the "metadata" field.
func (m *SandboxSessionMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *SandboxSessionMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the SandboxSession entity.
// If the SandboxSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxSessionMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *SandboxSessionMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[sandboxsession.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *SandboxSessionMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[sandboxsession.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *SandboxSessionMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, sandboxsession.FieldMetadata)
}

// AddSnapshotIDs adds the "snapshots" edge to the Snapshot entity by ids.
func (m *SandboxSessionMutation) AddSnapshotIDs(ids ...string) {
	if m.snapshots == nil {
		m.snapshots = make(map[string]struct{})
	}
	for i := range ids {
		m.snapshots[ids[i]] = struct{}{}
	}
}

// ClearSnapshots clears the "snapshots" edge to the Snapshot entity.
func (m *SandboxSessionMutation) ClearSnapshots() {
	m.clearedsnapshots = true
}

// SnapshotsCleared reports if the "snapshots" edge to the Snapshot entity was cleared.
func (m *SandboxSessionMutation) SnapshotsCleared() bool {
	return m.clearedsnapshots
}

// RemoveSnapshotIDs removes the "snapshots" edge to the Snapshot entity by IDs.
func (m *SandboxSessionMutation) RemoveSnapshotIDs(ids ...string) {
	if m.removedsnapshots == nil {
		m.removedsnapshots = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.snapshots, ids[i])
		m.removedsnapshots[ids[i]] = struct{}{}
	}
}

// RemovedSnapshots returns the removed IDs of the "snapshots" edge to the Snapshot entity.
func (m *SandboxSessionMutation) RemovedSnapshotsIDs() (ids []string) {
	for id := range m.removedsnapshots {
		ids = append(ids, id)
	}
	return
}

// SnapshotsIDs returns the "snapshots" edge IDs in the mutation.
func (m *SandboxSessionMutation) SnapshotsIDs() (ids []string) {
	for id := range m.snapshots {
		ids = append(ids, id)
	}
	return
}

// ResetSnapshots resets all changes to the "snapshots" edge.
func (m *SandboxSessionMutation) ResetSnapshots() {
	m.snapshots = nil
	m.clearedsnapshots = false
	m.removedsnapshots = nil
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by ids.
func (m *SandboxSessionMutation) AddArtifactIDs(ids ...string) {
	if m.artifacts == nil {
		m.artifacts = make(map[string]struct{})
	}
	for i := range ids {
		m.artifacts[ids[i]] = struct{}{}
	}
}

// ClearArtifacts clears the "artifacts" edge to the Artifact entity.
func (m *SandboxSessionMutation) ClearArtifacts() {
	m.clearedartifacts = true
}

// ArtifactsCleared reports if the "artifacts" edge to the Artifact entity was cleared.
func (m *SandboxSessionMutation) ArtifactsCleared() bool {
	return m.clearedartifacts
}

// RemoveArtifactIDs removes the "artifacts" edge to the Artifact entity by IDs.
func (m *SandboxSessionMutation) RemoveArtifactIDs(ids ...string) {
	if m.removedartifacts == nil {
		m.removedartifacts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.artifacts, ids[i])
		m.removedartifacts[ids[i]] = struct{}{}
	}
}

// RemovedArtifacts returns the removed IDs of the "artifacts" edge to the Artifact entity.
func (m *SandboxSessionMutation) RemovedArtifactsIDs() (ids []string) {
	for id := range m.removedartifacts {
		ids = append(ids, id)
	}
	return
}

// ArtifactsIDs returns the "artifacts" edge IDs in the mutation.
func (m *SandboxSessionMutation) ArtifactsIDs() (ids []string) {
	for id := range m.artifacts {
		ids = append(ids, id)
	}
	return
}

// ResetArtifacts resets all changes to the "artifacts" edge.
func (m *SandboxSessionMutation) ResetArtifacts() {
	m.artifacts = nil
	m.clearedartifacts = false
	m.removedartifacts = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *SandboxSessionMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *SandboxSessionMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *SandboxSessionMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *SandboxSessionMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *SandboxSessionMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *SandboxSessionMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *SandboxSessionMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the SandboxSessionMutation builder.
func (m *SandboxSessionMutation) Where(ps ...predicate.SandboxSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SandboxSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SandboxSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SandboxSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SandboxSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SandboxSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SandboxSession).
func (m *SandboxSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SandboxSessionMutation) Fields() []string {
	fields := make([]string, 0, 24)
	if m.user_id != nil {
		fields = append(fields, sandboxsession.FieldUserID)
	}
	if m.workspace_id != nil {
		fields = append(fields, sandboxsession.FieldWorkspaceID)
	}
	if m.backend != nil {
		fields = append(fields, sandboxsession.FieldBackend)
	}
	if m.image != nil {
		fields = append(fields, sandboxsession.FieldImage)
	}
	if m.cpu_limit != nil {
		fields = append(fields, sandboxsession.FieldCPULimit)
	}
	if m.memory_limit != nil {
		fields = append(fields, sandboxsession.FieldMemoryLimit)
	}
	if m.ephemeral_storage != nil {
		fields = append(fields, sandboxsession.FieldEphemeralStorage)
	}
	if m.network_policy != nil {
		fields = append(fields, sandboxsession.FieldNetworkPolicy)
	}
	if m.security_profile != nil {
		fields = append(fields, sandboxsession.FieldSecurityProfile)
	}
	if m.backend_ref != nil {
		fields = append(fields, sandboxsession.FieldBackendRef)
	}
	if m.control_endpoint != nil {
		fields = append(fields, sandboxsession.FieldControlEndpoint)
	}
	if m.workspace_path != nil {
		fields = append(fields, sandboxsession.FieldWorkspacePath)
	}
	if m.status != nil {
		fields = append(fields, sandboxsession.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, sandboxsession.FieldCreatedAt)
	}
	if m.last_activity_at != nil {
		fields = append(fields, sandboxsession.FieldLastActivityAt)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, sandboxsession.FieldLastHeartbeatAt)
	}
	if m.expires_at != nil {
		fields = append(fields, sandboxsession.FieldExpiresAt)
	}
	if m.idle_timeout_sec != nil {
		fields = append(fields, sandboxsession.FieldIdleTimeoutSec)
	}
	if m.max_lifetime_sec != nil {
		fields = append(fields, sandboxsession.FieldMaxLifetimeSec)
	}
	if m.restore_snapshot_id != nil {
		fields = append(fields, sandboxsession.FieldRestoreSnapshotID)
	}
	if m.cpu_seconds != nil {
		fields = append(fields, sandboxsession.FieldCPUSeconds)
	}
	if m.storage_bytes != nil {
		fields = append(fields, sandboxsession.FieldStorageBytes)
	}
	if m.error_message != nil {
		fields = append(fields, sandboxsession.FieldErrorMessage)
	}
	if m.metadata != nil {
		fields = append(fields, sandboxsession.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SandboxSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sandboxsession.FieldUserID:
		return m.UserID()
	case sandboxsession.FieldWorkspaceID:
		return m.WorkspaceID()
	case sandboxsession.FieldBackend:
		return m.Backend()
	case sandboxsession.FieldImage:
		return m.Image()
	case sandboxsession.FieldCPULimit:
		return m.CPULimit()
	case sandboxsession.FieldMemoryLimit:
		return m.MemoryLimit()
	case sandboxsession.FieldEphemeralStorage:
		return m.EphemeralStorage()
	case sandboxsession.FieldNetworkPolicy:
		return m.NetworkPolicy()
	case sandboxsession.FieldSecurityProfile:
		return m.SecurityProfile()
	case sandboxsession.FieldBackendRef:
		return m.BackendRef()
	case sandboxsession.FieldControlEndpoint:
		return m.ControlEndpoint()
	case sandboxsession.FieldWorkspacePath:
		return m.WorkspacePath()
	case sandboxsession.FieldStatus:
		return m.Status()
	case sandboxsession.FieldCreatedAt:
		return m.CreatedAt()
	case sandboxsession.FieldLastActivityAt:
		return m.LastActivityAt()
	case sandboxsession.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case sandboxsession.FieldExpiresAt:
		return m.ExpiresAt()
	case sandboxsession.FieldIdleTimeoutSec:
		return m.IdleTimeoutSec()
	case sandboxsession.FieldMaxLifetimeSec:
		return m.MaxLifetimeSec()
	case sandboxsession.FieldRestoreSnapshotID:
		return m.RestoreSnapshotID()
	case sandboxsession.FieldCPUSeconds:
		return m.CPUSeconds()
	case sandboxsession.FieldStorageBytes:
		return m.StorageBytes()
	case sandboxsession.FieldErrorMessage:
		return m.ErrorMessage()
	case sandboxsession.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SandboxSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sandboxsession.FieldUserID:
		return m.OldUserID(ctx)
	case sandboxsession.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case sandboxsession.FieldBackend:
		return m.OldBackend(ctx)
	case sandboxsession.FieldImage:
		return m.OldImage(ctx)
	case sandboxsession.FieldCPULimit:
		return m.OldCPULimit(ctx)
	case sandboxsession.FieldMemoryLimit:
		return m.OldMemoryLimit(ctx)
	case sandboxsession.FieldEphemeralStorage:
		return m.OldEphemeralStorage(ctx)
	case sandboxsession.FieldNetworkPolicy:
		return m.OldNetworkPolicy(ctx)
	case sandboxsession.FieldSecurityProfile:
		return m.OldSecurityProfile(ctx)
	case sandboxsession.FieldBackendRef:
		return m.OldBackendRef(ctx)
	case sandboxsession.FieldControlEndpoint:
		return m.OldControlEndpoint(ctx)
	case sandboxsession.FieldWorkspacePath:
		return m.OldWorkspacePath(ctx)
	case sandboxsession.FieldStatus:
		return m.OldStatus(ctx)
	case sandboxsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sandboxsession.FieldLastActivityAt:
		return m.OldLastActivityAt(ctx)
	case sandboxsession.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case sandboxsession.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case sandboxsession.FieldIdleTimeoutSec:
		return m.OldIdleTimeoutSec(ctx)
	case sandboxsession.FieldMaxLifetimeSec:
		return m.OldMaxLifetimeSec(ctx)
	case sandboxsession.FieldRestoreSnapshotID:
		return m.OldRestoreSnapshotID(ctx)
	case sandboxsession.FieldCPUSeconds:
		return m.OldCPUSeconds(ctx)
	case sandboxsession.FieldStorageBytes:
		return m.OldStorageBytes(ctx)
	case sandboxsession.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case sandboxsession.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown SandboxSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SandboxSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sandboxsession.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case sandboxsession.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case sandboxsession.FieldBackend:
		v, ok := value.(sandboxsession.Backend)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBackend(v)
		return nil
	case sandboxsession.FieldImage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImage(v)
		return nil
	case sandboxsession.FieldCPULimit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCPULimit(v)
		return nil
	case sandboxsession.FieldMemoryLimit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemoryLimit(v)
		return nil
	case sandboxsession.FieldEphemeralStorage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEphemeralStorage(v)
		return nil
	case sandboxsession.FieldNetworkPolicy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNetworkPolicy(v)
		return nil
	case sandboxsession.FieldSecurityProfile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecurityProfile(v)
		return nil
	case sandboxsession.FieldBackendRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBackendRef(v)
		return nil
	case sandboxsession.FieldControlEndpoint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetControlEndpoint(v)
		return nil
	case sandboxsession.FieldWorkspacePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspacePath(v)
		return nil
	case sandboxsession.FieldStatus:
		v, ok := value.(sandboxsession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case sandboxsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sandboxsession.FieldLastActivityAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivityAt(v)
		return nil
	case sandboxsession.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case sandboxsession.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case sandboxsession.FieldIdleTimeoutSec:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdleTimeoutSec(v)
		return nil
	case sandboxsession.FieldMaxLifetimeSec:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxLifetimeSec(v)
		return nil
	case sandboxsession.FieldRestoreSnapshotID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRestoreSnapshotID(v)
		return nil
	case sandboxsession.FieldCPUSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCPUSeconds(v)
		return nil
	case sandboxsession.FieldStorageBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageBytes(v)
		return nil
	case sandboxsession.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case sandboxsession.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown SandboxSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SandboxSessionMutation) AddedFields() []string {
	var fields []string
	if m.addidle_timeout_sec != nil {
		fields = append(fields, sandboxsession.FieldIdleTimeoutSec)
	}
	if m.addmax_lifetime_sec != nil {
		fields = append(fields, sandboxsession.FieldMaxLifetimeSec)
	}
	if m.addcpu_seconds != nil {
		fields = append(fields, sandboxsession.FieldCPUSeconds)
	}
	if m.addstorage_bytes != nil {
		fields = append(fields, sandboxsession.FieldStorageBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SandboxSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sandboxsession.FieldIdleTimeoutSec:
		return m.AddedIdleTimeoutSec()
	case sandboxsession.FieldMaxLifetimeSec:
		return m.AddedMaxLifetimeSec()
	case sandboxsession.FieldCPUSeconds:
		return m.AddedCPUSeconds()
	case sandboxsession.FieldStorageBytes:
		return m.AddedStorageBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SandboxSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sandboxsession.FieldIdleTimeoutSec:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIdleTimeoutSec(v)
		return nil
	case sandboxsession.FieldMaxLifetimeSec:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxLifetimeSec(v)
		return nil
	case sandboxsession.FieldCPUSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCPUSeconds(v)
		return nil
	case sandboxsession.FieldStorageBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStorageBytes(v)
		return nil
	}
	return fmt.Errorf("unknown SandboxSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SandboxSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sandboxsession.FieldCPULimit) {
		fields = append(fields, sandboxsession.FieldCPULimit)
	}
	if m.FieldCleared(sandboxsession.FieldMemoryLimit) {
		fields = append(fields, sandboxsession.FieldMemoryLimit)
	}
	if m.FieldCleared(sandboxsession.FieldEphemeralStorage) {
		fields = append(fields, sandboxsession.FieldEphemeralStorage)
	}
	if m.FieldCleared(sandboxsession.FieldNetworkPolicy) {
		fields = append(fields, sandboxsession.FieldNetworkPolicy)
	}
	if m.FieldCleared(sandboxsession.FieldSecurityProfile) {
		fields = append(fields, sandboxsession.FieldSecurityProfile)
	}
	if m.FieldCleared(sandboxsession.FieldBackendRef) {
		fields = append(fields, sandboxsession.FieldBackendRef)
	}
	if m.FieldCleared(sandboxsession.FieldControlEndpoint) {
		fields = append(fields, sandboxsession.FieldControlEndpoint)
	}
	if m.FieldCleared(sandboxsession.FieldExpiresAt) {
		fields = append(fields, sandboxsession.FieldExpiresAt)
	}
	if m.FieldCleared(sandboxsession.FieldIdleTimeoutSec) {
		fields = append(fields, sandboxsession.FieldIdleTimeoutSec)
	}
	if m.FieldCleared(sandboxsession.FieldMaxLifetimeSec) {
		fields = append(fields, sandboxsession.FieldMaxLifetimeSec)
	}
	if m.FieldCleared(sandboxsession.FieldRestoreSnapshotID) {
		fields = append(fields, sandboxsession.FieldRestoreSnapshotID)
	}
	if m.FieldCleared(sandboxsession.FieldErrorMessage) {
		fields = append(fields, sandboxsession.FieldErrorMessage)
	}
	if m.FieldCleared(sandboxsession.FieldMetadata) {
		fields = append(fields, sandboxsession.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SandboxSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SandboxSessionMutation) ClearField(name string) error {
	switch name {
	case sandboxsession.FieldCPULimit:
		m.ClearCPULimit()
		return nil
	case sandboxsession.FieldMemoryLimit:
		m.ClearMemoryLimit()
		return nil
	case sandboxsession.FieldEphemeralStorage:
		m.ClearEphemeralStorage()
		return nil
	case sandboxsession.FieldNetworkPolicy:
		m.ClearNetworkPolicy()
		return nil
	case sandboxsession.FieldSecurityProfile:
		m.ClearSecurityProfile()
		return nil
	case sandboxsession.FieldBackendRef:
		m.ClearBackendRef()
		return nil
	case sandboxsession.FieldControlEndpoint:
		m.ClearControlEndpoint()
		return nil
	case sandboxsession.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	case sandboxsession.FieldIdleTimeoutSec:
		m.ClearIdleTimeoutSec()
		return nil
	case sandboxsession.FieldMaxLifetimeSec:
		m.ClearMaxLifetimeSec()
		return nil
	case sandboxsession.FieldRestoreSnapshotID:
		m.ClearRestoreSnapshotID()
		return nil
	case sandboxsession.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case sandboxsession.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown SandboxSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SandboxSessionMutation) ResetField(name string) error {
	switch name {
	case sandboxsession.FieldUserID:
		m.ResetUserID()
		return nil
	case sandboxsession.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case sandboxsession.FieldBackend:
		m.ResetBackend()
		return nil
	case sandboxsession.FieldImage:
		m.ResetImage()
		return nil
	case sandboxsession.FieldCPULimit:
		m.ResetCPULimit()
		return nil
	case sandboxsession.FieldMemoryLimit:
		m.ResetMemoryLimit()
		return nil
	case sandboxsession.FieldEphemeralStorage:
		m.ResetEphemeralStorage()
		return nil
	case sandboxsession.FieldNetworkPolicy:
		m.ResetNetworkPolicy()
		return nil
	case sandboxsession.FieldSecurityProfile:
		m.ResetSecurityProfile()
		return nil
	case sandboxsession.FieldBackendRef:
		m.ResetBackendRef()
		return nil
	case sandboxsession.FieldControlEndpoint:
		m.ResetControlEndpoint()
		return nil
	case sandboxsession.FieldWorkspacePath:
		m.ResetWorkspacePath()
		return nil
	case sandboxsession.FieldStatus:
		m.ResetStatus()
		return nil
	case sandboxsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sandboxsession.FieldLastActivityAt:
		m.ResetLastActivityAt()
		return nil
	case sandboxsession.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case sandboxsession.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case sandboxsession.FieldIdleTimeoutSec:
		m.ResetIdleTimeoutSec()
		return nil
	case sandboxsession.FieldMaxLifetimeSec:
		m.ResetMaxLifetimeSec()
		return nil
	case sandboxsession.FieldRestoreSnapshotID:
		m.ResetRestoreSnapshotID()
		return nil
	case sandboxsession.FieldCPUSeconds:
		m.ResetCPUSeconds()
		return nil
	case sandboxsession.FieldStorageBytes:
		m.ResetStorageBytes()
		return nil
	case sandboxsession.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case sandboxsession.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown SandboxSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SandboxSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.snapshots != nil {
		edges = append(edges, sandboxsession.EdgeSnapshots)
	}
	if m.artifacts != nil {
		edges = append(edges, sandboxsession.EdgeArtifacts)
	}
	if m.events != nil {
		edges = append(edges, sandboxsession.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SandboxSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sandboxsession.EdgeSnapshots:
		ids := make([]ent.Value, 0, len(m.snapshots))
		for id := range m.snapshots {
			ids = append(ids, id)
		}
		return ids
	case sandboxsession.EdgeArtifacts:
		ids := make([]ent.Value, 0, len(m.artifacts))
		for id := range m.artifacts {
			ids = append(ids, id)
		}
		return ids
	case sandboxsession.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SandboxSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedsnapshots != nil {
		edges = append(edges, sandboxsession.EdgeSnapshots)
	}
	if m.removedartifacts != nil {
		edges = append(edges, sandboxsession.EdgeArtifacts)
	}
	if m.removedevents != nil {
		edges = append(edges, sandboxsession.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SandboxSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case sandboxsession.EdgeSnapshots:
		ids := make([]ent.Value, 0, len(m.removedsnapshots))
		for id := range m.removedsnapshots {
			ids = append(ids, id)
		}
		return ids
	case sandboxsession.EdgeArtifacts:
		ids := make([]ent.Value, 0, len(m.removedartifacts))
		for id := range m.removedartifacts {
			ids = append(ids, id)
		}
		return ids
	case sandboxsession.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SandboxSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedsnapshots {
		edges = append(edges, sandboxsession.EdgeSnapshots)
	}
	if m.clearedartifacts {
		edges = append(edges, sandboxsession.EdgeArtifacts)
	}
	if m.clearedevents {
		edges = append(edges, sandboxsession.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SandboxSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case sandboxsession.EdgeSnapshots:
		return m.clearedsnapshots
	case sandboxsession.EdgeArtifacts:
		return m.clearedartifacts
	case sandboxsession.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SandboxSessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown SandboxSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SandboxSessionMutation) ResetEdge(name string) error {
	switch name {
	case sandboxsession.EdgeSnapshots:
		m.ResetSnapshots()
		return nil
	case sandboxsession.EdgeArtifacts:
		m.ResetArtifacts()
		return nil
	case sandboxsession.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown SandboxSession edge %s", name)
}

// SnapshotMutation represents an operation that mutates the Snapshot nodes in the graph.
type SnapshotMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	label               *string
	archive_path        *string
	object_store_key    *string
	size_bytes          *int64
	addsize_bytes       *int64
	include_paths       *[]string
	appendinclude_paths []string
	exclude_paths       *[]string
	appendexclude_paths []string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	session             *string
	clearedsession      bool
	done                bool
	oldValue            func(context.Context) (*Snapshot, error)
	predicates          []predicate.Snapshot
}

var _ ent.Mutation = (*SnapshotMutation)(nil)

// snapshotOption allows management of the mutation configuration using functional options.
type snapshotOption func(*SnapshotMutation)

// newSnapshotMutation creates new mutation for the Snapshot entity.
func newSnapshotMutation(c config, op Op, opts ...snapshotOption) *SnapshotMutation {
	m := &SnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSnapshotID sets the ID field of the mutation.
func withSnapshotID(id string) snapshotOption {
	return func(m *SnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *Snapshot
		)
		m.oldValue = func(ctx context.Context) (*Snapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Snapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSnapshot sets the old Snapshot of the mutation.
func withSnapshot(node *Snapshot) snapshotOption {
	return func(m *SnapshotMutation) {
		m.oldValue = func(context.Context) (*Snapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Snapshot entities.
func (m *SnapshotMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SnapshotMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SnapshotMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Snapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *SnapshotMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SnapshotMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SnapshotMutation) ResetSessionID() {
	m.session = nil
}

// SetLabel sets the "label" field.
func (m *SnapshotMutation) SetLabel(s string) {
	m.label = &s
}

// Label returns the value of the "label" field in the mutation.
func (m *SnapshotMutation) Label() (r string, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabel returns the old "label" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabel: %w", err)
	}
	return oldValue.Label, nil
}

// ClearLabel clears the value of the "label" field.
func (m *SnapshotMutation) ClearLabel() {
	m.label = nil
	m.clearedFields[snapshot.FieldLabel] = struct{}{}
}

// LabelCleared returns if the "label" field was cleared in this mutation.
func (m *SnapshotMutation) LabelCleared() bool {
	_, ok := m.clearedFields[snapshot.FieldLabel]
	return ok
}

// ResetLabel resets all changes to the "label" field.
func (m *SnapshotMutation) ResetLabel() {
	m.label = nil
	delete(m.clearedFields, snapshot.FieldLabel)
}

// SetArchivePath sets the "archive_path" field.
func (m *SnapshotMutation) SetArchivePath(s string) {
	m.archive_path = &s
}

// ArchivePath returns the value of the "archive_path" field in the mutation.
func (m *SnapshotMutation) ArchivePath() (r string, exists bool) {
	v := m.archive_path
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivePath returns the old "archive_path" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldArchivePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivePath: %w", err)
	}
	return oldValue.ArchivePath, nil
}

// ResetArchivePath resets all changes to the "archive_path" field.
func (m *SnapshotMutation) ResetArchivePath() {
	m.archive_path = nil
}

// SetObjectStoreKey sets the "object_store_key" field.
func (m *SnapshotMutation) SetObjectStoreKey(s string) {
	m.object_store_key = &s
}

// ObjectStoreKey returns the value of the "object_store_key" field in the mutation.
func (m *SnapshotMutation) ObjectStoreKey() (r string, exists bool) {
	v := m.object_store_key
	if v == nil {
		return
	}
	return *v, true
}

// OldObjectStoreKey returns the old "object_store_key" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldObjectStoreKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjectStoreKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjectStoreKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjectStoreKey: %w", err)
	}
	return oldValue.ObjectStoreKey, nil
}

// ClearObjectStoreKey clears the value of the "object_store_key" field.
func (m *SnapshotMutation) ClearObjectStoreKey() {
	m.object_store_key = nil
	m.clearedFields[snapshot.FieldObjectStoreKey] = struct{}{}
}

// ObjectStoreKeyCleared returns if the "object_store_key" field was cleared in this mutation.
func (m *SnapshotMutation) ObjectStoreKeyCleared() bool {
	_, ok := m.clearedFields[snapshot.FieldObjectStoreKey]
	return ok
}

// ResetObjectStoreKey resets all changes to the "object_store_key" field.
func (m *SnapshotMutation) ResetObjectStoreKey() {
	m.object_store_key = nil
	delete(m.clearedFields, snapshot.FieldObjectStoreKey)
}

// SetSizeBytes sets the "size_bytes" field.
func (m *SnapshotMutation) SetSizeBytes(i int64) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *SnapshotMutation) SizeBytes() (r int64, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldSizeBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *SnapshotMutation) AddSizeBytes(i int64) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *SnapshotMutation) AddedSizeBytes() (r int64, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *SnapshotMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
}

// SetIncludePaths sets the "include_paths" field.
func (m *SnapshotMutation) SetIncludePaths(s []string) {
	m.include_paths = &s
	m.appendinclude_paths = nil
}

// IncludePaths returns the value of the "include_paths" field in the mutation.
func (m *SnapshotMutation) IncludePaths() (r []string, exists bool) {
	v := m.include_paths
	if v == nil {
		return
	}
	return *v, true
}

// OldIncludePaths returns the old "include_paths" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldIncludePaths(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncludePaths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncludePaths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncludePaths: %w", err)
	}
	return oldValue.IncludePaths, nil
}

// AppendIncludePaths adds s to the "include_paths" field.
func (m *SnapshotMutation) AppendIncludePaths(s []string) {
	m.appendinclude_paths = append(m.appendinclude_paths, s...)
}

// AppendedIncludePaths returns the list of values that were appended to the "include_paths" field in this mutation.
func (m *SnapshotMutation) AppendedIncludePaths() ([]string, bool) {
	if len(m.appendinclude_paths) == 0 {
		return nil, false
	}
	return m.appendinclude_paths, true
}

// ClearIncludePaths clears the value of the "include_paths" field.
func (m *SnapshotMutation) ClearIncludePaths() {
	m.include_paths = nil
	m.appendinclude_paths = nil
	m.clearedFields[snapshot.FieldIncludePaths] = struct{}{}
}

// IncludePathsCleared returns if the "include_paths" field was cleared in this mutation.
func (m *SnapshotMutation) IncludePathsCleared() bool {
	_, ok := m.clearedFields[snapshot.FieldIncludePaths]
	return ok
}

// ResetIncludePaths resets all changes to the "include_paths" field.
func (m *SnapshotMutation) ResetIncludePaths() {
	m.include_paths = nil
	m.appendinclude_paths = nil
	delete(m.clearedFields, snapshot.FieldIncludePaths)
}

// SetExcludePaths sets the "exclude_paths" field.
func (m *SnapshotMutation) SetExcludePaths(s []string) {
	m.exclude_paths = &s
	m.appendexclude_paths = nil
}

// ExcludePaths returns the value of the "exclude_paths" field in the mutation.
func (m *SnapshotMutation) ExcludePaths() (r []string, exists bool) {
	v := m.exclude_paths
	if v == nil {
		return
	}
	return *v, true
}

// OldExcludePaths returns the old "exclude_paths" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldExcludePaths(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExcludePaths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExcludePaths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExcludePaths: %w", err)
	}
	return oldValue.ExcludePaths, nil
}

// AppendExcludePaths adds s to the "exclude_paths" field.
func (m *SnapshotMutation) AppendExcludePaths(s []string) {
	m.appendexclude_paths = append(m.appendexclude_paths, s...)
}

// AppendedExcludePaths returns the list of values that were appended to the "exclude_paths" field in this mutation.
func (m *SnapshotMutation) AppendedExcludePaths() ([]string, bool) {
	if len(m.appendexclude_paths) == 0 {
		return nil, false
	}
	return m.appendexclude_paths, true
}

// ClearExcludePaths clears the value of the "exclude_paths" field.
func (m *SnapshotMutation) ClearExcludePaths() {
	m.exclude_paths = nil
	m.appendexclude_paths = nil
	m.clearedFields[snapshot.FieldExcludePaths] = struct{}{}
}

// ExcludePathsCleared returns if the "exclude_paths" field was cleared in this mutation.
func (m *SnapshotMutation) ExcludePathsCleared() bool {
	_, ok := m.clearedFields[snapshot.FieldExcludePaths]
	return ok
}

// ResetExcludePaths resets all changes to the "exclude_paths" field.
func (m *SnapshotMutation) ResetExcludePaths() {
	m.exclude_paths = nil
	m.appendexclude_paths = nil
	delete(m.clearedFields, snapshot.FieldExcludePaths)
}

// SetCreatedAt sets the "created_at" field.
func (m *SnapshotMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SnapshotMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SnapshotMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the SandboxSession entity.
func (m *SnapshotMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[snapshot.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the SandboxSession entity was cleared.
func (m *SnapshotMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *SnapshotMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *SnapshotMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the SnapshotMutation builder.
func (m *SnapshotMutation) Where(ps ...predicate.Snapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Snapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Snapshot).
func (m *SnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SnapshotMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.session != nil {
		fields = append(fields, snapshot.FieldSessionID)
	}
	if m.label != nil {
		fields = append(fields, snapshot.FieldLabel)
	}
	if m.archive_path != nil {
		fields = append(fields, snapshot.FieldArchivePath)
	}
	if m.object_store_key != nil {
		fields = append(fields, snapshot.FieldObjectStoreKey)
	}
	if m.size_bytes != nil {
		fields = append(fields, snapshot.FieldSizeBytes)
	}
	if m.include_paths != nil {
		fields = append(fields, snapshot.FieldIncludePaths)
	}
	if m.exclude_paths != nil {
		fields = append(fields, snapshot.FieldExcludePaths)
	}
	if m.created_at != nil {
		fields = append(fields, snapshot.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldSessionID:
		return m.SessionID()
	case snapshot.FieldLabel:
		return m.Label()
	case snapshot.FieldArchivePath:
		return m.ArchivePath()
	case snapshot.FieldObjectStoreKey:
		return m.ObjectStoreKey()
	case snapshot.FieldSizeBytes:
		return m.SizeBytes()
	case snapshot.FieldIncludePaths:
		return m.IncludePaths()
	case snapshot.FieldExcludePaths:
		return m.ExcludePaths()
	case snapshot.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case snapshot.FieldSessionID:
		return m.OldSessionID(ctx)
	case snapshot.FieldLabel:
		return m.OldLabel(ctx)
	case snapshot.FieldArchivePath:
		return m.OldArchivePath(ctx)
	case snapshot.FieldObjectStoreKey:
		return m.OldObjectStoreKey(ctx)
	case snapshot.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case snapshot.FieldIncludePaths:
		return m.OldIncludePaths(ctx)
	case snapshot.FieldExcludePaths:
		return m.OldExcludePaths(ctx)
	case snapshot.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Snapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case snapshot.FieldLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabel(v)
		return nil
	case snapshot.FieldArchivePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivePath(v)
		return nil
	case snapshot.FieldObjectStoreKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjectStoreKey(v)
		return nil
	case snapshot.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case snapshot.FieldIncludePaths:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncludePaths(v)
		return nil
	case snapshot.FieldExcludePaths:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExcludePaths(v)
		return nil
	case snapshot.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addsize_bytes != nil {
		fields = append(fields, snapshot.FieldSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldSizeBytes:
		return m.AddedSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SnapshotMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(snapshot.FieldLabel) {
		fields = append(fields, snapshot.FieldLabel)
	}
	if m.FieldCleared(snapshot.FieldObjectStoreKey) {
		fields = append(fields, snapshot.FieldObjectStoreKey)
	}
	if m.FieldCleared(snapshot.FieldIncludePaths) {
		fields = append(fields, snapshot.FieldIncludePaths)
	}
	if m.FieldCleared(snapshot.FieldExcludePaths) {
		fields = append(fields, snapshot.FieldExcludePaths)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SnapshotMutation) ClearField(name string) error {
	switch name {
	case snapshot.FieldLabel:
		m.ClearLabel()
		return nil
	case snapshot.FieldObjectStoreKey:
		m.ClearObjectStoreKey()
		return nil
	case snapshot.FieldIncludePaths:
		m.ClearIncludePaths()
		return nil
	case snapshot.FieldExcludePaths:
		m.ClearExcludePaths()
		return nil
	}
	return fmt.Errorf("unknown Snapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SnapshotMutation) ResetField(name string) error {
	switch name {
	case snapshot.FieldSessionID:
		m.ResetSessionID()
		return nil
	case snapshot.FieldLabel:
		m.ResetLabel()
		return nil
	case snapshot.FieldArchivePath:
		m.ResetArchivePath()
		return nil
	case snapshot.FieldObjectStoreKey:
		m.ResetObjectStoreKey()
		return nil
	case snapshot.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case snapshot.FieldIncludePaths:
		m.ResetIncludePaths()
		return nil
	case snapshot.FieldExcludePaths:
		m.ResetExcludePaths()
		return nil
	case snapshot.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, snapshot.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SnapshotMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case snapshot.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, snapshot.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SnapshotMutation) EdgeCleared(name string) bool {
	switch name {
	case snapshot.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SnapshotMutation) ClearEdge(name string) error {
	switch name {
	case snapshot.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Snapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SnapshotMutation) ResetEdge(name string) error {
	switch name {
	case snapshot.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Snapshot edge %s", name)
}
