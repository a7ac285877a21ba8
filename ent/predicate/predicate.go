// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// APIKey is the predicate function for apikey builders.
type APIKey func(*sql.Selector)

// Artifact is the predicate function for artifact builders.
type Artifact func(*sql.Selector)

// Checkpoint is the predicate function for checkpoint builders.
type Checkpoint func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// QuotaLedger is the predicate function for quotaledger builders.
type QuotaLedger func(*sql.Selector)

// SandboxSession is the predicate function for sandboxsession builders.
type SandboxSession func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)
