package computeruse

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/astraforge/astraforge/pkg/config"
)

func testSession(cfg *config.ComputerUseConfig) *Session {
	return &Session{
		policy:    NewPolicy(cfg),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		approvals: make(map[string]bool),
	}
}

func TestSession_ApprovalIsSingleUse(t *testing.T) {
	s := testSession(permissivePolicy())
	call := &ComputerCall{Type: ActionClick, X: 10, Y: 20}

	assert.False(t, s.consumeApproval(call))

	s.Approve(call)
	assert.True(t, s.consumeApproval(call))
	assert.False(t, s.consumeApproval(call))
}

func TestSession_ApprovalKeysOnContentNotCallID(t *testing.T) {
	s := testSession(permissivePolicy())

	held := &ComputerCall{CallID: "c1", Type: ActionVisitURL, URL: "https://example.com/x"}
	s.Approve(held)

	// A retried call carries a fresh id but the same action content.
	retried := &ComputerCall{CallID: "c2", Type: ActionVisitURL, URL: "https://example.com/x"}
	assert.True(t, s.consumeApproval(retried))

	other := &ComputerCall{CallID: "c3", Type: ActionVisitURL, URL: "https://example.com/y"}
	s.Approve(held)
	assert.False(t, s.consumeApproval(other))
}

func TestPolicyError_Message(t *testing.T) {
	blocked := &PolicyError{
		Call:     &ComputerCall{Type: ActionVisitURL, URL: "https://evil.com/"},
		Decision: Decision{Action: DecisionBlock, Code: CodeDomainBlocked, Reason: "domain evil.com is not allowed"},
	}
	assert.Contains(t, blocked.Error(), "blocked")
	assert.Contains(t, blocked.Error(), "domain evil.com is not allowed")

	held := &PolicyError{
		Call:     &ComputerCall{Type: ActionType, Text: "secret"},
		Decision: Decision{Action: DecisionRequireAck, Code: CodeCredentialTyping, Reason: "typing resembles a credential"},
	}
	assert.Contains(t, held.Error(), "held for acknowledgement")
}
