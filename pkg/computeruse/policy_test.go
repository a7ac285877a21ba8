package computeruse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/astraforge/astraforge/pkg/config"
)

func permissivePolicy() *config.ComputerUseConfig {
	return &config.ComputerUseConfig{
		ApprovalMode:      config.ApprovalAuto,
		AllowLogin:        true,
		AllowPayments:     true,
		AllowIrreversible: true,
		AllowCredentials:  true,
	}
}

func TestPolicy_AllowsPlainNavigation(t *testing.T) {
	p := NewPolicy(permissivePolicy())
	d := p.Evaluate(&ComputerCall{Type: ActionVisitURL, URL: "https://example.com/docs"})
	assert.Equal(t, DecisionAllow, d.Action)
}

func TestPolicy_BlocksDomainOutsideAllowList(t *testing.T) {
	cfg := permissivePolicy()
	cfg.AllowedDomains = []string{"example.com"}
	p := NewPolicy(cfg)

	assert.Equal(t, DecisionAllow,
		p.Evaluate(&ComputerCall{Type: ActionVisitURL, URL: "https://docs.example.com/x"}).Action)

	d := p.Evaluate(&ComputerCall{Type: ActionVisitURL, URL: "https://evil.com/x"})
	assert.Equal(t, DecisionBlock, d.Action)
	assert.Equal(t, CodeDomainBlocked, d.Code)
}

func TestPolicy_BlockListWinsOverAllowList(t *testing.T) {
	cfg := permissivePolicy()
	cfg.AllowedDomains = []string{"example.com"}
	cfg.BlockedDomains = []string{"internal.example.com"}
	p := NewPolicy(cfg)

	d := p.Evaluate(&ComputerCall{Type: ActionVisitURL, URL: "https://internal.example.com/admin"})
	assert.Equal(t, DecisionBlock, d.Action)
}

func TestPolicy_BlocksPaymentURLWhenPaymentsDisabled(t *testing.T) {
	cfg := permissivePolicy()
	cfg.AllowPayments = false
	p := NewPolicy(cfg)

	d := p.Evaluate(&ComputerCall{Type: ActionVisitURL, URL: "https://shop.example.com/checkout"})
	assert.Equal(t, DecisionBlock, d.Action)
	assert.Contains(t, d.Reason, "payment")
}

func TestPolicy_BlocksLoginURLWhenLoginDisabled(t *testing.T) {
	cfg := permissivePolicy()
	cfg.AllowLogin = false
	p := NewPolicy(cfg)

	d := p.Evaluate(&ComputerCall{Type: ActionVisitURL, URL: "https://example.com/login"})
	assert.Equal(t, DecisionBlock, d.Action)
}

func TestPolicy_BlocksCriticalPointWhenIrreversibleDisabled(t *testing.T) {
	cfg := permissivePolicy()
	cfg.AllowIrreversible = false
	p := NewPolicy(cfg)

	d := p.Evaluate(&ComputerCall{
		Type: ActionClick, X: 10, Y: 20,
		Meta: Meta{CriticalPoint: true},
	})
	assert.Equal(t, DecisionBlock, d.Action)
}

func TestPolicy_RequiresAckForCredentialTyping(t *testing.T) {
	cfg := permissivePolicy()
	cfg.AllowCredentials = false
	p := NewPolicy(cfg)

	for _, text := range []string{
		"my password is hunter2",
		"Bearer token abc",
		"user@example.com",
		"the api_key value",
	} {
		d := p.Evaluate(&ComputerCall{Type: ActionType, Text: text})
		assert.Equal(t, DecisionRequireAck, d.Action, "text %q", text)
	}

	d := p.Evaluate(&ComputerCall{Type: ActionType, Text: "hello world"})
	assert.Equal(t, DecisionAllow, d.Action)
}

func TestPolicy_ApprovalAlwaysRequiresAck(t *testing.T) {
	cfg := permissivePolicy()
	cfg.ApprovalMode = config.ApprovalAlways
	p := NewPolicy(cfg)

	d := p.Evaluate(&ComputerCall{Type: ActionClick, X: 1, Y: 1})
	assert.Equal(t, DecisionRequireAck, d.Action)
}

func TestPolicy_ApprovalOnRiskUsesSeverity(t *testing.T) {
	cfg := permissivePolicy()
	cfg.ApprovalMode = config.ApprovalOnRisk
	p := NewPolicy(cfg)

	low := p.Evaluate(&ComputerCall{
		Type:                ActionClick,
		PendingSafetyChecks: []SafetyCheck{{Code: "c1", Severity: SeverityLow}},
	})
	assert.Equal(t, DecisionAllow, low.Action)

	medium := p.Evaluate(&ComputerCall{
		Type:                ActionClick,
		PendingSafetyChecks: []SafetyCheck{{Code: "c2", Severity: SeverityMedium}},
	})
	assert.Equal(t, DecisionRequireAck, medium.Action)
	assert.Equal(t, []SafetyCheck{{Code: "c2", Severity: SeverityMedium}}, medium.Checks)
}

func TestPolicy_BlockBeatsAck(t *testing.T) {
	cfg := permissivePolicy()
	cfg.ApprovalMode = config.ApprovalAlways
	cfg.AllowedDomains = []string{"example.com"}
	p := NewPolicy(cfg)

	d := p.Evaluate(&ComputerCall{Type: ActionVisitURL, URL: "https://evil.com/"})
	assert.Equal(t, DecisionBlock, d.Action)
}

func TestPolicy_BlocksUnparseableURL(t *testing.T) {
	p := NewPolicy(permissivePolicy())
	d := p.Evaluate(&ComputerCall{Type: ActionVisitURL, URL: "::not-a-url"})
	assert.Equal(t, DecisionBlock, d.Action)
}
