package computeruse

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/astraforge/astraforge/pkg/config"
)

// Policy decisions.
const (
	DecisionAllow      = "allow"
	DecisionRequireAck = "require_ack"
	DecisionBlock      = "block"
)

// Stable decision codes, published on policy_decision events.
const (
	CodeInvalidURL          = "invalid_url"
	CodeDomainBlocked       = "domain_blocked"
	CodePaymentBlocked      = "payment_blocked"
	CodeLoginBlocked        = "login_blocked"
	CodeIrreversibleBlocked = "irreversible_blocked"
	CodeCredentialTyping    = "credential_typing"
	CodeApprovalRequired    = "approval_required"
	CodeRiskAcknowledgement = "risk_acknowledgement"
	CodeOperatorAck         = "operator_ack"
)

// Decision is the policy verdict for one ComputerCall. A block ends the run
// with blocked_policy; a require_ack suspends it with awaiting_ack until an
// operator decides. Code is the machine-readable reason; Reason is for humans.
type Decision struct {
	Action string        `json:"action"`
	Code   string        `json:"code,omitempty"`
	Reason string        `json:"reason,omitempty"`
	Checks []SafetyCheck `json:"checks,omitempty"`
}

// Policy evaluates ComputerCalls against the deployment's guardrails.
type Policy struct {
	cfg *config.ComputerUseConfig
}

// NewPolicy creates a policy over the given configuration.
func NewPolicy(cfg *config.ComputerUseConfig) *Policy {
	return &Policy{cfg: cfg}
}

var emailPattern = regexp.MustCompile(`\b[\w.+-]+@[\w-]+\.[\w.-]+\b`)

var credentialMarkers = []string{"password", "passwd", "token", "secret", "api_key", "apikey", "private key"}

// looksLikeCredential reports whether typed text resembles a credential.
func looksLikeCredential(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range credentialMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return emailPattern.MatchString(text)
}

var paymentMarkers = []string{"checkout", "payment", "billing", "/pay/", "/pay?", "purchase"}

var loginMarkers = []string{"login", "log-in", "signin", "sign-in", "/auth", "oauth", "sso"}

func containsAny(s string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}

// domainAllowed applies the block list, then the allow-list. An empty
// allow-list admits any domain that is not blocked.
func (p *Policy) domainAllowed(host string) bool {
	host = strings.ToLower(host)
	for _, blocked := range p.cfg.BlockedDomains {
		if hostMatches(host, blocked) {
			return false
		}
	}
	if len(p.cfg.AllowedDomains) == 0 {
		return true
	}
	for _, allowed := range p.cfg.AllowedDomains {
		if hostMatches(host, allowed) {
			return true
		}
	}
	return false
}

// hostMatches matches a host against a domain, including subdomains.
func hostMatches(host, domain string) bool {
	domain = strings.ToLower(strings.TrimSpace(domain))
	return host == domain || strings.HasSuffix(host, "."+domain)
}

// Evaluate returns the policy verdict for a call. Block rules run first so a
// forbidden action can never be acknowledged through.
func (p *Policy) Evaluate(call *ComputerCall) Decision {
	if call.Type == ActionVisitURL {
		target, err := url.Parse(call.URL)
		if err != nil || target.Host == "" {
			return Decision{Action: DecisionBlock, Code: CodeInvalidURL, Reason: fmt.Sprintf("unparseable url %q", call.URL)}
		}
		if !p.domainAllowed(target.Hostname()) {
			return Decision{Action: DecisionBlock, Code: CodeDomainBlocked, Reason: fmt.Sprintf("domain %s is not allowed", target.Hostname())}
		}
		lowered := strings.ToLower(call.URL)
		if !p.cfg.AllowPayments && containsAny(lowered, paymentMarkers) {
			return Decision{Action: DecisionBlock, Code: CodePaymentBlocked, Reason: "payment flows are disabled"}
		}
		if !p.cfg.AllowLogin && containsAny(lowered, loginMarkers) {
			return Decision{Action: DecisionBlock, Code: CodeLoginBlocked, Reason: "login flows are disabled"}
		}
	}

	if call.Meta.CriticalPoint && !p.cfg.AllowIrreversible {
		return Decision{Action: DecisionBlock, Code: CodeIrreversibleBlocked, Reason: "irreversible actions are disabled"}
	}

	if call.Type == ActionType && !p.cfg.AllowCredentials && looksLikeCredential(call.Text) {
		return Decision{
			Action: DecisionRequireAck,
			Code:   CodeCredentialTyping,
			Reason: "typed text resembles a credential",
			Checks: call.PendingSafetyChecks,
		}
	}

	switch p.cfg.ApprovalMode {
	case config.ApprovalAlways:
		return Decision{
			Action: DecisionRequireAck,
			Code:   CodeApprovalRequired,
			Reason: "approval mode requires acknowledgement of every action",
			Checks: call.PendingSafetyChecks,
		}
	case config.ApprovalOnRisk:
		for _, check := range call.PendingSafetyChecks {
			if severityRank(check.Severity) >= severityRank(SeverityMedium) {
				return Decision{
					Action: DecisionRequireAck,
					Code:   CodeRiskAcknowledgement,
					Reason: fmt.Sprintf("safety check %s has severity %s", check.Code, check.Severity),
					Checks: call.PendingSafetyChecks,
				}
			}
		}
	}

	return Decision{Action: DecisionAllow}
}
