package config

// ApprovalMode controls when computer-use actions require operator approval.
type ApprovalMode string

// Approval modes, in increasing order of strictness.
const (
	ApprovalAuto   ApprovalMode = "auto"
	ApprovalOnRisk ApprovalMode = "on_risk"
	ApprovalAlways ApprovalMode = "always"
)

// ComputerUseConfig controls the browser-automation tool family: the policy
// layer that gates every ComputerCall, and the trace recorder.
type ComputerUseConfig struct {
	// TraceDir is the root directory for run traces. Empty disables tracing.
	TraceDir string

	// ApprovalMode is one of auto, on_risk, always.
	ApprovalMode ApprovalMode

	// AllowedDomains restricts navigation targets. Empty means any domain
	// not explicitly blocked is allowed.
	AllowedDomains []string

	// BlockedDomains are always refused, regardless of the allow-list.
	BlockedDomains []string

	AllowLogin        bool
	AllowPayments     bool
	AllowIrreversible bool
	AllowCredentials  bool
}

// LoadComputerUseConfig reads computer-use configuration from the environment.
func LoadComputerUseConfig() *ComputerUseConfig {
	mode := ApprovalMode(getEnvOrDefault("COMPUTER_USE_APPROVAL_MODE", string(ApprovalAuto)))
	switch mode {
	case ApprovalAuto, ApprovalOnRisk, ApprovalAlways:
	default:
		mode = ApprovalAuto
	}
	return &ComputerUseConfig{
		TraceDir:          getEnvOrDefault("COMPUTER_USE_TRACE_DIR", ""),
		ApprovalMode:      mode,
		AllowedDomains:    getEnvCSV("COMPUTER_USE_ALLOWED_DOMAINS"),
		BlockedDomains:    getEnvCSV("COMPUTER_USE_BLOCKED_DOMAINS"),
		AllowLogin:        getEnvBool("COMPUTER_USE_ALLOW_LOGIN", false),
		AllowPayments:     getEnvBool("COMPUTER_USE_ALLOW_PAYMENTS", false),
		AllowIrreversible: getEnvBool("COMPUTER_USE_ALLOW_IRREVERSIBLE", false),
		AllowCredentials:  getEnvBool("COMPUTER_USE_ALLOW_CREDENTIALS", false),
	}
}
