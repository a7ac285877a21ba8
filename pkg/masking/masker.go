// Package masking redacts credential material from sandbox command output
// before it reaches the event stream. Commands routinely cat .env files,
// print curl headers, or echo tokens while debugging; the transcript and the
// SSE stream must not carry those values verbatim.
package masking

import "regexp"

// MaskedValue replaces every matched secret.
const MaskedValue = "***MASKED***"

// Pattern is one compiled redaction rule.
type Pattern struct {
	Name  string
	Regex *regexp.Regexp
}

// builtinPatterns cover the credential shapes most likely to appear in shell
// output. Value-shaped patterns (sk-..., AKIA...) match anywhere; key=value
// patterns keep the key and mask only the value.
var builtinPatterns = []Pattern{
	{Name: "anthropic_api_key", Regex: regexp.MustCompile(`sk-ant-[A-Za-z0-9_-]{10,}`)},
	{Name: "openai_api_key", Regex: regexp.MustCompile(`sk-[A-Za-z0-9]{20,}`)},
	{Name: "aws_access_key", Regex: regexp.MustCompile(`AKIA[0-9A-Z]{16}`)},
	{Name: "github_token", Regex: regexp.MustCompile(`gh[pousr]_[A-Za-z0-9]{36,}`)},
	{Name: "slack_token", Regex: regexp.MustCompile(`xox[baprs]-[A-Za-z0-9-]{10,}`)},
	{Name: "bearer_token", Regex: regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9._~+/-]{16,}=*`)},
	{Name: "private_key_block", Regex: regexp.MustCompile(`(?s)-----BEGIN [A-Z ]*PRIVATE KEY-----.*?-----END [A-Z ]*PRIVATE KEY-----`)},
	{Name: "env_secret", Regex: regexp.MustCompile(`(?im)^(\s*(?:export\s+)?[A-Z0-9_]*(?:SECRET|TOKEN|PASSWORD|PASSWD|API_KEY|ACCESS_KEY|PRIVATE_KEY)[A-Z0-9_]*\s*[=:]\s*)\S+`)},
	{Name: "url_credentials", Regex: regexp.MustCompile(`(://[^/\s:@]+:)[^@\s]+(@)`)},
}

// keepGroups maps pattern names to the replacement template when part of the
// match must survive (the key, the scheme prefix). Patterns not listed here
// are replaced wholesale.
var keepGroups = map[string]string{
	"bearer_token":    "${1}" + MaskedValue,
	"env_secret":      "${1}" + MaskedValue,
	"url_credentials": "${1}" + MaskedValue + "${2}",
}

// Masker applies a fixed set of redaction rules.
type Masker struct {
	patterns []Pattern
}

// NewMasker returns a masker with the built-in rules.
func NewMasker() *Masker {
	return &Masker{patterns: builtinPatterns}
}

// Mask returns s with every credential match replaced.
func (m *Masker) Mask(s string) string {
	if s == "" {
		return s
	}
	for _, p := range m.patterns {
		repl := MaskedValue
		if tmpl, ok := keepGroups[p.Name]; ok {
			repl = tmpl
		}
		s = p.Regex.ReplaceAllString(s, repl)
	}
	return s
}

var defaultMasker = NewMasker()

// Redact applies the built-in rules. Shorthand for callers that have no
// reason to carry a Masker.
func Redact(s string) string {
	return defaultMasker.Mask(s)
}
