package config

// QuotaConfig controls per-workspace usage limits enforced at session create
// and document upload time.
type QuotaConfig struct {
	// RequestsPerMonth caps graph runs per workspace per calendar month.
	RequestsPerMonth int

	// ConcurrentSandboxes caps live (status=ready) sandboxes per workspace.
	ConcurrentSandboxes int

	// SandboxesPerMonth caps sandbox creations per workspace per month.
	SandboxesPerMonth int

	// MaxDocumentsPerSession caps uploaded documents per conversation.
	MaxDocumentsPerSession int

	// MaxDocumentBytes caps a single uploaded document.
	MaxDocumentBytes int64

	// AllowedDocExtensions is the upload extension allow-list (lowercase,
	// leading dot).
	AllowedDocExtensions []string
}

// DefaultQuotaConfig returns the built-in quota defaults.
func DefaultQuotaConfig() *QuotaConfig {
	return &QuotaConfig{
		RequestsPerMonth:       getEnvInt("QUOTA_REQUESTS_PER_MONTH", 500),
		ConcurrentSandboxes:    getEnvInt("QUOTA_CONCURRENT_SANDBOXES", 5),
		SandboxesPerMonth:      getEnvInt("QUOTA_SANDBOXES_PER_MONTH", 200),
		MaxDocumentsPerSession: 5,
		MaxDocumentBytes:       10 << 20,
		AllowedDocExtensions: []string{
			".txt", ".md", ".pdf", ".csv", ".json", ".yaml", ".yml", ".py", ".log",
		},
	}
}
