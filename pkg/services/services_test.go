package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astraforge/astraforge/pkg/config"
	"github.com/astraforge/astraforge/pkg/models"
)

func TestTransitionAllowed(t *testing.T) {
	tests := []struct {
		from, to string
		allowed  bool
	}{
		{models.SessionStatusStarting, models.SessionStatusReady, true},
		{models.SessionStatusStarting, models.SessionStatusFailed, true},
		{models.SessionStatusStarting, models.SessionStatusTerminated, true},
		{models.SessionStatusReady, models.SessionStatusTerminated, true},
		{models.SessionStatusReady, models.SessionStatusFailed, true},
		{models.SessionStatusReady, models.SessionStatusStarting, false},
		{models.SessionStatusFailed, models.SessionStatusStarting, true},
		{models.SessionStatusTerminated, models.SessionStatusReady, false},
		{models.SessionStatusTerminated, models.SessionStatusStarting, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_to_%s", tt.from, tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, transitionAllowed(tt.from, tt.to))
		})
	}
}

func TestCurrentPeriod(t *testing.T) {
	assert.Equal(t, "2026-08", currentPeriod(time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)))
	// Period follows UTC, not local time
	loc := time.FixedZone("UTC+10", 10*3600)
	assert.Equal(t, "2026-07", currentPeriod(time.Date(2026, 8, 1, 5, 0, 0, 0, loc)))
}

func TestDocumentService_ExtensionAllowed(t *testing.T) {
	svc := &DocumentService{cfg: config.DefaultQuotaConfig()}

	assert.True(t, svc.extensionAllowed("report.pdf"))
	assert.True(t, svc.extensionAllowed("notes.MD"))
	assert.True(t, svc.extensionAllowed("data.csv"))
	assert.False(t, svc.extensionAllowed("binary.exe"))
	assert.False(t, svc.extensionAllowed("script.sh"))
	assert.False(t, svc.extensionAllowed("noextension"))
}

func TestHashKey(t *testing.T) {
	h1 := hashKey("af_sometoken")
	h2 := hashKey("af_sometoken")
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
	assert.NotEqual(t, h1, hashKey("af_othertoken"))
}

func TestQuotaExceededError(t *testing.T) {
	err := fmt.Errorf("creating run: %w", &QuotaExceededError{
		Limit:   "requests_per_month",
		Current: 500,
		Max:     500,
	})
	assert.True(t, IsQuotaExceeded(err))
	assert.Contains(t, err.Error(), "requests_per_month")
	assert.False(t, IsQuotaExceeded(errors.New("other")))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("goal", "required")
	require.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "goal")

	wrapped := fmt.Errorf("create: %w", err)
	assert.True(t, IsValidationError(wrapped))
	assert.False(t, IsValidationError(ErrNotFound))
}

func TestIsTerminalRunStatus(t *testing.T) {
	assert.True(t, models.IsTerminalRunStatus(models.RunStatusCompleted))
	assert.True(t, models.IsTerminalRunStatus(models.RunStatusFailed))
	assert.True(t, models.IsTerminalRunStatus(models.RunStatusCancelled))
	assert.False(t, models.IsTerminalRunStatus(models.RunStatusPaused))
	assert.False(t, models.IsTerminalRunStatus(models.RunStatusRunning))
	assert.False(t, models.IsTerminalRunStatus(models.RunStatusCreated))
}
