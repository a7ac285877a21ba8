package sandbox

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/astraforge/astraforge/ent"
)

func intPtr(v int) *int { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func TestExpiryReason(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		sess *ent.SandboxSession
		want string
	}{
		{
			name: "no deadlines configured",
			sess: &ent.SandboxSession{LastActivityAt: now.Add(-24 * time.Hour)},
			want: "",
		},
		{
			name: "max lifetime passed",
			sess: &ent.SandboxSession{
				MaxLifetimeSec: intPtr(3600),
				ExpiresAt:      timePtr(now.Add(-time.Minute)),
				LastActivityAt: now,
			},
			want: "max_lifetime",
		},
		{
			name: "max lifetime not yet reached",
			sess: &ent.SandboxSession{
				MaxLifetimeSec: intPtr(3600),
				ExpiresAt:      timePtr(now.Add(time.Hour)),
				LastActivityAt: now,
			},
			want: "",
		},
		{
			name: "idle timeout passed",
			sess: &ent.SandboxSession{
				IdleTimeoutSec: intPtr(600),
				LastActivityAt: now.Add(-11 * time.Minute),
			},
			want: "idle_timeout",
		},
		{
			name: "recent activity spares the session",
			sess: &ent.SandboxSession{
				IdleTimeoutSec: intPtr(600),
				LastActivityAt: now.Add(-time.Minute),
			},
			want: "",
		},
		{
			name: "max lifetime wins when both passed",
			sess: &ent.SandboxSession{
				MaxLifetimeSec: intPtr(3600),
				ExpiresAt:      timePtr(now.Add(-time.Minute)),
				IdleTimeoutSec: intPtr(600),
				LastActivityAt: now.Add(-time.Hour),
			},
			want: "max_lifetime",
		},
		{
			name: "deadline exactly now expires",
			sess: &ent.SandboxSession{
				IdleTimeoutSec: intPtr(600),
				LastActivityAt: now.Add(-10 * time.Minute),
			},
			want: "idle_timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expiryReason(tt.sess, now))
		})
	}
}
