package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/astraforge/astraforge/ent"
	"github.com/astraforge/astraforge/ent/apikey"
	"github.com/astraforge/astraforge/pkg/database"
)

// APIKeyService issues and verifies API keys. Raw tokens are shown once at
// creation; only the SHA-256 digest is stored.
type APIKeyService struct {
	db *database.Client
}

// NewAPIKeyService creates a new APIKeyService
func NewAPIKeyService(db *database.Client) *APIKeyService {
	return &APIKeyService{db: db}
}

// hashKey returns the stored form of a raw token.
func hashKey(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// Create issues a new key for a user and returns the raw token alongside the
// stored row. The raw token is not recoverable afterwards.
func (s *APIKeyService) Create(ctx context.Context, userID, name string) (*ent.APIKey, string, error) {
	if userID == "" {
		return nil, "", NewValidationError("user_id", "required")
	}

	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return nil, "", fmt.Errorf("failed to generate key material: %w", err)
	}
	raw := "af_" + base64.RawURLEncoding.EncodeToString(tokenBytes)

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	key, err := s.db.APIKey.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetName(name).
		SetKeyHash(hashKey(raw)).
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, "", ErrAlreadyExists
		}
		return nil, "", fmt.Errorf("failed to create api key: %w", err)
	}
	return key, raw, nil
}

// Authenticate resolves a raw token to its key row, bumping last_used_at.
// Unknown tokens return ErrUnauthorized.
func (s *APIKeyService) Authenticate(ctx context.Context, raw string) (*ent.APIKey, error) {
	if raw == "" {
		return nil, ErrUnauthorized
	}

	key, err := s.db.APIKey.Query().
		Where(apikey.KeyHashEQ(hashKey(raw))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up api key: %w", err)
	}

	// Best effort; authentication succeeds even if the bump fails
	_ = s.db.APIKey.UpdateOneID(key.ID).
		SetLastUsedAt(time.Now()).
		Exec(ctx)

	return key, nil
}

// Revoke deletes a key owned by the user.
func (s *APIKeyService) Revoke(ctx context.Context, userID, keyID string) error {
	count, err := s.db.APIKey.Delete().
		Where(apikey.ID(keyID), apikey.UserIDEQ(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to revoke api key: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns a user's keys, newest first.
func (s *APIKeyService) List(ctx context.Context, userID string) ([]*ent.APIKey, error) {
	keys, err := s.db.APIKey.Query().
		Where(apikey.UserIDEQ(userID)).
		Order(ent.Desc(apikey.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list api keys: %w", err)
	}
	return keys, nil
}
