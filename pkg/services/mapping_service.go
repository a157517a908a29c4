package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/postflow-io/postflow/ent"
	"github.com/postflow-io/postflow/ent/trustedmapping"
)

// MappingService maintains trusted platform-id → post-id associations.
// Mappings are written only from adapter results, never from webhook payloads,
// so a forged callback cannot graft itself onto someone else's post.
type MappingService struct {
	client *ent.Client
}

// NewMappingService creates a new MappingService
func NewMappingService(client *ent.Client) *MappingService {
	return &MappingService{client: client}
}

// Record stores a mapping. Recording the same (provider, platform_id) twice
// is a no-op; the first adapter result wins.
func (s *MappingService) Record(ctx context.Context, provider, platformID, postID string) error {
	if provider == "" || platformID == "" || postID == "" {
		return NewValidationError("mapping", "provider, platform_id and post_id are required")
	}

	err := s.client.TrustedMapping.Create().
		SetID(uuid.New().String()).
		SetProvider(provider).
		SetPlatformID(platformID).
		SetPostID(postID).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("failed to record trusted mapping: %w", err)
	}
	return nil
}

// Resolve looks up the post a platform identifier belongs to.
func (s *MappingService) Resolve(ctx context.Context, provider, platformID string) (string, error) {
	mapping, err := s.client.TrustedMapping.Query().
		Where(
			trustedmapping.ProviderEQ(provider),
			trustedmapping.PlatformIDEQ(platformID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to resolve trusted mapping: %w", err)
	}
	return mapping.PostID, nil
}
