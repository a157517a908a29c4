package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/postflow-io/postflow/ent"
	"github.com/postflow-io/postflow/pkg/config"
	"github.com/postflow-io/postflow/pkg/models"
)

// testCipherKey is a fixed 32-byte AES-256 key for tests only.
var testCipherKey = []byte("0123456789abcdef0123456789abcdef")

func newTestCipher(t *testing.T) *TokenCipher {
	cipher, err := NewTokenCipher(testCipherKey)
	require.NoError(t, err)
	return cipher
}

// testSchedulerConfig returns a scheduler config with posting jitter disabled
// so scheduled_at assertions are deterministic.
func testSchedulerConfig() *config.SchedulerConfig {
	cfg := config.DefaultSchedulerConfig()
	cfg.PostingJitterMin = 0
	cfg.PostingJitterMax = 0
	cfg.DedupeWindow = 24 * time.Hour
	cfg.MaxAttempts = 3
	cfg.RetryBackoffBase = 10 * time.Second
	cfg.MaxBackoff = time.Minute
	return cfg
}

func newTestPostService(client *ent.Client) *PostService {
	return NewPostService(client, testSchedulerConfig(), config.NewFeatures(nil))
}

// createTestAccount registers an active account and returns its ID.
func createTestAccount(t *testing.T, client *ent.Client, creatorID, platform string) string {
	t.Helper()
	accounts := NewAccountService(client, newTestCipher(t))
	snap, err := accounts.CreateAccount(context.Background(),
		models.CreatorPrincipal{CreatorID: creatorID},
		models.CreateAccountRequest{
			Platform:          platform,
			PlatformAccountID: "pa-" + creatorID + "-" + platform,
			AccessToken:       "token-" + creatorID,
		})
	require.NoError(t, err)
	return snap.AccountID
}
