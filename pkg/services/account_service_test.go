package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postflow-io/postflow/ent/account"
	"github.com/postflow-io/postflow/pkg/models"
	testdb "github.com/postflow-io/postflow/test/database"
)

func TestAccountService_CreateAccount(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAccountService(client.Client, newTestCipher(t))
	ctx := context.Background()

	principal := models.CreatorPrincipal{CreatorID: "creator-1"}

	t.Run("creates account with encrypted tokens", func(t *testing.T) {
		snap, err := service.CreateAccount(ctx, principal, models.CreateAccountRequest{
			Platform:          "instagram",
			PlatformAccountID: "ig-123",
			DisplayName:       "Main IG",
			AccessToken:       "secret-access",
			RefreshToken:      "secret-refresh",
		})
		require.NoError(t, err)
		assert.Equal(t, "instagram", snap.Platform)
		assert.Equal(t, "ig-123", snap.PlatformAccountID)
		assert.Equal(t, string(account.StatusActive), snap.Status)

		// The plaintext token never touches the row.
		acct, err := client.Account.Get(ctx, snap.AccountID)
		require.NoError(t, err)
		assert.NotContains(t, string(acct.AccessTokenCiphertext), "secret-access")

		platformAccountID, token, err := service.DispatchAuth(ctx, snap.AccountID)
		require.NoError(t, err)
		assert.Equal(t, "ig-123", platformAccountID)
		assert.Equal(t, "secret-access", token)
	})

	t.Run("rejects duplicate platform account", func(t *testing.T) {
		req := models.CreateAccountRequest{
			Platform:          "tiktok",
			PlatformAccountID: "tt-1",
			AccessToken:       "tok",
		}
		_, err := service.CreateAccount(ctx, principal, req)
		require.NoError(t, err)

		_, err = service.CreateAccount(ctx, principal, req)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("rejects unknown platforms", func(t *testing.T) {
		_, err := service.CreateAccount(ctx, principal, models.CreateAccountRequest{
			Platform:          "myspace",
			PlatformAccountID: "ms-1",
			AccessToken:       "tok",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestAccountService_TokenLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAccountService(client.Client, newTestCipher(t))
	ctx := context.Background()

	principal := models.CreatorPrincipal{CreatorID: "creator-1"}

	snap, err := service.CreateAccount(ctx, principal, models.CreateAccountRequest{
		Platform:          "x",
		PlatformAccountID: "x-1",
		AccessToken:       "original-token",
	})
	require.NoError(t, err)

	t.Run("revoked account refuses dispatch auth", func(t *testing.T) {
		require.NoError(t, service.SetStatus(ctx, snap.AccountID, account.StatusRevoked))

		_, _, err := service.DispatchAuth(ctx, snap.AccountID)
		assert.ErrorIs(t, err, ErrAccountUnavailable)
	})

	t.Run("rotating tokens reactivates the account", func(t *testing.T) {
		expiry := time.Now().Add(time.Hour)
		err := service.UpdateTokens(ctx, principal, snap.AccountID, "rotated-token", "", &expiry)
		require.NoError(t, err)

		_, token, err := service.DispatchAuth(ctx, snap.AccountID)
		require.NoError(t, err)
		assert.Equal(t, "rotated-token", token)

		got, err := service.GetAccount(ctx, principal, snap.AccountID)
		require.NoError(t, err)
		assert.Equal(t, string(account.StatusActive), got.Status)
	})

	t.Run("other creator cannot rotate tokens", func(t *testing.T) {
		err := service.UpdateTokens(ctx, models.CreatorPrincipal{CreatorID: "creator-2"},
			snap.AccountID, "stolen", "", nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("listing is creator scoped", func(t *testing.T) {
		mine, err := service.ListAccounts(ctx, principal)
		require.NoError(t, err)
		assert.Len(t, mine, 1)

		theirs, err := service.ListAccounts(ctx, models.CreatorPrincipal{CreatorID: "creator-2"})
		require.NoError(t, err)
		assert.Empty(t, theirs)
	})
}
