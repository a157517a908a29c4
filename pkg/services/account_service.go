package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/postflow-io/postflow/ent"
	"github.com/postflow-io/postflow/ent/account"
	"github.com/postflow-io/postflow/pkg/models"
)

// AccountService manages creator platform accounts and their tokens
type AccountService struct {
	client *ent.Client
	cipher *TokenCipher
}

// NewAccountService creates a new AccountService
func NewAccountService(client *ent.Client, cipher *TokenCipher) *AccountService {
	return &AccountService{client: client, cipher: cipher}
}

var validPlatforms = map[string]bool{
	"instagram": true,
	"tiktok":    true,
	"x":         true,
	"reddit":    true,
}

// CreateAccount registers a platform account for a creator, encrypting the
// OAuth tokens before they touch the database.
func (s *AccountService) CreateAccount(httpCtx context.Context, principal models.CreatorPrincipal, req models.CreateAccountRequest) (*models.AccountSnapshot, error) {
	if !principal.Valid() {
		return nil, NewValidationError("creator_id", "required")
	}
	if !validPlatforms[req.Platform] {
		return nil, NewValidationError("platform", "must be one of instagram, tiktok, x, reddit")
	}
	if req.PlatformAccountID == "" {
		return nil, NewValidationError("platform_account_id", "required")
	}
	if req.AccessToken == "" {
		return nil, NewValidationError("access_token", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	accessCiphertext, err := s.cipher.Encrypt(req.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt access token: %w", err)
	}

	builder := s.client.Account.Create().
		SetID(uuid.New().String()).
		SetCreatorID(principal.CreatorID).
		SetPlatform(account.Platform(req.Platform)).
		SetPlatformAccountID(req.PlatformAccountID).
		SetStatus(account.StatusActive).
		SetAccessTokenCiphertext(accessCiphertext)

	if req.DisplayName != "" {
		builder = builder.SetDisplayName(req.DisplayName)
	}
	if req.RefreshToken != "" {
		refreshCiphertext, err := s.cipher.Encrypt(req.RefreshToken)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt refresh token: %w", err)
		}
		builder = builder.SetRefreshTokenCiphertext(refreshCiphertext)
	}
	if req.TokenExpiresAt != nil {
		builder = builder.SetTokenExpiresAt(*req.TokenExpiresAt)
	}
	if req.Priority > 0 {
		builder = builder.SetPriority(req.Priority)
	}

	acct, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	snap := toAccountSnapshot(acct)
	return &snap, nil
}

// GetAccount retrieves an account scoped to the calling creator
func (s *AccountService) GetAccount(ctx context.Context, principal models.CreatorPrincipal, accountID string) (*models.AccountSnapshot, error) {
	acct, err := s.client.Account.Query().
		Where(
			account.IDEQ(accountID),
			account.CreatorIDEQ(principal.CreatorID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	snap := toAccountSnapshot(acct)
	return &snap, nil
}

// ListAccounts lists a creator's accounts
func (s *AccountService) ListAccounts(ctx context.Context, principal models.CreatorPrincipal) ([]models.AccountSnapshot, error) {
	accounts, err := s.client.Account.Query().
		Where(account.CreatorIDEQ(principal.CreatorID)).
		Order(ent.Asc(account.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	snaps := make([]models.AccountSnapshot, 0, len(accounts))
	for _, acct := range accounts {
		snaps = append(snaps, toAccountSnapshot(acct))
	}
	return snaps, nil
}

// UpdateTokens replaces an account's OAuth tokens and reactivates it.
func (s *AccountService) UpdateTokens(ctx context.Context, principal models.CreatorPrincipal, accountID, accessToken, refreshToken string, expiresAt *time.Time) error {
	if accessToken == "" {
		return NewValidationError("access_token", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	accessCiphertext, err := s.cipher.Encrypt(accessToken)
	if err != nil {
		return fmt.Errorf("failed to encrypt access token: %w", err)
	}

	update := s.client.Account.Update().
		Where(
			account.IDEQ(accountID),
			account.CreatorIDEQ(principal.CreatorID),
		).
		SetAccessTokenCiphertext(accessCiphertext).
		SetStatus(account.StatusActive)

	if refreshToken != "" {
		refreshCiphertext, err := s.cipher.Encrypt(refreshToken)
		if err != nil {
			return fmt.Errorf("failed to encrypt refresh token: %w", err)
		}
		update = update.SetRefreshTokenCiphertext(refreshCiphertext)
	}
	if expiresAt != nil {
		update = update.SetTokenExpiresAt(*expiresAt)
	}

	count, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to update tokens: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// AccessToken decrypts the access token for adapter use. Internal callers
// only; never exposed through the API.
func (s *AccountService) AccessToken(ctx context.Context, accountID string) (string, error) {
	_, token, err := s.DispatchAuth(ctx, accountID)
	return token, err
}

// DispatchAuth returns what an adapter needs to publish on an account: the
// platform-side account ID and a decrypted access token. Internal callers
// only; never exposed through the API.
func (s *AccountService) DispatchAuth(ctx context.Context, accountID string) (string, string, error) {
	acct, err := s.client.Account.Query().
		Where(account.IDEQ(accountID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", "", ErrNotFound
		}
		return "", "", fmt.Errorf("failed to load account: %w", err)
	}
	if acct.Status == account.StatusRevoked {
		return "", "", ErrAccountUnavailable
	}
	token, err := s.cipher.Decrypt(acct.AccessTokenCiphertext)
	if err != nil {
		return "", "", err
	}
	return acct.PlatformAccountID, token, nil
}

// SetStatus transitions an account's status. Not creator-scoped: the
// workflow engine marks accounts revoked or cooling down on adapter signals.
func (s *AccountService) SetStatus(ctx context.Context, accountID string, status account.Status) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Account.UpdateOneID(accountID).
		SetStatus(status).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set account status: %w", err)
	}
	return nil
}

func toAccountSnapshot(a *ent.Account) models.AccountSnapshot {
	return models.AccountSnapshot{
		AccountID:         a.ID,
		Platform:          string(a.Platform),
		PlatformAccountID: a.PlatformAccountID,
		DisplayName:       a.DisplayName,
		Status:            string(a.Status),
		Priority:          a.Priority,
		TokenExpiresAt:    a.TokenExpiresAt,
		CreatedAt:         a.CreatedAt,
	}
}
