package services

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
)

// TokenKeyEnv holds the base64-encoded 32-byte AES key used to encrypt
// platform OAuth tokens at rest.
const TokenKeyEnv = "POSTFLOW_TOKEN_KEY"

// TokenCipher seals and opens OAuth tokens with AES-256-GCM.
// Ciphertext layout: nonce || sealed.
type TokenCipher struct {
	aead cipher.AEAD
}

// NewTokenCipher creates a cipher from a raw 32-byte key.
func NewTokenCipher(key []byte) (*TokenCipher, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("token key must be 32 bytes, got %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return &TokenCipher{aead: aead}, nil
}

// NewTokenCipherFromEnv reads the key from POSTFLOW_TOKEN_KEY (base64).
func NewTokenCipherFromEnv() (*TokenCipher, error) {
	encoded := os.Getenv(TokenKeyEnv)
	if encoded == "" {
		return nil, fmt.Errorf("%s is not set", TokenKeyEnv)
	}
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", TokenKeyEnv, err)
	}
	return NewTokenCipher(key)
}

// Encrypt seals a plaintext token.
func (c *TokenCipher) Encrypt(plaintext string) ([]byte, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return c.aead.Seal(nonce, nonce, []byte(plaintext), nil), nil
}

// Decrypt opens a sealed token.
func (c *TokenCipher) Decrypt(ciphertext []byte) (string, error) {
	if len(ciphertext) < c.aead.NonceSize() {
		return "", fmt.Errorf("ciphertext too short")
	}
	nonce, sealed := ciphertext[:c.aead.NonceSize()], ciphertext[c.aead.NonceSize():]
	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt token: %w", err)
	}
	return string(plaintext), nil
}
