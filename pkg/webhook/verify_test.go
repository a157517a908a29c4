package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func signTimestamped(secret []byte, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyPlain(t *testing.T) {
	secret := []byte("shared-secret")
	body := []byte(`{"event_id":"evt-1","status":"published"}`)

	require.NoError(t, VerifyPlain(secret, body, sign(secret, body)))

	// Uppercase hex is accepted.
	upper := fmt.Sprintf("%X", mustDecode(t, sign(secret, body)))
	require.NoError(t, VerifyPlain(secret, body, upper))

	assert.ErrorIs(t, VerifyPlain(secret, body, sign([]byte("wrong"), body)), ErrBadSignature)
	assert.ErrorIs(t, VerifyPlain(secret, []byte(`tampered`), sign(secret, body)), ErrBadSignature)
}

func TestVerifyTimestamped(t *testing.T) {
	secret := []byte("shared-secret")
	body := []byte(`{"event_id":"evt-2"}`)
	tolerance := 5 * time.Minute

	now := strconv.FormatInt(time.Now().Unix(), 10)
	require.NoError(t, VerifyTimestamped(secret, body, now, signTimestamped(secret, now, body), tolerance))

	// Signature over a different timestamp fails even inside the window.
	other := strconv.FormatInt(time.Now().Add(-time.Minute).Unix(), 10)
	assert.ErrorIs(t,
		VerifyTimestamped(secret, body, now, signTimestamped(secret, other, body), tolerance),
		ErrBadSignature)
}

func TestVerifyTimestampedReplayWindow(t *testing.T) {
	secret := []byte("shared-secret")
	body := []byte(`{}`)
	tolerance := 5 * time.Minute

	stale := strconv.FormatInt(time.Now().Add(-10*time.Minute).Unix(), 10)
	err := VerifyTimestamped(secret, body, stale, signTimestamped(secret, stale, body), tolerance)
	assert.ErrorIs(t, err, ErrStaleTimestamp)

	future := strconv.FormatInt(time.Now().Add(10*time.Minute).Unix(), 10)
	err = VerifyTimestamped(secret, body, future, signTimestamped(secret, future, body), tolerance)
	assert.ErrorIs(t, err, ErrStaleTimestamp)

	err = VerifyTimestamped(secret, body, "not-a-number", "deadbeef", tolerance)
	assert.ErrorIs(t, err, ErrStaleTimestamp)
}

func TestStripPrefix(t *testing.T) {
	assert.Equal(t, "abc123", StripPrefix("sha256=abc123", "sha256="))
	assert.Equal(t, "abc123", StripPrefix("abc123", "sha256="))
	assert.Equal(t, "abc123", StripPrefix("abc123", ""))
}

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, "published", normalizeStatus("PUBLISH_COMPLETE", ""))
	assert.Equal(t, "published", normalizeStatus("", "media.published"))
	assert.Equal(t, "published", normalizeStatus("FINISHED", ""))
	assert.Equal(t, "failed", normalizeStatus("publish_failed", ""))
	assert.Equal(t, "failed", normalizeStatus("", "video.rejected"))
	assert.Equal(t, "processing", normalizeStatus("PROCESSING", ""))
}

func mustDecode(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}
