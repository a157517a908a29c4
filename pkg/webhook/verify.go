package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrBadSignature means the HMAC did not match.
	ErrBadSignature = errors.New("signature mismatch")

	// ErrStaleTimestamp means the delivery is outside the replay window.
	ErrStaleTimestamp = errors.New("timestamp outside replay window")
)

// VerifyPlain checks an HMAC-SHA256 hex signature over the exact raw body.
func VerifyPlain(secret, body []byte, signature string) error {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(signature))) {
		return ErrBadSignature
	}
	return nil
}

// VerifyTimestamped checks the timestamped scheme: the signature covers
// timestamp + "." + body, and the timestamp must be within tolerance of now.
// The timestamp check runs first so replays fail before any HMAC work.
func VerifyTimestamped(secret, body []byte, timestamp, signature string, tolerance time.Duration) error {
	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: unparseable timestamp %q", ErrStaleTimestamp, timestamp)
	}
	drift := time.Since(time.Unix(ts, 0))
	if drift < 0 {
		drift = -drift
	}
	if drift > tolerance {
		return ErrStaleTimestamp
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(signature))) {
		return ErrBadSignature
	}
	return nil
}

// StripPrefix removes a scheme prefix like "sha256=" from a signature header.
func StripPrefix(signature, prefix string) string {
	if prefix != "" {
		return strings.TrimPrefix(signature, prefix)
	}
	return signature
}
