// Package paymentpoint integrates with the PaymentPoint payment provider:
// webhook authentication, the webhook event schema, and the virtual account
// provisioning API.
package paymentpoint

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// SignatureHeader is the HTTP header PaymentPoint sends the webhook
// signature in.
const SignatureHeader = "paymentpoint-signature"

var (
	ErrNoSecret          = errors.New("no webhook secret is configured")
	ErrNoSignature       = errors.New("the request carries no signature header")
	ErrSignatureMismatch = errors.New("the request signature does not match the payload")
)

// Sign computes the hex-encoded HMAC-SHA256 of the body with the secret.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature authenticates a webhook delivery.
//
// The MAC must be computed over the exact byte sequence received, before any
// parsing: re-serializing the payload would change the bytes and with them
// the digest. The comparison runs in constant time.
func VerifySignature(secret string, body []byte, signature string) error {
	if secret == "" {
		return ErrNoSecret
	}

	if signature == "" {
		return ErrNoSignature
	}

	supplied, err := hex.DecodeString(signature)
	if err != nil {
		return ErrSignatureMismatch
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)

	if !hmac.Equal(supplied, mac.Sum(nil)) {
		return ErrSignatureMismatch
	}

	return nil
}
