// Package imagekit mints short-lived signed credentials that allow a browser
// to upload files directly to ImageKit. The credential is never stored; the
// upload service verifies the signature with the same shared private key.
package imagekit

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL matches the upload window ImageKit grants a credential.
const DefaultTTL = 10 * time.Minute

// Credential authorizes a single direct upload until Expire (unix seconds).
type Credential struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
	Signature string `json:"signature"`
}

type Authorizer struct {
	privateKey []byte
	ttl        time.Duration
	now        func() time.Time
}

func NewAuthorizer(privateKey string, ttl time.Duration) (*Authorizer, error) {
	if privateKey == "" {
		return nil, errors.New("imagekit: private key is not set")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Authorizer{
		privateKey: []byte(privateKey),
		ttl:        ttl,
		now:        time.Now,
	}, nil
}

// Credential returns a fresh token with an expiry ttl from now and an
// HMAC-SHA1 signature over token+expire. SHA-1 is what ImageKit's verifier
// expects; it is a compatibility constraint, not a choice.
func (a *Authorizer) Credential() Credential {
	token := uuid.NewString()
	expire := a.now().Add(a.ttl).Unix()

	mac := hmac.New(sha1.New, a.privateKey)
	mac.Write([]byte(token + strconv.FormatInt(expire, 10)))

	return Credential{
		Token:     token,
		Expire:    expire,
		Signature: hex.EncodeToString(mac.Sum(nil)),
	}
}
