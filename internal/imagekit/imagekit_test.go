package imagekit

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"testing"
	"time"
)

func TestCredentialSignatureMatchesHMAC(t *testing.T) {
	const key = "private_test_key"
	a, err := NewAuthorizer(key, DefaultTTL)
	if err != nil {
		t.Fatalf("new authorizer: %v", err)
	}

	cred := a.Credential()
	if cred.Token == "" {
		t.Fatalf("expected non-empty token")
	}

	mac := hmac.New(sha1.New, []byte(key))
	mac.Write([]byte(cred.Token + strconv.FormatInt(cred.Expire, 10)))
	want := hex.EncodeToString(mac.Sum(nil))

	if cred.Signature != want {
		t.Fatalf("signature mismatch: got %s, want %s", cred.Signature, want)
	}
}

func TestCredentialExpireWindow(t *testing.T) {
	a, err := NewAuthorizer("k", DefaultTTL)
	if err != nil {
		t.Fatalf("new authorizer: %v", err)
	}

	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return fixed }

	cred := a.Credential()
	if want := fixed.Add(10 * time.Minute).Unix(); cred.Expire != want {
		t.Fatalf("expire = %d, want %d", cred.Expire, want)
	}
}

func TestCredentialsAreUnique(t *testing.T) {
	a, err := NewAuthorizer("k", DefaultTTL)
	if err != nil {
		t.Fatalf("new authorizer: %v", err)
	}

	first := a.Credential()
	second := a.Credential()
	if first.Token == second.Token {
		t.Fatalf("expected distinct tokens, both %s", first.Token)
	}
	if first.Signature == second.Signature {
		t.Fatalf("expected distinct signatures")
	}
}

func TestNewAuthorizerRequiresKey(t *testing.T) {
	if _, err := NewAuthorizer("", DefaultTTL); err == nil {
		t.Fatalf("expected error for empty private key")
	}
}

func TestNewAuthorizerDefaultsTTL(t *testing.T) {
	a, err := NewAuthorizer("k", 0)
	if err != nil {
		t.Fatalf("new authorizer: %v", err)
	}
	if a.ttl != DefaultTTL {
		t.Fatalf("ttl = %v, want %v", a.ttl, DefaultTTL)
	}
}
