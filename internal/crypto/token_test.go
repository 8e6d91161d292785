package crypto

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestSignSessionToken(t *testing.T) {
	token, err := SignSessionToken("sess-123", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("SignSessionToken() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("SignSessionToken() returned empty string")
	}
}

func TestParseSessionTokenValid(t *testing.T) {
	secret := "test-secret"
	sessionID := "b8f2c1de-0b6f-4f36-9f58-8d2a9a1a4c11"

	token, err := SignSessionToken(sessionID, secret, time.Hour)
	if err != nil {
		t.Fatalf("SignSessionToken() unexpected error: %v", err)
	}

	claims, err := ParseSessionToken(token, secret)
	if err != nil {
		t.Fatalf("ParseSessionToken() unexpected error: %v", err)
	}
	if claims.SessionID != sessionID {
		t.Errorf("ParseSessionToken() SessionID = %q, want %q", claims.SessionID, sessionID)
	}
}

func TestParseSessionTokenInvalid(t *testing.T) {
	_, err := ParseSessionToken("not-a-valid-token", "test-secret")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ParseSessionToken() error = %v, want ErrInvalidToken", err)
	}
}

func TestParseSessionTokenWrongSecret(t *testing.T) {
	token, err := SignSessionToken("sess-123", "correct-secret", time.Hour)
	if err != nil {
		t.Fatalf("SignSessionToken() unexpected error: %v", err)
	}

	_, err = ParseSessionToken(token, "wrong-secret")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ParseSessionToken() error = %v, want ErrInvalidToken", err)
	}
}

func TestParseSessionTokenExpired(t *testing.T) {
	token, err := SignSessionToken("sess-123", "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("SignSessionToken() unexpected error: %v", err)
	}

	_, err = ParseSessionToken(token, "test-secret")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ParseSessionToken() error = %v, want ErrInvalidToken", err)
	}
}

func TestParseSessionTokenWrongIssuer(t *testing.T) {
	secret := "test-secret"

	// Create a token with a wrong issuer
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "wrong-issuer",
			Audience:  jwt.ClaimStrings{"testnotes-web"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		SessionID: "sess-123",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}

	_, err = ParseSessionToken(tokenString, secret)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ParseSessionToken() error = %v, want ErrInvalidToken", err)
	}
}

func TestParseSessionTokenWrongAudience(t *testing.T) {
	secret := "test-secret"

	// Create a token with a wrong audience
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "testnotes",
			Audience:  jwt.ClaimStrings{"wrong-audience"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		SessionID: "sess-123",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}

	_, err = ParseSessionToken(tokenString, secret)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ParseSessionToken() error = %v, want ErrInvalidToken", err)
	}
}

func TestParseSessionTokenMissingSessionID(t *testing.T) {
	secret := "test-secret"

	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "testnotes",
			Audience:  jwt.ClaimStrings{"testnotes-web"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}

	_, err = ParseSessionToken(tokenString, secret)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ParseSessionToken() error = %v, want ErrInvalidToken", err)
	}
}
