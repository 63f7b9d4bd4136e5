package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("emlak", "user-123", time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != "emlak" {
		t.Errorf("expected issuer emlak, got %s", claims.Issuer)
	}
	if claims.Subject != "user-123" {
		t.Errorf("expected subject 'user-123', got %s", claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "u", time.Hour, "k"},
		{"empty user", "i", "", time.Hour, "k"},
		{"zero duration", "i", "u", 0, "k"},
		{"empty key", "i", "u", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, tt.duration, tt.key)
			if !errors.Is(err, ErrInvalidJWTParams) {
				t.Errorf("expected ErrInvalidJWTParams, got %v", err)
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken("emlak", "user-123", time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, "secret-key", "emlak")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.UserID != "user-123" {
		t.Errorf("expected user-123, got %s", parsed.UserID)
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	issued, _ := GenerateJWTToken("emlak", "user-123", time.Hour, "secret-key")

	if _, err := ValidateAndParseJWTToken(issued.SignedString, "other-key", "emlak"); err == nil {
		t.Fatal("expected error for wrong sign key")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, _ := GenerateJWTToken("emlak", "user-123", time.Hour, "secret-key")

	if _, err := ValidateAndParseJWTToken(issued.SignedString, "secret-key", "someone-else"); err == nil {
		t.Fatal("expected error for wrong issuer")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issued, _ := GenerateJWTToken("emlak", "user-123", -time.Minute, "secret-key")

	_, err := ValidateAndParseJWTToken(issued.SignedString, "secret-key", "emlak")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected jwt.ErrTokenExpired, got %v", err)
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", false},
		{"bearer abc", "abc", false},
		{"Basic abc", "", true},
		{"Bearer", "", true},
		{"Bearer    ", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseBearerToken(tt.header)
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: unexpected error state: %v", tt.header, err)
		}
		if got != tt.want {
			t.Errorf("%q: expected %q, got %q", tt.header, tt.want, got)
		}
	}
}
