package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndParse(t *testing.T) {
	m := NewManager("secret", 0)

	signed, err := m.Generate(42, "a@x.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := m.Parse(signed)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.ID != 42 || claims.Email != "a@x.com" {
		t.Fatalf("claims = %+v", claims)
	}

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != DefaultTTL {
		t.Fatalf("ttl = %v, want %v", ttl, DefaultTTL)
	}
}

func TestParseExpired(t *testing.T) {
	m := NewManager("secret", time.Hour)
	issued := time.Now().Add(-2 * time.Hour)
	m.now = func() time.Time { return issued }

	signed, err := m.Generate(1, "a@x.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	m.now = time.Now
	if _, err := m.Parse(signed); !errors.Is(err, ErrInvalid) {
		t.Fatalf("Parse expired = %v, want ErrInvalid", err)
	}
}

func TestParseWrongSecret(t *testing.T) {
	signed, err := NewManager("one", 0).Generate(1, "a@x.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := NewManager("two", 0).Parse(signed); !errors.Is(err, ErrInvalid) {
		t.Fatalf("Parse = %v, want ErrInvalid", err)
	}
}

func TestParseRejectsOtherAlgorithms(t *testing.T) {
	claims := &Claims{ID: 1, Email: "a@x.com", RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := NewManager("secret", 0).Parse(unsigned); !errors.Is(err, ErrInvalid) {
		t.Fatalf("Parse none = %v, want ErrInvalid", err)
	}
}

func TestParseGarbage(t *testing.T) {
	if _, err := NewManager("secret", 0).Parse("not.a.token"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("Parse = %v, want ErrInvalid", err)
	}
}
