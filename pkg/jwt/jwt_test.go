package jwt

import (
	"crypto/rand"
	"crypto/rsa"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func signerForTest(t *testing.T, expiration time.Duration) *Service {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}
	return NewTestService(key, "clubhub-api", expiration)
}

func officerClaims() Claims {
	return Claims{
		UserID:   "user:officer",
		Email:    "officer@clubhub.test",
		Username: "officer",
		Role:     "officer",
	}
}

// ============================================================================
// Claims Tests
// ============================================================================

func TestClaims_Valid_UnsetWindowPasses(t *testing.T) {
	t.Parallel()

	claims := Claims{UserID: "user:member"}
	if err := claims.Valid(); err != nil {
		t.Errorf("claims without exp/nbf must validate, got %v", err)
	}
}

func TestClaims_Valid_Expired(t *testing.T) {
	t.Parallel()

	claims := Claims{
		UserID:    "user:member",
		ExpiresAt: time.Now().Add(-time.Minute).Unix(),
	}
	if err := claims.Valid(); err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestClaims_Valid_NotYetValid(t *testing.T) {
	t.Parallel()

	claims := Claims{
		UserID:    "user:member",
		NotBefore: time.Now().Add(time.Hour).Unix(),
	}
	if err := claims.Valid(); err != ErrTokenNotYetValid {
		t.Errorf("expected ErrTokenNotYetValid, got %v", err)
	}
}

func TestClaims_IsAdmin(t *testing.T) {
	t.Parallel()

	admin := Claims{Role: "admin"}
	if !admin.IsAdmin() {
		t.Error("admin role must report IsAdmin")
	}
	officer := officerClaims()
	if officer.IsAdmin() {
		t.Error("officer role must not report IsAdmin")
	}
}

// ============================================================================
// Sign / Validate Tests
// ============================================================================

func TestService_SignValidate_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := signerForTest(t, 15*time.Minute)

	token, err := svc.Sign(officerClaims())
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("expected compact three-segment token, got %q", token)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.UserID != "user:officer" || claims.Email != "officer@clubhub.test" {
		t.Errorf("identity claims did not survive the round trip: %+v", claims)
	}
	if claims.Issuer != "clubhub-api" {
		t.Errorf("expected issuer stamped by the signer, got %q", claims.Issuer)
	}
	if claims.ExpiresAt == 0 || claims.IssuedAt == 0 {
		t.Errorf("expected timestamps stamped by the signer: %+v", claims)
	}
}

func TestService_Sign_DefaultExpiration(t *testing.T) {
	t.Parallel()

	svc := signerForTest(t, 30*time.Minute)

	token, err := svc.Sign(Claims{UserID: "user:member"})
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}

	lifetime := time.Until(time.Unix(claims.ExpiresAt, 0))
	if lifetime < 29*time.Minute || lifetime > 31*time.Minute {
		t.Errorf("expected roughly 30m lifetime, got %v", lifetime)
	}
}

func TestService_Sign_KeepsExplicitExpiration(t *testing.T) {
	t.Parallel()

	svc := signerForTest(t, time.Hour)

	wantExp := time.Now().Add(5 * time.Minute).Unix()
	token, err := svc.Sign(Claims{UserID: "user:member", ExpiresAt: wantExp})
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.ExpiresAt != wantExp {
		t.Errorf("expected explicit exp %d kept, got %d", wantExp, claims.ExpiresAt)
	}
}

func TestService_Validate_Expired(t *testing.T) {
	t.Parallel()

	svc := signerForTest(t, time.Hour)

	token, err := svc.Sign(Claims{
		UserID:    "user:member",
		ExpiresAt: time.Now().Add(-time.Minute).Unix(),
	})
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if _, err := svc.Validate(token); err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestService_Validate_WrongIssuer(t *testing.T) {
	t.Parallel()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}
	signer := NewTestService(key, "someone-else", time.Hour)
	validator := NewTestService(key, "clubhub-api", time.Hour)

	token, err := signer.Sign(Claims{UserID: "user:member"})
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if _, err := validator.Validate(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for foreign issuer, got %v", err)
	}
}

func TestService_Validate_TamperedClaims(t *testing.T) {
	t.Parallel()

	svc := signerForTest(t, time.Hour)
	token, err := svc.Sign(Claims{UserID: "user:member", Role: "member"})
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	// Swap the claims segment for one granting admin.
	segments := strings.Split(token, ".")
	segments[1] = encodeSegment([]byte(`{"iss":"clubhub-api","user_id":"user:member","role":"admin"}`))
	forged := strings.Join(segments, ".")

	if _, err := svc.Validate(forged); err != ErrInvalidSignature {
		t.Errorf("expected ErrInvalidSignature for edited claims, got %v", err)
	}
}

func TestService_Validate_ForeignKeySignature(t *testing.T) {
	t.Parallel()

	signer := signerForTest(t, time.Hour)
	validator := signerForTest(t, time.Hour)

	token, err := signer.Sign(Claims{UserID: "user:member"})
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if _, err := validator.Validate(token); err != ErrInvalidSignature {
		t.Errorf("expected ErrInvalidSignature across key pairs, got %v", err)
	}
}

func TestService_Validate_Malformed(t *testing.T) {
	t.Parallel()

	svc := signerForTest(t, time.Hour)

	for _, token := range []string{
		"",
		"not-a-token",
		"one.two",
		"one.two.three.four",
		"!!!.???.###",
	} {
		if _, err := svc.Validate(token); err != ErrInvalidToken {
			t.Errorf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestService_Sign_WithoutPrivateKey(t *testing.T) {
	t.Parallel()

	svc := &Service{issuer: "clubhub-api"}
	if _, err := svc.Sign(officerClaims()); err != ErrInvalidKey {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}

func TestService_Validate_WithoutPublicKey(t *testing.T) {
	t.Parallel()

	svc := &Service{issuer: "clubhub-api"}
	if _, err := svc.Validate("a.b.c"); err != ErrInvalidKey {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}

// ============================================================================
// Key File Tests
// ============================================================================

func TestGenerateKeyPair_LoadsBack(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	privatePath := filepath.Join(dir, "clubhub.pem")
	publicPath := filepath.Join(dir, "clubhub.pub.pem")

	if err := GenerateKeyPair(privatePath, publicPath); err != nil {
		t.Fatalf("key generation failed: %v", err)
	}

	signer, err := NewService(Config{
		PrivateKeyPath: privatePath,
		Issuer:         "clubhub-api",
		ExpirationMins: 60,
	})
	if err != nil {
		t.Fatalf("loading private key failed: %v", err)
	}

	// A validate-only service built from just the public key.
	validator, err := NewService(Config{
		PublicKeyPath:  publicPath,
		Issuer:         "clubhub-api",
		ExpirationMins: 60,
	})
	if err != nil {
		t.Fatalf("loading public key failed: %v", err)
	}

	token, err := signer.Sign(officerClaims())
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	claims, err := validator.Validate(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.UserID != "user:officer" {
		t.Errorf("unexpected claims: %+v", claims)
	}

	if _, err := validator.Sign(officerClaims()); err != ErrInvalidKey {
		t.Errorf("validate-only service must not sign, got %v", err)
	}
}

func TestNewService_MissingKeyFile(t *testing.T) {
	t.Parallel()

	_, err := NewService(Config{
		PrivateKeyPath: filepath.Join(t.TempDir(), "absent.pem"),
		Issuer:         "clubhub-api",
	})
	if err == nil {
		t.Fatal("expected error for missing key file")
	}
}

func TestService_GetExpiration(t *testing.T) {
	t.Parallel()

	svc := signerForTest(t, 45*time.Minute)
	if svc.GetExpiration() != 45*time.Minute {
		t.Errorf("expected 45m, got %v", svc.GetExpiration())
	}
}

func TestDecodeSegment_AcceptsPadding(t *testing.T) {
	t.Parallel()

	encoded := encodeSegment([]byte("club"))
	decoded, err := decodeSegment(encoded + "==")
	if err != nil {
		t.Fatalf("padded segment must decode: %v", err)
	}
	if string(decoded) != "club" {
		t.Errorf("unexpected decode result %q", decoded)
	}
}
