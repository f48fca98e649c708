package jwt

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors returned by Validate. Callers branch on these with
// errors.Is to pick the right response detail.
var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenNotYetValid = errors.New("token not yet valid")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrInvalidKey       = errors.New("invalid key")
)

// Claims carries the registered JWT claims plus the ClubHub identity fields
// the API reads downstream.
type Claims struct {
	Issuer    string `json:"iss,omitempty"`
	Subject   string `json:"sub,omitempty"`
	Audience  string `json:"aud,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`
	NotBefore int64  `json:"nbf,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`
	JWTID     string `json:"jti,omitempty"`

	Email    string `json:"email,omitempty"`
	UserID   string `json:"user_id,omitempty"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
}

// IsAdmin reports whether the token carries the admin role.
func (c *Claims) IsAdmin() bool {
	return c.Role == "admin"
}

// Valid checks the claims against the current clock. Zero exp/nbf values are
// treated as unset and skip their check.
func (c *Claims) Valid() error {
	now := time.Now().Unix()
	if c.ExpiresAt != 0 && now > c.ExpiresAt {
		return ErrTokenExpired
	}
	if c.NotBefore != 0 && now < c.NotBefore {
		return ErrTokenNotYetValid
	}
	return nil
}

// Config holds the key material locations and token parameters for a Service.
// PrivateKeyPath may be empty for a validate-only service.
type Config struct {
	PrivateKeyPath string
	PublicKeyPath  string
	Issuer         string
	ExpirationMins int
}

// Service signs and validates RS256 tokens for one issuer.
type Service struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	issuer     string
	expiration time.Duration
}

// NewService loads the configured keys and returns a ready Service. With only
// a public key configured the service can validate but Sign returns
// ErrInvalidKey.
func NewService(cfg Config) (*Service, error) {
	s := &Service{
		issuer:     cfg.Issuer,
		expiration: time.Duration(cfg.ExpirationMins) * time.Minute,
	}

	if cfg.PrivateKeyPath != "" {
		key, err := loadPrivateKey(cfg.PrivateKeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load private key: %w", err)
		}
		s.privateKey = key
		s.publicKey = &key.PublicKey
	}

	if s.publicKey == nil && cfg.PublicKeyPath != "" {
		key, err := loadPublicKey(cfg.PublicKeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load public key: %w", err)
		}
		s.publicKey = key
	}

	return s, nil
}

// NewTestService builds a Service around an in-memory key. Test helper only.
func NewTestService(privateKey *rsa.PrivateKey, issuer string, expiration time.Duration) *Service {
	return &Service{
		privateKey: privateKey,
		publicKey:  &privateKey.PublicKey,
		issuer:     issuer,
		expiration: expiration,
	}
}

// Sign stamps the issuer and timestamps onto the claims and returns the
// signed compact token. An ExpiresAt already set on the claims is kept;
// otherwise the service expiration applies.
func (s *Service) Sign(claims Claims) (string, error) {
	if s.privateKey == nil {
		return "", ErrInvalidKey
	}

	now := time.Now()
	claims.Issuer = s.issuer
	claims.IssuedAt = now.Unix()
	claims.NotBefore = now.Unix()
	if claims.ExpiresAt == 0 {
		claims.ExpiresAt = now.Add(s.expiration).Unix()
	}

	headerJSON, err := json.Marshal(map[string]string{"alg": "RS256", "typ": "JWT"})
	if err != nil {
		return "", fmt.Errorf("failed to marshal header: %w", err)
	}
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal claims: %w", err)
	}

	signingInput := encodeSegment(headerJSON) + "." + encodeSegment(claimsJSON)
	digest := sha256.Sum256([]byte(signingInput))
	signature, err := rsa.SignPKCS1v15(rand.Reader, s.privateKey, crypto.SHA256, digest[:])
	if err != nil {
		return "", fmt.Errorf("failed to sign: %w", err)
	}

	return signingInput + "." + encodeSegment(signature), nil
}

// Validate verifies the token's signature, time window, and issuer, and
// returns the embedded claims.
func (s *Service) Validate(token string) (*Claims, error) {
	if s.publicKey == nil {
		return nil, ErrInvalidKey
	}

	segments := strings.Split(token, ".")
	if len(segments) != 3 {
		return nil, ErrInvalidToken
	}

	// The signature covers header.claims exactly as transmitted.
	signingInput := segments[0] + "." + segments[1]
	signature, err := decodeSegment(segments[2])
	if err != nil {
		return nil, ErrInvalidToken
	}
	digest := sha256.Sum256([]byte(signingInput))
	if err := rsa.VerifyPKCS1v15(s.publicKey, crypto.SHA256, digest[:], signature); err != nil {
		return nil, ErrInvalidSignature
	}

	claimsJSON, err := decodeSegment(segments[1])
	if err != nil {
		return nil, ErrInvalidToken
	}
	var claims Claims
	if err := json.Unmarshal(claimsJSON, &claims); err != nil {
		return nil, ErrInvalidToken
	}

	if err := claims.Valid(); err != nil {
		return nil, err
	}
	if claims.Issuer != s.issuer {
		return nil, ErrInvalidToken
	}

	return &claims, nil
}

// GetExpiration returns the lifetime applied to tokens signed without an
// explicit ExpiresAt.
func (s *Service) GetExpiration() time.Duration {
	return s.expiration
}

func encodeSegment(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

func decodeSegment(segment string) ([]byte, error) {
	// Tolerate padded input from other encoders.
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(segment, "="))
}
