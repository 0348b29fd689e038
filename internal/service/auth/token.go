package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token subjects tag the purpose of a token.
const (
	SubjectAccess  = "access-token"
	SubjectRefresh = "refresh-token"
)

// Sentinel errors for token decoding and validation.
var (
	// ErrMalformedToken indicates the token string could not be parsed or its
	// signature does not verify against the signing key.
	ErrMalformedToken = errors.New("malformed token")

	// ErrUnsupportedAlgorithm indicates the token was signed with an
	// algorithm other than HS256.
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")

	// ErrTokenExpired indicates a well-signed token whose expiry has passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrIllegalToken indicates input that is not even token-shaped, such as
	// an empty string.
	ErrIllegalToken = errors.New("illegal token")
)

// Claims is the decoded payload of a token. Refresh tokens carry no identity
// claims; they prove recency only and are never exchanged for a new access
// token.
type Claims struct {
	Username    string `json:"username,omitempty"`
	Authorities string `json:"auth,omitempty"`
	jwt.RegisteredClaims
}

// TokenPair is the result of a successful sign-in.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Codec signs and verifies bearer tokens with HS256. The signing key is built
// from the base64-decoded secret exactly once on first use and is read-only
// afterwards.
type Codec struct {
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration

	keyOnce sync.Once
	key     []byte
	keyErr  error
}

// NewCodec creates a token codec. secret is the base64-encoded signing secret;
// the TTLs are added to the issuance time with no clock-skew tolerance.
func NewCodec(secret string, accessTTL, refreshTTL time.Duration) *Codec {
	return &Codec{
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// AccessTTL returns the configured access-token lifetime.
func (c *Codec) AccessTTL() time.Duration { return c.accessTTL }

func (c *Codec) signingKey() ([]byte, error) {
	c.keyOnce.Do(func() {
		c.key, c.keyErr = base64.StdEncoding.DecodeString(c.secret)
	})
	if c.keyErr != nil {
		return nil, fmt.Errorf("decode signing secret: %w", c.keyErr)
	}
	return c.key, nil
}

func (c *Codec) keyFunc(t *jwt.Token) (any, error) {
	if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, ErrUnsupportedAlgorithm
	}
	return c.signingKey()
}

// Issue creates an access token for the given username and comma-joined
// authority string. The payload records issuedAt = now and
// expiresAt = now + accessTTL exactly.
func (c *Codec) Issue(username, authorities string, now time.Time) (string, error) {
	claims := Claims{
		Username:    username,
		Authorities: authorities,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   SubjectAccess,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.accessTTL)),
		},
	}
	return c.sign(claims)
}

// IssueRefresh creates a refresh token. It carries timestamps only, no
// identity claims.
func (c *Codec) IssueRefresh(now time.Time) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   SubjectRefresh,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.refreshTTL)),
		},
	}
	return c.sign(claims)
}

func (c *Codec) sign(claims Claims) (string, error) {
	key, err := c.signingKey()
	if err != nil {
		return "", err
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Decode verifies the token signature and returns its claims. Expiry is NOT
// checked here: an expired but well-signed token decodes successfully so that
// callers can distinguish tampered from expired. The algorithm check lives in
// keyFunc so that a non-HS256 token surfaces as ErrUnsupportedAlgorithm
// rather than a generic parse failure.
func (c *Codec) Decode(token string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	claims := &Claims{}
	if _, err := parser.ParseWithClaims(token, claims, c.keyFunc); err != nil {
		if errors.Is(err, ErrUnsupportedAlgorithm) {
			return nil, ErrUnsupportedAlgorithm
		}
		return nil, fmt.Errorf("%w: %s", ErrMalformedToken, err)
	}
	return claims, nil
}

// Validate decodes the token and checks its expiry against now. It returns
// ErrIllegalToken for input that is not token-shaped, the decode error for
// tampered or foreign tokens, and ErrTokenExpired for well-signed tokens whose
// expiry has passed.
func (c *Codec) Validate(token string, now time.Time) error {
	if strings.TrimSpace(token) == "" {
		return ErrIllegalToken
	}
	claims, err := c.Decode(token)
	if err != nil {
		return err
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(now) {
		return ErrTokenExpired
	}
	return nil
}
