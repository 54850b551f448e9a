package jwt

import (
	"errors"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/user"
)

const (
	ClaimUsername = "username"
	ClaimRole     = "role"
	ClaimType     = "type"

	tokenTypeAccess = "access"
)

var ErrInvalidClaims = errors.New("token claims are missing or malformed")

// Claims is the identity carried by an access token.
type Claims struct {
	Username string
	Role     user.Role
}

type Service interface {
	GenerateAccessToken(username string, role user.Role) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	accessTokenExpiration time.Duration
	tokenAuth             *jwtauth.JWTAuth
	// revokedTokens maps a revoked token to its expiry; entries are dropped once expired
	revokedTokens map[string]time.Time
	mu            sync.RWMutex
	now           func() time.Time
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) (Service, error) {
	expiration, err := time.ParseDuration(accessTokenExpirationTime)
	if err != nil {
		return nil, err
	}
	return &JWTService{
		accessTokenExpiration: expiration,
		tokenAuth:             jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:         make(map[string]time.Time),
		now:                   time.Now,
	}, nil
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(username string, role user.Role) (token string, expiresAt int64, err error) {
	expiresAt = j.now().Add(j.accessTokenExpiration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		ClaimUsername: username,
		ClaimRole:     string(role),
		ClaimType:     tokenTypeAccess,
		"exp":         expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) RevokeToken(token string) {
	expiresAt := j.now().Add(j.accessTokenExpiration)
	if parsed, err := j.tokenAuth.Decode(token); err == nil && !parsed.Expiration().IsZero() {
		expiresAt = parsed.Expiration()
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	now := j.now()
	for t, exp := range j.revokedTokens {
		if exp.Before(now) {
			delete(j.revokedTokens, t)
		}
	}
	j.revokedTokens[token] = expiresAt
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

// ClaimsFromMap reads an access token's claims as returned by jwtauth.FromContext.
func ClaimsFromMap(claims map[string]interface{}) (Claims, error) {
	if t, _ := claims[ClaimType].(string); t != tokenTypeAccess {
		return Claims{}, ErrInvalidClaims
	}
	username, _ := claims[ClaimUsername].(string)
	role, _ := claims[ClaimRole].(string)
	if username == "" || role == "" {
		return Claims{}, ErrInvalidClaims
	}
	return Claims{Username: username, Role: user.Role(role)}, nil
}
