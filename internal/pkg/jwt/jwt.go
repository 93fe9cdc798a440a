package jwt

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const TokenTypeAccess = "access"

type Service interface {
	GenerateAccessToken(u user.CurrentUser) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(token string, expiresAt int64)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	revokedTokens             map[string]int64
	mu                        sync.RWMutex
	now                       func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:             make(map[string]int64),
		now:                       time.Now,
	}
}

func (j *JWTService) GenerateAccessToken(u user.CurrentUser) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, fmt.Errorf("invalid access token expiration %q: %w", j.accessTokenExpirationTime, err)
	}
	expiresAt = j.now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id": strconv.FormatInt(u.ID, 10),
		"name":    u.Name,
		"email":   u.Email,
		"role":    string(u.Role),
		"project": u.Project,
		"type":    TokenTypeAccess,
		"exp":     expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// RevokeToken blocks token until it expires. Expired entries are pruned on each call.
func (j *JWTService) RevokeToken(token string, expiresAt int64) {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.now().Unix()
	for t, exp := range j.revokedTokens {
		if exp <= now {
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

// CurrentUserFromClaims decodes the access token claims into a user.CurrentUser.
func CurrentUserFromClaims(claims map[string]interface{}) (user.CurrentUser, error) {
	if t, _ := claims["type"].(string); t != TokenTypeAccess {
		return user.CurrentUser{}, jwt.ErrInvalidJWT()
	}

	rawID, _ := claims["user_id"].(string)
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		return user.CurrentUser{}, jwt.ErrInvalidJWT()
	}

	role, _ := claims["role"].(string)
	if !user.Role(role).IsValid() {
		return user.CurrentUser{}, jwt.ErrInvalidJWT()
	}

	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	project, _ := claims["project"].(string)

	return user.CurrentUser{
		ID:      id,
		Name:    name,
		Email:   email,
		Role:    user.Role(role),
		Project: project,
	}, nil
}
