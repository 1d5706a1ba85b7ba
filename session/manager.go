package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	groomkit "github.com/pawdesk/groomkit"
)

var (
	// ErrKeyRequired is an exported constant or variable used by the grooming engine.
	ErrKeyRequired = errors.New("session: signing key required")
	// ErrTokenInvalid is an exported constant or variable used by the grooming engine.
	ErrTokenInvalid = errors.New("session: token invalid")
	// ErrAuditContextRequired is an exported constant or variable used by the grooming engine.
	ErrAuditContextRequired = errors.New("session: audit context required")
)

// StaffClaims defines a public type used by groomkit APIs.
//
// StaffClaims instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type StaffClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Manager verifies staff tokens and applies their identity to an audit
// context. HS256 only; the subject claim carries the staff id.
type Manager struct {
	key    []byte
	leeway time.Duration
}

// NewManager describes the newmanager operation and its observable behavior.
//
// NewManager may return an error when input validation fails.
func NewManager(key []byte) (*Manager, error) {
	if len(key) == 0 {
		return nil, ErrKeyRequired
	}
	return &Manager{
		key:    key,
		leeway: 30 * time.Second,
	}, nil
}

// Issue signs a staff token valid for ttl. Intended for tests and for
// deployments without an external identity provider.
func (m *Manager) Issue(staffID, role string, ttl time.Duration) (string, error) {
	if m == nil {
		return "", ErrKeyRequired
	}

	now := time.Now().UTC()
	claims := StaffClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   staffID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.key)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Login verifies token and, on success, writes its role and staff id into
// auditCtx so that every subsequently recorded event carries them.
func (m *Manager) Login(auditCtx *groomkit.AuditContext, token string) (StaffClaims, error) {
	if m == nil {
		return StaffClaims{}, ErrKeyRequired
	}
	if auditCtx == nil {
		return StaffClaims{}, ErrAuditContextRequired
	}

	var claims StaffClaims
	parsed, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, ErrTokenInvalid
			}
			return m.key, nil
		},
		jwt.WithLeeway(m.leeway),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return StaffClaims{}, ErrTokenInvalid
	}
	if claims.Subject == "" {
		return StaffClaims{}, ErrTokenInvalid
	}

	auditCtx.Set(claims.Role, claims.Subject)
	return claims, nil
}

// Logout clears the staff identity from auditCtx. Events recorded afterwards
// carry empty identity fields; already-recorded events keep theirs.
func (m *Manager) Logout(auditCtx *groomkit.AuditContext) {
	auditCtx.Reset()
}
