package session

import (
	"context"
	"errors"
	"time"

	"github.com/Myusername84/food-server/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName matches the cookie the storefront client already carries.
const CookieName = "MyCoolWebAppCookieName"

// DefaultTTL is the sliding session window: each authenticated access
// pushes expiry out by this much.
const DefaultTTL = 10 * time.Hour

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNoSession       = errors.New("session not found")
)

// Record is one server-side session: a copy of the authenticated user,
// never persisted to the application database.
type Record struct {
	ID        string      `json:"id"`
	User      models.User `json:"user"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// Store holds session records. Save is also used to refresh expiry.
type Store interface {
	Save(ctx context.Context, rec Record) error
	Get(ctx context.Context, id string) (*Record, error)
	Delete(ctx context.Context, id string) error
}

// Manager creates and resolves sessions. The cookie value is an HS256-signed
// token wrapping an opaque session id; the user record itself stays server
// side.
type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
}

func NewManager(store Store, secret string, ttl time.Duration) *Manager {
	return &Manager{store: store, secret: []byte(secret), ttl: ttl}
}

// Create opens a session for the user and returns the signed cookie value.
func (m *Manager) Create(ctx context.Context, user models.User) (string, error) {
	rec := Record{
		ID:        uuid.NewString(),
		User:      user,
		ExpiresAt: time.Now().Add(m.ttl),
	}
	if err := m.store.Save(ctx, rec); err != nil {
		return "", err
	}
	return m.sign(rec.ID)
}

// Current resolves the cookie value to the session user and slides the TTL
// forward. Any failure (bad signature, unknown or expired session) is
// ErrUnauthenticated.
func (m *Manager) Current(ctx context.Context, token string) (*models.User, error) {
	id, err := m.parse(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	rec, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	if time.Now().After(rec.ExpiresAt) {
		_ = m.store.Delete(ctx, id)
		return nil, ErrUnauthenticated
	}

	rec.ExpiresAt = time.Now().Add(m.ttl)
	if err := m.store.Save(ctx, *rec); err != nil {
		return nil, err
	}
	return &rec.User, nil
}

// SignOut drops the server-side record. The cookie itself is left to rot;
// later requests with it are simply anonymous.
func (m *Manager) SignOut(ctx context.Context, token string) error {
	id, err := m.parse(token)
	if err != nil {
		return nil
	}
	if err := m.store.Delete(ctx, id); err != nil && !errors.Is(err, ErrNoSession) {
		return err
	}
	return nil
}

func (m *Manager) sign(id string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sid": id})
	return token.SignedString(m.secret)
}

func (m *Manager) parse(value string) (string, error) {
	token, err := jwt.Parse(value, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrUnauthenticated
	}
	id, ok := claims["sid"].(string)
	if !ok || id == "" {
		return "", ErrUnauthenticated
	}
	return id, nil
}
