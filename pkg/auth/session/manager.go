package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/techstore/storefront-backend/pkg/redis"
)

var ErrSessionNotFound = errors.New("session not found")

// Line is one cart entry stored inside the session record.
type Line struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Data is the server-side session record. The cart lives here so it
// survives across requests without a cart table.
type Data struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	Cart     []Line `json:"cart"`
}

type sessionStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
}

type Manager struct {
	store sessionStore
	ttl   time.Duration
}

func NewManager(store sessionStore, ttl time.Duration) (*Manager, error) {
	if store == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	return &Manager{store: store, ttl: ttl}, nil
}

func NewSessionID() string {
	return uuid.NewString()
}

// Create persists a fresh session record and returns its ID.
func (m *Manager) Create(ctx context.Context, data Data) (string, error) {
	sid := NewSessionID()
	if err := m.save(ctx, sid, data); err != nil {
		return "", err
	}
	return sid, nil
}

func (m *Manager) Get(ctx context.Context, sid string) (*Data, error) {
	raw, err := m.store.Get(ctx, redis.SessionKey(sid))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("loading session: %w", err)
	}

	var data Data
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("decoding session record: %w", err)
	}

	return &data, nil
}

// SaveCart replaces the cart on an existing session. The identity
// fields are preserved from the stored record.
func (m *Manager) SaveCart(ctx context.Context, sid string, cart []Line) error {
	data, err := m.Get(ctx, sid)
	if err != nil {
		return err
	}

	data.Cart = cart
	return m.save(ctx, sid, *data)
}

func (m *Manager) Destroy(ctx context.Context, sid string) error {
	if err := m.store.Del(ctx, redis.SessionKey(sid)); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// HasSession reports whether the record still exists server-side. A
// valid token whose record was destroyed does not count.
func (m *Manager) HasSession(ctx context.Context, sid string) (bool, error) {
	return m.store.Exists(ctx, redis.SessionKey(sid))
}

func (m *Manager) save(ctx context.Context, sid string, data Data) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding session record: %w", err)
	}
	if err := m.store.Set(ctx, redis.SessionKey(sid), payload, m.ttl); err != nil {
		return fmt.Errorf("storing session: %w", err)
	}
	return nil
}
