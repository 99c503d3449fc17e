package auth

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/hashicorp/golang-lru/simplelru"
)

var (
	ErrTokenExpired = fmt.Errorf("session token is expired")
	ErrNoExpiry     = fmt.Errorf("session token has no expiry")

	DefaultCacheSize = 1000
)

type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

func (c Claims) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// PeekClaims decodes the token without verifying its signature. The backend
// verifies tokens on every call; the console only needs the expiry.
func PeekClaims(token string) (*Claims, error) {
	registered := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &registered); err != nil {
		return nil, fmt.Errorf("unable to parse session token: %w", err)
	}
	if registered.ExpiresAt == nil {
		return nil, ErrNoExpiry
	}
	return &Claims{
		Subject:   registered.Subject,
		ExpiresAt: registered.ExpiresAt.Time,
	}, nil
}

type cacheEntry struct {
	token  string
	claims Claims
}

// ClaimsCache keeps decoded claims until the token expires.
type ClaimsCache struct {
	lru *simplelru.LRU
	mu  *sync.Mutex
	now func() time.Time
}

func NewClaimsCache(size int, now func() time.Time) (*ClaimsCache, error) {
	var onEvict simplelru.EvictCallback
	lru, err := simplelru.NewLRU(size, onEvict)
	if err != nil {
		return nil, err
	}
	if now == nil {
		now = time.Now
	}

	return &ClaimsCache{
		lru: lru,
		mu:  &sync.Mutex{},
		now: now,
	}, nil
}

// Claims returns the unexpired claims of token.
func (c *ClaimsCache) Claims(token string) (*Claims, error) {
	if claims := c.getCachedEntry(token); claims != nil {
		return claims, nil
	}

	claims, err := PeekClaims(token)
	if err != nil {
		return nil, err
	}
	if claims.IsExpired(c.now()) {
		return nil, ErrTokenExpired
	}
	c.setCacheEntry(cacheEntry{token: token, claims: *claims})
	return claims, nil
}

func (c *ClaimsCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

func (c *ClaimsCache) Forget(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Remove(token)
}

func (c *ClaimsCache) getCachedEntry(token string) *Claims {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.lru.Get(token); ok {
		entry := e.(cacheEntry)
		if entry.claims.IsExpired(c.now()) {
			c.lru.Remove(token)
			return nil
		}
		return &entry.claims
	}

	return nil
}

func (c *ClaimsCache) setCacheEntry(entry cacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.lru.Add(entry.token, entry)
}
