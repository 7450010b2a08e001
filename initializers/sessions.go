package initializers

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Kariqs/bakebites/sessionstore"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"
)

const SessionCookieName = "bakebites_session"

var (
	CookieStore *sessions.CookieStore
	Visitors    sessionstore.Store
)

// NewCookieStore returns the store for the visitor id cookie. Secure cookies
// are only sent back over https, so plain-http deployments must pass false.
func NewCookieStore(secret []byte, ttl time.Duration, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// InitSessions sets up the signed cookie that carries the visitor id and the
// store that holds each visitor's cart.
func InitSessions() {
	ttl := getDurationEnv("SESSION_TTL", 24*time.Hour)

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Println("SESSION_SECRET not set, generating an ephemeral key; sessions will not survive a restart.")
		secret = string(securecookie.GenerateRandomKey(32))
	}

	CookieStore = NewCookieStore([]byte(secret), ttl, os.Getenv("GIN_MODE") == "release")

	redisHost := os.Getenv("REDIS_HOST")
	if redisHost == "" {
		Visitors = sessionstore.NewMemoryStore(ttl)
		log.Println("Visitor sessions kept in memory.")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:         redisHost,
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis at %s: %v", redisHost, err)
	}

	Visitors = sessionstore.NewRedisStore(client, ttl)
	log.Println("Visitor sessions kept in Redis.")
}
