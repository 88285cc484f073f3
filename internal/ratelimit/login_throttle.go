package ratelimit

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/academia-accounts/internal/httperr"
)

// LoginThrottle conta logins falhados por email em redis e bloqueia a
// conta durante a janela quando o limite é atingido. Um throttle nil é
// no-op: a API funciona sem redis configurado.
type LoginThrottle struct {
	client      *redis.Client
	maxFailures int
	window      time.Duration
}

func NewLoginThrottle(redisURL string) (*LoginThrottle, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	return &LoginThrottle{
		client:      redis.NewClient(opt),
		maxFailures: 10,
		window:      15 * time.Minute,
	}, nil
}

func (t *LoginThrottle) key(email string) string {
	return "login_failures:" + email
}

// Check devolve too_many_attempts quando o limite foi atingido. Redis
// indisponível não bloqueia ninguém.
func (t *LoginThrottle) Check(ctx context.Context, email string) error {
	if t == nil {
		return nil
	}

	n, err := t.client.Get(ctx, t.key(email)).Int()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		log.Println("login throttle unavailable:", err)
		return nil
	}

	if n >= t.maxFailures {
		return httperr.ErrBusiness("too_many_attempts")
	}
	return nil
}

func (t *LoginThrottle) RecordFailure(ctx context.Context, email string) {
	if t == nil {
		return
	}

	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, t.key(email))
	pipe.Expire(ctx, t.key(email), t.window)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Println("login throttle error:", err)
	}
}

func (t *LoginThrottle) Reset(ctx context.Context, email string) {
	if t == nil {
		return
	}

	if err := t.client.Del(ctx, t.key(email)).Err(); err != nil {
		log.Println("login throttle error:", err)
	}
}
