// Package state defines the app-context environment the debug CLI threads
// through its subcommands: configuration and a logger carried via context
// rather than globals.
package state

import (
	"context"
	"time"

	"go.uber.org/zap"

	"stoopc/config"
)

type envKey struct{}

// Env keeps everything a stoopc subcommand needs in one place.
type Env struct {
	Cfg *config.Config
	Log *zap.Logger

	start time.Time
}

// ContextWithEnv attaches a fresh Env to ctx.
func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &Env{start: time.Now()})
}

// EnvFromContext retrieves the Env attached by ContextWithEnv. It panics if
// called outside that context — this should never happen once Before has
// run.
func EnvFromContext(ctx context.Context) *Env {
	if env, ok := ctx.Value(envKey{}).(*Env); ok {
		return env
	}
	panic("stoopc: env not found in context")
}

// Uptime reports how long the Env has existed.
func (e *Env) Uptime() time.Duration {
	return time.Since(e.start)
}
