package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"wardbook/internal/config"
	"wardbook/internal/database"
)

// Env is what the root command resolves before any subcommand runs.
type Env struct {
	Config *config.Config
	Logger *slog.Logger
}

type envKey struct{}

func WithEnv(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, envKey{}, env)
}

func envFrom(ctx context.Context) (*Env, error) {
	if env, ok := ctx.Value(envKey{}).(*Env); ok && env != nil {
		return env, nil
	}
	return nil, errors.New("configuration not loaded")
}

// CommandContext holds the dependencies of a command that talks to the database.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
	Pool   *pgxpool.Pool
	Store  *database.Store
}

// NewCommandContext connects to the configured database. The returned cleanup
// must be called once the command is done.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, func(), error) {
	env, err := envFrom(cmd.Context())
	if err != nil {
		return nil, nil, err
	}

	pool, err := database.Connect(cmd.Context(), env.Config, env.Logger)
	if err != nil {
		return nil, nil, err
	}
	store := database.NewPoolStore(pool, env.Logger)

	cleanup := func() {
		_ = store.Close()
		pool.Close()
	}

	return &CommandContext{
		Cfg:    env.Config,
		Logger: env.Logger,
		Pool:   pool,
		Store:  store,
	}, cleanup, nil
}
