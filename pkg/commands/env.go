package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"tableflip.dev/recall/pkg/app"
	"tableflip.dev/recall/pkg/logging"
	"tableflip.dev/recall/pkg/store"
)

// env is what a command needs to reach the entry store.
type env struct {
	Config      store.Config
	Persistence store.Persistence
	Service     *app.Service
	Log         zerolog.Logger
}

// open loads the config, then the configured backend, and rehydrates the
// entry store from it.
func open(cmd *cobra.Command) (*env, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}

	level := logging.ParseLevel(cfg.LogLevel())
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := logging.New(cmd.ErrOrStderr(), level)

	p, err := store.Load(cfg)
	if err != nil {
		// keep working in memory; nothing is written this run
		logger.Warn().Err(err).Msg("storage unavailable, changes will not be saved")
		p = store.Nop{}
	}
	logger.Debug().Str("storage", p.Describe()).Str("namespace", cfg.Namespace()).Msg("opened storage")

	svc := app.Open(p,
		app.WithNamespace(cfg.Namespace()),
		app.WithLogger(logger),
	)
	return &env{
		Config:      cfg,
		Persistence: p,
		Service:     svc,
		Log:         logger,
	}, nil
}

func (e *env) Close() {
	if err := e.Persistence.Close(); err != nil {
		e.Log.Warn().Err(err).Msg("closing storage")
	}
}
