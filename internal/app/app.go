package app

import (
	"errors"
	"io"
	"log/slog"

	"ListMender/internal/config"
	"ListMender/internal/inference"
	"ListMender/internal/infrastructure/console"
	"ListMender/internal/infrastructure/mal"
	"ListMender/internal/logging"
	"ListMender/internal/policy"
	"ListMender/internal/usecase"
)

// Application wires configuration to adapters and the review session.
type Application struct {
	cfg     config.Config
	session *usecase.Session
}

// Streams carries the I/O endpoints the console adapters attach to, so tests
// can drive a full application without a terminal.
type Streams struct {
	In  io.Reader
	Out io.Writer
}

// New builds a runnable application instance. It refuses to start without an
// access token; every collaborator call needs one.
func New(cfg config.Config, baseLogger *slog.Logger, streams Streams) (*Application, error) {
	if cfg.MAL.AccessToken == "" {
		return nil, errors.New("no MAL access token configured (set MAL_ACCESS_TOKEN or provide a token file)")
	}
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	}

	opts := mal.Options{
		APIBaseURL:  cfg.MAL.APIBaseURL,
		SiteBaseURL: cfg.MAL.SiteBaseURL,
		AccessToken: cfg.MAL.AccessToken,
	}

	session := usecase.NewSession(usecase.SessionDeps{
		Lists:     mal.NewListClient(opts),
		Histories: mal.NewHistoryScraper(opts),
		Updates:   mal.NewUpdateClient(opts),
		Decisions: console.NewDecisionSource(streams.In, streams.Out),
		Presenter: console.NewPresenter(streams.Out),
		Engine:    inference.New(baseLogger.With("component", "inference")),
		Policy:    policy.New(cfg.Review.AutoSkip),
		Logger:    baseLogger.With("component", "session"),
		Owner:     cfg.MAL.Owner,
		Limit:     cfg.Review.Limit,
		Wait:      cfg.Review.WaitDuration(),
	})

	return &Application{cfg: cfg, session: session}, nil
}

// Session exposes the wired review session.
func (a *Application) Session() *usecase.Session {
	return a.session
}
