package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"ListMender/internal/domain"
	"ListMender/internal/inference"
	"ListMender/internal/policy"
	"ListMender/internal/ports"
)

// SessionDeps wires the collaborators and the core components into one
// review session.
type SessionDeps struct {
	Lists     ports.ListProvider
	Histories ports.HistoryProvider
	Updates   ports.UpdateSubmitter
	Decisions ports.DecisionSource
	Presenter ports.ReviewPresenter
	Engine    *inference.Engine
	Policy    policy.Policy
	Logger    *slog.Logger

	Owner string        // list owner, usually "@me" (the token owner)
	Limit int           // list fetch size; the provider supports up to 1000
	Wait  time.Duration // pause between entries that hit the history endpoint
}

// Session owns the state of one reconciliation run: the cached per-list-type
// entry snapshots, the wired collaborators, and the audit identity. It is
// created at session start and discarded at session end; nothing outlives it.
type Session struct {
	id        string
	lists     ports.ListProvider
	histories ports.HistoryProvider
	updates   ports.UpdateSubmitter
	decisions ports.DecisionSource
	presenter ports.ReviewPresenter
	engine    *inference.Engine
	policy    policy.Policy
	logger    *slog.Logger

	owner string
	limit int
	wait  time.Duration

	cache map[domain.ListType][]domain.ListEntry
}

const (
	defaultOwner = "@me"
	defaultLimit = 1000
)

// NewSession builds a session and stamps it with a correlation id that every
// log line of the run carries.
func NewSession(deps SessionDeps) *Session {
	owner := deps.Owner
	if owner == "" {
		owner = defaultOwner
	}
	limit := deps.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	id := uuid.NewString()
	return &Session{
		id:        id,
		lists:     deps.Lists,
		histories: deps.Histories,
		updates:   deps.Updates,
		decisions: deps.Decisions,
		presenter: deps.Presenter,
		engine:    deps.Engine,
		policy:    deps.Policy,
		logger:    logger.With("session_id", id),
		owner:     owner,
		limit:     limit,
		wait:      deps.Wait,
		cache:     map[domain.ListType][]domain.ListEntry{},
	}
}

// ID returns the session correlation id.
func (s *Session) ID() string {
	return s.id
}

// List returns the snapshot for the list type, fetching it on first use or
// when refresh is set. The snapshot is read-only for the rest of the run.
func (s *Session) List(ctx context.Context, listType domain.ListType, refresh bool) ([]domain.ListEntry, error) {
	if !refresh {
		if cached, ok := s.cache[listType]; ok {
			return cached, nil
		}
	}

	entries, err := s.lists.Fetch(ctx, listType, s.owner, s.limit)
	if err != nil {
		return nil, fmt.Errorf("fetch %s list for %s: %w", listType, s.owner, err)
	}

	s.logger.Debug("list snapshot cached", "list_type", listType, "owner", s.owner, "entries", len(entries))
	s.cache[listType] = entries
	return entries, nil
}
