// Package service scores one match: it builds both teams, replays the hit
// events and assembles the report.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/okian/tagscore/internal/adapters/file"
	"github.com/okian/tagscore/internal/adapters/repository"
	"github.com/okian/tagscore/internal/domain/model"
	"github.com/okian/tagscore/internal/domain/report"
	"github.com/okian/tagscore/internal/domain/roster"
	"github.com/okian/tagscore/internal/domain/scoring"
	"github.com/okian/tagscore/pkg/logger"
	"github.com/okian/tagscore/pkg/metrics"
)

type phase int

const (
	phaseNew phase = iota
	phaseTeams
	phaseReplayed
)

// Session owns every piece of state for one match. Steps run strictly in
// order: BuildTeams, Replay, Report. It is not safe for concurrent use.
type Session struct {
	id    string
	phase phase

	directory *roster.Directory
	teamA     *roster.Team
	teamB     *roster.Team
	ledger    *repository.HitLedger
	values    *scoring.HitValueTable

	// Configuration
	hitValues map[int]int

	metrics *metrics.Manager
	logger  logger.Logger
}

// Option applies a configuration option to the Session.
type Option func(*Session)

// WithLogger sets a custom logger for the session.
func WithLogger(l logger.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithHitValues overrides points per location code.
func WithHitValues(values map[int]int) Option {
	return func(s *Session) {
		s.hitValues = values
	}
}

// WithMetrics sets the metrics manager. Defaults to metrics.Default().
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Session) {
		if m != nil {
			s.metrics = m
		}
	}
}

// New constructs a Session with a fresh directory.
func New(opts ...Option) *Session {
	s := &Session{
		id:        uuid.NewString(),
		directory: roster.NewDirectory(),
		metrics:   metrics.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Nop()
	}
	s.logger = s.logger.Named("session").With(logger.String("session", s.id))
	s.values = scoring.NewHitValueTable(scoring.WithValues(s.hitValues))

	return s
}

// ID returns the session's unique id, used to correlate log lines.
func (s *Session) ID() string { return s.id }

// Directory returns the player directory shared by both teams.
func (s *Session) Directory() *roster.Directory { return s.directory }

// Teams returns team one and team two, nil before BuildTeams.
func (s *Session) Teams() (*roster.Team, *roster.Team) { return s.teamA, s.teamB }

// Ledger returns the hit ledger, nil before Replay.
func (s *Session) Ledger() *repository.HitLedger { return s.ledger }

// BuildTeams registers both rosters: a becomes team one, b team two.
func (s *Session) BuildTeams(ctx context.Context, a, b model.RosterSpec) error {
	if s.phase != phaseNew {
		return fmt.Errorf("%w: teams already built", ErrOutOfOrder)
	}

	teamA, err := roster.NewTeam(model.TeamOne, a, s.directory)
	if err != nil {
		return fmt.Errorf("%w: team one: %w", ErrMalformedRecord, err)
	}
	teamB, err := roster.NewTeam(model.TeamTwo, b, s.directory)
	if err != nil {
		return fmt.Errorf("%w: team two: %w", ErrMalformedRecord, err)
	}

	for _, t := range []*roster.Team{teamA, teamB} {
		s.metrics.RecordRosterLoaded(t.Size())
		s.logger.Info(ctx, "team built",
			logger.String("team", t.Name()),
			logger.Int("number", t.Number()),
			logger.Int("players", t.Size()),
		)
	}
	if n := teamA.Size() + teamB.Size(); s.directory.Len() < n {
		s.logger.Warn(ctx, "player ids shared between rosters; later registration wins",
			logger.Int("rosterPlayers", n),
			logger.Int("directoryPlayers", s.directory.Len()),
		)
	}

	s.teamA, s.teamB = teamA, teamB
	s.phase = phaseTeams
	return nil
}

// Replay credits every hit in input order and records it in the ledger.
// The first bad event aborts the replay.
func (s *Session) Replay(ctx context.Context, match model.MatchSpec) error {
	if s.phase != phaseTeams {
		return fmt.Errorf("%w: replay needs built teams and runs once", ErrOutOfOrder)
	}

	s.metrics.ResetLedger()
	ledger, err := repository.NewHitLedger(match.Declared,
		repository.WithObserver(func(model.Shot) { s.metrics.RecordShot() }))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	s.ledger = ledger

	start := time.Now()
	for i, ev := range match.Events {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("replay cancelled: %w", err)
		}
		if err := s.replayOne(ev); err != nil {
			s.metrics.RecordReplayError(errorKind(err))
			s.logger.Error(ctx, "replay aborted",
				logger.Int("event", i+1),
				logger.Int("shooter", ev.ShooterID),
				logger.Int("target", ev.TargetID),
				logger.Error(err),
			)
			return fmt.Errorf("hit %d: %w", i+1, err)
		}
	}
	s.metrics.ObserveReplayDuration(time.Since(start).Seconds())

	if len(match.Events) < match.Declared {
		s.logger.Warn(ctx, "match file has fewer hits than declared",
			logger.Int("declared", match.Declared),
			logger.Int("found", len(match.Events)),
		)
	}
	s.metrics.SetTeamTotal(s.teamA.Number(), s.teamA.TotalScore())
	s.metrics.SetTeamTotal(s.teamB.Number(), s.teamB.TotalScore())

	s.phase = phaseReplayed
	s.logger.Info(ctx, "match replayed",
		logger.Int("hits", s.ledger.Len()),
		logger.Int("teamOneScore", s.teamA.TotalScore()),
		logger.Int("teamTwoScore", s.teamB.TotalScore()),
	)
	return nil
}

// replayOne validates the event completely before mutating anything.
func (s *Session) replayOne(ev model.HitEvent) error {
	shooter, err := s.directory.Lookup(ev.ShooterID)
	if err != nil {
		return fmt.Errorf("%w: shooter: %w", ErrUnregisteredPlayer, err)
	}
	if _, err := s.directory.Lookup(ev.TargetID); err != nil {
		return fmt.Errorf("%w: target: %w", ErrUnregisteredPlayer, err)
	}
	points, err := s.values.ValueOf(ev.Location)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	if err := s.ledger.Append(ev.ShooterID, ev.TargetID); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	team := s.teamA
	if shooter.Team == model.TeamTwo {
		team = s.teamB
	}
	if err := team.CreditHit(ev.ShooterID, points); err != nil {
		return err
	}
	s.metrics.RecordHit(ev.Location, points)
	return nil
}

// Report assembles the report for v. It requires a completed replay so the
// ranking reflects every hit.
func (s *Session) Report(ctx context.Context, v model.Verbosity) ([]string, error) {
	if s.phase != phaseReplayed {
		return nil, fmt.Errorf("%w: report needs a completed replay", ErrOutOfOrder)
	}

	lines, err := report.Assemble(s.teamA, s.teamB, s.ledger, s.directory, v)
	if err != nil {
		return nil, err
	}

	s.metrics.RecordReportLines(v.String(), len(lines))
	s.logger.Debug(ctx, "report assembled",
		logger.String("verbosity", v.String()),
		logger.Int("lines", len(lines)),
	)
	return lines, nil
}

// Inputs bundles everything a run reads.
type Inputs struct {
	TeamA model.RosterSpec
	TeamB model.RosterSpec
	Match model.MatchSpec
}

// LoadInputs reads both roster files and the match file.
func LoadInputs(teamAPath, teamBPath, matchPath string) (Inputs, error) {
	var (
		in  Inputs
		err error
	)
	if in.TeamA, err = file.ReadRoster(teamAPath); err != nil {
		return Inputs{}, err
	}
	if in.TeamB, err = file.ReadRoster(teamBPath); err != nil {
		return Inputs{}, err
	}
	if in.Match, err = file.ReadMatch(matchPath); err != nil {
		return Inputs{}, err
	}
	return in, nil
}

// Run performs BuildTeams, Replay and Report in sequence.
func (s *Session) Run(ctx context.Context, in Inputs, v model.Verbosity) ([]string, error) {
	if err := s.BuildTeams(ctx, in.TeamA, in.TeamB); err != nil {
		return nil, err
	}
	if err := s.Replay(ctx, in.Match); err != nil {
		return nil, err
	}
	return s.Report(ctx, v)
}

// errorKind labels replay errors for metrics.
func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrUnregisteredPlayer):
		return "unregistered_player"
	case errors.Is(err, scoring.ErrUnknownLocation):
		return "unknown_location"
	case errors.Is(err, repository.ErrLedgerFull):
		return "ledger_full"
	default:
		return "other"
	}
}
