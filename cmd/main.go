package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/okian/tagscore/internal/adapters/file"
	app "github.com/okian/tagscore/internal/app"
	"github.com/okian/tagscore/internal/config"
	"github.com/okian/tagscore/internal/domain/model"
	"github.com/okian/tagscore/pkg/logger"
	"github.com/okian/tagscore/pkg/metrics"
)

// Exit codes.
const (
	exitOK                 = 0
	exitFailure            = 1
	exitUsage              = 2
	exitMissingFile        = 3
	exitMalformedRecord    = 4
	exitUnregisteredPlayer = 5
)

// stdoutPath selects stdout as the report destination.
const stdoutPath = "-"

const usage = `usage: tagscore <team-a roster> <team-b roster> <match file> <output file|-> <-l|-m|-h>

  -l  team totals and the winner
  -m  tag counts per player, best scorers and team totals
  -h  shooter-by-target tag matrix for both teams
`

// errUsage marks a command line that does not have the five arguments.
var errUsage = errors.New("invalid arguments")

// cliArgs are the five positional arguments.
type cliArgs struct {
	teamA, teamB, match, output string
	verbosity                   model.Verbosity
}

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(exitFailure)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout)
	stop()

	if err := logger.Sync(); err != nil {
		os.Stderr.WriteString("failed to sync logger: " + err.Error() + "\n")
	}
	os.Exit(code)
}

// newRootCmd builds the scoring command. Flag parsing is disabled because
// the verbosity selector is a positional argument that looks like a flag.
func newRootCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:                "tagscore <team-a roster> <team-b roster> <match file> <output file|-> <-l|-m|-h>",
		Short:              "Score a two-team laser-tag match",
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, argv []string) error {
			return score(cmd.Context(), cmd, argv, stdout)
		},
	}
}

// run executes one scoring run and returns the process exit code.
func run(ctx context.Context, argv []string, stdout io.Writer) int {
	if argv == nil {
		argv = []string{} // nil makes cobra fall back to os.Args
	}
	cmd := newRootCmd(stdout)
	cmd.SetArgs(argv)
	cmd.SetErr(os.Stderr)
	return exitCode(cmd.ExecuteContext(ctx))
}

func score(ctx context.Context, cmd *cobra.Command, argv []string, stdout io.Writer) error {
	log := logger.Get()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Error(ctx, "failed to load config", logger.Error(err))
		return err
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	args, err := parseArgs(argv)
	if err != nil {
		log.Error(ctx, "invalid arguments", logger.Error(err))
		_, _ = io.WriteString(cmd.ErrOrStderr(), usage)
		return err
	}

	values, err := cfg.LocationValues()
	if err != nil {
		log.Error(ctx, "invalid hit values", logger.Error(err))
		return err
	}

	mgr := metrics.Default()
	defer dumpMetrics(ctx, log, mgr, cfg.MetricsFile)

	in, err := app.LoadInputs(args.teamA, args.teamB, args.match)
	if err != nil {
		log.Error(ctx, "failed to read input", logger.Error(err))
		return err
	}

	session := app.New(
		app.WithLogger(log),
		app.WithHitValues(values),
		app.WithMetrics(mgr),
	)
	lines, err := session.Run(ctx, in, args.verbosity)
	if err != nil {
		log.Error(ctx, "scoring failed", logger.String("session", session.ID()), logger.Error(err))
		return err
	}

	if args.output == stdoutPath {
		err = file.WriteLines(stdout, lines)
	} else {
		err = file.WriteReport(args.output, lines)
	}
	if err != nil {
		log.Error(ctx, "failed to write report", logger.String("output", args.output), logger.Error(err))
		return err
	}
	return nil
}

func parseArgs(argv []string) (cliArgs, error) {
	const want = 5
	if len(argv) != want {
		return cliArgs{}, fmt.Errorf("%w: want %d, got %d", errUsage, want, len(argv))
	}
	v, err := model.ParseVerbosity(argv[4])
	if err != nil {
		return cliArgs{}, err
	}
	return cliArgs{
		teamA:     argv[0],
		teamB:     argv[1],
		match:     argv[2],
		output:    argv[3],
		verbosity: v,
	}, nil
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage), errors.Is(err, app.ErrUnknownVerbosity):
		return exitUsage
	case errors.Is(err, app.ErrMissingFile):
		return exitMissingFile
	case errors.Is(err, app.ErrMalformedRecord):
		return exitMalformedRecord
	case errors.Is(err, app.ErrUnregisteredPlayer):
		return exitUnregisteredPlayer
	default:
		return exitFailure
	}
}

func dumpMetrics(ctx context.Context, log logger.Logger, mgr *metrics.Manager, path string) {
	if path == "" {
		return
	}
	if err := mgr.WriteTextfile(path); err != nil {
		log.Warn(ctx, "failed to write metrics", logger.String("path", path), logger.Error(err))
	}
}
