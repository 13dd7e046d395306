package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gofrs/uuid/v5"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"dlx.dev/pentomino/internal/cliargs"
	"dlx.dev/pentomino/internal/config"
	"dlx.dev/pentomino/internal/domain"
	"dlx.dev/pentomino/internal/infrastructure/history"
	"dlx.dev/pentomino/internal/logging"
	"dlx.dev/pentomino/internal/ports"
	"dlx.dev/pentomino/internal/shapegen"
	"dlx.dev/pentomino/internal/solver"
	"dlx.dev/pentomino/internal/usecase"
	"dlx.dev/pentomino/internal/validator"
)

var (
	logLevel    string
	historyDir  string
	configPath  string
	pauseOnExit bool
)

func main() {
	root := &cobra.Command{
		Use:                "pentomino",
		Short:              "Pack pentomino pieces onto a 5-wide board via Dancing Links",
		DisableFlagParsing: true,
		RunE:               runSolve,
	}
	root.AddCommand(&cobra.Command{
		Use:   "gen-shapes <dir>",
		Short: "Write the twelve canonical piece shapes as .bin files into dir",
		Args:  cobra.ExactArgs(1),
		RunE:  runGenShapes,
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runGenShapes is a plain subcommand with normal flag parsing; only the
// root command needs the manual split below.
func runGenShapes(cmd *cobra.Command, args []string) error {
	written, err := shapegen.Generate(args[0])
	if err != nil {
		return err
	}
	for _, path := range written {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

// runSolve implements the default command. DisableFlagParsing is set on
// the root command because its piece-selection flags use a single-dash
// clustered-letter syntax pflag cannot parse; long flags are split out
// of os.Args here and parsed separately via splitArgs.
func runSolve(cmd *cobra.Command, rawArgs []string) error {
	longArgs, letterArgs := splitArgs(rawArgs)

	flags := cmd.Flags()
	flags.StringVar(&logLevel, "log-level", "", "diagnostic log level (debug, info, warn, error)")
	flags.StringVar(&historyDir, "history-dir", "", "directory to persist solve runs under (opt-in)")
	flags.StringVar(&configPath, "config", "", "path to an optional YAML defaults file")
	flags.BoolVar(&pauseOnExit, "pause", false, "pause for a keypress after printing the grid, if attached to a terminal")
	if err := flags.Parse(longArgs); err != nil {
		return err
	}

	cfgPath := configPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if historyDir != "" {
		cfg.HistoryDir = historyDir
	}
	if flags.Changed("pause") {
		cfg.PauseOnExit = pauseOnExit
	}

	logger := logging.New(cfg.LogLevel)

	selection := cliargs.Parse(letterArgs)
	if len(selection) == 0 {
		selection = append([]domain.Letter(nil), domain.AllLetters...)
	}
	logger.Info().Strs("selection", letterStrings(selection)).Msg("resolved piece selection")

	v := validator.New()
	ok, problems, err := v.ValidateSelection(context.Background(), selection)
	if err != nil || !ok {
		logger.Fatal().Strs("problems", problems).Err(err).Msg("invalid piece selection")
	}

	svc := usecase.NewService(solver.NewDLXSolver(), v, resolveHistory(cfg.HistoryDir))

	ctx := context.Background()
	result, err := svc.Solve(ctx, selection)
	if err != nil {
		logger.Fatal().Err(err).Msg("solve failed")
	}
	logger.Info().
		Str("nodesVisited", humanize.Comma(int64(result.Stats.Nodes))).
		Int64("durationNs", result.Stats.Duration).
		Bool("found", result.Found).
		Msg("search complete")

	if result.Found {
		gridOK, gridProblems, err := svc.ValidateGrid(ctx, selection, result.Grid)
		if err != nil {
			logger.Fatal().Err(err).Msg("could not validate solved grid")
		} else if !gridOK {
			logger.Warn().Strs("problems", gridProblems).Msg("solved grid failed validation")
		}
	}

	printResult(cmd, result, selection)

	run := &domain.Run{
		ID:        uuid.Must(uuid.NewV4()).String(),
		Letters:   selection,
		Board:     result.Board,
		Found:     result.Found,
		Grid:      result.Grid,
		Stats:     result.Stats,
		CreatedAt: time.Now().Unix(),
	}
	if err := svc.SaveRun(ctx, run); err != nil {
		logger.Warn().Err(err).Msg("could not persist run history")
	}

	if cfg.PauseOnExit && isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Fprint(cmd.OutOrStdout(), "\nPress Enter to exit...")
		bufio.NewReader(os.Stdin).ReadString('\n')
	}
	return nil
}

// splitArgs separates long ("--...") flags, which pflag must parse, from
// the single-dash piece-letter clusters that cliargs.Parse owns. A long
// flag written without "=" (other than the boolean --pause) takes the
// following argument with it as its value.
func splitArgs(args []string) (longArgs, letterArgs []string) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--") {
			longArgs = append(longArgs, a)
			if a != "--pause" && !strings.Contains(a, "=") && i+1 < len(args) {
				i++
				longArgs = append(longArgs, args[i])
			}
		} else {
			letterArgs = append(letterArgs, a)
		}
	}
	return
}

func letterStrings(letters []domain.Letter) []string {
	out := make([]string, len(letters))
	for i, l := range letters {
		out[i] = l.String()
	}
	return out
}

// printResult emits exactly the standard-output contract: a header line,
// the grid (when found), and the trailing board-field summary line.
func printResult(cmd *cobra.Command, result ports.Result, selection []domain.Letter) {
	w := cmd.OutOrStdout()
	if result.Found {
		fmt.Fprintln(w, "Solution found!")
		for _, row := range result.Grid {
			var b strings.Builder
			for _, cell := range row {
				b.WriteString(cell.String())
				b.WriteByte(' ')
			}
			fmt.Fprintln(w, b.String())
		}
	} else {
		fmt.Fprintln(w, "No solution found.")
	}
	fmt.Fprintf(w, "boardField is 5, %d\n", len(selection))
}

func resolveHistory(dir string) ports.History {
	if dir == "" {
		return history.Noop{}
	}
	return history.NewFS(dir)
}
