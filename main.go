package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-cz/internal/config"
	"github.com/robalobadob/wordle-cz/internal/daily"
	"github.com/robalobadob/wordle-cz/internal/game"
	"github.com/robalobadob/wordle-cz/internal/httpserver"
	"github.com/robalobadob/wordle-cz/internal/player"
	"github.com/robalobadob/wordle-cz/internal/store"
	"github.com/robalobadob/wordle-cz/internal/tui"
	"github.com/robalobadob/wordle-cz/internal/words"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := newServeCmd()
	root := &cobra.Command{
		Use:           "wordle-cz",
		Short:         "Czech Wordle server and terminal game",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.AddCommand(serve, newPlayCmd(), newCheckCmd(), newTodayCmd())
	return root
}

// setup loads configuration and sets the global log level.
func setup() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	return cfg, nil
}

// openDeps builds the word list, store and schedule from cfg.
func openDeps(cfg config.Config) (player.Deps, error) {
	dict, err := words.Load(game.DefaultCols, cfg.AnswersFile, cfg.AllowedFile)
	if err != nil {
		return player.Deps{}, fmt.Errorf("load word lists: %w", err)
	}
	a, g := dict.Stats()
	log.Info().Int("answers", a).Int("accepted", g).Msg("word lists loaded")

	var kv store.Store
	if cfg.DBPath == "" {
		kv = store.NewMemoryStore()
		log.Info().Msg("using in-memory store")
	} else {
		if kv, err = store.OpenSQLite(cfg.DBPath); err != nil {
			return player.Deps{}, fmt.Errorf("open db: %w", err)
		}
		log.Info().Str("path", cfg.DBPath).Msg("using sqlite store")
	}
	return player.Deps{
		Store:    kv,
		Words:    dict,
		Schedule: daily.NewSchedule(dict, kv, cfg.DailySalt, cfg.Location),
	}, nil
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			deps, err := openDeps(cfg)
			if err != nil {
				return err
			}
			defer deps.Store.Close()

			srv, err := httpserver.New(cfg, deps)
			if err != nil {
				return err
			}
			log.Info().Str("port", cfg.Port).Msg("starting wordle-cz")
			return srv.Start(":" + cfg.Port)
		},
	}
}

func newPlayCmd() *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			// Keep log lines off the TUI.
			zerolog.SetGlobalLevel(zerolog.ErrorLevel)
			deps, err := openDeps(cfg)
			if err != nil {
				return err
			}
			defer deps.Store.Close()

			ctx := context.Background()
			return tui.Run(ctx, player.Load(ctx, id, deps, time.Now()))
		},
	}
	cmd.Flags().StringVar(&id, "player", "local", "player id whose state is loaded")
	return cmd
}

var feedbackGlyphs = map[game.Feedback]string{
	game.FeedbackExact:   "🟩",
	game.FeedbackPresent: "🟨",
	game.FeedbackBase:    "🟪",
	game.FeedbackAbsent:  "⬛",
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <guess> <solution>",
		Short: "Print the feedback of a guess against a solution",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fb, err := game.Evaluate(game.NormalizeWord(args[0]), game.NormalizeWord(args[1]))
			if err != nil {
				return err
			}
			names := make([]string, len(fb))
			var tiles strings.Builder
			for i, f := range fb {
				names[i] = string(f)
				tiles.WriteString(feedbackGlyphs[f])
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", tiles.String(), strings.Join(names, " "))
			return nil
		},
	}
}

func newTodayCmd() *cobra.Command {
	var reveal bool
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Print today's date key and day index",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			deps, err := openDeps(cfg)
			if err != nil {
				return err
			}
			defer deps.Store.Close()

			p := deps.Schedule.Today(context.Background(), time.Now())
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s #%d\n", p.DateKey, p.DayIndex)
			if reveal {
				suffix := ""
				if p.Overridden {
					suffix = " (override)"
				}
				_, _ = fmt.Fprintf(out, "%s%s\n", p.Word, suffix)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&reveal, "reveal", false, "also print the word")
	return cmd
}
