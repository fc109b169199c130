package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"connect4/config"
	"connect4/engine"
	"connect4/metrics"
	"connect4/tree"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	census := flag.Int("census", -1, "Count positions to this depth from the empty board and exit")
	seed := flag.Uint64("seed", 0, "Random seed for the computer (0 uses CONNECT4_SEED or the clock)")
	auto := flag.Bool("auto", false, "Play one unattended game between two random agents")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	if *seed == 0 {
		*seed = cfg.Seed
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	collector := metrics.NewCollector()
	options := []tree.Option{tree.WithRules(cfg.Rules), tree.WithMetrics(collector)}
	if cfg.Transpositions {
		options = append(options, tree.WithTranspositions())
	}
	root := tree.NewRoot(options...)

	switch {
	case *census >= 0:
		err = runCensus(ctx, root, *census, cfg.CensusDir, collector)
	case *auto:
		err = runAuto(ctx, root, *seed, cfg)
	default:
		err = runShell(ctx, root, *seed, cfg)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("connect4 stopped")
	}

	m := collector.Complete()
	log.Info().Msgf("built %d nodes (%d terminal), %d expansions, %d transposition hits in %s",
		m.Nodes, m.Terminals, m.Expansions, m.TranspositionHits, m.Duration)
}

func runCensus(ctx context.Context, root *tree.Root, depth int, dir string, collector metrics.Collector) error {
	records, err := tree.Census(ctx, root.Traverse(true), depth)
	if err != nil {
		return err
	}
	for _, r := range records {
		fmt.Printf("ply %2d: %d lines, %d player wins, %d computer wins, %d draws\n",
			r.Ply, r.Lines, r.PlayerWins, r.ComputerWins, r.Draws)
	}

	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return fmt.Errorf("failed to create census writer: %w", err)
	}
	if err := writer.WriteCensus(records); err != nil {
		return err
	}
	if err := writer.WriteTreeMetric(collector.Complete()); err != nil {
		return err
	}
	log.Info().Msgf("stored census in %s", writer.Dir())
	return nil
}

func runAuto(ctx context.Context, root *tree.Root, seed uint64, cfg *config.Config) error {
	session := engine.NewSession(root, engine.NewRandomAgent(seed), os.Stdout, cfg.Symbols)
	if err := session.Start(true); err != nil {
		return err
	}
	outcome, err := session.Play(ctx, engine.NewRandomAgent(seed+1))
	if err != nil {
		return err
	}
	log.Info().Msgf("game over after %d moves: %s (moves %v)", len(session.Moves()), outcome, session.Moves())
	return nil
}

func runShell(ctx context.Context, root *tree.Root, seed uint64, cfg *config.Config) error {
	session := engine.NewSession(root, engine.NewRandomAgent(seed), os.Stdout, cfg.Symbols)
	shell := engine.NewShell(session, engine.NewPrompter(os.Stdin, os.Stdout))
	fmt.Println("Connect-4. Type help for the list of commands.")
	return shell.Run(ctx)
}
