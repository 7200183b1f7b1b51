package main

import (
	"flag"
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-agent/internal/config"
	"github.com/vancomm/minesweeper-agent/internal/game"
	"github.com/vancomm/minesweeper-agent/internal/knowledge"
	"github.com/vancomm/minesweeper-agent/internal/mines"
)

var (
	log = logrus.New()

	height    int
	width     int
	mineCount int
	games     int
	workers   int
	seed      uint64
)

func init() {
	flag.IntVar(&height, "height", 8, "board height")
	flag.IntVar(&width, "width", 8, "board width")
	flag.IntVar(&mineCount, "mines", 8, "number of mines")
	flag.IntVar(&games, "games", 1, "number of games to play")
	flag.IntVar(&workers, "workers", 1, "number of games to play concurrently")
	flag.Uint64Var(&seed, "seed", 1, "base random seed")
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if config.Development() {
		logLevel = logrus.DebugLevel
	}

	loggers := []*logrus.Logger{log, knowledge.Log, mines.Log, game.Log}
	for _, l := range loggers {
		l.SetLevel(logLevel)
		l.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	}

	if path := config.LogPath(); path != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   path,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			log.Fatal("unable to create log file hook: ", err)
		}
		for _, l := range loggers {
			l.AddHook(hook)
		}
	}
}

func playOne(i int) (game.Result, error) {
	r := rand.New(rand.NewPCG(seed, uint64(i)))

	board, err := mines.NewBoard(height, width, mineCount, r)
	if err != nil {
		return game.Result{}, fmt.Errorf("game %d: %w", i, err)
	}
	agent := knowledge.NewAgent(height, width, r)

	res, err := game.Play(board, agent)
	if err != nil {
		return res, fmt.Errorf("game %d: %w", i, err)
	}

	log.WithFields(logrus.Fields{
		"game":    i,
		"outcome": res.Outcome,
		"moves":   res.Moves,
		"guesses": res.Guesses,
	}).Debug("game over")
	return res, nil
}

func main() {
	flag.Parse()
	setupLogging()

	results := make([]game.Result, games)

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range games {
		g.Go(func() (err error) {
			results[i], err = playOne(i)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	var won, lost, stuck int
	for _, res := range results {
		switch res.Outcome {
		case game.Won:
			won++
		case game.Lost:
			lost++
		case game.Stuck:
			stuck++
		}
	}
	log.WithFields(logrus.Fields{
		"games": games,
		"won":   won,
		"lost":  lost,
		"stuck": stuck,
	}).Info("simulation complete")
}
