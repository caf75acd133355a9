package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"cribbage-trainer/internal/config"
	"cribbage-trainer/pkg/history"
	"cribbage-trainer/pkg/trainer"
)

// Version is the trainer version
var Version = "v0.0.0-dev"

var configFile = flag.String("config", "", "path to the config file")

func main() {
	flag.Parse()

	if *configFile != "" {
		_ = os.Setenv("CRIBBAGE_CONFIG_FILE", *configFile)
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("could not load .env")
	}

	setupLogger()

	cfg := config.Instance()
	logrus.WithField("version", Version).Debug("starting cribbage trainer")

	logfile, err := os.OpenFile(cfg.Logfile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logrus.WithError(err).Fatal("could not open logfile")
	}
	defer logfile.Close()

	var store *history.Store
	var recorder trainer.Recorder
	if cfg.HistoryPath != "" {
		store, err = history.New(cfg.HistoryPath)
		if err != nil {
			logrus.WithError(err).Fatal("could not open history store")
		}
		defer store.Close()

		recorder = store
	}

	t := trainer.New(os.Stdin, os.Stdout, trainer.Options{
		Logfile:  logfile,
		Recorder: recorder,
		Colors:   useColors(cfg),
	})

	ctx := context.Background()
	if err := t.Run(ctx); err != nil {
		logrus.WithError(err).Fatal("trainer exited")
	}

	if store != nil {
		summary, err := store.Summary(ctx, t.SessionID())
		if err != nil {
			logrus.WithError(err).Warn("could not summarize session")
			return
		}

		logrus.WithFields(logrus.Fields{
			"attempts": summary.Attempts,
			"correct":  summary.Correct,
		}).Info("session complete")
	}
}

func useColors(cfg config.Config) bool {
	switch cfg.Colors {
	case "always":
		return true
	case "never":
		return false
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if os.Getenv("LOG_FORMAT") == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
