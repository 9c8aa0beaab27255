package main

import (
	"flag"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"pokerhand/internal/config"
	"pokerhand/internal/util"
	"pokerhand/pkg/deck"
)

var command = flag.String("c", "judge", "specifies the command (draw, judge)")
var count = flag.Int("n", 1, "the number of cards to draw")
var plain = flag.Bool("plain", false, "disable terminal styling")

func main() {
	flag.Parse()
	setupLogger()

	log := logrus.WithField("run", util.NewRunID())

	var out printer = plainPrinter{w: os.Stdout}
	if !*plain && term.IsTerminal(int(os.Stdout.Fd())) {
		out = ptermPrinter{}
	}

	switch *command {
	case "draw":
		g, err := config.Instance().Generator()
		if err != nil {
			log.WithError(err).Fatal("could not create random source")
		}

		d := deck.NewWithGenerator(g)
		log.WithField("hash", d.HashCode()).Debug("deck shuffled")

		cards, err := drawCards(d, *count)
		if err != nil {
			log.WithError(err).WithField("count", *count).Fatal("could not draw cards")
		}

		if err := out.PrintCards(cards); err != nil {
			log.WithError(err).Fatal("could not print cards")
		}

	case "judge":
		hand, role, err := judgeTokens(flag.Args())
		if err != nil {
			log.WithError(err).WithField("tokens", flag.Args()).Fatal("could not judge hand")
		}

		if err := out.PrintRole(hand, role); err != nil {
			log.WithError(err).Fatal("could not print role")
		}

	default:
		log.Fatalf("unknown command: %s", *command)
	}
}

func setupLogger() {
	cfg := config.Instance()
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	// stdout is reserved for results
	logrus.SetOutput(os.Stderr)

	if strings.ToLower(cfg.Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
