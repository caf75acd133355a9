// Package trainer implements the interactive scoring drill: deal a hand,
// read the user's count, and show the actual breakdown when they miss.
package trainer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cribbage-trainer/pkg/cribbage"
	"cribbage-trainer/pkg/deck"
	"cribbage-trainer/pkg/history"
)

// HelpChar is the input that prints the help message
const HelpChar = "?"

const welcomeMessage = "Welcome to 'Cribbage Trainer'! ('" + HelpChar + "' for help, 'Ctrl-D' to quit)"

const helpMessage = `
Score the dealt hand and enter the total. The starter is shown before the
bar, the four held cards after it. Press '` + HelpChar + `' for this help, or quit with
Ctrl-D and the answer won't be logged.`

const (
	correctMessage      = "Correct!"
	invalidInputMessage = "Invalid input.  Score this hand again."
	goodbyeMessage      = "\nGoodbye!"
)

const breakdownTemplate = `
Actual score: %d

Pairs       : %d
Fifteens    : %d
Runs        : %d
Flushes     : %d
Nobs        : %d
`

// Recorder persists answered deals. *history.Store satisfies this.
type Recorder interface {
	Record(ctx context.Context, deal history.Deal) error
}

// Options configures a Trainer
type Options struct {
	// Logfile receives one tab-separated line per answered hand:
	// <unix-timestamp>\t<plaintext hand>\t<user score>
	Logfile io.Writer

	// Recorder optionally persists answered deals for later analysis
	Recorder Recorder

	// Colors enables the colorized prompt
	Colors bool

	// Deal supplies the next hand. Defaults to dealing five cards from a
	// fresh deck.
	Deal func() (*cribbage.Hand, error)

	// Now is the clock used for log lines. Defaults to time.Now.
	Now func() time.Time
}

// Trainer runs the drill loop over a pair of streams
type Trainer struct {
	in       *bufio.Scanner
	out      io.Writer
	logfile  io.Writer
	recorder Recorder
	colors   bool
	deal     func() (*cribbage.Hand, error)
	now      func() time.Time
	session  uuid.UUID
}

// New returns a trainer reading answers from in and writing prompts to out
func New(in io.Reader, out io.Writer, opts Options) *Trainer {
	deal := opts.Deal
	if deal == nil {
		deal = dealHand
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	logfile := opts.Logfile
	if logfile == nil {
		logfile = io.Discard
	}

	return &Trainer{
		in:       bufio.NewScanner(in),
		out:      out,
		logfile:  logfile,
		recorder: opts.Recorder,
		colors:   opts.Colors,
		deal:     deal,
		now:      now,
		session:  uuid.New(),
	}
}

func dealHand() (*cribbage.Hand, error) {
	cards, err := deck.New().Deal(cribbage.HandLength)
	if err != nil {
		return nil, err
	}

	return cribbage.NewHand(cards)
}

// SessionID returns the identifier recorded with this trainer's deals
func (t *Trainer) SessionID() uuid.UUID {
	return t.session
}

// Run deals hands until the input stream ends or the context is canceled
func (t *Trainer) Run(ctx context.Context) error {
	fmt.Fprintln(t.out, welcomeMessage)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		hand, err := t.deal()
		if err != nil {
			return err
		}

		more, err := t.playHand(ctx, hand)
		if err != nil {
			return err
		}

		if !more {
			return nil
		}
	}
}

// playHand prompts for the hand's score until it gets an integer answer.
// It returns false when the input stream is exhausted.
func (t *Trainer) playHand(ctx context.Context, hand *cribbage.Hand) (bool, error) {
	prompt := hand.Prompt()
	if !t.colors {
		prompt = hand.Record()
	}

	for {
		fmt.Fprint(t.out, prompt)

		if !t.in.Scan() {
			fmt.Fprintln(t.out, goodbyeMessage)
			return false, t.in.Err()
		}

		line := strings.TrimSpace(t.in.Text())
		if line == HelpChar {
			fmt.Fprintln(t.out, helpMessage)
			continue
		}

		userScore, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(t.out, invalidInputMessage)
			continue
		}

		t.logResult(hand, userScore)

		result := cribbage.Score(hand)
		t.recordDeal(ctx, hand, userScore, result)

		if userScore == result.Total {
			fmt.Fprintln(t.out, correctMessage)
		} else {
			fmt.Fprintf(t.out, breakdownTemplate,
				result.Total, result.Pairs, result.Fifteens, result.Runs, result.Flushes, result.Nobs)
		}

		return true, nil
	}
}

func (t *Trainer) logResult(hand *cribbage.Hand, userScore int) {
	if _, err := fmt.Fprintf(t.logfile, "%d\t%s\t%d\n", t.now().Unix(), hand.Record(), userScore); err != nil {
		logrus.WithError(err).Warn("could not write log line")
	}
}

func (t *Trainer) recordDeal(ctx context.Context, hand *cribbage.Hand, userScore int, result cribbage.ScoreResult) {
	if t.recorder == nil {
		return
	}

	deal := history.Deal{
		SessionID:   t.session,
		AnsweredAt:  t.now(),
		Hand:        hand.String(),
		UserScore:   userScore,
		ActualScore: result.Total,
	}

	if err := t.recorder.Record(ctx, deal); err != nil {
		logrus.WithError(err).Warn("could not record deal in history")
	}
}
