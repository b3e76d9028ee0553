// SPDX-License-Identifier: MIT

// Package repl runs the interactive prompt: read an order, print its magic
// square, its magic constant and optionally a heatmap, and ask again.
//
// Bad input never ends the session: non-numbers and orders without a magic
// square print an error and re-prompt. 0, quit, exit or EOF end it.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/magicsquare/render"
	"github.com/katalvlaran/magicsquare/square"
)

// Prompt is shown before every read.
const Prompt = "Enter the size of the magic square (0 to exit): "

// Farewell is printed when the session ends.
const Farewell = "Program ended. Thank you!"

// LineReader is the part of *readline.Instance the session needs.
type LineReader interface {
	Readline() (string, error)
	Close() error
}

// NewReadline returns a readline-backed LineReader showing Prompt.
func NewReadline() (*readline.Instance, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          Prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return rl, nil
}

// Options configures a Session.
type Options struct {
	Heatmap        bool                  // print a heatmap after each square
	HeatmapOptions render.HeatmapOptions // passed to render.Heatmap
}

// Session is one interactive run.
type Session struct {
	in   LineReader
	out  io.Writer
	log  logrus.FieldLogger
	opts Options
}

// New builds a Session reading from in and printing to out.
func New(in LineReader, out io.Writer, log logrus.FieldLogger, opts Options) *Session {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	return &Session{in: in, out: out, log: log, opts: opts}
}

// Run loops until the user exits, the input ends or ctx is done.
// The reader is closed on return, or as soon as ctx is done so that a
// blocked Readline returns.
func (s *Session) Run(ctx context.Context) error {
	var once sync.Once
	closeIn := func() {
		once.Do(func() {
			if err := s.in.Close(); err != nil {
				s.log.WithError(err).Debug("close reader")
			}
		})
	}
	defer closeIn()
	stop := context.AfterFunc(ctx, closeIn)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			s.farewell()
			return ctx.Err()
		default:
		}

		line, err := s.in.Readline()
		if err != nil {
			if ctx.Err() != nil {
				s.farewell()
				return ctx.Err()
			}
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if !errors.Is(err, io.EOF) {
				s.log.WithError(err).Warn("read failed")
			}
			s.farewell()
			return nil
		}

		if done := s.Handle(line); done {
			s.farewell()
			return nil
		}
	}
}

// Handle processes one input line and reports whether the session is over.
func (s *Session) Handle(line string) (done bool) {
	input := strings.TrimSpace(line)
	switch strings.ToLower(input) {
	case "":
		return false
	case "quit", "exit", "q":
		return true
	case "help", "?":
		s.printHelp()
		return false
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %q is not a whole number\n", input)
		return false
	}
	if n == 0 {
		return true
	}

	sq, err := square.Generate(n)
	if err != nil {
		s.log.WithError(err).WithField("order", n).Debug("generation rejected")
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return false
	}
	s.log.WithField("order", n).Debug("square generated")
	s.show(sq)

	return false
}

// show prints the square, its constant and the optional heatmap.
func (s *Session) show(sq *square.Square) {
	fmt.Fprintln(s.out, "\nMagic Square:")
	if err := render.Text(s.out, sq); err != nil {
		s.log.WithError(err).Warn("render failed")
		return
	}
	fmt.Fprintf(s.out, "\nMagic Constant: %d\n", square.MagicConstant(sq.Order()))

	if !s.opts.Heatmap {
		return
	}
	fmt.Fprintln(s.out)
	if err := render.Heatmap(s.out, sq, s.opts.HeatmapOptions); err != nil {
		s.log.WithError(err).Warn("heatmap failed")
	}
}

func (s *Session) farewell() {
	fmt.Fprintln(s.out, Farewell)
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.out, `
Enter an order N to print its magic square:
  N odd             Siamese method
  N divisible by 4  complement pattern
  N = 2 (mod 4)     Strachey method (N ≥ 6)
  0, quit           exit`)
}
