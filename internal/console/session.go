// Package console drives a robot from line-oriented text input.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/tliron/commonlog"

	"toyrobot/internal/command"
	"toyrobot/internal/robot"
)

// Session feeds console lines to the parser and routes the resulting
// commands to one robot. Commands are applied one at a time.
type Session struct {
	robot       *robot.Robot
	parser      *command.Parser
	out         io.Writer
	board       *Board
	log         commonlog.Logger
	helpOnError bool
	banner      bool
	prompt      string
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(log commonlog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithParser replaces the default command parser.
func WithParser(p *command.Parser) Option {
	return func(s *Session) { s.parser = p }
}

// WithBoard draws b after every command that changes or shows state. A nil
// board disables the map.
func WithBoard(b *Board) Option {
	return func(s *Session) { s.board = b }
}

// WithHelpOnError prints the usage after each rejected command.
func WithHelpOnError(on bool) Option {
	return func(s *Session) { s.helpOnError = on }
}

// WithBanner logs the welcome banner on Start.
func WithBanner(on bool) Option {
	return func(s *Session) { s.banner = on }
}

// WithPrompt writes prompt to the output before each line is read.
func WithPrompt(prompt string) Option {
	return func(s *Session) { s.prompt = prompt }
}

// NewSession returns a session driving r and writing to out.
func NewSession(r *robot.Robot, out io.Writer, opts ...Option) *Session {
	s := &Session{
		robot: r,
		out:   out,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = commonlog.GetLogger("toyrobot.console")
	}
	if s.parser == nil {
		s.parser = command.NewParser(nil)
	}
	return s
}

// Start logs the banner and shows the help and the empty table.
func (s *Session) Start() {
	if s.banner {
		for _, line := range Banner(s.robot.Grid()) {
			s.log.Info(line)
		}
	}
	s.printHelp()
	s.drawMap()
}

// Exec parses and applies one line. It reports whether the session should
// stop and returns the error that rejected the command, if any. Rejected
// commands never change the robot.
func (s *Session) Exec(line string) (stop bool, err error) {
	cmd, err := s.parser.Parse(line)
	if err != nil {
		s.log.Warning("nothing to be executed")
		s.rejected()
		s.drawMap()
		return false, err
	}

	switch cmd.Verb {
	case command.Place:
		err = s.robot.Place(cmd.Args.X, cmd.Args.Y, cmd.Args.Heading)
	case command.Move:
		err = s.robot.Move()
	case command.Left:
		err = s.robot.Left()
	case command.Right:
		err = s.robot.Right()
	case command.Report:
		var pose string
		if pose, err = s.robot.Report(); err != nil {
			fmt.Fprintln(s.out, robot.NotPlacedMessage)
			return false, err
		}
		fmt.Fprintln(s.out, pose)
		return false, nil
	case command.Help:
		s.printHelp()
	case command.Exit:
		s.log.Notice("Application stopped by user.")
		return true, nil
	}

	if err != nil {
		s.rejected()
	}
	s.drawMap()
	return false, err
}

// Run reads commands from in until EXIT, end of input or cancellation of
// ctx. None of these is an error; only a failing reader is.
//
// Lines are read on a separate goroutine. When Run returns early that
// goroutine may still be blocked reading from in until in is closed or
// yields another line, so in must not be handed to another reader.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	readCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		var err error
		defer func() {
			errc <- err
			close(lines)
		}()
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-readCtx.Done():
				return
			}
		}
		err = sc.Err()
	}()

	for {
		if s.prompt != "" {
			fmt.Fprint(s.out, s.prompt)
		}
		select {
		case <-ctx.Done():
			s.log.Notice("Application stopped by user.")
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-errc; err != nil {
					return fmt.Errorf("read commands: %w", err)
				}
				s.log.Info("end of input")
				return nil
			}
			if stop, _ := s.Exec(line); stop {
				return nil
			}
		}
	}
}

func (s *Session) rejected() {
	if s.helpOnError {
		s.printHelp()
	}
}

func (s *Session) printHelp() {
	fmt.Fprint(s.out, HelpText(s.robot.Grid()))
}

func (s *Session) drawMap() {
	if s.board == nil {
		return
	}
	s.log.Debug("drawing map")
	fmt.Fprint(s.out, s.board.Render(s.robot))
}
