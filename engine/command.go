package engine

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"connect4/game"
)

// ErrClose stops the shell.
var ErrClose = errors.New("close requested")

const (
	ShellPrompt        = "> "
	FirstPrompt        = "Would you like to go first (y/n)? "
	Yes                = "y"
	No                 = "n"
	RecognitionMessage = "Response not recognised! Try again."
	RangeMessage       = "You drop the token on the floor; there's no column there!"
	FullMessage        = "That column is full! Pick another."
	UnknownMessage     = "Unknown command %q. Type help for the list of commands."
	ArgsMessage        = "%s takes %d to %d arguments, got %d."
	NotStartedMessage  = "No game in progress. Type start to begin."
	GameOverMessage    = "The game is over. Type start to play again."
)

type command struct {
	keyword string
	desc    string
	minArgs int
	maxArgs int
	run     func(sh *Shell, args []string) error
}

func (c command) String() string {
	return c.keyword + ": " + c.desc
}

// Shell reads commands and drives a Session.
type Shell struct {
	session  *Session
	prompter *Prompter
	human    Agent
	commands []command
}

func NewShell(session *Session, prompter *Prompter) *Shell {
	sh := &Shell{
		session:  session,
		prompter: prompter,
		human:    NewHumanAgent(prompter),
	}
	sh.commands = []command{
		{keyword: "close", desc: "close this program", run: runClose},
		{keyword: "help", desc: "display this help message", run: runHelp},
		{keyword: "start", desc: "start a new game of connect-4", maxArgs: 1, run: runStart},
		{keyword: "drop", desc: "drop one of your tokens into the board", maxArgs: 1, run: runDrop},
	}
	return sh
}

// Run reads commands until close, end of input or cancellation.
func (sh *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := sh.prompter.Ask(ShellPrompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		err = sh.Execute(line)
		if errors.Is(err, ErrClose) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Execute runs one command line. User mistakes are reported on the shell's
// output; only ErrClose and input failures are returned.
func (sh *Shell) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	keyword, args := strings.ToLower(fields[0]), fields[1:]
	for _, c := range sh.commands {
		if c.keyword != keyword {
			continue
		}
		if len(args) < c.minArgs || len(args) > c.maxArgs {
			sh.prompter.Say(ArgsMessage, c.keyword, c.minArgs, c.maxArgs, len(args))
			return nil
		}
		return c.run(sh, args)
	}

	sh.prompter.Say(UnknownMessage, keyword)
	return nil
}

func runClose(sh *Shell, args []string) error {
	return ErrClose
}

func runHelp(sh *Shell, args []string) error {
	for _, c := range sh.commands {
		sh.prompter.Say("%s", c)
	}
	return nil
}

func runStart(sh *Shell, args []string) error {
	var answer string
	asked := len(args) == 1
	if asked {
		answer = strings.ToLower(args[0])
	}

	for answer != Yes && answer != No {
		if asked {
			sh.prompter.Say(RecognitionMessage)
		}
		line, err := sh.prompter.Ask(FirstPrompt)
		if err != nil {
			return err
		}
		answer, asked = strings.ToLower(line), true
	}

	return sh.session.Start(answer == Yes)
}

func runDrop(sh *Shell, args []string) error {
	switch {
	case sh.session.Node() == nil:
		sh.prompter.Say(NotStartedMessage)
		return nil
	case sh.session.Finished():
		sh.prompter.Say(GameOverMessage)
		return nil
	}

	var column int
	var err error
	if len(args) == 1 {
		column, err = strconv.Atoi(args[0])
		if err != nil {
			sh.prompter.Say(NotANumberMessage)
			return nil
		}
	} else {
		column, err = sh.human.FindMove(sh.session.Node())
		if err != nil {
			return err
		}
	}

	board := sh.session.Node().Board()
	err = sh.session.Drop(column)
	if !errors.Is(err, game.ErrIndexOutOfRange) {
		return err
	}
	if column >= 0 && column < board.Rules().Width && board.Column(column).Full() {
		sh.prompter.Say(FullMessage)
	} else {
		sh.prompter.Say(RangeMessage)
	}
	return nil
}
