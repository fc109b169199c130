package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"connect4/game"
	"connect4/tree"

	"golang.org/x/exp/rand"
)

// Agent picks the column to drop into from node.
type Agent interface {
	FindMove(node *tree.DecisionNode) (int, error)
}

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent picks uniformly among the legal columns. It does not score moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(node *tree.DecisionNode) (int, error) {
	columns := node.Columns()
	if len(columns) == 0 {
		return -1, fmt.Errorf("%w: no legal column to drop into", game.ErrIllegalMove)
	}
	return columns[a.rng.Intn(len(columns))], nil
}

// Prompter asks questions on out and reads one-line answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask writes prompt and returns the next trimmed line. A final line without a
// newline is still returned; io.EOF is reported only once input is exhausted.
func (p *Prompter) Ask(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(p.out, prompt)
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) Say(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

const (
	ColumnPrompt      = "Which column would you like to drop your token into (0 left-most, %d right-most)? "
	NotANumberMessage = "Response not recognised as whole number! Try again."
)

type humanAgent struct {
	prompter *Prompter
}

// NewHumanAgent asks for a column until the answer is a whole number.
// Range checks are left to the tree.
func NewHumanAgent(prompter *Prompter) Agent {
	return &humanAgent{prompter: prompter}
}

func (a *humanAgent) FindMove(node *tree.DecisionNode) (int, error) {
	prompt := fmt.Sprintf(ColumnPrompt, node.Board().Rules().Width-1)
	for {
		answer, err := a.prompter.Ask(prompt)
		if err != nil {
			return -1, err
		}
		column, err := strconv.Atoi(answer)
		if err != nil {
			a.prompter.Say(NotANumberMessage)
			continue
		}
		return column, nil
	}
}
