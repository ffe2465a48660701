package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"ListMender/internal/domain"
	"ListMender/internal/ports"
)

const actionPrompt = "Type 'Y' to proceed with the proposed change. " +
	"Type 'S' to skip the entry. " +
	"Type 'F' to just add the finish date. " +
	"Type 'X' to exit:\n<<< "

const acknowledgePrompt = "Type anything in to continue:\n<<< "

// DecisionSource reads review decisions line by line, re-prompting until it
// understands the input. Reading blocks the session; that is the contract.
type DecisionSource struct {
	in  *bufio.Scanner
	out io.Writer
}

var _ ports.DecisionSource = (*DecisionSource)(nil)

// NewDecisionSource wires the input stream (usually stdin) and the stream
// the prompts are written to.
func NewDecisionSource(in io.Reader, out io.Writer) *DecisionSource {
	return &DecisionSource{in: bufio.NewScanner(in), out: out}
}

// NextAction prompts until one of Y/S/F/X (case-insensitive) is entered.
func (d *DecisionSource) NextAction(ctx context.Context) (domain.ReviewAction, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		fmt.Fprint(d.out, actionPrompt)
		line, err := d.readLine()
		if err != nil {
			return "", err
		}

		switch strings.ToUpper(strings.TrimSpace(line)) {
		case "Y":
			return domain.ActionProceed, nil
		case "S":
			return domain.ActionSkipEntry, nil
		case "F":
			return domain.ActionFinishOnly, nil
		case "X":
			return domain.ActionAbort, nil
		}
		fmt.Fprintf(d.out, "<<< Did not understand input %q. Please try again\n", strings.TrimSpace(line))
	}
}

// Acknowledge accepts any input as the acknowledgment of a flagged entry.
func (d *DecisionSource) Acknowledge(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fmt.Fprint(d.out, acknowledgePrompt)
	_, err := d.readLine()
	return err
}

func (d *DecisionSource) readLine() (string, error) {
	if !d.in.Scan() {
		if err := d.in.Err(); err != nil {
			return "", fmt.Errorf("read decision input: %w", err)
		}
		return "", fmt.Errorf("decision input closed: %w", io.EOF)
	}
	return d.in.Text(), nil
}
