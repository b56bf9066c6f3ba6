package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/astra-hd/onboard/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

// promptConfirmer asks the operator on the terminal. Anything but an
// explicit yes declines.
type promptConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func newPromptConfirmer(in io.Reader, out io.Writer) interfaces.Confirmer {
	return &promptConfirmer{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm implements interfaces.Confirmer
func (c *promptConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)

	line, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, goerr.Wrap(err, "failed to read operator decision")
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// autoConfirmer always proceeds, used with --yes for unattended runs
type autoConfirmer struct{}

// Confirm implements interfaces.Confirmer
func (autoConfirmer) Confirm(context.Context, string) (bool, error) {
	return true, nil
}
