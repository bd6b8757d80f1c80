// Package terminal implements ports.Prompter over the controlling
// terminal, with hidden input for credential entry.
package terminal

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/aretw0/dockweave/pkg/domain"
)

// Prompter reads credential values interactively. Input must be a real
// terminal: in non-interactive environments (pipes, CI) prompting fails
// with *domain.CredentialUnavailableError rather than blocking or
// echoing secrets.
type Prompter struct {
	in  *os.File
	out io.Writer
}

// NewPrompter creates a Prompter. Nil arguments default to stdin and
// stderr (stderr so prompts never mix into redirected stdout).
func NewPrompter(in *os.File, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}
	return &Prompter{in: in, out: out}
}

// Prompt asks for the value of one secret key with echo disabled.
func (p *Prompter) Prompt(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fd := int(p.in.Fd())
	if !term.IsTerminal(fd) {
		return nil, &domain.CredentialUnavailableError{Key: key, Reason: "standard input is not a terminal"}
	}

	fmt.Fprintf(p.out, "Value for ${%s} (input hidden): ", key)
	value, err := term.ReadPassword(fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return nil, &domain.CredentialUnavailableError{Key: key, Reason: err.Error()}
	}
	if len(value) == 0 {
		return nil, &domain.CredentialUnavailableError{Key: key, Reason: "empty value entered"}
	}
	return value, nil
}
