// Package console implements the verifier prompt on a plain terminal.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/plurklab/plurk-cli/internal/core/domain"
	"github.com/plurklab/plurk-cli/internal/core/ports/driven"
)

// Ensure Prompt implements the interface.
var _ driven.VerifierPrompt = (*Prompt)(nil)

// Prompt reads the OAuth verification code from an interactive terminal.
// The user opens the authorization URL in a browser, approves the app, and
// types the code Plurk displays back into the prompt.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompt creates a console prompt reading from in and writing to out.
// Pass os.Stdin and os.Stdout for interactive use.
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewReader(in), out: out}
}

// Verify prints the authorization URL and loops until the user confirms the
// code they entered. Empty input re-prompts. Reads run in a goroutine so a
// cancelled ctx interrupts the wait.
func (p *Prompt) Verify(ctx context.Context, authorizationURL string) (string, error) {
	fmt.Fprintf(p.out, "Open the following URL and authorize the app:\n\n  %s\n\n", authorizationURL)

	for {
		code, err := p.readLine(ctx, "Enter the verification code: ")
		if err != nil {
			return "", err
		}
		if code == "" {
			continue
		}

		answer, err := p.readLine(ctx, fmt.Sprintf("Use %q? [y/N]: ", code))
		if err != nil {
			return "", err
		}
		if answer == "y" || answer == "Y" {
			return code, nil
		}
	}
}

func (p *Prompt) readLine(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	type result struct {
		line string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		ch <- result{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("verification prompt: %w", ctx.Err())
	case r := <-ch:
		if r.err != nil && r.line == "" {
			if r.err == io.EOF {
				return "", fmt.Errorf("verification prompt: %w: input closed", domain.ErrAuthorization)
			}
			return "", fmt.Errorf("verification prompt: %w", r.err)
		}
		return strings.TrimSpace(r.line), nil
	}
}
