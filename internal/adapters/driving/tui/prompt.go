// Package tui implements the verifier prompt as a small bubbletea program.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plurklab/plurk-cli/internal/core/domain"
	"github.com/plurklab/plurk-cli/internal/core/ports/driven"
)

// Ensure Prompt implements the interface.
var _ driven.VerifierPrompt = (*Prompt)(nil)

// Prompt runs a full-screen bubbletea prompt for the OAuth verification
// code. It is the interactive alternative to the console prompt.
type Prompt struct {
	// newProgram is swappable so tests can run the model without a TTY.
	newProgram func(tea.Model, ...tea.ProgramOption) *tea.Program
}

// NewPrompt creates a TUI verifier prompt.
func NewPrompt() *Prompt {
	return &Prompt{newProgram: tea.NewProgram}
}

// Verify presents the authorization URL and an input field, returning the
// code the user submits. Esc or ctrl+c cancels the flow.
func (p *Prompt) Verify(ctx context.Context, authorizationURL string) (string, error) {
	program := p.newProgram(newModel(authorizationURL), tea.WithContext(ctx))

	final, err := program.Run()
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("verification prompt: %w", ctx.Err())
		}
		return "", fmt.Errorf("verification prompt: %w", err)
	}

	m, ok := final.(model)
	if !ok || m.cancelled {
		return "", fmt.Errorf("verification prompt: %w: cancelled by user", domain.ErrAuthorization)
	}
	return m.code, nil
}
