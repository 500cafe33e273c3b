package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plurklab/plurk-cli/internal/core/domain"
)

func TestPrompt_Verify_ConfirmedCode(t *testing.T) {
	var out bytes.Buffer
	prompt := NewPrompt(strings.NewReader("abc123\ny\n"), &out)

	code, err := prompt.Verify(context.Background(), "https://www.plurk.com/OAuth/authorize?oauth_token=T1")

	require.NoError(t, err)
	assert.Equal(t, "abc123", code)
	assert.Contains(t, out.String(), "https://www.plurk.com/OAuth/authorize?oauth_token=T1")
}

func TestPrompt_Verify_RejectedCodeReprompts(t *testing.T) {
	var out bytes.Buffer
	prompt := NewPrompt(strings.NewReader("wrong\nn\nright\ny\n"), &out)

	code, err := prompt.Verify(context.Background(), "https://example.test/authorize")

	require.NoError(t, err)
	assert.Equal(t, "right", code)
}

func TestPrompt_Verify_SkipsEmptyInput(t *testing.T) {
	var out bytes.Buffer
	prompt := NewPrompt(strings.NewReader("\n\ncode\ny\n"), &out)

	code, err := prompt.Verify(context.Background(), "https://example.test/authorize")

	require.NoError(t, err)
	assert.Equal(t, "code", code)
}

func TestPrompt_Verify_InputClosed(t *testing.T) {
	var out bytes.Buffer
	prompt := NewPrompt(strings.NewReader(""), &out)

	_, err := prompt.Verify(context.Background(), "https://example.test/authorize")

	assert.ErrorIs(t, err, domain.ErrAuthorization)
}

func TestPrompt_Verify_ContextCancelled(t *testing.T) {
	var out bytes.Buffer
	// A pipe that never delivers data keeps the read blocked.
	r, w := io.Pipe()
	t.Cleanup(func() { _ = w.Close() })
	prompt := NewPrompt(r, &out)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := prompt.Verify(ctx, "https://example.test/authorize")
		errCh <- err
	}()
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Verify did not return after cancel")
	}
}
