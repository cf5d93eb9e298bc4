package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssistant_ImproveThenAlternative(t *testing.T) {
	app, f := newTestApp(t)
	f.ai.configured = true
	out := captureOutput(t)
	// improve asks for prompt text; alt reuses the last prompt and improvement.
	scriptInput(t, "improve", "my prompt", "alt", "back")

	require.NoError(t, app.Assistant(context.Background()))

	assert.Equal(t, []string{
		"status",
		"improve:my prompt",
		"alt:my prompt/improved text",
	}, f.ai.calls)
	assert.Contains(t, out.String(), "improved text")
	assert.Contains(t, out.String(), "alternative text")
}

func TestAssistant_AltWithoutImproveIsRejected(t *testing.T) {
	app, f := newTestApp(t)
	out := captureOutput(t)
	scriptInput(t, "alt", "back")

	require.NoError(t, app.Assistant(context.Background()))

	assert.Equal(t, []string{"status"}, f.ai.calls)
	assert.Contains(t, out.String(), "Run 'improve' first")
}

func TestAssistant_EmptyPromptKeepsPrevious(t *testing.T) {
	app, f := newTestApp(t)
	captureOutput(t)
	// First suggest enters a prompt; the second leaves it empty and reuses it.
	scriptInput(t, "suggest", "keep me", "suggest", "", "back")

	require.NoError(t, app.Assistant(context.Background()))

	assert.Equal(t, []string{
		"status",
		"suggestions:keep me",
		"suggestions:keep me",
	}, f.ai.calls)
}

func TestAssistant_TestSendsPrompt(t *testing.T) {
	app, f := newTestApp(t)
	out := captureOutput(t)
	scriptInput(t, "test", "run this", "back")

	require.NoError(t, app.Assistant(context.Background()))

	assert.Contains(t, f.ai.calls, "test:run this")
	assert.Contains(t, out.String(), "model output")
}

func TestAssistant_StatusLine(t *testing.T) {
	t.Run("configured", func(t *testing.T) {
		app, f := newTestApp(t)
		f.ai.configured = true
		out := captureOutput(t)
		scriptInput(t, "back")

		require.NoError(t, app.Assistant(context.Background()))
		assert.Contains(t, out.String(), "Assistant backend: configured.")
	})

	t.Run("not configured", func(t *testing.T) {
		app, _ := newTestApp(t)
		out := captureOutput(t)
		scriptInput(t, "back")

		require.NoError(t, app.Assistant(context.Background()))
		assert.Contains(t, out.String(), "not configured")
	})
}
