package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptadmin/internal/models"
)

func profileFixture() []models.UserPrompt {
	return []models.UserPrompt{
		{ID: 1, Title: "Daily standup", Category: "Summarization", PromptContent: "Summarize my notes", IsFavorite: true, UsageCount: 4},
		{ID: 2, Title: "Bug report", Category: "Extraction", PromptContent: "Extract the stack trace"},
	}
}

func TestProfile_ToggleFavoriteRefetches(t *testing.T) {
	app, f := newTestApp(t)
	f.userPrompts.prompts = profileFixture()
	captureOutput(t)
	scriptInput(t, "fav 2", "back")

	require.NoError(t, app.Profile(context.Background()))

	assert.Equal(t, 1, f.userPrompts.favoriteCalls)
	assert.Equal(t, 2, f.userPrompts.listCalls)
}

func TestProfile_FavoritesTabUsesItsOwnEndpoint(t *testing.T) {
	app, f := newTestApp(t)
	f.userPrompts.prompts = profileFixture()
	captureOutput(t)
	scriptInput(t, "tab favorites", "back")

	require.NoError(t, app.Profile(context.Background()))

	// One list call for the initial tab; the favorites tab fetches through
	// ListFavorites, not List.
	assert.Equal(t, 1, f.userPrompts.listCalls)
	rendered := f.out.String()
	assert.Contains(t, rendered, "[favorites]")
	assert.Contains(t, rendered, "1 of 1 prompts shown")
}

func TestProfile_UsePrintsContentAndRefetches(t *testing.T) {
	app, f := newTestApp(t)
	f.userPrompts.prompts = profileFixture()
	out := captureOutput(t)
	scriptInput(t, "use 1", "back")

	require.NoError(t, app.Profile(context.Background()))

	assert.Equal(t, 1, f.userPrompts.incrementCalls)
	assert.Equal(t, 2, f.userPrompts.listCalls)
	assert.Contains(t, out.String(), "Summarize my notes")
}

func TestProfile_CreateSubmitsAndRefetches(t *testing.T) {
	app, f := newTestApp(t)
	f.userPrompts.prompts = profileFixture()
	captureOutput(t)
	// title, content, category choice
	scriptInput(t, "create", "New prompt", "Body text", "Classification", "back")

	require.NoError(t, app.Profile(context.Background()))

	assert.Equal(t, 1, f.userPrompts.createCalls)
	assert.Equal(t, 2, f.userPrompts.listCalls)
}

func TestProfile_DeleteConfirmed(t *testing.T) {
	app, f := newTestApp(t)
	f.userPrompts.prompts = profileFixture()
	captureOutput(t)
	scriptInput(t, "delete 2", "yes", "back")

	require.NoError(t, app.Profile(context.Background()))

	assert.Equal(t, 1, f.userPrompts.deleteCalls)
}

func TestProfile_EmptyStateDistinguishesFilters(t *testing.T) {
	t.Run("no prompts at all", func(t *testing.T) {
		app, f := newTestApp(t)
		f.userPrompts.prompts = nil
		out := captureOutput(t)
		scriptInput(t, "back")

		require.NoError(t, app.Profile(context.Background()))
		assert.Contains(t, out.String(), "You have no prompts yet.")
	})

	t.Run("prompts filtered away", func(t *testing.T) {
		app, f := newTestApp(t)
		f.userPrompts.prompts = profileFixture()
		out := captureOutput(t)
		scriptInput(t, "search zzz", "back")

		require.NoError(t, app.Profile(context.Background()))
		assert.Contains(t, out.String(), "No prompts match the current filters.")
	})
}
