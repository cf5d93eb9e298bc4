package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"promptadmin/internal/models"
	"promptadmin/internal/view"
)

// Profile is the personal-prompts screen: the viewer's own prompts plus a
// favorites tab. Favorite and usage counters follow the same
// mutate-then-refetch pattern as the community screen.
//
// Screen commands: tab <all|favorites>, category <name|all>, search <term>,
// show <id>, fav <id>, use <id>, create, delete <id>, refresh, back.
func (a *App) Profile(ctx context.Context) error {
	tab := "all"
	col := view.NewCollection(a.userPromptFetch(tab))
	category := models.CategoryAll
	var search string

	printlnFn("Loading your prompts...")
	if err := col.Refresh(ctx); err != nil && a.renderError(ctx, err) {
		return nil
	}

	for {
		a.renderUserPrompts(col, tab, category, search)

		line, err := getSimpleText(a.reader,
			"profile: tab <all|favorites> | category <name|all> | search <term> | show <id> | fav <id> | use <id> | create | delete <id> | refresh | back",
			a.out)
		if err != nil {
			return nil
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "back":
			return nil

		case "refresh":
			if err := col.Refresh(ctx); err != nil && a.renderError(ctx, err) {
				return nil
			}

		case "tab":
			if len(args) == 0 || (args[0] != "all" && args[0] != "favorites") {
				printlnFn("Usage: tab <all|favorites>")
				continue
			}
			tab = args[0]
			col.SetFetch(a.userPromptFetch(tab))
			printlnFn("Loading your prompts...")
			if err := col.Refresh(ctx); err != nil && a.renderError(ctx, err) {
				return nil
			}

		case "category":
			category = pickCategory(args)

		case "search":
			search = strings.Join(args, " ")

		case "show":
			if p, ok := findUserPrompt(col.Items(), args); ok {
				printlnFn("--- " + p.Title + " ---")
				printlnFn(p.PromptContent)
			}

		case "fav":
			if p, ok := findUserPrompt(col.Items(), args); ok {
				if _, err := a.userPrompts.ToggleFavorite(ctx, p.ID); err != nil {
					if a.renderError(ctx, err) {
						return nil
					}
					continue
				}
				if err := col.Refresh(ctx); err != nil && a.renderError(ctx, err) {
					return nil
				}
			}

		case "use":
			if p, ok := findUserPrompt(col.Items(), args); ok {
				if _, err := a.userPrompts.IncrementUsage(ctx, p.ID); err != nil {
					if a.renderError(ctx, err) {
						return nil
					}
					continue
				}
				printlnFn("--- prompt ---")
				printlnFn(p.PromptContent)
				if err := col.Refresh(ctx); err != nil && a.renderError(ctx, err) {
					return nil
				}
			}

		case "create":
			if a.createUserPrompt(ctx, col) {
				return nil
			}

		case "delete":
			if a.deleteUserPrompt(ctx, col, args) {
				return nil
			}

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func (a *App) userPromptFetch(tab string) view.FetchFunc[models.UserPrompt] {
	if tab == "favorites" {
		return a.userPrompts.ListFavorites
	}
	return a.userPrompts.List
}

func (a *App) renderUserPrompts(col *view.Collection[models.UserPrompt], tab string, category models.Category, search string) {
	if !col.Loaded() {
		printlnFn("Your prompts are not loaded. Try 'refresh'.")
		return
	}

	filtered := view.Filter(col.Items(), func(p models.UserPrompt) bool {
		if category != models.CategoryAll && p.Category != category {
			return false
		}
		return view.MatchText(search, p.Title, p.PromptContent)
	})

	fmt.Fprintf(a.out, "[%s] category=%s\n", tab, category)
	if len(filtered) == 0 {
		if len(col.Items()) == 0 {
			printlnFn("You have no prompts yet. Try 'create'.")
		} else {
			printlnFn("No prompts match the current filters.")
		}
		return
	}

	for _, p := range filtered {
		fav := " "
		if p.IsFavorite {
			fav = "*"
		}
		fmt.Fprintf(a.out, "#%d %s[%s] %s (%d uses)\n", p.ID, fav, p.Category, p.Title, p.UsageCount)
	}
	fmt.Fprintf(a.out, "%d of %d prompts shown\n", len(filtered), len(col.Items()))
}

func (a *App) createUserPrompt(ctx context.Context, col *view.Collection[models.UserPrompt]) (loggedOut bool) {
	form := &Form{
		Title: "New prompt",
		Fields: []*Field{
			{Name: "title", Label: "Title", Required: true},
			{Name: "content", Label: "Prompt text", Required: true, Multiline: true},
			{Name: "category", Label: "Category", Options: models.Categories(), Required: true},
		},
	}

	submitted, err := a.runForm(ctx, form, func(ctx context.Context, values map[string]string) error {
		_, err := a.userPrompts.Create(ctx, models.CreateUserPromptRequest{
			Title:         values["title"],
			PromptContent: values["content"],
			Category:      values["category"],
		})
		return err
	})
	if err != nil {
		return false
	}
	if submitted {
		printlnFn("Prompt saved.")
		if rerr := col.Refresh(ctx); rerr != nil && a.renderError(ctx, rerr) {
			return true
		}
	}
	return false
}

func (a *App) deleteUserPrompt(ctx context.Context, col *view.Collection[models.UserPrompt], args []string) (loggedOut bool) {
	p, ok := findUserPrompt(col.Items(), args)
	if !ok {
		return false
	}

	if !a.confirm("Delete prompt \"" + p.Title + "\"?") {
		printlnFn("Cancelled.")
		return false
	}

	if err := a.userPrompts.Delete(ctx, p.ID); err != nil {
		return a.renderError(ctx, err)
	}
	printlnFn("Prompt deleted.")
	if err := col.Refresh(ctx); err != nil && a.renderError(ctx, err) {
		return true
	}
	return false
}

func findUserPrompt(prompts []models.UserPrompt, args []string) (models.UserPrompt, bool) {
	if len(args) == 0 {
		printlnFn("Usage: <command> <id>")
		return models.UserPrompt{}, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Invalid id:", args[0])
		return models.UserPrompt{}, false
	}
	for _, p := range prompts {
		if p.ID == id {
			return p, true
		}
	}
	printlnFn("No prompt with id", args[0])
	return models.UserPrompt{}, false
}
