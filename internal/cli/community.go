package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"promptadmin/internal/models"
	"promptadmin/internal/session"
	"promptadmin/internal/view"
)

// Community is the shared-prompts screen. The collection is scoped by tab
// (all, popular, most-used, mine, each its own endpoint) and then filtered
// client-side by category and search term. Likes and usage counts change
// only after the mutation's round trip and the follow-up re-fetch; there is
// no optimistic update.
//
// Screen commands: tab <all|popular|most-used|mine>, category <name|all>,
// search <term>, show <id>, like <id>, use <id>, create, delete <id>,
// refresh, back.
func (a *App) Community(ctx context.Context) error {
	identity, err := a.session.CurrentUser(ctx)
	if err != nil {
		return err
	}

	tab := "all"
	col := view.NewCollection(a.sharedFetch(tab))
	category := models.CategoryAll
	var search string

	printlnFn("Loading community prompts...")
	if err := col.Refresh(ctx); err != nil && a.renderError(ctx, err) {
		return nil
	}

	for {
		a.renderSharedPrompts(col, tab, category, search)

		line, err := getSimpleText(a.reader,
			"community: tab <all|popular|most-used|mine> | category <name|all> | search <term> | show <id> | like <id> | use <id> | create | delete <id> | refresh | back",
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
			if len(args) == 0 {
				printlnFn("Usage: tab <all|popular|most-used|mine>")
				continue
			}
			next := args[0]
			if next != "all" && next != "popular" && next != "most-used" && next != "mine" {
				printlnFn("Unknown tab:", next)
				continue
			}
			tab = next
			col.SetFetch(a.sharedFetch(tab))
			printlnFn("Loading community prompts...")
			if err := col.Refresh(ctx); err != nil && a.renderError(ctx, err) {
				return nil
			}

		case "category":
			category = pickCategory(args)

		case "search":
			search = strings.Join(args, " ")

		case "show":
			if p, ok := findSharedPrompt(col.Items(), args); ok {
				printSharedPrompt(a, p)
			}

		case "like":
			if p, ok := findSharedPrompt(col.Items(), args); ok {
				if _, err := a.shared.ToggleLike(ctx, p.ID); err != nil {
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
			if p, ok := findSharedPrompt(col.Items(), args); ok {
				if _, err := a.shared.IncrementUsage(ctx, p.ID); err != nil {
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
			if a.createSharedPrompt(ctx, col) {
				return nil
			}

		case "delete":
			if a.deleteSharedPrompt(ctx, col, identity, args) {
				return nil
			}

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// sharedFetch maps a tab name to its endpoint.
func (a *App) sharedFetch(tab string) view.FetchFunc[models.SharedPrompt] {
	switch tab {
	case "popular":
		return a.shared.Popular
	case "most-used":
		return a.shared.MostUsed
	case "mine":
		return a.shared.Mine
	default:
		return a.shared.List
	}
}

func (a *App) renderSharedPrompts(col *view.Collection[models.SharedPrompt], tab string, category models.Category, search string) {
	if !col.Loaded() {
		printlnFn("Community prompts are not loaded. Try 'refresh'.")
		return
	}

	filtered := view.Filter(col.Items(), func(p models.SharedPrompt) bool {
		if category != models.CategoryAll && p.Category != category {
			return false
		}
		return view.MatchText(search, p.Title, p.Description, p.PromptContent)
	})

	fmt.Fprintf(a.out, "[%s] category=%s\n", tab, category)
	if len(filtered) == 0 {
		if len(col.Items()) == 0 {
			printlnFn("No community prompts yet.")
		} else {
			printlnFn("No prompts match the current filters.")
		}
		return
	}

	for _, p := range filtered {
		author := ""
		if p.Author != nil {
			author = " by " + p.Author.Email
		}
		liked := " "
		if p.HasLiked {
			liked = "*"
		}
		fmt.Fprintf(a.out, "#%d [%s] %s%s (%s%d likes, %d uses)\n",
			p.ID, p.Category, p.Title, author, liked, p.LikesCount, p.UsageCount)
	}
	fmt.Fprintf(a.out, "%d of %d prompts shown\n", len(filtered), len(col.Items()))
}

func printSharedPrompt(a *App, p models.SharedPrompt) {
	printlnFn("--- " + p.Title + " ---")
	if p.Description != "" {
		printlnFn(p.Description)
	}
	printlnFn(p.PromptContent)
}

func (a *App) createSharedPrompt(ctx context.Context, col *view.Collection[models.SharedPrompt]) (loggedOut bool) {
	form := &Form{
		Title: "Share a prompt",
		Fields: []*Field{
			{Name: "title", Label: "Title", Required: true},
			{Name: "content", Label: "Prompt text", Required: true, Multiline: true},
			{Name: "category", Label: "Category", Options: models.Categories(), Required: true},
			{Name: "description", Label: "Description (optional)"},
		},
	}

	submitted, err := a.runForm(ctx, form, func(ctx context.Context, values map[string]string) error {
		_, err := a.shared.Create(ctx, models.CreateSharedPromptRequest{
			Title:         values["title"],
			PromptContent: values["content"],
			Category:      values["category"],
			Description:   values["description"],
		})
		return err
	})
	if err != nil {
		return false
	}
	if submitted {
		printlnFn("Prompt shared.")
		if rerr := col.Refresh(ctx); rerr != nil && a.renderError(ctx, rerr) {
			return true
		}
	}
	return false
}

// deleteSharedPrompt deletes one of the viewer's own prompts. Ownership is
// checked client-side against the token subject; the server re-checks.
func (a *App) deleteSharedPrompt(ctx context.Context, col *view.Collection[models.SharedPrompt], identity *session.Identity, args []string) (loggedOut bool) {
	p, ok := findSharedPrompt(col.Items(), args)
	if !ok {
		return false
	}

	if identity == nil || p.Author == nil || p.Author.Email != identity.Subject {
		printlnFn("You can only delete your own prompts.")
		return false
	}

	if !a.confirm("Delete prompt \"" + p.Title + "\"?") {
		printlnFn("Cancelled.")
		return false
	}

	if err := a.shared.Delete(ctx, p.ID); err != nil {
		return a.renderError(ctx, err)
	}
	printlnFn("Prompt deleted.")
	if err := col.Refresh(ctx); err != nil && a.renderError(ctx, err) {
		return true
	}
	return false
}

func findSharedPrompt(prompts []models.SharedPrompt, args []string) (models.SharedPrompt, bool) {
	if len(args) == 0 {
		printlnFn("Usage: <command> <id>")
		return models.SharedPrompt{}, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Invalid id:", args[0])
		return models.SharedPrompt{}, false
	}
	for _, p := range prompts {
		if p.ID == id {
			return p, true
		}
	}
	printlnFn("No prompt with id", args[0])
	return models.SharedPrompt{}, false
}

// pickCategory normalizes a category argument; anything unrecognized (or
// "all") clears the filter.
func pickCategory(args []string) models.Category {
	if len(args) == 0 {
		return models.CategoryAll
	}
	arg := strings.Join(args, " ")
	for _, c := range models.Categories() {
		if strings.EqualFold(arg, c) {
			return c
		}
	}
	return models.CategoryAll
}
