package cli

import (
	"context"
	"strings"
)

// Assistant is the AI helper screen. Every command sends the prompt text to
// the backend assistant endpoints; the last entered prompt and the last
// improvement are kept so "alt" can ask for an alternative without retyping.
//
// Screen commands: suggest, test, improve, alt, status, back.
func (a *App) Assistant(ctx context.Context) error {
	var lastPrompt, lastImprovement string

	printlnFn("=== AI assistant ===")
	if a.assistantStatus(ctx) {
		return nil
	}

	for {
		line, err := getSimpleText(a.reader,
			"assistant: suggest | test | improve | alt | status | back", a.out)
		if err != nil {
			return nil
		}
		cmd := strings.TrimSpace(line)

		switch cmd {
		case "", "help":
			continue

		case "back":
			return nil

		case "status":
			if a.assistantStatus(ctx) {
				return nil
			}

		case "suggest":
			prompt, err := a.readPromptText(lastPrompt)
			if err != nil {
				return nil
			}
			lastPrompt = prompt
			result, rerr := a.ai.Suggestions(ctx, prompt)
			if rerr != nil {
				if a.renderError(ctx, rerr) {
					return nil
				}
				continue
			}
			printlnFn("--- suggestions ---")
			printlnFn(result)

		case "test":
			prompt, err := a.readPromptText(lastPrompt)
			if err != nil {
				return nil
			}
			lastPrompt = prompt
			result, rerr := a.ai.Test(ctx, prompt)
			if rerr != nil {
				if a.renderError(ctx, rerr) {
					return nil
				}
				continue
			}
			printlnFn("--- model response ---")
			printlnFn(result)

		case "improve":
			prompt, err := a.readPromptText(lastPrompt)
			if err != nil {
				return nil
			}
			lastPrompt = prompt
			result, rerr := a.ai.Improve(ctx, prompt)
			if rerr != nil {
				if a.renderError(ctx, rerr) {
					return nil
				}
				continue
			}
			lastImprovement = result
			printlnFn("--- improved prompt ---")
			printlnFn(result)

		case "alt":
			if lastPrompt == "" || lastImprovement == "" {
				printlnFn("Run 'improve' first; 'alt' builds on its result.")
				continue
			}
			result, rerr := a.ai.GenerateAlternative(ctx, lastPrompt, lastImprovement)
			if rerr != nil {
				if a.renderError(ctx, rerr) {
					return nil
				}
				continue
			}
			lastImprovement = result
			printlnFn("--- alternative ---")
			printlnFn(result)

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// readPromptText collects the working prompt. Entering nothing keeps the
// previous one, so consecutive actions can operate on the same text.
func (a *App) readPromptText(last string) (string, error) {
	label := "Prompt text"
	if last != "" {
		label = "Prompt text (empty keeps the previous one)"
	}
	text, err := getMultiline(a.reader, label, a.out)
	if err != nil {
		return "", err
	}
	if text == "" {
		return last, nil
	}
	return text, nil
}

func (a *App) assistantStatus(ctx context.Context) (loggedOut bool) {
	configured, err := a.ai.Status(ctx)
	if err != nil {
		return a.renderError(ctx, err)
	}
	if configured {
		printlnFn("Assistant backend: configured.")
	} else {
		printlnFn("Assistant backend: not configured; responses are canned fallbacks.")
	}
	return false
}
