package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"promptadmin/internal/models"
)

// builtinExamples is the fixed prompt-engineering gallery. Indexes are part
// of the usage contract: the server keys its counters by position in this
// slice, so entries must only ever be appended.
var builtinExamples = []models.Example{
	{
		Label:    "Summarize Article",
		Prompt:   "Summarize the following article in 3 bullet points, focusing on the key findings:\n\n[paste article here]",
		Response: "• The study found that regular exercise improves cognitive function by 20%.\n• Participants who exercised 30 minutes daily showed better memory retention.\n• The effects were most pronounced in adults over 50 years old.",
	},
	{
		Label:    "Translate to French",
		Prompt:   "Translate the following English text to French, maintaining a formal tone:\n\n\"Thank you for your business. We look forward to serving you again.\"",
		Response: "\"Merci pour votre confiance. Nous nous réjouissons de vous servir à nouveau.\"",
	},
	{
		Label:    "Helpful Assistant",
		Prompt:   "You are a helpful assistant that explains complex topics simply. Explain quantum computing to a 10-year-old.",
		Response: "Imagine a magical coin that can be heads AND tails at the same time! Regular computers use coins that are either heads or tails, but quantum computers use these magical coins to solve puzzles much faster.",
	},
	{
		Label:    "Extract Entities",
		Prompt:   "Extract all person names, organizations, and locations from this text:\n\n\"Tim Cook announced that Apple will open a new office in Austin, Texas next year.\"",
		Response: "Persons: Tim Cook\nOrganizations: Apple\nLocations: Austin, Texas",
	},
	{
		Label:    "Classify Sentiment",
		Prompt:   "Classify the sentiment of this review as positive, negative, or neutral:\n\n\"The product arrived on time but the quality was disappointing.\"",
		Response: "Mixed (leaning negative) - positive aspect: timely delivery; negative aspect: poor quality.",
	},
	{
		Label:    "Creative Story",
		Prompt:   "Write the opening paragraph of a mystery novel set in a lighthouse during a storm.",
		Response: "The beam swept across churning waves as Marion climbed the spiral stairs, each step echoing against stone walls that had weathered a century of storms. But tonight was different - tonight, the light had stopped turning on its own.",
	},
	{
		Label:    "Generate Code",
		Prompt:   "Write a Python function that checks if a string is a palindrome, ignoring spaces and capitalization.",
		Response: "def is_palindrome(s):\n    cleaned = ''.join(c.lower() for c in s if c.isalnum())\n    return cleaned == cleaned[::-1]",
	},
}

// Examples is the prompt-engineering gallery screen. The content itself ships
// with the client; running an example records the run both locally (sqlite)
// and on the server, and the stats command shows the two counters side by
// side.
//
// Screen commands: list, show <n>, run <n>, stats, back.
func (a *App) Examples(ctx context.Context) error {
	a.listExamples()

	for {
		line, err := getSimpleText(a.reader,
			"examples: list | show <n> | run <n> | stats | back", a.out)
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

		case "list":
			a.listExamples()

		case "show":
			if ex, _, ok := findExample(args); ok {
				printlnFn("--- " + ex.Label + " ---")
				printlnFn("Prompt:")
				printlnFn(ex.Prompt)
			}

		case "run":
			if ex, idx, ok := findExample(args); ok {
				if a.runExample(ctx, ex, idx) {
					return nil
				}
			}

		case "stats":
			if a.exampleStats(ctx) {
				return nil
			}

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func (a *App) listExamples() {
	printlnFn("=== Prompt examples ===")
	for i, ex := range builtinExamples {
		fmt.Fprintf(a.out, "%d. %s\n", i, ex.Label)
	}
}

// runExample prints the example's prompt and canned response, then records
// the run in the local database and on the server. A local write failure is
// logged but does not block the server-side counter.
func (a *App) runExample(ctx context.Context, ex models.Example, idx int) (loggedOut bool) {
	printlnFn("--- " + ex.Label + " ---")
	printlnFn("Prompt:")
	printlnFn(ex.Prompt)
	printlnFn("Response:")
	printlnFn(ex.Response)

	if err := a.local.RecordRun(ctx, idx); err != nil {
		a.log.Warn(ctx, "recording example run locally failed", "err", err)
	}
	if err := a.usage.Increment(ctx, idx); err != nil {
		return a.renderError(ctx, err)
	}
	return false
}

// exampleStats shows the server-wide run counts next to the runs recorded on
// this machine.
func (a *App) exampleStats(ctx context.Context) (loggedOut bool) {
	remote, err := a.usage.Stats(ctx)
	if err != nil {
		return a.renderError(ctx, err)
	}
	local, err := a.local.Counts(ctx)
	if err != nil {
		a.log.Warn(ctx, "reading local example stats failed", "err", err)
		local = map[int]int64{}
	}

	indexes := make(map[int]struct{}, len(remote)+len(local))
	for idx := range remote {
		indexes[idx] = struct{}{}
	}
	for idx := range local {
		indexes[idx] = struct{}{}
	}
	if len(indexes) == 0 {
		printlnFn("No example runs recorded yet.")
		return false
	}

	ordered := make([]int, 0, len(indexes))
	for idx := range indexes {
		ordered = append(ordered, idx)
	}
	sort.Ints(ordered)

	fmt.Fprintf(a.out, "%-24s %8s %8s\n", "EXAMPLE", "TOTAL", "LOCAL")
	for _, idx := range ordered {
		label := fmt.Sprintf("example %d", idx)
		if idx >= 0 && idx < len(builtinExamples) {
			label = builtinExamples[idx].Label
		}
		fmt.Fprintf(a.out, "%-24s %8d %8d\n", label, remote[idx], local[idx])
	}
	return false
}

func findExample(args []string) (models.Example, int, bool) {
	if len(args) == 0 {
		printlnFn("Usage: show|run <n>")
		return models.Example{}, 0, false
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil || idx < 0 || idx >= len(builtinExamples) {
		printlnFn("Invalid example number:", args[0])
		return models.Example{}, 0, false
	}
	return builtinExamples[idx], idx, true
}
