package cli

import (
	"context"
	"strings"

	"promptadmin/internal/common"
)

// Field is one input of a form. Options makes it a fixed-choice select;
// Masked reads without echo; Value carries the default (create) or the
// current value (edit) and, after collection, the draft.
type Field struct {
	Name      string
	Label     string
	Required  bool
	Masked    bool
	Multiline bool
	Options   []string
	Value     string
}

// Form is a prompt-driven dialog: a local draft collected field by field,
// submitted through one callback. The draft survives a failed submission so
// the user can edit and retry.
type Form struct {
	Title  string
	Fields []*Field
}

// Values snapshots the draft by field name.
func (f *Form) Values() map[string]string {
	values := make(map[string]string, len(f.Fields))
	for _, fld := range f.Fields {
		values[fld.Name] = fld.Value
	}
	return values
}

// missingRequired lists required fields whose draft value is empty.
func (f *Form) missingRequired() []string {
	var missing []string
	for _, fld := range f.Fields {
		if fld.Required && strings.TrimSpace(fld.Value) == "" {
			missing = append(missing, fld.Name)
		}
	}
	return missing
}

var yesNo = []string{"y", "n"}

// collectForm prompts for every field, seeding each prompt with the current
// value; entering nothing keeps it. Masked fields never echo their current
// value.
func (a *App) collectForm(f *Form) error {
	printlnFn("--- " + f.Title + " ---")
	for _, fld := range f.Fields {
		switch {
		case fld.Masked:
			pw, err := getPassword(a.out)
			if err != nil {
				return err
			}
			if len(pw) > 0 {
				fld.Value = string(pw)
			}
			common.WipeByteArray(pw)

		case len(fld.Options) > 0:
			value, err := getChoice(a.reader, fld.Label, fld.Options, fld.Value, a.out)
			if err != nil {
				return err
			}
			fld.Value = value

		case fld.Multiline:
			value, err := getMultiline(a.reader, fld.Label, a.out)
			if err != nil {
				return err
			}
			if value != "" {
				fld.Value = value
			}

		default:
			prompt := fld.Label
			if fld.Value != "" {
				prompt += " [" + fld.Value + "]"
			}
			value, err := getSimpleText(a.reader, prompt, a.out)
			if err != nil {
				return err
			}
			if value != "" {
				fld.Value = value
			}
		}
	}
	return nil
}

// runForm drives the modal lifecycle: collect the draft, validate required
// fields locally (no network call goes out on a validation miss), submit,
// and on failure keep the draft and offer an edit-and-retry round. Returns
// true when a submission succeeded.
func (a *App) runForm(ctx context.Context, f *Form, submit func(ctx context.Context, values map[string]string) error) (bool, error) {
	for {
		if err := a.collectForm(f); err != nil {
			return false, err
		}

		if missing := f.missingRequired(); len(missing) > 0 {
			printlnFn("Missing required fields:", strings.Join(missing, ", "))
			answer, err := getChoice(a.reader, "Fix and continue?", yesNo, "y", a.out)
			if err != nil || answer != "y" {
				return false, err
			}
			continue
		}

		err := submit(ctx, f.Values())
		if err == nil {
			return true, nil
		}
		if a.renderError(ctx, err) {
			return false, nil
		}
		answer, cerr := getChoice(a.reader, "Edit and retry?", yesNo, "n", a.out)
		if cerr != nil || answer != "y" {
			return false, cerr
		}
	}
}

// confirm asks for an explicit "yes" before destructive actions.
func (a *App) confirm(prompt string) bool {
	answer, err := getSimpleText(a.reader, prompt+" Type 'yes' to confirm", a.out)
	return err == nil && strings.EqualFold(answer, "yes")
}
