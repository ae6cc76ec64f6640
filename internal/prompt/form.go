package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/theirongolddev/fincalc/internal/model"

	"github.com/charmbracelet/huh"
)

// Form prompts with interactive huh forms. It needs a real terminal unless
// Accessible is set, in which case huh falls back to plain line prompts.
type Form struct {
	Theme      *huh.Theme
	Accessible bool
	In         io.Reader // nil means stdin
	Out        io.Writer // nil means stdout
}

// NewForm returns a form prompter using the Charm theme.
func NewForm() *Form {
	return &Form{Theme: huh.ThemeCharm()}
}

func (f *Form) run(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithAccessible(f.Accessible)
	if f.Theme != nil {
		form = form.WithTheme(f.Theme)
	}
	if f.In != nil {
		form = form.WithInput(f.In)
	}
	if f.Out != nil {
		form = form.WithOutput(f.Out)
	}
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrInputClosed
		}
		return fmt.Errorf("running prompt: %w", err)
	}
	return nil
}

// Name asks for the business name.
func (f *Form) Name() (string, error) {
	var name string
	err := f.run(huh.NewInput().
		Title("Business name").
		Value(&name))
	return strings.TrimSpace(name), err
}

// Category asks the user to pick one of categories.
func (f *Form) Category(categories []model.Category) (model.Category, error) {
	if len(categories) == 0 {
		return "", errors.New("no categories to choose from")
	}
	choice := categories[0]
	err := f.run(huh.NewSelect[model.Category]().
		Title("Select business type").
		Options(categoryOptions(categories)...).
		Value(&choice))
	return choice, err
}

// Income asks for one income figure; the field rejects non-integers inline.
func (f *Form) Income(field model.IncomeField) (int64, error) {
	var answer string
	err := f.run(huh.NewInput().
		Title(fmt.Sprintf("%s income", capitalize(field.String()))).
		Validate(validateInteger).
		Value(&answer))
	if err != nil {
		return 0, err
	}
	return ParseInteger(answer)
}

func categoryOptions(categories []model.Category) []huh.Option[model.Category] {
	opts := make([]huh.Option[model.Category], len(categories))
	for i, c := range categories {
		opts[i] = huh.NewOption(string(c), c)
	}
	return opts
}

func validateInteger(s string) error {
	if _, err := ParseInteger(s); err != nil {
		return errors.New("please, enter integer value")
	}
	return nil
}
