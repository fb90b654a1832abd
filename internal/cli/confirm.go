package cli

import "github.com/charmbracelet/huh"

// confirm asks the user to approve a destructive operation. Irreversible
// actions never run without it unless --force is given.
func confirm(title string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}
