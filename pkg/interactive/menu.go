// Package interactive provides terminal user interface components
package interactive

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// MenuOption represents a menu item with its associated action
type MenuOption struct {
	Name        string
	Description string
	Action      func() error
}

// Choice is one selectable entry of a multi-select prompt.
type Choice struct {
	Value string
	Label string
}

var (
	// ErrExit is returned when the user chooses to exit
	ErrExit = errors.New("exit")
	// ErrInvalidSelection is returned when an invalid menu option is selected
	ErrInvalidSelection = errors.New("invalid selection")
)

const exitChoice = "Exit"

// ShowMainMenu displays the main menu and handles user selection
func ShowMainMenu(options []MenuOption) error {
	choices, optionMap := menuChoices(options)

	var selected string
	prompt := &survey.Select{
		Message: "What would you like to do?",
		Options: choices,
	}

	if err := survey.AskOne(prompt, &selected); err != nil {
		return ErrExit
	}

	if selected == exitChoice {
		return ErrExit
	}

	if option, ok := optionMap[selected]; ok {
		return option.Action()
	}

	return ErrInvalidSelection
}

func menuChoices(options []MenuOption) ([]string, map[string]MenuOption) {
	choices := make([]string, 0, len(options)+1)
	optionMap := make(map[string]MenuOption, len(options))

	for _, opt := range options {
		choice := fmt.Sprintf("%s - %s", opt.Name, opt.Description)
		choices = append(choices, choice)
		optionMap[choice] = opt
	}

	return append(choices, exitChoice), optionMap
}

// MultiSelect asks the user to pick any number of choices, all checked by
// default, and returns the selected values in choice order.
func MultiSelect(message string, choices []Choice) ([]string, error) {
	labels, byLabel := multiSelectLabels(choices)

	var picked []string
	prompt := &survey.MultiSelect{
		Message:  message,
		Options:  labels,
		Default:  labels,
		PageSize: len(labels),
	}

	if err := survey.AskOne(prompt, &picked); err != nil {
		return nil, ErrExit
	}

	return selectedValues(picked, labels, byLabel), nil
}

func multiSelectLabels(choices []Choice) ([]string, map[string]string) {
	labels := make([]string, 0, len(choices))
	byLabel := make(map[string]string, len(choices))

	for _, c := range choices {
		label := c.Value
		if c.Label != "" {
			label = fmt.Sprintf("%s (%s)", c.Label, c.Value)
		}

		labels = append(labels, label)
		byLabel[label] = c.Value
	}

	return labels, byLabel
}

func selectedValues(picked, labels []string, byLabel map[string]string) []string {
	chosen := make(map[string]struct{}, len(picked))
	for _, p := range picked {
		chosen[p] = struct{}{}
	}

	values := make([]string, 0, len(picked))
	for _, label := range labels {
		if _, ok := chosen[label]; ok {
			values = append(values, byLabel[label])
		}
	}

	return values
}

// PauseForEnter waits for the user to press Enter
func PauseForEnter() {
	fmt.Println("\nPress Enter to continue...")
	_, _ = fmt.Scanln()
}

// Confirm asks for user confirmation
func Confirm(message string) bool {
	confirmed := false
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	_ = survey.AskOne(prompt, &confirmed)
	return confirmed
}
