package components

import "fmt"

// MissingRequiredOptionError aborts a command before its action runs.
type MissingRequiredOptionError struct {
	OptionName string
}

func (e *MissingRequiredOptionError) Error() string {
	return fmt.Sprintf("Mandatory option '--%s' is missing", e.OptionName)
}

// AssertRequiredOptions fails when an option marked mandatory has no value in
// the options the parser collected.
func AssertRequiredOptions(options []Option, passedOptions map[string]string) error {
	for _, option := range options {
		stringOption, ok := option.(StringOption)
		if !ok || !stringOption.isMandatory() {
			continue
		}
		if passedOptions[stringOption.Name] == "" {
			return &MissingRequiredOptionError{OptionName: stringOption.Name}
		}
	}
	return nil
}
