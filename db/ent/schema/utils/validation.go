package utils

import "errors"

// DigitsValidator accepts empty strings (unresolved identifiers) and
// otherwise requires ASCII digits only.
func DigitsValidator() func(string) error {
	return func(s string) error {
		for _, r := range s {
			if r < '0' || r > '9' {
				return errors.New("validation failed")
			}
		}
		return nil
	}
}
