package utils

import "fmt"

// EnumValidator returns an ent field validator restricting values to the
// given set of stable strings.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("value %q not in allowed set", s)
	}
}
