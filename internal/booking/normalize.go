package booking

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var nonDigitRe = regexp.MustCompile(`[^0-9]`)

// CleanPhone strips every character that is not a decimal digit. Separators
// like spaces, "+" and "-" in user input disappear; an empty or digit-free
// input yields the empty string.
func CleanPhone(raw string) string {
	return nonDigitRe.ReplaceAllString(raw, "")
}

// ServiceSelection accepts the booking form's service field, which clients
// send either as a single string or as an ordered array of strings. It is
// resolved into Values once at the JSON boundary so nothing downstream
// branches on the wire shape.
type ServiceSelection struct {
	Values []string
}

func (s *ServiceSelection) UnmarshalJSON(b []byte) error {
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		s.Values = []string{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err == nil {
		s.Values = many
		return nil
	}
	return fmt.Errorf("service must be a string or an array of strings")
}

func (s ServiceSelection) Empty() bool {
	return len(s.Values) == 0
}

// JoinServices flattens a validated selection into the stored text form:
// elements joined with ", ".
func JoinServices(values []string) string {
	return strings.TrimSpace(strings.Join(values, ", "))
}
