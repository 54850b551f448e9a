package company

import "strings"

// Company is a name in the managed company list. Employees store the name
// itself, so renaming a company leaves existing employee records untouched.
type Company string

// Normalize trims surrounding whitespace.
func Normalize(name string) Company {
	return Company(strings.TrimSpace(name))
}

// Same compares names case-insensitively.
func (c Company) Same(other Company) bool {
	return strings.EqualFold(string(c), string(other))
}
