// Package template renders Dockerfiles by placeholder substitution and CI
// stanzas with Go text/template.
package template

import (
	"text/template"
)

// FuncMap returns the custom template function map used by CI stanza templates.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"boolWord": boolWord,
	}
}

// boolWord spells a bool as "True" or "False", the form the CI job scripts
// compare ISPARENT against.
func boolWord(b bool) string {
	if b {
		return "True"
	}

	return "False"
}
