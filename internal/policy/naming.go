package policy

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vk/autoreg/internal/meta"
	"github.com/vk/autoreg/internal/scanerr"
)

// Separator joins a namespace and a local name.
const Separator = ":"

// LocalName derives the un-namespaced key of a candidate member. An explicit
// marker name is used verbatim and must not contain uppercase characters;
// otherwise the identifier is folded to lowercase.
func LocalName(member meta.Member) (string, error) {
	if member.HasMarker() && member.Marker.Named() {
		name := member.Marker.ExplicitName
		if hasUpper(name) {
			return "", &scanerr.InvalidLocalNameError{Name: name}
		}
		return name, nil
	}
	return cases.Lower(language.Und).String(member.Name), nil
}

// Key composes the final registration key.
func Key(namespace, local string) string {
	return namespace + Separator + local
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
