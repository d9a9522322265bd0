package component

import (
	"strings"
	"unicode"
)

// KebabCase derives a component's default base class from its name. The rule
// is fixed so that equal names always derive equal classes: lower-case
// everything, turn spaces and underscores into hyphens, and break words at
// upper-case boundaries ("ToggleButton" and "toggle_button" both become
// "toggle-button"; acronym runs stay together, "HTMLButton" becomes
// "html-button").
func KebabCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)

	runes := []rune(name)
	lastHyphen := true // suppress a leading hyphen
	for i, r := range runes {
		switch {
		case r == ' ' || r == '_' || r == '-':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		case unicode.IsUpper(r):
			startsWord := i > 0 && (!unicode.IsUpper(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1])))
			if startsWord && !lastHyphen {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			lastHyphen = false
		default:
			b.WriteRune(r)
			lastHyphen = false
		}
	}

	return strings.TrimRight(b.String(), "-")
}
