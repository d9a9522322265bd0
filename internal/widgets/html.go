// Package widgets is the component catalog: every specification weft ships,
// the templates that render them, and the small pieces of per-widget state
// policy those templates call into.
package widgets

import (
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/wovenui/weft/internal/command"
)

// writeAttr writes a double-quoted, escaped HTML attribute preceded by a
// space.
func writeAttr(w io.Writer, name, value string) error {
	_, err := fmt.Fprintf(w, ` %s="%s"`, name, templ.EscapeString(value))
	return err
}

// writeCommands serializes the sequence and embeds it under the command
// data attribute the client runtime watches.
func writeCommands(w io.Writer, seq command.Sequence) error {
	raw, err := seq.Serialize()
	if err != nil {
		return err
	}
	return writeAttr(w, command.DataAttrName, raw)
}

// writeText writes escaped element text.
func writeText(w io.Writer, text string) error {
	_, err := io.WriteString(w, templ.EscapeString(text))
	return err
}

// hiddenClass is the presence-toggled class that hides collapsed panels. The
// stylesheet shipped with the client runtime maps it to display:none.
const hiddenClass = "weft-hidden"
