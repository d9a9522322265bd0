// Package command builds the declarative state-transition instructions that
// stateful widgets attach to their markup. Instructions are interpreted by
// the client runtime on user events; this package only defines the
// vocabulary and its serialized form.
package command

import (
	"encoding/json"
	"fmt"
)

// DataAttrName is the markup attribute a serialized sequence is embedded
// under. The client runtime reads it on the triggering element.
const DataAttrName = "data-weft-commands"

// Verb identifies the kind of state transition an instruction performs.
type Verb string

const (
	// VerbToggleAttribute flips an attribute between two literal values.
	VerbToggleAttribute Verb = "toggle-attribute"
	// VerbToggleClass flips the presence of a class.
	VerbToggleClass Verb = "toggle-class"
)

// Instruction is one state transition scoped to a target element identifier.
// Instructions are immutable values; build them through ToggleAttribute and
// ToggleClass.
type Instruction struct {
	Verb   Verb
	Target string

	// Attribute toggle parameters. The runtime sets the attribute to Off when
	// it currently equals On, and to On otherwise, so the toggle is its own
	// inverse.
	Attribute string
	On        string
	Off       string

	// Class toggle parameter.
	Class string
}

// ToggleAttribute builds an instruction that flips targetID's attribute
// between onValue and offValue.
func ToggleAttribute(targetID, attribute, onValue, offValue string) Instruction {
	return Instruction{
		Verb:      VerbToggleAttribute,
		Target:    targetID,
		Attribute: attribute,
		On:        onValue,
		Off:       offValue,
	}
}

// ToggleClass builds an instruction that flips the presence of className on
// targetID.
func ToggleClass(targetID, className string) Instruction {
	return Instruction{
		Verb:   VerbToggleClass,
		Target: targetID,
		Class:  className,
	}
}

type attributeParams struct {
	Attribute string `json:"attr"`
	On        string `json:"on"`
	Off       string `json:"off"`
}

type classParams struct {
	Class string `json:"class"`
}

type wireInstruction struct {
	Verb   Verb            `json:"verb"`
	Target string          `json:"target"`
	Params json.RawMessage `json:"params"`
}

// MarshalJSON serializes the instruction in the wire shape the client runtime
// consumes: verb, target, and a verb-specific params object.
func (ins Instruction) MarshalJSON() ([]byte, error) {
	var params any
	switch ins.Verb {
	case VerbToggleAttribute:
		params = attributeParams{Attribute: ins.Attribute, On: ins.On, Off: ins.Off}
	case VerbToggleClass:
		params = classParams{Class: ins.Class}
	default:
		return nil, fmt.Errorf("unknown instruction verb %q", ins.Verb)
	}

	raw, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	return json.Marshal(wireInstruction{Verb: ins.Verb, Target: ins.Target, Params: raw})
}

// UnmarshalJSON parses the wire shape back into an Instruction.
func (ins *Instruction) UnmarshalJSON(data []byte) error {
	var wire wireInstruction
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	out := Instruction{Verb: wire.Verb, Target: wire.Target}
	switch wire.Verb {
	case VerbToggleAttribute:
		var params attributeParams
		if err := json.Unmarshal(wire.Params, &params); err != nil {
			return err
		}
		out.Attribute = params.Attribute
		out.On = params.On
		out.Off = params.Off
	case VerbToggleClass:
		var params classParams
		if err := json.Unmarshal(wire.Params, &params); err != nil {
			return err
		}
		out.Class = params.Class
	default:
		return fmt.Errorf("unknown instruction verb %q", wire.Verb)
	}

	*ins = out
	return nil
}
