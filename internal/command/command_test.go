package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// elementState is a minimal stand-in for the client runtime's view of one
// DOM element, enough to exercise toggle semantics.
type elementState struct {
	attributes map[string]string
	classes    map[string]bool
}

func newElementState() *elementState {
	return &elementState{attributes: map[string]string{}, classes: map[string]bool{}}
}

func (e *elementState) apply(ins Instruction) {
	switch ins.Verb {
	case VerbToggleAttribute:
		if e.attributes[ins.Attribute] == ins.On {
			e.attributes[ins.Attribute] = ins.Off
		} else {
			e.attributes[ins.Attribute] = ins.On
		}
	case VerbToggleClass:
		e.classes[ins.Class] = !e.classes[ins.Class]
	}
}

func TestToggleAttribute(t *testing.T) {
	ins := ToggleAttribute("acc-trigger-1", "aria-expanded", "true", "false")
	assert.Equal(t, VerbToggleAttribute, ins.Verb)
	assert.Equal(t, "acc-trigger-1", ins.Target)
	assert.Equal(t, "aria-expanded", ins.Attribute)
	assert.Equal(t, "true", ins.On)
	assert.Equal(t, "false", ins.Off)
}

func TestToggleClass(t *testing.T) {
	ins := ToggleClass("acc-section-1", "weft-hidden")
	assert.Equal(t, VerbToggleClass, ins.Verb)
	assert.Equal(t, "weft-hidden", ins.Class)
}

func TestAttributeToggleIsItsOwnInverse(t *testing.T) {
	el := newElementState()
	el.attributes["aria-expanded"] = "false"

	ins := ToggleAttribute("t", "aria-expanded", "true", "false")
	el.apply(ins)
	assert.Equal(t, "true", el.attributes["aria-expanded"])
	el.apply(ins)
	assert.Equal(t, "false", el.attributes["aria-expanded"])
}

func TestSequenceIdempotentUnderDoubleApplication(t *testing.T) {
	seq := NewSequence(
		ToggleAttribute("acc-trigger-2", "aria-expanded", "true", "false"),
		ToggleClass("acc-section-2", "weft-hidden"),
	)

	el := newElementState()
	el.attributes["aria-expanded"] = "false"
	el.classes["weft-hidden"] = true

	for _, ins := range seq {
		el.apply(ins)
	}
	for _, ins := range seq {
		el.apply(ins)
	}

	assert.Equal(t, "false", el.attributes["aria-expanded"])
	assert.True(t, el.classes["weft-hidden"])
}

func TestAppendDoesNotMutateReceiver(t *testing.T) {
	base := NewSequence(ToggleClass("a", "open"))
	extended := base.Append(ToggleClass("b", "open"))

	require.Len(t, base, 1)
	require.Len(t, extended, 2)
	assert.Equal(t, "a", extended[0].Target)
	assert.Equal(t, "b", extended[1].Target)
}

func TestSerializeRoundTrip(t *testing.T) {
	seq := NewSequence(
		ToggleAttribute("btn", "aria-pressed", "true", "false"),
		ToggleClass("panel", "weft-hidden"),
	)

	raw, err := seq.Serialize()
	require.NoError(t, err)
	assert.Contains(t, raw, `"verb":"toggle-attribute"`)
	assert.Contains(t, raw, `"attr":"aria-pressed"`)
	assert.Contains(t, raw, `"class":"weft-hidden"`)

	parsed, err := ParseSequence(raw)
	require.NoError(t, err)
	assert.Equal(t, seq, parsed)
}

func TestSerializePreservesOrder(t *testing.T) {
	seq := NewSequence(
		ToggleClass("first", "x"),
		ToggleClass("second", "x"),
		ToggleClass("third", "x"),
	)

	raw, err := seq.Serialize()
	require.NoError(t, err)

	parsed, err := ParseSequence(raw)
	require.NoError(t, err)

	targets := make([]string, len(parsed))
	for i, ins := range parsed {
		targets[i] = ins.Target
	}
	assert.Equal(t, []string{"first", "second", "third"}, targets)
}

func TestUnmarshalRejectsUnknownVerb(t *testing.T) {
	_, err := ParseSequence(`[{"verb":"cycle-attribute","target":"x","params":{}}]`)
	assert.Error(t, err)
}
