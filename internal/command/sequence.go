package command

import (
	"encoding/json"
)

// Sequence is an ordered list of instructions executed in order on a single
// trigger event. Append copies, so a sequence already attached to markup can
// never be reshuffled or extended behind its back.
type Sequence []Instruction

// NewSequence builds a sequence from instructions in the given order.
func NewSequence(instructions ...Instruction) Sequence {
	seq := make(Sequence, len(instructions))
	copy(seq, instructions)
	return seq
}

// Append returns a new sequence with the instructions added at the end. The
// receiver is left untouched.
func (s Sequence) Append(instructions ...Instruction) Sequence {
	out := make(Sequence, len(s), len(s)+len(instructions))
	copy(out, s)
	return append(out, instructions...)
}

// Serialize encodes the sequence as the JSON array embedded in markup.
func (s Sequence) Serialize() (string, error) {
	raw, err := json.Marshal([]Instruction(s))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// ParseSequence decodes a serialized sequence. Used by tooling that inspects
// rendered markup; the browser-side interpreter has its own decoder.
func ParseSequence(raw string) (Sequence, error) {
	var instructions []Instruction
	if err := json.Unmarshal([]byte(raw), &instructions); err != nil {
		return nil, err
	}
	return Sequence(instructions), nil
}
