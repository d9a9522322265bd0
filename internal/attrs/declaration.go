// Package attrs implements the attribute-declaration collaborator: it stores
// the accepted-attribute declarations a component compiles to and enforces
// required/default/allowed-value constraints on render-time attribute bags.
package attrs

import (
	"github.com/go-playground/validator/v10"

	wefterrors "github.com/wovenui/weft/pkg/errors"
)

// Type identifies the value type an attribute accepts.
type Type string

const (
	TypeString Type = "string"
	TypeBool   Type = "bool"
	TypeInt    Type = "int"
	TypeAny    Type = "any"
)

// Declaration describes one accepted attribute: its name, type, enumerated
// constraint, default, and whether the caller must supply it.
type Declaration struct {
	Name     string `validate:"required,attr_name"`
	Type     Type   `validate:"required,oneof=string bool int any"`
	Allowed  []string
	Default  *string
	Required bool
	Doc      string
}

// Validate checks the declaration record itself, including the cross-field
// invariants: a required attribute carries no default, and a default must be
// a member of a non-empty allowed set.
func (d Declaration) Validate() error {
	if err := validatorInstance().Struct(d); err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			return err
		}
		for _, fieldErr := range err.(validator.ValidationErrors) {
			return wefterrors.NewValidationError(fieldErr.Field(), fieldErr.Tag(), err)
		}
		return err
	}

	if d.Required && d.Default != nil {
		return wefterrors.NewValidationError(d.Name, "required attribute cannot carry a default", nil)
	}
	if d.Default != nil && len(d.Allowed) > 0 && !contains(d.Allowed, *d.Default) {
		return wefterrors.NewValidationError(d.Name, "default is outside the allowed value set", nil)
	}
	return nil
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
