package attrs

import (
	wefterrors "github.com/wovenui/weft/pkg/errors"
)

// Set is the ordered accepted-attribute surface of one component. Order is
// insertion order; names are unique within a set.
type Set struct {
	component    string
	declarations []Declaration
	index        map[string]int
}

// NewSet creates an empty declaration set for the named component.
func NewSet(component string) *Set {
	return &Set{
		component: component,
		index:     make(map[string]int),
	}
}

// Add appends a declaration, validating the record and rejecting a name that
// is already declared.
func (s *Set) Add(decl Declaration) error {
	if err := decl.Validate(); err != nil {
		return err
	}
	if _, exists := s.index[decl.Name]; exists {
		return wefterrors.NewDuplicateAttributeError(s.component, decl.Name)
	}
	s.index[decl.Name] = len(s.declarations)
	s.declarations = append(s.declarations, decl)
	return nil
}

// AddAll appends declarations in order, stopping at the first failure.
func (s *Set) AddAll(decls []Declaration) error {
	for _, decl := range decls {
		if err := s.Add(decl); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the declaration registered under name.
func (s *Set) Get(name string) (Declaration, bool) {
	i, ok := s.index[name]
	if !ok {
		return Declaration{}, false
	}
	return s.declarations[i], true
}

// Declarations returns the declarations in insertion order. The returned
// slice is a copy.
func (s *Set) Declarations() []Declaration {
	out := make([]Declaration, len(s.declarations))
	copy(out, s.declarations)
	return out
}

// Len reports the number of declarations in the set.
func (s *Set) Len() int {
	return len(s.declarations)
}

// Apply enforces the set against a render-time attribute bag: defaults are
// filled in for unset attributes, missing required attributes and
// out-of-range enumerated values are surfaced as errors. The input bag is
// never mutated; the returned bag is the caller's to own for the duration of
// the render call.
func (s *Set) Apply(bag map[string]any) (map[string]any, error) {
	applied := make(map[string]any, len(bag)+len(s.declarations))
	for k, v := range bag {
		applied[k] = v
	}

	for _, decl := range s.declarations {
		value, supplied := applied[decl.Name]
		if !supplied {
			if decl.Required {
				return nil, wefterrors.NewMissingAttributeError(s.component, decl.Name)
			}
			if decl.Default != nil {
				applied[decl.Name] = *decl.Default
			}
			continue
		}

		if len(decl.Allowed) == 0 {
			continue
		}
		// Enumerated constraints only bind string values; non-string values
		// are invisible to the modifier resolver and pass through untouched.
		str, ok := value.(string)
		if !ok {
			continue
		}
		if !contains(decl.Allowed, str) {
			return nil, wefterrors.NewInvalidModifierValueError(s.component, decl.Name, str, decl.Allowed)
		}
	}

	return applied, nil
}
