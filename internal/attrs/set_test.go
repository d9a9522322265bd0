package attrs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wefterrors "github.com/wovenui/weft/pkg/errors"
)

func strptr(s string) *string { return &s }

func TestDeclarationValidate(t *testing.T) {
	tests := []struct {
		name    string
		decl    Declaration
		wantErr bool
	}{
		{
			name: "valid enumerated declaration",
			decl: Declaration{Name: "size", Type: TypeString, Allowed: []string{"small", "large"}, Default: strptr("small")},
		},
		{
			name:    "missing name",
			decl:    Declaration{Type: TypeString},
			wantErr: true,
		},
		{
			name:    "uppercase name rejected",
			decl:    Declaration{Name: "Size", Type: TypeString},
			wantErr: true,
		},
		{
			name:    "unknown type rejected",
			decl:    Declaration{Name: "size", Type: Type("float")},
			wantErr: true,
		},
		{
			name:    "required with default rejected",
			decl:    Declaration{Name: "label", Type: TypeString, Required: true, Default: strptr("x")},
			wantErr: true,
		},
		{
			name:    "default outside allowed set rejected",
			decl:    Declaration{Name: "size", Type: TypeString, Allowed: []string{"small"}, Default: strptr("huge")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.decl.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSetRejectsDuplicateNames(t *testing.T) {
	set := NewSet("badge")
	require.NoError(t, set.Add(Declaration{Name: "variant", Type: TypeString}))

	err := set.Add(Declaration{Name: "variant", Type: TypeString})
	require.Error(t, err)

	var dup *wefterrors.DuplicateAttributeError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "badge", dup.Component)
	assert.Equal(t, "variant", dup.Attribute)
}

func TestSetPreservesInsertionOrder(t *testing.T) {
	set := NewSet("card")
	require.NoError(t, set.AddAll([]Declaration{
		{Name: "size", Type: TypeString},
		{Name: "variant", Type: TypeString},
		{Name: "title", Type: TypeString},
	}))

	names := make([]string, 0, set.Len())
	for _, d := range set.Declarations() {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"size", "variant", "title"}, names)
}

func TestApplyFillsDefaults(t *testing.T) {
	set := NewSet("badge")
	require.NoError(t, set.Add(Declaration{
		Name: "variant", Type: TypeString,
		Allowed: []string{"default", "primary"}, Default: strptr("default"),
	}))

	applied, err := set.Apply(map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "default", applied["variant"])
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	set := NewSet("badge")
	require.NoError(t, set.Add(Declaration{Name: "variant", Type: TypeString, Default: strptr("default")}))

	bag := map[string]any{"label": "New"}
	_, err := set.Apply(bag)
	require.NoError(t, err)

	_, ok := bag["variant"]
	assert.False(t, ok, "input bag must stay untouched")
}

func TestApplyRejectsValueOutsideAllowedSet(t *testing.T) {
	set := NewSet("alert")
	require.NoError(t, set.Add(Declaration{
		Name: "tone", Type: TypeString, Allowed: []string{"info", "danger"},
	}))

	_, err := set.Apply(map[string]any{"tone": "loud"})
	require.Error(t, err)

	var invalid *wefterrors.InvalidModifierValueError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "loud", invalid.Value)
}

func TestApplyRejectsMissingRequired(t *testing.T) {
	set := NewSet("breadcrumb")
	require.NoError(t, set.Add(Declaration{Name: "items", Type: TypeAny, Required: true}))

	_, err := set.Apply(map[string]any{})
	require.Error(t, err)

	var missing *wefterrors.MissingAttributeError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "items", missing.Attribute)
}

func TestApplyIgnoresNonStringForEnumCheck(t *testing.T) {
	set := NewSet("alert")
	require.NoError(t, set.Add(Declaration{
		Name: "tone", Type: TypeString, Allowed: []string{"info"},
	}))

	// A non-string value never trips the enumerated constraint; the resolver
	// treats it as unset downstream.
	applied, err := set.Apply(map[string]any{"tone": true})
	require.NoError(t, err)
	assert.Equal(t, true, applied["tone"])
}
