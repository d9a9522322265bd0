package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wovenui/weft/internal/logger"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	log, err := logger.New(logger.Options{Level: "error", Writer: &bytes.Buffer{}})
	require.NoError(t, err)

	cmd := newRootCmd(log)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), err
}

func TestListTableShowsCatalog(t *testing.T) {
	out, err := runCommand(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "accordion")
	assert.Contains(t, out, "breadcrumb")
	assert.Contains(t, out, "toggle-button")
}

func TestListJSONIncludesDeclarations(t *testing.T) {
	out, err := runCommand(t, "list", "--json")
	require.NoError(t, err)

	var summaries []componentSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summaries))
	require.NotEmpty(t, summaries)

	byName := map[string]componentSummary{}
	for _, s := range summaries {
		byName[s.Name] = s
	}

	badge, ok := byName["badge"]
	require.True(t, ok)
	assert.Equal(t, "badge", badge.BaseClass)

	var variant *attributeSummary
	for i := range badge.Attributes {
		if badge.Attributes[i].Name == "variant" {
			variant = &badge.Attributes[i]
		}
	}
	require.NotNil(t, variant)
	assert.Equal(t, "string", variant.Type)
	assert.Contains(t, variant.Allowed, "primary")
}

func TestListLoadsExtraDefinitions(t *testing.T) {
	dir := t.TempDir()
	writeTestDefs(t, dir, "components:\n  - name: chip\n    doc: Chip.\n")

	out, err := runCommand(t, "list", "--defs", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "chip")
}
