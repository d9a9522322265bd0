package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/wovenui/weft/internal/attrs"
	"github.com/wovenui/weft/internal/component"
	wefterrors "github.com/wovenui/weft/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseFile loads a definition file from disk and validates it.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wefterrors.NewParseError(path, 0, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, wefterrors.NewParseError(path, extractLine(err), err)
	}

	if err := validateFile(&file); err != nil {
		return nil, err
	}

	return &file, nil
}

func validateFile(file *File) error {
	err := attrs.GetValidator().Struct(file)
	if err == nil {
		return nil
	}
	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return wefterrors.NewValidationError(first.Namespace(), first.Tag(), err)
	}
	return err
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}

// LoadFile parses a definition file and registers every component it
// declares. Registration stops at the first failure; duplicates surface as
// DuplicateComponentError.
func LoadFile(reg *component.Registry, path string) (int, error) {
	file, err := ParseFile(path)
	if err != nil {
		return 0, err
	}

	for i, def := range file.Components {
		if _, err := reg.Register(def.Specification()); err != nil {
			return i, err
		}
	}
	return len(file.Components), nil
}

// LoadDir registers every definition from the *.yaml and *.yml files in dir,
// in lexical path order so registration is deterministic.
func LoadDir(reg *component.Registry, dir string) (int, error) {
	var paths []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return 0, err
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)

	total := 0
	for _, path := range paths {
		n, err := LoadFile(reg, path)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
