// Package commands provides tests for CLI command creation.
package commands

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/semstack-labs/semstudio/internal/catalog"
)

func TestNewFitCommand(t *testing.T) {
	cmd := NewFitCommand()

	assert.Equal(t, "fit <dataset-file> [model-file]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	flags := []string{"template", "drop-incomplete", "format"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewFitCommand_ExampleTemplateKeysExist(t *testing.T) {
	cmd := NewFitCommand()
	cat := catalog.Builtin()

	// Every --template key shown in the help must resolve in the catalog;
	// a copy-pasted example should never yield "unknown template".
	for _, match := range regexp.MustCompile(`--template "([^"]+)"`).FindAllStringSubmatch(cmd.Example, -1) {
		category, example, ok := strings.Cut(match[1], "/")
		assert.True(t, ok, "example key %q should be Category/Template Name", match[1])
		assert.True(t, cat.Has(category, example), "example key %q should exist in the catalog", match[1])
	}
}

func TestNewTemplatesCommand(t *testing.T) {
	cmd := NewTemplatesCommand()

	assert.Equal(t, "templates", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.True(t, cmd.HasSubCommands(), "templates should have a show subcommand")
}

func TestNewRunsCommand(t *testing.T) {
	cmd := NewRunsCommand()

	assert.Equal(t, "runs", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("limit"), "flag limit should exist")
	assert.True(t, cmd.HasSubCommands(), "runs should have a show subcommand")
}

func TestNewUICommand(t *testing.T) {
	cmd := NewUICommand()

	assert.Equal(t, "ui", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	flags := []string{"port", "no-browser", "watch"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewInitCommand(t *testing.T) {
	cmd := NewInitCommand()

	assert.Equal(t, "init [directory]", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("force"), "flag force should exist")
}

func TestNewDoctorCommand(t *testing.T) {
	cmd := NewDoctorCommand()

	assert.Equal(t, "doctor", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "4f1c2a3b", shortID("4f1c2a3b-1111-2222-3333-444444444444"))
	assert.Equal(t, "plain", shortID("plain"))
}
