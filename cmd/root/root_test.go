package root_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/joao-a-costa/ciuspt-ddl/cmd/root"
	"github.com/joao-a-costa/ciuspt-ddl/internal/config"
)

func TestRootCommandMetadata(t *testing.T) {
	assert.Equal(t, "ciuspt-ddl", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "CIUS-PT")
	assert.Contains(t, root.Cmd.Long, "Invoice and CreditNote")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestRootCommandFlags(t *testing.T) {
	// Flags may already be registered by a previous Init call
	if root.Cmd.PersistentFlags().Lookup("input") == nil {
		root.Init()
	}

	inputFlag := root.Cmd.PersistentFlags().Lookup("input")
	assert.NotNil(t, inputFlag)
	assert.Equal(t, "i", inputFlag.Shorthand)
	assert.Equal(t, "", inputFlag.DefValue)

	outputFlag := root.Cmd.PersistentFlags().Lookup("output")
	assert.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)

	validateFlag := root.Cmd.PersistentFlags().Lookup("validate")
	assert.NotNil(t, validateFlag)
	assert.Equal(t, "v", validateFlag.Shorthand)
	assert.Equal(t, "false", validateFlag.DefValue)
}

func TestRootCommandRun(t *testing.T) {
	cmd := &cobra.Command{}
	assert.NotPanics(t, func() {
		root.Cmd.Run(cmd, []string{})
	})
}

func TestCommonFlagsStructure(t *testing.T) {
	flags := root.CommonFlags{
		Input:    "test.xml",
		Output:   "test.json",
		Validate: true,
	}

	assert.Equal(t, "test.xml", flags.Input)
	assert.Equal(t, "test.json", flags.Output)
	assert.True(t, flags.Validate)
}

func TestGetLogrusAdapter(t *testing.T) {
	assert.NotNil(t, root.GetLogrusAdapter())
}

func TestMappingOptions(t *testing.T) {
	opts := root.MappingOptions()
	assert.Contains(t,
		[]string{config.ContractRefOrderReference, config.ContractRefBuyerReference},
		opts.ContractReferenceSource)
}
