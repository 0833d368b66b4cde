// Package config handles configuration file management commands
package config

import (
	"github.com/spf13/cobra"

	"github.com/joao-a-costa/ciuspt-ddl/cmd/root"
	"github.com/joao-a-costa/ciuspt-ddl/internal/config"
)

// Cmd represents the config command
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the ciuspt-ddl configuration file",
	Long: `Manage the configuration file read at startup from $HOME/.ciuspt-ddl
or the working directory.

Example:
  ciuspt-ddl config init`,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file seeded with the default settings",
	Long: `Write a configuration file seeded with the default settings. The file
is written to $HOME/.ciuspt-ddl/config.yaml unless -o names another path.
An existing file is never overwritten.

Example:
  ciuspt-ddl config init
  ciuspt-ddl config init -o ./config.yaml`,
	Run: initFunc,
}

func init() {
	Cmd.AddCommand(initCmd)
}

func initFunc(cmd *cobra.Command, args []string) {
	path := root.SharedFlags.Output
	if path == "" {
		path = config.DefaultConfigPath()
	}

	if err := config.WriteDefaultConfig(path); err != nil {
		root.Log.Fatalf("Error writing config file: %v", err)
	}
	root.Log.Infof("Configuration file written to %s", path)
}
