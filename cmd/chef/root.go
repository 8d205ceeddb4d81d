package main

import (
	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "chef",
	Short:         "chef interprets recipes written in the Chef programming language",
	Long:          "chef parses and executes Chef recipes, a language in which programs read like cooking instructions.",
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       version,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
