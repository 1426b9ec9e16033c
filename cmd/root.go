// Copyright © 2025 The vhdlsem authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	colorFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vhdlsem",
	Short: "VHDL semantic analyzer",
	Long: `vhdlsem analyzes VHDL design files: it resolves names, checks types,
and resolves overloaded subprograms and operators, reporting diagnostics
the way a compiler front end would.

vhdlsem does not parse VHDL text itself. It consumes the kind-tagged
JSON syntax trees produced by a parser front end and analyzes them.

Getting started:
  vhdlsem analyze design.json       Analyze a design file
  vhdlsem analyze --json design.json  Output diagnostics as JSON
  cat design.json | vhdlsem analyze   Analyze from stdin

Exit codes:
  0  No problems found
  1  One or more diagnostics were reported
  2  Bad invocation (invalid flags, unreadable or malformed input)`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.vhdlsem.yaml)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto",
		`Control colored output: "auto", "always", or "never".`)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".vhdlsem" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".vhdlsem")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
