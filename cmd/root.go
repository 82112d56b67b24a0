// Copyright © 2023 CheckerChain, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CheckerChain/soulbound-cli/internal/log"
	"github.com/mattn/go-isatty"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string
var verbose bool
var fancyFeatures bool
var logger log.Logger = &log.StdoutLogger{}

// ExecutableName is the name the CLI is invoked as, used in help text
var ExecutableName = "sbt"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   ExecutableName,
	Short: "Soulbound CLI is a developer tool used to build and deploy the Soulbound Token contract",
	Long: `Soulbound CLI is a developer tool used to build and deploy the Soulbound Token smart contract

This tool wraps the Elrond SDK command line to compile the contract, sign and
submit the deploy transaction through a network proxy gateway, and keep track
of what was deployed where.

To get started run: ` + ExecutableName + ` init
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrusLogger := log.NewLogrusLogger()
			logrusLogger.SetLogLevel(log.Debug)
			logger = logrusLogger
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// createContext builds the context handed to the internal managers for one
// command invocation.
func createContext() context.Context {
	ctx := log.WithVerbosity(context.Background(), verbose)
	return log.WithLogger(ctx, logger)
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.soulbound-cli.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose log output")
	fancyFeatures = isatty.IsTerminal(os.Stdout.Fd())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".soulbound-cli" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".soulbound-cli")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
