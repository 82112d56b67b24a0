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
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/CheckerChain/soulbound-cli/internal/constants"
	"github.com/CheckerChain/soulbound-cli/internal/deployments"
	"github.com/CheckerChain/soulbound-cli/pkg/types"
)

var initOptions types.InitOptions

var initCmd = &cobra.Command{
	Use:   "init [deployment_name]",
	Short: "Create a new deployment workspace",
	Long: `Create a new deployment workspace

The workspace holds a snapshot of the contract project and a deploy.yaml with
everything the deploy tool needs: signing key file, proxy gateway, chain ID,
gas limit and the contract's constructor arguments.
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("initializing new Soulbound Token deployment...")

		var deploymentName string
		if len(args) > 0 {
			deploymentName = args[0]
			if err := validateName(deploymentName); err != nil {
				return err
			}
		} else {
			var err error
			deploymentName, err = prompt("deployment name: ", validateName)
			if err != nil {
				return err
			}
		}

		applyConfigFileDefaults(cmd)

		if _, err := deployments.InitDeployment(deploymentName, &initOptions); err != nil {
			return err
		}

		fmt.Printf("Deployment '%s' created!\nTo deploy the contract run:\n\n%s deploy %s\n", deploymentName, ExecutableName, deploymentName)
		fmt.Printf("\nYour deployment configuration can be found at: %s\n\n", filepath.Join(constants.DeploymentsDir, deploymentName, constants.ConfigFileName))
		return nil
	},
}

func validateName(deploymentName string) error {
	if strings.TrimSpace(deploymentName) == "" {
		return errors.New("deployment name must not be empty")
	}
	if exists, err := deployments.CheckExists(deploymentName); exists {
		return fmt.Errorf("deployment '%s' already exists", deploymentName)
	} else {
		return err
	}
}

// applyConfigFileDefaults lets the global config file and environment fill in
// values the user did not pass as flags.
func applyConfigFileDefaults(cmd *cobra.Command) {
	if !cmd.Flags().Changed("proxy") && viper.IsSet("proxy") {
		initOptions.ProxyURL = viper.GetString("proxy")
	}
	if !cmd.Flags().Changed("chain") && viper.IsSet("chain") {
		initOptions.ChainID = viper.GetString("chain")
	}
	if !cmd.Flags().Changed("pem") && viper.IsSet("pem") {
		initOptions.SigningKeyFile = viper.GetString("pem")
	}
}

func init() {
	initCmd.Flags().StringVarP(&initOptions.ContractDir, "contract", "c", "", "Path to the contract project directory to snapshot into the workspace")
	initCmd.Flags().StringVar(&initOptions.SigningKeyFile, "pem", "", "Path to the PEM signing key file used by the deploy tool")
	initCmd.Flags().StringVar(&initOptions.ProxyURL, "proxy", constants.DefaultProxyURL, "Network proxy gateway URL")
	initCmd.Flags().StringVar(&initOptions.ChainID, "chain", constants.DefaultChainID, "Chain identifier of the target network")
	initCmd.Flags().Int64Var(&initOptions.GasLimit, "gas-limit", constants.DefaultGasLimit, "Gas limit for the deploy transaction")
	initCmd.Flags().StringVar(&initOptions.TokenName, "name", constants.DefaultTokenName, "Token name constructor argument")
	initCmd.Flags().StringVar(&initOptions.TokenSymbol, "symbol", "", "Token symbol constructor argument (defaults to the token name)")
	initCmd.Flags().StringVar(&initOptions.UnbondDuration, "unbond-duration", "", "Unbond duration constructor argument (no default, must be set before deploying)")
	initCmd.Flags().StringVar(&initOptions.ExtraConfigPath, "extra-config", "", "Path to a YAML file merged over the generated deploy.yaml")

	rootCmd.AddCommand(initCmd)
}
