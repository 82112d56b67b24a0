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
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/CheckerChain/soulbound-cli/internal/constants"
	"github.com/CheckerChain/soulbound-cli/internal/contract"
	"github.com/CheckerChain/soulbound-cli/internal/deployments"
	"github.com/CheckerChain/soulbound-cli/internal/erdpy"
	"github.com/CheckerChain/soulbound-cli/internal/log"
	"github.com/CheckerChain/soulbound-cli/internal/proxy"
	"github.com/CheckerChain/soulbound-cli/pkg/types"
)

var deployOptions types.DeployOptions
var deploySkipChainCheck bool
var deployYes bool

// deployCmd represents the deploy command
var deployCmd = &cobra.Command{
	Use:               "deploy <deployment_name>",
	Short:             "Build and deploy the Soulbound Token contract",
	ValidArgsFunction: listDeployments,
	Long: `Build and deploy the Soulbound Token contract

Compiles the contract project (unless --skip-build is given), then invokes the
external deploy tool once to sign the deploy transaction with the configured
PEM file and submit it through the proxy gateway. Every invocation submits a
new transaction.
`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return erdpy.CheckErdpyConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		var spin *spinner.Spinner
		if fancyFeatures && !verbose {
			spin = spinner.New(spinner.CharSets[11], 100*time.Millisecond)
			logger = log.NewSpinnerLogger(spin)
		}

		deploymentName := args[0]
		deployment, err := deployments.LoadDeployment(deploymentName)
		if err != nil {
			return err
		}
		if err := deployment.Config.Validate(); err != nil {
			return err
		}

		ctx := createContext()
		if !deploySkipChainCheck {
			client := proxy.NewClient(deployment.Config.ProxyURL)
			networkConfig, err := client.GetNetworkConfig(ctx)
			if err != nil {
				return fmt.Errorf("unable to query the proxy gateway at %s: %s", deployment.Config.ProxyURL, err)
			}
			if networkConfig.ChainID != deployment.Config.ChainID {
				return fmt.Errorf("the gateway at %s fronts chain '%s' but this deployment targets chain '%s'", deployment.Config.ProxyURL, networkConfig.ChainID, deployment.Config.ChainID)
			}
		}

		if deployment.Config.ChainID == constants.MainnetChainID && !deployYes {
			if err := confirm(fmt.Sprintf("deploy '%s' to mainnet? This submits an irreversible transaction", deploymentName)); err != nil {
				fmt.Println("canceled")
				return nil
			}
		}

		manager := contract.NewDeployManager(logger, erdpy.NewErdpyManager(), deployment.Dir, deployment.Config)
		fmt.Printf("deploying %s... ", deploymentName)
		if spin != nil {
			spin.Start()
		}
		result, err := manager.DeployContract(ctx, &deployOptions)
		if spin != nil {
			spin.Stop()
		}
		if err != nil {
			return err
		}
		fmt.Print("done\n\n")

		if err := deployment.WriteState(result); err != nil {
			return err
		}

		fmt.Printf("Smart contract address: %s\n", result.ContractAddress)
		fmt.Printf("Deployment transaction hash: %s\n", result.TransactionHash)
		fmt.Print("\n")
		return nil
	},
}

func init() {
	deployCmd.Flags().BoolVar(&deployOptions.SkipBuild, "skip-build", false, "Deploy the existing bytecode artifact without rebuilding")
	deployCmd.Flags().BoolVar(&deploySkipChainCheck, "skip-chain-check", false, "Skip verifying that the gateway's chain ID matches the deployment")
	deployCmd.Flags().BoolVarP(&deployYes, "yes", "y", false, "Skip the mainnet confirmation prompt")

	rootCmd.AddCommand(deployCmd)
}
