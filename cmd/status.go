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

	"github.com/spf13/cobra"

	"github.com/CheckerChain/soulbound-cli/internal/deployments"
	"github.com/CheckerChain/soulbound-cli/internal/proxy"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:               "status <deployment_name>",
	Short:             "Show the on-chain status of a deployment's last deploy transaction",
	ValidArgsFunction: listDeployments,
	Long: `Show the on-chain status of a deployment's last deploy transaction

Looks up the recorded transaction hash against the proxy gateway this
deployment targets.
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deploymentName := args[0]
		deployment, err := deployments.LoadDeployment(deploymentName)
		if err != nil {
			return err
		}
		state, err := deployment.ReadState()
		if err != nil {
			return err
		}

		client := proxy.NewClient(deployment.Config.ProxyURL)
		tx, err := client.GetTransaction(createContext(), state.TransactionHash)
		if err != nil {
			return err
		}

		fmt.Printf("Deployment '%s' on chain '%s'\n\n", deploymentName, state.ChainID)
		fmt.Printf("Smart contract address: %s\n", state.ContractAddress)
		fmt.Printf("Deployment transaction hash: %s\n", state.TransactionHash)
		fmt.Printf("Transaction status: %s\n", tx.Status)
		fmt.Print("\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
