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
)

var forceRemove bool

// removeCmd represents the remove command
var removeCmd = &cobra.Command{
	Use:               "remove <deployment_name>",
	Aliases:           []string{"rm"},
	Short:             "Completely remove a deployment workspace",
	ValidArgsFunction: listDeployments,
	Long: `Completely remove a deployment workspace

Deletes the workspace directory, its contract snapshot and its recorded deploy
state. Nothing on chain is touched.
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deploymentName := args[0]
		if !forceRemove {
			if err := confirm(fmt.Sprintf("completely delete deployment '%s'", deploymentName)); err != nil {
				fmt.Println("canceled")
				return nil
			}
		}
		fmt.Printf("deleting deployment '%s'... ", deploymentName)
		if err := deployments.RemoveDeployment(deploymentName); err != nil {
			return err
		}
		fmt.Print("done\n\n")
		return nil
	},
}

func init() {
	removeCmd.Flags().BoolVarP(&forceRemove, "force", "f", false, "Remove without prompting for confirmation")
	rootCmd.AddCommand(removeCmd)
}
