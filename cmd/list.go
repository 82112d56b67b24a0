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

var listCommand = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List deployments",
	Long:    `List deployment workspaces`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if allDeployments, err := deployments.ListDeployments(); err != nil {
			return err
		} else {
			fmt.Print("Soulbound Token deployments:\n\n")
			for _, d := range allDeployments {
				fmt.Println(d)
			}
			fmt.Print("\n")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCommand)
}
