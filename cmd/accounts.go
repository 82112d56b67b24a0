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
	"github.com/spf13/cobra"
)

// accountsCmd is the parent of the accounts subcommands
var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Manage agreement signer accounts",
	Long:  `Manage the secp256k1 accounts used to sign token transfer agreements`,
}

func init() {
	rootCmd.AddCommand(accountsCmd)
}
