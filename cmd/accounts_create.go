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

	"github.com/spf13/cobra"

	"github.com/CheckerChain/soulbound-cli/internal/constants"
	"github.com/CheckerChain/soulbound-cli/internal/deployments"
	"github.com/CheckerChain/soulbound-cli/internal/signer"
)

var accountsCreatePrefix string
var accountsCreatePassword string

// accountsCreateCmd represents the "accounts create" command
var accountsCreateCmd = &cobra.Command{
	Use:               "create <deployment_name>",
	Short:             "Create a new agreement signer account for a deployment",
	ValidArgsFunction: listDeployments,
	Long: `Create a new agreement signer account for a deployment

The contract's give and take endpoints verify secp256k1 signatures over the
transfer agreement. This generates a keypair for producing those signatures
and stores it as a keystore v3 wallet file inside the workspace.
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deploymentName := args[0]
		deployment, err := deployments.LoadDeployment(deploymentName)
		if err != nil {
			return err
		}

		password := accountsCreatePassword
		if password == "" {
			password, err = prompt("keystore password: ", validatePassword)
			if err != nil {
				return err
			}
		}

		keystoreDir := filepath.Join(deployment.Dir, constants.KeystoreDirName)
		keyPair, filename, err := signer.CreateAgreementWalletFile(keystoreDir, accountsCreatePrefix, password)
		if err != nil {
			return err
		}

		fmt.Printf("Created agreement signer %s\n", keyPair.Address.String())
		fmt.Printf("Wallet file: %s\n\n", filename)
		return nil
	},
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

func init() {
	accountsCreateCmd.Flags().StringVar(&accountsCreatePrefix, "prefix", "", "Prefix for the wallet file name")
	accountsCreateCmd.Flags().StringVar(&accountsCreatePassword, "password", "", "Keystore password (prompted for when not given)")
	accountsCmd.AddCommand(accountsCreateCmd)
}
