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
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/CheckerChain/soulbound-cli/internal/contract"
	"github.com/CheckerChain/soulbound-cli/internal/deployments"
	"github.com/CheckerChain/soulbound-cli/internal/erdpy"
	"github.com/CheckerChain/soulbound-cli/internal/log"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:               "build <deployment_name>",
	Short:             "Compile the contract wasm artifact for a deployment",
	ValidArgsFunction: listDeployments,
	Long: `Compile the contract wasm artifact for a deployment

Invokes the external build tool on the contract project snapshot inside the
workspace. The resulting bytecode is what a later deploy submits.
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

		manager := contract.NewDeployManager(logger, erdpy.NewErdpyManager(), deployment.Dir, deployment.Config)
		if spin != nil {
			spin.Start()
		}
		err = manager.BuildContract(createContext())
		if spin != nil {
			spin.Stop()
		}
		if err != nil {
			return err
		}

		fmt.Printf("Bytecode artifact: %s\n\n", filepath.Join(deployment.Dir, deployment.Config.BytecodePath))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
