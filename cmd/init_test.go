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
	"os"
	"path/filepath"
	"testing"

	"github.com/CheckerChain/soulbound-cli/internal/constants"
	"github.com/CheckerChain/soulbound-cli/internal/deployments"
	"github.com/stretchr/testify/assert"
)

func useTempDeploymentsDir(t *testing.T) {
	originalDir := constants.DeploymentsDir
	constants.DeploymentsDir = filepath.Join(t.TempDir(), "deployments")
	t.Cleanup(func() {
		constants.DeploymentsDir = originalDir
	})
}

func makeContractProject(t *testing.T) string {
	contractDir := filepath.Join(t.TempDir(), "soulbound")
	err := os.MkdirAll(filepath.Join(contractDir, "src"), 0755)
	assert.NoError(t, err)
	err = os.WriteFile(filepath.Join(contractDir, "src", "soulbound.rs"), []byte("// contract source"), 0755)
	assert.NoError(t, err)
	return contractDir
}

func TestInitListRemove(t *testing.T) {
	useTempDeploymentsDir(t)
	contractDir := makeContractProject(t)

	rootCmd.SetArgs([]string{"init", "dev-1",
		"--contract", contractDir,
		"--pem", "wallet.pem",
		"--unbond-duration", "900",
	})
	err := rootCmd.Execute()
	assert.NoError(t, err)

	exists, err := deployments.CheckExists("dev-1")
	assert.NoError(t, err)
	assert.True(t, exists)

	deployment, err := deployments.LoadDeployment("dev-1")
	assert.NoError(t, err)
	assert.Equal(t, constants.DefaultProxyURL, deployment.Config.ProxyURL)
	assert.Equal(t, constants.DefaultChainID, deployment.Config.ChainID)
	assert.Equal(t, "900", deployment.Config.UnbondDuration)

	rootCmd.SetArgs([]string{"list"})
	err = rootCmd.Execute()
	assert.NoError(t, err)

	rootCmd.SetArgs([]string{"remove", "dev-1", "--force"})
	err = rootCmd.Execute()
	assert.NoError(t, err)

	exists, err = deployments.CheckExists("dev-1")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestInitExistingNameRejected(t *testing.T) {
	useTempDeploymentsDir(t)
	contractDir := makeContractProject(t)

	rootCmd.SetArgs([]string{"init", "dev-2",
		"--contract", contractDir,
		"--pem", "wallet.pem",
		"--unbond-duration", "900",
	})
	err := rootCmd.Execute()
	assert.NoError(t, err)

	rootCmd.SetArgs([]string{"init", "dev-2",
		"--contract", contractDir,
		"--pem", "wallet.pem",
		"--unbond-duration", "900",
	})
	err = rootCmd.Execute()
	assert.Error(t, err)
}
