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

package deployments

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/CheckerChain/soulbound-cli/internal/constants"
	"github.com/CheckerChain/soulbound-cli/internal/utils"
	"github.com/CheckerChain/soulbound-cli/pkg/types"
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

func testInitOptions(contractDir string) *types.InitOptions {
	return &types.InitOptions{
		ContractDir:    contractDir,
		SigningKeyFile: "wallet.pem",
		ProxyURL:       "https://devnet-gateway.elrond.com",
		ChainID:        "D",
		GasLimit:       60000000,
		TokenName:      "CheckerChain",
		UnbondDuration: "900",
	}
}

func TestInitAndLoadDeployment(t *testing.T) {
	useTempDeploymentsDir(t)
	contractDir := makeContractProject(t)

	deployment, err := InitDeployment("dev", testInitOptions(contractDir))
	assert.NoError(t, err)
	assert.Equal(t, "dev", deployment.Name)

	// the contract project was snapshotted into the workspace
	assert.FileExists(t, filepath.Join(deployment.Dir, constants.ContractDirName, "src", "soulbound.rs"))
	assert.FileExists(t, filepath.Join(deployment.Dir, constants.ConfigFileName))

	configText, err := utils.ReadFileToString(filepath.Join(deployment.Dir, constants.ConfigFileName))
	assert.NoError(t, err)
	assert.Contains(t, configText, "tokenName: CheckerChain")
	assert.Contains(t, configText, "unbondDuration:")

	loaded, err := LoadDeployment("dev")
	assert.NoError(t, err)
	assert.Equal(t, "contract", loaded.Config.ProjectDir)
	assert.Equal(t, "contract/output/soulbound.wasm", loaded.Config.BytecodePath)
	assert.Equal(t, "D", loaded.Config.ChainID)
	assert.Equal(t, int64(60000000), loaded.Config.GasLimit)
	// unset symbol defaults to the token name
	assert.Equal(t, "CheckerChain", loaded.Config.TokenSymbol)
	assert.Equal(t, "900", loaded.Config.UnbondDuration)
}

func TestInitDeploymentAlreadyExists(t *testing.T) {
	useTempDeploymentsDir(t)
	contractDir := makeContractProject(t)

	_, err := InitDeployment("dev", testInitOptions(contractDir))
	assert.NoError(t, err)
	_, err = InitDeployment("dev", testInitOptions(contractDir))
	assert.EqualError(t, err, "deployment 'dev' already exists")
}

func TestInitDeploymentMissingContractDir(t *testing.T) {
	useTempDeploymentsDir(t)
	options := testInitOptions(filepath.Join(t.TempDir(), "nope"))
	_, err := InitDeployment("dev", options)
	assert.Error(t, err)
}

func TestInitDeploymentExtraConfig(t *testing.T) {
	useTempDeploymentsDir(t)
	contractDir := makeContractProject(t)

	extraConfigPath := filepath.Join(t.TempDir(), "extra.yaml")
	err := os.WriteFile(extraConfigPath, []byte("gasLimit: 75000000\nunbondDuration: \"1800\"\n"), 0755)
	assert.NoError(t, err)

	options := testInitOptions(contractDir)
	options.ExtraConfigPath = extraConfigPath
	deployment, err := InitDeployment("dev", options)
	assert.NoError(t, err)
	assert.Equal(t, int64(75000000), deployment.Config.GasLimit)
	assert.Equal(t, "1800", deployment.Config.UnbondDuration)
	// untouched settings survive the merge
	assert.Equal(t, "CheckerChain", deployment.Config.TokenName)
}

func TestListDeployments(t *testing.T) {
	useTempDeploymentsDir(t)
	contractDir := makeContractProject(t)

	allDeployments, err := ListDeployments()
	assert.NoError(t, err)
	assert.Empty(t, allDeployments)

	_, err = InitDeployment("dev", testInitOptions(contractDir))
	assert.NoError(t, err)
	_, err = InitDeployment("staging", testInitOptions(contractDir))
	assert.NoError(t, err)

	allDeployments, err = ListDeployments()
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"dev", "staging"}, allDeployments)
}

func TestRemoveDeployment(t *testing.T) {
	useTempDeploymentsDir(t)
	contractDir := makeContractProject(t)

	_, err := InitDeployment("dev", testInitOptions(contractDir))
	assert.NoError(t, err)

	err = RemoveDeployment("dev")
	assert.NoError(t, err)

	exists, err := CheckExists("dev")
	assert.NoError(t, err)
	assert.False(t, exists)

	err = RemoveDeployment("dev")
	assert.EqualError(t, err, "deployment 'dev' does not exist")
}

func TestWriteAndReadState(t *testing.T) {
	useTempDeploymentsDir(t)
	contractDir := makeContractProject(t)

	deployment, err := InitDeployment("dev", testInitOptions(contractDir))
	assert.NoError(t, err)

	_, err = deployment.ReadState()
	assert.EqualError(t, err, "no deploy recorded for deployment 'dev' yet")

	err = deployment.WriteState(&types.DeploymentResult{
		ContractAddress: "erd1abc",
		TransactionHash: "0xdeadbeef",
	})
	assert.NoError(t, err)

	state, err := deployment.ReadState()
	assert.NoError(t, err)
	assert.Equal(t, "erd1abc", state.ContractAddress)
	assert.Equal(t, "0xdeadbeef", state.TransactionHash)
	assert.Equal(t, "D", state.ChainID)
	assert.NotEmpty(t, state.DeployedAt)
}

func TestLoadDeploymentNotExist(t *testing.T) {
	useTempDeploymentsDir(t)
	_, err := LoadDeployment("nope")
	assert.EqualError(t, err, "deployment 'nope' does not exist")
}

func TestLoadDeploymentEmptyConfig(t *testing.T) {
	useTempDeploymentsDir(t)
	contractDir := makeContractProject(t)

	deployment, err := InitDeployment("dev", testInitOptions(contractDir))
	assert.NoError(t, err)

	// deploy.yaml is user-editable, a truncated file must not panic
	err = os.WriteFile(filepath.Join(deployment.Dir, constants.ConfigFileName), []byte(""), 0755)
	assert.NoError(t, err)

	_, err = LoadDeployment("dev")
	assert.EqualError(t, err, "deployment config for 'dev' is empty")
}
