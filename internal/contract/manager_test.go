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

package contract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/CheckerChain/soulbound-cli/internal/constants"
	"github.com/CheckerChain/soulbound-cli/internal/erdpy/mocks"
	"github.com/CheckerChain/soulbound-cli/internal/log"
	"github.com/CheckerChain/soulbound-cli/pkg/types"
	"github.com/stretchr/testify/assert"
)

func testConfig() *types.DeploymentConfig {
	return &types.DeploymentConfig{
		ProjectDir:     "contract",
		BytecodePath:   "contract/output/soulbound.wasm",
		SigningKeyFile: "wallet.pem",
		ProxyURL:       "https://devnet-gateway.elrond.com",
		ChainID:        "D",
		GasLimit:       60000000,
		TokenName:      "CheckerChain",
		UnbondDuration: "900",
	}
}

func TestDeployContract(t *testing.T) {
	dir := t.TempDir()
	erdpyManager := mocks.NewErdpyManager()
	erdpyManager.RunHook = func(workingDir string, command ...string) error {
		if len(command) > 1 && command[1] == "deploy" {
			return os.WriteFile(filepath.Join(dir, constants.OutFileName), []byte(`{"emitted_tx":{"address":"erd1abc","hash":"0xdeadbeef"}}`), 0755)
		}
		return nil
	}

	manager := NewDeployManager(&log.StdoutLogger{}, erdpyManager, dir, testConfig())
	result, err := manager.DeployContract(context.Background(), nil)
	assert.NoError(t, err)
	assert.Equal(t, "erd1abc", result.ContractAddress)
	assert.Equal(t, "0xdeadbeef", result.TransactionHash)

	// build must run before deploy
	assert.Len(t, erdpyManager.Commands, 2)
	assert.Equal(t, []string{"contract", "build", "contract"}, erdpyManager.Commands[0])
	assert.Equal(t, "deploy", erdpyManager.Commands[1][1])
}

func TestDeployContractBuildFailure(t *testing.T) {
	dir := t.TempDir()
	erdpyManager := mocks.NewErdpyManager()
	erdpyManager.Errors["build"] = errors.New("exit status 1")

	manager := NewDeployManager(&log.StdoutLogger{}, erdpyManager, dir, testConfig())
	result, err := manager.DeployContract(context.Background(), nil)
	assert.Error(t, err)
	assert.Nil(t, result)

	// deploy must never be invoked when the build fails
	assert.Len(t, erdpyManager.Commands, 1)
	assert.Equal(t, []string{"contract", "build", "contract"}, erdpyManager.Commands[0])
}

func TestDeployContractDeployFailure(t *testing.T) {
	dir := t.TempDir()
	// a stale result file from an earlier run must not be read on failure
	err := os.WriteFile(filepath.Join(dir, constants.OutFileName), []byte(`{"emitted_tx":{"address":"erd1stale","hash":"0xstale"}}`), 0755)
	assert.NoError(t, err)

	erdpyManager := mocks.NewErdpyManager()
	erdpyManager.Errors["deploy"] = errors.New("exit status 1")

	manager := NewDeployManager(&log.StdoutLogger{}, erdpyManager, dir, testConfig())
	result, err := manager.DeployContract(context.Background(), nil)
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestDeployContractSkipBuild(t *testing.T) {
	dir := t.TempDir()
	erdpyManager := mocks.NewErdpyManager()
	erdpyManager.RunHook = func(workingDir string, command ...string) error {
		return os.WriteFile(filepath.Join(dir, constants.OutFileName), []byte(`{"emitted_tx":{"address":"erd1abc","hash":"0xdeadbeef"}}`), 0755)
	}

	manager := NewDeployManager(&log.StdoutLogger{}, erdpyManager, dir, testConfig())
	result, err := manager.DeployContract(context.Background(), &types.DeployOptions{SkipBuild: true})
	assert.NoError(t, err)
	assert.Equal(t, "erd1abc", result.ContractAddress)

	assert.Len(t, erdpyManager.Commands, 1)
	assert.Equal(t, "deploy", erdpyManager.Commands[0][1])
}

func TestDeployArgs(t *testing.T) {
	args := deployArgs(testConfig(), "/workspaces/dev/deploy.interaction.json")
	assert.Equal(t, []string{
		"contract", "deploy",
		"--bytecode=contract/output/soulbound.wasm",
		"--pem=wallet.pem",
		"--proxy=https://devnet-gateway.elrond.com",
		"--chain=D",
		"--outfile=/workspaces/dev/deploy.interaction.json",
		"--gas-limit=60000000",
		"--recall-nonce",
		"--arguments", "str:CheckerChain", "str:CheckerChain", "900",
		"--send",
	}, args)
}

func TestDeployArgsExplicitSymbol(t *testing.T) {
	config := testConfig()
	config.TokenSymbol = "CHECKR"
	args := deployArgs(config, "out.json")
	assert.Contains(t, args, "str:CHECKR")
	assert.Contains(t, args, "str:CheckerChain")
}
