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
	"fmt"
	"path/filepath"

	"github.com/CheckerChain/soulbound-cli/internal/constants"
	"github.com/CheckerChain/soulbound-cli/internal/erdpy"
	"github.com/CheckerChain/soulbound-cli/internal/log"
	"github.com/CheckerChain/soulbound-cli/pkg/types"
)

// DeployManager drives the two-step build and deploy workflow for one
// deployment workspace. All tool invocations go through the IErdpyManager
// collaborator.
type DeployManager struct {
	Log          log.Logger
	erdpyManager erdpy.IErdpyManager
	workspaceDir string
	config       *types.DeploymentConfig
}

func NewDeployManager(logger log.Logger, erdpyManager erdpy.IErdpyManager, workspaceDir string, config *types.DeploymentConfig) *DeployManager {
	return &DeployManager{
		Log:          logger,
		erdpyManager: erdpyManager,
		workspaceDir: workspaceDir,
		config:       config,
	}
}

// OutfilePath is where the deploy tool writes its JSON result file. One fixed
// location per workspace, overwritten on every deploy.
func (m *DeployManager) OutfilePath() string {
	return filepath.Join(m.workspaceDir, constants.OutFileName)
}

// BuildContract compiles the contract project to a wasm artifact by invoking
// the external build tool. A non-zero exit propagates as-is. There is no
// cleanup of partial build output.
func (m *DeployManager) BuildContract(ctx context.Context) error {
	m.Log.Info(fmt.Sprintf("building contract project '%s'", m.config.ProjectDir))
	return m.erdpyManager.RunErdpyCommand(ctx, m.workspaceDir, "contract", "build", m.config.ProjectDir)
}

// DeployContract builds the contract (unless skipped), then invokes the
// deploy tool once to sign and submit the deploy transaction through the
// configured proxy. On a non-zero exit it returns immediately without
// touching the result file. Every invocation submits a new transaction.
func (m *DeployManager) DeployContract(ctx context.Context, options *types.DeployOptions) (*types.DeploymentResult, error) {
	if options == nil {
		options = &types.DeployOptions{}
	}
	if !options.SkipBuild {
		if err := m.BuildContract(ctx); err != nil {
			return nil, err
		}
	}
	outfile := m.OutfilePath()
	m.Log.Info(fmt.Sprintf("deploying contract to chain '%s' via %s", m.config.ChainID, m.config.ProxyURL))
	if err := m.erdpyManager.RunErdpyCommand(ctx, m.workspaceDir, deployArgs(m.config, outfile)...); err != nil {
		return nil, err
	}
	return ReadDeployResult(outfile)
}

// deployArgs assembles the full argument list for one deploy invocation. The
// tool handles nonce recall, signing with the PEM file, and submission.
func deployArgs(config *types.DeploymentConfig, outfile string) []string {
	// the original deployment passed the token name for both constructor
	// string arguments, so an unset symbol falls back to the name
	symbol := config.TokenSymbol
	if symbol == "" {
		symbol = config.TokenName
	}
	return []string{
		"contract", "deploy",
		fmt.Sprintf("--bytecode=%s", config.BytecodePath),
		fmt.Sprintf("--pem=%s", config.SigningKeyFile),
		fmt.Sprintf("--proxy=%s", config.ProxyURL),
		fmt.Sprintf("--chain=%s", config.ChainID),
		fmt.Sprintf("--outfile=%s", outfile),
		fmt.Sprintf("--gas-limit=%d", config.GasLimit),
		"--recall-nonce",
		"--arguments",
		stringArgument(config.TokenName),
		stringArgument(symbol),
		config.UnbondDuration,
		"--send",
	}
}

// stringArgument encodes a string constructor argument the way the tool
// expects. Numeric arguments pass through raw.
func stringArgument(value string) string {
	return "str:" + value
}
