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

package types

import "fmt"

// DeploymentResult holds the two fields extracted from the deploy tool's
// result file after a successful submission.
type DeploymentResult struct {
	ContractAddress string `json:"contractAddress,omitempty"`
	TransactionHash string `json:"transactionHash,omitempty"`
}

// DeploymentConfig is the per-deployment configuration written to deploy.yaml
// when a workspace is initialized. It is loaded once per command and passed
// explicitly into build and deploy.
type DeploymentConfig struct {
	ProjectDir     string `json:"projectDir" yaml:"projectDir"`
	BytecodePath   string `json:"bytecodePath" yaml:"bytecodePath"`
	SigningKeyFile string `json:"signingKeyFile" yaml:"signingKeyFile"`
	ProxyURL       string `json:"proxyUrl" yaml:"proxyUrl"`
	ChainID        string `json:"chainId" yaml:"chainId"`
	GasLimit       int64  `json:"gasLimit" yaml:"gasLimit"`
	TokenName      string `json:"tokenName" yaml:"tokenName"`
	TokenSymbol    string `json:"tokenSymbol,omitempty" yaml:"tokenSymbol,omitempty"`
	UnbondDuration string `json:"unbondDuration,omitempty" yaml:"unbondDuration,omitempty"`
}

// Validate checks the fields the deploy tool cannot default for us. The unbond
// duration has no safe default, so it must always come from the user.
func (c *DeploymentConfig) Validate() error {
	if c.SigningKeyFile == "" {
		return fmt.Errorf("no signing key file configured for this deployment")
	}
	if c.ProxyURL == "" {
		return fmt.Errorf("no proxy URL configured for this deployment")
	}
	if c.ChainID == "" {
		return fmt.Errorf("no chain ID configured for this deployment")
	}
	if c.GasLimit <= 0 {
		return fmt.Errorf("gas limit must be a positive integer, got %d", c.GasLimit)
	}
	if c.TokenName == "" {
		return fmt.Errorf("no token name configured for this deployment")
	}
	if c.UnbondDuration == "" {
		return fmt.Errorf("no unbond duration configured for this deployment. Set 'unbondDuration' in deploy.yaml before deploying")
	}
	return nil
}

// DeploymentState records the outcome of the most recent deploy of a
// workspace. It is written next to deploy.yaml after every successful deploy.
type DeploymentState struct {
	ContractAddress string `json:"contractAddress,omitempty"`
	TransactionHash string `json:"transactionHash,omitempty"`
	ChainID         string `json:"chainId,omitempty"`
	DeployedAt      string `json:"deployedAt,omitempty"`
}
