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
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/CheckerChain/soulbound-cli/internal/constants"
	"github.com/CheckerChain/soulbound-cli/pkg/types"
	"github.com/miracl/conflate"
	"github.com/otiai10/copy"
	"gopkg.in/yaml.v3"
)

// InitDeployment creates a new workspace: copies the contract project into it
// so builds are reproducible, and writes deploy.yaml from the init options.
func InitDeployment(deploymentName string, options *types.InitOptions) (*Deployment, error) {
	exists, err := CheckExists(deploymentName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("deployment '%s' already exists", deploymentName)
	}
	if options.ContractDir == "" {
		return nil, fmt.Errorf("no contract project directory specified")
	}
	if _, err := os.Stat(options.ContractDir); err != nil {
		return nil, fmt.Errorf("contract project directory '%s' is not readable: %s", options.ContractDir, err)
	}

	deploymentDir := filepath.Join(constants.DeploymentsDir, deploymentName)
	if err := os.MkdirAll(deploymentDir, 0755); err != nil {
		return nil, err
	}
	contractDir := filepath.Join(deploymentDir, constants.ContractDirName)
	if err := copy.Copy(options.ContractDir, contractDir); err != nil {
		return nil, err
	}

	projectName := path.Base(filepath.ToSlash(options.ContractDir))
	config := &types.DeploymentConfig{
		ProjectDir:     constants.ContractDirName,
		BytecodePath:   path.Join(constants.ContractDirName, "output", projectName+".wasm"),
		SigningKeyFile: options.SigningKeyFile,
		ProxyURL:       options.ProxyURL,
		ChainID:        options.ChainID,
		GasLimit:       options.GasLimit,
		TokenName:      options.TokenName,
		TokenSymbol:    options.TokenSymbol,
		UnbondDuration: options.UnbondDuration,
	}
	if err := WriteConfig(deploymentDir, config, options.ExtraConfigPath); err != nil {
		return nil, err
	}
	return LoadDeployment(deploymentName)
}

// WriteConfig writes deploy.yaml for a workspace. When an extra config file is
// given, it is merged over the generated one, so individual settings can be
// overridden without re-stating the whole file.
func WriteConfig(deploymentDir string, config *types.DeploymentConfig, extraConfigPath string) error {
	configBytes, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	configFile := filepath.Join(deploymentDir, constants.ConfigFileName)
	if err := os.WriteFile(configFile, configBytes, 0755); err != nil {
		return err
	}
	if extraConfigPath != "" {
		c, err := conflate.FromFiles(configFile, extraConfigPath)
		if err != nil {
			return err
		}
		configBytes, err := c.MarshalYAML()
		if err != nil {
			return err
		}
		if err := os.WriteFile(configFile, configBytes, 0755); err != nil {
			return err
		}
	}
	return nil
}
