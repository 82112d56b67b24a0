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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/CheckerChain/soulbound-cli/internal/constants"
	"github.com/CheckerChain/soulbound-cli/pkg/types"
	"gopkg.in/yaml.v3"
)

// Deployment is one initialized workspace under the deployments directory:
// a deploy.yaml, a snapshot of the contract project, and the state of the
// last deploy.
type Deployment struct {
	Name   string
	Dir    string
	Config *types.DeploymentConfig
}

func CheckExists(deploymentName string) (bool, error) {
	_, err := os.Stat(filepath.Join(constants.DeploymentsDir, deploymentName, constants.ConfigFileName))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func ListDeployments() ([]string, error) {
	deployments := make([]string, 0)
	deploymentsDir, err := os.ReadDir(constants.DeploymentsDir)
	if os.IsNotExist(err) {
		return deployments, nil
	}
	if err != nil {
		return nil, err
	}
	for _, entry := range deploymentsDir {
		if !entry.IsDir() {
			continue
		}
		if exists, err := CheckExists(entry.Name()); err != nil {
			return nil, err
		} else if exists {
			deployments = append(deployments, entry.Name())
		}
	}
	return deployments, nil
}

func RemoveDeployment(deploymentName string) error {
	exists, err := CheckExists(deploymentName)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("deployment '%s' does not exist", deploymentName)
	}
	return os.RemoveAll(filepath.Join(constants.DeploymentsDir, deploymentName))
}

// LoadDeployment reads a workspace's deploy.yaml back into a Deployment.
func LoadDeployment(deploymentName string) (*Deployment, error) {
	exists, err := CheckExists(deploymentName)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("deployment '%s' does not exist", deploymentName)
	}
	deploymentDir := filepath.Join(constants.DeploymentsDir, deploymentName)
	d, err := os.ReadFile(filepath.Join(deploymentDir, constants.ConfigFileName))
	if err != nil {
		return nil, err
	}
	var config *types.DeploymentConfig
	if err := yaml.Unmarshal(d, &config); err != nil {
		return nil, err
	}
	if config == nil {
		return nil, fmt.Errorf("deployment config for '%s' is empty", deploymentName)
	}
	if config.TokenSymbol == "" {
		config.TokenSymbol = config.TokenName
	}
	return &Deployment{
		Name:   deploymentName,
		Dir:    deploymentDir,
		Config: config,
	}, nil
}

// WriteState records the outcome of a successful deploy next to deploy.yaml,
// overwriting any previous record.
func (d *Deployment) WriteState(result *types.DeploymentResult) error {
	state := &types.DeploymentState{
		ContractAddress: result.ContractAddress,
		TransactionHash: result.TransactionHash,
		ChainID:         d.Config.ChainID,
		DeployedAt:      time.Now().UTC().Format(time.RFC3339),
	}
	stateBytes, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(d.Dir, constants.StateFileName), stateBytes, 0755)
}

// ReadState returns the last recorded deploy, or an error if this workspace
// has never deployed successfully.
func (d *Deployment) ReadState() (*types.DeploymentState, error) {
	stateBytes, err := os.ReadFile(filepath.Join(d.Dir, constants.StateFileName))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("no deploy recorded for deployment '%s' yet", d.Name)
	}
	if err != nil {
		return nil, err
	}
	var state *types.DeploymentState
	if err := json.Unmarshal(stateBytes, &state); err != nil {
		return nil, err
	}
	return state, nil
}
