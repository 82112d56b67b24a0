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
	"encoding/json"
	"os"

	"github.com/CheckerChain/soulbound-cli/pkg/types"
)

/*
{
    "emitted_tx": {
        "tx": { ... },
        "hash": "0d2c7a...",
        "data": "...",
        "address": "erd1qqqqqqqqqqqqq..."
    }
}
*/

type emittedTx struct {
	Address string `json:"address,omitempty"`
	Hash    string `json:"hash,omitempty"`
}

type deployResultFile struct {
	EmittedTx *emittedTx `json:"emitted_tx,omitempty"`
}

// ReadDeployResult extracts the emitted transaction's contract address and
// hash from the deploy tool's result file. Only those two field paths are
// read. A result file without an emitted_tx yields empty strings rather than
// an error.
func ReadDeployResult(filePath string) (*types.DeploymentResult, error) {
	d, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var resultFile deployResultFile
	if err := json.Unmarshal(d, &resultFile); err != nil {
		return nil, err
	}
	result := &types.DeploymentResult{}
	if resultFile.EmittedTx != nil {
		result.ContractAddress = resultFile.EmittedTx.Address
		result.TransactionHash = resultFile.EmittedTx.Hash
	}
	return result, nil
}
