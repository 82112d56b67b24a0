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

package constants

import (
	"os"
	"path/filepath"
)

var homeDir, _ = os.UserHomeDir()
var DeploymentsDir = filepath.Join(homeDir, ".soulbound", "deployments")

// ErdpyBinaryName is the Elrond SDK command line tool used for compiling the
// contract and for signing and submitting the deploy transaction.
var ErdpyBinaryName = "erdpy"

var DefaultProxyURL = "https://devnet-gateway.elrond.com"
var DefaultChainID = "D"
var MainnetChainID = "1"
var DefaultGasLimit int64 = 60000000
var DefaultTokenName = "CheckerChain"

const (
	ConfigFileName  = "deploy.yaml"
	StateFileName   = "state.json"
	OutFileName     = "deploy.interaction.json"
	ContractDirName = "contract"
	KeystoreDirName = "keystore"
)
