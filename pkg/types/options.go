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

// InitOptions holds the flag values for "sbt init"
type InitOptions struct {
	ContractDir     string
	SigningKeyFile  string
	ProxyURL        string
	ChainID         string
	GasLimit        int64
	TokenName       string
	TokenSymbol     string
	UnbondDuration  string
	ExtraConfigPath string
}

// DeployOptions holds the flag values for "sbt deploy"
type DeployOptions struct {
	SkipBuild bool
}
