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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCmd(t *testing.T) {
	rootCmd.SetArgs([]string{"version"})
	err := rootCmd.Execute()
	assert.NoError(t, err)
}

func TestVersionCmdShort(t *testing.T) {
	rootCmd.SetArgs([]string{"version", "--short"})
	err := rootCmd.Execute()
	assert.NoError(t, err)
}

func TestVersionCmdBadOutput(t *testing.T) {
	rootCmd.SetArgs([]string{"version", "--output", "toml"})
	err := rootCmd.Execute()
	assert.Error(t, err)
}
