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

package erdpy

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	"github.com/CheckerChain/soulbound-cli/internal/constants"
	"github.com/CheckerChain/soulbound-cli/internal/log"
)

// RunErdpyCommand invokes the Elrond SDK tool once, synchronously, and waits
// for it to exit. The tool's stderr always goes to the console so its own
// error output is what the user sees on failure.
func RunErdpyCommand(ctx context.Context, workingDir string, command ...string) error {
	if log.VerbosityFromContext(ctx) {
		command = append([]string{"--verbose"}, command...)
	}
	erdpyCmd := exec.CommandContext(ctx, constants.ErdpyBinaryName, command...)
	erdpyCmd.Dir = workingDir
	if log.VerbosityFromContext(ctx) {
		erdpyCmd.Stdout = os.Stdout
	}
	erdpyCmd.Stderr = os.Stderr
	return erdpyCmd.Run()
}

// RunErdpyCommandBuffered invokes the tool and returns its stdout instead of
// streaming it.
func RunErdpyCommandBuffered(ctx context.Context, workingDir string, command ...string) (string, error) {
	erdpyCmd := exec.CommandContext(ctx, constants.ErdpyBinaryName, command...)
	erdpyCmd.Dir = workingDir
	outputBuff := bytes.Buffer{}
	erdpyCmd.Stdout = &outputBuff
	erdpyCmd.Stderr = os.Stderr
	err := erdpyCmd.Run()
	return outputBuff.String(), err
}
