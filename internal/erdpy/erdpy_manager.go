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
	"context"
)

// IErdpyManager is the process-invocation collaborator for the external
// contract tooling, so commands that shell out can be substituted with a
// fake in tests.
type IErdpyManager interface {
	RunErdpyCommand(ctx context.Context, workingDir string, command ...string) error
	RunErdpyCommandBuffered(ctx context.Context, workingDir string, command ...string) (string, error)
}

// ErdpyManager implements IErdpyManager
type ErdpyManager struct{}

func NewErdpyManager() *ErdpyManager {
	return &ErdpyManager{}
}

func (mgr *ErdpyManager) RunErdpyCommand(ctx context.Context, workingDir string, command ...string) error {
	return RunErdpyCommand(ctx, workingDir, command...)
}

func (mgr *ErdpyManager) RunErdpyCommandBuffered(ctx context.Context, workingDir string, command ...string) (string, error) {
	return RunErdpyCommandBuffered(ctx, workingDir, command...)
}
