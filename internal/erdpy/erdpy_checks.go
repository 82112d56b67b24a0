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
	"fmt"
	"strings"
)

// CheckErdpyConfig checks that the Elrond SDK tool is installed on the host
// before any command that needs it runs.
func CheckErdpyConfig() error {
	version, err := RunErdpyCommandBuffered(context.Background(), "", "--version")
	if err != nil {
		return fmt.Errorf("an error occurred while running erdpy. Is the Elrond SDK installed on your computer?")
	}
	if strings.TrimSpace(version) == "" {
		return fmt.Errorf("erdpy did not report a version. Is the Elrond SDK installed correctly?")
	}
	return nil
}
