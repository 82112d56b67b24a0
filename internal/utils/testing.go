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

package utils

import (
	"bytes"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/sirupsen/logrus"
)

var logMutex sync.Mutex

// GatewayEndpoint is the mock proxy gateway base URL used across tests
var GatewayEndpoint = "http://localhost:7950"

func StartMockServer(_ *testing.T) {
	httpmock.Activate()
}

func StopMockServer(_ *testing.T) {
	httpmock.DeactivateAndReset()
}

// ReadFileToString reads the contents of a file and returns it as a string.
func ReadFileToString(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// CaptureOutput redirects standard output and logrus output into a buffer
// until the returned restore function is called.
func CaptureOutput() (func(), *bytes.Buffer) {
	originalOutput := os.Stdout

	reader, writer, _ := os.Pipe()
	os.Stdout = writer

	logMutex.Lock()
	logrus.SetOutput(writer)
	logMutex.Unlock()

	buffer := &bytes.Buffer{}
	done := make(chan struct{})
	go func() {
		_, _ = io.Copy(buffer, reader)
		close(done)
	}()

	return func() {
		_ = writer.Close()
		<-done
		os.Stdout = originalOutput
		logMutex.Lock()
		logrus.SetOutput(originalOutput)
		logMutex.Unlock()
	}, buffer
}
