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

package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/CheckerChain/soulbound-cli/internal/log"
)

// RequestWithRetry makes a JSON request against the gateway, retrying briefly
// so a freshly submitted transaction has time to be indexed.
func RequestWithRetry(ctx context.Context, method, url string, body, result interface{}) (err error) {
	verbose := log.VerbosityFromContext(ctx)
	retries := 5
	for {
		if err := request(method, url, body, result); err != nil {
			if retries > 0 {
				if verbose {
					fmt.Printf("%s - retrying request...\n", err.Error())
				}
				retries--
				time.Sleep(1 * time.Second)
			} else {
				return err
			}
		} else {
			return nil
		}
	}
}

func request(method, url string, body, result interface{}) (err error) {
	var bodyReader io.Reader
	if body != nil {
		requestBody, err := json.Marshal(&body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(requestBody)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		responseBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s [%d] %s", url, resp.StatusCode, responseBytes)
	}

	return json.NewDecoder(resp.Body).Decode(&result)
}
