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
	"context"
	"fmt"
	"net/url"
	"path"
)

// Client is a read-only client for the network proxy gateway's REST API.
// Transaction submission itself stays with the external deploy tool.
type Client struct {
	BaseURL string
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
	}
}

type NetworkConfig struct {
	ChainID     string `json:"erd_chain_id"`
	MinGasLimit int64  `json:"erd_min_gas_limit,omitempty"`
	MinGasPrice int64  `json:"erd_min_gas_price,omitempty"`
}

type networkConfigResponse struct {
	Data struct {
		Config *NetworkConfig `json:"config"`
	} `json:"data"`
	Error string `json:"error,omitempty"`
	Code  string `json:"code,omitempty"`
}

type Transaction struct {
	Nonce    uint64 `json:"nonce,omitempty"`
	Sender   string `json:"sender,omitempty"`
	Receiver string `json:"receiver,omitempty"`
	GasLimit int64  `json:"gasLimit,omitempty"`
	Status   string `json:"status,omitempty"`
}

type transactionResponse struct {
	Data struct {
		Transaction *Transaction `json:"transaction"`
	} `json:"data"`
	Error string `json:"error,omitempty"`
	Code  string `json:"code,omitempty"`
}

// GetNetworkConfig fetches the gateway's network parameters, including the
// chain ID the gateway actually fronts.
func (c *Client) GetNetworkConfig(ctx context.Context) (*NetworkConfig, error) {
	requestURL, err := c.resolve("network", "config")
	if err != nil {
		return nil, err
	}
	response := &networkConfigResponse{}
	if err := RequestWithRetry(ctx, "GET", requestURL, nil, response); err != nil {
		return nil, err
	}
	if response.Code != "successful" || response.Data.Config == nil {
		return nil, fmt.Errorf("gateway returned an unexpected response: %s", response.Error)
	}
	return response.Data.Config, nil
}

// GetTransaction looks up a transaction by hash.
func (c *Client) GetTransaction(ctx context.Context, hash string) (*Transaction, error) {
	requestURL, err := c.resolve("transaction", hash)
	if err != nil {
		return nil, err
	}
	response := &transactionResponse{}
	if err := RequestWithRetry(ctx, "GET", requestURL, nil, response); err != nil {
		return nil, err
	}
	if response.Code != "successful" || response.Data.Transaction == nil {
		return nil, fmt.Errorf("gateway returned an unexpected response: %s", response.Error)
	}
	return response.Data.Transaction, nil
}

func (c *Client) resolve(elem ...string) (string, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", err
	}
	u.Path = path.Join(append([]string{u.Path}, elem...)...)
	return u.String(), nil
}
