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
	"testing"

	"github.com/CheckerChain/soulbound-cli/internal/utils"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
)

func TestGetNetworkConfig(t *testing.T) {
	utils.StartMockServer(t)
	defer utils.StopMockServer(t)

	httpmock.RegisterResponder("GET", utils.GatewayEndpoint+"/network/config",
		httpmock.NewStringResponder(200, `{"data":{"config":{"erd_chain_id":"D","erd_min_gas_limit":50000,"erd_min_gas_price":1000000000}},"error":"","code":"successful"}`))

	client := NewClient(utils.GatewayEndpoint)
	networkConfig, err := client.GetNetworkConfig(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "D", networkConfig.ChainID)
	assert.Equal(t, int64(50000), networkConfig.MinGasLimit)
}

func TestGetNetworkConfigUnexpectedResponse(t *testing.T) {
	utils.StartMockServer(t)
	defer utils.StopMockServer(t)

	httpmock.RegisterResponder("GET", utils.GatewayEndpoint+"/network/config",
		httpmock.NewStringResponder(200, `{"data":{},"error":"computing index","code":"internal_issue"}`))

	client := NewClient(utils.GatewayEndpoint)
	networkConfig, err := client.GetNetworkConfig(context.Background())
	assert.Error(t, err)
	assert.Nil(t, networkConfig)
	assert.Contains(t, err.Error(), "computing index")
}

func TestGetTransaction(t *testing.T) {
	utils.StartMockServer(t)
	defer utils.StopMockServer(t)

	httpmock.RegisterResponder("GET", utils.GatewayEndpoint+"/transaction/0xdeadbeef",
		httpmock.NewStringResponder(200, `{"data":{"transaction":{"nonce":7,"sender":"erd1sender","receiver":"erd1qqqqqqqqqqqqqpgq","gasLimit":60000000,"status":"success"}},"error":"","code":"successful"}`))

	client := NewClient(utils.GatewayEndpoint)
	tx, err := client.GetTransaction(context.Background(), "0xdeadbeef")
	assert.NoError(t, err)
	assert.Equal(t, "success", tx.Status)
	assert.Equal(t, uint64(7), tx.Nonce)
	assert.Equal(t, "erd1sender", tx.Sender)
}

func TestGetTransactionUnexpectedResponse(t *testing.T) {
	utils.StartMockServer(t)
	defer utils.StopMockServer(t)

	httpmock.RegisterResponder("GET", utils.GatewayEndpoint+"/transaction/0xmissing",
		httpmock.NewStringResponder(200, `{"data":{},"error":"transaction not found","code":"internal_issue"}`))

	client := NewClient(utils.GatewayEndpoint)
	tx, err := client.GetTransaction(context.Background(), "0xmissing")
	assert.Error(t, err)
	assert.Nil(t, tx)
}
