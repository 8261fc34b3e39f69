// Package evm talks to EVM-compatible chain endpoints over JSON-RPC.
package evm

import (
	"context"
	"math/big"
	"time"
)

// RPCClient wraps an eth client with metrics instrumentation.
type RPCClient struct {
	client     EthClient
	rpcMetrics RPCMetrics
}

// NewRPCClient constructs an instrumented RPC client.
func NewRPCClient(client EthClient, rpcMetrics RPCMetrics) *RPCClient {
	return &RPCClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

// BlockNumber returns the latest block number.
func (r *RPCClient) BlockNumber(ctx context.Context) (number uint64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("eth_blockNumber", err, started)
	}()
	return r.client.BlockNumber(ctx)
}

// ChainID returns the chain id reported by the endpoint.
func (r *RPCClient) ChainID(ctx context.Context) (id *big.Int, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("eth_chainId", err, started)
	}()
	return r.client.ChainID(ctx)
}
