package evm

import (
	"context"
	"math/big"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// EthClient is the subset of ethclient.Client used by the dashboard.
	EthClient interface {
		BlockNumber(ctx context.Context) (uint64, error)
		ChainID(ctx context.Context) (*big.Int, error)
	}
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
