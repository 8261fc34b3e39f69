package evm

import (
	"context"
	"fmt"
)

// HeightSource reports the chain tip for the height poller.
type HeightSource struct {
	rpc EthClient
}

// NewHeightSource creates a HeightSource backed by rpc.
func NewHeightSource(rpc EthClient) *HeightSource {
	return &HeightSource{rpc: rpc}
}

// LatestHeight returns the latest block height from the node.
func (s *HeightSource) LatestHeight(ctx context.Context) (uint64, error) {
	height, err := s.rpc.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("get block number: %w", err)
	}
	return height, nil
}

// ChainID returns the decimal chain id of the endpoint.
func (s *HeightSource) ChainID(ctx context.Context) (string, error) {
	id, err := s.rpc.ChainID(ctx)
	if err != nil {
		return "", fmt.Errorf("get chain id: %w", err)
	}
	return id.String(), nil
}
