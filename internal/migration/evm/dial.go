package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

// DefaultRPCURL is the public Celo endpoint used when no override is configured.
const DefaultRPCURL = "https://forno.celo.org"

// Client is a JSON-RPC connection to an http(s) or ws(s) endpoint.
// Websocket endpoints are dialed on first use and redialed after a failed
// dial, so an unreachable endpoint surfaces as a query error.
type Client struct {
	url string

	mu     sync.Mutex
	client *ethclient.Client
}

// Dial validates rawURL and prepares a client for it.
// For http endpoints timeout bounds every request; zero disables it.
func Dial(ctx context.Context, rawURL string, timeout time.Duration) (*Client, error) {
	if rawURL == "" {
		rawURL = DefaultRPCURL
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	c := &Client{url: rawURL}
	switch parsed.Scheme {
	case "http", "https":
		rc, err := rpc.DialOptions(ctx, rawURL, rpc.WithHTTPClient(&http.Client{Timeout: timeout}))
		if err != nil {
			return nil, fmt.Errorf("dial rpc: %w", err)
		}
		c.client = ethclient.NewClient(rc)
	case "ws", "wss":
	default:
		return nil, fmt.Errorf("rpc url scheme %q not supported", parsed.Scheme)
	}
	return c, nil
}

func (c *Client) conn(ctx context.Context) (*ethclient.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client != nil {
		return c.client, nil
	}
	rc, err := rpc.DialContext(ctx, c.url)
	if err != nil {
		return nil, fmt.Errorf("dial rpc: %w", err)
	}
	c.client = ethclient.NewClient(rc)
	return c.client, nil
}

// BlockNumber returns the latest block number.
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	client, err := c.conn(ctx)
	if err != nil {
		return 0, err
	}
	return client.BlockNumber(ctx)
}

// ChainID returns the chain id reported by the endpoint.
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	client, err := c.conn(ctx)
	if err != nil {
		return nil, err
	}
	return client.ChainID(ctx)
}

// Close releases the connection if one was established.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client != nil {
		c.client.Close()
		c.client = nil
	}
}
