// Package ethereum reads transaction and account state from Ethereum-compatible
// nodes over JSON-RPC. A single client serves the reconcile, nonce and balance
// packages.
package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/gabapcia/pendingwatch/internal/balance"
	"github.com/gabapcia/pendingwatch/internal/nonce"
	"github.com/gabapcia/pendingwatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/pendingwatch/internal/pkg/types"
	"github.com/gabapcia/pendingwatch/internal/reconcile"
)

// ErrEmptyResult is returned when the node answers null for a value that always exists.
var ErrEmptyResult = errors.New("node returned an empty result")

// receiptStatusSuccess is the receipt status of a transaction whose execution did not revert.
const receiptStatusSuccess = 1

// ReceiptResponse is the subset of an eth_getTransactionReceipt result the watcher needs.
type ReceiptResponse struct {
	TransactionHash string    `json:"transactionHash"`
	BlockHash       string    `json:"blockHash"`
	BlockNumber     types.Hex `json:"blockNumber"`
	From            string    `json:"from"`
	To              string    `json:"to"`
	GasUsed         types.Hex `json:"gasUsed"`
	Status          types.Hex `json:"status"`
}

func (r ReceiptResponse) toReceipt() reconcile.Receipt {
	return reconcile.Receipt{
		BlockNumber: r.BlockNumber.Uint64(),
		Successful:  r.Status.Uint64() == receiptStatusSuccess,
	}
}

// client talks to a single Ethereum node.
type client struct {
	conn jsonrpc.Client // Underlying JSON-RPC client used to interact with the Ethereum node
}

// Ensure client serves every consumer at compile time.
var (
	_ reconcile.Chain = (*client)(nil)
	_ nonce.Chain     = (*client)(nil)
	_ balance.Chain   = (*client)(nil)
)

// NewClient creates a new Ethereum client using the provided JSON-RPC connection.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}

// TransactionReceipt calls eth_getTransactionReceipt. Nodes answer null until
// the transaction is mined, which is reported as found=false.
func (c *client) TransactionReceipt(ctx context.Context, hash string) (reconcile.Receipt, bool, error) {
	resp, found, err := jsonrpc.Call[ReceiptResponse](ctx, c.conn, "eth_getTransactionReceipt", hash)
	if err != nil || !found {
		return reconcile.Receipt{}, false, err
	}

	return resp.toReceipt(), true, nil
}

// TransactionCount calls eth_getTransactionCount for address at block.
func (c *client) TransactionCount(ctx context.Context, address, block string) (uint64, error) {
	count, found, err := jsonrpc.Call[types.Hex](ctx, c.conn, "eth_getTransactionCount", address, block)
	if err != nil {
		return 0, err
	}

	if !found {
		return 0, fmt.Errorf("%w: eth_getTransactionCount", ErrEmptyResult)
	}

	return count.Uint64(), nil
}

// Balance calls eth_getBalance for address at the latest block.
func (c *client) Balance(ctx context.Context, address string) (*big.Int, error) {
	wei, found, err := jsonrpc.Call[types.Hex](ctx, c.conn, "eth_getBalance", address, reconcile.BlockLatest)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, fmt.Errorf("%w: eth_getBalance", ErrEmptyResult)
	}

	return wei.Big(), nil
}
