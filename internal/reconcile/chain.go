package reconcile

import "context"

// Block tags accepted by Chain.TransactionCount.
const (
	BlockLatest  = "latest"
	BlockPending = "pending"
)

// Receipt is the inclusion proof of a mined transaction.
type Receipt struct {
	BlockNumber uint64 // block the transaction was included in
	Successful  bool   // false when execution reverted
}

// Chain is the read access to a network needed to settle pending transactions.
type Chain interface {
	// TransactionReceipt returns the receipt of the transaction identified by
	// hash. found is false while the transaction is not mined.
	TransactionReceipt(ctx context.Context, hash string) (receipt Receipt, found bool, err error)

	// TransactionCount returns the number of transactions sent by address as
	// of block (BlockLatest or BlockPending). On the latest block it equals
	// the next nonce the network will accept from address.
	TransactionCount(ctx context.Context, address, block string) (uint64, error)
}
