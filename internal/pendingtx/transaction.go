// Package pendingtx models the transactions an account has submitted but
// that are not yet confirmed or dropped, and provides the lookup helpers and
// storage contract used by the rest of the system.
package pendingtx

import (
	"strings"
	"time"

	"github.com/gabapcia/pendingwatch/internal/pkg/types"
)

// Status describes where a transaction is in its lifecycle.
type Status string

const (
	StatusSubmitted Status = "submitted" // broadcast, waiting for inclusion
	StatusConfirmed Status = "confirmed" // included with a successful receipt
	StatusFailed    Status = "failed"    // included with a reverted receipt
	StatusDropped   Status = "dropped"   // evicted or replaced by another transaction with the same nonce
)

// IsTerminal reports whether a transaction in this status leaves the pending list.
func (s Status) IsTerminal() bool {
	return s == StatusConfirmed || s == StatusFailed || s == StatusDropped
}

// Transaction is a submitted transaction that has not settled yet.
//
// Hashes and addresses are compared case-insensitively; a hash with or
// without the "0x" prefix names the same transaction.
type Transaction struct {
	Address     string         `json:"address" validate:"required"`          // owning account
	Hash        string         `json:"hash" validate:"required,hexadecimal"` // transaction hash
	ChainID     string         `json:"chainId" validate:"required"`          // network identifier
	Nonce       *uint64        `json:"nonce,omitempty"`                      // nil until known
	Status      Status         `json:"status"`                               // submitted unless settled
	SubmittedAt time.Time      `json:"submittedAt"`                          // insertion time, ordering key
	Payload     map[string]any `json:"payload,omitempty"`                    // opaque caller data
}

// NormalizeHash returns the canonical form of a transaction hash: lowercase
// with a "0x" prefix. ok is false when hash is empty or contains anything
// other than hexadecimal digits after the optional prefix.
func NormalizeHash(hash string) (normalized string, ok bool) {
	hash = strings.TrimSpace(hash)
	if len(hash) >= 2 && (hash[:2] == "0x" || hash[:2] == "0X") {
		hash = hash[2:]
	}

	if hash == "" {
		return "", false
	}

	for _, r := range hash {
		isDigit := r >= '0' && r <= '9'
		isLower := r >= 'a' && r <= 'f'
		isUpper := r >= 'A' && r <= 'F'
		if !isDigit && !isLower && !isUpper {
			return "", false
		}
	}

	return "0x" + strings.ToLower(hash), true
}

// NormalizeAddress returns the canonical (trimmed, lowercase) form of an account address.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// FindPendingByHash scans txs for the transaction identified by hash.
//
// The comparison is case-insensitive and tolerant of a missing "0x" prefix.
// A malformed query, or stored entries with malformed hashes, never match;
// the function does not panic on bad input.
func FindPendingByHash(txs []Transaction, hash string) (Transaction, bool) {
	want, ok := NormalizeHash(hash)
	if !ok {
		return Transaction{}, false
	}

	for _, tx := range txs {
		if got, ok := NormalizeHash(tx.Hash); ok && got == want {
			return tx, true
		}
	}

	return Transaction{}, false
}

// HashSet returns the normalized hashes of txs. Malformed hashes are skipped.
func HashSet(txs []Transaction) types.Set[string] {
	set := types.NewSet[string]()
	for _, tx := range txs {
		if h, ok := NormalizeHash(tx.Hash); ok {
			set.Add(h)
		}
	}

	return set
}

// SameHashes reports whether a and b describe the same set of transactions,
// ignoring order and hash casing.
func SameHashes(a, b []Transaction) bool {
	return HashSet(a).Equal(HashSet(b))
}

// ByChain groups txs by chain identifier, preserving their relative order.
func ByChain(txs []Transaction) map[string][]Transaction {
	grouped := make(map[string][]Transaction)
	for _, tx := range txs {
		grouped[tx.ChainID] = append(grouped[tx.ChainID], tx)
	}

	return grouped
}

// HighestNonce returns the largest known nonce among txs on chainID.
func HighestNonce(txs []Transaction, chainID string) (uint64, bool) {
	var (
		highest uint64
		found   bool
	)

	for _, tx := range txs {
		if tx.ChainID != chainID || tx.Nonce == nil {
			continue
		}

		if !found || *tx.Nonce > highest {
			highest = *tx.Nonce
			found = true
		}
	}

	return highest, found
}
