package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gabapcia/pendingwatch/internal/pendingtx"
	"github.com/gabapcia/pendingwatch/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// pendingtxKeyPrefix is the Redis key namespace of pending transactions.
const pendingtxKeyPrefix = "pendingtx"

// pendingtxDataKey is the hash holding the JSON document of each pending
// transaction of address, keyed by transaction hash.
func pendingtxDataKey(address string) string {
	return fmt.Sprintf("%s:%s:data", pendingtxKeyPrefix, address)
}

// pendingtxOrderKey is the sorted set of the pending hashes of address,
// scored by insertion sequence.
func pendingtxOrderKey(address string) string {
	return fmt.Sprintf("%s:%s:order", pendingtxKeyPrefix, address)
}

// pendingtxSeqKey is the counter that provides the insertion sequence of address.
func pendingtxSeqKey(address string) string {
	return fmt.Sprintf("%s:%s:seq", pendingtxKeyPrefix, address)
}

// pendingtxChangesChannel is the Pub/Sub channel announcing changes to the
// pending list of address.
func pendingtxChangesChannel(address string) string {
	return fmt.Sprintf("%s:%s:changes", pendingtxKeyPrefix, address)
}

// addPendingTxScript stores a transaction unless its hash is already pending.
//
// KEYS: data, order, seq. ARGV: hash, document.
// Returns 1 when stored, 0 when the hash was already there.
var addPendingTxScript = redis.NewScript(`
if redis.call('HSETNX', KEYS[1], ARGV[1], ARGV[2]) == 0 then
	return 0
end
local seq = redis.call('INCR', KEYS[3])
redis.call('ZADD', KEYS[2], seq, ARGV[1])
return 1
`)

// Add stores tx atomically in both the data hash and the order set.
//
// Returns pendingtx.ErrTransactionAlreadyPending if the hash is already stored for the address.
func (c *client) Add(ctx context.Context, tx pendingtx.Transaction) error {
	doc, err := json.Marshal(tx)
	if err != nil {
		return err
	}

	keys := []string{
		pendingtxDataKey(tx.Address),
		pendingtxOrderKey(tx.Address),
		pendingtxSeqKey(tx.Address),
	}

	stored, err := addPendingTxScript.Run(ctx, c.conn, keys, tx.Hash, doc).Int()
	if err != nil {
		return err
	}

	if stored == 0 {
		return pendingtx.ErrTransactionAlreadyPending
	}

	c.announce(ctx, tx.Address)
	return nil
}

// Remove deletes a pending transaction from both structures in a single transaction.
//
// Returns pendingtx.ErrTransactionNotFound if the hash was not stored.
func (c *client) Remove(ctx context.Context, address, hash string) error {
	var deleted *redis.IntCmd
	_, err := c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		deleted = pipe.HDel(ctx, pendingtxDataKey(address), hash)
		pipe.ZRem(ctx, pendingtxOrderKey(address), hash)
		return nil
	})
	if err != nil {
		return err
	}

	if deleted.Val() == 0 {
		return pendingtx.ErrTransactionNotFound
	}

	c.announce(ctx, address)
	return nil
}

// announce publishes a change of address to its Pub/Sub channel. The write
// already succeeded, so a failed publish is only logged; watchers that missed
// it catch up on their next resync.
func (c *client) announce(ctx context.Context, address string) {
	if err := c.conn.Publish(ctx, pendingtxChangesChannel(address), address).Err(); err != nil {
		logger.Warn(ctx, "failed to announce pending transaction change",
			"tx.address", address,
			"error", err,
		)
	}
}

// Watch subscribes to the change channel of address and calls handler for
// every message, including the ones published by other processes. It returns
// after Redis confirmed the subscription. Handlers run on a dedicated
// goroutine that outlives ctx; stop ends it and waits for it to return.
func (c *client) Watch(ctx context.Context, address string, handler func(ctx context.Context, address string)) (func(), error) {
	sub := c.conn.Subscribe(ctx, pendingtxChangesChannel(address))
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, err
	}

	ctx = context.WithoutCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for range sub.Channel() {
			handler(ctx, address)
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			_ = sub.Close()
			<-done
		})
	}, nil
}

// List returns the pending transactions of address in insertion order.
//
// Documents that disappeared between the two reads or no longer decode are
// skipped, so stale data written by older versions cannot break readers.
func (c *client) List(ctx context.Context, address string) ([]pendingtx.Transaction, error) {
	hashes, err := c.conn.ZRange(ctx, pendingtxOrderKey(address), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	txs := make([]pendingtx.Transaction, 0, len(hashes))
	if len(hashes) == 0 {
		return txs, nil
	}

	docs, err := c.conn.HMGet(ctx, pendingtxDataKey(address), hashes...).Result()
	if err != nil {
		return nil, err
	}

	for i, doc := range docs {
		raw, ok := doc.(string)
		if !ok {
			continue
		}

		var tx pendingtx.Transaction
		if err := json.Unmarshal([]byte(raw), &tx); err != nil {
			logger.Warn(ctx, "skipping undecodable pending transaction",
				"tx.address", address,
				"tx.hash", hashes[i],
				"error", err,
			)
			continue
		}

		txs = append(txs, tx)
	}

	return txs, nil
}

// Ensure the client satisfies the pendingtx.Store and pendingtx.Feed interfaces at compile time.
var (
	_ pendingtx.Store = new(client)
	_ pendingtx.Feed  = new(client)
)
