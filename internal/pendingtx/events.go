package pendingtx

// Changed is published whenever the pending list of Address is modified.
type Changed struct {
	Address string // normalized account address
}

// Settled is published when a pending transaction reaches a terminal status
// and leaves the pending list.
type Settled struct {
	Transaction Transaction // the transaction as it was pending
	Status      Status      // confirmed, failed or dropped
	BlockNumber uint64      // inclusion block; zero for dropped transactions
}
