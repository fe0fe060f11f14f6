package types

import (
	"context"

	"namechain/ledger"
)

// SlotStore is the host's record storage: pre-allocated fixed-size buffers
// addressed by deterministic identifiers. Reads and writes are synchronous
// and durable once the hosting invocation commits.
type SlotStore interface {
	ReadData(ctx context.Context, id ledger.Address) ([]byte, error)
	WriteData(ctx context.Context, id ledger.Address, data []byte) error
}

// BankKeeper is the host's value-transfer primitive. The registry only
// decides amount and direction; arithmetic checking lives with the host.
type BankKeeper interface {
	Transfer(ctx context.Context, from, to ledger.Address, amount uint64) error
	Balance(ctx context.Context, id ledger.Address) (uint64, error)
}

// Clock supplies the trusted current time, in unix seconds.
type Clock interface {
	Now() int64
}
