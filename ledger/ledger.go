package ledger

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	dbm "github.com/cosmos/cosmos-db"
)

var (
	// AccountsPrefix keys the account table.
	AccountsPrefix = collections.NewPrefix("accounts/value/")
	// SupplyPrefix keys the total minted value item.
	SupplyPrefix = collections.NewPrefix("supply/")
)

// MaxDataSize caps one account's storage buffer.
const MaxDataSize = 10 * 1024

// Ledger is the hosting environment: a deterministic account store with
// whole-invocation atomicity. Each account holds value and, once allocated,
// a fixed-size data buffer. The registry program is its only writer.
type Ledger struct {
	db     dbm.DB
	logger log.Logger

	Schema   collections.Schema
	Accounts collections.Map[[]byte, Account]
	Supply   collections.Item[math.Int]
}

func New(db dbm.DB, logger log.Logger) (*Ledger, error) {
	sb := collections.NewSchemaBuilder(kvStoreService{db: db})

	l := &Ledger{
		db:       db,
		logger:   logger.With("component", "ledger"),
		Accounts: collections.NewMap(sb, AccountsPrefix, "accounts", collections.BytesKey, AccountValue),
		Supply:   collections.NewItem(sb, SupplyPrefix, "supply", IntValue),
	}

	schema, err := sb.Build()
	if err != nil {
		return nil, err
	}
	l.Schema = schema

	return l, nil
}

// WithTx runs fn against a branch of the store and flushes the branch in one
// batch only when fn returns nil. Any error discards every staged write, so
// an invocation's effects, nested transfers included, commit all-or-nothing.
func (l *Ledger) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	branch := newBranchStore(l.db)
	if err := fn(context.WithValue(ctx, txContextKey{}, branch)); err != nil {
		return err
	}

	batch := l.db.NewBatch()
	defer batch.Close()
	if err := branch.flush(batch); err != nil {
		return err
	}
	return batch.WriteSync()
}

func (l *Ledger) account(ctx context.Context, id Address) (Account, error) {
	acc, err := l.Accounts.Get(ctx, id.Bytes())
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return Account{}, nil
		}
		return Account{}, err
	}
	return acc, nil
}

// Allocate creates the storage slot backing one record: a zero-filled buffer
// of exactly size bytes. Records must be allocated before the program touches
// them; allocating twice fails.
func (l *Ledger) Allocate(ctx context.Context, id Address, size int) error {
	if size <= 0 || size > MaxDataSize {
		return ErrInvalidAllocation.Wrapf("size %d", size)
	}
	acc, err := l.account(ctx, id)
	if err != nil {
		return err
	}
	if acc.Allocated() {
		return ErrAlreadyAllocated.Wrap(id.String())
	}
	acc.Data = make([]byte, size)
	return l.Accounts.Set(ctx, id.Bytes(), acc)
}

// ReadData returns a copy of the slot's buffer.
func (l *Ledger) ReadData(ctx context.Context, id Address) ([]byte, error) {
	acc, err := l.account(ctx, id)
	if err != nil {
		return nil, err
	}
	if !acc.Allocated() {
		return nil, ErrNotAllocated.Wrap(id.String())
	}
	out := make([]byte, len(acc.Data))
	copy(out, acc.Data)
	return out, nil
}

// WriteData replaces the slot's buffer. The new contents must match the
// allocated size exactly.
func (l *Ledger) WriteData(ctx context.Context, id Address, data []byte) error {
	acc, err := l.account(ctx, id)
	if err != nil {
		return err
	}
	if !acc.Allocated() {
		return ErrNotAllocated.Wrap(id.String())
	}
	if len(data) != len(acc.Data) {
		return ErrSizeMismatch.Wrapf("allocated %d, got %d", len(acc.Data), len(data))
	}
	acc.Data = make([]byte, len(data))
	copy(acc.Data, data)
	return l.Accounts.Set(ctx, id.Bytes(), acc)
}

// Balance returns the value held by an account; absent accounts hold zero.
func (l *Ledger) Balance(ctx context.Context, id Address) (uint64, error) {
	acc, err := l.account(ctx, id)
	if err != nil {
		return 0, err
	}
	return acc.Balance, nil
}

// Transfer moves value between accounts with checked arithmetic. The debit
// fails on insufficient funds, the credit fails distinctly on overflow.
func (l *Ledger) Transfer(ctx context.Context, from, to Address, amount uint64) error {
	if amount == 0 || from == to {
		return nil
	}
	src, err := l.account(ctx, from)
	if err != nil {
		return err
	}
	if src.Balance < amount {
		return ErrInsufficientFunds.Wrapf("account %s holds %d, needs %d", from, src.Balance, amount)
	}
	dst, err := l.account(ctx, to)
	if err != nil {
		return err
	}
	credited, ok := checkedAdd(dst.Balance, amount)
	if !ok {
		return ErrAmountOverflow.Wrap(to.String())
	}
	src.Balance -= amount
	dst.Balance = credited
	if err := l.Accounts.Set(ctx, from.Bytes(), src); err != nil {
		return err
	}
	return l.Accounts.Set(ctx, to.Bytes(), dst)
}

// Mint credits freshly issued value to an account and tracks the total in
// Supply. Used by genesis and test setup only; the program itself never mints.
func (l *Ledger) Mint(ctx context.Context, id Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	acc, err := l.account(ctx, id)
	if err != nil {
		return err
	}
	credited, ok := checkedAdd(acc.Balance, amount)
	if !ok {
		return ErrAmountOverflow.Wrap(id.String())
	}
	acc.Balance = credited

	supply, err := l.Supply.Get(ctx)
	if err != nil {
		if !errors.Is(err, collections.ErrNotFound) {
			return err
		}
		supply = math.ZeroInt()
	}
	supply = supply.Add(math.NewIntFromUint64(amount))

	if err := l.Accounts.Set(ctx, id.Bytes(), acc); err != nil {
		return err
	}
	return l.Supply.Set(ctx, supply)
}

// TotalSupply reports the value minted so far.
func (l *Ledger) TotalSupply(ctx context.Context) (math.Int, error) {
	supply, err := l.Supply.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.Int{}, err
	}
	return supply, nil
}

func checkedAdd(a, b uint64) (uint64, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}
