package ledger_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/stretchr/testify/require"

	"namechain/ledger"
)

func newTestLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	l, err := ledger.New(dbm.NewMemDB(), log.NewNopLogger())
	require.NoError(t, err)
	return l
}

func addr(b byte) ledger.Address {
	var a ledger.Address
	a[0] = b
	return a
}

// run executes fn in a committed transaction and requires success.
func run(t *testing.T, l *ledger.Ledger, fn func(ctx context.Context) error) {
	t.Helper()
	require.NoError(t, l.WithTx(context.Background(), fn))
}

func TestAllocateAndData(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	id := addr(1)

	run(t, l, func(ctx context.Context) error {
		return l.Allocate(ctx, id, 8)
	})

	data, err := l.ReadData(ctx, id)
	require.NoError(t, err)
	require.Equal(t, make([]byte, 8), data)

	run(t, l, func(ctx context.Context) error {
		return l.WriteData(ctx, id, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	})
	data, err = l.ReadData(ctx, id)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, data)

	t.Run("double allocate fails", func(t *testing.T) {
		err := l.WithTx(ctx, func(ctx context.Context) error {
			return l.Allocate(ctx, id, 8)
		})
		require.ErrorIs(t, err, ledger.ErrAlreadyAllocated)
	})

	t.Run("size mismatch fails", func(t *testing.T) {
		err := l.WithTx(ctx, func(ctx context.Context) error {
			return l.WriteData(ctx, id, []byte{1, 2, 3})
		})
		require.ErrorIs(t, err, ledger.ErrSizeMismatch)
	})

	t.Run("unallocated reads fail", func(t *testing.T) {
		_, err := l.ReadData(ctx, addr(2))
		require.ErrorIs(t, err, ledger.ErrNotAllocated)
	})

	t.Run("invalid sizes fail", func(t *testing.T) {
		for _, size := range []int{0, -1, ledger.MaxDataSize + 1} {
			err := l.WithTx(ctx, func(ctx context.Context) error {
				return l.Allocate(ctx, addr(3), size)
			})
			require.ErrorIs(t, err, ledger.ErrInvalidAllocation, "size %d", size)
		}
	})
}

func TestReadDataReturnsCopy(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	id := addr(1)

	run(t, l, func(ctx context.Context) error {
		return l.Allocate(ctx, id, 4)
	})

	data, err := l.ReadData(ctx, id)
	require.NoError(t, err)
	data[0] = 0xff

	again, err := l.ReadData(ctx, id)
	require.NoError(t, err)
	require.Equal(t, byte(0), again[0])
}

func TestTransfer(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	alice, bob := addr(1), addr(2)

	run(t, l, func(ctx context.Context) error {
		return l.Mint(ctx, alice, 100)
	})

	run(t, l, func(ctx context.Context) error {
		return l.Transfer(ctx, alice, bob, 60)
	})

	got, err := l.Balance(ctx, alice)
	require.NoError(t, err)
	require.Equal(t, uint64(40), got)
	got, err = l.Balance(ctx, bob)
	require.NoError(t, err)
	require.Equal(t, uint64(60), got)

	t.Run("insufficient funds", func(t *testing.T) {
		err := l.WithTx(ctx, func(ctx context.Context) error {
			return l.Transfer(ctx, alice, bob, 41)
		})
		require.ErrorIs(t, err, ledger.ErrInsufficientFunds)
	})

	t.Run("overflow on credit", func(t *testing.T) {
		rich := addr(3)
		run(t, l, func(ctx context.Context) error {
			return l.Mint(ctx, rich, math.MaxUint64-10)
		})
		err := l.WithTx(ctx, func(ctx context.Context) error {
			return l.Transfer(ctx, bob, rich, 20)
		})
		require.ErrorIs(t, err, ledger.ErrAmountOverflow)
	})

	t.Run("zero amount and self transfer are no-ops", func(t *testing.T) {
		run(t, l, func(ctx context.Context) error {
			if err := l.Transfer(ctx, alice, bob, 0); err != nil {
				return err
			}
			return l.Transfer(ctx, alice, alice, 40)
		})
		got, err := l.Balance(ctx, alice)
		require.NoError(t, err)
		require.Equal(t, uint64(40), got)
	})
}

func TestMintTracksSupply(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	supply, err := l.TotalSupply(ctx)
	require.NoError(t, err)
	require.True(t, supply.IsZero())

	run(t, l, func(ctx context.Context) error {
		if err := l.Mint(ctx, addr(1), 100); err != nil {
			return err
		}
		return l.Mint(ctx, addr(2), 50)
	})

	supply, err = l.TotalSupply(ctx)
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(150), supply)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	alice, bob := addr(1), addr(2)

	run(t, l, func(ctx context.Context) error {
		return l.Mint(ctx, alice, 100)
	})

	boom := errors.New("boom")
	err := l.WithTx(ctx, func(ctx context.Context) error {
		if err := l.Transfer(ctx, alice, bob, 100); err != nil {
			return err
		}
		if err := l.Allocate(ctx, bob, 16); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// None of the staged writes survive.
	got, err := l.Balance(ctx, alice)
	require.NoError(t, err)
	require.Equal(t, uint64(100), got)
	got, err = l.Balance(ctx, bob)
	require.NoError(t, err)
	require.Zero(t, got)
	_, err = l.ReadData(ctx, bob)
	require.ErrorIs(t, err, ledger.ErrNotAllocated)
}

func TestWritesOutsideTxFail(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	err := l.Allocate(ctx, addr(1), 8)
	require.ErrorIs(t, err, ledger.ErrReadOnly)
	err = l.Mint(ctx, addr(1), 1)
	require.ErrorIs(t, err, ledger.ErrReadOnly)
}

func TestBranchReadsSeeStagedWrites(t *testing.T) {
	l := newTestLedger(t)
	alice, bob := addr(1), addr(2)

	run(t, l, func(ctx context.Context) error {
		if err := l.Mint(ctx, alice, 100); err != nil {
			return err
		}
		// The staged balance is visible within the same transaction.
		got, err := l.Balance(ctx, alice)
		if err != nil {
			return err
		}
		require.Equal(t, uint64(100), got)
		return l.Transfer(ctx, alice, bob, 30)
	})

	got, err := l.Balance(context.Background(), bob)
	require.NoError(t, err)
	require.Equal(t, uint64(30), got)
}

func TestAccountWalkMergesStagedWrites(t *testing.T) {
	l := newTestLedger(t)

	run(t, l, func(ctx context.Context) error {
		return l.Mint(ctx, addr(1), 10)
	})

	run(t, l, func(ctx context.Context) error {
		if err := l.Mint(ctx, addr(2), 20); err != nil {
			return err
		}
		// A walk inside the transaction sees both the committed account
		// and the staged one.
		seen := map[byte]uint64{}
		err := l.Accounts.Walk(ctx, nil, func(key []byte, acc ledger.Account) (bool, error) {
			seen[key[0]] = acc.Balance
			return false, nil
		})
		if err != nil {
			return err
		}
		require.Equal(t, map[byte]uint64{1: 10, 2: 20}, seen)
		return nil
	})
}

func TestManualClock(t *testing.T) {
	c := ledger.NewManualClock(1_000)
	require.Equal(t, int64(1_000), c.Now())
	c.Advance(86_400)
	require.Equal(t, int64(87_400), c.Now())
	c.Set(5)
	require.Equal(t, int64(5), c.Now())
}

func TestSystemClockMonotone(t *testing.T) {
	c := ledger.NewSystemClock()
	a := c.Now()
	b := c.Now()
	require.GreaterOrEqual(t, b, a)
}

func TestAddressHexRoundTrip(t *testing.T) {
	a := addr(0xab)
	parsed, err := ledger.AddressFromString(a.String())
	require.NoError(t, err)
	require.Equal(t, a, parsed)

	_, err = ledger.AddressFromString("zz")
	require.Error(t, err)

	require.True(t, ledger.ZeroAddress.IsZero())
	require.False(t, a.IsZero())
}
