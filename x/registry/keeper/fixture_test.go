package keeper_test

import (
	"context"
	"testing"

	"cosmossdk.io/log"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/stretchr/testify/require"

	"namechain/ledger"
	"namechain/x/registry/keeper"
	"namechain/x/registry/types"
)

const (
	genesisTime = int64(1_700_000_000)
	testFee     = uint64(1_000)
)

type fixture struct {
	t   *testing.T
	ctx context.Context

	ledger  *ledger.Ledger
	clock   *ledger.ManualClock
	keeper  keeper.Keeper
	msgs    keeper.MsgServer
	queries keeper.QueryServer

	configID ledger.Address
	admin    ledger.Address
}

func initFixture(t *testing.T) *fixture {
	t.Helper()

	logger := log.NewNopLogger()
	l, err := ledger.New(dbm.NewMemDB(), logger)
	require.NoError(t, err)

	clock := ledger.NewManualClock(genesisTime)
	k := keeper.NewKeeper(logger, l, l, clock)

	return &fixture{
		t:        t,
		ctx:      context.Background(),
		ledger:   l,
		clock:    clock,
		keeper:   k,
		msgs:     keeper.NewMsgServerImpl(k),
		queries:  keeper.NewQueryServerImpl(k),
		configID: types.ConfigID(),
		admin:    addr(0xad),
	}
}

func addr(b byte) ledger.Address {
	var a ledger.Address
	a[0] = b
	return a
}

// run executes fn in one host transaction, committing only on success.
func (f *fixture) run(fn func(ctx context.Context) error) error {
	return f.ledger.WithTx(f.ctx, fn)
}

func (f *fixture) allocate(id ledger.Address, size int) {
	f.t.Helper()
	require.NoError(f.t, f.run(func(ctx context.Context) error {
		return f.ledger.Allocate(ctx, id, size)
	}))
}

func (f *fixture) mint(id ledger.Address, amount uint64) {
	f.t.Helper()
	require.NoError(f.t, f.run(func(ctx context.Context) error {
		return f.ledger.Mint(ctx, id, amount)
	}))
}

func (f *fixture) balance(id ledger.Address) uint64 {
	f.t.Helper()
	got, err := f.ledger.Balance(f.ctx, id)
	require.NoError(f.t, err)
	return got
}

// initConfig allocates the config slot and runs Initialize as the fixture's
// administrator.
func (f *fixture) initConfig(fee uint64) {
	f.t.Helper()
	f.allocate(f.configID, types.ConfigRecordSize)
	require.NoError(f.t, f.run(func(ctx context.Context) error {
		return f.msgs.Initialize(ctx, &types.MsgInitialize{
			Signer:          f.admin,
			Config:          f.configID,
			RegistrationFee: fee,
		})
	}))
}

// register allocates the slots for name and the owner's reverse record (when
// not yet allocated), funds the owner with the current fee, and registers.
func (f *fixture) register(owner ledger.Address, name string) (nameID, reverseID ledger.Address) {
	f.t.Helper()
	nameID = types.NameRecordID(name)
	reverseID = types.ReverseRecordID(owner)

	f.allocate(nameID, types.NameRecordSize)
	if _, err := f.ledger.ReadData(f.ctx, reverseID); err != nil {
		f.allocate(reverseID, types.ReverseRecordSize)
	}

	fee, err := f.queries.RegistrationFee(f.ctx, f.configID)
	require.NoError(f.t, err)
	if fee > 0 {
		f.mint(owner, fee)
	}

	require.NoError(f.t, f.run(func(ctx context.Context) error {
		return f.msgs.RegisterName(ctx, &types.MsgRegisterName{
			Signer:        owner,
			NameRecord:    nameID,
			ReverseRecord: reverseID,
			Config:        f.configID,
			Name:          name,
		})
	}))
	return nameID, reverseID
}

func (f *fixture) nameRecord(id ledger.Address) types.NameRecord {
	f.t.Helper()
	rec, err := f.keeper.GetNameRecord(f.ctx, id)
	require.NoError(f.t, err)
	return rec
}

func (f *fixture) reverseRecord(id ledger.Address) types.ReverseRecord {
	f.t.Helper()
	rec, err := f.keeper.GetReverseRecord(f.ctx, id)
	require.NoError(f.t, err)
	return rec
}

func (f *fixture) escrowRecord(id ledger.Address) types.EscrowRecord {
	f.t.Helper()
	rec, err := f.keeper.GetEscrowRecord(f.ctx, id)
	require.NoError(f.t, err)
	return rec
}

func (f *fixture) configRecord() types.ConfigRecord {
	f.t.Helper()
	rec, err := f.keeper.GetConfigRecord(f.ctx, f.configID)
	require.NoError(f.t, err)
	return rec
}
