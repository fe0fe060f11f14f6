package keeper

import (
	"context"

	"cosmossdk.io/log"

	"namechain/ledger"
	"namechain/x/registry/types"
)

// Keeper is the registry's state machine over the four record kinds. It owns
// no storage of its own: records live in host slots, value moves through the
// host's bank, and time comes from the host's clock. Every operation
// validates completely before its first write, so together with the host's
// whole-invocation atomicity no partial effect is ever observable.
type Keeper struct {
	logger log.Logger
	slots  types.SlotStore
	bank   types.BankKeeper
	clock  types.Clock
}

func NewKeeper(logger log.Logger, slots types.SlotStore, bank types.BankKeeper, clock types.Clock) Keeper {
	return Keeper{
		logger: logger.With("module", types.ModuleName),
		slots:  slots,
		bank:   bank,
		clock:  clock,
	}
}

func (k Keeper) now() int64 { return k.clock.Now() }

// Record accessors: typed read/modify/write over the fixed-layout slot
// buffers. Reads are "unchecked" in that an all-zero buffer decodes to the
// zero record; initialization checks belong to the operations.

func (k Keeper) GetNameRecord(ctx context.Context, id ledger.Address) (types.NameRecord, error) {
	buf, err := k.slots.ReadData(ctx, id)
	if err != nil {
		return types.NameRecord{}, err
	}
	return types.UnpackNameRecord(buf)
}

func (k Keeper) SetNameRecord(ctx context.Context, id ledger.Address, rec types.NameRecord) error {
	buf, err := rec.Pack()
	if err != nil {
		return err
	}
	return k.slots.WriteData(ctx, id, buf)
}

func (k Keeper) GetReverseRecord(ctx context.Context, id ledger.Address) (types.ReverseRecord, error) {
	buf, err := k.slots.ReadData(ctx, id)
	if err != nil {
		return types.ReverseRecord{}, err
	}
	return types.UnpackReverseRecord(buf)
}

func (k Keeper) SetReverseRecord(ctx context.Context, id ledger.Address, rec types.ReverseRecord) error {
	buf, err := rec.Pack()
	if err != nil {
		return err
	}
	return k.slots.WriteData(ctx, id, buf)
}

func (k Keeper) GetEscrowRecord(ctx context.Context, id ledger.Address) (types.EscrowRecord, error) {
	buf, err := k.slots.ReadData(ctx, id)
	if err != nil {
		return types.EscrowRecord{}, err
	}
	return types.UnpackEscrowRecord(buf)
}

func (k Keeper) SetEscrowRecord(ctx context.Context, id ledger.Address, rec types.EscrowRecord) error {
	buf, err := rec.Pack()
	if err != nil {
		return err
	}
	return k.slots.WriteData(ctx, id, buf)
}

func (k Keeper) GetConfigRecord(ctx context.Context, id ledger.Address) (types.ConfigRecord, error) {
	buf, err := k.slots.ReadData(ctx, id)
	if err != nil {
		return types.ConfigRecord{}, err
	}
	return types.UnpackConfigRecord(buf)
}

func (k Keeper) SetConfigRecord(ctx context.Context, id ledger.Address, rec types.ConfigRecord) error {
	buf, err := rec.Pack()
	if err != nil {
		return err
	}
	return k.slots.WriteData(ctx, id, buf)
}

// initializedConfig reads the config singleton and requires it to exist.
func (k Keeper) initializedConfig(ctx context.Context, id ledger.Address) (types.ConfigRecord, error) {
	cfg, err := k.GetConfigRecord(ctx, id)
	if err != nil {
		return types.ConfigRecord{}, err
	}
	if !cfg.Initialized {
		return types.ConfigRecord{}, types.ErrNotInitialized.Wrap("config")
	}
	return cfg, nil
}

// initializedNameRecord reads a name record and requires it to exist.
func (k Keeper) initializedNameRecord(ctx context.Context, id ledger.Address) (types.NameRecord, error) {
	rec, err := k.GetNameRecord(ctx, id)
	if err != nil {
		return types.NameRecord{}, err
	}
	if !rec.Initialized {
		return types.NameRecord{}, types.ErrNotInitialized.Wrap("name record")
	}
	return rec, nil
}
