package keeper

import (
	"context"

	"namechain/ledger"
	"namechain/x/registry/types"
)

// QueryServer serves the read-only operations. Queries run against committed
// state and never mutate.
type QueryServer interface {
	ResolveAddress(ctx context.Context, nameRecord ledger.Address) (ledger.Address, error)
	ContractOwner(ctx context.Context, config ledger.Address) (ledger.Address, error)
	RegistrationFee(ctx context.Context, config ledger.Address) (uint64, error)
	PendingContractOwner(ctx context.Context, config ledger.Address) (ledger.Address, error)
}

type queryServer struct {
	k Keeper
}

// NewQueryServerImpl returns an implementation of QueryServer wrapping the keeper.
func NewQueryServerImpl(k Keeper) QueryServer {
	return queryServer{k: k}
}

// ResolveAddress returns the address a name currently resolves to.
func (q queryServer) ResolveAddress(ctx context.Context, nameRecord ledger.Address) (ledger.Address, error) {
	rec, err := q.k.GetNameRecord(ctx, nameRecord)
	if err != nil {
		return ledger.ZeroAddress, err
	}
	if !rec.Initialized {
		return ledger.ZeroAddress, types.ErrNameNotFound
	}
	return rec.ResolvedAddress, nil
}

func (q queryServer) ContractOwner(ctx context.Context, config ledger.Address) (ledger.Address, error) {
	cfg, err := q.k.initializedConfig(ctx, config)
	if err != nil {
		return ledger.ZeroAddress, err
	}
	return cfg.Administrator, nil
}

func (q queryServer) RegistrationFee(ctx context.Context, config ledger.Address) (uint64, error) {
	cfg, err := q.k.initializedConfig(ctx, config)
	if err != nil {
		return 0, err
	}
	return cfg.RegistrationFee, nil
}

func (q queryServer) PendingContractOwner(ctx context.Context, config ledger.Address) (ledger.Address, error) {
	cfg, err := q.k.initializedConfig(ctx, config)
	if err != nil {
		return ledger.ZeroAddress, err
	}
	return cfg.PendingAdministrator, nil
}
