package app

import (
	"context"
	"time"

	"cosmossdk.io/log"
	dbm "github.com/cosmos/cosmos-db"

	"namechain/app/metrics"
	"namechain/ledger"
	"namechain/x/registry/keeper"
	"namechain/x/registry/types"
)

// Name doubles as the app error codespace.
const Name = "namechain"

// App wires the hosting ledger and the registry program into one executable
// unit. Execute is the single entrypoint: authenticate, decode, dispatch
// inside one ledger transaction, and emit return data.
type App struct {
	logger  log.Logger
	ledger  *ledger.Ledger
	keeper  keeper.Keeper
	msgs    keeper.MsgServer
	queries keeper.QueryServer
}

func New(logger log.Logger, db dbm.DB, clock ledger.Clock) (*App, error) {
	l, err := ledger.New(db, logger)
	if err != nil {
		return nil, err
	}

	k := keeper.NewKeeper(logger, l, l, clock)

	return &App{
		logger:  logger.With("component", "app"),
		ledger:  l,
		keeper:  k,
		msgs:    keeper.NewMsgServerImpl(k),
		queries: keeper.NewQueryServerImpl(k),
	}, nil
}

func (a *App) Ledger() *ledger.Ledger      { return a.ledger }
func (a *App) Keeper() keeper.Keeper       { return a.keeper }
func (a *App) Queries() keeper.QueryServer { return a.queries }

// Execute runs one signed envelope to completion. Mutating instructions run
// inside a ledger transaction: every effect commits together or not at all.
// Read-only instructions run against committed state and return raw return
// data (a 32-byte address or an 8-byte little-endian integer).
func (a *App) Execute(ctx context.Context, tx *types.Tx) ([]byte, error) {
	start := time.Now()

	instr, err := types.DecodeInstruction(tx.Instruction)
	if err != nil {
		metrics.InstructionsCounter().WithLabelValues("unknown", "error").Inc()
		return nil, ErrInvalidInstruction.Wrap(err.Error())
	}

	op := opName(instr)
	ret, err := a.execute(ctx, instr, tx)

	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.InstructionsCounter().WithLabelValues(op, result).Inc()
	metrics.ExecuteObserver().Observe(time.Since(start).Seconds())

	if err != nil {
		a.logger.Info("instruction failed", "op", op, "err", err)
		return nil, err
	}
	a.logger.Debug("instruction executed", "op", op)
	return ret, nil
}

func (a *App) execute(ctx context.Context, instr types.Instruction, tx *types.Tx) ([]byte, error) {
	if q, ok := queryOf(instr); ok {
		return a.runQuery(ctx, q, tx.Accounts)
	}

	signer, err := verifySigner(tx)
	if err != nil {
		return nil, err
	}

	return nil, a.ledger.WithTx(ctx, func(ctx context.Context) error {
		return a.dispatch(ctx, instr, tx.Accounts, signer)
	})
}

func opName(instr types.Instruction) string {
	switch instr.(type) {
	case types.Initialize:
		return "initialize"
	case types.RegisterName:
		return "register_name"
	case types.RequestAddressUpdate:
		return "request_address_update"
	case types.CompleteAddressUpdate:
		return "complete_address_update"
	case types.RenameName:
		return "rename_name"
	case types.SetRegistrationFee:
		return "set_registration_fee"
	case types.ChangeProgramOwner:
		return "change_program_owner"
	case types.AcceptProgramOwnership:
		return "accept_program_ownership"
	case types.ResolveAddress:
		return "resolve_address"
	case types.GetContractOwner:
		return "get_contract_owner"
	case types.GetRegistrationFee:
		return "get_registration_fee"
	case types.GetPendingContractOwner:
		return "get_pending_contract_owner"
	case types.Withdraw:
		return "withdraw"
	default:
		return "unknown"
	}
}
