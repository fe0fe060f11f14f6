package app

import (
	"context"
	"encoding/binary"

	"namechain/ledger"
	"namechain/x/registry/types"
)

// dispatch maps a decoded instruction plus its declared accounts onto the
// typed message the state machine consumes. Account order follows each
// instruction's documented contract; a wrong count is a caller error.
func (a *App) dispatch(ctx context.Context, instr types.Instruction, accs []types.AccountMeta, signer ledger.Address) error {
	switch v := instr.(type) {
	case types.Initialize:
		if err := wantAccounts(accs, 2); err != nil {
			return err
		}
		return a.msgs.Initialize(ctx, &types.MsgInitialize{
			Signer:          signer,
			Config:          accs[1].ID,
			RegistrationFee: v.RegistrationFee,
		})

	case types.RegisterName:
		if err := wantAccounts(accs, 4); err != nil {
			return err
		}
		return a.msgs.RegisterName(ctx, &types.MsgRegisterName{
			Signer:        signer,
			NameRecord:    accs[1].ID,
			ReverseRecord: accs[2].ID,
			Config:        accs[3].ID,
			Name:          v.Name,
		})

	case types.RequestAddressUpdate:
		if err := wantAccounts(accs, 3); err != nil {
			return err
		}
		return a.msgs.RequestAddressUpdate(ctx, &types.MsgRequestAddressUpdate{
			Signer:     signer,
			NameRecord: accs[1].ID,
			Escrow:     accs[2].ID,
			NewAddress: v.NewAddress,
		})

	case types.CompleteAddressUpdate:
		if err := wantAccounts(accs, 4); err != nil {
			return err
		}
		return a.msgs.CompleteAddressUpdate(ctx, &types.MsgCompleteAddressUpdate{
			Signer:        signer,
			NameRecord:    accs[1].ID,
			ReverseRecord: accs[2].ID,
			Escrow:        accs[3].ID,
		})

	case types.RenameName:
		if err := wantAccounts(accs, 4); err != nil {
			return err
		}
		return a.msgs.RenameName(ctx, &types.MsgRenameName{
			Signer:        signer,
			OldNameRecord: accs[1].ID,
			NewNameRecord: accs[2].ID,
			ReverseRecord: accs[3].ID,
			NewName:       v.NewName,
		})

	case types.SetRegistrationFee:
		if err := wantAccounts(accs, 2); err != nil {
			return err
		}
		return a.msgs.SetRegistrationFee(ctx, &types.MsgSetRegistrationFee{
			Signer: signer,
			Config: accs[1].ID,
			NewFee: v.NewFee,
		})

	case types.ChangeProgramOwner:
		if err := wantAccounts(accs, 2); err != nil {
			return err
		}
		return a.msgs.ChangeProgramOwner(ctx, &types.MsgChangeProgramOwner{
			Signer:   signer,
			Config:   accs[1].ID,
			NewOwner: v.NewOwner,
		})

	case types.AcceptProgramOwnership:
		if err := wantAccounts(accs, 2); err != nil {
			return err
		}
		return a.msgs.AcceptProgramOwnership(ctx, &types.MsgAcceptProgramOwnership{
			Signer: signer,
			Config: accs[1].ID,
		})

	case types.Withdraw:
		if err := wantAccounts(accs, 2); err != nil {
			return err
		}
		return a.msgs.Withdraw(ctx, &types.MsgWithdraw{
			Signer: signer,
			Config: accs[1].ID,
		})

	default:
		return ErrInvalidInstruction.Wrapf("no handler for tag %#x", instr.Tag())
	}
}

// queryOf reports whether the instruction is read-only.
func queryOf(instr types.Instruction) (types.Instruction, bool) {
	switch instr.(type) {
	case types.ResolveAddress, types.GetContractOwner, types.GetRegistrationFee, types.GetPendingContractOwner:
		return instr, true
	}
	return nil, false
}

// runQuery serves the read-only instructions and encodes their return data.
func (a *App) runQuery(ctx context.Context, instr types.Instruction, accs []types.AccountMeta) ([]byte, error) {
	if err := wantAccounts(accs, 1); err != nil {
		return nil, err
	}

	switch instr.(type) {
	case types.ResolveAddress:
		addr, err := a.queries.ResolveAddress(ctx, accs[0].ID)
		if err != nil {
			return nil, err
		}
		return addr.Bytes(), nil

	case types.GetContractOwner:
		addr, err := a.queries.ContractOwner(ctx, accs[0].ID)
		if err != nil {
			return nil, err
		}
		return addr.Bytes(), nil

	case types.GetRegistrationFee:
		fee, err := a.queries.RegistrationFee(ctx, accs[0].ID)
		if err != nil {
			return nil, err
		}
		return binary.LittleEndian.AppendUint64(nil, fee), nil

	case types.GetPendingContractOwner:
		addr, err := a.queries.PendingContractOwner(ctx, accs[0].ID)
		if err != nil {
			return nil, err
		}
		return addr.Bytes(), nil
	}
	return nil, ErrInvalidInstruction
}

func wantAccounts(accs []types.AccountMeta, n int) error {
	if len(accs) != n {
		return ErrInvalidAccounts.Wrapf("expected %d accounts, got %d", n, len(accs))
	}
	return nil
}
