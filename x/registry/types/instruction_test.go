package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"namechain/x/registry/types"
)

func TestInstructionRoundTrip(t *testing.T) {
	cases := []types.Instruction{
		types.Initialize{RegistrationFee: 1_000_000},
		types.RegisterName{Name: "alice"},
		types.RequestAddressUpdate{NewAddress: testAddr(5)},
		types.CompleteAddressUpdate{},
		types.RenameName{NewName: "bob"},
		types.SetRegistrationFee{NewFee: 42},
		types.ChangeProgramOwner{NewOwner: testAddr(6)},
		types.AcceptProgramOwnership{},
		types.ResolveAddress{},
		types.GetContractOwner{},
		types.GetRegistrationFee{},
		types.GetPendingContractOwner{},
		types.Withdraw{},
	}
	for _, in := range cases {
		raw, err := types.EncodeInstruction(in)
		require.NoError(t, err)
		require.Equal(t, in.Tag(), raw[0])

		got, err := types.DecodeInstruction(raw)
		require.NoError(t, err)
		require.Equal(t, in, got)
	}
}

func TestDecodeInstructionRejectsMalformed(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := types.DecodeInstruction(nil)
		require.Error(t, err)
	})

	t.Run("unknown tag", func(t *testing.T) {
		_, err := types.DecodeInstruction([]byte{0xff})
		require.Error(t, err)
	})

	t.Run("truncated fee", func(t *testing.T) {
		_, err := types.DecodeInstruction([]byte{types.TagInitialize, 1, 2, 3})
		require.Error(t, err)
	})

	t.Run("truncated name", func(t *testing.T) {
		raw, err := types.EncodeInstruction(types.RegisterName{Name: "alice"})
		require.NoError(t, err)
		_, err = types.DecodeInstruction(raw[:len(raw)-2])
		require.Error(t, err)
	})

	t.Run("trailing bytes", func(t *testing.T) {
		raw, err := types.EncodeInstruction(types.Withdraw{})
		require.NoError(t, err)
		_, err = types.DecodeInstruction(append(raw, 0))
		require.Error(t, err)
	})
}

func TestTxRoundTrip(t *testing.T) {
	raw, err := types.EncodeInstruction(types.RegisterName{Name: "alice"})
	require.NoError(t, err)

	tx := &types.Tx{
		Instruction: raw,
		Accounts: []types.AccountMeta{
			{ID: testAddr(1), Signer: true},
			{ID: testAddr(2)},
			{ID: testAddr(3)},
			{ID: testAddr(4)},
		},
		Signature: []byte("not-a-real-signature-but-64-byte"),
	}

	got, err := types.DecodeTx(tx.Encode())
	require.NoError(t, err)
	require.Equal(t, tx, got)
}

func TestTxSigningBytesExcludeSignature(t *testing.T) {
	raw, err := types.EncodeInstruction(types.Withdraw{})
	require.NoError(t, err)

	a := &types.Tx{Instruction: raw, Accounts: []types.AccountMeta{{ID: testAddr(1), Signer: true}}}
	b := &types.Tx{Instruction: raw, Accounts: []types.AccountMeta{{ID: testAddr(1), Signer: true}}, Signature: []byte{1, 2, 3}}
	require.Equal(t, a.SigningBytes(), b.SigningBytes())

	// Flipping the signer flag changes the preimage.
	c := &types.Tx{Instruction: raw, Accounts: []types.AccountMeta{{ID: testAddr(1)}}}
	require.NotEqual(t, a.SigningBytes(), c.SigningBytes())
}

func TestDecodeTxRejectsMalformed(t *testing.T) {
	raw, err := types.EncodeInstruction(types.Withdraw{})
	require.NoError(t, err)
	tx := &types.Tx{Instruction: raw, Accounts: []types.AccountMeta{{ID: testAddr(1), Signer: true}}}
	enc := tx.Encode()

	t.Run("truncated", func(t *testing.T) {
		for i := 0; i < len(enc); i++ {
			_, err := types.DecodeTx(enc[:i])
			require.Error(t, err, "prefix of %d bytes", i)
		}
	})

	t.Run("trailing bytes", func(t *testing.T) {
		_, err := types.DecodeTx(append(append([]byte(nil), enc...), 0))
		require.Error(t, err)
	})

	t.Run("invalid signer flag", func(t *testing.T) {
		bad := append([]byte(nil), enc...)
		bad[4+len(raw)+2+32] = 7
		_, err := types.DecodeTx(bad)
		require.Error(t, err)
	})
}
