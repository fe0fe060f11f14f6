package types_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"namechain/ledger"
	"namechain/x/registry/types"
)

func TestValidateName(t *testing.T) {
	valid := []string{
		"a",
		"alice",
		"Alice",
		"alice-2",
		"0xdeadbeef",
		"ABC-123-xyz",
		strings.Repeat("a", 32),
	}
	for _, name := range valid {
		require.NoError(t, types.ValidateName(name), "name %q", name)
	}

	invalid := []string{
		"",
		strings.Repeat("a", 33),
		"alice smith",
		"alice.eth",
		"alice_2",
		"юникод",
		"a\x00b",
	}
	for _, name := range invalid {
		err := types.ValidateName(name)
		require.ErrorIs(t, err, types.ErrInvalidNameFormat, "name %q", name)
	}
}

func TestValidateAddress(t *testing.T) {
	require.ErrorIs(t, types.ValidateAddress(ledger.ZeroAddress), types.ErrInvalidAddress)

	var addr ledger.Address
	addr[0] = 1
	require.NoError(t, types.ValidateAddress(addr))
}

func TestValidateOwner(t *testing.T) {
	var owner, other ledger.Address
	owner[0] = 1
	other[0] = 2

	require.NoError(t, types.ValidateOwner(owner, owner))
	require.ErrorIs(t, types.ValidateOwner(owner, other), types.ErrNotNameOwner)

	require.NoError(t, types.ValidateProgramOwner(owner, owner))
	require.ErrorIs(t, types.ValidateProgramOwner(owner, other), types.ErrNotContractOwner)
}

func TestValidateCooldownBoundary(t *testing.T) {
	const until = int64(1_700_000_000)

	// The boundary is inclusive on the "now" side.
	require.NoError(t, types.ValidateCooldown(until, until))
	require.NoError(t, types.ValidateCooldown(until+1, until))
	require.ErrorIs(t, types.ValidateCooldown(until-1, until), types.ErrCooldownNotOver)
}

func TestCooldownUntil(t *testing.T) {
	require.Equal(t, int64(1_700_086_400), types.CooldownUntil(1_700_000_000))
}

func TestRecordIdentifiersAreDeterministic(t *testing.T) {
	require.Equal(t, types.NameRecordID("alice"), types.NameRecordID("alice"))
	require.NotEqual(t, types.NameRecordID("alice"), types.NameRecordID("bob"))
	require.NotEqual(t, types.NameRecordID("alice"), types.EscrowID("alice"))

	var owner ledger.Address
	owner[0] = 7
	require.Equal(t, types.ReverseRecordID(owner), types.ReverseRecordID(owner))
	require.NotEqual(t, types.ReverseRecordID(owner), types.NameRecordID(owner.String()))

	require.False(t, types.ConfigID().IsZero())
}
