package ledger

import (
	"encoding/hex"
	"fmt"
)

// AddressLen is the byte length of every ledger identifier.
const AddressLen = 32

// Address identifies one ledger account: an Ed25519 public key for wallets,
// a derived identifier for storage slots.
type Address [AddressLen]byte

// ZeroAddress is the all-zero sentinel ("no address").
var ZeroAddress Address

func AddressFromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressLen {
		return a, fmt.Errorf("address must be %d bytes, got %d", AddressLen, len(b))
	}
	copy(a[:], b)
	return a, nil
}

func AddressFromString(s string) (Address, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return ZeroAddress, fmt.Errorf("invalid address encoding: %w", err)
	}
	return AddressFromBytes(b)
}

func (a Address) Bytes() []byte {
	out := make([]byte, AddressLen)
	copy(out, a[:])
	return out
}

func (a Address) String() string { return hex.EncodeToString(a[:]) }

func (a Address) IsZero() bool { return a == ZeroAddress }
