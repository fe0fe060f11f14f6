package types

import (
	"golang.org/x/crypto/blake2b"

	"namechain/ledger"
)

// ModuleName doubles as the error codespace.
const ModuleName = "registry"

// Record slots are addressed by deterministic identifiers derived from a
// domain-separation prefix plus the record's natural seed. Existence at a
// derived identifier is the registry's only uniqueness mechanism: "already
// initialized" is how a collision is detected.
var (
	nameRecordPrefix    = []byte("namechain/registry/name/")
	reverseRecordPrefix = []byte("namechain/registry/reverse/")
	escrowPrefix        = []byte("namechain/registry/escrow/")
	configSeed          = []byte("namechain/registry/config")
)

// NameRecordID derives the identifier of the record holding a name's entry.
func NameRecordID(name string) ledger.Address {
	return deriveID(nameRecordPrefix, []byte(name))
}

// ReverseRecordID derives the identifier of an owner address's reverse
// pointer. It is keyed by the owner, not the name, so a rename leaves it in
// place and only rewrites its name field.
func ReverseRecordID(owner ledger.Address) ledger.Address {
	return deriveID(reverseRecordPrefix, owner[:])
}

// EscrowID derives the identifier of a name's pending-update escrow.
func EscrowID(name string) ledger.Address {
	return deriveID(escrowPrefix, []byte(name))
}

// ConfigID derives the identifier of the global config singleton.
func ConfigID() ledger.Address {
	return deriveID(configSeed, nil)
}

func deriveID(prefix, seed []byte) ledger.Address {
	buf := make([]byte, 0, len(prefix)+len(seed))
	buf = append(buf, prefix...)
	buf = append(buf, seed...)
	return ledger.Address(blake2b.Sum256(buf))
}
