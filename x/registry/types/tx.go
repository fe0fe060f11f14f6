package types

import (
	"encoding/binary"
	"fmt"

	"namechain/ledger"
)

// AccountMeta names one account an instruction touches and whether its key
// must have signed the transaction.
type AccountMeta struct {
	ID     ledger.Address
	Signer bool
}

// Tx is the signed envelope submitted to the program: the encoded
// instruction, the ordered accounts it declares, and an Ed25519 signature by
// the flagged signer over SigningBytes. Read-only instructions carry no
// signer and no signature.
type Tx struct {
	Instruction []byte
	Accounts    []AccountMeta
	Signature   []byte
}

const maxTxAccounts = 16

// SigningBytes is the canonical preimage covered by the signature.
func (tx *Tx) SigningBytes() []byte {
	out := binary.LittleEndian.AppendUint32(nil, uint32(len(tx.Instruction)))
	out = append(out, tx.Instruction...)
	out = binary.LittleEndian.AppendUint16(out, uint16(len(tx.Accounts)))
	for _, acc := range tx.Accounts {
		out = append(out, acc.ID[:]...)
		if acc.Signer {
			out = append(out, 1)
		} else {
			out = append(out, 0)
		}
	}
	return out
}

// Encode serializes the envelope: signing bytes, then a u16-LE signature
// length plus signature.
func (tx *Tx) Encode() []byte {
	out := tx.SigningBytes()
	out = binary.LittleEndian.AppendUint16(out, uint16(len(tx.Signature)))
	return append(out, tx.Signature...)
}

// DecodeTx parses an encoded envelope, rejecting truncation and trailing bytes.
func DecodeTx(b []byte) (*Tx, error) {
	if len(b) < 4 {
		return nil, fmt.Errorf("envelope too short")
	}
	instrLen := binary.LittleEndian.Uint32(b)
	off := 4
	if int(instrLen) > len(b)-off {
		return nil, fmt.Errorf("truncated instruction")
	}
	tx := &Tx{Instruction: append([]byte(nil), b[off:off+int(instrLen)]...)}
	off += int(instrLen)

	if off+2 > len(b) {
		return nil, fmt.Errorf("truncated account count")
	}
	numAccounts := binary.LittleEndian.Uint16(b[off:])
	off += 2
	if numAccounts > maxTxAccounts {
		return nil, fmt.Errorf("too many accounts: %d", numAccounts)
	}
	for i := 0; i < int(numAccounts); i++ {
		if off+ledger.AddressLen+1 > len(b) {
			return nil, fmt.Errorf("truncated account %d", i)
		}
		var meta AccountMeta
		copy(meta.ID[:], b[off:])
		off += ledger.AddressLen
		switch b[off] {
		case 0:
		case 1:
			meta.Signer = true
		default:
			return nil, fmt.Errorf("invalid signer flag for account %d", i)
		}
		off++
		tx.Accounts = append(tx.Accounts, meta)
	}

	if off+2 > len(b) {
		return nil, fmt.Errorf("truncated signature length")
	}
	sigLen := binary.LittleEndian.Uint16(b[off:])
	off += 2
	if int(sigLen) != len(b)-off {
		return nil, fmt.Errorf("signature length mismatch")
	}
	if sigLen > 0 {
		tx.Signature = append([]byte(nil), b[off:]...)
	}
	return tx, nil
}
