package app

import (
	"github.com/cloudflare/circl/sign/ed25519"

	"namechain/ledger"
	"namechain/x/registry/types"
)

// verifySigner authenticates a mutating transaction: account 0 must be
// flagged as the signer and the envelope signature must verify against that
// account's key over the canonical signing bytes. The returned address is the
// authenticated signer handed to the state machine.
func verifySigner(tx *types.Tx) (ledger.Address, error) {
	if len(tx.Accounts) == 0 || !tx.Accounts[0].Signer {
		return ledger.ZeroAddress, ErrMissingSignature.Wrap("account 0 must sign")
	}
	if len(tx.Signature) != ed25519.SignatureSize {
		return ledger.ZeroAddress, ErrMissingSignature.Wrapf("signature is %d bytes, want %d", len(tx.Signature), ed25519.SignatureSize)
	}
	signer := tx.Accounts[0].ID
	if !ed25519.Verify(ed25519.PublicKey(signer.Bytes()), tx.SigningBytes(), tx.Signature) {
		return ledger.ZeroAddress, ErrInvalidSignature.Wrap(signer.String())
	}
	return signer, nil
}
