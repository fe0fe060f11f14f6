package keys

import (
	"crypto/rand"

	"github.com/cloudflare/circl/sign/ed25519"

	"namechain/ledger"
)

// Keypair is an Ed25519 signing identity. The public key doubles as the
// holder's ledger address.
type Keypair struct {
	Public  ed25519.PublicKey
	Private ed25519.PrivateKey
}

// Generate creates a fresh keypair from the system entropy source.
func Generate() (Keypair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return Keypair{}, err
	}
	return Keypair{Public: pub, Private: priv}, nil
}

// Address returns the keypair's ledger address.
func (kp Keypair) Address() ledger.Address {
	var a ledger.Address
	copy(a[:], kp.Public)
	return a
}

// Sign signs a message with the private key.
func (kp Keypair) Sign(msg []byte) []byte {
	return ed25519.Sign(kp.Private, msg)
}

// Verify checks a signature against a public key.
func Verify(pub ed25519.PublicKey, msg, sig []byte) bool {
	return ed25519.Verify(pub, msg, sig)
}
