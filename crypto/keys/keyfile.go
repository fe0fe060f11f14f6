package keys

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cloudflare/circl/sign/ed25519"
)

// keyfile is the on-disk JSON form of a keypair. Private material is hex in a
// 0600 file under the node home; this is operator tooling, not a vault.
type keyfile struct {
	Address string `json:"address"`
	Public  string `json:"public_key"`
	Private string `json:"private_key"`
}

// Save writes the keypair to path, creating parent directories as needed.
func Save(path string, kp Keypair) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(keyfile{
		Address: kp.Address().String(),
		Public:  hex.EncodeToString(kp.Public),
		Private: hex.EncodeToString(kp.Private),
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Load reads a keypair back from a keyfile.
func Load(path string) (Keypair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Keypair{}, err
	}
	var kf keyfile
	if err := json.Unmarshal(data, &kf); err != nil {
		return Keypair{}, fmt.Errorf("corrupt keyfile %s: %w", path, err)
	}
	pub, err := hex.DecodeString(kf.Public)
	if err != nil {
		return Keypair{}, fmt.Errorf("corrupt public key in %s: %w", path, err)
	}
	priv, err := hex.DecodeString(kf.Private)
	if err != nil {
		return Keypair{}, fmt.Errorf("corrupt private key in %s: %w", path, err)
	}
	if len(pub) != ed25519.PublicKeySize || len(priv) != ed25519.PrivateKeySize {
		return Keypair{}, fmt.Errorf("keyfile %s has wrong key sizes", path)
	}
	return Keypair{Public: pub, Private: priv}, nil
}
