package ledger

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
)

// Account is one ledger entry: held value plus an optional fixed-size data
// buffer. Data is nil until the slot is explicitly allocated; its length is
// fixed at allocation time.
type Account struct {
	Balance uint64
	Data    []byte
}

// Allocated reports whether the account carries a storage buffer.
func (a Account) Allocated() bool { return a.Data != nil }

// accountValueCodec encodes an Account as
// 8-byte LE balance | 1-byte allocated flag | 4-byte LE data length | data.
type accountValueCodec struct{}

// AccountValue is the collections codec for Account values.
var AccountValue collcodec.ValueCodec[Account] = accountValueCodec{}

func (accountValueCodec) Encode(value Account) ([]byte, error) {
	out := make([]byte, 8+1+4+len(value.Data))
	binary.LittleEndian.PutUint64(out[0:8], value.Balance)
	if value.Data != nil {
		out[8] = 1
		binary.LittleEndian.PutUint32(out[9:13], uint32(len(value.Data)))
		copy(out[13:], value.Data)
	}
	return out, nil
}

func (accountValueCodec) Decode(b []byte) (Account, error) {
	if len(b) < 13 {
		return Account{}, fmt.Errorf("account value too short: %d bytes", len(b))
	}
	acc := Account{Balance: binary.LittleEndian.Uint64(b[0:8])}
	switch b[8] {
	case 0:
	case 1:
		n := binary.LittleEndian.Uint32(b[9:13])
		if uint32(len(b)-13) != n {
			return Account{}, fmt.Errorf("account data length mismatch: header %d, payload %d", n, len(b)-13)
		}
		acc.Data = make([]byte, n)
		copy(acc.Data, b[13:])
	default:
		return Account{}, fmt.Errorf("invalid account allocation flag %#x", b[8])
	}
	return acc, nil
}

func (c accountValueCodec) EncodeJSON(value Account) ([]byte, error) {
	return json.Marshal(value)
}

func (c accountValueCodec) DecodeJSON(b []byte) (Account, error) {
	var acc Account
	if err := json.Unmarshal(b, &acc); err != nil {
		return Account{}, err
	}
	return acc, nil
}

func (accountValueCodec) Stringify(value Account) string {
	return fmt.Sprintf("Account{balance=%d, data=%d bytes}", value.Balance, len(value.Data))
}

func (accountValueCodec) ValueType() string { return "ledger.Account" }
