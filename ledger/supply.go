package ledger

import (
	collcodec "cosmossdk.io/collections/codec"
	"cosmossdk.io/math"
)

// IntValue is the collections codec for math.Int values.
var IntValue collcodec.ValueCodec[math.Int] = intValueCodec{}

type intValueCodec struct{}

func (intValueCodec) Encode(value math.Int) ([]byte, error) {
	return value.Marshal()
}

func (intValueCodec) Decode(b []byte) (math.Int, error) {
	var v math.Int
	if err := v.Unmarshal(b); err != nil {
		return math.Int{}, err
	}
	return v, nil
}

func (intValueCodec) EncodeJSON(value math.Int) ([]byte, error) {
	return value.MarshalJSON()
}

func (intValueCodec) DecodeJSON(b []byte) (math.Int, error) {
	var v math.Int
	if err := v.UnmarshalJSON(b); err != nil {
		return math.Int{}, err
	}
	return v, nil
}

func (intValueCodec) Stringify(value math.Int) string { return value.String() }

func (intValueCodec) ValueType() string { return "math.Int" }
