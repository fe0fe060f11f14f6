package types

import (
	"encoding/binary"
	"fmt"

	"namechain/ledger"
)

// Instruction is the decoded form of one operation. The wire encoding is a
// tag byte followed by the variant's fields in order: u64 little-endian,
// strings as a u32-LE length prefix plus bytes, addresses as 32 raw bytes.
type Instruction interface {
	Tag() byte
}

const (
	TagInitialize byte = iota
	TagRegisterName
	TagRequestAddressUpdate
	TagCompleteAddressUpdate
	TagRenameName
	TagSetRegistrationFee
	TagChangeProgramOwner
	TagAcceptProgramOwnership
	TagResolveAddress
	TagGetContractOwner
	TagGetRegistrationFee
	TagGetPendingContractOwner
	TagWithdraw
)

// Accounts expected, in order:
//
//	0. [signer] the initializing administrator
//	1. [writable] the config slot
type Initialize struct {
	RegistrationFee uint64
}

// Accounts expected, in order:
//
//	0. [signer] the registrant
//	1. [writable] the name record slot
//	2. [writable] the registrant's reverse record slot
//	3. [writable] the config slot (fee destination)
type RegisterName struct {
	Name string
}

// Accounts expected, in order:
//
//	0. [signer] the current name owner
//	1. [writable] the name record slot
//	2. [writable] the escrow slot
type RequestAddressUpdate struct {
	NewAddress ledger.Address
}

// Accounts expected, in order:
//
//	0. [signer] the pending target address
//	1. [writable] the name record slot
//	2. [writable] the reverse record slot
//	3. [writable] the escrow slot
type CompleteAddressUpdate struct{}

// Accounts expected, in order:
//
//	0. [signer] the current name owner
//	1. [writable] the old name record slot
//	2. [writable] the new name record slot
//	3. [writable] the owner's reverse record slot
type RenameName struct {
	NewName string
}

// Accounts expected: 0. [signer] the administrator, 1. [writable] the config slot.
type SetRegistrationFee struct {
	NewFee uint64
}

// Accounts expected: 0. [signer] the administrator, 1. [writable] the config slot.
type ChangeProgramOwner struct {
	NewOwner ledger.Address
}

// Accounts expected: 0. [signer] the pending administrator, 1. [writable] the config slot.
type AcceptProgramOwnership struct{}

// Accounts expected: 0. the name record slot. Read-only; returns the resolved
// address as 32 bytes of return data.
type ResolveAddress struct{}

// Accounts expected: 0. the config slot. Read-only; returns 32 bytes.
type GetContractOwner struct{}

// Accounts expected: 0. the config slot. Read-only; returns a u64 LE.
type GetRegistrationFee struct{}

// Accounts expected: 0. the config slot. Read-only; returns 32 bytes.
type GetPendingContractOwner struct{}

// Accounts expected: 0. [signer] the administrator, 1. [writable] the config slot.
type Withdraw struct{}

func (Initialize) Tag() byte              { return TagInitialize }
func (RegisterName) Tag() byte            { return TagRegisterName }
func (RequestAddressUpdate) Tag() byte    { return TagRequestAddressUpdate }
func (CompleteAddressUpdate) Tag() byte   { return TagCompleteAddressUpdate }
func (RenameName) Tag() byte              { return TagRenameName }
func (SetRegistrationFee) Tag() byte      { return TagSetRegistrationFee }
func (ChangeProgramOwner) Tag() byte      { return TagChangeProgramOwner }
func (AcceptProgramOwnership) Tag() byte  { return TagAcceptProgramOwnership }
func (ResolveAddress) Tag() byte          { return TagResolveAddress }
func (GetContractOwner) Tag() byte        { return TagGetContractOwner }
func (GetRegistrationFee) Tag() byte      { return TagGetRegistrationFee }
func (GetPendingContractOwner) Tag() byte { return TagGetPendingContractOwner }
func (Withdraw) Tag() byte                { return TagWithdraw }

// EncodeInstruction serializes an instruction to its wire form.
func EncodeInstruction(in Instruction) ([]byte, error) {
	out := []byte{in.Tag()}
	switch v := in.(type) {
	case Initialize:
		out = appendU64(out, v.RegistrationFee)
	case RegisterName:
		var err error
		if out, err = appendString(out, v.Name); err != nil {
			return nil, err
		}
	case RequestAddressUpdate:
		out = append(out, v.NewAddress[:]...)
	case RenameName:
		var err error
		if out, err = appendString(out, v.NewName); err != nil {
			return nil, err
		}
	case SetRegistrationFee:
		out = appendU64(out, v.NewFee)
	case ChangeProgramOwner:
		out = append(out, v.NewOwner[:]...)
	case CompleteAddressUpdate, AcceptProgramOwnership, ResolveAddress,
		GetContractOwner, GetRegistrationFee, GetPendingContractOwner, Withdraw:
	default:
		return nil, fmt.Errorf("unknown instruction type %T", in)
	}
	return out, nil
}

// DecodeInstruction parses the wire form. Unknown tags, short buffers, and
// trailing bytes are all rejected.
func DecodeInstruction(b []byte) (Instruction, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("empty instruction")
	}
	d := &instrDecoder{buf: b[1:]}

	var in Instruction
	switch b[0] {
	case TagInitialize:
		in = Initialize{RegistrationFee: d.u64()}
	case TagRegisterName:
		in = RegisterName{Name: d.str()}
	case TagRequestAddressUpdate:
		in = RequestAddressUpdate{NewAddress: d.address()}
	case TagCompleteAddressUpdate:
		in = CompleteAddressUpdate{}
	case TagRenameName:
		in = RenameName{NewName: d.str()}
	case TagSetRegistrationFee:
		in = SetRegistrationFee{NewFee: d.u64()}
	case TagChangeProgramOwner:
		in = ChangeProgramOwner{NewOwner: d.address()}
	case TagAcceptProgramOwnership:
		in = AcceptProgramOwnership{}
	case TagResolveAddress:
		in = ResolveAddress{}
	case TagGetContractOwner:
		in = GetContractOwner{}
	case TagGetRegistrationFee:
		in = GetRegistrationFee{}
	case TagGetPendingContractOwner:
		in = GetPendingContractOwner{}
	case TagWithdraw:
		in = Withdraw{}
	default:
		return nil, fmt.Errorf("unknown instruction tag %#x", b[0])
	}
	if d.err != nil {
		return nil, d.err
	}
	if d.off != len(d.buf) {
		return nil, fmt.Errorf("instruction has %d trailing bytes", len(d.buf)-d.off)
	}
	return in, nil
}

func appendU64(b []byte, v uint64) []byte {
	return binary.LittleEndian.AppendUint64(b, v)
}

func appendString(b []byte, s string) ([]byte, error) {
	b = binary.LittleEndian.AppendUint32(b, uint32(len(s)))
	return append(b, s...), nil
}

type instrDecoder struct {
	buf []byte
	off int
	err error
}

func (d *instrDecoder) u64() uint64 {
	if d.err != nil || d.off+8 > len(d.buf) {
		d.fail("truncated u64")
		return 0
	}
	v := binary.LittleEndian.Uint64(d.buf[d.off:])
	d.off += 8
	return v
}

func (d *instrDecoder) str() string {
	if d.err != nil || d.off+4 > len(d.buf) {
		d.fail("truncated string length")
		return ""
	}
	n := binary.LittleEndian.Uint32(d.buf[d.off:])
	d.off += 4
	if int(n) > len(d.buf)-d.off {
		d.fail("truncated string")
		return ""
	}
	s := string(d.buf[d.off : d.off+int(n)])
	d.off += int(n)
	return s
}

func (d *instrDecoder) address() ledger.Address {
	var a ledger.Address
	if d.err != nil || d.off+ledger.AddressLen > len(d.buf) {
		d.fail("truncated address")
		return a
	}
	copy(a[:], d.buf[d.off:])
	d.off += ledger.AddressLen
	return a
}

func (d *instrDecoder) fail(msg string) {
	if d.err == nil {
		d.err = fmt.Errorf("malformed instruction: %s", msg)
	}
}
