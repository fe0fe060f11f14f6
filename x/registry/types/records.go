package types

import (
	"encoding/binary"

	"namechain/ledger"
)

// The four record kinds are stored in fixed-size slots. Encodings are
// little-endian and sequential: a one-byte initialized flag, then the fields
// in declaration order, strings as a u32 length prefix plus bytes. The slot
// is sized for the maximum encoding and the unused tail stays zero.
const (
	NameRecordSize    = 1 + ledger.AddressLen + 4 + MaxNameLength + ledger.AddressLen + 8
	ReverseRecordSize = 1 + 4 + MaxNameLength
	EscrowRecordSize  = 1 + ledger.AddressLen
	ConfigRecordSize  = 1 + ledger.AddressLen + ledger.AddressLen + 8
)

// NameRecord is the primary entry mapping a name to its owner and resolved
// address. Initialized implies the name is non-empty, well-formed, and the
// resolved address is valid.
type NameRecord struct {
	Initialized     bool
	Owner           ledger.Address
	Name            string
	ResolvedAddress ledger.Address
	CooldownUntil   int64
}

// ReverseRecord is the per-owner-address reverse pointer: which name that
// address currently holds. An address holds at most one active name.
type ReverseRecord struct {
	Initialized bool
	Name        string
}

// EscrowRecord holds an in-flight address rotation awaiting confirmation by
// the target address. At most one outstanding request per name; a new request
// silently replaces a prior one.
type EscrowRecord struct {
	Initialized   bool
	TargetAddress ledger.Address
}

// ConfigRecord is the global singleton: administrator, the pending
// administrator of a two-step handoff (zero sentinel when absent), and the
// registration fee. Collected fees are the value held by the config slot
// itself.
type ConfigRecord struct {
	Initialized          bool
	Administrator        ledger.Address
	PendingAdministrator ledger.Address
	RegistrationFee      uint64
}

type recordWriter struct {
	buf []byte
	off int
}

func (w *recordWriter) flag(v bool) {
	if v {
		w.buf[w.off] = 1
	}
	w.off++
}

func (w *recordWriter) address(a ledger.Address) {
	copy(w.buf[w.off:], a[:])
	w.off += ledger.AddressLen
}

func (w *recordWriter) str(s string) {
	binary.LittleEndian.PutUint32(w.buf[w.off:], uint32(len(s)))
	w.off += 4
	copy(w.buf[w.off:], s)
	w.off += len(s)
}

func (w *recordWriter) u64(v uint64) {
	binary.LittleEndian.PutUint64(w.buf[w.off:], v)
	w.off += 8
}

type recordReader struct {
	buf []byte
	off int
	err error
}

func (r *recordReader) flag() bool {
	if r.err != nil || r.off+1 > len(r.buf) {
		r.fail("truncated flag")
		return false
	}
	b := r.buf[r.off]
	r.off++
	if b > 1 {
		r.fail("invalid initialized flag")
		return false
	}
	return b == 1
}

func (r *recordReader) address() ledger.Address {
	var a ledger.Address
	if r.err != nil || r.off+ledger.AddressLen > len(r.buf) {
		r.fail("truncated address")
		return a
	}
	copy(a[:], r.buf[r.off:])
	r.off += ledger.AddressLen
	return a
}

func (r *recordReader) str() string {
	if r.err != nil || r.off+4 > len(r.buf) {
		r.fail("truncated string length")
		return ""
	}
	n := binary.LittleEndian.Uint32(r.buf[r.off:])
	r.off += 4
	if n > MaxNameLength {
		r.fail("string length exceeds maximum")
		return ""
	}
	if r.off+int(n) > len(r.buf) {
		r.fail("truncated string")
		return ""
	}
	s := string(r.buf[r.off : r.off+int(n)])
	r.off += int(n)
	return s
}

func (r *recordReader) u64() uint64 {
	if r.err != nil || r.off+8 > len(r.buf) {
		r.fail("truncated integer")
		return 0
	}
	v := binary.LittleEndian.Uint64(r.buf[r.off:])
	r.off += 8
	return v
}

func (r *recordReader) fail(msg string) {
	if r.err == nil {
		r.err = ErrMalformedRecord.Wrap(msg)
	}
}

func checkSize(buf []byte, want int) error {
	if len(buf) != want {
		return ErrMalformedRecord.Wrapf("buffer is %d bytes, record needs %d", len(buf), want)
	}
	return nil
}

// Pack encodes the record into a buffer of exactly NameRecordSize bytes.
func (rec NameRecord) Pack() ([]byte, error) {
	if len(rec.Name) > MaxNameLength {
		return nil, ErrMalformedRecord.Wrapf("name length %d exceeds %d", len(rec.Name), MaxNameLength)
	}
	w := &recordWriter{buf: make([]byte, NameRecordSize)}
	w.flag(rec.Initialized)
	w.address(rec.Owner)
	w.str(rec.Name)
	w.address(rec.ResolvedAddress)
	w.u64(uint64(rec.CooldownUntil))
	return w.buf, nil
}

// UnpackNameRecord decodes a slot buffer. An all-zero buffer decodes to the
// zero record with Initialized false; corrupt or wrongly sized buffers fail
// with ErrMalformedRecord and are never treated as uninitialized.
func UnpackNameRecord(buf []byte) (NameRecord, error) {
	if err := checkSize(buf, NameRecordSize); err != nil {
		return NameRecord{}, err
	}
	r := &recordReader{buf: buf}
	rec := NameRecord{
		Initialized:     r.flag(),
		Owner:           r.address(),
		Name:            r.str(),
		ResolvedAddress: r.address(),
		CooldownUntil:   int64(r.u64()),
	}
	if r.err != nil {
		return NameRecord{}, r.err
	}
	return rec, nil
}

func (rec ReverseRecord) Pack() ([]byte, error) {
	if len(rec.Name) > MaxNameLength {
		return nil, ErrMalformedRecord.Wrapf("name length %d exceeds %d", len(rec.Name), MaxNameLength)
	}
	w := &recordWriter{buf: make([]byte, ReverseRecordSize)}
	w.flag(rec.Initialized)
	w.str(rec.Name)
	return w.buf, nil
}

func UnpackReverseRecord(buf []byte) (ReverseRecord, error) {
	if err := checkSize(buf, ReverseRecordSize); err != nil {
		return ReverseRecord{}, err
	}
	r := &recordReader{buf: buf}
	rec := ReverseRecord{
		Initialized: r.flag(),
		Name:        r.str(),
	}
	if r.err != nil {
		return ReverseRecord{}, r.err
	}
	return rec, nil
}

func (rec EscrowRecord) Pack() ([]byte, error) {
	w := &recordWriter{buf: make([]byte, EscrowRecordSize)}
	w.flag(rec.Initialized)
	w.address(rec.TargetAddress)
	return w.buf, nil
}

func UnpackEscrowRecord(buf []byte) (EscrowRecord, error) {
	if err := checkSize(buf, EscrowRecordSize); err != nil {
		return EscrowRecord{}, err
	}
	r := &recordReader{buf: buf}
	rec := EscrowRecord{
		Initialized:   r.flag(),
		TargetAddress: r.address(),
	}
	if r.err != nil {
		return EscrowRecord{}, r.err
	}
	return rec, nil
}

func (rec ConfigRecord) Pack() ([]byte, error) {
	w := &recordWriter{buf: make([]byte, ConfigRecordSize)}
	w.flag(rec.Initialized)
	w.address(rec.Administrator)
	w.address(rec.PendingAdministrator)
	w.u64(rec.RegistrationFee)
	return w.buf, nil
}

func UnpackConfigRecord(buf []byte) (ConfigRecord, error) {
	if err := checkSize(buf, ConfigRecordSize); err != nil {
		return ConfigRecord{}, err
	}
	r := &recordReader{buf: buf}
	rec := ConfigRecord{
		Initialized:          r.flag(),
		Administrator:        r.address(),
		PendingAdministrator: r.address(),
		RegistrationFee:      r.u64(),
	}
	if r.err != nil {
		return ConfigRecord{}, r.err
	}
	return rec, nil
}
