package sle

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/LeJamon/goShieldDEX/internal/core/ledger/entry"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

// HeaderSize is the fixed prefix of every serialized record: the entry type,
// a layout version and padding up to eight bytes.
const HeaderSize = 8

// LayoutVersion is written into every header.
const LayoutVersion uint8 = 1

var (
	// ErrShortRecord is returned when a record is smaller than its layout.
	ErrShortRecord = errors.New("record too short")
	// ErrWrongType is returned when a record header carries another entry type.
	ErrWrongType = errors.New("record has unexpected entry type")
)

// encoder writes fields in declaration order after the header.
type encoder struct {
	data   []byte
	offset int
}

func newEncoder(t entry.Type, bodySize int) *encoder {
	e := &encoder{data: make([]byte, HeaderSize+bodySize)}
	binary.BigEndian.PutUint16(e.data[0:2], uint16(t))
	e.data[2] = LayoutVersion
	e.offset = HeaderSize
	return e
}

func (e *encoder) account(a types.AccountID) {
	copy(e.data[e.offset:], a[:])
	e.offset += types.AccountIDSize
}

func (e *encoder) token(t types.TokenID) {
	copy(e.data[e.offset:], t[:])
	e.offset += types.TokenIDSize
}

func (e *encoder) hash(h types.Hash256) {
	copy(e.data[e.offset:], h[:])
	e.offset += types.HashSize
}

func (e *encoder) u64(v uint64) {
	binary.BigEndian.PutUint64(e.data[e.offset:], v)
	e.offset += 8
}

func (e *encoder) i64(v int64) { e.u64(uint64(v)) }

func (e *encoder) u32(v uint32) {
	binary.BigEndian.PutUint32(e.data[e.offset:], v)
	e.offset += 4
}

func (e *encoder) u8(v uint8) {
	e.data[e.offset] = v
	e.offset++
}

func (e *encoder) bytes() []byte { return e.data }

// decoder reads fields back in the same order.
type decoder struct {
	data   []byte
	offset int
}

func newDecoder(data []byte, t entry.Type, bodySize int) (*decoder, error) {
	if len(data) < HeaderSize+bodySize {
		return nil, fmt.Errorf("%w: %s needs %d bytes, got %d", ErrShortRecord, t, HeaderSize+bodySize, len(data))
	}
	if got := entry.Type(binary.BigEndian.Uint16(data[0:2])); got != t {
		return nil, fmt.Errorf("%w: want %s, got %s", ErrWrongType, t, got)
	}
	return &decoder{data: data, offset: HeaderSize}, nil
}

func (d *decoder) account() (a types.AccountID) {
	copy(a[:], d.data[d.offset:])
	d.offset += types.AccountIDSize
	return a
}

func (d *decoder) token() (t types.TokenID) {
	copy(t[:], d.data[d.offset:])
	d.offset += types.TokenIDSize
	return t
}

func (d *decoder) hash() (h types.Hash256) {
	copy(h[:], d.data[d.offset:])
	d.offset += types.HashSize
	return h
}

func (d *decoder) u64() uint64 {
	v := binary.BigEndian.Uint64(d.data[d.offset:])
	d.offset += 8
	return v
}

func (d *decoder) i64() int64 { return int64(d.u64()) }

func (d *decoder) u32() uint32 {
	v := binary.BigEndian.Uint32(d.data[d.offset:])
	d.offset += 4
	return v
}

func (d *decoder) u8() uint8 {
	v := d.data[d.offset]
	d.offset++
	return v
}

// TypeOf returns the entry type recorded in a serialized header.
func TypeOf(data []byte) (entry.Type, error) {
	if len(data) < HeaderSize {
		return 0, ErrShortRecord
	}
	return entry.Type(binary.BigEndian.Uint16(data[0:2])), nil
}
