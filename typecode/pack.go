package typecode

import (
	"strconv"
	"strings"

	"github.com/lumen-lang/reflectc/errors"
)

// Wire layout constants. Eight 6-bit slots per chunk keeps every chunk value
// below 2^48, inside the exact-integer range of runtimes whose only numeric
// type is a double. A chunk value is rendered base-36; 2^48 needs at most 12
// base-36 digits, so full chunks are padded to exactly chunkChars characters
// and the decoder can split the string positionally.
const (
	slotBits      = 6
	slotMask      = 1<<slotBits - 1
	slotsPerChunk = 8
	chunkChars    = 12
)

// MaxStackIndex is the largest literal-stack index an inline parameter slot
// can carry.
const MaxStackIndex = slotMask

// Packed is the wire form of a PackStruct. When the literal stack is empty
// the wire form is just the encoded opcode string; otherwise it is the stack
// in order followed by the encoded string.
type Packed struct {
	Stack   []Entry
	Encoded string
}

// StringOnly reports whether the wire form is a bare string.
func (p Packed) StringOnly() bool {
	return len(p.Stack) == 0
}

// Pack serializes a PackStruct. The instruction stream is terminated with the
// end sentinel, packed eight slots per chunk, and each chunk rendered base-36.
// All chunks but the last are padded to chunkChars characters. Pack is total:
// streams longer than one chunk simply spill into further chunks.
func Pack(ps PackStruct) Packed {
	ops := make([]Op, 0, len(ps.Ops)+1)
	ops = append(ops, ps.Ops...)
	ops = append(ops, OpEnd)

	var sb strings.Builder
	for start := 0; start < len(ops); start += slotsPerChunk {
		end := min(start+slotsPerChunk, len(ops))
		var v uint64
		for i := start; i < end; i++ {
			v |= uint64(ops[i]&slotMask) << (slotBits * (i - start))
		}
		enc := strconv.FormatUint(v, 36)
		if end < len(ops) && len(enc) < chunkChars {
			// Interior chunk: pad so the decoder's positional split holds.
			sb.WriteString(strings.Repeat("0", chunkChars-len(enc)))
		}
		sb.WriteString(enc)
	}

	return Packed{Stack: ps.Stack, Encoded: sb.String()}
}

// Unpack is the inverse of Pack, modulo the trailing end sentinel, which is
// stripped. Parameter slots are read unconditionally according to the opcode
// table, so a zero parameter never terminates the stream early.
func Unpack(p Packed) (PackStruct, error) {
	ops, err := DecodeOps(p.Encoded)
	if err != nil {
		return PackStruct{}, err
	}
	return PackStruct{Ops: ops, Stack: p.Stack}, nil
}

// DecodeOps decodes an encoded opcode string into the instruction stream it
// carries, end sentinel stripped.
func DecodeOps(s string) ([]Op, error) {
	var ops []Op
	params := 0
	for g := 0; g < len(s); g += chunkChars {
		part := s[g:min(g+chunkChars, len(s))]
		v, err := strconv.ParseUint(part, 36, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "malformed opcode chunk %q", part)
		}
		for j := 0; j < slotsPerChunk; j++ {
			slot := Op(v >> (slotBits * j) & slotMask)
			if params > 0 {
				ops = append(ops, slot)
				params--
				continue
			}
			if slot == OpEnd {
				return ops, nil
			}
			if !slot.Valid() {
				return nil, errors.Newf("unknown opcode %d at slot %d", slot, len(ops))
			}
			ops = append(ops, slot)
			params = slot.Params()
		}
	}
	return nil, errors.Newf("opcode stream %q missing end sentinel", s)
}
