package typecode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackUnpackRoundtrip(t *testing.T) {
	tests := []struct {
		name string
		ops  []Op
	}{
		{"empty", nil},
		{"single primitive", []Op{OpString}},
		{"no params", []Op{OpString, OpNumber, OpBoolean, OpUnion, OpProperty}},
		{"with params", []Op{OpString, OpPropertySignature, 0, OpNumber, OpPropertySignature, 1, OpObjectLiteral, OpProperty}},
		{"exactly one chunk", []Op{OpString, OpNumber, OpBoolean, OpVoid, OpNull, OpUndefined, OpAny}},
		{"chunk boundary", []Op{OpString, OpNumber, OpBoolean, OpVoid, OpNull, OpUndefined, OpAny, OpDate}},
		{"two chunks", []Op{OpString, OpNumber, OpBoolean, OpVoid, OpNull, OpUndefined, OpAny, OpDate, OpArray, OpProperty}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packed := Pack(PackStruct{Ops: tt.ops})
			got, err := Unpack(packed)
			require.NoError(t, err)
			assert.Equal(t, tt.ops, got.Ops)
		})
	}
}

func TestPackStackRoundtrip(t *testing.T) {
	ps := PackStruct{}
	a := ps.PushEntry(String("a"))
	b := ps.PushEntry(String("b"))
	ps.Emit(OpString, OpPropertySignature, Op(a))
	ps.Emit(OpNumber, OpPropertySignature, Op(b))
	ps.Emit(OpObjectLiteral)

	packed := Pack(ps)
	got, err := Unpack(packed)
	require.NoError(t, err)
	assert.Equal(t, ps.Ops, got.Ops)
	assert.Equal(t, []Entry{String("a"), String("b")}, got.Stack)
}

func TestPackedShape(t *testing.T) {
	bare := Pack(PackStruct{Ops: []Op{OpString, OpProperty}})
	assert.True(t, bare.StringOnly())
	assert.NotEmpty(t, bare.Encoded)

	ps := PackStruct{Ops: []Op{OpLiteral, 0}}
	ps.PushEntry(Number(42))
	carrying := Pack(ps)
	assert.False(t, carrying.StringOnly())
	assert.Len(t, carrying.Stack, 1)
}

// A parameter slot of zero must not terminate the stream: only a zero at an
// opcode position is the end sentinel.
func TestZeroParamSlotDoesNotTerminate(t *testing.T) {
	ops := []Op{OpLiteral, 0, OpNumber, OpLiteral, 0, OpUnion}
	got, err := Unpack(Pack(PackStruct{Ops: ops}))
	require.NoError(t, err)
	assert.Equal(t, ops, got.Ops)
}

// Long streams spill into padded 12-character chunks, and interior chunks
// must stay positionally decodable even when their value is small.
func TestMultiChunkEncoding(t *testing.T) {
	var ops []Op
	for i := 0; i < 50; i++ {
		ops = append(ops, OpString)
	}
	packed := Pack(PackStruct{Ops: ops})
	// 51 slots with the sentinel: six full padded chunks plus a remainder.
	require.Greater(t, len(packed.Encoded), 6*chunkChars)

	got, err := Unpack(packed)
	require.NoError(t, err)
	assert.Equal(t, ops, got.Ops)
}

// Interior chunks made of low-valued slots (parameter zeros included) render
// short in base 36 and rely on zero padding.
func TestMultiChunkPadding(t *testing.T) {
	var ops []Op
	for i := 0; i < 12; i++ {
		ops = append(ops, OpLiteral, 0)
	}
	got, err := Unpack(Pack(PackStruct{Ops: ops}))
	require.NoError(t, err)
	assert.Equal(t, ops, got.Ops)
}

func TestDecodeOpsErrors(t *testing.T) {
	_, err := DecodeOps("!!!")
	assert.Error(t, err)

	// Slot values outside the instruction set are rejected.
	_, err = DecodeOps(strings.Repeat("z", chunkChars))
	assert.Error(t, err)

	// A truncated stream missing its end sentinel is rejected.
	full := Pack(PackStruct{Ops: []Op{OpString, OpNumber, OpBoolean, OpVoid, OpNull, OpUndefined, OpAny, OpDate}})
	_, err = DecodeOps(full.Encoded[:chunkChars])
	assert.Error(t, err)
}

func TestPushEntryDeduplicates(t *testing.T) {
	ps := PackStruct{}
	assert.Equal(t, 0, ps.PushEntry(String("title")))
	assert.Equal(t, 1, ps.PushEntry(Number(3)))
	assert.Equal(t, 0, ps.PushEntry(String("title")))
	assert.Equal(t, 1, ps.PushEntry(Number(3)))
	assert.Equal(t, 2, ps.PushEntry(Bool(true)))
	assert.Len(t, ps.Stack, 3)

	// References deduplicate by target identity, not expression identity.
	target := &struct{ name string }{"Model"}
	r1 := ps.PushEntry(&Ref{Target: target, Expr: "thunk-a"})
	r2 := ps.PushEntry(&Ref{Target: target, Expr: "thunk-b"})
	assert.Equal(t, r1, r2)

	other := &struct{ name string }{"Other"}
	assert.NotEqual(t, r1, ps.PushEntry(&Ref{Target: other}))
}
