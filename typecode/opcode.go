// Package typecode defines the type-reflection instruction set and its wire
// codec.
//
// # Architecture
//
// A type signature is compiled into a flat stream of opcodes plus a small
// literal stack carrying the non-opcode operands (property names, literal
// values, lazy class/enum references). The stream has abstract stack-machine
// semantics on the decode side: most opcodes produce a type, aggregate opcodes
// (union, objectLiteral, class) consume the current frame, and OpFrame opens a
// scope boundary so aggregates never swallow unrelated preceding types.
//
// # Design Decisions
//
//   - Every opcode fits in a 6-bit slot, so an inline parameter (a literal
//     stack index) is carried as one subsequent slot and the whole stream packs
//     into a dense positional base-64 integer rendered as base-36 ASCII.
//   - Opcode 0 is the end sentinel, which makes the encoded string
//     self-delimiting. Real opcodes start at 1 and parameter slots are read
//     unconditionally, so a parameter value of 0 never terminates the stream.
//   - Modifiers are opcodes of their own rather than flag bytes; that keeps
//     inline parameters to at most one per opcode.
package typecode

// Op identifies a single instruction in the type IR. All values fit in
// slotBits bits.
type Op uint8

const (
	// OpEnd terminates an instruction stream. Reserved; never emitted by the
	// extractor directly.
	OpEnd Op = iota

	// Primitives.
	OpString
	OpNumber
	OpBoolean
	OpBigint
	OpVoid
	OpNull
	OpUndefined
	OpAny

	// Built-in nominal references.
	OpDate
	OpArrayBuffer
	OpInt8Array
	OpUint8Array
	OpUint8ClampedArray
	OpInt16Array
	OpUint16Array
	OpInt32Array
	OpUint32Array
	OpFloat32Array
	OpFloat64Array
	OpBigInt64Array
	OpBigUint64Array
	// OpPromise consumes the resolved type produced before it.
	OpPromise

	// OpLiteral pushes the literal at stack index i.
	OpLiteral

	// Structural aggregates.
	OpObjectLiteral
	OpClass
	OpConstEnum

	// Collection constructors.
	OpArray
	OpSet
	OpMap
	OpIndexSignature
	OpEnum

	// Members.
	OpProperty
	OpPropertySignature
	OpMethod
	OpMethodSignature
	OpConstructor
	OpFunction

	// Modifiers, decorating the most recent member.
	OpOptional
	OpPrivate
	OpProtected
	OpAbstract

	// Type algebra.
	OpUnion
	OpIntersection
	OpFrame
	OpPush
	OpQuery
	OpCondition
	OpExtends

	opCount
)

var opNames = [opCount]string{
	OpEnd:               "end",
	OpString:            "string",
	OpNumber:            "number",
	OpBoolean:           "boolean",
	OpBigint:            "bigint",
	OpVoid:              "void",
	OpNull:              "null",
	OpUndefined:         "undefined",
	OpAny:               "any",
	OpDate:              "date",
	OpArrayBuffer:       "arrayBuffer",
	OpInt8Array:         "int8Array",
	OpUint8Array:        "uint8Array",
	OpUint8ClampedArray: "uint8ClampedArray",
	OpInt16Array:        "int16Array",
	OpUint16Array:       "uint16Array",
	OpInt32Array:        "int32Array",
	OpUint32Array:       "uint32Array",
	OpFloat32Array:      "float32Array",
	OpFloat64Array:      "float64Array",
	OpBigInt64Array:     "bigInt64Array",
	OpBigUint64Array:    "bigUint64Array",
	OpPromise:           "promise",
	OpLiteral:           "literal",
	OpObjectLiteral:     "objectLiteral",
	OpClass:             "class",
	OpConstEnum:         "constEnum",
	OpArray:             "array",
	OpSet:               "set",
	OpMap:               "map",
	OpIndexSignature:    "indexSignature",
	OpEnum:              "enum",
	OpProperty:          "property",
	OpPropertySignature: "propertySignature",
	OpMethod:            "method",
	OpMethodSignature:   "methodSignature",
	OpConstructor:       "constructor",
	OpFunction:          "function",
	OpOptional:          "optional",
	OpPrivate:           "private",
	OpProtected:         "protected",
	OpAbstract:          "abstract",
	OpUnion:             "union",
	OpIntersection:      "intersection",
	OpFrame:             "frame",
	OpPush:              "push",
	OpQuery:             "query",
	OpCondition:         "condition",
	OpExtends:           "extends",
}

// opParams declares how many inline parameter slots follow each opcode.
var opParams = [opCount]uint8{
	OpLiteral:           1,
	OpClass:             1,
	OpEnum:              1,
	OpPropertySignature: 1,
	OpMethodSignature:   1,
	OpPush:              1,
}

func (op Op) String() string {
	if int(op) < len(opNames) && opNames[op] != "" {
		return opNames[op]
	}
	return "op?"
}

// Params reports the number of inline parameter slots following op.
func (op Op) Params() int {
	if int(op) < len(opParams) {
		return int(opParams[op])
	}
	return 0
}

// Valid reports whether op is a defined opcode.
func (op Op) Valid() bool {
	return op < opCount
}

// Ops returns every defined opcode in numeric order, the end sentinel
// included.
func Ops() []Op {
	all := make([]Op, opCount)
	for i := range all {
		all[i] = Op(i)
	}
	return all
}
