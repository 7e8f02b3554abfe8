package ast

// TypeNode is any node in type position.
type TypeNode interface {
	Node
	typeNode()
}

// Keyword identifies a primitive keyword type.
type Keyword int

const (
	KeywordAny Keyword = iota
	KeywordString
	KeywordNumber
	KeywordBoolean
	KeywordBigint
	KeywordVoid
	KeywordNull
	KeywordUndefined
)

type (
	// KeywordType is a primitive keyword in type position.
	KeywordType struct {
		node
		Kind Keyword
	}

	// ArrayType is `T[]`.
	ArrayType struct {
		node
		Elem TypeNode
	}

	// UnionType is `A | B | ...`.
	UnionType struct {
		node
		Members []TypeNode
	}

	// IntersectionType is `A & B & ...`.
	IntersectionType struct {
		node
		Members []TypeNode
	}

	// ParenType is `(T)`.
	ParenType struct {
		node
		Inner TypeNode
	}

	// LiteralType wraps a literal expression used as a type.
	LiteralType struct {
		node
		Lit Expr
	}

	// TypeRef is a named type reference with optional generic arguments.
	TypeRef struct {
		node
		Name     *Ident
		TypeArgs []TypeNode
	}

	// ObjectType is an inline object type literal.
	ObjectType struct {
		node
		Members []Member
	}

	// Member is an object-type or interface member.
	Member interface {
		Node
		member()
	}

	// PropertySignature is a named, typed object member.
	PropertySignature struct {
		node
		Name     *Ident
		Type     TypeNode
		Optional bool
	}

	// MethodSignature is a callable object member.
	MethodSignature struct {
		node
		Name   *Ident
		Params []*Param
		Return TypeNode
	}

	// IndexSignature is `[key: K]: V`. Key may be nil.
	IndexSignature struct {
		node
		Key   TypeNode
		Value TypeNode
	}

	// MappedType is a mapped type. The transformer does not evaluate these;
	// extraction yields nothing for them.
	MappedType struct {
		node
	}

	// QueryType is `typeof x`.
	QueryType struct {
		node
		Target *Ident
	}

	// ConditionalType is `C extends E ? T : F`. Not evaluated by the
	// transformer.
	ConditionalType struct {
		node
		Check   TypeNode
		Extends TypeNode
		True    TypeNode
		False   TypeNode
	}
)

func (*KeywordType) typeNode()      {}
func (*ArrayType) typeNode()        {}
func (*UnionType) typeNode()        {}
func (*IntersectionType) typeNode() {}
func (*ParenType) typeNode()        {}
func (*LiteralType) typeNode()      {}
func (*TypeRef) typeNode()          {}
func (*ObjectType) typeNode()       {}
func (*MappedType) typeNode()       {}
func (*QueryType) typeNode()        {}
func (*ConditionalType) typeNode()  {}

func (*PropertySignature) member() {}
func (*MethodSignature) member()   {}
func (*IndexSignature) member()    {}
