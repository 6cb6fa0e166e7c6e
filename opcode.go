package jsonpath

import "strconv"

// Kind tags an Opcode node of a compiled path.
type Kind int

const (
	// Path/axis
	opRoot Kind = iota
	opThis
	opDeep
	opWildcard

	// Selectors
	opLabel
	opString
	opNumber
	opSlice
	opUnion

	// Filter operators
	opEQ
	opNE
	opLT
	opLE
	opGT
	opGE
	opAnd
	opOr
	opNot

	// Literals
	opBool
)

func (k Kind) String() string {
	switch k {
	case opRoot:
		return "ROOT"
	case opThis:
		return "THIS"
	case opDeep:
		return "DEEP"
	case opWildcard:
		return "WILDCARD"
	case opLabel:
		return "LABEL"
	case opString:
		return "STRING"
	case opNumber:
		return "NUMBER"
	case opSlice:
		return "SLICE"
	case opUnion:
		return "UNION"
	case opEQ:
		return "EQ"
	case opNE:
		return "NE"
	case opLT:
		return "LT"
	case opLE:
		return "LE"
	case opGT:
		return "GT"
	case opGE:
		return "GE"
	case opAnd:
		return "AND"
	case opOr:
		return "OR"
	case opNot:
		return "NOT"
	case opBool:
		return "BOOL"
	default:
		return "UNKNOWN"
	}
}

// maxInt is the "missing stop" sentinel for SLICE opcodes, per spec §4.3.1.
const maxInt = int(^uint(0) >> 1)

// minInt marks a SLICE start as "not written in the query" so the
// matcher can pick 0 or n-1 once the effective step sign is known
// (needed for $[::-1] to walk from the end, rather than always from
// index 0 -- see matcher.go's applySlice).
const minInt = -maxInt - 1

// Opcode is a node of the compiled expression tree. The tree is built
// once by the compiler and never mutated afterwards; down/sibling form a
// strict parent -> children -> siblings tree, never a cycle.
type Opcode struct {
	Kind    Kind
	Num     int
	Str     string
	Down    *Opcode
	Sibling *Opcode
}

// append links b onto the end of a's sibling chain and returns a.
func (a *Opcode) append(b *Opcode) *Opcode {
	if a == nil {
		return b
	}
	tail := a
	for tail.Sibling != nil {
		tail = tail.Sibling
	}
	tail.Sibling = b
	return a
}

// pool is the opcode arena owned by a single compilation. Every Opcode
// built during a Compile call is allocated through pool.alloc and kept
// alive by the arena's own node list, rather than the original C
// source's individually-calloc'd-and-freed nodes (spec.md §9 recommends
// exactly this change: the compiler owns node lifetime, not the caller).
// Nodes are individually heap-allocated rather than packed into one
// []Opcode slice, since Down/Sibling take the address of a node as soon
// as it's allocated -- a growing []Opcode would invalidate those
// pointers on reallocation. Go's GC frees every node together once the
// CompiledPath becomes unreachable, so no explicit per-node free is
// needed; Release is kept only for API parity with the source's
// explicit jp_free.
type pool struct {
	nodes []*Opcode
}

func (p *pool) alloc(kind Kind, num int, str string) *Opcode {
	op := &Opcode{Kind: kind, Num: num, Str: str}
	p.nodes = append(p.nodes, op)
	return op
}

// dump renders the opcode tree rooted at op for debugging, grounded on
// the teacher's MarshalJSON-per-node idea but as a plain indented
// String() walk instead of JSON.
func dump(op *Opcode, depth int) string {
	if op == nil {
		return ""
	}
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	line := indent + op.Kind.String()
	switch op.Kind {
	case opLabel, opString:
		line += " " + strconv.Quote(op.Str)
	case opNumber, opBool:
		line += " " + strconv.Itoa(op.Num)
	}
	line += "\n"
	line += dump(op.Down, depth+1)
	line += dump(op.Sibling, depth)
	return line
}
