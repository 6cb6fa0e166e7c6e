package jsonpath

import (
	"strings"

	"github.com/cortronic/jsonpath/jsonvalue"
)

// Match evaluates a compiled path against a document root and returns
// every matched value in document visitation order (spec §4.3, §4.3.3).
// The result is a fresh ordered multiset per call; duplicates produced
// by a UNION selector are preserved, never de-duplicated.
func Match(path *CompiledPath, doc jsonvalue.Value) []jsonvalue.Value {
	var out []jsonvalue.Value
	step(path.root, doc, doc, &out, false)
	return out
}

// MatchFirst is a convenience wrapper returning the first match, if
// any. It is a supplemented addition to the spec's surface (§9
// SUPPLEMENTED FEATURES).
func MatchFirst(path *CompiledPath, doc jsonvalue.Value) (jsonvalue.Value, bool) {
	results := Match(path, doc)
	if len(results) == 0 {
		return jsonvalue.Null(), false
	}
	return results[0], true
}

// step is the single recursive evaluator the matcher is organized
// around (spec §4.3): given an opcode, the document root, the
// currently focused cursor, and whether the caller is in descendant
// ("deep") mode, it applies op at cursor, appending every match to
// out. The terminal rule -- op == nil means the cursor itself is a
// match -- ends every successful selector chain.
func step(op *Opcode, root, cursor jsonvalue.Value, out *[]jsonvalue.Value, deep bool) {
	if op == nil {
		*out = append(*out, cursor)
		return
	}
	if op.Kind == opDeep {
		step(op.Sibling, root, cursor, out, true)
		return
	}

	applySelector(op, op.Sibling, root, cursor, out)

	if !deep {
		return
	}
	switch cursor.Kind() {
	case jsonvalue.KindArray:
		for _, e := range cursor.Elems() {
			step(op, root, e, out, true)
		}
	case jsonvalue.KindObject:
		for _, k := range cursor.Keys() {
			v, _ := cursor.Field(k)
			step(op, root, v, out, true)
		}
	}
}

// applySelector dispatches a single selector opcode against cursor,
// continuing the chain at next on every value it selects. It is kept
// separate from step so that a UNION's children -- whose Sibling links
// chain the union's own members, not "what comes after the union" --
// can each be applied with the union's own continuation rather than
// their own.
func applySelector(op, next *Opcode, root, cursor jsonvalue.Value, out *[]jsonvalue.Value) {
	switch op.Kind {
	case opWildcard:
		switch cursor.Kind() {
		case jsonvalue.KindArray:
			for _, e := range cursor.Elems() {
				step(next, root, e, out, false)
			}
		case jsonvalue.KindObject:
			for _, k := range cursor.Keys() {
				v, _ := cursor.Field(k)
				step(next, root, v, out, false)
			}
		}
	case opLabel, opString:
		if cursor.Kind() != jsonvalue.KindObject {
			return
		}
		if v, ok := cursor.Field(op.Str); ok {
			step(next, root, v, out, false)
		}
	case opNumber:
		if cursor.Kind() != jsonvalue.KindArray {
			return
		}
		n := cursor.Len()
		i := op.Num
		if i < 0 {
			i += n
		}
		if i >= 0 && i < n {
			step(next, root, cursor.Index(i), out, false)
		}
	case opSlice:
		applySlice(op, next, root, cursor, out)
	case opUnion:
		for child := op.Down; child != nil; child = child.Sibling {
			applySelector(child, next, root, cursor, out)
		}
	default:
		// EQ/NE/LT/LE/GT/GE/AND/OR/NOT/ROOT/THIS found in axis position
		// are filter predicates (spec §4.3's dispatch table).
		applyFilter(op, next, root, cursor, out)
	}
}

// applySlice implements the slice arithmetic of spec §4.3.1, with one
// deliberate extension beyond the literal prose: a start omitted from
// the query (minInt) resolves to n-1 rather than 0 when the effective
// step is negative. Resolving it unconditionally to 0, as the source's
// compile-time default does, makes $[::-1] walk a single element
// instead of reversing the array, which contradicts spec §8 scenario
// S2. An omitted start also makes the auto step +1, whatever the stop.
// Everything else -- the INT_MAX stop sentinel, the auto-step direction
// guess from an explicit start and stop, the "no progress possible"
// bail-out -- follows the source's jp_match_slice.
func applySlice(op, next *Opcode, root, cursor jsonvalue.Value, out *[]jsonvalue.Value) {
	if cursor.Kind() != jsonvalue.KindArray {
		return
	}
	startOp := op.Down
	stopOp := startOp.Sibling
	stepOp := stopOp.Sibling

	n := cursor.Len()
	startRaw, stopRaw, stp := startOp.Num, stopOp.Num, stepOp.Num
	missingStart := startRaw == minInt

	if stp == 0 {
		if !missingStart && stopRaw != maxInt && startRaw > stopRaw {
			stp = -1
		} else {
			stp = 1
		}
	}

	start := startRaw
	if missingStart {
		if stp > 0 {
			start = 0
		} else {
			start = n - 1
		}
	}
	stop := stopRaw
	if stop == maxInt {
		if stp > 0 {
			stop = n
		} else {
			stop = -1
		}
	}

	directionOK := (start < stop && stp > 0) || (start > stop && stp < 0)
	if !((start >= 0 || stop >= 0) && directionOK) {
		return
	}

	for i := start; (stp > 0 && i < stop) || (stp < 0 && i > stop); i += stp {
		if i >= 0 && i < n {
			step(next, root, cursor.Index(i), out, false)
		}
	}
}

// applyFilter evaluates a filter predicate op against every child of
// cursor, continuing the chain at next for each child the predicate
// accepts (spec §4.3's filter-predicate row).
func applyFilter(op, next *Opcode, root, cursor jsonvalue.Value, out *[]jsonvalue.Value) {
	switch cursor.Kind() {
	case jsonvalue.KindArray:
		for i, e := range cursor.Elems() {
			if evalPredicate(op, root, e, "", false, i, true) {
				step(next, root, e, out, false)
			}
		}
	case jsonvalue.KindObject:
		for _, k := range cursor.Keys() {
			v, _ := cursor.Field(k)
			if evalPredicate(op, root, v, k, true, 0, false) {
				step(next, root, v, out, false)
			}
		}
	}
}

// evalPredicate implements spec §4.3.2's eval_predicate. key/hasKey and
// index/hasIndex carry the caller-supplied key-or-none /
// index-or-minus-one the spec's signature describes, used only by the
// LABEL/STRING and NUMBER branches (a bare key or index literal used
// directly as a filter body, e.g. an object-key existence probe).
func evalPredicate(op *Opcode, root, node jsonvalue.Value, key string, hasKey bool, index int, hasIndex bool) bool {
	switch op.Kind {
	case opWildcard:
		return true
	case opEQ, opNE, opLT, opLE, opGT, opGE:
		return evalComparison(op, root, node)
	case opRoot:
		return subpathMatchesAny(op.Down, root, root)
	case opThis:
		return subpathMatchesAny(op.Down, root, node)
	case opNot:
		return !evalPredicate(op.Down, root, node, key, hasKey, index, hasIndex)
	case opAnd:
		for c := op.Down; c != nil; c = c.Sibling {
			if !evalPredicate(c, root, node, key, hasKey, index, hasIndex) {
				return false
			}
		}
		return true
	case opOr, opUnion:
		for c := op.Down; c != nil; c = c.Sibling {
			if evalPredicate(c, root, node, key, hasKey, index, hasIndex) {
				return true
			}
		}
		return false
	case opLabel, opString:
		return hasKey && key == op.Str
	case opNumber:
		return hasIndex && index == op.Num
	case opBool:
		return op.Num != 0
	default:
		return false
	}
}

func subpathMatchesAny(sub *Opcode, root, base jsonvalue.Value) bool {
	var results []jsonvalue.Value
	step(sub, root, base, &results, false)
	return len(results) > 0
}

// literal is a resolved filter-comparison operand: a tagged scalar,
// never a path.
type literal struct {
	kind Kind
	str  string
	num  int
}

// evalComparison implements the comparison row of spec §4.3.2: resolve
// both operands, fail soft (false) if either cannot be resolved, treat
// a WILDCARD right-hand side as an automatic match, otherwise compare
// by tag.
func evalComparison(op *Opcode, root, node jsonvalue.Value) bool {
	left := op.Down
	right := left.Sibling

	leftLit, leftOK := resolveOperand(left, root, node)
	rightLit, rightOK := resolveOperand(right, root, node)
	if !leftOK || !rightOK {
		return false
	}
	if rightLit.kind == opWildcard {
		return true
	}
	if leftLit.kind != rightLit.kind {
		return false
	}

	var cmp int
	if leftLit.kind == opString {
		cmp = strings.Compare(leftLit.str, rightLit.str)
	} else {
		cmp = leftLit.num - rightLit.num
	}

	switch op.Kind {
	case opEQ:
		return cmp == 0
	case opNE:
		return cmp != 0
	case opLT:
		return cmp < 0
	case opLE:
		return cmp <= 0
	case opGT:
		return cmp > 0
	case opGE:
		return cmp >= 0
	default:
		return false
	}
}

// resolveOperand implements spec §4.3.2's operand resolution: THIS
// evaluates its sub-path from node, ROOT from root, taking the first
// non-null match; anything else is a literal copied from the opcode.
func resolveOperand(op *Opcode, root, node jsonvalue.Value) (literal, bool) {
	switch op.Kind {
	case opThis:
		return firstMatchLiteral(op.Down, root, node)
	case opRoot:
		return firstMatchLiteral(op.Down, root, root)
	case opString:
		return literal{kind: opString, str: op.Str}, true
	case opNumber:
		return literal{kind: opNumber, num: op.Num}, true
	case opBool:
		return literal{kind: opBool, num: op.Num}, true
	case opWildcard:
		return literal{kind: opWildcard}, true
	default:
		return literal{}, false
	}
}

func firstMatchLiteral(sub *Opcode, root, base jsonvalue.Value) (literal, bool) {
	var results []jsonvalue.Value
	step(sub, root, base, &results, false)
	for _, v := range results {
		if v.Kind() == jsonvalue.KindNull {
			continue
		}
		return literalFromValue(v)
	}
	return literal{}, false
}

func literalFromValue(v jsonvalue.Value) (literal, bool) {
	switch v.Kind() {
	case jsonvalue.KindString:
		s, _ := v.Str()
		return literal{kind: opString, str: s}, true
	case jsonvalue.KindInt:
		n, _ := v.Int()
		return literal{kind: opNumber, num: int(n)}, true
	case jsonvalue.KindBool:
		b, _ := v.Bool()
		n := 0
		if b {
			n = 1
		}
		return literal{kind: opBool, num: n}, true
	default:
		return literal{}, false
	}
}
