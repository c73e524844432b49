package type_system

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/tidwall/btree"
)

// Identity is the compact numeric identity every interned type carries
// (§3 "Type Identity"). It fits comfortably in 32 bits; the low values are
// reserved for the intrinsics so callers can compare against them without
// a round trip through the Interner.
type Identity int32

const (
	IdentAny Identity = iota
	IdentUnknown
	IdentVoid
	IdentNever
	IdentNull
	IdentUndefined
	IdentString
	IdentNumber
	IdentBoolean
	IdentBigInt
	IdentSymbol
	IdentObject
	IdentError // recovery sentinel; behaves like `any` downstream (§7)
	IdentTrue
	IdentFalse

	firstDynamicIdentity
)

// Interner assigns identities to canonical type values and deduplicates by
// structural key (§4.1). It exclusively owns the mapping from identity to
// Type; every other component receives identities by value and resolves
// through Resolve. The zero value is not usable; call NewInterner.
//
// Structural dedup keys off each type's canonical textual form (its
// String() method after normalization — see UnionOf/IntersectionOf)
// rather than a hand-rolled hash, trading a little dedup precision for a
// single source of truth with the printer.
type Interner struct {
	byKey   *btree.Map[string, Identity]
	byID    []Type
	atoms   *AtomPool
	nextTmp Identity
}

func NewInterner() *Interner {
	in := &Interner{
		byKey: &btree.Map[string, Identity]{},
		byID:  make([]Type, firstDynamicIdentity),
		atoms: NewAtomPool(),
	}
	in.byID[IdentAny] = NewAnyType(nil)
	in.byID[IdentUnknown] = NewUnknownType(nil)
	in.byID[IdentVoid] = NewVoidType(nil)
	in.byID[IdentNever] = NewNeverType(nil)
	in.byID[IdentNull] = NewNullType(nil)
	in.byID[IdentUndefined] = NewUndefinedType(nil)
	in.byID[IdentString] = NewStrPrimType(nil)
	in.byID[IdentNumber] = NewNumPrimType(nil)
	in.byID[IdentBoolean] = NewBoolPrimType(nil)
	in.byID[IdentBigInt] = NewBigIntPrimType(nil)
	in.byID[IdentSymbol] = NewSymPrimType(nil)
	in.byID[IdentObject] = NewObjectType(nil, nil)
	in.byID[IdentError] = NewAnyType(nil) // recovery sentinel; resolves to an `any` value
	in.byID[IdentTrue] = NewBoolLitType(nil, true)
	in.byID[IdentFalse] = NewBoolLitType(nil, false)
	in.nextTmp = firstDynamicIdentity
	for id, t := range in.byID {
		if _, ok := in.byKey.Get(t.String()); ok {
			continue // IdentError shares `any`'s key; `any` keeps it
		}
		in.byKey.Set(t.String(), Identity(id))
	}
	return in
}

// Resolve returns the canonical Type value for an identity. It never
// allocates and never fails for an identity this Interner produced.
func (in *Interner) Resolve(id Identity) Type {
	if int(id) < 0 || int(id) >= len(in.byID) {
		panic(fmt.Sprintf("interner: identity %d out of range", id))
	}
	return in.byID[id]
}

// Intern assigns (or reuses) an identity for t. Structurally-equal types —
// same canonical key — always share one identity; interning is total and
// never fails (§4.1 "Failure mode: none").
func (in *Interner) Intern(t Type) Identity {
	key := t.String()
	if id, ok := in.byKey.Get(key); ok {
		return id
	}
	id := in.nextTmp
	in.nextTmp++
	in.byID = append(in.byID, t)
	in.byKey.Set(key, id)
	return id
}

// Atoms exposes the parallel string-atom pool (§4.1 "String atoms are a
// separate interned pool; comparing atoms is pointer-equal").
func (in *Interner) Atoms() *AtomPool { return in.atoms }

// LiteralString interns a string literal type, sharing one Atom (and thus
// one canonical key) per distinct literal value across the whole session.
func (in *Interner) LiteralString(prov Provenance, value string) Identity {
	in.atoms.Intern(value)
	return in.Intern(NewStrLitType(prov, value))
}

// LiteralNumber interns a numeric literal type. NaN is not a valid literal
// key and is rejected by the caller before this is reached.
func (in *Interner) LiteralNumber(prov Provenance, value float64) Identity {
	return in.Intern(NewNumLitType(prov, value))
}

// UnionOf builds the union of members, applying the normalization
// discipline of §3 before interning: flatten nested unions, drop `never`,
// absorb to `any` if any member is `any`, dedupe by identity, and sort into
// a canonical order so structural equality stays order-insensitive (§5
// "Union/intersection members are stored in a canonical order"). This
// supersedes the teacher's NewUnionType, which built an unnormalized,
// unsorted slice verbatim — a deliberate redesign, recorded in DESIGN.md.
func (in *Interner) UnionOf(prov Provenance, members ...Type) Type {
	flat := make([]Type, 0, len(members))
	var flatten func(Type)
	flatten = func(t Type) {
		if u, ok := t.(*UnionType); ok {
			for _, m := range u.Types {
				flatten(m)
			}
			return
		}
		flat = append(flat, t)
	}
	for _, m := range members {
		flatten(m)
	}

	hasAny := false
	hasUnknown := false
	for _, t := range flat {
		switch t.(type) {
		case *AnyType:
			hasAny = true
		case *UnknownType:
			hasUnknown = true
		}
	}
	if hasAny {
		return in.Resolve(IdentAny)
	}

	deduped := make([]Type, 0, len(flat))
	seen := map[string]bool{}
	for _, t := range flat {
		if _, ok := t.(*NeverType); ok {
			continue
		}
		if hasUnknown {
			// unknown absorbs everything except any (already excluded above)
			if _, ok := t.(*UnknownType); !ok {
				continue
			}
		}
		key := t.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, t)
	}

	if hasUnknown {
		return in.Resolve(IdentUnknown)
	}
	if len(deduped) == 0 {
		return in.Resolve(IdentNever)
	}
	sort.Slice(deduped, func(i, j int) bool { return deduped[i].String() < deduped[j].String() })
	if len(deduped) == 1 {
		return deduped[0]
	}
	return &UnionType{Types: deduped, provenance: prov}
}

// IntersectionOf applies the dual normalization: flatten nested
// intersections, drop duplicates, collapse to `never` when two disjoint
// primitive types appear together (literal members are not checked for
// disjointness), and intersecting with `never` yields `never` (§3
// Invariants).
func (in *Interner) IntersectionOf(prov Provenance, members ...Type) Type {
	flat := make([]Type, 0, len(members))
	var flatten func(Type)
	flatten = func(t Type) {
		if x, ok := t.(*IntersectionType); ok {
			for _, m := range x.Types {
				flatten(m)
			}
			return
		}
		flat = append(flat, t)
	}
	for _, m := range members {
		flatten(m)
	}

	for _, t := range flat {
		if _, ok := t.(*NeverType); ok {
			return in.Resolve(IdentNever)
		}
	}

	deduped := make([]Type, 0, len(flat))
	seen := map[string]bool{}
	primKinds := map[string]bool{}
	for _, t := range flat {
		key := t.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		if p, ok := t.(*PrimType); ok {
			primKinds[string(p.Prim)] = true
		}
		deduped = append(deduped, t)
	}
	// Disjoint primitives, e.g. `string & number`, collapse to `never`.
	if len(primKinds) > 1 {
		return in.Resolve(IdentNever)
	}

	if len(deduped) == 0 {
		return in.Resolve(IdentNever)
	}
	sort.Slice(deduped, func(i, j int) bool { return deduped[i].String() < deduped[j].String() })
	if len(deduped) == 1 {
		return deduped[0]
	}
	return &IntersectionType{Types: deduped, provenance: prov}
}

// AtomPool is the Interner's parallel string-atom table (§3, §4.1). It is
// append-only and shared read (§5): once an atom is assigned an AtomID it
// keeps it for the process lifetime, so comparing two AtomIDs for equality
// is equivalent to comparing the underlying strings.
type AtomPool struct {
	byString *btree.Map[string, AtomID]
	byID     []string
}

type AtomID int32

func NewAtomPool() *AtomPool {
	return &AtomPool{byString: &btree.Map[string, AtomID]{}}
}

func (p *AtomPool) Intern(s string) AtomID {
	if id, ok := p.byString.Get(s); ok {
		return id
	}
	id := AtomID(len(p.byID))
	p.byID = append(p.byID, s)
	p.byString.Set(s, id)
	return id
}

func (p *AtomPool) String(id AtomID) string {
	if int(id) < 0 || int(id) >= len(p.byID) {
		panic("atom pool: id out of range")
	}
	return p.byID[id]
}

func (p *AtomPool) Len() int { return len(p.byID) }

// DebugIdentity renders an identity as `#<n>` for trace logging; never used
// in diagnostics shown to end users (those go through the printer package).
func DebugIdentity(id Identity) string {
	return "#" + strconv.Itoa(int(id))
}
