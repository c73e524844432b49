package printer

import (
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"

	"github.com/tscore-lang/tscore/internal/type_system"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m) // remove unused snapshots
	os.Exit(v)
}

// TestSprintObjectShapeSnapshot pins the full rendering of a multi-element
// object type against a committed snapshot, the way the teacher's parser
// tests pin lexer/AST output (go-snaps) rather than asserting each field
// by hand.
func TestSprintObjectShapeSnapshot(t *testing.T) {
	alias := &type_system.TypeAlias{}
	self := type_system.NewTypeRefType(nil, "Account", alias)
	alias.Type = type_system.NewObjectType(nil, []type_system.ObjTypeElem{
		type_system.NewPropertyElem(type_system.NewStrKey("id"), type_system.NewNumPrimType(nil)),
		type_system.NewPropertyElem(type_system.NewStrKey("owner"), type_system.NewStrPrimType(nil)),
		type_system.NewPropertyElem(type_system.NewStrKey("parent"), self),
	})

	got := Sprint(self, DefaultOptions())

	snaps.MatchSnapshot(t, got)
}

func TestSprintPlainType(t *testing.T) {
	got := Sprint(type_system.NewStrPrimType(nil), DefaultOptions())
	assert.Equal(t, "string", got)
}

func TestSprintExpandsAlias(t *testing.T) {
	alias := &type_system.TypeAlias{Type: type_system.NewNumPrimType(nil)}
	ref := type_system.NewTypeRefType(nil, "Score", alias)

	got := Sprint(ref, DefaultOptions())

	assert.Equal(t, "Score /* = number */", got)
}

func TestSprintBreaksRecursiveAlias(t *testing.T) {
	alias := &type_system.TypeAlias{}
	self := type_system.NewTypeRefType(nil, "List", alias)
	alias.Type = type_system.NewObjectType(nil, []type_system.ObjTypeElem{
		type_system.NewPropertyElem(type_system.NewStrKey("tail"), self),
	})

	got := Sprint(self, DefaultOptions())

	assert.Contains(t, got, "List /* = ")
	assert.Contains(t, got, "tail: List")
	assert.NotContains(t, got, "List /* = List /* = List")
}

func TestSprintRespectsMaxDepth(t *testing.T) {
	inner := &type_system.TypeAlias{Type: type_system.NewBoolPrimType(nil)}
	ref := type_system.NewTypeRefType(nil, "Flag", inner)

	got := Sprint(ref, Options{MaxDepth: 0})

	assert.Equal(t, "Flag", got)
}
