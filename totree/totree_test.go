package totree

import (
	"strings"
	"testing"

	"github.com/treescope/treescope/ir"
	"github.com/treescope/treescope/render"
)

func TestFromBasic(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		expected *ir.Node
	}{
		{"bool", true, ir.FromBool(true)},
		{"int", 42, ir.FromInt(42)},
		{"uint", uint8(7), ir.FromInt(7)},
		{"float", 1.5, ir.FromDouble(1.5)},
		{"float keeps point", 2.0, ir.Literal(ir.DoubleKind, "2.0")},
		{"string", "hi", ir.FromString("hi")},
		{"slice", []int{1, 2}, ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})},
		{"nil", nil, ir.Opaque("nil")},
		{"complex", complex(1, 2), ir.CtorOf("complex", ir.FromDouble(1), ir.FromDouble(2))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := From(tt.in)
			if !ir.Equal(got, tt.expected) {
				t.Errorf("From(%v) = %s, want %s",
					tt.in, render.MustString(got), render.MustString(tt.expected))
			}
		})
	}
}

func TestFromStruct(t *testing.T) {
	type Address struct {
		Street string
		hidden int
	}
	type Person struct {
		Name string
		Addr Address
	}
	_ = Address{hidden: 1}.hidden
	got := From(Person{Name: "alice", Addr: Address{Street: "main"}})
	want := ir.FromFieldVals([]ir.FieldVal{
		{Name: "Name", Val: ir.FromString("alice")},
		{Name: "Addr", Val: ir.FromFieldVals([]ir.FieldVal{
			{Name: "Street", Val: ir.FromString("main")},
		})},
	})
	if !ir.Equal(got, want) {
		t.Errorf("From(struct) = %s, want %s",
			render.MustString(got), render.MustString(want))
	}
}

func TestFromMapSorted(t *testing.T) {
	got := From(map[string]int{"b": 2, "a": 1, "c": 3})
	want := ir.FromEntries([]ir.KeyVal{
		{Key: ir.FromString("a"), Val: ir.FromInt(1)},
		{Key: ir.FromString("b"), Val: ir.FromInt(2)},
		{Key: ir.FromString("c"), Val: ir.FromInt(3)},
	})
	if !ir.Equal(got, want) {
		t.Errorf("From(map) = %s, want %s",
			render.MustString(got), render.MustString(want))
	}
}

func TestFromPointer(t *testing.T) {
	x := 5
	if got := From(&x); !ir.Equal(got, ir.FromInt(5)) {
		t.Errorf("pointer should dereference, got %s", render.MustString(got))
	}
	var p *int
	if got := From(p); !ir.Equal(got, ir.Opaque("nil")) {
		t.Errorf("nil pointer = %s, want <nil>", render.MustString(got))
	}
}

func TestFromCycle(t *testing.T) {
	type Person struct {
		Name string
		Boss *Person
	}
	p := &Person{Name: "alice"}
	p.Boss = p
	got := From(p)
	s := render.String(got, &render.Options{MaxDepth: render.NoMaxDepth})
	if !strings.Contains(s, "<cycle: *totree.Person>") {
		t.Errorf("expected a cycle sentinel, got %s", s)
	}
}

func TestFromSharedPointerIsNotACycle(t *testing.T) {
	x := 1
	got := From([]*int{&x, &x})
	want := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(1)})
	if !ir.Equal(got, want) {
		t.Errorf("shared pointer in siblings = %s, want %s",
			render.MustString(got), render.MustString(want))
	}
}

type point struct{ X, Y int }

func (p point) ToTree() *ir.Node {
	return ir.CtorOf("Point", ir.FromInt(int64(p.X)), ir.FromInt(int64(p.Y)))
}

func TestToTreeOverride(t *testing.T) {
	got := From(point{X: 1, Y: 2})
	want := ir.CtorOf("Point", ir.FromInt(1), ir.FromInt(2))
	if !ir.Equal(got, want) {
		t.Errorf("ToTree override ignored, got %s", render.MustString(got))
	}
	// override applies inside containers too
	got = From([]point{{1, 2}})
	if !ir.Equal(got, ir.FromSlice([]*ir.Node{want})) {
		t.Errorf("ToTree override ignored in slice, got %s", render.MustString(got))
	}
}

func TestFromUnsupported(t *testing.T) {
	got := From(func() {})
	if got.Type != ir.OpaqueType {
		t.Errorf("func should convert to an opaque node, got %s", got.Type)
	}
}
