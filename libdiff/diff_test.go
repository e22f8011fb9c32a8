package libdiff

import (
	"testing"

	"github.com/treescope/treescope/ir"
)

func TestDiffReflexive(t *testing.T) {
	nodes := []*ir.Node{
		ir.FromInt(1),
		ir.FromDouble(1.5),
		ir.FromString("hi"),
		ir.Unit(),
		ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)}),
		ir.FromFieldVals([]ir.FieldVal{
			{Name: "x", Val: ir.FromInt(1)},
			{Name: "y", Val: ir.CtorOf("Some", ir.FromBool(true))},
		}),
		ir.FromEntries([]ir.KeyVal{{Key: ir.FromString("k"), Val: ir.FromInt(1)}}),
		ir.OpaqueChild("ref", ir.FromInt(3)),
	}
	for _, n := range nodes {
		d := Diff(n, n, nil)
		if !d.IsSame() {
			t.Errorf("Diff(x, x) did not collapse to Same for %s", n.Type)
		}
	}
}

func TestDiffLiteral(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *ir.Node
		opts     *Options
		expected Op
	}{
		{"equal ints", ir.FromInt(1), ir.FromInt(1), nil, Same},
		{"unequal ints", ir.FromInt(1), ir.FromInt(2), nil, Changed},
		{"kind mismatch", ir.FromInt(1), ir.FromString("1"), nil, Changed},
		{"double text differs value equal",
			ir.Literal(ir.DoubleKind, "1.0"), ir.Literal(ir.DoubleKind, "1.00"), nil, Same},
		{"double outside zero tolerance",
			ir.FromDouble(1.0), ir.FromDouble(1.0001), nil, Changed},
		{"double inside tolerance",
			ir.FromDouble(1.0), ir.FromDouble(1.0001),
			&Options{MaxRelativeError: 1e-3}, Same},
		{"tolerance scales by magnitude",
			ir.FromDouble(1000), ir.FromDouble(1000.5),
			&Options{MaxRelativeError: 1e-3}, Same},
		{"small values use scale floor 1",
			ir.FromDouble(0.0001), ir.FromDouble(0.0002),
			&Options{MaxRelativeError: 1e-3}, Same},
		{"nan never within tolerance of a number",
			ir.Literal(ir.DoubleKind, "NaN"), ir.FromDouble(0),
			&Options{MaxRelativeError: 100}, Changed},
		{"nan text-equal to nan",
			ir.Literal(ir.DoubleKind, "NaN"), ir.Literal(ir.DoubleKind, "NaN"), nil, Same},
		{"inf text-equal to inf",
			ir.Literal(ir.DoubleKind, "+Inf"), ir.Literal(ir.DoubleKind, "+Inf"), nil, Same},
		{"inf vs -inf",
			ir.Literal(ir.DoubleKind, "+Inf"), ir.Literal(ir.DoubleKind, "-Inf"),
			&Options{MaxRelativeError: 100}, Changed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Diff(tt.a, tt.b, tt.opts)
			if d.Op != tt.expected {
				t.Errorf("Diff() op = %s, want %s", d.Op, tt.expected)
			}
		})
	}
}

func TestToleranceMonotone(t *testing.T) {
	// growing the tolerance never turns Same into Changed
	a, b := ir.FromDouble(1.0), ir.FromDouble(1.01)
	tols := []float64{0, 1e-6, 1e-3, 1e-2, 1e-1, 1}
	prevSame := false
	for _, tol := range tols {
		same := Diff(a, b, &Options{MaxRelativeError: tol}).IsSame()
		if prevSame && !same {
			t.Fatalf("tolerance %g turned Same back into Changed", tol)
		}
		prevSame = same
	}
	if !prevSame {
		t.Fatal("expected the largest tolerance to yield Same")
	}
}

func TestDiffRecord(t *testing.T) {
	a := ir.FromFieldVals([]ir.FieldVal{{Name: "x", Val: ir.FromInt(1)}})
	b := ir.FromFieldVals([]ir.FieldVal{
		{Name: "x", Val: ir.FromInt(1)},
		{Name: "y", Val: ir.FromInt(2)},
	})
	d := Diff(a, b, nil)
	if d.Op != Recurse || d.Type != ir.RecordType {
		t.Fatalf("expected record Recurse delta, got %s", d.Op)
	}
	if len(d.Kids) != 2 {
		t.Fatalf("expected 2 field deltas, got %d", len(d.Kids))
	}
	if !d.Kids[0].IsSame() || d.Kids[0].Node.Name != "x" {
		t.Errorf("field x should be Same")
	}
	y := d.Kids[1]
	if y.Op != Changed || y.From != nil || y.To == nil || y.To.Name != "y" {
		t.Errorf("field y should be Changed absent -> present")
	}
}

func TestDiffRecordOrdering(t *testing.T) {
	a := ir.FromFieldVals([]ir.FieldVal{
		{Name: "a", Val: ir.FromInt(1)},
		{Name: "gone", Val: ir.FromInt(2)},
		{Name: "b", Val: ir.FromInt(3)},
	})
	b := ir.FromFieldVals([]ir.FieldVal{
		{Name: "b", Val: ir.FromInt(30)},
		{Name: "new", Val: ir.FromInt(4)},
		{Name: "a", Val: ir.FromInt(1)},
	})
	d := Diff(a, b, nil)
	if d.Op != Recurse {
		t.Fatalf("expected Recurse, got %s", d.Op)
	}
	// left ordering for shared/removed fields, then b-only appended
	names := make([]string, len(d.Kids))
	for i, k := range d.Kids {
		switch k.Op {
		case Same:
			names[i] = k.Node.Name
		case Changed:
			if k.From != nil {
				names[i] = k.From.Name
			} else {
				names[i] = k.To.Name
			}
		case Recurse:
			names[i] = k.Name
		}
	}
	want := []string{"a", "gone", "b", "new"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("field order = %v, want %v", names, want)
		}
	}
}

func TestDiffRecordReorderedCollapses(t *testing.T) {
	// matching is by field set; equal values in a different order
	// carry no differences
	a := ir.FromFieldVals([]ir.FieldVal{
		{Name: "x", Val: ir.FromInt(1)},
		{Name: "y", Val: ir.FromInt(2)},
	})
	b := ir.FromFieldVals([]ir.FieldVal{
		{Name: "y", Val: ir.FromInt(2)},
		{Name: "x", Val: ir.FromInt(1)},
	})
	if !Diff(a, b, nil).IsSame() {
		t.Error("reordered but equal records should collapse to Same")
	}
}

func TestDiffCtor(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *ir.Node
		expected Op
	}{
		{"arity mismatch is atomic",
			ir.CtorOf("A", ir.FromInt(1)),
			ir.CtorOf("A", ir.FromInt(1), ir.FromInt(2)),
			Changed},
		{"name mismatch is atomic",
			ir.CtorOf("A", ir.FromInt(1)),
			ir.CtorOf("B", ir.FromInt(1)),
			Changed},
		{"label mismatch is atomic",
			ir.Ctor("A", []*ir.Node{ir.Labeled("x", ir.FromInt(1))}),
			ir.Ctor("A", []*ir.Node{ir.Positional(ir.FromInt(1))}),
			Changed},
		{"same shape recurses",
			ir.CtorOf("A", ir.FromInt(1), ir.FromInt(2)),
			ir.CtorOf("A", ir.FromInt(1), ir.FromInt(3)),
			Recurse},
		{"equal collapses",
			ir.CtorOf("A", ir.FromInt(1)),
			ir.CtorOf("A", ir.FromInt(1)),
			Same},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := Diff(tt.a, tt.b, nil); d.Op != tt.expected {
				t.Errorf("Diff() op = %s, want %s", d.Op, tt.expected)
			}
		})
	}
}

func TestDiffArrayPositional(t *testing.T) {
	a := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2), ir.FromInt(3)})
	b := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(9)})
	d := Diff(a, b, nil)
	if d.Op != Recurse || len(d.Kids) != 3 {
		t.Fatalf("expected 3 positional deltas, got op=%s kids=%d", d.Op, len(d.Kids))
	}
	if !d.Kids[0].IsSame() {
		t.Error("index 0 should be Same")
	}
	if d.Kids[1].Op != Changed || d.Kids[1].From.Text != "2" || d.Kids[1].To.Text != "9" {
		t.Error("index 1 should be Changed(2, 9)")
	}
	if d.Kids[2].Op != Changed || d.Kids[2].To != nil {
		t.Error("trailing extra should be Changed against an absent counterpart")
	}
}

func TestDiffMapArity(t *testing.T) {
	a := ir.FromEntries([]ir.KeyVal{{Key: ir.FromString("k"), Val: ir.FromInt(1)}})
	b := ir.FromEntries([]ir.KeyVal{
		{Key: ir.FromString("k"), Val: ir.FromInt(1)},
		{Key: ir.FromString("j"), Val: ir.FromInt(2)},
	})
	if d := Diff(a, b, nil); d.Op != Changed {
		t.Errorf("map arity mismatch should be atomic Changed, got %s", d.Op)
	}
	c := ir.FromEntries([]ir.KeyVal{{Key: ir.FromString("k"), Val: ir.FromInt(2)}})
	if d := Diff(a, c, nil); d.Op != Recurse {
		t.Errorf("same-arity maps should recurse, got %s", d.Op)
	}
}

func TestDiffOpaque(t *testing.T) {
	if d := Diff(ir.Opaque("chan"), ir.Opaque("func"), nil); d.Op != Changed {
		t.Error("opaque tag mismatch should be Changed")
	}
	if d := Diff(ir.Opaque("chan"), ir.OpaqueText("chan", "x"), nil); d.Op != Changed {
		t.Error("opaque detail shape mismatch should be Changed")
	}
	d := Diff(
		ir.OpaqueChild("ref", ir.FromInt(1)),
		ir.OpaqueChild("ref", ir.FromInt(2)), nil)
	if d.Op != Recurse || d.Type != ir.OpaqueType {
		t.Error("opaque child detail should recurse")
	}
}

func TestDiffDeep(t *testing.T) {
	// deep chains exercise the recursion guard
	mk := func(n int, leaf *ir.Node) *ir.Node {
		res := leaf
		for range n {
			res = ir.FromSlice([]*ir.Node{res})
		}
		return res
	}
	const n = 3 * maxDiffDepth
	if !Diff(mk(n, ir.FromInt(0)), mk(n, ir.FromInt(0)), nil).IsSame() {
		t.Error("equal deep chains should collapse to Same")
	}
	if Diff(mk(n, ir.FromInt(0)), mk(n, ir.FromInt(1)), nil).IsSame() {
		t.Error("deep chains differing at the leaf should not be Same")
	}
}

func TestReverse(t *testing.T) {
	a := ir.FromFieldVals([]ir.FieldVal{
		{Name: "x", Val: ir.FromInt(1)},
		{Name: "y", Val: ir.FromInt(2)},
	})
	b := ir.FromFieldVals([]ir.FieldVal{
		{Name: "x", Val: ir.FromInt(1)},
		{Name: "y", Val: ir.FromInt(3)},
	})
	d := Diff(a, b, nil)
	r := Reverse(d)
	dr := Diff(b, a, nil)

	var collect func(d *Delta, out *[]*Delta)
	collect = func(d *Delta, out *[]*Delta) {
		if d.Op == Changed {
			*out = append(*out, d)
		}
		for _, k := range d.Kids {
			collect(k, out)
		}
	}
	var revChanged, baChanged []*Delta
	collect(r, &revChanged)
	collect(dr, &baChanged)
	if len(revChanged) != 1 || len(baChanged) != 1 {
		t.Fatalf("expected one Changed each, got %d and %d", len(revChanged), len(baChanged))
	}
	if !ir.Equal(revChanged[0].From, baChanged[0].From) ||
		!ir.Equal(revChanged[0].To, baChanged[0].To) {
		t.Error("Reverse(Diff(a,b)) does not match Diff(b,a)")
	}
}
