package totree

import (
	"reflect"
	"sort"
	"strconv"

	"github.com/treescope/treescope/debug"
	"github.com/treescope/treescope/ir"
	"github.com/treescope/treescope/render"
)

// ToTree is the conversion capability: any type may produce its own tree
// representation, whether hand-written or generated.  The core depends
// only on this interface, never on concrete producer types.
type ToTree interface {
	ToTree() *ir.Node
}

// From converts a Go value to a tree.  It uses a ToTree method when the
// value (or its addressable pointer) implements one, otherwise falls back
// to reflection.  From is total: values that fit no variant become Opaque
// nodes, and circular references become an OpaqueText("cycle", <type>)
// sentinel instead of recursing forever.
func From(v any) *ir.Node {
	if v == nil {
		return ir.Opaque("nil")
	}
	visited := map[uintptr]bool{}
	node := fromValue(reflect.ValueOf(v), visited)
	if debug.Convert() {
		debug.Logf("converted %T to %v\n", v, node)
	}
	return node
}

func fromValue(val reflect.Value, visited map[uintptr]bool) *ir.Node {
	if !val.IsValid() {
		return ir.Opaque("nil")
	}
	if val.CanInterface() {
		if tt, ok := val.Interface().(ToTree); ok {
			// a nil pointer still satisfies the interface; let the
			// nil branch below handle it
			if val.Kind() != reflect.Ptr || !val.IsNil() {
				return tt.ToTree()
			}
		}
	}
	if val.CanAddr() && val.Addr().CanInterface() {
		if tt, ok := val.Addr().Interface().(ToTree); ok {
			return tt.ToTree()
		}
	}

	switch val.Kind() {
	case reflect.Bool:
		return ir.FromBool(val.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ir.Literal(ir.IntKind, strconv.FormatUint(val.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		return ir.FromDouble(val.Float())
	case reflect.Complex64, reflect.Complex128:
		c := val.Complex()
		return ir.CtorOf("complex", ir.FromDouble(real(c)), ir.FromDouble(imag(c)))
	case reflect.String:
		return ir.FromString(val.String())
	case reflect.Slice, reflect.Array:
		return fromItems(val, visited)
	case reflect.Struct:
		return fromStruct(val, visited)
	case reflect.Map:
		return fromMap(val, visited)
	case reflect.Ptr:
		return fromPtr(val, visited)
	case reflect.Interface:
		if val.IsNil() {
			return ir.Opaque("nil")
		}
		return fromValue(val.Elem(), visited)
	default:
		// func, chan, unsafe pointer
		return ir.Opaque(val.Type().String())
	}
}

func fromItems(val reflect.Value, visited map[uintptr]bool) *ir.Node {
	n := val.Len()
	items := make([]*ir.Node, n)
	for i := range n {
		items[i] = fromValue(val.Index(i), visited)
	}
	return ir.FromSlice(items)
}

func fromStruct(val reflect.Value, visited map[uintptr]bool) *ir.Node {
	typ := val.Type()
	fvs := make([]ir.FieldVal, 0, typ.NumField())
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fvs = append(fvs, ir.FieldVal{
			Name: f.Name,
			Val:  fromValue(val.Field(i), visited),
		})
	}
	return ir.FromFieldVals(fvs)
}

// keyOpts renders map keys in full for ordering; pruning could collapse
// distinct deep keys to the same text.
var keyOpts = &render.Options{
	MaxDepth:         render.NoMaxDepth,
	CompactThreshold: 1 << 20,
}

// fromMap converts a Go map, ordering entries by their rendered key so the
// result is deterministic across runs.
func fromMap(val reflect.Value, visited map[uintptr]bool) *ir.Node {
	if val.IsNil() {
		return ir.FromEntries(nil)
	}
	kvs := make([]ir.KeyVal, 0, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		kvs = append(kvs, ir.KeyVal{
			Key: fromValue(iter.Key(), visited),
			Val: fromValue(iter.Value(), visited),
		})
	}
	sort.SliceStable(kvs, func(i, j int) bool {
		return render.String(kvs[i].Key, keyOpts) < render.String(kvs[j].Key, keyOpts)
	})
	return ir.FromEntries(kvs)
}

func fromPtr(val reflect.Value, visited map[uintptr]bool) *ir.Node {
	if val.IsNil() {
		return ir.Opaque("nil")
	}
	addr := val.Pointer()
	if visited[addr] {
		return ir.OpaqueText("cycle", val.Type().String())
	}
	visited[addr] = true
	// removed afterward so the same pointer may appear in sibling
	// branches without tripping the cycle check
	node := fromValue(val.Elem(), visited)
	delete(visited, addr)
	return node
}
