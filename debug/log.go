package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/treescope/treescope/ir"
	"github.com/treescope/treescope/render"
)

// Tree wraps a node so it prints as its rendered form under %s.
type Tree struct{ *ir.Node }

func (t Tree) String() string {
	if t.Node == nil {
		return "<nil tree>"
	}
	return render.MustString(t.Node)
}

// Logf writes a formatted message to stderr.  Tree nodes among the args
// are rendered, maps and slices are marshaled as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = Tree{x}.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
