package render

import (
	"github.com/fatih/color"

	"github.com/treescope/treescope/ir"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	ValueColor ColorAttr = iota
	FieldColor
	NameColor
	SepColor
	InsertColor
	DeleteColor
)

// Colors maps node positions to sprint functions.  The color functions are
// force-enabled so output does not depend on tty detection; callers decide
// whether to colorize (see Options.UseANSI and the cmd wiring).
type Colors struct {
	Default  func(string) string
	Map      map[Colorable]func(string) string
	Literals map[ir.Kind]func(string) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default:  colorDefault,
		Map:      map[Colorable]func(string) string{},
		Literals: map[ir.Kind]func(string) string{},
	}
	colors.Map[Colorable{Type: ir.RecordType, Attr: FieldColor}] = enabled(color.RGB(128, 168, 196))
	colors.Map[Colorable{Type: ir.CtorType, Attr: NameColor}] = enabled(color.RGB(196, 96, 16))
	colors.Map[Colorable{Type: ir.CtorType, Attr: FieldColor}] = enabled(color.RGB(128, 168, 196))
	colors.Map[Colorable{Type: ir.OpaqueType, Attr: NameColor}] = enabled(color.RGB(168, 0, 196))
	colors.Map[Colorable{Type: ir.LiteralType, Attr: InsertColor}] = enabled(color.New(color.FgGreen))
	colors.Map[Colorable{Type: ir.LiteralType, Attr: DeleteColor}] = enabled(color.New(color.FgRed))

	numeric := enabled(color.RGB(128, 216, 236))
	for _, k := range ir.Kinds() {
		colors.Literals[k] = numeric
	}
	colors.Literals[ir.BoolKind] = enabled(color.New(color.FgCyan))
	colors.Literals[ir.StringKind] = enabled(color.RGB(8, 196, 16))
	colors.Literals[ir.CharKind] = enabled(color.RGB(88, 158, 86))
	return colors
}

func enabled(c *color.Color) func(string) string {
	c.EnableColor()
	f := c.SprintFunc()
	return func(v string) string { return f(v) }
}

func colorDefault(v string) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

func (c *Colors) LiteralColor(k ir.Kind, s string) string {
	if f := c.Literals[k]; f != nil {
		return f(s)
	}
	return c.Default(s)
}

func (c *Colors) Insert(s string) string {
	return c.Get(ir.LiteralType, InsertColor)(s)
}

func (c *Colors) Delete(s string) string {
	return c.Get(ir.LiteralType, DeleteColor)(s)
}
