// Package printer renders a parse tree for display. Both renderings are
// inspection forms that show the tree's node structure; neither produces
// JSON text again.
package printer

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/cthi/json-parse/internal/ast"
)

// spewConfig keeps the debug dump deterministic across runs.
var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Printer renders parse trees with a fixed indent width.
type Printer struct {
	indent int
}

// NewPrinter creates a printer with a two-space indent.
func NewPrinter() *Printer {
	return &Printer{indent: 2}
}

// NewPrinterWithIndent creates a printer with the given spaces per level.
func NewPrinterWithIndent(indent int) *Printer {
	return &Printer{indent: indent}
}

// Debug returns a verbose dump of the tree's concrete node values.
func (p *Printer) Debug(obj ast.Object) string {
	return spewConfig.Sdump(obj)
}

// Tree returns an indented outline of the tree, one node per line, with
// object pairs and array elements in source order.
func (p *Printer) Tree(obj ast.Object) string {
	var sb strings.Builder
	p.writeObject(&sb, obj, 0)
	return sb.String()
}

func (p *Printer) writeObject(sb *strings.Builder, obj ast.Object, depth int) {
	if obj.Empty() {
		p.writeLine(sb, depth, "object (empty)")
		return
	}
	pairs := obj.Pairs()
	p.writeLine(sb, depth, fmt.Sprintf("object (%d %s)", len(pairs), plural(len(pairs), "pair")))
	for _, pair := range pairs {
		p.writeLine(sb, depth+1, fmt.Sprintf("pair %q", pair.Key))
		p.writeValue(sb, pair.Value, depth+2)
	}
}

func (p *Printer) writeArray(sb *strings.Builder, arr ast.Array, depth int) {
	if arr.Empty() {
		p.writeLine(sb, depth, "array (empty)")
		return
	}
	values := arr.Values()
	p.writeLine(sb, depth, fmt.Sprintf("array (%d %s)", len(values), plural(len(values), "element")))
	for _, value := range values {
		p.writeValue(sb, value, depth+1)
	}
}

func (p *Printer) writeValue(sb *strings.Builder, value ast.Value, depth int) {
	switch v := value.(type) {
	case ast.String:
		p.writeLine(sb, depth, fmt.Sprintf("string %q", v.Text))
	case ast.Integer:
		p.writeLine(sb, depth, fmt.Sprintf("integer %d", v.Value))
	case ast.Float:
		p.writeLine(sb, depth, fmt.Sprintf("float %g", v.Value))
	case ast.True:
		p.writeLine(sb, depth, "true")
	case ast.False:
		p.writeLine(sb, depth, "false")
	case ast.Null:
		p.writeLine(sb, depth, "null")
	case ast.Object:
		p.writeObject(sb, v, depth)
	case ast.Array:
		p.writeArray(sb, v, depth)
	default:
		p.writeLine(sb, depth, fmt.Sprintf("unknown node %T", value))
	}
}

func (p *Printer) writeLine(sb *strings.Builder, depth int, text string) {
	sb.WriteString(strings.Repeat(" ", depth*p.indent))
	sb.WriteString(text)
	sb.WriteString("\n")
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
