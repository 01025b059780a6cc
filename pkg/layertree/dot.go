package layertree

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT returns a Graphviz DOT digraph of the tree. Each node shows its
// layer key, point count and stored height; missing children are drawn as
// small points so left and right stay distinguishable.
func (t *Tree) ToDOT() string {
	var buf bytes.Buffer
	buf.WriteString("digraph LayerTree {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=12, shape=box, style=\"filled,rounded\", fillcolor=white];\n")
	buf.WriteString("  edge [arrowhead=none];\n\n")

	if t.root != nil {
		writeDOTNode(&buf, t.root, 0)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeDOTNode(buf *bytes.Buffer, n *node, id int) int {
	nodeID := fmt.Sprintf("n%d", id)
	fmt.Fprintf(buf, "  %s [label=\"maxY=%d\\npoints=%d  h=%d\"];\n", nodeID, n.layer.MaxY, len(n.layer.Points), n.height)
	next := id + 1

	if n.left == nil && n.right == nil {
		return next
	}
	for _, c := range []*node{n.left, n.right} {
		if c == nil {
			fmt.Fprintf(buf, "  n%d [label=\"\", shape=point, width=0.05];\n", next)
			fmt.Fprintf(buf, "  %s -> n%d [style=dotted];\n", nodeID, next)
			next++
			continue
		}
		fmt.Fprintf(buf, "  %s -> n%d;\n", nodeID, next)
		next = writeDOTNode(buf, c, next)
	}
	return next
}

// RenderSVG renders [Tree.ToDOT] to SVG with the embedded Graphviz library.
func (t *Tree) RenderSVG(ctx context.Context) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(t.ToDOT()))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
