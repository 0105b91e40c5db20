package pulse

// NoNode is returned by HitTest when no node contains the point.
const NoNode = -1

// HitRect is an axis-aligned rectangular hit area.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// hitSquare returns the square around a node's current pose. The half-width
// is the animated radius, so the box breathes with the disk.
func hitSquare(n *Node) HitRect {
	return HitRect{X: n.X - n.R, Y: n.Y - n.R, Width: 2 * n.R, Height: 2 * n.R}
}

// HitTest returns the index of the first node, in slice order, whose square
// hit box contains (x, y), or NoNode. Overlapping nodes resolve to the lower
// index. The box is square rather than circular on purpose.
func HitTest(nodes []Node, x, y float64) int {
	for i := range nodes {
		if hitSquare(&nodes[i]).Contains(x, y) {
			return i
		}
	}
	return NoNode
}
