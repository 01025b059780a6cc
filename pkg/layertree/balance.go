package layertree

func height(n *node) int {
	if n == nil {
		return 0
	}
	return n.height
}

func balanceFactor(n *node) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

func (n *node) updateHeight() {
	n.height = 1 + max(height(n.left), height(n.right))
}

// rotateRight lifts y's left child into y's place and returns it.
func (t *Tree) rotateRight(y *node) *node {
	x := y.left
	y.left = x.right
	x.right = y

	y.updateHeight()
	x.updateHeight()
	t.ops.Add(4)
	return x
}

// rotateLeft lifts x's right child into x's place and returns it.
func (t *Tree) rotateLeft(x *node) *node {
	y := x.right
	x.right = y.left
	y.left = x

	x.updateHeight()
	y.updateHeight()
	t.ops.Add(4)
	return y
}

// rebalance restores the AVL condition at n after inserting key y below it.
// The case is picked by comparing y with the heavy child's key, using the
// same ≤/> split as insertion.
func (t *Tree) rebalance(n *node, y int) *node {
	balance := balanceFactor(n)

	switch {
	case balance > 1 && y <= n.left.layer.MaxY:
		return t.rotateRight(n)
	case balance < -1 && y > n.right.layer.MaxY:
		return t.rotateLeft(n)
	case balance > 1:
		n.left = t.rotateLeft(n.left)
		return t.rotateRight(n)
	case balance < -1:
		n.right = t.rotateRight(n.right)
		return t.rotateLeft(n)
	}
	return n
}
