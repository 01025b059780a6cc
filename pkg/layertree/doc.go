// Package layertree implements the layer index of the multilayer maxima
// sweep: a height-balanced (AVL) binary search tree whose nodes are layers
// keyed by each layer's running maximum y-coordinate.
//
// # Structure
//
// Every node owns exactly one [Layer] and its point buffer. A node's key is
// the layer's MaxY. Keys in the left subtree are ≤ the node key, keys in
// the right subtree are strictly greater. Inserting a key equal to an
// existing one therefore descends left; [Tree.Floor] relies on that when it
// walks right over keys ≤ the query.
//
// # Assignment
//
// [Tree.Assign] places one point, given that points arrive in decreasing x
// order:
//
//  1. No layer has MaxY ≤ p.Y: p starts a new layer ([Tree.Insert]).
//  2. The floor layer has MaxY < p.Y: p joins it and raises its key.
//  3. The floor layer has MaxY == p.Y: p joins it.
//
// # Key growth
//
// Raising a key in place ([Tree.Bump]) never restructures the tree. Under
// [Tree.Assign] this keeps the search-tree order intact: the floor layer is
// the in-order predecessor-or-equal of p.Y, so its in-order successor has a
// key strictly greater than p.Y, and the raised key still sorts between its
// neighbours. A new layer is only created for a y below every key, so keys
// stay pairwise distinct. [Tree.Check] verifies these invariants.
//
// # Cost accounting
//
// A tree built with [WithCounter] charges unit costs for comparisons,
// appends, height updates and rotations to a [complexity.Counter].
//
// # Debugging
//
// [Tree.ToDOT] and [Tree.RenderSVG] draw the tree with Graphviz.
package layertree
