package spatialmath

import (
	"slices"
	"sort"

	"github.com/golang/geo/r3"
	"github.com/samber/lo"
)

// bvhMaxLeafSize is the largest number of boxes stored in a single leaf.
const bvhMaxLeafSize = 4

// BVHItem is a labeled box stored in a BVH.
type BVHItem struct {
	Label string
	Box   AABB
}

// bvhNode is a node of the hierarchy. Leaves hold indices into the BVH's items; internal nodes
// hold exactly two children.
type bvhNode struct {
	box   AABB
	left  *bvhNode
	right *bvhNode
	items []int
}

// BVH is a bounding volume hierarchy over a fixed set of boxes, used to find every box a ray passes
// through without testing each of them.
type BVH struct {
	items []BVHItem
	root  *bvhNode
}

// NewBVH builds a hierarchy over items. The items slice is copied.
func NewBVH(items []BVHItem) *BVH {
	owned := slices.Clone(items)
	indices := make([]int, len(owned))
	for i := range indices {
		indices[i] = i
	}
	return &BVH{items: owned, root: buildBVH(owned, indices)}
}

// NewBVHFromBoxes builds a hierarchy over unlabeled boxes.
func NewBVHFromBoxes(boxes []AABB) *BVH {
	return NewBVH(lo.Map(boxes, func(b AABB, _ int) BVHItem { return BVHItem{Box: b} }))
}

func buildBVH(items []BVHItem, indices []int) *bvhNode {
	if len(indices) == 0 {
		return nil
	}
	min, max := computeBoxesAABB(items, indices)
	node := &bvhNode{box: AABB{Min: min, Max: max}}
	if len(indices) <= bvhMaxLeafSize {
		node.items = indices
		return node
	}

	axis := splitAxis(items, indices, node.box)
	sort.SliceStable(indices, func(i, j int) bool {
		return items[indices[i]].Box.axisCenter(axis) < items[indices[j]].Box.axisCenter(axis)
	})
	mid := len(indices) / 2
	node.left = buildBVH(items, indices[:mid])
	node.right = buildBVH(items, indices[mid:])
	return node
}

// splitAxis picks the axis along which box centers are most spread out. If every center
// coincides it falls back to the longest extent of the enclosing box.
func splitAxis(items []BVHItem, indices []int, bounds AABB) int {
	var cmin, cmax [3]float64
	for i, idx := range indices {
		for axis := 0; axis < 3; axis++ {
			c := items[idx].Box.axisCenter(axis)
			if i == 0 || c < cmin[axis] {
				cmin[axis] = c
			}
			if i == 0 || c > cmax[axis] {
				cmax[axis] = c
			}
		}
	}
	spread := r3.Vector{X: cmax[0] - cmin[0], Y: cmax[1] - cmin[1], Z: cmax[2] - cmin[2]}
	if spread.X <= 0 && spread.Y <= 0 && spread.Z <= 0 {
		spread = bounds.Dims()
	}
	switch spread.LargestComponent() {
	case r3.XAxis:
		return 0
	case r3.YAxis:
		return 1
	default:
		return 2
	}
}

// computeBoxesAABB returns the corners of the smallest box enclosing the indexed boxes.
func computeBoxesAABB(items []BVHItem, indices []int) (r3.Vector, r3.Vector) {
	bounds := items[indices[0]].Box
	for _, idx := range indices[1:] {
		bounds = bounds.Union(items[idx].Box)
	}
	return bounds.Min, bounds.Max
}

// Len returns the number of boxes in the hierarchy.
func (bvh *BVH) Len() int {
	return len(bvh.items)
}

// Item returns the i-th box the hierarchy was built from.
func (bvh *BVH) Item(i int) BVHItem {
	return bvh.items[i]
}

// Labels returns the labels of the given item indices.
func (bvh *BVH) Labels(indices []int) []string {
	return lo.Map(indices, func(idx, _ int) string { return bvh.items[idx].Label })
}

// Bounds returns the box enclosing every item. The second value is false for an empty hierarchy.
func (bvh *BVH) Bounds() (AABB, bool) {
	if bvh.root == nil {
		return AABB{}, false
	}
	return bvh.root.box, true
}

// Depth returns the number of levels in the hierarchy, zero when empty.
func (bvh *BVH) Depth() int {
	return bvh.root.depth()
}

func (n *bvhNode) depth() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.depth(), n.right.depth())
}

// Raycast returns the indices, in ascending order, of every item whose box the ray meets.
func (bvh *BVH) Raycast(ray Ray) []int {
	var tester RayBoxTester
	tester.BindRay(ray)
	return bvh.RaycastTester(&tester, nil)
}

// RaycastTester appends to dst the indices of every item whose box the ray bound to tester meets
// and returns the extended slice, sorted ascending. The tester is only read, so callers may reuse
// one tester and one buffer across many hierarchies.
func (bvh *BVH) RaycastTester(tester *RayBoxTester, dst []int) []int {
	if bvh.root == nil {
		return dst
	}
	start := len(dst)
	stack := []*bvhNode{bvh.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !tester.TestAABB(n.box) {
			continue
		}
		if n.items != nil {
			for _, idx := range n.items {
				if tester.TestAABB(bvh.items[idx].Box) {
					dst = append(dst, idx)
				}
			}
			continue
		}
		stack = append(stack, n.right, n.left)
	}
	slices.Sort(dst[start:])
	return dst
}

// RaycastBoxes appends to dst the index of every box the ray bound to tester meets, testing each
// box in order.
func RaycastBoxes(tester *RayBoxTester, boxes []AABB, dst []int) []int {
	for i := range boxes {
		if tester.TestAABB(boxes[i]) {
			dst = append(dst, i)
		}
	}
	return dst
}
