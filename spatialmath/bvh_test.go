package spatialmath

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func unitCubeAt(x, y, z float64) AABB {
	return AABB{Min: r3.Vector{X: x, Y: y, Z: z}, Max: r3.Vector{X: x + 1, Y: y + 1, Z: z + 1}}
}

func TestBuildBVH(t *testing.T) {
	t.Run("empty boxes returns nil", func(t *testing.T) {
		bvh := NewBVH(nil)
		test.That(t, bvh.root, test.ShouldBeNil)
		test.That(t, bvh.Len(), test.ShouldEqual, 0)
		test.That(t, bvh.Depth(), test.ShouldEqual, 0)
		_, ok := bvh.Bounds()
		test.That(t, ok, test.ShouldBeFalse)
		test.That(t, bvh.Raycast(Ray{Direction: r3.Vector{X: 1}}), test.ShouldBeEmpty)
	})

	t.Run("single box creates leaf node", func(t *testing.T) {
		bvh := NewBVHFromBoxes([]AABB{unitCubeAt(0, 0, 0)})

		test.That(t, bvh.root, test.ShouldNotBeNil)
		test.That(t, len(bvh.root.items), test.ShouldEqual, 1)
		test.That(t, bvh.root.left, test.ShouldBeNil)
		test.That(t, bvh.root.right, test.ShouldBeNil)
		test.That(t, bvh.Depth(), test.ShouldEqual, 1)
	})

	t.Run("few boxes creates leaf node", func(t *testing.T) {
		bvh := NewBVHFromBoxes([]AABB{unitCubeAt(0, 0, 0), unitCubeAt(1, 0, 0), unitCubeAt(2, 0, 0)})

		test.That(t, bvh.root, test.ShouldNotBeNil)
		test.That(t, len(bvh.root.items), test.ShouldEqual, 3)
		test.That(t, bvh.root.left, test.ShouldBeNil)
		test.That(t, bvh.root.right, test.ShouldBeNil)
	})

	t.Run("many boxes creates internal nodes", func(t *testing.T) {
		boxes := make([]AABB, 10)
		for i := range boxes {
			boxes[i] = unitCubeAt(float64(i), 0, 0)
		}
		bvh := NewBVHFromBoxes(boxes)

		test.That(t, bvh.root, test.ShouldNotBeNil)
		test.That(t, bvh.root.items, test.ShouldBeNil)
		test.That(t, bvh.root.left, test.ShouldNotBeNil)
		test.That(t, bvh.root.right, test.ShouldNotBeNil)
		test.That(t, bvh.Depth(), test.ShouldEqual, 3)

		// splits along x, the only axis with spread
		test.That(t, bvh.root.left.box.Max.X, test.ShouldEqual, 5)
		test.That(t, bvh.root.right.box.Min.X, test.ShouldEqual, 5)

		bounds, ok := bvh.Bounds()
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, bounds, test.ShouldResemble, AABB{Min: r3.Vector{}, Max: r3.Vector{X: 10, Y: 1, Z: 1}})
	})

	t.Run("coincident boxes still split", func(t *testing.T) {
		boxes := make([]AABB, 9)
		for i := range boxes {
			boxes[i] = unitCubeAt(0, 0, 0)
		}
		bvh := NewBVHFromBoxes(boxes)
		test.That(t, bvh.root.items, test.ShouldBeNil)
		test.That(t, bvh.Raycast(Ray{Origin: r3.Vector{X: -1, Y: 0.5, Z: 0.5}, Direction: r3.Vector{X: 1}}),
			test.ShouldResemble, []int{0, 1, 2, 3, 4, 5, 6, 7, 8})
	})

	t.Run("input is copied", func(t *testing.T) {
		items := []BVHItem{{Label: "a", Box: unitCubeAt(0, 0, 0)}}
		bvh := NewBVH(items)
		items[0].Label = "b"
		test.That(t, bvh.Item(0).Label, test.ShouldEqual, "a")
	})
}

func TestComputeBoxesAABB(t *testing.T) {
	items := []BVHItem{
		{Box: unitCubeAt(0, 0, 0)},
		{Box: unitCubeAt(5, 5, 5)},
		{Box: unitCubeAt(-2, -3, -1)},
	}
	min, max := computeBoxesAABB(items, []int{0, 1, 2})
	test.That(t, min, test.ShouldResemble, r3.Vector{X: -2, Y: -3, Z: -1})
	test.That(t, max, test.ShouldResemble, r3.Vector{X: 6, Y: 6, Z: 6})

	min, max = computeBoxesAABB(items, []int{1})
	test.That(t, min, test.ShouldResemble, r3.Vector{X: 5, Y: 5, Z: 5})
	test.That(t, max, test.ShouldResemble, r3.Vector{X: 6, Y: 6, Z: 6})
}

func TestBVHRaycast(t *testing.T) {
	items := []BVHItem{
		{Label: "origin", Box: unitCubeAt(-0.5, -0.5, -0.5)},
		{Label: "ahead", Box: unitCubeAt(4, -0.5, -0.5)},
		{Label: "behind", Box: unitCubeAt(-6, -0.5, -0.5)},
		{Label: "above", Box: unitCubeAt(4, 2, -0.5)},
		{Label: "far ahead", Box: unitCubeAt(40, -0.5, -0.5)},
		{Label: "diagonal", Box: unitCubeAt(9.5, 9.5, -0.5)},
	}
	bvh := NewBVH(items)

	hits := bvh.Raycast(Ray{Direction: r3.Vector{X: 1}})
	test.That(t, bvh.Labels(hits), test.ShouldResemble, []string{"origin", "ahead", "far ahead"})

	hits = bvh.Raycast(Ray{Direction: r3.Vector{X: -1}})
	test.That(t, bvh.Labels(hits), test.ShouldResemble, []string{"origin", "behind"})

	hits = bvh.Raycast(Ray{Direction: r3.Vector{X: 1, Y: 1}})
	test.That(t, bvh.Labels(hits), test.ShouldResemble, []string{"origin", "diagonal"})

	test.That(t, bvh.Raycast(Ray{Direction: r3.Vector{}}), test.ShouldBeEmpty)
}

func TestBVHMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	boxes := RandomAABBs(rng, 1000, 50, 6)
	bvh := NewBVHFromBoxes(boxes)
	rays := RandomRays(rng, 300, 60)

	var tester RayBoxTester
	buf := []int{}
	for _, ray := range rays {
		tester.BindRay(ray)
		expected := RaycastBoxes(&tester, boxes, nil)
		buf = bvh.RaycastTester(&tester, buf[:0])
		if len(expected) == 0 {
			test.That(t, buf, test.ShouldBeEmpty)
			continue
		}
		test.That(t, buf, test.ShouldResemble, expected)
	}

	all, err := RaycastAll(context.Background(), bvh, rays)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(all), test.ShouldEqual, len(rays))
	for i, ray := range rays {
		test.That(t, all[i], test.ShouldResemble, bvh.Raycast(ray))
	}
}

func TestRaycastAllCanceled(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	bvh := NewBVHFromBoxes(RandomAABBs(rng, 10, 5, 1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RaycastAll(ctx, bvh, RandomRays(rng, 10, 5))
	test.That(t, errors.Is(err, context.Canceled), test.ShouldBeTrue)
}
