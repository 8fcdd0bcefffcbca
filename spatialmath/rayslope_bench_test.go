package spatialmath

import (
	"math/rand"
	"testing"
)

func BenchmarkRayBoxTester(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	boxes := RandomAABBs(rng, 4096, 50, 5)
	rays := RandomRays(rng, 64, 60)

	b.Run("bind", func(b *testing.B) {
		var tester RayBoxTester
		for i := 0; i < b.N; i++ {
			tester.BindRay(rays[i%len(rays)])
		}
	})

	b.Run("test", func(b *testing.B) {
		var tester RayBoxTester
		tester.BindRay(rays[0])
		hits := 0
		for i := 0; i < b.N; i++ {
			if tester.TestAABB(boxes[i%len(boxes)]) {
				hits++
			}
		}
		_ = hits
	})

	b.Run("slab_reference", func(b *testing.B) {
		hits := 0
		for i := 0; i < b.N; i++ {
			if slabTest(rays[0].Origin, rays[0].Direction, boxes[i%len(boxes)]) {
				hits++
			}
		}
		_ = hits
	})
}

func BenchmarkBVHRaycast(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	boxes := RandomAABBs(rng, 10000, 100, 4)
	bvh := NewBVHFromBoxes(boxes)
	rays := RandomRays(rng, 256, 110)

	b.Run("bvh", func(b *testing.B) {
		var tester RayBoxTester
		buf := make([]int, 0, 64)
		for i := 0; i < b.N; i++ {
			tester.BindRay(rays[i%len(rays)])
			buf = bvh.RaycastTester(&tester, buf[:0])
		}
	})

	b.Run("brute_force", func(b *testing.B) {
		var tester RayBoxTester
		buf := make([]int, 0, 64)
		for i := 0; i < b.N; i++ {
			tester.BindRay(rays[i%len(rays)])
			buf = RaycastBoxes(&tester, boxes, buf[:0])
		}
	})
}
