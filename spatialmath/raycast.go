package spatialmath

import (
	"context"
	"math/rand"

	"github.com/golang/geo/r3"

	"go.viam.com/rayslope/utils"
)

// RaycastAll casts every ray against the hierarchy and returns, per ray, the ascending indices of
// the boxes it meets. Rays are split into groups processed in parallel; each group binds its own
// tester so no state is shared between workers.
func RaycastAll(ctx context.Context, bvh *BVH, rays []Ray) ([][]int, error) {
	hits := make([][]int, len(rays))
	err := utils.GroupWorkParallel(ctx, len(rays), func(ctx context.Context, groupNum, from, to int) error {
		var tester RayBoxTester
		for i := from; i < to; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			tester.BindRay(rays[i])
			hits[i] = bvh.RaycastTester(&tester, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return hits, nil
}

// RandomAABBs returns n boxes with centers uniformly distributed in the cube [-extent, extent]
// and dimensions uniformly distributed in [0, maxDim].
func RandomAABBs(rng *rand.Rand, n int, extent, maxDim float64) []AABB {
	boxes := make([]AABB, 0, n)
	for len(boxes) < n {
		center := randomVector(rng, extent)
		dims := r3.Vector{X: rng.Float64() * maxDim, Y: rng.Float64() * maxDim, Z: rng.Float64() * maxDim}
		half := dims.Mul(0.5)
		boxes = append(boxes, AABB{Min: center.Sub(half), Max: center.Add(half)})
	}
	return boxes
}

// RandomRays returns n rays with origins uniformly distributed in the cube [-extent, extent] and
// directions spread over every class. Roughly one direction component in five is exactly zero.
func RandomRays(rng *rand.Rand, n int, extent float64) []Ray {
	rays := make([]Ray, 0, n)
	for len(rays) < n {
		dir := r3.Vector{X: randomComponent(rng), Y: randomComponent(rng), Z: randomComponent(rng)}
		if dir.Norm2() == 0 {
			continue
		}
		rays = append(rays, Ray{Origin: randomVector(rng, extent), Direction: dir})
	}
	return rays
}

func randomVector(rng *rand.Rand, extent float64) r3.Vector {
	return r3.Vector{
		X: (2*rng.Float64() - 1) * extent,
		Y: (2*rng.Float64() - 1) * extent,
		Z: (2*rng.Float64() - 1) * extent,
	}
}

func randomComponent(rng *rand.Rand) float64 {
	if rng.Intn(5) == 0 {
		return 0
	}
	return 2*rng.Float64() - 1
}
