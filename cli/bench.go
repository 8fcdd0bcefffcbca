package cli

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
	"go.uber.org/atomic"

	"go.viam.com/rayslope/logging"
	"go.viam.com/rayslope/spatialmath"
	"go.viam.com/rayslope/utils"
)

type benchConfig struct {
	boxes  int
	rays   int
	rounds int
	seed   int64
	extent float64
}

func (cfg benchConfig) validate() error {
	if cfg.boxes <= 0 || cfg.rays <= 0 || cfg.rounds <= 0 {
		return errors.Errorf("--%s, --%s and --%s must be positive", boxesFlag, raysFlag, roundsFlag)
	}
	if cfg.extent <= 0 {
		return errors.Errorf("--%s must be positive", extentFlag)
	}
	return nil
}

// benchResult holds the per round durations, in milliseconds, and hit count of one casting method.
type benchResult struct {
	name      string
	durations stats.Float64Data
	hits      int64
}

// BenchAction is the corresponding Action for 'bench'.
func BenchAction(c *cli.Context) error {
	logger, closeLogger := newLogger(c)
	defer closeLogger()

	cfg := benchConfig{
		boxes:  c.Int(boxesFlag),
		rays:   c.Int(raysFlag),
		rounds: c.Int(roundsFlag),
		seed:   c.Int64(seedFlag),
		extent: c.Float64(extentFlag),
	}
	results, err := runBench(c.Context, clock.New(), logger, cfg)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Method", "Mean (ms)", "Median (ms)", "P99 (ms)", "Hits"})
	for _, res := range results {
		row, err := res.row()
		if err != nil {
			return err
		}
		t.AppendRow(row)
	}
	printf(c.App.Writer, "%d boxes, %d rays, %d rounds", cfg.boxes, cfg.rays, cfg.rounds)
	printf(c.App.Writer, "%s", t.Render())
	return nil
}

// runBench casts a random scene both through a BVH and by testing every box, timing each round
// with clk. It fails if the two methods disagree on the number of hits.
func runBench(ctx context.Context, clk clock.Clock, logger logging.Logger, cfg benchConfig) ([]benchResult, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	//nolint:gosec
	rng := rand.New(rand.NewSource(cfg.seed))
	boxes := spatialmath.RandomAABBs(rng, cfg.boxes, cfg.extent, cfg.extent/20)
	rays := spatialmath.RandomRays(rng, cfg.rays, cfg.extent*1.2)

	start := clk.Now()
	bvh := spatialmath.NewBVHFromBoxes(boxes)
	logger.Debugw("built bounding volume hierarchy", "boxes", bvh.Len(), "depth", bvh.Depth(), "took", clk.Since(start))

	hierarchy := benchResult{name: "bvh"}
	brute := benchResult{name: "brute force"}
	for round := 0; round < cfg.rounds; round++ {
		start := clk.Now()
		hits, err := spatialmath.RaycastAll(ctx, bvh, rays)
		if err != nil {
			return nil, err
		}
		hierarchy.durations = append(hierarchy.durations, milliseconds(clk, start))
		hierarchy.hits = int64(lo.SumBy(hits, func(h []int) int { return len(h) }))

		start = clk.Now()
		bruteHits, err := castBruteForce(ctx, boxes, rays)
		if err != nil {
			return nil, err
		}
		brute.durations = append(brute.durations, milliseconds(clk, start))
		brute.hits = bruteHits
		logger.Debugw("finished round", "round", round, "bvh_ms", hierarchy.durations[round], "brute_force_ms", brute.durations[round])
	}
	if hierarchy.hits != brute.hits {
		return nil, errors.Errorf("hierarchy found %d hits but brute force found %d", hierarchy.hits, brute.hits)
	}
	return []benchResult{hierarchy, brute}, nil
}

// castBruteForce tests every ray against every box and returns the number of hits.
func castBruteForce(ctx context.Context, boxes []spatialmath.AABB, rays []spatialmath.Ray) (int64, error) {
	total := atomic.NewInt64(0)
	err := utils.GroupWorkParallel(ctx, len(rays), func(ctx context.Context, groupNum, from, to int) error {
		var tester spatialmath.RayBoxTester
		var buf []int
		for i := from; i < to; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			tester.BindRay(rays[i])
			buf = spatialmath.RaycastBoxes(&tester, boxes, buf[:0])
			total.Add(int64(len(buf)))
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total.Load(), nil
}

func (res benchResult) row() (table.Row, error) {
	mean, err := stats.Mean(res.durations)
	if err != nil {
		return nil, errors.Wrapf(err, "could not summarize %s timings", res.name)
	}
	median, err := stats.Median(res.durations)
	if err != nil {
		return nil, errors.Wrapf(err, "could not summarize %s timings", res.name)
	}
	p99, err := stats.Percentile(res.durations, 99)
	if err != nil {
		return nil, errors.Wrapf(err, "could not summarize %s timings", res.name)
	}
	return table.Row{
		res.name,
		fmt.Sprintf("%.3f", mean),
		fmt.Sprintf("%.3f", median),
		fmt.Sprintf("%.3f", p99),
		res.hits,
	}, nil
}

func milliseconds(clk clock.Clock, start time.Time) float64 {
	return float64(clk.Since(start)) / float64(time.Millisecond)
}
