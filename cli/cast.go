package cli

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/rayslope/config"
	"go.viam.com/rayslope/spatialmath"
)

// CastAction is the corresponding Action for 'cast'.
func CastAction(c *cli.Context) error {
	logger, closeLogger := newLogger(c)
	defer closeLogger()
	scene, err := config.Read(c.Context, c.Path(sceneFlag), logger)
	if err != nil {
		return errors.Wrapf(err, "could not read scene %q", c.Path(sceneFlag))
	}
	bvh, err := scene.BVH(logger)
	if err != nil {
		return err
	}

	rays, labels, err := castRays(c, scene)
	if err != nil {
		return err
	}
	hits, err := spatialmath.RaycastAll(c.Context, bvh, rays)
	if err != nil {
		return errors.Wrap(err, "could not cast rays")
	}

	total := 0
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Ray", "Class", "Origin", "Direction", "Hits"})
	for i, ray := range rays {
		total += len(hits[i])
		t.AppendRow(table.Row{
			fmt.Sprintf("%d", i),
			labels[i],
			ray.Class().String(),
			formatVector(ray.Origin.X, ray.Origin.Y, ray.Origin.Z),
			formatVector(ray.Direction.X, ray.Direction.Y, ray.Direction.Z),
			strings.Join(bvh.Labels(hits[i]), ", "),
		})
	}
	printf(c.App.Writer, "%s", t.Render())
	logger.Infow("cast rays", "rays", len(rays), "boxes", bvh.Len(), "hits", total)
	return nil
}

// castRays returns the single ray given by flags if a direction was passed, otherwise every ray of
// the scene.
func castRays(c *cli.Context, scene *config.Config) ([]spatialmath.Ray, []string, error) {
	if !c.IsSet(directionFlag) {
		rays, err := scene.RayList()
		if err != nil {
			return nil, nil, err
		}
		labels := make([]string, len(rays))
		for i := range labels {
			labels[i] = scene.RayLabel(i)
		}
		return rays, labels, nil
	}

	origin, err := spatialmath.ParseVector(c.String(originFlag))
	if err != nil {
		return nil, nil, errors.Wrapf(err, "invalid --%s", originFlag)
	}
	direction, err := spatialmath.ParseVector(c.String(directionFlag))
	if err != nil {
		return nil, nil, errors.Wrapf(err, "invalid --%s", directionFlag)
	}
	ray, err := spatialmath.NewRay(origin, direction)
	if err != nil {
		return nil, nil, err
	}
	return []spatialmath.Ray{ray}, []string{"flags"}, nil
}

func formatVector(x, y, z float64) string {
	return fmt.Sprintf("X:%.2f, Y:%.2f, Z:%.2f", x, y, z)
}
