package cli

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/rayslope/spatialmath"
)

// ClassifyAction is the corresponding Action for 'classify'.
func ClassifyAction(c *cli.Context) error {
	direction, err := spatialmath.ParseVector(c.String(directionFlag))
	if err != nil {
		return errors.Wrapf(err, "invalid --%s", directionFlag)
	}
	class := spatialmath.NewRayBoxTester(r3.Vector{}, direction).Class()
	if class.Degenerate() {
		printf(c.App.Writer, "%s (class %d): degenerate, never hits", class, uint8(class))
		return nil
	}
	printf(c.App.Writer, "%s (class %d)", class, uint8(class))
	return nil
}
