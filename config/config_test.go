package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"go.viam.com/rayslope/logging"
	"go.viam.com/rayslope/spatialmath"
)

func TestFromReaderValidate(t *testing.T) {
	logger := logging.NewTestLogger(t)
	ctx := context.Background()

	_, err := FromReader(ctx, "somepath", strings.NewReader(""), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "EOF")

	_, err = FromReader(ctx, "somepath", strings.NewReader(`{"boxes": 1}`), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "unmarshal")

	conf, err := FromReader(ctx, "somepath", strings.NewReader(`{}`), logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, conf, test.ShouldResemble, &Config{ConfigFilePath: "somepath"})

	_, err = FromReader(ctx, "somepath", strings.NewReader(`{"boxes": [{"label": "a"}]}`), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "boxes.0")
	test.That(t, err.Error(), test.ShouldContainSubstring, `"min" is required`)

	_, err = FromReader(ctx, "somepath", strings.NewReader(`{"rays": [{"origin": {"x": 1}}]}`), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "rays.0")
	test.That(t, err.Error(), test.ShouldContainSubstring, `"direction" is required`)

	conf, err = FromReader(ctx, "somepath", strings.NewReader(`{
		"boxes": [{"label": "a", "min": {"x": 0, "y": 0, "z": 0}, "max": {"x": 1, "y": 1, "z": 1}}],
		"rays": [{"label": "r", "origin": {"x": -1, "y": 0.5, "z": 0.5}, "direction": {"x": 1}}]
	}`), logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, conf, test.ShouldResemble, &Config{
		ConfigFilePath: "somepath",
		Boxes:          []BoxConfig{{Label: "a", Min: &r3.Vector{}, Max: &r3.Vector{X: 1, Y: 1, Z: 1}}},
		Rays:           []RayConfig{{Label: "r", Origin: r3.Vector{X: -1, Y: 0.5, Z: 0.5}, Direction: &r3.Vector{X: 1}}},
	})
}

func TestFromReaderCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := FromReader(ctx, "somepath", strings.NewReader(`{}`), logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeError, context.Canceled)
}

func TestConfigValidate(t *testing.T) {
	t.Run("all errors reported", func(t *testing.T) {
		conf := Config{
			Boxes: []BoxConfig{
				{Min: &r3.Vector{X: 2}, Max: &r3.Vector{X: 1}},
				{Center: &r3.Vector{}, Dims: &r3.Vector{X: -1}},
			},
			Rays: []RayConfig{{Direction: &r3.Vector{}}},
		}
		err := conf.Validate("scene")
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "scene.boxes.0")
		test.That(t, err.Error(), test.ShouldContainSubstring, "must not exceed max")
		test.That(t, err.Error(), test.ShouldContainSubstring, "scene.boxes.1")
		test.That(t, err.Error(), test.ShouldContainSubstring, "non-negative")
		test.That(t, err.Error(), test.ShouldContainSubstring, "scene.rays.0")
		test.That(t, err.Error(), test.ShouldContainSubstring, "must be finite and non-zero")
	})

	t.Run("mixed box forms", func(t *testing.T) {
		conf := BoxConfig{Min: &r3.Vector{}, Dims: &r3.Vector{X: 1, Y: 1, Z: 1}}
		err := conf.Validate("b")
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "not both")
	})

	t.Run("center form", func(t *testing.T) {
		conf := BoxConfig{Center: &r3.Vector{X: 1, Y: 1, Z: 1}}
		test.That(t, conf.Validate("b").Error(), test.ShouldContainSubstring, `"dims" is required`)

		conf.Dims = &r3.Vector{X: 2, Y: 2, Z: 2}
		box, err := conf.AABB("b")
		test.That(t, err, test.ShouldBeNil)
		test.That(t, box, test.ShouldResemble, spatialmath.AABB{Min: r3.Vector{}, Max: r3.Vector{X: 2, Y: 2, Z: 2}})
	})
}

func TestConfigBVH(t *testing.T) {
	logger, logs := logging.NewObservedTestLogger(t)
	conf := Config{
		Boxes: []BoxConfig{
			{Label: "near", Min: &r3.Vector{}, Max: &r3.Vector{X: 1, Y: 1, Z: 1}},
			{Min: &r3.Vector{X: 3}, Max: &r3.Vector{X: 4, Y: 1, Z: 1}},
			{Label: "off axis", Min: &r3.Vector{Y: 5}, Max: &r3.Vector{X: 1, Y: 6, Z: 1}},
		},
		Rays: []RayConfig{
			{Label: "along x", Origin: r3.Vector{X: -1, Y: 0.5, Z: 0.5}, Direction: &r3.Vector{X: 1}},
			{Origin: r3.Vector{X: 0.5, Y: -1, Z: 0.5}, Direction: &r3.Vector{Y: -1}},
		},
	}
	test.That(t, conf.Validate(""), test.ShouldBeNil)

	bvh, err := conf.BVH(logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, bvh.Len(), test.ShouldEqual, 3)
	test.That(t, logs.FilterMessage("built bounding volume hierarchy").Len(), test.ShouldEqual, 1)

	rays, err := conf.RayList()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rays, test.ShouldHaveLength, 2)

	test.That(t, bvh.Labels(bvh.Raycast(rays[0])), test.ShouldResemble, []string{"near", "boxes.1"})
	test.That(t, bvh.Raycast(rays[1]), test.ShouldBeEmpty)
	test.That(t, conf.RayLabel(0), test.ShouldEqual, "along x")
	test.That(t, conf.RayLabel(1), test.ShouldEqual, "rays.1")

	empty := Config{}
	bvh, err = empty.BVH(logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, bvh.Len(), test.ShouldEqual, 0)
	test.That(t, logs.FilterMessage("scene has no boxes").Len(), test.ShouldEqual, 1)
}

func TestRead(t *testing.T) {
	logger := logging.NewTestLogger(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")

	t.Setenv("RAYSLOPE_BOX_MAX", "2")
	data := `{
		"boxes": [{"label": "sub", "min": {"x": 0, "y": 0, "z": 0}, "max": {"x": ${RAYSLOPE_BOX_MAX}, "y": 1, "z": 1}}],
		"rays": [{"origin": {"x": -1, "y": 0.5, "z": 0.5}, "direction": {"x": 1, "y": 0, "z": 0}}]
	}`
	test.That(t, os.WriteFile(path, []byte(data), 0o600), test.ShouldBeNil)

	conf, err := Read(context.Background(), path, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, conf.ConfigFilePath, test.ShouldEqual, path)
	test.That(t, conf.Boxes, test.ShouldHaveLength, 1)
	test.That(t, *conf.Boxes[0].Max, test.ShouldResemble, r3.Vector{X: 2, Y: 1, Z: 1})

	_, err = Read(context.Background(), filepath.Join(dir, "missing.json"), logger)
	test.That(t, err, test.ShouldNotBeNil)
}
