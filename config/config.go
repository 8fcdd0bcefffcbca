// Package config defines the scene file read by the rayslope tools: a set of labeled boxes and
// the rays to cast against them.
package config

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/a8m/envsubst"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/rayslope/logging"
	"go.viam.com/rayslope/spatialmath"
)

// A Config describes a scene: the boxes to index and the rays to cast.
type Config struct {
	ConfigFilePath string      `json:"-"`
	Boxes          []BoxConfig `json:"boxes"`
	Rays           []RayConfig `json:"rays"`
}

// BoxConfig describes one box, either by its corners or by its center and full dimensions.
type BoxConfig struct {
	Label  string     `json:"label"`
	Min    *r3.Vector `json:"min,omitempty"`
	Max    *r3.Vector `json:"max,omitempty"`
	Center *r3.Vector `json:"center,omitempty"`
	Dims   *r3.Vector `json:"dims,omitempty"`
}

// RayConfig describes one ray.
type RayConfig struct {
	Label     string     `json:"label"`
	Origin    r3.Vector  `json:"origin"`
	Direction *r3.Vector `json:"direction"`
}

// Validate ensures all parts of the config are valid. Every invalid box and ray is reported.
func (config *Config) Validate(path string) error {
	var errs error
	for idx, conf := range config.Boxes {
		errs = multierr.Append(errs, conf.Validate(fieldPath(path, "boxes", idx)))
	}
	for idx, conf := range config.Rays {
		errs = multierr.Append(errs, conf.Validate(fieldPath(path, "rays", idx)))
	}
	return errs
}

// Validate ensures the box is fully and consistently specified.
func (config *BoxConfig) Validate(path string) error {
	_, err := config.AABB(path)
	return err
}

// AABB converts the config into a box.
func (config *BoxConfig) AABB(path string) (spatialmath.AABB, error) {
	byCorners := config.Min != nil || config.Max != nil
	byCenter := config.Center != nil || config.Dims != nil
	switch {
	case byCorners && byCenter:
		return spatialmath.AABB{}, NewConfigValidationError(path, errors.New("use either min/max or center/dims, not both"))
	case byCenter:
		if config.Center == nil {
			return spatialmath.AABB{}, NewConfigValidationFieldRequiredError(path, "center")
		}
		if config.Dims == nil {
			return spatialmath.AABB{}, NewConfigValidationFieldRequiredError(path, "dims")
		}
		box, err := spatialmath.NewAABBFromCenter(*config.Center, *config.Dims)
		if err != nil {
			return spatialmath.AABB{}, NewConfigValidationError(path, err)
		}
		return box, nil
	default:
		if config.Min == nil {
			return spatialmath.AABB{}, NewConfigValidationFieldRequiredError(path, "min")
		}
		if config.Max == nil {
			return spatialmath.AABB{}, NewConfigValidationFieldRequiredError(path, "max")
		}
		box, err := spatialmath.NewAABB(*config.Min, *config.Max)
		if err != nil {
			return spatialmath.AABB{}, NewConfigValidationError(path, err)
		}
		return box, nil
	}
}

// Validate ensures the ray has a usable direction.
func (config *RayConfig) Validate(path string) error {
	_, err := config.Ray(path)
	return err
}

// Ray converts the config into a ray.
func (config *RayConfig) Ray(path string) (spatialmath.Ray, error) {
	if config.Direction == nil {
		return spatialmath.Ray{}, NewConfigValidationFieldRequiredError(path, "direction")
	}
	ray, err := spatialmath.NewRay(config.Origin, *config.Direction)
	if err != nil {
		return spatialmath.Ray{}, NewConfigValidationError(path, err)
	}
	return ray, nil
}

// BVH indexes the config's boxes. Boxes are labeled with their config label, or their index when
// unlabeled. The config must have been validated.
func (config *Config) BVH(logger logging.Logger) (*spatialmath.BVH, error) {
	items := make([]spatialmath.BVHItem, 0, len(config.Boxes))
	for idx, conf := range config.Boxes {
		box, err := conf.AABB(fieldPath("", "boxes", idx))
		if err != nil {
			return nil, err
		}
		label := conf.Label
		if label == "" {
			label = fieldPath("", "boxes", idx)
		}
		items = append(items, spatialmath.BVHItem{Label: label, Box: box})
	}
	bvh := spatialmath.NewBVH(items)
	if bounds, ok := bvh.Bounds(); ok {
		logger.Debugw("built bounding volume hierarchy", "boxes", bvh.Len(), "depth", bvh.Depth(), "bounds", bounds.String())
	} else {
		logger.Debug("scene has no boxes")
	}
	return bvh, nil
}

// RayList returns the config's rays in order. The config must have been validated.
func (config *Config) RayList() ([]spatialmath.Ray, error) {
	rays := make([]spatialmath.Ray, 0, len(config.Rays))
	for idx, conf := range config.Rays {
		ray, err := conf.Ray(fieldPath("", "rays", idx))
		if err != nil {
			return nil, err
		}
		rays = append(rays, ray)
	}
	return rays, nil
}

// RayLabel returns the label of the idx-th ray, or its path when unlabeled.
func (config *Config) RayLabel(idx int) string {
	if label := config.Rays[idx].Label; label != "" {
		return label
	}
	return fieldPath("", "rays", idx)
}

// Read reads a config from the given file. Environment variables referenced as $VAR or ${VAR}
// are substituted before parsing.
func Read(ctx context.Context, filePath string, logger logging.Logger) (*Config, error) {
	buf, err := envsubst.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	return FromReader(ctx, filePath, bytes.NewReader(buf), logger)
}

// FromReader reads a config from the given reader and specifies
// where, if applicable, the file the reader originated from.
func FromReader(ctx context.Context, originalPath string, r io.Reader, logger logging.Logger) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := Config{ConfigFilePath: originalPath}
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to decode Config from json")
	}
	if err := cfg.Validate(""); err != nil {
		return nil, errors.Wrapf(err, "failed to validate Config")
	}
	logger.Debugw("read scene", "path", originalPath, "boxes", len(cfg.Boxes), "rays", len(cfg.Rays))
	return &cfg, nil
}
