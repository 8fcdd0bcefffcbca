// Package cli contains all business logic needed by the rayslope CLI.
package cli

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"go.viam.com/rayslope/logging"
)

const (
	// Flags.
	debugFlag     = "debug"
	logFileFlag   = "log-file"
	directionFlag = "direction"
	originFlag    = "origin"
	sceneFlag     = "scene"
	boxesFlag     = "boxes"
	raysFlag      = "rays"
	roundsFlag    = "rounds"
	seedFlag      = "seed"
	extentFlag    = "extent"
)

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:            "rayslope",
		Usage:           "classify rays and cast them against axis aligned boxes",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    debugFlag,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
			&cli.PathFlag{
				Name:  logFileFlag,
				Usage: "also write logs to `FILE`, rotated by size",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "classify",
				Usage:     "print the direction class of a ray",
				UsageText: "rayslope classify --direction \"x y z\"",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     directionFlag,
						Aliases:  []string{"d"},
						Usage:    "ray direction as three space delimited numbers",
						Required: true,
					},
				},
				Action: ClassifyAction,
			},
			{
				Name:      "cast",
				Usage:     "cast rays against the boxes of a scene file",
				UsageText: "rayslope cast --scene FILE [--origin \"x y z\" --direction \"x y z\"]",
				Flags: []cli.Flag{
					&cli.PathFlag{
						Name:     sceneFlag,
						Aliases:  []string{"s"},
						Usage:    "load the scene from `FILE`",
						Required: true,
					},
					&cli.StringFlag{
						Name:  originFlag,
						Usage: "origin of a single ray to cast instead of the scene's rays",
						Value: "0 0 0",
					},
					&cli.StringFlag{
						Name:  directionFlag,
						Usage: "direction of a single ray to cast instead of the scene's rays",
					},
				},
				Action: CastAction,
			},
			{
				Name:      "bench",
				Usage:     "time raycasting against a random scene",
				UsageText: "rayslope bench [--boxes N] [--rays M] [--seed S]",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  boxesFlag,
						Usage: "number of random boxes",
						Value: 10000,
					},
					&cli.IntFlag{
						Name:  raysFlag,
						Usage: "number of random rays",
						Value: 1000,
					},
					&cli.IntFlag{
						Name:  roundsFlag,
						Usage: "number of timed rounds",
						Value: 10,
					},
					&cli.Int64Flag{
						Name:  seedFlag,
						Usage: "random seed",
						Value: 1,
					},
					&cli.Float64Flag{
						Name:  extentFlag,
						Usage: "half width of the cube boxes and ray origins are placed in",
						Value: 100,
					},
				},
				Action: BenchAction,
			},
		},
	}
}

// newLogger returns a logger writing to the app's error output, at debug level when requested, and
// to the --log-file if one was given. The returned func closes the log file.
func newLogger(c *cli.Context) (logging.Logger, func()) {
	logger := logging.NewBlankLogger("rayslope")
	logger.AddAppender(logging.NewWriterAppender(c.App.ErrWriter))
	if c.Bool(debugFlag) {
		logger.SetLevel(logging.DEBUG)
	} else {
		logger.SetLevel(logging.INFO)
	}
	if c.Path(logFileFlag) == "" {
		return logger, func() {}
	}
	file := logging.NewFileAppender(c.Path(logFileFlag))
	logger.AddAppender(file)
	return logger, func() {
		if err := file.Close(); err != nil {
			printf(c.App.ErrWriter, "failed to close log file: %v", err)
		}
	}
}

// printf prints a message with no prefix.
func printf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, format+"\n", a...)
}
