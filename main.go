package main

import (
	"os"

	"github.com/df07/go-weekend-pathtracer/cmd"
	"github.com/df07/go-weekend-pathtracer/pkg/log"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	// The default "version, v" flag would clash with the global -v
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-weekend-pathtracer"
	app.Usage = "render sphere scenes using monte carlo path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render one of the built-in scenes. Width, samples per pixel and depth default
to the values chosen by the scene; the image height always follows the scene
camera's aspect ratio.

Files ending in .png are written as PNG, anything else as plain-text PPM (P3).
Use "-" to write P3 to standard output.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "built-in scene to render (see the scenes command)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width; overrides the scene default",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel; overrides the scene default",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum ray bounce depth; overrides the scene default",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of parallel workers (0 = one per CPU)",
				},
				cli.IntFlag{
					Name:  "rows-per-tile",
					Value: 1,
					Usage: "image rows rendered per unit of work",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "base random seed",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.ppm",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.New("pathtracer").Error(err)
		os.Exit(1)
	}
}
