package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/df07/go-weekend-pathtracer/pkg/log"
	"github.com/df07/go-weekend-pathtracer/pkg/output"
	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
	"github.com/df07/go-weekend-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := createScene(ctx)
	if err != nil {
		return err
	}

	rt, err := renderer.NewRaytracer(sc, renderConfig(ctx), log.New("renderer"))
	if err != nil {
		return err
	}

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	frame, stats, err := rt.Render(renderCtx)
	if err != nil {
		return err
	}

	out := ctx.String("out")
	if out == "-" {
		err = output.WriteP3(os.Stdout, frame)
	} else {
		err = output.WriteFile(out, frame)
	}
	if err != nil {
		return err
	}

	displayFrameStats(stats)
	if out != "-" {
		logger.Noticef("wrote frame to %s", out)
	}

	return nil
}

// createScene builds the selected scene and applies the size and quality
// flags that were explicitly set.
func createScene(ctx *cli.Context) (*scene.Scene, error) {
	sc, err := scene.NewScene(ctx.String("scene"))
	if err != nil {
		return nil, err
	}

	if ctx.IsSet("width") {
		sc.SetWidth(ctx.Int("width"))
	}
	if ctx.IsSet("spp") {
		sc.SamplingConfig.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("depth") {
		sc.SamplingConfig.MaxDepth = ctx.Int("depth")
	}

	return sc, nil
}

func renderConfig(ctx *cli.Context) renderer.Config {
	config := renderer.DefaultConfig()
	if ctx.IsSet("workers") {
		config.NumWorkers = ctx.Int("workers")
	}
	if ctx.IsSet("rows-per-tile") {
		config.RowsPerTile = ctx.Int("rows-per-tile")
	}
	if ctx.IsSet("seed") {
		config.Seed = ctx.Int64("seed")
	}
	return config
}

func displayFrameStats(stats renderer.RenderStats) {
	logger.Noticef("frame statistics\n%s", formatFrameStats(stats))
}

func formatFrameStats(stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Size", "Samples/pixel", "Max depth", "Tiles", "Workers", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.SamplesPerPixel),
		fmt.Sprintf("%d", stats.MaxDepth),
		fmt.Sprintf("%d", stats.Tiles),
		fmt.Sprintf("%d", stats.Workers),
		stats.Duration.String(),
	})
	table.SetFooter([]string{"", "", "", "", "SAMPLES/SEC", fmt.Sprintf("%.0f", stats.SamplesPerSecond())})

	table.Render()
	return buf.String()
}
