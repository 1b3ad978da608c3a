package main

import (
	"os"
	"strings"

	"github.com/urfave/cli"
	"github.com/ushitora-anqou/aqpix/pattern"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "aqpix"
	app.Usage = "draw into an RGBA pixel buffer bound to a window"
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
		cli.StringFlag{
			Name:  "log-level",
			Usage: "log level (debug, info, notice, warning, error)",
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "YAML configuration file",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "run",
			Usage: "open a window and animate a test pattern",
			Description: `
Open a window using one of the compiled-in back-ends and draw a test pattern
at the configured refresh rate until the window is closed. Frame statistics
are printed on exit.`,
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "backend, b",
					Usage: "window back-end (" + backendList() + ")",
				},
				cli.StringFlag{
					Name:  "pattern, p",
					Value: "bounce",
					Usage: "test pattern to draw (" + strings.Join(pattern.Names(), ", ") + ")",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frames",
					Usage: "output directory of the headless back-end",
				},
				cli.IntFlag{
					Name:  "frames, n",
					Usage: "stop after this many frames (0 runs until closed)",
				},
			}, configFlags...),
			Action: RunWindow,
		},
		{
			Name:      "render",
			Usage:     "render frames of a test pattern to PNG files",
			ArgsUsage: "[output directory]",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "pattern, p",
					Value: "bounce",
					Usage: "test pattern to draw (" + strings.Join(pattern.Names(), ", ") + ")",
				},
				cli.IntFlag{
					Name:  "frames, n",
					Value: 60,
					Usage: "number of frames to render",
				},
			}, configFlags...),
			Action: RenderFrames,
		},
		{
			Name:   "config",
			Usage:  "print the effective configuration as YAML",
			Flags:  configFlags,
			Action: PrintConfig,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
