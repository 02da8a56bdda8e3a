package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bvisness/joypad/app"
	"github.com/bvisness/joypad/joystick/layout"
	"github.com/spf13/pflag"
)

type CLIOpts struct {
	doLog  bool
	config string
}

func parseCLIOpts(args []string) (CLIOpts, []string) {
	var opt CLIOpts
	flags := pflag.NewFlagSet("joypad", pflag.ExitOnError)
	flags.BoolVar(&opt.doLog, "log", false, "Print debugging output to stderr")
	flags.StringVarP(&opt.config, "config", "c", "joypad.toml", "Settings and joystick layout file")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  joypad [flags]                     run the demo\n")
		fmt.Fprintf(os.Stderr, "  joypad [flags] replay <trace.json> replay a pointer trace headless\n")
		fmt.Fprintf(os.Stderr, "  joypad [flags] init                write a default config file\n\n")
		flags.PrintDefaults()
	}
	flags.Parse(args)
	return opt, flags.Args()
}

func main() {
	opt, args := parseCLIOpts(os.Args[1:])

	if !opt.doLog {
		log.SetOutput(io.Discard)
	}

	if len(args) > 0 {
		switch args[0] {
		case "replay":
			if len(args) < 2 {
				fmt.Println("Usage: joypad replay <trace.json>")
				os.Exit(2)
			}
			app.HeadlessRun(args[1], opt.config)
			return
		case "init":
			if err := app.WriteConfig(opt.config, app.DefaultSettings(), layout.Default()); err != nil {
				fmt.Fprintf(os.Stderr, "Couldn't write config: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Wrote %s\n", opt.config)
			return
		default:
			fmt.Fprintf(os.Stderr, "Unknown command %q\n", args[0])
			os.Exit(2)
		}
	}

	if err := app.Main(opt.config); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
