package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/GuruLabs/equinox"
	"github.com/jessevdk/go-flags"
	"github.com/mattn/go-isatty"
)

type cmdopts struct {
	KeepBlanks bool `long:"keepblanks" description:"keep whitespace-only text nodes"`
	Trace      bool `long:"trace" description:"log builder/serializer tracing to stderr"`
	Version    bool `long:"version" description:"display the version and exit"`
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("equinox-fmt: using equinox version %s\n", equinox.Version)
}

func showUsage() {
	fmt.Printf(`Usage : equinox-fmt [options] files ...
	Parse the documents and write them back out, normalized
	--version : display the version of the library used
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	ctx := context.Background()
	if opts.Trace {
		ctx = equinox.WithTraceLogger(ctx, slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var inputs []io.Reader
	switch {
	case len(args) > 0:
		for _, f := range args {
			fh, err := os.Open(f)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s\n", err)
				return 1
			}
			defer fh.Close()
			inputs = append(inputs, fh)
		}
	case !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()):
		inputs = append(inputs, os.Stdin)
	default:
		showUsage()
		return 1
	}

	for _, in := range inputs {
		root, err := equinox.ReadDocument(ctx, in, equinox.WithKeepBlanks(opts.KeepBlanks))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
		if err := equinox.WriteDocument(ctx, os.Stdout, root); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
	}

	return 0
}
