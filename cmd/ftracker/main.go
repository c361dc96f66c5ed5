package main

//go:generate go build -o=../../bin/ftracker

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Yandex-Practicum/go-ftracker/internal/config"
	"github.com/Yandex-Practicum/go-ftracker/internal/ftracker"
	"github.com/Yandex-Practicum/go-ftracker/internal/server"
)

// errFailedPackages is returned when at least one package could not be reported
var errFailedPackages = errors.New("some packages failed")

// demoPackages are printed when no packages are given on the command line
var demoPackages = []sensorPackage{
	{code: "SWM", data: []float64{720, 1, 80, 25, 40}},
	{code: "RUN", data: []float64{15000, 1, 75}},
	{code: "WLK", data: []float64{9000, 1, 75, 180}},
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("ftracker: ")

	cfg, args, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("cannot load config: %s", err)
	}

	if cfg.Serve {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := server.New(cfg).Run(ctx); err != nil {
			log.Fatalf("server stopped: %s", err)
		}
		return
	}

	pkgs := demoPackages
	var failed bool
	if len(args) > 0 {
		pkgs = nil
		for _, arg := range args {
			pkg, err := parsePackage(arg)
			if err != nil {
				log.Printf("skipping %q: %s", arg, err)
				failed = true
				continue
			}
			pkgs = append(pkgs, pkg)
		}
	}

	if err := run(os.Stdout, pkgs, cfg.Precision); err != nil || failed {
		os.Exit(1)
	}
}

// run prints a report per package, failures are logged and do not stop the loop.
func run(w io.Writer, pkgs []sensorPackage, precision int) error {
	var failed bool
	printed := 0
	for _, pkg := range pkgs {
		msg, err := report(pkg, precision)
		if err != nil {
			log.Printf("package %s %v: %s", pkg.code, pkg.data, err)
			failed = true
			continue
		}

		if printed > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, msg)
		printed++
	}

	if failed {
		return errFailedPackages
	}
	return nil
}

func report(pkg sensorPackage, precision int) (string, error) {
	training, err := ftracker.ReadPackage(pkg.code, pkg.data)
	if err != nil {
		return "", err
	}

	info, err := ftracker.ShowTrainingInfo(training)
	if err != nil {
		return "", err
	}
	return info.Format(precision), nil
}
