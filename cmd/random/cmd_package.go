package main

import (
	"flag"
	"fmt"

	"github.com/Yandex-Practicum/go-ftracker/internal/ftracker"
	"github.com/Yandex-Practicum/go-ftracker/internal/random"
)

var packageFlags = flag.NewFlagSet("package", flag.ExitOnError)

var (
	flagPackageCode  = packageFlags.String("code", "", "workout code (RUN, WLK, SWM), random if empty")
	flagPackageCount = packageFlags.Int("n", 1, "number of packages to generate")
)

var packageCmd = cmd{
	name:      "package",
	shortHelp: "generates random sensor packages accepted by ftracker",
	do:        generatePackage,
	flags:     packageFlags,
}

func generatePackage() {
	for i := 0; i < *flagPackageCount; i++ {
		kind := random.Kind()
		if *flagPackageCode != "" {
			k, err := ftracker.ParseKind(*flagPackageCode)
			if err != nil {
				fatalf("cannot generate package: %s", err)
			}
			kind = k
		}

		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Print(random.PackageArg(kind.Code(), random.Package(kind)))
	}
	fmt.Println()
}
