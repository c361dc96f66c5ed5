package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Yandex-Practicum/go-ftracker/internal/random"
)

var tempfileCmd = cmd{
	name:      "tempfile",
	shortHelp: "generates path to random temporary file for ftracker output",
	do:        generateTempfile,
}

func generateTempfile() {
	tempdir := os.TempDir()
	filename := "ftracker-" + random.ASCIIString(5, 8) + ".out"
	path := filepath.Join(tempdir, filename)
	fmt.Print(path)
}
