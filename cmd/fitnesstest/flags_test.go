package main

import (
	"flag"
)

var (
	flagTargetBinaryPath string
	flagTargetSourcePath string
	flagServerHost       string
	flagServerPort       string
)

func init() {
	flag.StringVar(&flagTargetBinaryPath, "binary-path", "", "path to target ftracker binary")
	flag.StringVar(&flagTargetSourcePath, "source-path", "", "path to target ftracker source root")
	flag.StringVar(&flagServerHost, "server-host", "localhost", "host to run HTTP server on")
	flag.StringVar(&flagServerPort, "server-port", "", "port to run HTTP server on, random unused port if empty")
}
