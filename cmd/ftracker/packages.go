package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// errMalformedPackage indicates an argument not in the CODE:v1,v2,... form
var errMalformedPackage = errors.New("malformed package")

type sensorPackage struct {
	code string
	data []float64
}

// parsePackage parses a command line argument like "RUN:15000,1,75".
func parsePackage(arg string) (sensorPackage, error) {
	code, values, ok := strings.Cut(arg, ":")
	if !ok || code == "" {
		return sensorPackage{}, fmt.Errorf("%w: expected CODE:v1,v2,... got %q", errMalformedPackage, arg)
	}

	pkg := sensorPackage{code: strings.TrimSpace(code)}
	if strings.TrimSpace(values) == "" {
		return pkg, nil
	}

	for _, v := range strings.Split(values, ",") {
		num, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return sensorPackage{}, fmt.Errorf("%w: %s", errMalformedPackage, err)
		}
		pkg.data = append(pkg.data, num)
	}
	return pkg, nil
}
