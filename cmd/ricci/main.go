// Package main provides the ricci command line tool.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ricci-go/ricci/diffgeo"
	"github.com/ricci-go/ricci/scalar"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("ricci %s\n", version)
			return
		case "christoffel":
			if err := christoffel(os.Args[2:]); err != nil {
				fmt.Fprintln(os.Stderr, "ricci:", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("ricci - tensor calculus on low-dimensional manifolds")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version                        Show version")
	fmt.Println("  christoffel <metric> <coords>  Print the Christoffel symbols at a point")
	fmt.Println("")
	fmt.Println("Metrics: euclidean2, euclidean3, polar, spherical, schwarzschild (rs=2)")
}

// builtinMetric resolves a metric name to a field and its coordinate names.
func builtinMetric(name string) (*diffgeo.MetricField[scalar.Real], []string, error) {
	switch name {
	case "euclidean2":
		return diffgeo.EuclideanMetric[scalar.Real](2), []string{"x", "y"}, nil
	case "euclidean3":
		return diffgeo.EuclideanMetric[scalar.Real](3), []string{"x", "y", "z"}, nil
	case "polar":
		return diffgeo.PolarMetric[scalar.Real](), []string{"r", "θ"}, nil
	case "spherical":
		return diffgeo.SphericalMetric[scalar.Real](), []string{"r", "θ", "φ"}, nil
	case "schwarzschild":
		return diffgeo.SchwarzschildMetric[scalar.Real](2), []string{"t", "r", "θ", "φ"}, nil
	}
	return nil, nil, fmt.Errorf("unknown metric %q", name)
}

func christoffel(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: ricci christoffel <metric> <coords...>")
	}
	field, names, err := builtinMetric(args[0])
	if err != nil {
		return err
	}
	n := field.Dim()
	if len(args)-1 != n {
		return fmt.Errorf("metric %s needs %d coordinates, got %d", args[0], n, len(args)-1)
	}
	x := make([]scalar.Real, n)
	for i, arg := range args[1:] {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("bad coordinate %q: %w", arg, err)
		}
		x[i] = scalar.Real(v)
	}

	gamma := diffgeo.ChristoffelSecondKind(field, x)
	printed := 0
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			// Γ^k_ij is symmetric in ij; print the upper triangle.
			for j := i; j < n; j++ {
				v := gamma.At(k, i, j)
				if v.Magnitude() <= 1e-12 {
					continue
				}
				fmt.Printf("Γ^%s_%s%s = %v\n", names[k], names[i], names[j], v)
				printed++
			}
		}
	}
	if printed == 0 {
		fmt.Println("all Christoffel symbols vanish")
	}
	return nil
}
