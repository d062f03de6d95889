// Package main provides the linalg command line tool.
//
// Usage:
//
//	linalg version
//	linalg backends
//	linalg dot A.json B.json [--backend cpu] [--dtype float64]
//	linalg qr A.json [--mode reduced] [--backend blas]
//
// Matrices are JSON arrays of rows, e.g. [[1, 2], [3, 4]]. A path of "-"
// reads from standard input.
package main

import (
	"os"

	"k8s.io/klog/v2"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "v0.1.0-dev"

func main() {
	defer klog.Flush()

	if err := newRootCmd().Execute(); err != nil {
		klog.Flush()
		os.Exit(1)
	}
}
