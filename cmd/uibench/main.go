// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Uibench collects and compares uibench benchmark reports.
//
// Usage:
//
//	uibench serve [--addr address] [--load file,...]
//	uibench report [--format text|html|json] [--filter substr] [-o file] file...
//	uibench chart --row test [-o file.png] file...
//	uibench tui [--server url] [file...]
//	uibench url [--custom] contestant|url [version]
//	uibench contestants
//	uibench prefs get|set [url]
//
// Serve runs the results viewer: open it in a browser, launch
// benchmarks from it, and it tabulates the reports the benchmark
// windows post back. The other commands work on the viewer's JSON
// exports.
//
// Configuration is read from uibench.yaml in the current directory
// (or the file named by --config) and from UIBENCH_* environment
// variables.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
