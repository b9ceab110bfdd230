// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchurl

import (
	"github.com/pkg/errors"
)

// A Contestant is a UI library with a published benchmark
// implementation.
type Contestant struct {
	Name string `mapstructure:"name" json:"name"`

	// URL is the library's home page.
	URL string `mapstructure:"url" json:"url"`

	// BenchmarkURL is the benchmark page, or the base of the
	// versioned benchmark pages if Versions is set.
	BenchmarkURL string `mapstructure:"benchmarkUrl" json:"benchmarkUrl"`

	// Versions lists the published versions of the benchmark.
	// Version v lives at BenchmarkURL + v + "/" + Page.
	Versions []string `mapstructure:"versions" json:"versions,omitempty"`
	Page     string   `mapstructure:"page" json:"page,omitempty"`

	Comments string `mapstructure:"comments" json:"comments,omitempty"`
}

// Open returns the URL that runs c's benchmark with opts. version
// must be one of c.Versions, or empty if c has no versions.
func (c Contestant) Open(version string, opts Options) (string, error) {
	if len(c.Versions) == 0 {
		if version != "" {
			return "", errors.Errorf("%s has no version %q", c.Name, version)
		}
		return withQuery(c.BenchmarkURL, opts)
	}
	for _, v := range c.Versions {
		if v == version {
			return withQuery(c.BenchmarkURL+version+"/"+c.Page, opts)
		}
	}
	return "", errors.Errorf("%s has no version %q", c.Name, version)
}

// Find returns the contestant called name.
func Find(cs []Contestant, name string) (Contestant, bool) {
	for _, c := range cs {
		if c.Name == name {
			return c, true
		}
	}
	return Contestant{}, false
}

const (
	vdomLikeReact = "Virtual DOM. Benchmark is implemented as close as possible to React implementation, preserves internal state, all components are stateful, no explicit event delegation, etc."
	vdomAsReact   = "Virtual DOM. Benchmark is implemented in exactly the same way as React implementation."
)

// DefaultContestants is the built-in benchmark catalog.
var DefaultContestants = []Contestant{
	{
		Name:         "React",
		URL:          "https://facebook.github.io/react/",
		BenchmarkURL: "https://localvoid.github.io/uibench-react/",
		Versions:     []string{"14", "15", "16"},
		Page:         "index.html",
		Comments:     "Virtual DOM. Compiled with: transform-react-inline-elements.",
	},
	{
		Name:         "Bobril",
		URL:          "https://github.com/Bobris/Bobril",
		BenchmarkURL: "https://bobris.github.io/uibench-bobril/",
		Comments:     vdomLikeReact,
	},
	{
		Name:         "Preact",
		URL:          "https://github.com/developit/preact",
		BenchmarkURL: "https://developit.github.io/uibench-preact/",
		Comments:     vdomAsReact,
	},
	{
		Name:         "Imba",
		URL:          "https://github.com/somebee/imba",
		BenchmarkURL: "https://somebee.github.io/uibench-imba/",
		Comments:     "Programming language with UI library that has Virtual DOM like API. Using DOM Nodes recycling by default.",
	},
	{
		Name:         "Vidom",
		URL:          "https://github.com/dfilatov/vidom",
		BenchmarkURL: "https://dfilatov.github.io/uibench-vidom/",
		Comments:     vdomLikeReact,
	},
	{
		Name:         "DIO.js",
		URL:          "https://github.com/thysultan/dio.js",
		BenchmarkURL: "https://dio.js.org/examples/uibench.html",
		Comments:     vdomLikeReact,
	},
	{
		Name:         "Inferno [optimized]",
		URL:          "https://github.com/infernojs/inferno",
		BenchmarkURL: "https://infernojs.github.io/inferno/uibench/",
		Page:         "index.html",
		Comments:     "Virtual DOM. Optimized.",
	},
	{
		Name:         "Inferno",
		URL:          "https://github.com/infernojs/inferno",
		BenchmarkURL: "https://infernojs.github.io/inferno/uibench-reactlike/",
		Page:         "index.html",
		Comments:     vdomAsReact,
	},
	{
		Name:         "$mol",
		URL:          "https://github.com/eigenmethod/mol",
		BenchmarkURL: "https://eigenmethod.github.io/mol/perf/uibench/",
		Page:         "index.html",
		Comments:     "Fine-grained data bindings. Components recycling.",
	},
	{
		Name:         "ivi [optimized]",
		URL:          "https://github.com/localvoid/ivi",
		BenchmarkURL: "https://localvoid.github.io/ivi-examples/benchmarks/uibench_fc/",
		Page:         "index.html",
		Comments:     "Virtual DOM. Optimized.",
	},
	{
		Name:         "ivi",
		URL:          "https://github.com/localvoid/ivi",
		BenchmarkURL: "https://localvoid.github.io/ivi-examples/benchmarks/uibench/",
		Page:         "index.html",
		Comments:     vdomLikeReact,
	},
	{
		Name:         "stage0",
		URL:          "https://github.com/Freak613/stage0",
		BenchmarkURL: "https://freak613.github.io/stage0/examples/uibench/",
		Comments:     `Optimized "Vanilla" implementation that uses helper functions from stage0 library. Preserves internal state, doesn't support sCU optimization, doesn't have components overhead.`,
	},
	{
		Name:         "Vanilla [innerHTML]",
		URL:          "https://github.com/localvoid/uibench-vanilla",
		BenchmarkURL: "https://localvoid.github.io/uibench-vanilla/innerhtml.html",
		Comments:     "Benchmark implementation doesn't preserve internal state, doesn't support sCU optimization, doesn't have components overhead.",
	},
	{
		Name:         "Vanilla [WebComponent]",
		URL:          "https://github.com/localvoid/uibench-vanilla-wc",
		BenchmarkURL: "https://localvoid.github.io/uibench-vanilla-wc/",
		Comments:     "Benchmark implementation doesn't preserve internal state, doesn't support sCU optimization.",
	},
}
