// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchurl builds the URLs that open a benchmark window.
//
// A benchmark window reads its configuration from its query string
// and posts its report back to the window that opened it.
package benchurl

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Options is the benchmark configuration passed to a benchmark
// window.
type Options struct {
	// Iterations is the number of times each test case runs.
	Iterations int `mapstructure:"iterations" json:"iterations"`

	DisableSCU         bool `mapstructure:"disableSCU" json:"disableSCU"`
	EnableDOMRecycling bool `mapstructure:"enableDOMRecycling" json:"enableDOMRecycling"`
	Mobile             bool `mapstructure:"mobile" json:"mobile"`
	FullRenderTime     bool `mapstructure:"fullRenderTime" json:"fullRenderTime"`

	// Filter restricts the test cases the benchmark runs.
	Filter string `mapstructure:"filter" json:"filter"`
}

// DefaultOptions are the options a fresh viewer starts with.
var DefaultOptions = Options{Iterations: 5, DisableSCU: true}

// Query returns the encoded query string for o. Boolean options
// appear only when set, and the filter only when non-empty.
func (o Options) Query() string {
	var b strings.Builder
	add := func(k, v string) {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(v))
	}
	add("report", "true")
	add("i", strconv.Itoa(o.Iterations))
	if o.DisableSCU {
		add("disableSCU", "true")
	}
	if o.EnableDOMRecycling {
		add("enableDOMRecycling", "true")
	}
	if o.Mobile {
		add("mobile", "true")
	}
	if o.Filter != "" {
		add("filter", o.Filter)
	}
	if o.FullRenderTime {
		add("fullRenderTime", "true")
	}
	return b.String()
}

// ParseOptions reads options submitted by the viewer's options form.
// If q has no "i" field, the form was never submitted and ParseOptions
// returns def. Otherwise absent boolean fields are false.
func ParseOptions(q url.Values, def Options) (Options, error) {
	if _, ok := q["i"]; !ok {
		return def, nil
	}
	n, err := strconv.Atoi(q.Get("i"))
	if err != nil || n < 1 {
		return def, errors.Errorf("invalid iteration count %q", q.Get("i"))
	}
	flag := func(name string) bool {
		v, err := strconv.ParseBool(q.Get(name))
		return err == nil && v
	}
	return Options{
		Iterations:         n,
		DisableSCU:         flag("disableSCU"),
		EnableDOMRecycling: flag("enableDOMRecycling"),
		Mobile:             flag("mobile"),
		FullRenderTime:     flag("fullRenderTime"),
		Filter:             q.Get("tests"),
	}, nil
}

// Values returns o as viewer form values, the inverse of ParseOptions.
func (o Options) Values() url.Values {
	v := url.Values{"i": {strconv.Itoa(o.Iterations)}}
	set := func(name string, on bool) {
		if on {
			v.Set(name, "true")
		}
	}
	set("disableSCU", o.DisableSCU)
	set("enableDOMRecycling", o.EnableDOMRecycling)
	set("mobile", o.Mobile)
	set("fullRenderTime", o.FullRenderTime)
	if o.Filter != "" {
		v.Set("tests", o.Filter)
	}
	return v
}

// withQuery appends the options query to raw, keeping any query raw
// already has.
func withQuery(raw string, opts Options) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", errors.Wrapf(err, "benchmark URL %q", raw)
	}
	if u.RawQuery != "" {
		u.RawQuery += "&"
	}
	u.RawQuery += opts.Query()
	return u.String(), nil
}

// ErrNoURL is returned by Custom for an empty custom URL.
var ErrNoURL = errors.New("no benchmark URL")

// Custom returns the invocation URL of a user supplied benchmark.
func Custom(raw string, opts Options) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrNoURL
	}
	return withQuery(strings.TrimSpace(raw), opts)
}
