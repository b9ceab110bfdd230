// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report defines the uibench report format: the result of one
// contestant's benchmark run, as posted by a benchmark window and as
// written by the JSON export.
package report

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// A Report is one contestant's full benchmark run. Reports are
// immutable once received.
type Report struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Flags   Flags  `json:"flags"`
	Timing  Timing `json:"timing"`

	// Iterations is the number of times each test case was run.
	Iterations int `json:"iterations"`

	// Samples holds the measurements of each test case, in
	// seconds, in the order the benchmark reported them.
	Samples Samples `json:"samples"`
}

// Flags are the capabilities and modes a benchmark ran with.
type Flags struct {
	FullRenderTime bool `json:"fullRenderTime"`
	PreserveState  bool `json:"preserveState"`
	SCU            bool `json:"scu"`
	Recycling      bool `json:"recycling"`
	DisableChecks  bool `json:"disableChecks"`
}

// Timing holds the page-level timestamps of a run, in seconds.
type Timing struct {
	Start       float64 `json:"start"`
	Run         float64 `json:"run"`
	FirstRender float64 `json:"firstRender"`
}

// JSInit returns the script initialization time of the run.
func (t Timing) JSInit() float64 {
	return t.Run - t.Start
}

// Title returns "name version", identifying the report in messages.
func (r *Report) Title() string {
	if r.Version == "" {
		return r.Name
	}
	return r.Name + " " + r.Version
}

// A Sample is the sequence of measurements of one test case.
type Sample struct {
	Name   string
	Values []float64
}

// Samples is an ordered set of named samples. It is encoded as a JSON
// object and, unlike a Go map, keeps the order of the object's keys.
type Samples []Sample

// Get returns the values of the sample called name.
func (s Samples) Get(name string) ([]float64, bool) {
	for i := range s {
		if s[i].Name == name {
			return s[i].Values, true
		}
	}
	return nil, false
}

// Names returns the sample names in order.
func (s Samples) Names() []string {
	names := make([]string, len(s))
	for i := range s {
		names[i] = s[i].Name
	}
	return names
}

// MarshalJSON encodes s as a JSON object in order.
func (s Samples) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sample := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(sample.Name)
		if err != nil {
			return nil, err
		}
		values := sample.Values
		if values == nil {
			values = []float64{}
		}
		val, err := json.Marshal(values)
		if err != nil {
			return nil, errors.Wrapf(err, "sample %q", sample.Name)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into s, keeping key order. A
// repeated key keeps its first position and its last value, as
// JavaScript's JSON.parse does.
func (s *Samples) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.Errorf("samples: expected object, got %v", tok)
	}

	var out Samples
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name := tok.(string) // object keys are always strings
		var values []float64
		if err := dec.Decode(&values); err != nil {
			return errors.Wrapf(err, "sample %q", name)
		}
		if i, ok := index[name]; ok {
			out[i].Values = values
			continue
		}
		index[name] = len(out)
		out = append(out, Sample{name, values})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = out
	return nil
}
