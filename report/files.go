// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

// exportSchema describes the JSON export: an array of reports whose
// samples are non-empty arrays of numbers.
const exportSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["name", "samples"],
		"properties": {
			"name": {"type": "string"},
			"version": {"type": "string"},
			"iterations": {"type": "number"},
			"flags": {
				"type": "object",
				"additionalProperties": {"type": "boolean"}
			},
			"timing": {
				"type": "object",
				"additionalProperties": {"type": "number"}
			},
			"samples": {
				"type": "object",
				"additionalProperties": {
					"type": "array",
					"minItems": 1,
					"items": {"type": "number"}
				}
			}
		}
	}
}`

var exportSchemaLoader = gojsonschema.NewStringLoader(exportSchema)

// A ValidationError reports a JSON export that does not match the
// report schema.
type ValidationError struct {
	FileName string
	Errors   []string
}

func (e *ValidationError) Error() string {
	return e.FileName + ": invalid report export: " + strings.Join(e.Errors, "; ")
}

// Read reads a JSON export (an array of reports) from r. fileName is
// used in error messages; it is purely diagnostic.
func Read(r io.Reader, fileName string) ([]*Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, fileName)
	}

	result, err := gojsonschema.Validate(exportSchemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "%s: validating", fileName)
	}
	if !result.Valid() {
		verr := &ValidationError{FileName: fileName}
		for _, desc := range result.Errors() {
			verr.Errors = append(verr.Errors, desc.String())
		}
		return nil, verr
	}

	var reports []*Report
	if err := json.Unmarshal(data, &reports); err != nil {
		return nil, errors.Wrap(err, fileName)
	}
	return reports, nil
}

// ReadFile reads the JSON export stored in the named file.
func ReadFile(name string) ([]*Report, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, name)
}

// WriteJSON writes reports as an indented JSON array. The output is
// the JSON export format accepted by Read.
func WriteJSON(w io.Writer, reports []*Report) error {
	if reports == nil {
		reports = []*Report{}
	}
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	buf.Write(data)
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}
