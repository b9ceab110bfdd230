// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// TypeReport is the message type that carries a Report.
const TypeReport = "report"

// A Message is the envelope benchmark windows post to the viewer.
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// ErrIgnored is returned by DecodeMessage for a well-formed message
// that does not carry a report. Callers drop such messages silently.
var ErrIgnored = errors.New("message ignored")

// DecodeMessage reads one message from r and returns its report.
func DecodeMessage(r io.Reader) (*Report, error) {
	var m Message
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, errors.Wrap(err, "decoding message")
	}
	if m.Type != TypeReport {
		return nil, ErrIgnored
	}
	if d := bytes.TrimSpace(m.Data); len(d) == 0 || bytes.Equal(d, []byte("null")) {
		return nil, errors.New("decoding report: message has no data")
	}
	var rep Report
	if err := json.Unmarshal(m.Data, &rep); err != nil {
		return nil, errors.Wrap(err, "decoding report")
	}
	return &rep, nil
}
