// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"bytes"
	"io"
	"mime"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/uibench/resultview/benchtab"
	"github.com/uibench/resultview/benchurl"
	"github.com/uibench/resultview/chart"
	"github.com/uibench/resultview/htmlreport"
	"github.com/uibench/resultview/report"
)

// maxMessageSize bounds the size of a posted message.
const maxMessageSize = 16 << 20

// maxPrefSize bounds the size of a stored preference.
const maxPrefSize = 8 << 10

// index serves the interactive page.
func (a *App) index(w http.ResponseWriter, r *http.Request) {
	opts, err := benchurl.ParseOptions(r.URL.Query(), a.Options)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	// A table that cannot be built still gets the page, with the
	// error in the results panel, so the launcher stays usable.
	code := http.StatusOK
	var buildErr string
	t, err := a.table(r.FormValue("filter"))
	if err != nil {
		a.log().WithError(err).Error("build table")
		code, buildErr = http.StatusInternalServerError, err.Error()
		t = &benchtab.Table{Filter: r.FormValue("filter")}
	}
	customURL, err := a.loadCustomURL(r)
	if err != nil {
		a.fail(w, "load preferences", err)
		return
	}
	page := htmlreport.Page{
		CustomURL:   customURL,
		Contestants: a.Contestants,
		Options:     opts,
		Charts:      true,
		Error:       buildErr,
	}
	body, err := a.render("page", page, t)
	if err != nil {
		a.fail(w, "render page", err)
		return
	}
	a.replyStatus(w, code, "text/html; charset=utf-8", body)
}

// message is the ingestion endpoint: the page forwards every message
// a benchmark window posts to it.
func (a *App) message(w http.ResponseWriter, r *http.Request) {
	rep, err := report.DecodeMessage(http.MaxBytesReader(w, r.Body, maxMessageSize))
	if err == report.ErrIgnored {
		messagesIgnored.Inc()
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		a.log().WithError(err).Warn("bad message")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	a.Store.Update(rep)
	reportsReceived.Inc()
	a.log().WithFields(logrus.Fields{
		"name":    rep.Name,
		"version": rep.Version,
		"samples": len(rep.Samples),
	}).Info("report received")
	w.WriteHeader(http.StatusNoContent)
}

// attachment returns the Content-Disposition of an export named after
// the user agent.
func attachment(userAgent, ext string) string {
	d := mime.FormatMediaType("attachment", map[string]string{"filename": "uibench_" + userAgent + "." + ext})
	if d == "" {
		return "attachment"
	}
	return d
}

// exportHTML serves the static document. It always covers every test
// case, whatever the page's filter.
func (a *App) exportHTML(w http.ResponseWriter, r *http.Request) {
	t, err := a.table("")
	if err != nil {
		a.fail(w, "build table", err)
		return
	}
	ua := r.UserAgent()
	body, err := a.render("document", htmlreport.Document{UserAgent: ua}, t)
	if err != nil {
		a.fail(w, "render document", err)
		return
	}
	w.Header().Set("Content-Disposition", attachment(ua, "html"))
	a.reply(w, "text/html; charset=utf-8", body)
}

// exportJSON serves the received reports.
func (a *App) exportJSON(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := report.WriteJSON(&buf, a.Store.Reports()); err != nil {
		a.fail(w, "export json", err)
		return
	}
	w.Header().Set("Content-Disposition", attachment(r.UserAgent(), "json"))
	a.reply(w, "application/json", buf.Bytes())
}

func (a *App) loadCustomURL(r *http.Request) (string, error) {
	if a.Prefs == nil {
		return "", nil
	}
	return a.Prefs.CustomURL(r.Context())
}

// customURL serves the stored custom benchmark URL as plain text.
func (a *App) customURL(w http.ResponseWriter, r *http.Request) {
	v, err := a.loadCustomURL(r)
	if err != nil {
		a.fail(w, "load preferences", err)
		return
	}
	a.reply(w, "text/plain; charset=utf-8", []byte(v))
}

// setCustomURL replaces the custom benchmark URL with the request
// body.
func (a *App) setCustomURL(w http.ResponseWriter, r *http.Request) {
	if a.Prefs == nil {
		http.Error(w, "preferences are not available", http.StatusServiceUnavailable)
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPrefSize))
	if err != nil {
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}
	if err := a.Prefs.SetCustomURL(r.Context(), string(body)); err != nil {
		a.fail(w, "store preferences", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// open redirects to the invocation URL of a contestant's benchmark,
// or of the custom URL if the custom field is set.
func (a *App) open(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts, err := benchurl.ParseOptions(q, a.Options)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var target string
	if q.Get("custom") != "" {
		raw := q.Get("url")
		if raw == "" {
			if raw, err = a.loadCustomURL(r); err != nil {
				a.fail(w, "load preferences", err)
				return
			}
		} else if a.Prefs != nil {
			if err := a.Prefs.SetCustomURL(r.Context(), raw); err != nil {
				a.log().WithError(err).Warn("store preferences")
			}
		}
		target, err = benchurl.Custom(raw, opts)
	} else {
		c, ok := benchurl.Find(a.Contestants, q.Get("contestant"))
		if !ok {
			http.Error(w, "unknown contestant "+q.Get("contestant"), http.StatusNotFound)
			return
		}
		target, err = c.Open(q.Get("version"), opts)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// chart serves the box plot of one test case.
func (a *App) chart(w http.ResponseWriter, r *http.Request) {
	t, err := a.table("")
	if err != nil {
		a.fail(w, "build table", err)
		return
	}
	var buf bytes.Buffer
	if err := chart.WritePNG(&buf, t, r.FormValue("row")); err != nil {
		if errors.Is(err, chart.ErrNoRow) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		a.fail(w, "chart", err)
		return
	}
	a.reply(w, "image/png", buf.Bytes())
}
