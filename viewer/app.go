// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewer implements the uibench results viewer server.
// Benchmark windows post their reports to it, and it serves the
// comparison table, exports and the benchmark launcher.
package viewer

import (
	"bytes"
	"net/http"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/uibench/resultview/benchtab"
	"github.com/uibench/resultview/benchurl"
	"github.com/uibench/resultview/prefs"
	"github.com/uibench/resultview/store"
)

// App manages the viewer logic. Construct an App instance using a
// literal and call Handler, or RegisterOnMux to connect it with an
// existing router.
type App struct {
	// Store receives the reports. It lives as long as the App.
	Store *store.Store

	// Prefs stores the custom benchmark URL. If nil, the custom
	// URL is always empty and cannot be changed.
	Prefs *prefs.DB

	// Contestants is the benchmark catalog offered by the page.
	Contestants []benchurl.Contestant

	// Options are the benchmark options used when the request
	// does not carry any.
	Options benchurl.Options

	// CORSOrigins lists other origins allowed to call the viewer.
	// The page forwards benchmark messages from its own origin, so
	// by default no other origin is allowed.
	CORSOrigins []string

	Log *logrus.Entry
}

// RegisterOnMux registers the app's URLs on r.
func (a *App) RegisterOnMux(r *mux.Router) {
	r.HandleFunc("/", a.index).Methods(http.MethodGet)
	r.HandleFunc("/message", a.message).Methods(http.MethodPost)
	r.HandleFunc("/export.html", a.exportHTML).Methods(http.MethodGet)
	r.HandleFunc("/export.json", a.exportJSON).Methods(http.MethodGet)
	r.HandleFunc("/prefs/custom-url", a.customURL).Methods(http.MethodGet)
	r.HandleFunc("/prefs/custom-url", a.setCustomURL).Methods(http.MethodPut, http.MethodPost)
	r.HandleFunc("/open", a.open).Methods(http.MethodGet)
	r.HandleFunc("/chart.png", a.chart).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
}

// Handler returns the complete viewer handler: the app's routes with
// request metrics and gzip compression, plus CORS if CORSOrigins is
// set.
func (a *App) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(instrument)
	a.RegisterOnMux(r)

	h := gziphandler.GzipHandler(r)
	if len(a.CORSOrigins) == 0 {
		return h
	}
	c := cors.New(cors.Options{
		AllowedOrigins: a.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(h)
}

func (a *App) log() *logrus.Entry {
	if a.Log == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return a.Log
}

// table builds the comparison table over a snapshot of the store.
func (a *App) table(filter string) (*benchtab.Table, error) {
	reports, names := a.Store.Snapshot()
	return benchtab.Build(reports, names, benchtab.Options{Filter: filter})
}

// render renders t with renderer into memory, so that a failed render
// can still answer 500 instead of a truncated page.
func (a *App) render(name string, renderer benchtab.Renderer, t *benchtab.Table) ([]byte, error) {
	start := time.Now()
	var buf bytes.Buffer
	if err := renderer.Render(&buf, t); err != nil {
		return nil, err
	}
	renderDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	return buf.Bytes(), nil
}

// reply writes a successful response body.
func (a *App) reply(w http.ResponseWriter, contentType string, body []byte) {
	a.replyStatus(w, http.StatusOK, contentType, body)
}

func (a *App) replyStatus(w http.ResponseWriter, code int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		a.log().WithError(err).Debug("writing response")
	}
}

// fail logs err and answers 500 with its text.
func (a *App) fail(w http.ResponseWriter, what string, err error) {
	a.log().WithError(err).Error(what)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
