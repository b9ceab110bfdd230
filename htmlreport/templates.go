// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htmlreport

import (
	"github.com/google/safehtml/template"
)

const stylesheet = `<link rel="stylesheet" href="https://maxcdn.bootstrapcdn.com/bootstrap/3.3.5/css/bootstrap.min.css">`

const documentTemplate = `{{define "document"}}<!doctype html><html lang="en"><head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>UI Benchmark Report: {{.UserAgent}}</title>
` + stylesheet + `
</head><body>
<div class="panel panel-default">
<div class="panel-heading">UI Benchmark Report generated by <a href="https://localvoid.github.io/uibench/">https://localvoid.github.io/uibench/</a></div>
<div class="panel-body">
<h2>User Agent: {{.UserAgent}}</h2>
{{template "legend"}}
{{template "table" .Table}}
</div>
</div>
</body></html>
{{end}}`

const tableTemplate = `{{define "table"}}<table class="table table-condensed">
<thead><tr><th></th>{{range .Columns}}<th>{{.Name}} <small>{{.Version}}</small></th>{{end}}</tr></thead>
<tbody>
<tr class="section"><td><b>Flags:</b></td>{{range .Columns}}<td></td>{{end}}</tr>
{{range .Flags}}<tr><td>{{.Label}}</td>{{range .Cells}}<td style="{{.}}"></td>{{end}}</tr>
{{end -}}
<tr class="section"><td><b>Times:</b></td>{{range .Columns}}<td></td>{{end}}</tr>
{{template "row" .JSInit}}
{{template "row" .FirstRender}}
<tr><td>Overall Tests Time</td>{{range .Overall}}<td>{{.}}</td>{{end}}</tr>
<tr><td>Iterations</td>{{range .Iterations}}<td>{{.}}</td>{{end}}</tr>
{{range .Tests}}{{template "row" .}}
{{end -}}
</tbody>
</table>{{end}}

{{define "row"}}<tr>
{{- if .Chart}}<td><a href="{{.ChartURL}}"><code>{{.Label}}</code></a></td>
{{- else if .IsTest}}<td><code>{{.Label}}</code></td>
{{- else}}<td>{{.Label}}</td>{{end}}
{{- range .Cells}}<td title="{{.Title}}" style="{{.Style}}">{{.Value}}{{with .Annotation}} <small>{{.}}</small>{{end}}</td>{{end -}}
</tr>{{end}}`

const legendTemplate = `{{define "legend"}}<h4>Flags:</h4>
<ul>
<li><strong>Measure Full Render Time</strong> - full render time measurement (recalc style/layout/paint/composition/etc).</li>
<li><strong>Preserve State</strong> - preserves internal state when moving DOM nodes.</li>
<li><strong>DOM Recycling</strong> - DOM recycling is enabled, instead of creating new DOM nodes on each update, it reuses them.</li>
<li><strong>sCU Optimization</strong> - <code>shouldComponentUpdate</code> optimization is enabled.</li>
<li><strong>Spec Tests</strong> - Internal specification tests.</li>
</ul>
<h4>Notes:</h4>
<ul>
<li>Time is measured in microseconds.</li>
<li><u>JS Init Time</u> is hugely depends on scripts downloading time, run benchmark multiple times to make sure that scripts are available in a browser cache.</li>
<li>Don't use <u>Overall Tests Time</u> row to make any conclusions, like library X is N times faster than library Y. This row is used by library developers to easily check if there is some regression.</li>
<li>When <u>sCU Optimization</u> is disabled, <code>no_change</code> test cases will show pure render/diff overhead.</li>
<li>Implementations that doesn't <u>Preserve State</u> when updating children can get a way much better results than those who preserve state in some test cases when <u>Measure Full Render Time</u> is enabled because they don't trigger long-running recalc style/layout. But most of the time it isn't important because implementations that doesn't properly rearrange nodes will be slower in other important use cases.</li>
<li>Implementations with some form of <u>DOM recycling</u> will have a way much better results in <code>render</code> use cases. For example, Imba library algorithm for diffing is hugely depends on this behavior, so it is hard to properly benchmark <code>render</code> and <code>insert</code> test cases. Implementations with this form of DOM recycling are actually taking exactly the same DOM nodes from pool, so they don't need to update anything, and they just insert prerendered nodes.</li>
</ul>
<h4>Tests:</h4>
<ul>
<li><u>JS Init Time</u> - js initialization time.</li>
<li><u>First Render Time</u> - time to execute <code>table/[100,4]/render</code> for the first time, it will be executed before any spec/scu/recycling tests, so it may be considered as a "cold" run.</li>
<li><code>table/[100,4]/render</code> - render table with 100 rows and 1+4 columns.</li>
<li><code>table/[100,4]/removeAll</code> - remove all rows from a table with 100 rows and 1+4 columns.</li>
<li><code>table/[100,4]/sort/0</code> - sort rows in alphabetic order by first column.</li>
<li><code>table/[100,4]/filter/32</code> - remove each 32th row.</li>
<li><code>table/[100,4]/activate/32</code> - activate each 32th row (adds "active" class to each activated row).</li>
<li><code>anim/100/32</code> - update style in each 32th div.</li>
<li><code>tree/[50,10]/render</code> - render tree with 50 top-level nodes with 10 nodes in each top-level node.</li>
<li><code>tree/[50,10]/removeAll</code> - remove all top-level nodes.</li>
<li><code>tree/[50,10]/[reverse]</code> - reverse all top-level nodes.</li>
<li><code>tree/[50,10]/[insertFirst(1)]</code> - insert one top-level node at the beginning.</li>
<li><code>tree/[50,10]/[insertLast(1)]</code> - insert one top-level node at the end.</li>
<li><code>tree/[50,10]/[removeFirst(1)]</code> - remove one top-level node at the beginning.</li>
<li><code>tree/[50,10]/[removeLast(1)]</code> - remove one top-level node at the end.</li>
<li><code>tree/[50,10]/[moveFromEndToStart(1)]</code> - move one top-level node from the end to the beginning.</li>
<li><code>tree/[50,10]/[moveFromStartToEnd(1)]</code> - move one top-level node from the beginning to the end.</li>
<li><code>tree/[50,10]/[*_worst_case]</code> - special test cases that should trigger worst case scenarios for children reconciliation algorithms in different libraries.</li>
<li><code>tree/[10,10,10,10]/no_change</code> - trigger update without any changes.</li>
</ul>
{{end}}`

const pageTemplate = `{{define "page"}}<!doctype html><html lang="en"><head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>UI Benchmark</title>
` + stylesheet + `
</head><body>
<div class="jumbotron"><div class="container">
<h1>UI Benchmark</h1>
<p>To start benchmarking, click on a button below library name that you want to test, it will open a new window, perform tests and send results back to this window, results will be displayed at the bottom section "Results".</p>
<p>In the "Results" section there will be different test cases, for example test case <code>table/[100,4]/render</code> represents update from empty table to table with 100 rows and 4 columns. Details about all test cases can be found inside the <a href="https://github.com/localvoid/uibench-base/blob/master/lib/uibench.ts#L317">uibench.js</a> file.</p>
</div></div>
<div class="container">
<div class="panel panel-default"><div class="panel-body">
<form id="options" method="get" action="/">
<input type="hidden" name="filter" value="{{.Table.Filter}}">
<div class="checkbox"><label>
{{- if .Options.FullRenderTime}}<input type="checkbox" name="fullRenderTime" value="true" checked>{{else}}<input type="checkbox" name="fullRenderTime" value="true">{{end}}
Enable full render time measurements (recalc style/layout/paint/composition/etc)</label></div>
<div class="checkbox"><label>
{{- if .Options.DisableSCU}}<input type="checkbox" name="disableSCU" value="true" checked>{{else}}<input type="checkbox" name="disableSCU" value="true">{{end}}
Disable <code>shouldComponentUpdate</code> optimization</label></div>
<div class="checkbox"><label>
{{- if .Options.EnableDOMRecycling}}<input type="checkbox" name="enableDOMRecycling" value="true" checked>{{else}}<input type="checkbox" name="enableDOMRecycling" value="true">{{end}}
Enable DOM recycling</label></div>
<div class="checkbox"><label>
{{- if .Options.Mobile}}<input type="checkbox" name="mobile" value="true" checked>{{else}}<input type="checkbox" name="mobile" value="true">{{end}}
Mobile mode (reduces number of DOM elements in tests)</label></div>
<div class="form-group"><label for="iterations">Iterations</label>
<input type="number" class="form-control" id="iterations" name="i" min="1" value="{{.Options.Iterations}}"></div>
<div class="form-group"><label for="test-filter">Tests filter</label>
<input type="text" class="form-control" id="test-filter" name="tests" placeholder="For example: render" value="{{.Options.Filter}}"></div>
<button type="submit" class="btn btn-default">Apply</button>
</form>
</div></div>
<div class="list-group">
{{range .Contestants}}<div class="list-group-item">
<h4 class="list-group-item-heading"><a href="{{.HomeURL}}" target="_blank">{{.Name}}</a></h4>
<p><small>{{.Comments}}</small></p>
<form method="get" action="/open" target="_blank">{{template "options" $.Options}}
<input type="hidden" name="contestant" value="{{.Name}}">
<div class="btn-group btn-group-xs">
{{- range .Versions}}<button type="submit" class="btn btn-default" name="version" value="{{.}}">{{.}}</button>
{{- else}}<button type="submit" class="btn btn-default">stable</button>{{end -}}
</div>
</form>
</div>
{{end -}}
<div class="list-group-item">
<h4 class="list-group-item-heading">Custom URL</h4>
<form method="get" action="/open" target="_blank">{{template "options" .Options}}
<input type="hidden" name="custom" value="1">
<div class="input-group">
<input type="text" class="form-control" id="custom-url" name="url" placeholder="http://www.example.com" value="{{.CustomURL}}">
<span class="input-group-btn"><button type="submit" class="btn btn-default">Open</button></span>
</div>
</form>
</div>
</div>
<div class="panel panel-default" id="results">
<div class="panel-heading">Results (lower is better)</div>
<div class="panel-body">
{{- if .Error}}
<div class="alert alert-danger" id="results-error">{{.Error}}</div>
<div><a class="btn btn-primary" href="/export.json">Export as JSON</a></div>
{{- else if .Table.Columns}}
<div><a class="btn btn-primary" href="/export.html">Export as HTML</a> <a class="btn btn-primary" href="/export.json">Export as JSON</a></div>
{{template "legend"}}
<form id="filter-form" method="get" action="/">{{template "options" .Options}}
<div class="input-group">
<span class="input-group-addon">Filter</span>
<input type="text" class="form-control" id="filter" name="filter" placeholder="For example: render" value="{{.Table.Filter}}">
</div>
</form>
{{template "table" .Table}}
{{- else}}Empty{{end}}
</div>
</div>
</div>
<script>
(function () {
  function send(method, url, type, body, done) {
    var req = new XMLHttpRequest();
    req.open(method, url);
    req.setRequestHeader('Content-Type', type);
    req.onload = function () { if (done) { done(req.status); } };
    req.send(body);
  }
  window.addEventListener('message', function (e) {
    var m = e.data;
    if (!m || typeof m.type !== 'string') { return; }
    send('POST', '/message', 'application/json', JSON.stringify(m), function (status) {
      if (status === 204 && m.type === 'report') { window.location.reload(); }
    });
  });
  var custom = document.getElementById('custom-url');
  custom.addEventListener('input', function () {
    send('PUT', '/prefs/custom-url', 'text/plain; charset=utf-8', custom.value);
  });
  var filter = document.getElementById('filter');
  if (filter) {
    var timer;
    filter.addEventListener('input', function () {
      clearTimeout(timer);
      timer = setTimeout(function () { document.getElementById('filter-form').submit(); }, 300);
    });
  }
})();
</script>
</body></html>
{{end}}

{{define "options"}}<input type="hidden" name="i" value="{{.Iterations}}">
{{- if .DisableSCU}}<input type="hidden" name="disableSCU" value="true">{{end}}
{{- if .EnableDOMRecycling}}<input type="hidden" name="enableDOMRecycling" value="true">{{end}}
{{- if .Mobile}}<input type="hidden" name="mobile" value="true">{{end}}
{{- if .FullRenderTime}}<input type="hidden" name="fullRenderTime" value="true">{{end}}
{{- with .Filter}}<input type="hidden" name="tests" value="{{.}}">{{end}}
{{- end}}`

var templates = template.Must(template.New("uibench").Parse(documentTemplate + tableTemplate + legendTemplate + pageTemplate))
