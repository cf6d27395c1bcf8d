// Package templates holds the HTML views of the letter form. The markup is
// html/template; each view is handed to the handlers as a templ.Component.
package templates

import (
	"html/template"

	"github.com/a-h/templ"
)

// Field is one form input.
type Field struct {
	Name  string
	Label string
	Kind  string // text, date or textarea
	Value string
}

// Group is a titled block of fields. Context ties it to a letter type's
// context class; empty means shown for every type.
type Group struct {
	Title   string
	Context string
	Fields  []Field
}

// Option is an entry of a select.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Messages are the short acknowledgements the page shows.
type Messages struct {
	NothingToCopy string
	Copied        string
	ResetConfirm  string
}

// AppView is everything the form and preview need.
type AppView struct {
	Langs      []Option
	Types      []Option
	Context    string
	Groups     []Group
	Paragraphs []string
	Text       string
	Messages   Messages
}

var baseTmpl = template.Must(template.New("base").Funcs(funcs).Parse(`<!DOCTYPE html>
<html lang="ms">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Penjana Surat Rasmi</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<link rel="preconnect" href="https://fonts.googleapis.com">
<link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
<link href="https://fonts.googleapis.com/css2?family=IBM+Plex+Mono:wght@400;500;600&family=IBM+Plex+Sans:wght@300;400;500;600&display=swap" rel="stylesheet">
<style>
  :root {
    --ink: #0d1117;
    --paper: #f5f0e8;
    --ledger: #e8e0cc;
    --accent: #c0392b;
    --accent2: #2c6e49;
    --muted: #6b5e4e;
    --rule: #b8a898;
  }
  * { box-sizing: border-box; }
  body {
    background: var(--paper);
    color: var(--ink);
    font-family: 'IBM Plex Sans', sans-serif;
    margin: 0;
    min-height: 100vh;
  }
  .card {
    background: rgba(255,255,255,0.7);
    border: 1px solid var(--ledger);
    border-left: 4px solid var(--ink);
    padding: 24px;
  }
  .field { margin-bottom: 10px; }
  .field-label {
    font-family: 'IBM Plex Mono', monospace;
    font-size: 0.6rem;
    font-weight: 600;
    letter-spacing: 0.1em;
    text-transform: uppercase;
    color: var(--muted);
    display: block;
    margin-bottom: 2px;
  }
  input, select, textarea {
    background: white;
    border: 1px solid var(--rule);
    border-bottom: 2px solid var(--ink);
    padding: 6px 8px;
    font-family: 'IBM Plex Mono', monospace;
    font-size: 0.85rem;
    width: 100%;
    outline: none;
  }
  input:focus, select:focus, textarea:focus { border-bottom-color: var(--accent); }
  .btn {
    font-family: 'IBM Plex Mono', monospace;
    font-weight: 600;
    font-size: 0.75rem;
    letter-spacing: 0.08em;
    padding: 8px 14px;
    border: 2px solid var(--ink);
    background: white;
    cursor: pointer;
    text-transform: uppercase;
  }
  .btn-primary { background: var(--ink); color: white; }
  .btn-primary:hover { background: var(--accent); border-color: var(--accent); }
  .btn-danger { color: var(--accent); border-color: var(--accent); }
  .btn-danger:hover { background: var(--accent); color: white; }
  .btn-success { background: var(--accent2); color: white; border-color: var(--accent2); }
  .section-header {
    font-family: 'IBM Plex Mono', monospace;
    font-size: 0.7rem;
    font-weight: 600;
    letter-spacing: 0.18em;
    text-transform: uppercase;
    color: var(--muted);
    border-bottom: 1px solid var(--rule);
    padding-bottom: 4px;
    margin: 16px 0 12px;
  }
  .paragraph { display: flex; gap: 8px; align-items: flex-start; margin-bottom: 8px; }
  #preview {
    background: white;
    border: 1px solid var(--ledger);
    font-family: "Times New Roman", serif;
    font-size: 12pt;
    line-height: 1.7;
    white-space: pre-wrap;
    padding: 32px;
    min-height: 600px;
    margin: 0;
  }
  #toast {
    position: fixed; bottom: 24px; right: 24px;
    background: var(--ink); color: white;
    font-family: 'IBM Plex Mono', monospace; font-size: 0.8rem;
    padding: 10px 16px; opacity: 0; transition: opacity 0.2s;
  }
  #toast.show { opacity: 1; }
</style>
</head>
<body>
<div style="max-width:1200px;margin:0 auto;padding:32px 24px;">
<h1 style="font-family:'IBM Plex Mono',monospace;font-size:1.5rem;font-weight:600;margin:0 0 24px;">Penjana Surat Rasmi</h1>
{{template "content" .}}
</div>
<div id="toast"></div>
<script>
function toast(msg) {
  var t = document.getElementById('toast');
  t.textContent = msg;
  t.classList.add('show');
  setTimeout(function () { t.classList.remove('show'); }, 2000);
}
function copyLetter(btn) {
  var text = document.getElementById('preview').textContent.trim();
  if (!text) { toast(btn.dataset.empty); return; }
  navigator.clipboard.writeText(text).then(function () { toast(btn.dataset.done); });
}
function shareLetter(btn) {
  fetch('/share', { method: 'POST', body: new FormData(btn.form) })
    .then(function (r) { return r.json(); })
    .then(function (d) { return navigator.clipboard.writeText(d.url).then(function () { toast(d.message); }); });
}
</script>
</body>
</html>`))

// The shell posts the URL fragment on load; the server decides between the
// link and the saved snapshot.
var indexTmpl = template.Must(template.Must(baseTmpl.Clone()).Parse(`
{{define "content"}}
<div id="app" hx-post="/state" hx-trigger="load" hx-swap="outerHTML"
     hx-vals='js:{fragment: location.hash.slice(1)}'>
  <div class="card">Memuatkan…</div>
</div>
{{end}}`))

var appTmpl = template.Must(template.New("app").Funcs(funcs).Parse(`
<div id="app" style="display:grid;grid-template-columns:minmax(0,1fr) minmax(0,1.2fr);gap:32px;align-items:start;">
<form id="letter-form" class="card" hx-post="/preview" hx-target="#preview" hx-swap="outerHTML"
      hx-trigger="input delay:300ms, change">
  <div style="display:grid;grid-template-columns:1fr 2fr;gap:12px;">
    <div class="field">
      <label class="field-label" for="lang">Bahasa</label>
      <select id="lang" name="lang">
        {{range .Langs}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}
      </select>
    </div>
    <div class="field">
      <label class="field-label" for="jenis">Jenis surat</label>
      <select id="jenis" name="jenis" hx-post="/preview?full=1" hx-target="#app" hx-swap="outerHTML"
              hx-trigger="change consume">
        {{range .Types}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}
      </select>
    </div>
  </div>
  {{$active := .Context}}
  {{range .Groups}}
  <fieldset data-context="{{.Context}}" style="border:none;padding:0;margin:0;"{{if hidden .Context $active}} hidden{{end}}>
    <div class="section-header">{{.Title}}</div>
    {{range .Fields}}
    <div class="field">
      <label class="field-label" for="{{.Name}}">{{.Label}}</label>
      {{if eq .Kind "textarea"}}<textarea id="{{.Name}}" name="{{.Name}}" rows="2">{{.Value}}</textarea>
      {{else}}<input id="{{.Name}}" name="{{.Name}}" type="{{.Kind}}" value="{{.Value}}">{{end}}
    </div>
    {{end}}
  </fieldset>
  {{end}}
  <div class="section-header">Perenggan tambahan</div>
  {{range $i, $p := .Paragraphs}}
  <div class="paragraph">
    <textarea id="perenggan-{{itoa $i}}" name="perenggan[]" rows="3">{{$p}}</textarea>
    {{if $i}}<button type="button" class="btn btn-danger" hx-post="/preview?full=1&drop={{itoa $i}}"
      hx-target="#app" hx-swap="outerHTML">×</button>{{end}}
  </div>
  {{end}}
  <button type="button" class="btn" hx-post="/preview?full=1&add=1" hx-target="#app" hx-swap="outerHTML">+ Tambah perenggan</button>

  <div style="display:flex;flex-wrap:wrap;gap:8px;margin-top:24px;">
    <button type="button" class="btn btn-primary" onclick="copyLetter(this)"
            data-empty="{{.Messages.NothingToCopy}}" data-done="{{.Messages.Copied}}">Salin</button>
    <button type="submit" class="btn btn-success" formaction="/pdf" formmethod="post">PDF</button>
    <button type="submit" class="btn" formaction="/print" formmethod="post" formtarget="_blank">Cetak</button>
    <button type="button" class="btn" onclick="shareLetter(this)">Kongsi pautan</button>
    <button type="button" class="btn btn-danger" hx-post="/reset" hx-target="#app" hx-swap="outerHTML"
            hx-confirm="{{.Messages.ResetConfirm}}">Reset</button>
  </div>
</form>
{{template "preview" .Text}}
</div>
{{define "preview"}}<pre id="preview">{{.}}</pre>{{end}}`))

var printTmpl = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>
  body { font-family: "Times New Roman", serif; white-space: pre-wrap; line-height: 1.7; font-size: 12pt; padding: 24px; }
</style>
</head>
<body>{{.Text}}<script>window.focus(); window.print();</script></body>
</html>`))

// Index is the page shell.
func Index() templ.Component {
	return templ.FromGoHTML(indexTmpl, nil)
}

// App is the form and preview, swapped in as one fragment.
func App(v AppView) templ.Component {
	return templ.FromGoHTML(appTmpl, v)
}

// Preview is the rendered letter alone.
func Preview(text string) templ.Component {
	return templ.FromGoHTML(appTmpl.Lookup("preview"), text)
}

// Print is a standalone page that opens the print dialog.
func Print(title, text string) templ.Component {
	return templ.FromGoHTML(printTmpl, struct{ Title, Text string }{title, text})
}
