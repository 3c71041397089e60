package service

import "html/template"

const tableHTMLText = `<html>
<head><meta charset="utf-8"><title>Symbol Table</title></head><body>
<style type="text/css">
body {
  column-count: 6;
  column-width: auto;
  font-family: sans-serif;
}
@media (max-width: 1000px) { body { column-count: 2; } }
td.refs { font-size: 70%; color: gray; }
td.sym { font-size: 150%; }
</style>
<h1>Symbol table ({{len .}} entries)</h1>

<table>
<tr>
  <th>#</th>
  <th>Symbol</th>
  <th>Code points</th>
</tr>
{{range .}}<tr>
  <td>{{.Index}}</td>
  <td class=sym>{{.Symbol}}</td>
  <td class=refs><tt>{{.Refs}}</tt></td>
</tr>{{end}}
</table>
</body></html>
`

var tableHTML = template.Must(template.New("table").Parse(tableHTMLText))
