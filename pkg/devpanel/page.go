package devpanel

import "html/template"

var pageTemplate = template.Must(template.New("panel").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>minivdom dev panel</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
.columns { display: flex; gap: 1rem; }
.columns pre { flex: 1; background: #f4f4f4; padding: .5rem; overflow: auto; }
#debug-log { font-family: monospace; font-size: 12px; max-height: 20rem; overflow: auto; }
.text-red { color: red; }
</style>
</head>
<body>
<h1>minivdom</h1>
<div id="controls">
{{range .Actions}}<button data-action="{{.}}">{{.}}</button>
{{end}}</div>
<h2>Render target</h2>
<div id="render-container">{{.HTML}}</div>
<h2>Trees</h2>
<div class="columns"><pre id="old-vnode">null</pre><pre id="new-vnode">null</pre></div>
<h2>Mutations</h2>
<div id="debug-log">{{range .Entries}}<div>[{{.Time.Format "15:04:05"}}] {{.Message}}</div>
{{end}}</div>
<script>
const log = document.getElementById("debug-log");
const container = document.getElementById("render-container");
async function refreshTrees() {
  const res = await fetch("/api/trees");
  const trees = await res.json();
  document.getElementById("old-vnode").textContent = JSON.stringify(trees.previous, null, 2);
  document.getElementById("new-vnode").textContent = JSON.stringify(trees.current, null, 2);
}
document.querySelectorAll("[data-action]").forEach(function (btn) {
  btn.addEventListener("click", async function () {
    const res = await fetch("/api/actions/" + btn.dataset.action, { method: "POST" });
    const body = await res.json();
    if (body.html !== undefined) { container.innerHTML = body.html; }
    refreshTrees();
  });
});
const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
ws.onmessage = function (ev) {
  const entry = JSON.parse(ev.data);
  const item = document.createElement("div");
  item.textContent = "[" + new Date(entry.time).toLocaleTimeString() + "] " + entry.message;
  log.prepend(item);
  while (log.children.length > 50) { log.removeChild(log.lastChild); }
};
refreshTrees();
</script>
</body>
</html>
`))
