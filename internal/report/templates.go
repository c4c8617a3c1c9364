package report

// pageTemplate wraps the rendered report body in a self-contained HTML
// document. The styling mirrors the in-app result view: red/green highlight
// spans, probability pills, and the donut indicator.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
body{font-family:Poppins,Arial,sans-serif;margin:24px;color:#0f172a;line-height:1.7}
h1{margin:0 0 10px}
h2{margin-top:24px}
.meta{color:#334155;margin-bottom:16px}
.pill{display:inline-block;margin-right:8px;padding:6px 10px;border-radius:999px;color:#fff;font-weight:600}
.human-pill{background:#059669}
.ai-pill{background:#dc2626}
.donut{width:160px;height:160px;border-radius:50%;display:flex;align-items:center;justify-content:center;margin:12px 0}
.donut-inner{width:110px;height:110px;border-radius:50%;background:#fff;display:flex;flex-direction:column;align-items:center;justify-content:center;font-size:14px}
.box{border:1px solid #cbd5e1;border-radius:12px;padding:16px;background:#fff}
.ai{background:linear-gradient(135deg,#fee2e2,#fecaca);color:#7f1d1d;padding:4px 8px;border-radius:7px;border-left:3px solid #ef4444}
.human{background:linear-gradient(135deg,#dcfce7,#bbf7d0);color:#14532d;padding:4px 8px;border-radius:7px;border-left:3px solid #10b981}
pre{white-space:pre-wrap;background:#f8fafc;border:1px solid #e2e8f0;border-radius:10px;padding:12px}
.footer{margin-top:28px;color:#64748b;font-size:13px;border-top:1px solid #e2e8f0;padding-top:10px}
</style>
</head>
<body>
{{.Content}}
<div class="footer">{{.Brand}} {{.BrandBy}}</div>
</body>
</html>
`
