// Package preview renders a rough-cut plan as an HTML summary and opens
// it in a visible browser tab, adapted from the headless automation in
// andrewarrow-cutlass's browser package for an interactive use case: a
// human reviewing a generated edit before trusting it.
package preview

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"

	"roughcut/internal/model"
)

// Session wraps a visible (non-headless) browser tab used to preview a
// rendered rough-cut report. Unlike a scraping session, Close does not
// tear the tab down immediately; the caller decides when review is done.
type Session struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
}

// Open launches a visible browser and navigates it to htmlPath.
func Open(htmlPath string) (*Session, error) {
	absPath, err := filepath.Abs(htmlPath)
	if err != nil {
		return nil, fmt.Errorf("resolve preview path: %w", err)
	}

	l := launcher.New().Headless(false)
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Cleanup()
		return nil, fmt.Errorf("connect to browser: %w", err)
	}

	page, err := browser.Page(rod.PageInfo{})
	if err != nil {
		browser.Close()
		l.Cleanup()
		return nil, fmt.Errorf("open page: %w", err)
	}
	page = page.Timeout(30 * time.Second)

	if err := page.Navigate("file://" + absPath); err != nil {
		browser.Close()
		l.Cleanup()
		return nil, fmt.Errorf("navigate to %s: %w", absPath, err)
	}
	if err := page.WaitLoad(); err != nil {
		browser.Close()
		l.Cleanup()
		return nil, fmt.Errorf("wait for preview to load: %w", err)
	}

	return &Session{launcher: l, browser: browser, page: page}, nil
}

// Close tears down the browser session.
func (s *Session) Close() {
	if s.page != nil {
		s.page.Close()
	}
	if s.browser != nil {
		s.browser.Close()
	}
	if s.launcher != nil {
		s.launcher.Cleanup()
	}
}

const reportTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Rough Cut Preview: {{.ProjectName}}</title>
<style>
body { font-family: -apple-system, sans-serif; margin: 2em; background: #111; color: #eee; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; margin-top: 1em; }
td, th { border-bottom: 1px solid #333; padding: 0.4em 0.6em; text-align: left; font-size: 0.9em; }
th { color: #9cf; }
.removed { color: #f88; }
</style>
</head>
<body>
<h1>{{.ProjectName}} &mdash; {{.Style}}</h1>
<p>{{len .Segments}} segments, {{.TotalDuration}}s total</p>
<table>
<tr><th>#</th><th>Source</th><th>In</th><th>Out</th><th>Topic</th><th>Type</th><th>Text</th></tr>
{{range $i, $seg := .Segments}}
<tr>
<td>{{inc $i}}</td>
<td>{{$seg.SourceFile}}</td>
<td>{{printf "%.2f" $seg.StartTime}}</td>
<td>{{printf "%.2f" $seg.EndTime}}</td>
<td>{{$seg.Topic}}</td>
<td>{{$seg.SegmentType}}</td>
<td>{{$seg.Text}}</td>
</tr>
{{end}}
</table>
{{if .Removed}}
<h2>Removed footage</h2>
<table>
<tr><th>Source</th><th>Reason</th><th>Score</th></tr>
{{range .Removed}}
<tr class="removed"><td>{{.Segment.SourceFile}}</td><td>{{.Reason}}</td><td>{{printf "%.2f" .OriginalScore}}</td></tr>
{{end}}
</table>
{{end}}
</body>
</html>
`

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(reportTemplate))

type reportData struct {
	ProjectName   string
	Style         string
	TotalDuration string
	Segments      []model.Segment
	Removed       []model.RemovedSegment
}

// RenderPlan writes plan as an HTML report to outputPath, returning the
// path on success.
func RenderPlan(outputPath, projectName string, plan *model.RoughCutPlan) (string, error) {
	data := reportData{
		ProjectName:   projectName,
		Style:         plan.Style,
		TotalDuration: trimmedFloat(plan.TotalDuration),
		Segments:      plan.Segments,
		Removed:       plan.RemovedSegments,
	}

	var buf strings.Builder
	if err := reportTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render preview report: %w", err)
	}
	if dir := filepath.Dir(outputPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create preview directory: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, []byte(buf.String()), 0o644); err != nil {
		return "", fmt.Errorf("write preview report: %w", err)
	}
	return outputPath, nil
}

func trimmedFloat(f float64) string {
	return fmt.Sprintf("%.1f", f)
}
