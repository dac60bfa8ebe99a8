package statusui

import (
	"html/template"

	"roughcut/internal/services"
)

// dashboardTemplate renders services.Status and services.JobDetails as a
// plain auto-refreshing HTML page. a-h/templ would normally be the
// teacher's choice here, but templ requires a `templ generate` codegen
// step this repository cannot run, so the dashboard falls back to
// html/template, which needs none.
const dashboardTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="5">
<title>roughcut status</title>
<style>
body { font-family: -apple-system, sans-serif; margin: 2em; }
table { border-collapse: collapse; margin-bottom: 2em; }
td, th { border: 1px solid #ccc; padding: 0.3em 0.6em; text-align: left; }
.failed { color: #b00; }
</style>
</head>
<body>
<h1>roughcut</h1>

<h2>Queues</h2>
<table>
<tr><th>Watched projects</th><td>{{.Status.WatchedProjects}}</td></tr>
<tr><th>Running</th><td>{{.Status.Running}}</td></tr>
<tr><th>Transcription queue</th><td>{{.Status.QueueSizes.Transcription}}</td></tr>
<tr><th>Rough cut queue</th><td>{{.Status.QueueSizes.RoughCut}}</td></tr>
</table>

<h2>Transcription jobs</h2>
<table>
<tr><th>Pending</th><th>Running</th><th>Completed</th><th>Failed</th></tr>
<tr>
<td>{{.Status.Transcription.Pending}}</td>
<td>{{.Status.Transcription.Running}}</td>
<td>{{.Status.Transcription.Completed}}</td>
<td class="failed">{{.Status.Transcription.Failed}}</td>
</tr>
</table>

<h2>Rough cut jobs</h2>
<table>
<tr><th>Pending</th><th>Running</th><th>Completed</th><th>Failed</th></tr>
<tr>
<td>{{.Status.RoughCut.Pending}}</td>
<td>{{.Status.RoughCut.Running}}</td>
<td>{{.Status.RoughCut.Completed}}</td>
<td class="failed">{{.Status.RoughCut.Failed}}</td>
</tr>
</table>

<h2>Job details</h2>
<table>
<tr><th>Video</th><th>Status</th><th>Transcript</th><th>Error</th></tr>
{{range .Jobs.TranscriptionJobs}}
<tr>
<td>{{.VideoFile}}</td>
<td>{{.Status}}</td>
<td>{{.TranscriptPath}}</td>
<td class="failed">{{.Error}}</td>
</tr>
{{end}}
</table>

<table>
<tr><th>Footage dir</th><th>Style</th><th>Status</th><th>EDL</th><th>Error</th></tr>
{{range .Jobs.RoughCutJobs}}
<tr>
<td>{{.FootageDir}}</td>
<td>{{.Style}}</td>
<td>{{.Status}}</td>
<td>{{.EDLPath}}</td>
<td class="failed">{{.Error}}</td>
</tr>
{{end}}
</table>
</body>
</html>
`

var dashboardTmpl = template.Must(template.New("dashboard").Parse(dashboardTemplate))

type dashboardData struct {
	Status services.Status
	Jobs   services.JobDetails
}
