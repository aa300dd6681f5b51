package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/heartmarshall/personalens/internal/domain"
)

// htmlPage is the standalone persona report page. Maps range in sorted key
// order, which html/template guarantees for string keys.
const htmlPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Name}}</title>
<style>
    body { font-family: "Segoe UI", Arial, sans-serif; margin: 0; background: #f4f4f4; color: #222; }
    .page { max-width: 900px; margin: 24px auto; background: #fff; padding: 32px; border-radius: 8px; }
    h1 { border-bottom: 3px solid #ff4500; padding-bottom: 8px; }
    h2 { color: #ff4500; margin-top: 28px; }
    .trait-box { display: inline-block; background: #eef; border: 1px solid #99c; border-radius: 4px; padding: 2px 10px; margin: 2px; }
    .subreddit-tag { display: inline-block; background: #ffe8dd; border-radius: 4px; padding: 2px 10px; margin: 2px; }
    .bar-container { background: #ddd; border-radius: 4px; height: 16px; width: 240px; display: inline-block; vertical-align: middle; }
    .bar-fill { background: #ff4500; border-radius: 4px; height: 16px; }
    .slider-container { background: #ddd; border-radius: 8px; height: 8px; width: 240px; display: inline-block; position: relative; vertical-align: middle; margin: 0 8px; }
    .slider-thumb { background: #ff4500; border-radius: 50%; width: 16px; height: 16px; position: absolute; top: -4px; }
    .slider-label { display: inline-block; width: 100px; font-size: 12px; font-weight: bold; }
    .motivation-label { display: inline-block; width: 140px; }
    .quote { font-style: italic; font-size: 18px; border-left: 4px solid #ff4500; padding-left: 16px; margin: 16px 0; }
    .list-item { padding: 2px 0; }
    .meta { color: #777; font-size: 12px; margin-top: 32px; }
</style>
</head>
<body>
<div class="page">
    <h1>{{.Name}}</h1>

    <h2>Basic Information</h2>
    <p>Age Range: {{.AgeRange}}<br>
       Occupation: {{.OccupationCategory}}<br>
       Status: {{.Status}}<br>
       Location Type: {{.LocationType}}<br>
       Tier: {{.Tier}}<br>
       Archetype: {{.Archetype}}</p>

    <h2>Personality Traits</h2>
    {{range .PersonalityTraits}}<span class="trait-box">{{.}}</span>{{else}}<p>None specified</p>{{end}}

    <h2>Motivations</h2>
    {{range $key, $value := .Motivations}}
    <div><span class="motivation-label">{{$key}}</span>
        <span class="bar-container"><span class="bar-fill" style="width: {{motivationWidth $value}}%; display: block;"></span></span></div>
    {{else}}<p>None specified</p>{{end}}

    <h2>Personality Dimensions</h2>
    {{range $key, $value := .PersonalityScores}}
    <div><span class="slider-label">{{poleLeft $key}}</span><span class="slider-container"><span class="slider-thumb" style="left: {{sliderPos $value}}%;"></span></span><span class="slider-label">{{poleRight $key}}</span></div>
    {{else}}<p>None specified</p>{{end}}

    <h2>Behavior &amp; Habits</h2>
    {{range .BehaviorHabits}}<div class="list-item">{{.}}</div>{{else}}<p>None specified</p>{{end}}

    <h2>Frustrations</h2>
    {{range .Frustrations}}<div class="list-item">{{.}}</div>{{else}}<p>None specified</p>{{end}}

    <h2>Goals &amp; Needs</h2>
    {{range .GoalsNeeds}}<div class="list-item">{{.}}</div>{{else}}<p>None specified</p>{{end}}

    <h2>Representative Quote</h2>
    <div class="quote">&ldquo;{{.Quote}}&rdquo;</div>

    {{with .Profile}}
    <h2>Profile Data</h2>
    <p>Username: {{.Username}}<br>
       Account Age: {{.AccountAge}}<br>
       Post Karma: {{.Karma.Post}}<br>
       Comment Karma: {{.Karma.Comment}}<br>
       Total Karma: {{.Karma.Total}}<br>
       Posts: {{.TotalPosts}} &middot; Comments: {{.TotalComments}} &middot; Avg Score: {{printf "%.1f" .AvgScore}}<br>
       Posting Frequency: {{.PostingFrequency}}</p>

    <h2>Active Communities</h2>
    {{range .TopCommunities}}<span class="subreddit-tag">r/{{.Name}} ({{.Count}})</span>{{else}}<p>None</p>{{end}}

    <h2>Social Links</h2>
    {{if .SocialLinks}}<ul>{{range .SocialLinks}}<li><a href="{{.}}" target="_blank">{{.}}</a></li>{{end}}</ul>{{else}}<p>None</p>{{end}}
    {{end}}

    <h2>Citations</h2>
    {{range $category, $sources := .Citations}}
    <h3>{{$category}}</h3>
    <ul>{{range $sources}}<li>{{.}}</li>{{end}}</ul>
    {{else}}<p>No citations available</p>{{end}}

    <div class="meta">Generated on {{.GeneratedAt.Format "2006-01-02 15:04:05"}}{{if .Model}} by {{.Model}}{{end}}</div>
</div>
</body>
</html>
`

var htmlTemplate = template.Must(template.New("persona").Funcs(template.FuncMap{
	"motivationWidth": func(value int) int {
		if value < 0 {
			return 0
		}
		if value > 10 {
			return 100
		}
		return value * 10
	},
	"sliderPos": func(value float64) int {
		if value < 0 {
			return 0
		}
		if value > 1 {
			return 100
		}
		return int(value * 100)
	},
	"poleLeft": func(key string) string {
		left, _ := axisPoles(key)
		return left
	},
	"poleRight": func(key string) string {
		_, right := axisPoles(key)
		return right
	},
}).Parse(htmlPage))

// HTML renders the persona as a standalone HTML page.
func HTML(p *domain.Persona) (string, error) {
	var b strings.Builder
	if err := htmlTemplate.Execute(&b, p); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return b.String(), nil
}
