package mdswagger

import (
	"strings"
	"text/template"
)

// fragmentTemplate is the markup substituted for a marker. The surrounding
// blank lines keep it a raw HTML block in Markdown.
var fragmentTemplate = template.Must(template.New("swagger").Parse(`

<link type="text/css" rel="stylesheet" href="{{.CSS}}">
<div id="{{.ID}}"></div>
<script src="{{.JavaScript}}" charset="UTF-8"></script>
<script>
    SwaggerUIBundle({
      url: '{{.URL}}',
      dom_id: '#{{.ID}}',
    })
</script>

`))

// fragmentData holds the values interpolated into fragmentTemplate.
type fragmentData struct {
	CSS        string
	JavaScript string
	URL        string
	ID         string
}

// renderFragment returns the viewer markup for url.
func renderFragment(s Settings, url, id string) string {
	var b strings.Builder
	// Executing into a strings.Builder with plain string fields cannot fail.
	_ = fragmentTemplate.Execute(&b, fragmentData{
		CSS:        s.CSS,
		JavaScript: s.JavaScript,
		URL:        url,
		ID:         id,
	})
	return b.String()
}
