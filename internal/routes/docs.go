package routes

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/saeid-a/CoachAIBack/internal/config"
)

//go:embed openapi.yaml
var openAPISpec []byte

const docsIndexHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <style>
    body { margin: 0; font-family: Georgia, "Times New Roman", serif; color: #132019; background: #f6f7f4; }
    main { max-width: 1040px; margin: 0 auto; padding: 40px 20px 56px; }
    h1 { margin: 0 0 8px; font-size: 2.4rem; }
    p { color: #536258; line-height: 1.6; }
    table { width: 100%; border-collapse: collapse; margin: 24px 0; background: #fff; }
    th, td { text-align: left; padding: 8px 12px; border-bottom: 1px solid #d8ddd6; font-size: 0.95rem; }
    code, pre { font-family: Menlo, Consolas, monospace; }
    pre { padding: 18px; overflow: auto; border-radius: 12px; background: #0f172a; color: #e2e8f0; font-size: 0.9rem; }
    a { color: #1f6f4a; }
  </style>
</head>
<body>
  <main>
    <h1>{{ .Title }}</h1>
    <p>Raw spec: <a href="/docs/openapi.yaml">/docs/openapi.yaml</a>. Loaded {{ .LoadedAt }}. Development only.</p>
    <table>
      <thead><tr><th>Method</th><th>Path</th></tr></thead>
      <tbody>
      {{ range .Routes }}<tr><td>{{ .Method }}</td><td><code>{{ .Path }}</code></td></tr>
      {{ end }}
      </tbody>
    </table>
    <pre>{{ .Spec }}</pre>
  </main>
</body>
</html>
`

type docsRoute struct {
	Method string
	Path   string
}

type docsPageData struct {
	Title    string
	LoadedAt string
	Routes   []docsRoute
	Spec     string
}

func registerDocsRoutes(app *fiber.App, cfg *config.Config) error {
	if !cfg.DocsEnabled() {
		return nil
	}

	indexTemplate, err := template.New("docs-index").Parse(docsIndexHTML)
	if err != nil {
		return fmt.Errorf("parse docs template: %w", err)
	}

	pageData := docsPageData{
		Title:    "CoachAIBack API Docs",
		LoadedAt: time.Now().UTC().Format(time.RFC3339),
		Routes:   listedRoutes(app),
		Spec:     string(openAPISpec),
	}

	indexHandler := func(c *fiber.Ctx) error {
		applyDocsBaseHeaders(c, fiber.MIMETextHTMLCharsetUTF8)
		c.Set("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'; base-uri 'none'; form-action 'none'; frame-ancestors 'none'")

		var body bytes.Buffer
		if err := indexTemplate.Execute(&body, pageData); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to render api docs")
		}
		return c.Status(fiber.StatusOK).Send(body.Bytes())
	}

	app.Get("/docs", indexHandler)
	app.Get("/docs/openapi.yaml", func(c *fiber.Ctx) error {
		applyDocsBaseHeaders(c, "application/yaml; charset=utf-8")
		c.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'; base-uri 'none'; form-action 'none'")
		c.Set(fiber.HeaderContentDisposition, `inline; filename="openapi.yaml"`)
		return c.Status(fiber.StatusOK).Send(openAPISpec)
	})

	return nil
}

// listedRoutes returns the GET and POST routes registered so far, skipping middleware.
func listedRoutes(app *fiber.App) []docsRoute {
	var out []docsRoute
	for _, r := range app.GetRoutes(true) {
		if r.Method != fiber.MethodGet && r.Method != fiber.MethodPost {
			continue
		}
		out = append(out, docsRoute{Method: r.Method, Path: r.Path})
	}
	return out
}

func applyDocsBaseHeaders(c *fiber.Ctx, contentType string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderCacheControl, "no-store, max-age=0")
	c.Set(fiber.HeaderPragma, "no-cache")
	c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
	c.Set(fiber.HeaderXFrameOptions, "DENY")
	c.Set("Referrer-Policy", "no-referrer")
	c.Set("X-Robots-Tag", "noindex, nofollow")
}
