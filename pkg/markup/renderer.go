// Package markup defines the template seam widgets use for chrome
// overrides. The interface mirrors the github.com/goliatone/go-template
// engine contract so an existing engine instance can be plugged in
// directly; a pongo2-backed adapter lives in markup/gotemplate.
package markup

import "io"

// TemplateRenderer renders named or inline templates into markup strings.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
