package modal

import (
	"html"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-dialog/pkg/widget"
)

// ChromeClass is a typed identifier for the semantic chrome CSS classes the
// widget emits. Stylesheets hook onto these; the widget ships no CSS.
type ChromeClass string

const (
	ClassDialog  ChromeClass = "dialog"
	ClassNotice  ChromeClass = "dialog-notice"
	ClassHeader  ChromeClass = "dialog-header"
	ClassTitle   ChromeClass = "dialog-title"
	ClassClose   ChromeClass = "dialog-close"
	ClassLead    ChromeClass = "dialog-lead"
	ClassBody    ChromeClass = "dialog-body"
	ClassField   ChromeClass = "dialog-field"
	ClassLabel   ChromeClass = "dialog-label"
	ClassErrors  ChromeClass = "dialog-errors"
	ClassActions ChromeClass = "dialog-actions"
	ClassConfirm ChromeClass = "dialog-confirm"
	ClassCancel  ChromeClass = "dialog-cancel"
)

// view is the render-time snapshot handed to the chrome builder or, when a
// template override is configured, to the template.
type view struct {
	cfg      widget.Config
	messages []string
}

func (w *Widget) renderDialog(v view) (string, error) {
	if w.templates != nil && w.chromeTemplate != "" {
		return w.renderDialogTemplate(v)
	}
	return w.buildDialogMarkup(v), nil
}

func (w *Widget) buildDialogMarkup(v view) string {
	cfg := v.cfg

	var builder strings.Builder
	builder.Grow(1024)

	if style := cssVarsStyle(w.theme); style != "" {
		builder.WriteString("<style>\n")
		builder.WriteString(style)
		builder.WriteString("\n</style>\n")
	}

	builder.WriteString(`<div class="`)
	builder.WriteString(string(ClassDialog))
	if cfg.Severity != "" {
		builder.WriteString(` dialog-`)
		builder.WriteString(html.EscapeString(string(cfg.Severity)))
	}
	builder.WriteString(`" role="dialog" aria-modal="true">`)
	builder.WriteByte('\n')

	builder.WriteString(`  <div class="`)
	builder.WriteString(string(ClassHeader))
	builder.WriteString("\">\n")
	if title := strings.TrimSpace(cfg.Title); title != "" {
		builder.WriteString(`    <h2 class="`)
		builder.WriteString(string(ClassTitle))
		builder.WriteString(`">`)
		builder.WriteString(html.EscapeString(title))
		builder.WriteString("</h2>\n")
	}
	if cfg.ShowClose {
		builder.WriteString(`    <button type="button" class="`)
		builder.WriteString(string(ClassClose))
		builder.WriteString(`" data-action="close" aria-label="Close">&times;</button>`)
		builder.WriteByte('\n')
	}
	builder.WriteString("  </div>\n")

	if lead := w.sanitizeLead(cfg.Lead); lead != "" {
		builder.WriteString(`  <div class="`)
		builder.WriteString(string(ClassLead))
		builder.WriteString(`">`)
		builder.WriteString(lead)
		builder.WriteString("</div>\n")
	}

	if len(v.messages) > 0 {
		builder.WriteString(`  <div class="`)
		builder.WriteString(string(ClassErrors))
		builder.WriteString(`" role="alert">`)
		builder.WriteByte('\n')
		for _, message := range v.messages {
			builder.WriteString(`    <p>`)
			builder.WriteString(html.EscapeString(message))
			builder.WriteString("</p>\n")
		}
		builder.WriteString("  </div>\n")
	}

	if len(cfg.Fields) > 0 {
		builder.WriteString(`  <div class="`)
		builder.WriteString(string(ClassBody))
		builder.WriteString("\">\n")
		for _, d := range cfg.Fields {
			block := renderField(d, d.ID == cfg.AutoFocus)
			for _, line := range strings.Split(strings.TrimRight(block, "\n"), "\n") {
				builder.WriteString("  ")
				builder.WriteString(line)
				builder.WriteByte('\n')
			}
		}
		builder.WriteString("  </div>\n")
	}

	builder.WriteString(`  <div class="`)
	builder.WriteString(string(ClassActions))
	builder.WriteString("\">\n")
	builder.WriteString(`    <button type="button" class="`)
	builder.WriteString(string(ClassConfirm))
	builder.WriteString(`" data-action="confirm">`)
	builder.WriteString(html.EscapeString(cfg.ConfirmLabel))
	builder.WriteString("</button>\n")
	if cfg.ShowCancel {
		builder.WriteString(`    <button type="button" class="`)
		builder.WriteString(string(ClassCancel))
		builder.WriteString(`" data-action="cancel">`)
		builder.WriteString(html.EscapeString(cfg.CancelLabel))
		builder.WriteString("</button>\n")
	}
	builder.WriteString("  </div>\n")

	builder.WriteString("</div>\n")
	return builder.String()
}

func (w *Widget) renderDialogTemplate(v view) (string, error) {
	fieldsMarkup := make([]string, 0, len(v.cfg.Fields))
	for _, d := range v.cfg.Fields {
		fieldsMarkup = append(fieldsMarkup, renderField(d, d.ID == v.cfg.AutoFocus))
	}

	payload := map[string]any{
		"title":        v.cfg.Title,
		"severity":     string(v.cfg.Severity),
		"lead":         w.sanitizeLead(v.cfg.Lead),
		"fields":       fieldsMarkup,
		"errors":       v.messages,
		"confirmLabel": v.cfg.ConfirmLabel,
		"cancelLabel":  v.cfg.CancelLabel,
		"showCancel":   v.cfg.ShowCancel,
		"showClose":    v.cfg.ShowClose,
		"cssVars":      cssVarsStyle(w.theme),
	}
	return w.templates.RenderTemplate(w.chromeTemplate, payload)
}

func buildNoticeMarkup(cfg widget.NoticeConfig) string {
	var builder strings.Builder

	builder.WriteString(`<div class="`)
	builder.WriteString(string(ClassNotice))
	builder.WriteString(`" role="status" aria-live="polite">`)
	builder.WriteByte('\n')
	if title := strings.TrimSpace(cfg.Title); title != "" {
		builder.WriteString(`  <p class="`)
		builder.WriteString(string(ClassTitle))
		builder.WriteString(`">`)
		builder.WriteString(html.EscapeString(title))
		builder.WriteString("</p>\n")
	}
	builder.WriteString(`  <button type="button" class="`)
	builder.WriteString(string(ClassClose))
	builder.WriteString(`" data-action="close">`)
	builder.WriteString(html.EscapeString(cfg.CloseLabel))
	builder.WriteString("</button>\n")
	builder.WriteString("</div>\n")
	return builder.String()
}

// cssVarsStyle derives a :root block from the theme tokens so stylesheets
// can pick the variables up without extra wiring.
func cssVarsStyle(cfg *theme.RendererConfig) string {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(cfg.CSSVars))
	for key := range cfg.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(cfg.CSSVars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
