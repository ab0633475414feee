package modal

import (
	"html"
	"strconv"
	"strings"

	"github.com/goliatone/go-dialog/pkg/field"
)

const (
	defaultTextareaRows = 5
	defaultTextareaCols = 5
)

// renderField turns one descriptor into its markup block: an optional label
// followed by the control. Three mutually exclusive branches keyed on the
// descriptor type: textarea, select, and text-like inputs for everything
// else. All descriptor text is escaped on the way out.
func renderField(d field.Descriptor, autofocus bool) string {
	var builder strings.Builder
	builder.Grow(256)

	builder.WriteString(`<div class="`)
	builder.WriteString(string(ClassField))
	builder.WriteString(`">`)
	builder.WriteByte('\n')

	if label := strings.TrimSpace(d.Label); label != "" {
		builder.WriteString(`    <label for="`)
		builder.WriteString(html.EscapeString(controlID(d.ID)))
		builder.WriteString(`" class="`)
		builder.WriteString(string(ClassLabel))
		builder.WriteString(`">`)
		builder.WriteString(html.EscapeString(label))
		builder.WriteString("</label>\n")
	}

	builder.WriteString("    ")
	switch d.Type {
	case field.KindTextarea:
		writeTextarea(&builder, d, autofocus)
	case field.KindSelect:
		writeSelect(&builder, d, autofocus)
	default:
		writeInput(&builder, d, autofocus)
	}
	builder.WriteByte('\n')

	builder.WriteString("</div>\n")
	return builder.String()
}

func writeTextarea(builder *strings.Builder, d field.Descriptor, autofocus bool) {
	rows := d.Rows
	if rows <= 0 {
		rows = defaultTextareaRows
	}
	cols := d.Cols
	if cols <= 0 {
		cols = defaultTextareaCols
	}

	builder.WriteString(`<textarea id="`)
	builder.WriteString(html.EscapeString(controlID(d.ID)))
	builder.WriteString(`" name="`)
	builder.WriteString(html.EscapeString(d.Name))
	builder.WriteString(`" rows="`)
	builder.WriteString(strconv.Itoa(rows))
	builder.WriteString(`" cols="`)
	builder.WriteString(strconv.Itoa(cols))
	builder.WriteString(`"`)
	if d.Disabled {
		builder.WriteString(` disabled`)
	}
	if autofocus {
		builder.WriteString(` autofocus`)
	}
	builder.WriteString(`>`)
	builder.WriteString(html.EscapeString(d.Value))
	builder.WriteString(`</textarea>`)
}

func writeSelect(builder *strings.Builder, d field.Descriptor, autofocus bool) {
	builder.WriteString(`<select id="`)
	builder.WriteString(html.EscapeString(controlID(d.ID)))
	builder.WriteString(`" name="`)
	builder.WriteString(html.EscapeString(d.Name))
	builder.WriteString(`"`)
	if d.Disabled {
		builder.WriteString(` disabled`)
	}
	if autofocus {
		builder.WriteString(` autofocus`)
	}
	builder.WriteString(">\n")

	for _, option := range d.Options {
		builder.WriteString(`        <option value="`)
		builder.WriteString(html.EscapeString(option.Value))
		builder.WriteString(`"`)
		if option.Value == d.Value {
			builder.WriteString(` selected`)
		}
		if option.Disabled {
			builder.WriteString(` disabled`)
		}
		builder.WriteString(`>`)
		builder.WriteString(html.EscapeString(option.Text()))
		builder.WriteString("</option>\n")
	}

	builder.WriteString(`    </select>`)
}

func writeInput(builder *strings.Builder, d field.Descriptor, autofocus bool) {
	inputType := string(d.Type)
	if inputType == "" {
		inputType = string(field.KindText)
	}

	builder.WriteString(`<input type="`)
	builder.WriteString(html.EscapeString(inputType))
	builder.WriteString(`" id="`)
	builder.WriteString(html.EscapeString(controlID(d.ID)))
	builder.WriteString(`" name="`)
	builder.WriteString(html.EscapeString(d.Name))
	builder.WriteString(`"`)
	if d.Placeholder != "" {
		builder.WriteString(` placeholder="`)
		builder.WriteString(html.EscapeString(d.Placeholder))
		builder.WriteString(`"`)
	}
	if d.Value != "" {
		builder.WriteString(` value="`)
		builder.WriteString(html.EscapeString(d.Value))
		builder.WriteString(`"`)
	}
	if d.MaxLength > 0 {
		builder.WriteString(` maxlength="`)
		builder.WriteString(strconv.Itoa(d.MaxLength))
		builder.WriteString(`"`)
	}
	if d.Disabled {
		builder.WriteString(` disabled`)
	}
	if autofocus {
		builder.WriteString(` autofocus`)
	}
	builder.WriteString(`>`)
}

func controlID(id string) string {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return ""
	}
	return "dlg-" + trimmed
}
