// Package rendering provides functionality to render life grids as HTML documents.
package rendering

import (
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/jonathan/lifegrid/internal/layout"
	"github.com/jonathan/lifegrid/internal/types"
)

//go:embed templates/grid.html.tmpl
var defaultTemplate string

// TemplateData represents the data structure passed to the HTML template
type TemplateData struct {
	Title          string
	ContainerWidth float64
	BasePadding    float64
	Rows           []RowData
}

// RowData is one rendered row of boxes
type RowData []BoxData

// BoxData represents a single box with its resolved visual properties
type BoxData struct {
	Class   string // birthday, event or week
	Label   string
	Tooltip string
	Color   string
	Width   float64
}

// RenderHTML renders the packed grid as a standalone HTML document. An empty
// templatePath uses the embedded default template.
func RenderHTML(rows []types.Row, colorMap map[string]string, constants types.ResponsiveConstants, title, templatePath string) (string, error) {
	tmpl, err := parseTemplate(templatePath)
	if err != nil {
		return "", err
	}

	data := buildTemplateData(rows, colorMap, constants, title)

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}

	return result.String(), nil
}

// parseTemplate parses the template override at templatePath, or the embedded
// default when the path is empty.
func parseTemplate(templatePath string) (*template.Template, error) {
	content := defaultTemplate
	if templatePath != "" {
		raw, err := os.ReadFile(templatePath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, &TemplateError{
					Message: fmt.Sprintf("template file not found: %s", templatePath),
					Cause:   err,
				}
			}
			return nil, &TemplateError{
				Message: fmt.Sprintf("failed to read template file: %s", templatePath),
				Cause:   err,
			}
		}
		content = string(raw)
	}

	tmpl, err := template.New("grid").Parse(content)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}

	return tmpl, nil
}

// buildTemplateData flattens the packed rows into renderable box data with
// widths and colors resolved.
func buildTemplateData(rows []types.Row, colorMap map[string]string, constants types.ResponsiveConstants, title string) *TemplateData {
	rowData := make([]RowData, 0, len(rows))
	for _, row := range rows {
		boxes := make(RowData, 0, len(row))
		for _, box := range row {
			boxes = append(boxes, BoxData{
				Class:   boxClass(box.Kind),
				Label:   box.Label,
				Tooltip: box.Tooltip,
				Color:   colorMap[box.Date],
				Width:   layout.BoxWidth(box, constants),
			})
		}
		rowData = append(rowData, boxes)
	}

	return &TemplateData{
		Title:          title,
		ContainerWidth: constants.ContainerWidth,
		BasePadding:    constants.BasePadding,
		Rows:           rowData,
	}
}

func boxClass(kind types.BoxKind) string {
	switch kind {
	case types.BoxBirthday:
		return "birthday"
	case types.BoxEvent:
		return "event"
	default:
		return "week"
	}
}
