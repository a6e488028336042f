package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"sort"
	"strconv"

	"healieve/health-app/internal/domain"
)

// measurement is a sorted (body part, cm) pair for the profile panel.
type measurement struct {
	Part string
	Cm   float64
}

// templateData adapts a ReportModel for the document template.
type templateData struct {
	*domain.ReportModel
	Measurements []measurement
}

var docTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"dash":    orDash,
	"raw":     func(s string) template.HTML { return template.HTML(s) },
	"jsonjs":  jsonJS,
	"safeurl": safeURL,
	"join":    joinStrings,
}).Parse(documentHTML))

// BuildHTML serializes a fully-resolved ReportModel into the report document.
func BuildHTML(model *domain.ReportModel) (string, error) {
	data := templateData{ReportModel: model}
	for part, cm := range model.Profile.Measurements {
		data.Measurements = append(data.Measurements, measurement{Part: part, Cm: cm})
	}
	sort.Slice(data.Measurements, func(i, j int) bool {
		return data.Measurements[i].Part < data.Measurements[j].Part
	})

	var buf bytes.Buffer
	if err := docTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// orDash renders a value or the "-" placeholder for anything missing.
func orDash(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "-"
	case string:
		if x == "" {
			return "-"
		}
		return x
	case int:
		if x == 0 {
			return "-"
		}
		return strconv.Itoa(x)
	case float64:
		if x == 0 {
			return "-"
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case *int:
		if x == nil {
			return "-"
		}
		return strconv.Itoa(*x)
	case *float64:
		if x == nil {
			return "-"
		}
		return strconv.FormatFloat(*x, 'f', -1, 64)
	case *domain.MacroPlan:
		if x == nil {
			return "-"
		}
		return fmt.Sprintf("%d/%d/%d%%", x.Percent.Protein, x.Percent.Carbs, x.Percent.Fats)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func jsonJS(v interface{}) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}

// safeurl lets data: URIs through html/template's URL sanitizer. The values
// are produced by the asset resolver, never by user markup.
func safeURL(s *string) template.URL {
	if s == nil {
		return ""
	}
	return template.URL(*s)
}

func joinStrings(vs []string, sep string) string {
	out := ""
	for i, v := range vs {
		if i > 0 {
			out += sep
		}
		out += v
	}
	return out
}
