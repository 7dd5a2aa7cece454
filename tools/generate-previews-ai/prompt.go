package main

import (
	"bytes"
	"fmt"
	"image/color"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/attainapp/assetgen/go/appstore"
)

// promptTemplate frames every request to the model. The creative direction is
// the only part that varies meaningfully between previews; the rest keeps the
// output on brand and in the right format.
const promptTemplate = `Generate an image: App Store preview for "{{ .AppName }}" - an English vocabulary learning app.

Take the provided app screenshot and create a complete marketing image around it.

MUST INCLUDE:
1. The app screenshot I'm providing - display it prominently with rounded corners (60-75% of composition)
2. Main headline: "{{ .Title }}" (Chinese text, large, white)
3. Subtitle: "{{ .Subtitle }}" (Chinese text, smaller, white)

STYLE:
- Primary color: {{ .BrandColor }} (mint green)
- Modern, clean, premium App Store aesthetic
- {{ .Width }}x{{ .Height }} pixels (tall vertical iPhone format)

CREATIVE DIRECTION:
{{ .CreativeDirection | trim }}

Generate the image now.`

var promptTmpl = template.Must(template.New("prompt").Funcs(sprig.TxtFuncMap()).Parse(promptTemplate))

// buildPrompt renders the generation prompt for one preview.
func buildPrompt(preview appstore.Preview, brand appstore.Brand) (string, error) {
	data := struct {
		AppName           string
		Title             string
		Subtitle          string
		BrandColor        string
		Width             int
		Height            int
		CreativeDirection string
	}{
		AppName:           brand.AppName,
		Title:             preview.Title,
		Subtitle:          preview.Subtitle,
		BrandColor:        hexColor(brand.Background),
		Width:             appstore.CanvasWidth,
		Height:            appstore.CanvasHeight,
		CreativeDirection: preview.CreativeDirection,
	}
	var buf bytes.Buffer
	if err := promptTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing prompt template: %w", err)
	}
	return buf.String(), nil
}

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
