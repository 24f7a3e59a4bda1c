package palette

import (
	"bytes"
	"strconv"
	"text/template"
)

// ComponentLabel is the heading prefix used for example components.
const ComponentLabel = "Exemplo componente"

var snippetTemplate = template.Must(template.New("snippet").Parse(`
<div className="p-4 rounded shadow bg-gray-50 border-2 border-[{{.Color}}]">
  <h2 className="text-lg font-bold mb-2 text-[{{.Color}}]">
    {{.Label}}
  </h2>
  <button
    className="px-4 py-2 text-white rounded shadow-md bg-[{{.Color}}]"
  >
    Exemplo de Botão
  </button>
  <div className="mt-2">
    <input
      className="p-2 rounded w-full text-[{{.Color}}] border-[{{.Color}}] border-2"
      placeholder="Exemplo de input"
    />
  </div>
  <div className="mt-2">
    <input
      type="checkbox"
      className="mr-2"
    />
    <label>Exemplo de Checkbox</label>
  </div>
  <div className="mt-2">
    <input
      type="radio"
      className="mr-2"
    />
    <label>Exemplo de Radio</label>
  </div>
</div>
`))

// Snippet is an example UI block rendered for one palette entry. It is a
// snapshot: it keeps its color when the palette later changes.
type Snippet struct {
	Color Color
	Index int
	Text  string
}

// Label returns the 1-based heading for the palette entry at index.
func Label(index int) string {
	return ComponentLabel + " " + strconv.Itoa(index+1)
}

// GenerateSnippet renders the example block for color at the given 0-based
// palette index.
func GenerateSnippet(color Color, index int) Snippet {
	var buf bytes.Buffer
	// The template only reads two string fields, so Execute cannot fail.
	_ = snippetTemplate.Execute(&buf, struct {
		Color Color
		Label string
	}{Color: color, Label: Label(index)})
	return Snippet{Color: color, Index: index, Text: buf.String()}
}
