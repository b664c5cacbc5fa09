package render

import (
	"bytes"
	"html/template"
	"io"

	"chatrender/internal/model"
)

// RenderList renders every message in order, one item per message
func (r *Registry) RenderList(messages []model.Message, viewer ViewerID) []Item {
	items := make([]Item, 0, len(messages))
	for _, m := range messages {
		var key int
		if !isNil(m) {
			key = m.MessageID()
		}
		items = append(items, Item{Key: key, Node: r.Dispatch(m, viewer)})
	}
	return items
}

// RenderList renders messages using the default registry
func RenderList(messages []model.Message, viewer ViewerID) []Item {
	return defaultRegistry.RenderList(messages, viewer)
}

var listTemplate = template.Must(template.New("list").Parse(
	`<ul class="message-list">` +
		`{{range .}}<li data-key="{{.Key}}">{{template "item" .Node}}</li>{{end}}` +
		`</ul>` +
		`{{define "item"}}<div class="{{.ContainerClass}}">` +
		`{{if eq .Source "user"}}<img class="message__user-avatar" src="{{.Avatar}}" alt="">{{end}}` +
		`{{if .ContentClass}}<div class="{{.ContentClass}}">{{template "content" .Content}}</div>` +
		`{{else}}{{template "content" .Content}}{{end}}` +
		`</div>{{end}}` +
		`{{define "content"}}{{if .Image}}<img src="{{.Image}}" alt="">` +
		`{{else if .Paragraph}}<p>{{.Text}}</p>{{else}}{{.Text}}{{end}}{{end}}`,
))

// WriteHTML writes items as a message-list fragment
func WriteHTML(w io.Writer, items []Item) error {
	return listTemplate.Execute(w, items)
}

// ListHTML renders messages and returns the HTML fragment
func ListHTML(messages []model.Message, viewer ViewerID) (string, error) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, RenderList(messages, viewer)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
