package mailtmpl

import (
	"bytes"
	"embed"
	"html/template"
	"strings"

	"order-followup/internal/domain/batchemail"
	"order-followup/internal/pkg/errs"
)

//go:embed templates/*.html
var templateFS embed.FS

var ErrUnknownTemplate = errs.New("unknown email template")

type Data struct {
	FirstName      string
	TrackingNumber string
}

// Greeting is what follows "Hi" in every template.
func (d Data) Greeting() string {
	if name := strings.TrimSpace(d.FirstName); name != "" {
		return name
	}
	return "there"
}

type Rendered struct {
	Subject string
	HTML    string
}

type Renderer struct {
	templates map[batchemail.EmailType]*template.Template
}

// NewRenderer parses every email type's template up front so a missing file fails at startup.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: make(map[batchemail.EmailType]*template.Template)}
	for _, t := range batchemail.EmailTypes() {
		tmpl, err := template.New(t.String()).ParseFS(templateFS, "templates/layout.html", "templates/"+t.String()+".html")
		if err != nil {
			return nil, errs.Wrapf(err, "parse template %s", t)
		}
		r.templates[t] = tmpl
	}
	return r, nil
}

func (r *Renderer) Render(emailType batchemail.EmailType, data Data) (Rendered, error) {
	tmpl, ok := r.templates[emailType]
	if !ok {
		return Rendered{}, ErrUnknownTemplate
	}

	var subject bytes.Buffer
	if err := tmpl.ExecuteTemplate(&subject, "subject", data); err != nil {
		return Rendered{}, errs.Wrap(err, "render subject")
	}
	var body bytes.Buffer
	if err := tmpl.ExecuteTemplate(&body, "layout", data); err != nil {
		return Rendered{}, errs.Wrap(err, "render body")
	}
	return Rendered{
		Subject: strings.TrimSpace(subject.String()),
		HTML:    body.String(),
	}, nil
}
