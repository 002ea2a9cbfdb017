package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/quietroom/quietroom/internal/board/domain"
	"github.com/quietroom/quietroom/pkg/forms"
	"github.com/quietroom/quietroom/pkg/httpx"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// View is the model every page template consumes.
type View struct {
	Title    string
	User     *domain.User
	Errors   forms.Errors
	Messages []domain.Message
	// Form echoes sanitized input when a submission is re-rendered.
	Form map[string]string
	// ErrorMessage is set on the error page only.
	ErrorMessage string
}

type Renderer struct {
	t *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"timestamp": func(ts time.Time) string {
			return ts.Local().Format("Jan 2, 2006 15:04")
		},
	}).ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{t: t}, nil
}

// Render executes the named page template. The output is buffered so a
// template failure can still produce a clean 500 instead of a torn page.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data View) error {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, page, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return err
	}

	httpx.NoCache(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
	return nil
}

// RenderError renders the generic error page used for 401/404/500 responses.
func (r *Renderer) RenderError(w http.ResponseWriter, status int, message string) {
	_ = r.Render(w, status, "error", View{
		Title:        http.StatusText(status),
		ErrorMessage: message,
	})
}
