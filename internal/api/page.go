package api

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"dashboard/internal/api/middleware"
	"dashboard/internal/calendar"
	"dashboard/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageData is the dashboard template input.
type pageData struct {
	*service.Page
	NoteKey string
}

// ParsePageTemplate parses the embedded dashboard template.
func ParsePageTemplate() (*template.Template, error) {
	return template.New("dashboard.html").
		Funcs(template.FuncMap{"fa": calendar.PersianDigits}).
		ParseFS(templateFS, "templates/dashboard.html")
}

// HandleDashboardPage godoc
// @Summary Dashboard page
// @Description Renders the dashboard with every panel loaded. Panels that failed to load are shown empty.
// @Tags dashboard
// @Produce html
// @Success 200 {string} string "HTML page"
// @Failure 500 {string} string "Template error"
// @Router / [get]
func HandleDashboardPage(svc service.DashboardServiceInterface, tmpl *template.Template, noteKey string, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := svc.BuildPage(r.Context())

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, pageData{Page: page, NoteKey: noteKey}); err != nil {
			middleware.Logger(r.Context(), logger).Errorw("Failed to render dashboard", "error", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = buf.WriteTo(w)
	}
}
