package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/nightowldevx/lakbayregion8/internal/domain"
	"github.com/nightowldevx/lakbayregion8/internal/mapview"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageNames lists every page template; each is parsed together with layout.html.
var pageNames = []string{"home", "destination", "map", "about", "notfound", "error"}

// categoryBadges maps every category to its badge CSS class.
var categoryBadges = map[domain.Category]string{
	domain.Beach:     "badge badge-beach",
	domain.Nature:    "badge badge-nature",
	domain.Heritage:  "badge badge-heritage",
	domain.Adventure: "badge badge-adventure",
}

var templateFuncs = template.FuncMap{
	"badge": func(c domain.Category) string { return categoryBadges[c] },
	"icon":  func(c domain.Category) string { return mapview.CategoryIcons[c] },
}

// layout is embedded by every page view.
type layout struct {
	Title       string
	Description string
	Brand       string
	// BrandLabels is the JSON label list the navbar script cycles through.
	BrandLabels   template.JS
	BrandRotateMs int64
	Canonical     string
	Nav           string
}

func mustParsePages() map[string]*template.Template {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		pages[name] = template.Must(
			template.New("layout.html").Funcs(templateFuncs).
				ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html"),
		)
	}
	return pages
}

// newLayout fills the shared page chrome. title is used verbatim.
func (s *Server) newLayout(r *http.Request, title, description, nav string) layout {
	return layout{
		Title:         title,
		Description:   description,
		Brand:         s.brand.Current(),
		BrandLabels:   s.brandJS,
		BrandRotateMs: s.brand.Interval().Milliseconds(),
		Canonical:     s.opts.BaseURL + r.URL.Path,
		Nav:           nav,
	}
}

// render executes a page into a buffer first so a template failure becomes a
// clean 500 instead of a half-written page.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.pages[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		s.log.ErrorContext(r.Context(), "render page", "page", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// scriptJSON encodes v for a <script type="application/json"> block.
// go-json escapes <, > and & so the payload cannot close the script element.
func scriptJSON(v any) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}
