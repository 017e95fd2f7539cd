package handler

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nightowldevx/lakbayregion8/internal/domain"
	"github.com/nightowldevx/lakbayregion8/internal/filter"
	"github.com/nightowldevx/lakbayregion8/internal/gallery"
	"github.com/nightowldevx/lakbayregion8/internal/geo"
	"github.com/nightowldevx/lakbayregion8/internal/mapview"
)

const siteDescription = "Explore curated tourism destinations across Eastern Visayas. " +
	"Find beaches, heritage sites, nature trails, and adventure spots in Leyte, Samar, and Biliran."

type option struct {
	Value    string
	Selected bool
}

type pill struct {
	Label  string
	Icon   string
	Href   string
	Active bool
}

// card is a destination tile on the listing and in "related".
type card struct {
	Name         string
	Href         string
	Province     domain.Province
	ProvinceHref string
	Category     domain.Category
	Fee          string
	Cover        gallery.Image
}

type homeView struct {
	layout
	Criteria   filter.Criteria
	Provinces  []option
	Categories []pill
	Cards      []card
	Total      int
	ClearHref  string
}

type destinationView struct {
	layout
	D          domain.Destination
	Hero       gallery.Image
	Gallery    []string
	Paragraphs []string
	Tips       []string
	Fee        string
	Hours      string
	MapHref    string
	Related    []card
	JSONLD     template.JS
}

type mapPageView struct {
	layout
	State      template.JS
	Sidebar    []mapview.SidebarGroup
	Styles     []mapview.Style
	ActiveSlug string
	FocusZoom  float64
	FocusSpeed float64
	FocusCurve float64
}

type provinceInfo struct {
	Name       domain.Province
	Capital    string
	Highlights string
}

type aboutView struct {
	layout
	Provinces []provinceInfo
}

type notFoundView struct {
	layout
	Query string
}

var aboutProvinces = []provinceInfo{
	{domain.Leyte, "Tacloban City", "Historical landmarks, WWII sites, and lush highland waterfalls."},
	{domain.SouthernLeyte, "Maasin City", "Pristine dive sites, marine sanctuaries, and whale shark encounters."},
	{domain.EasternSamar, "Borongan City", "Rugged coastline, river canyons, and surfer-friendly waves."},
	{domain.NorthernSamar, "Catarman", "Remote island-hopping, pristine beaches, and untouched nature."},
	{domain.WesternSamar, "Catbalogan City", "Ancient rock formations, waterfalls, and scenic mountain ranges."},
	{domain.Biliran, "Naval", "Cascading hot springs, volcanic craters, and island adventure."},
}

// home handles GET /. Filter state lives in the query string so every pill
// is a plain link to the toggled criteria.
func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	c := filter.FromQuery(r.URL.Query())

	all, err := s.dests.List(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	matched := filter.Apply(all, c)

	view := homeView{
		layout:    s.newLayout(r, "Lakbay Region 8 – Discover Eastern Visayas", siteDescription, "home"),
		Criteria:  c,
		Total:     len(all),
		ClearHref: filter.Criteria{}.URL(),
		Cards:     cards(matched, c),
	}
	for _, p := range domain.Provinces {
		view.Provinces = append(view.Provinces, option{Value: string(p), Selected: p == c.Province})
	}
	for _, cat := range domain.Categories {
		view.Categories = append(view.Categories, pill{
			Label:  string(cat),
			Icon:   mapview.CategoryIcons[cat],
			Href:   c.ToggleCategory(cat).URL(),
			Active: cat == c.Category,
		})
	}
	s.render(w, r, http.StatusOK, "home", view)
}

// destinationPage handles GET /destinations/{slug}.
func (s *Server) destinationPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !validSlug(slug) {
		s.notFound(w, r)
		return
	}

	// GetBySlug reports store failures as not-found as well.
	d, err := s.dests.GetBySlug(r.Context(), slug)
	if err != nil {
		s.notFound(w, r)
		return
	}

	pt, hasPoint := geo.Resolve(d.GoogleMapsLink, d.Latitude, d.Longitude)
	ld, err := scriptJSON(touristAttraction(d, pt, hasPoint, s.opts.BaseURL))
	if err != nil {
		s.serverError(w, r, fmt.Errorf("encode json-ld: %w", err))
		return
	}

	view := destinationView{
		layout:     s.newLayout(r, d.Name+" – Lakbay Region 8", summary(d.Description), "home"),
		D:          d,
		Hero:       gallery.Hero(d.Slug, d.Images),
		Gallery:    gallery.Gallery(d.Slug, d.Images),
		Paragraphs: domain.Paragraphs(d.Description),
		Tips:       domain.Paragraphs(d.TravelTips),
		Fee:        domain.FormatFee(d.EntranceFee),
		Hours:      domain.FormatHours(d.Hours),
		Related:    cards(s.dests.Related(r.Context(), d), filter.Criteria{}),
		JSONLD:     ld,
	}
	if hasPoint {
		view.MapHref = "/map?focus=" + d.Slug
	}
	s.render(w, r, http.StatusOK, "destination", view)
}

// mapPage handles GET /map?focus=&style=.
func (s *Server) mapPage(w http.ResponseWriter, r *http.Request) {
	all, err := s.dests.List(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	q := r.URL.Query()
	state := mapview.Build(all, q.Get("style"), q.Get("focus"))
	js, err := scriptJSON(state)
	if err != nil {
		s.serverError(w, r, fmt.Errorf("encode map state: %w", err))
		return
	}

	s.render(w, r, http.StatusOK, "map", mapPageView{
		layout:     s.newLayout(r, "Interactive Map – Lakbay Region 8", "Explore Eastern Visayas destinations on an interactive map.", "map"),
		State:      js,
		Sidebar:    mapview.Sidebar(all),
		Styles:     mapview.Styles,
		ActiveSlug: state.ActiveSlug,
		FocusZoom:  mapview.FocusZoom,
		FocusSpeed: mapview.FocusSpeed,
		FocusCurve: mapview.FocusCurve,
	})
}

// about handles GET /about.
func (s *Server) about(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "about", aboutView{
		layout:    s.newLayout(r, "About – Lakbay Region 8", "Learn about Lakbay Region 8, a curated tourism guide to Eastern Visayas.", "about"),
		Provinces: aboutProvinces,
	})
}

// searchRedirect handles GET /search, the target of the not-found page form.
// A non-blank query lands on the filtered listing; anything else goes home.
func (s *Server) searchRedirect(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	http.Redirect(w, r, filter.Criteria{Query: q}.URL(), http.StatusSeeOther)
}

// notFound renders the 404 page with an inline search form.
func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, "notfound", notFoundView{
		layout: s.newLayout(r, "Destination not found – Lakbay Region 8", siteDescription, ""),
		Query:  r.URL.Query().Get("q"),
	})
}

// serverError logs err and renders the generic error page.
func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		s.notFound(w, r)
		return
	}
	s.log.ErrorContext(r.Context(), "page request failed", "path", r.URL.Path, "error", err)
	s.render(w, r, http.StatusInternalServerError, "error", s.newLayout(r, "Something went wrong – Lakbay Region 8", siteDescription, ""))
}

// cards builds listing tiles. Province links toggle the province filter on
// top of the current criteria c.
func cards(dests []domain.Destination, c filter.Criteria) []card {
	out := make([]card, len(dests))
	for i, d := range dests {
		out[i] = card{
			Name:         d.Name,
			Href:         "/destinations/" + d.Slug,
			Province:     d.Province,
			ProvinceHref: c.ToggleProvince(d.Province).URL(),
			Category:     d.Category,
			Fee:          domain.FormatFee(d.EntranceFee),
			Cover:        gallery.Cover(d.Slug, d.Name, d.Images),
		}
	}
	return out
}

// summary is the first paragraph of a description, for meta tags.
func summary(description string) string {
	if ps := domain.Paragraphs(description); len(ps) > 0 {
		return ps[0]
	}
	return siteDescription
}

type jsonLDAddress struct {
	Type    string `json:"@type"`
	Region  string `json:"addressRegion"`
	Country string `json:"addressCountry"`
}

type jsonLDGeo struct {
	Type      string  `json:"@type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type jsonLDAttraction struct {
	Context     string        `json:"@context"`
	Type        string        `json:"@type"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	Image       string        `json:"image"`
	Address     jsonLDAddress `json:"address"`
	Geo         *jsonLDGeo    `json:"geo,omitempty"`
}

func touristAttraction(d domain.Destination, pt geo.Point, hasPoint bool, baseURL string) jsonLDAttraction {
	ld := jsonLDAttraction{
		Context:     "https://schema.org",
		Type:        "TouristAttraction",
		Name:        d.Name,
		Description: d.Description,
		URL:         baseURL + "/destinations/" + d.Slug,
		Image:       gallery.Hero(d.Slug, d.Images).URL,
		Address:     jsonLDAddress{Type: "PostalAddress", Region: string(d.Province), Country: "PH"},
	}
	if hasPoint {
		ld.Geo = &jsonLDGeo{Type: "GeoCoordinates", Latitude: pt.Lat, Longitude: pt.Lng}
	}
	return ld
}
