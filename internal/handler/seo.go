package handler

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"time"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// sitemap handles GET /sitemap.xml: the home page, the map, then one entry
// per destination dated by its creation time.
func (s *Server) sitemap(w http.ResponseWriter, r *http.Request) {
	all, err := s.dests.List(r.Context())
	if err != nil {
		s.log.ErrorContext(r.Context(), "build sitemap", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	now := time.Now().UTC()
	set := urlset{Xmlns: sitemapNS, URLs: make([]sitemapURL, 0, len(all)+2)}
	set.URLs = append(set.URLs,
		sitemapURL{Loc: s.opts.BaseURL, LastMod: now.Format(time.RFC3339), ChangeFreq: "weekly", Priority: "1.0"},
		sitemapURL{Loc: s.opts.BaseURL + "/map", LastMod: now.Format(time.RFC3339), ChangeFreq: "monthly", Priority: "0.6"},
	)
	for _, d := range all {
		mod := d.CreatedAt
		if mod.IsZero() {
			mod = now
		}
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        s.opts.BaseURL + "/destinations/" + d.Slug,
			LastMod:    mod.UTC().Format(time.RFC3339),
			ChangeFreq: "monthly",
			Priority:   "0.8",
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		s.log.ErrorContext(r.Context(), "encode sitemap", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write([]byte(xml.Header))
	_, _ = w.Write(out)
}

// robots handles GET /robots.txt.
func (s *Server) robots(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = fmt.Fprintf(w, "User-Agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", s.opts.BaseURL)
}
