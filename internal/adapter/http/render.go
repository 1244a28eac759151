package httpadapter

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"charity/internal/core/money"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{
	"index", "about", "contact", "campaigns", "campaign", "donate_success", "donate_error", "not_found",
}

var templateFuncs = template.FuncMap{
	"currency": func(amount decimal.Decimal, currency string) string {
		return money.Format(amount, currency)
	},
	"percentage": func(v float64) string {
		return money.FormatPercentage(v, 1)
	},
}

// pages holds one template set per page, each combining the shared layout
// and partials with the page's own content block.
type pages struct {
	sets map[string]*template.Template
}

func mustParsePages() *pages {
	p := &pages{sets: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		p.sets[name] = template.Must(template.New(name).Funcs(templateFuncs).ParseFS(templateFS,
			"templates/layout.html", "templates/campaign_card.html", "templates/"+name+".html"))
	}
	return p
}

// pageData is what every page template receives.
type pageData struct {
	SiteName string
	Title    string
	Flash    *flash
	Data     any
}

// render executes the page into a buffer first so a template error turns
// into a clean 500 instead of a half-written page.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name, title string, data any) {
	pd := pageData{
		SiteName: h.site.Name,
		Title:    title,
		Flash:    h.flash.pop(w, r),
		Data:     data,
	}

	var buf bytes.Buffer
	if err := h.pages.sets[name].ExecuteTemplate(&buf, "layout", pd); err != nil {
		h.requestLogger(r).Error("render page", slog.String("page", name), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// redirectWithFlash stores a flash message and sends the browser to url.
func (h *Handler) redirectWithFlash(w http.ResponseWriter, r *http.Request, url, level, message string) {
	if err := h.flash.set(w, level, message); err != nil {
		h.requestLogger(r).Error("set flash", slog.Any("error", err))
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log only, the status is already sent
		h.requestLogger(r).Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "not_found", "Page not found", "The page you are looking for does not exist.")
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.requestLogger(r).Error(msg, slog.Any("error", err))
	h.render(w, r, http.StatusInternalServerError, "not_found", "Something went wrong", "Please try again in a moment.")
}
