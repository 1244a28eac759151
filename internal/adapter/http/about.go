package httpadapter

import (
	"net/http"

	"charity/internal/config/configs"
	"charity/internal/core/port"
)

type partner struct {
	Name        string
	Logo        string
	Description string
	Location    string
}

var partners = []partner{
	{
		Name:        "LVP Ventures",
		Logo:        "/static/images/partners/lvp-ventures.png",
		Description: "Strategic partner supporting educational initiatives",
		Location:    "USA",
	},
	{
		Name:        "The Voice Against Gun Violence",
		Logo:        "/static/images/partners/voice-against-gun-violence.png",
		Description: "Collaborative partner in awareness and advocacy programs",
		Location:    "Nigeria",
	},
}

type officeHours struct {
	Days  string
	Hours string
}

var hours = []officeHours{
	{Days: "Monday - Friday", Hours: "9:00 AM - 5:00 PM"},
	{Days: "Saturday", Hours: "10:00 AM - 2:00 PM"},
	{Days: "Sunday", Hours: "Closed"},
}

type aboutPage struct {
	Stats    *port.StatsResp
	Partners []partner
}

type contactPage struct {
	Site  configs.Site
	Hours []officeHours
}

func (h *Handler) handleAbout(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		h.serverError(w, r, "load about page", err)
		return
	}
	h.render(w, r, http.StatusOK, "about", "About us", aboutPage{Stats: stats, Partners: partners})
}

func (h *Handler) handleContact(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "contact", "Contact", contactPage{Site: h.site, Hours: hours})
}
