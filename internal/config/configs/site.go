package configs

import "strings"

// Site describes the public website.
type Site struct {
	Name string `env:"NAME" envDefault:"Black Shepherd Foundation"`
	// URL is the externally reachable base URL, used to build the gateway
	// callback URL.
	URL string `env:"URL" envDefault:"http://localhost:8080"`
	// SecretKey signs flash message cookies.
	SecretKey string `env:"SECRET_KEY" envDefault:"dev-secret-key-change-in-production"`

	// Contact details shown on the contact page.
	Phone     string `env:"PHONE" envDefault:"+234 912 421 1336"`
	Email     string `env:"EMAIL" envDefault:"blakshepherdwef@gmail.com"`
	Instagram string `env:"INSTAGRAM" envDefault:"blakshepardwef"`
	Address   string `env:"ADDRESS" envDefault:"123 Foundation Street, Garki, Abuja FCT, Nigeria"`
}

// InstagramURL returns the profile link for the configured handle.
func (s Site) InstagramURL() string {
	return "https://www.instagram.com/" + strings.TrimPrefix(s.Instagram, "@")
}

// CallbackURL returns the absolute URL the gateway redirects donors to.
func (s Site) CallbackURL() string {
	return strings.TrimRight(s.URL, "/") + "/paystack/callback"
}
