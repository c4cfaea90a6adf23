package viewmodel

import (
	"net/url"
	"strings"
)

// DefaultPlaceholderURL renders a text placeholder image.
const DefaultPlaceholderURL = "https://placehold.co/600x400"

// ProjectorConfig wires the collaborators a projector needs.
type ProjectorConfig struct {
	Banners        BannerResolver
	PlaceholderURL string
}

// Projector maps fetch results into page view models.
type Projector struct {
	banners        BannerResolver
	placeholderURL string
}

// NewProjector constructs a projector with sane defaults.
func NewProjector(cfg ProjectorConfig) *Projector {
	if cfg.Banners.CDNHost == "" {
		cfg.Banners.CDNHost = DefaultCDNHost
	}
	if cfg.PlaceholderURL == "" {
		cfg.PlaceholderURL = DefaultPlaceholderURL
	}
	return &Projector{banners: cfg.Banners, placeholderURL: strings.TrimRight(cfg.PlaceholderURL, "?")}
}

func (p *Projector) placeholderImage(name string) string {
	text := Initials(name)
	if text == "" {
		text = PlaceholderInitials
	}
	return p.placeholderURL + "?text=" + url.QueryEscape(text)
}
