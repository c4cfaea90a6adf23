package viewmodel

import (
	"net/url"
	"strings"
)

// DefaultCDNHost is the managed image host whose assets support server-side transforms.
const DefaultCDNHost = "res.cloudinary.com"

// ImageTransformer builds a delivery URL for a managed asset. The returned URL is opaque here.
type ImageTransformer interface {
	BannerPhoto(publicID, label string) string
}

// BannerKind names the three ways a class banner can be rendered.
type BannerKind string

const (
	BannerPlaceholder BannerKind = "placeholder"
	BannerImage       BannerKind = "image"
	BannerCDN         BannerKind = "cdn"
)

// Banner is the render target for a class banner.
type Banner struct {
	Kind BannerKind `json:"kind"`
	Src  string     `json:"src,omitempty"`
	Alt  string     `json:"alt,omitempty"`
}

// BannerResolver chooses between a placeholder, a plain image and a CDN-transformed image.
type BannerResolver struct {
	CDNHost     string
	Transformer ImageTransformer
}

// Resolve picks the banner render target. Only a URL hosted on the CDN that also carries a
// public id goes through the transformer; every other URL is used as-is, as is a CDN URL
// the transformer could not build.
func (r BannerResolver) Resolve(bannerURL, publicID, name string) Banner {
	bannerURL = strings.TrimSpace(bannerURL)
	if bannerURL == "" {
		return Banner{Kind: BannerPlaceholder}
	}
	publicID = strings.TrimSpace(publicID)
	if publicID != "" && r.Transformer != nil && r.onCDN(bannerURL) {
		if src := r.Transformer.BannerPhoto(publicID, name); src != "" {
			return Banner{Kind: BannerCDN, Src: src, Alt: "Class Banner"}
		}
	}
	return Banner{Kind: BannerImage, Src: bannerURL, Alt: name}
}

func (r BannerResolver) onCDN(raw string) bool {
	host := r.CDNHost
	if host == "" {
		host = DefaultCDNHost
	}
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return false
	}
	h := strings.ToLower(u.Hostname())
	return h == host || strings.HasSuffix(h, "."+host)
}
