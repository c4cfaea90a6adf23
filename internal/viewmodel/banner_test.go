package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubTransformer struct{}

func (stubTransformer) BannerPhoto(publicID, label string) string {
	return "cdn://" + publicID + "/" + label
}

func TestBannerResolver(t *testing.T) {
	resolver := BannerResolver{CDNHost: DefaultCDNHost, Transformer: stubTransformer{}}

	cases := []struct {
		name     string
		url      string
		publicID string
		want     Banner
	}{
		{name: "nothing", want: Banner{Kind: BannerPlaceholder}},
		{name: "public id without url", publicID: "pub123", want: Banner{Kind: BannerPlaceholder}},
		{name: "external url", url: "https://cdn.example/x.png", want: Banner{Kind: BannerImage, Src: "https://cdn.example/x.png", Alt: "X"}},
		{name: "external url with public id", url: "https://cdn.example/x.png", publicID: "pub123", want: Banner{Kind: BannerImage, Src: "https://cdn.example/x.png", Alt: "X"}},
		{name: "cdn url without public id", url: "https://res.cloudinary.com/x", want: Banner{Kind: BannerImage, Src: "https://res.cloudinary.com/x", Alt: "X"}},
		{name: "cdn url with public id", url: "https://res.cloudinary.com/x", publicID: "pub123", want: Banner{Kind: BannerCDN, Src: "cdn://pub123/X", Alt: "Class Banner"}},
		{name: "cdn subdomain", url: "https://eu.res.cloudinary.com/x", publicID: "pub123", want: Banner{Kind: BannerCDN, Src: "cdn://pub123/X", Alt: "Class Banner"}},
		{name: "cdn host in path only", url: "https://evil.example/res.cloudinary.com/x", publicID: "pub123", want: Banner{Kind: BannerImage, Src: "https://evil.example/res.cloudinary.com/x", Alt: "X"}},
		{name: "unparseable url", url: "://bad", publicID: "pub123", want: Banner{Kind: BannerImage, Src: "://bad", Alt: "X"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, resolver.Resolve(tc.url, tc.publicID, "X"))
		})
	}
}

func TestBannerResolverWithoutTransformer(t *testing.T) {
	resolver := BannerResolver{}
	got := resolver.Resolve("https://res.cloudinary.com/x", "pub123", "X")
	assert.Equal(t, Banner{Kind: BannerImage, Src: "https://res.cloudinary.com/x", Alt: "X"}, got)
}

type failingTransformer struct{}

func (failingTransformer) BannerPhoto(string, string) string { return "" }

func TestBannerResolverFallsBackWhenTransformFails(t *testing.T) {
	resolver := BannerResolver{Transformer: failingTransformer{}}
	got := resolver.Resolve("https://res.cloudinary.com/x", "pub123", "X")
	assert.Equal(t, Banner{Kind: BannerImage, Src: "https://res.cloudinary.com/x", Alt: "X"}, got)
}
