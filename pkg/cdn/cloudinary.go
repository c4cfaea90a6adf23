package cdn

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
)

const (
	defaultHost   = "res.cloudinary.com"
	defaultWidth  = 1200
	defaultHeight = 297
	maxLabelRunes = 60
)

// Options configures a Cloudinary delivery URL builder.
type Options struct {
	Host          string
	CloudName     string
	APIKey        string
	BannerWidth   int
	BannerHeight  int
	SigningSecret string
}

// Cloudinary builds transformation URLs for assets hosted on Cloudinary.
type Cloudinary struct {
	cld    *cloudinary.Cloudinary
	host   string
	width  int
	height int
}

// New constructs a URL builder, filling zero options with defaults. A cloud name is required.
func New(opts Options) (*Cloudinary, error) {
	if strings.TrimSpace(opts.CloudName) == "" {
		return nil, errors.New("cdn: cloud name is required")
	}
	if opts.Host == "" {
		opts.Host = defaultHost
	}
	if opts.BannerWidth <= 0 {
		opts.BannerWidth = defaultWidth
	}
	if opts.BannerHeight <= 0 {
		opts.BannerHeight = defaultHeight
	}

	cld, err := cloudinary.NewFromParams(opts.CloudName, opts.APIKey, opts.SigningSecret)
	if err != nil {
		return nil, fmt.Errorf("cdn: configure cloudinary: %w", err)
	}
	host := strings.TrimRight(opts.Host, "/")
	cld.Config.URL.Secure = true
	cld.Config.URL.ForceVersion = false
	cld.Config.URL.Analytics = false
	cld.Config.URL.SignURL = opts.SigningSecret != ""
	if host != defaultHost {
		cld.Config.URL.CName = host
	}

	return &Cloudinary{
		cld:    cld,
		host:   host,
		width:  opts.BannerWidth,
		height: opts.BannerHeight,
	}, nil
}

// Host returns the delivery host URLs are built against.
func (c *Cloudinary) Host() string {
	return c.host
}

// BannerPhoto returns a cropped banner URL for publicID with label rendered as a text overlay.
// An empty label produces the crop without overlay. It returns "" when no URL can be built.
func (c *Cloudinary) BannerPhoto(publicID, label string) string {
	publicID = strings.Trim(strings.TrimSpace(publicID), "/")
	if publicID == "" {
		return ""
	}

	img, err := c.cld.Image(publicID)
	if err != nil {
		return ""
	}
	img.Transformation = c.bannerTransformation(label)

	src, err := img.String()
	if err != nil {
		return ""
	}
	return src
}

func (c *Cloudinary) bannerTransformation(label string) string {
	steps := []string{
		fmt.Sprintf("c_fill,g_auto,h_%d,w_%d", c.height, c.width),
	}
	if text := overlayText(label); text != "" {
		steps = append(steps,
			"l_text:Arial_56_bold:"+text+",co_white",
			"fl_layer_apply,g_south_west,x_48,y_40",
		)
	}
	steps = append(steps, "f_auto,q_auto")
	return strings.Join(steps, "/")
}

// overlayText escapes label for use inside a text layer. Commas and slashes are
// double escaped because they delimit transformation components.
func overlayText(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return ""
	}
	if runes := []rune(label); len(runes) > maxLabelRunes {
		label = string(runes[:maxLabelRunes])
	}
	escaped := url.PathEscape(label)
	escaped = strings.ReplaceAll(escaped, "%2C", "%252C")
	escaped = strings.ReplaceAll(escaped, "%2F", "%252F")
	return escaped
}
