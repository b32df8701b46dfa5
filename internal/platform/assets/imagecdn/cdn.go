// Package imagecdn builds delivery URLs for photos hosted on an image CDN.
package imagecdn

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrAssetIDRequired reports a request without an asset id.
var ErrAssetIDRequired = errors.New("asset id is required")

// Crop selects a source rectangle in pixels.
type Crop struct {
	X        int
	Y        int
	WidthPX  int
	HeightPX int
}

// Delivery describes the rendered output size.
type Delivery struct {
	WidthPX int
}

// Request identifies one asset and optional transforms.
type Request struct {
	AssetID   string
	Extension string
	Crop      *Crop
	Delivery  *Delivery
}

// CDN resolves asset requests against a base URL.
type CDN struct {
	base       string
	transforms bool
}

// New returns a CDN rooted at baseURL. Cloudinary upload bases receive
// crop and delivery transforms; any other base is treated as a flat bucket.
func New(baseURL string) CDN {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	return CDN{base: base, transforms: isCloudinary(base)}
}

// Enabled reports whether a base URL is configured.
func (c CDN) Enabled() bool {
	return c.base != ""
}

// URL resolves one asset request.
func (c CDN) URL(req Request) (string, error) {
	assetID := strings.Trim(strings.TrimSpace(req.AssetID), "/")
	if assetID == "" {
		return "", ErrAssetIDRequired
	}
	ext := strings.TrimSpace(req.Extension)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	parts := []string{c.base}
	if c.transforms {
		if req.Crop != nil {
			parts = append(parts, fmt.Sprintf("c_crop,w_%d,h_%d,x_%d,y_%d", req.Crop.WidthPX, req.Crop.HeightPX, req.Crop.X, req.Crop.Y))
		}
		if req.Delivery != nil && req.Delivery.WidthPX > 0 {
			parts = append(parts, fmt.Sprintf("f_auto,q_auto,dpr_auto,c_limit,w_%d", req.Delivery.WidthPX))
		}
	}
	parts = append(parts, assetID+ext)
	return strings.Join(parts, "/"), nil
}

// PhotoURL resolves a catalog photo reference.
//
// Absolute URLs and root-relative paths pass through, as does everything when
// no base URL is configured. Bare names like "shot.png" resolve through the CDN
// with the given delivery width.
func (c CDN) PhotoURL(photo string, widthPX int) string {
	photo = strings.TrimSpace(photo)
	if !c.Enabled() || photo == "" || strings.HasPrefix(photo, "/") {
		return photo
	}
	if parsed, err := url.Parse(photo); err == nil && parsed.Scheme != "" {
		return photo
	}
	assetID, ext := splitExtension(photo)
	req := Request{AssetID: assetID, Extension: ext}
	if widthPX > 0 {
		req.Delivery = &Delivery{WidthPX: widthPX}
	}
	resolved, err := c.URL(req)
	if err != nil {
		return photo
	}
	return resolved
}

func splitExtension(name string) (string, string) {
	slash := strings.LastIndex(name, "/")
	dot := strings.LastIndex(name, ".")
	if dot <= slash+1 {
		return name, ""
	}
	return name[:dot], name[dot:]
}

func isCloudinary(base string) bool {
	parsed, err := url.Parse(base)
	if err != nil {
		return false
	}
	return strings.EqualFold(parsed.Host, "res.cloudinary.com")
}
