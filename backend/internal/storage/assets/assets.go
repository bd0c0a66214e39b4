// Package assets holds files every image store serves from the start.
package assets

import _ "embed"

// DefaultImageName is the object name of the placeholder image, relative to
// the root of an image store.
const DefaultImageName = "defaultImage.png"

// DefaultImage is the placeholder shown for boards registered without an image.
//
//go:embed defaultImage.png
var DefaultImage []byte

const DefaultImageContentType = "image/png"
