package spritequad

import (
	"encoding/json"
	"fmt"
)

// AtlasRegion describes a named sub-rectangle of an atlas page, in the terms
// WriteQuad consumes.
type AtlasRegion struct {
	Page uint16 // atlas page index
	// Source is the rectangle the region occupies on the page. For rotated
	// regions this is the stored footprint, so Width and Height are swapped
	// relative to the authored image.
	Source Rect
	// TextureSize is the pixel size of the page.
	TextureSize Vec2
	// Orientation is Rotated90 when the packer stored the image rotated 90°
	// clockwise, OrientationAsIs otherwise.
	Orientation ImageOrientation
	// OriginalSize is the untrimmed authored size.
	OriginalSize Vec2
	// Offset is the trim offset of the region inside OriginalSize.
	Offset Vec2
}

// Size returns the on-screen size of the region as authored (trimmed, not
// rotated).
func (r AtlasRegion) Size() Vec2 {
	if r.Orientation == Rotated90 || r.Orientation == Rotated270 {
		return Vec2{r.Source.Height, r.Source.Width}
	}
	return r.Source.Size()
}

// DrawInfo returns a SpriteDrawInfo sampling r into dst with a white color
// scale and no rotation, effects, or origin. Set Origin through r.Origin so
// quarter-turned regions anchor correctly.
func (r AtlasRegion) DrawInfo(dst Rect) SpriteDrawInfo {
	return SpriteDrawInfo{
		TextureSize: r.TextureSize,
		Source:      r.Source,
		Destination: dst,
		ColorScale:  ColorWhite,
		Orientation: r.Orientation,
	}
}

// Origin converts an anchor given in pixels of the region as drawn (the
// rectangle Size reports) into SpriteDrawInfo.Origin, which WriteQuad
// normalizes by the stored Source size. For quarter-turned regions the two
// differ in aspect, so the anchor is rescaled per axis; otherwise it is
// returned unchanged.
func (r AtlasRegion) Origin(anchor Vec2) Vec2 {
	if r.Orientation != Rotated90 && r.Orientation != Rotated270 {
		return anchor
	}
	if r.Source.Width <= 0 || r.Source.Height <= 0 {
		return anchor
	}
	return Vec2{
		X: anchor.X * r.Source.Width / r.Source.Height,
		Y: anchor.Y * r.Source.Height / r.Source.Width,
	}
}

// Destination returns the 1:1 rectangle the region covers when the
// untrimmed image's top-left corner is drawn at pos. Trimmed regions are
// shifted by Offset so the kept pixels land where they sat in the original
// image.
func (r AtlasRegion) Destination(pos Vec2) Rect {
	p := pos.Add(r.Offset)
	s := r.Size()
	return Rect{X: p.X, Y: p.Y, Width: s.X, Height: s.Y}
}

// Atlas holds the named regions of one or more atlas pages.
type Atlas struct {
	// PageSizes holds the pixel size of each page, indexed by page number.
	PageSizes []Vec2
	regions   map[string]AtlasRegion
}

// Region returns the region registered under name.
func (a *Atlas) Region(name string) (AtlasRegion, bool) {
	r, ok := a.regions[name]
	return r, ok
}

// Len returns the number of named regions.
func (a *Atlas) Len() int { return len(a.regions) }

// LoadAtlas parses TexturePacker JSON data. Supports both the hash format
// (single "frames" object, page size in "meta.size") and the array format
// ("textures" array with per-page "size" and frame lists).
func LoadAtlas(jsonData []byte) (*Atlas, error) {
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
		Meta     struct {
			Size jsonSize `json:"size"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("spritequad: failed to parse atlas JSON: %w", err)
	}

	atlas := &Atlas{regions: make(map[string]AtlasRegion)}

	switch {
	case probe.Textures != nil:
		if err := parseArrayFormat(probe.Textures, atlas); err != nil {
			return nil, err
		}
	case probe.Frames != nil:
		size, err := pageSize(probe.Meta.Size, 0)
		if err != nil {
			return nil, err
		}
		atlas.PageSizes = []Vec2{size}
		if err := parseHashFrames(probe.Frames, 0, size, atlas); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("spritequad: atlas JSON has neither \"frames\" nor \"textures\" key")
	}

	return atlas, nil
}

// --- JSON structure types ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame            jsonRect `json:"frame"`
	Rotated          bool     `json:"rotated"`
	Trimmed          bool     `json:"trimmed"`
	SpriteSourceSize jsonRect `json:"spriteSourceSize"`
	SourceSize       jsonSize `json:"sourceSize"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Size   jsonSize             `json:"size"`
	Frames map[string]jsonFrame `json:"frames"`
}

// pageSize validates a page size; texture coordinates divide by it.
func pageSize(s jsonSize, page int) (Vec2, error) {
	if s.W <= 0 || s.H <= 0 {
		return Vec2{}, fmt.Errorf("spritequad: atlas page %d has invalid size %dx%d", page, s.W, s.H)
	}
	return Vec2{float32(s.W), float32(s.H)}, nil
}

// parseHashFrames parses the hash format: {"name": {frame...}, ...}
func parseHashFrames(raw json.RawMessage, page uint16, size Vec2, atlas *Atlas) error {
	var frames map[string]jsonFrame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return fmt.Errorf("spritequad: failed to parse atlas frames: %w", err)
	}
	for name, f := range frames {
		atlas.regions[name] = frameToRegion(f, page, size)
	}
	return nil
}

// parseArrayFormat parses the array format: [{"image":"...", "size":{...}, "frames":{...}}, ...]
func parseArrayFormat(raw json.RawMessage, atlas *Atlas) error {
	var textures []jsonTexturePage
	if err := json.Unmarshal(raw, &textures); err != nil {
		return fmt.Errorf("spritequad: failed to parse atlas textures array: %w", err)
	}
	atlas.PageSizes = make([]Vec2, len(textures))
	for i, tex := range textures {
		size, err := pageSize(tex.Size, i)
		if err != nil {
			return err
		}
		atlas.PageSizes[i] = size
		for name, f := range tex.Frames {
			atlas.regions[name] = frameToRegion(f, uint16(i), size)
		}
	}
	return nil
}

// frameToRegion maps a packer frame to a region. Frame w/h are the authored
// dimensions; a rotated frame occupies h×w on the page with the image's top
// edge running down its right side, which is Rotated90 sampling.
func frameToRegion(f jsonFrame, page uint16, size Vec2) AtlasRegion {
	r := AtlasRegion{
		Page:         page,
		Source:       Rect{float32(f.Frame.X), float32(f.Frame.Y), float32(f.Frame.W), float32(f.Frame.H)},
		TextureSize:  size,
		OriginalSize: Vec2{float32(f.SourceSize.W), float32(f.SourceSize.H)},
		Offset:       Vec2{float32(f.SpriteSourceSize.X), float32(f.SpriteSourceSize.Y)},
	}
	if f.Rotated {
		r.Source.Width, r.Source.Height = r.Source.Height, r.Source.Width
		r.Orientation = Rotated90
	}
	return r
}
