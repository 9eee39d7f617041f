package text

import (
	"log/slog"
	"strconv"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/fontscan"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/plotive/plotive/geom"
	"github.com/plotive/plotive/internal/cache"
	"github.com/plotive/plotive/internal/logging"
)

func logger() *slog.Logger { return logging.Logger() }

// Direction selects the base direction for shaping.
type Direction int

const (
	// DirectionAuto derives the base direction from the first strong
	// character of the text, defaulting to left-to-right.
	DirectionAuto Direction = iota
	DirectionLTR
	DirectionRTL
)

// Request describes one string to shape. The zero Family falls back to
// the embedded default family.
type Request struct {
	Text      string
	Family    string
	Size      float64
	Direction Direction
}

// Shaper turns strings into positioned glyph runs. It owns a font map
// seeded with the embedded faces and is safe for concurrent use.
//
// Shaping is pure with respect to the request: the same Request always
// yields the same Layout for a given Shaper.
type Shaper struct {
	mu  sync.Mutex
	fm  *fontscan.FontMap
	hb  shaping.HarfbuzzShaper
	seg shaping.Segmenter

	// layouts memoizes shaped text. Axis labels and titles repeat
	// across redraws, so hit rates are high in practice.
	layouts *cache.LRU[string, *Layout]
}

// Option configures a Shaper.
type Option func(*shaperConfig)

type shaperConfig struct {
	systemFonts bool
}

// WithSystemFonts enables scanning the host's installed fonts as
// fallbacks behind the embedded faces.
func WithSystemFonts() Option {
	return func(c *shaperConfig) { c.systemFonts = true }
}

// NewShaper builds a shaper over the embedded Latin Modern faces,
// optionally extended with system fonts.
func NewShaper(opts ...Option) (*Shaper, error) {
	var cfg shaperConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	fm, err := newFontMap(cfg.systemFonts)
	if err != nil {
		return nil, err
	}
	return &Shaper{
		fm:      fm,
		layouts: cache.New[string, *Layout](0, cache.StringKey),
	}, nil
}

// cacheKey identifies a shaping request. Direction is included because
// an explicit override changes the result for bidi text.
func (req Request) cacheKey(family string) string {
	return family + "\x00" +
		strconv.FormatFloat(req.Size, 'g', -1, 64) + "\x00" +
		strconv.Itoa(int(req.Direction)) + "\x00" +
		req.Text
}

// Shape segments and shapes req's text, resolving faces through the
// font map. It returns a FontError when some rune has no glyph in the
// requested family or any fallback.
func (s *Shaper) Shape(req Request) (*Layout, error) {
	family := req.Family
	if family == "" {
		family = DefaultFamily
	}
	runes := []rune(req.Text)
	if len(runes) == 0 {
		return &Layout{}, nil
	}

	key := req.cacheKey(family)
	if l, ok := s.layouts.Get(key); ok {
		return l, nil
	}

	dir := baseDirection(req.Direction, req.Text)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.fm.SetQuery(queryFor(family))

	in := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Size:      floatToFixed(req.Size),
		Language:  language.DefaultLanguage(),
	}
	inputs := s.seg.Split(in, s.fm)

	layout := &Layout{Runs: make([]Run, 0, len(inputs))}
	for _, seg := range inputs {
		if seg.Face == nil {
			return nil, &FontError{Rune: runes[seg.RunStart], Family: family}
		}
		out := s.hb.Shape(seg)
		run, err := s.buildRun(seg, out, runes, family, req.Size)
		if err != nil {
			return nil, err
		}
		layout.Advance += run.Advance
		layout.Ascent = max(layout.Ascent, run.Ascent)
		layout.Descent = max(layout.Descent, run.Descent)
		layout.Runs = append(layout.Runs, run)
	}
	s.layouts.Add(key, layout)
	return layout, nil
}

// buildRun converts one shaped output into a Run, walking the pen
// across the glyphs. The caller holds s.mu.
func (s *Shaper) buildRun(in shaping.Input, out shaping.Output, runes []rune, family string, size float64) (Run, error) {
	run := Run{
		Face:    in.Face,
		Size:    size,
		Glyphs:  make([]Glyph, 0, len(out.Glyphs)),
		Advance: fixedToFloat(out.Advance),
		Ascent:  fixedToFloat(out.LineBounds.Ascent),
		Descent: -fixedToFloat(out.LineBounds.Descent),
	}
	var pen geom.Point
	for _, g := range out.Glyphs {
		if g.GlyphID == 0 {
			r := runes[g.ClusterIndex]
			logger().Debug("missing glyph", "rune", string(r), "family", family)
			return Run{}, &FontError{Rune: r, Family: family}
		}
		run.Glyphs = append(run.Glyphs, Glyph{
			ID: g.GlyphID,
			Pos: geom.Point{
				X: pen.X + fixedToFloat(g.XOffset),
				Y: pen.Y - fixedToFloat(g.YOffset),
			},
			Advance: fixedToFloat(g.XAdvance),
			Cluster: g.ClusterIndex,
		})
		pen.X += fixedToFloat(g.XAdvance)
		pen.Y -= fixedToFloat(g.YAdvance)
	}
	return run, nil
}

// baseDirection resolves an explicit or automatic base direction.
func baseDirection(d Direction, text string) di.Direction {
	switch d {
	case DirectionLTR:
		return di.DirectionLTR
	case DirectionRTL:
		return di.DirectionRTL
	}
	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return di.DirectionLTR
	}
	o, err := p.Order()
	if err == nil && o.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
