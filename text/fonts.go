package text

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-fonts/latin-modern/lmsans10bold"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"github.com/go-fonts/liberation/liberationsansbold"
	"github.com/go-fonts/liberation/liberationsansregular"
	"github.com/go-text/typesetting/fontscan"
)

// embeddedFaces are the fonts registered in every font map so shaping
// and measurement work without any system fonts installed.
var embeddedFaces = []struct {
	name string
	data []byte
}{
	{"lmroman10-regular", lmroman10regular.TTF},
	{"lmroman10-bold", lmroman10bold.TTF},
	{"lmroman10-italic", lmroman10italic.TTF},
	{"lmsans10-regular", lmsans10regular.TTF},
	{"lmsans10-bold", lmsans10bold.TTF},
	{"lmmono10-regular", lmmono10regular.TTF},
	// Latin Modern has no Greek or Cyrillic coverage; Liberation Sans
	// backstops symbols like the π tick labels.
	{"liberationsans-regular", liberationsansregular.TTF},
	{"liberationsans-bold", liberationsansbold.TTF},
}

// DefaultFamily is the family of the embedded default faces.
const DefaultFamily = "Latin Modern Roman"

// queryFor widens a family request with the embedded defaults so
// fallback never leaves the map empty-handed.
func queryFor(family string) fontscan.Query {
	families := []string{family}
	if family != DefaultFamily {
		families = append(families, DefaultFamily)
	}
	families = append(families, "Latin Modern Sans", "Latin Modern Mono", "Liberation Sans")
	return fontscan.Query{Families: families}
}

// newFontMap builds a fontscan.FontMap with the embedded faces and,
// when useSystem is set, the system fonts discovered under the user
// cache directory.
func newFontMap(useSystem bool) (*fontscan.FontMap, error) {
	fm := fontscan.NewFontMap(nil)

	if useSystem {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			cacheDir = os.TempDir()
		}
		if err := fm.UseSystemFonts(cacheDir); err != nil {
			// System fonts are an enhancement; the embedded faces
			// below keep the map usable.
			logger().Warn("system font discovery failed", "error", err)
		}
	}

	for _, f := range embeddedFaces {
		if err := fm.AddFont(bytes.NewReader(f.data), f.name, ""); err != nil {
			return nil, fmt.Errorf("text: embedded font %s: %w", f.name, err)
		}
	}
	return fm, nil
}
