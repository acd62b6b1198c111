package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"io/fs"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/younwookim/isoroom/internal/domain/entity"
)

// Placeholder geometry
const (
	placeholderCell = 32
	keyIconSize     = 24
)

var (
	colorPlaceholderBorder = color.RGBA{20, 20, 20, 255}
	colorKeyFace           = color.RGBA{235, 235, 235, 255}
	colorKeyEdge           = color.RGBA{90, 90, 90, 255}
	colorKeyLetter         = color.RGBA{30, 30, 30, 255}
)

// Loader decodes images from an fs.FS. Missing or unreadable files are
// replaced by generated placeholder atlases so a scene always renders.
type Loader struct {
	fsys   fs.FS
	logger *zap.Logger
	cache  map[string]image.Image
}

// NewLoader creates an image loader over fsys; fsys may be nil
func NewLoader(fsys fs.FS, logger *zap.Logger) *Loader {
	return &Loader{
		fsys:   fsys,
		logger: logger,
		cache:  make(map[string]image.Image),
	}
}

// Image returns the image at path or a columns×rows placeholder atlas
func (l *Loader) Image(path string, columns, rows int) image.Image {
	key := fmt.Sprintf("%s#%dx%d", path, columns, rows)
	if img, ok := l.cache[key]; ok {
		return img
	}

	img, err := l.decode(path)
	if err != nil {
		l.logger.Warn("using placeholder image",
			zap.String("path", path),
			zap.Int("columns", columns),
			zap.Int("rows", rows),
			zap.Error(err))
		img = Placeholder(columns, rows)
	}
	l.cache[key] = img
	return img
}

// KeyIcon returns icons/<key>-key.png or a generated key cap
func (l *Loader) KeyIcon(cmd entity.Command) image.Image {
	path := "icons/" + string(cmd) + "-key.png"
	key := "key#" + string(cmd)
	if img, ok := l.cache[key]; ok {
		return img
	}

	img, err := l.decode(path)
	if err != nil {
		img = KeyCap(strings.ToUpper(string(cmd)))
	}
	l.cache[key] = img
	return img
}

func (l *Loader) decode(path string) (image.Image, error) {
	if l.fsys == nil || path == "" {
		return nil, fs.ErrNotExist
	}
	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

// Placeholder draws a columns×rows atlas of square cells. Each column
// gets its own hue and every odd row is brighter, so state and
// highlight changes stay visible without art.
func Placeholder(columns, rows int) image.Image {
	if columns < 1 {
		columns = 1
	}
	if rows < 1 {
		rows = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, columns*placeholderCell, rows*placeholderCell))
	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			cell := image.Rect(c*placeholderCell, r*placeholderCell, (c+1)*placeholderCell, (r+1)*placeholderCell)
			draw.Draw(img, cell, image.NewUniform(colorPlaceholderBorder), image.Point{}, draw.Src)
			draw.Draw(img, cell.Inset(2), image.NewUniform(cellColor(c, r, columns)), image.Point{}, draw.Src)
		}
	}
	return img
}

func cellColor(col, row, columns int) color.RGBA {
	// spread hues from magenta towards cyan across columns
	t := float64(col) / float64(columns)
	base := color.RGBA{
		R: uint8(200 - 150*t),
		G: uint8(60 + 120*t),
		B: 200,
		A: 255,
	}
	if row%2 == 1 {
		base.R = brighten(base.R)
		base.G = brighten(base.G)
		base.B = brighten(base.B)
	}
	return base
}

func brighten(v uint8) uint8 {
	return uint8(int(v) + (255-int(v))/2)
}

// KeyCap draws a small key-cap icon with the given label
func KeyCap(label string) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, keyIconSize, keyIconSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorKeyEdge), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(2, 2, keyIconSize-2, keyIconSize-4), image.NewUniform(colorKeyFace), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(colorKeyLetter),
		Face: face,
	}
	w := d.MeasureString(label).Ceil()
	d.Dot = fixed.P((keyIconSize-w)/2, keyIconSize/2+4)
	d.DrawString(label)
	return img
}
