package handler

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"net/http"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/linoawt/Linostudiong/internal/models"
)

const (
	ogW = 600
	ogH = 315
)

var (
	ogLight     = color.RGBA{R: 0xF0, G: 0xF4, B: 0xF8, A: 255}
	ogDark      = color.RGBA{R: 0x1A, G: 0x1A, B: 0x2E, A: 255}
	ogWhite     = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 255}
	ogDarkCard  = color.RGBA{R: 0x2A, G: 0x2A, B: 0x3E, A: 255}
	ogIndigo    = color.RGBA{R: 0x4F, G: 0x46, B: 0xE5, A: 255}
	ogGray900   = color.RGBA{R: 0x1A, G: 0x1A, B: 0x2E, A: 255}
	ogGray500   = color.RGBA{R: 0x6B, G: 0x72, B: 0x80, A: 255}
	ogGrayLight = color.RGBA{R: 0xCB, G: 0xD5, B: 0xE0, A: 255}
)

// handleOGImage renders the social preview card from the live site config,
// so shared links always reflect the published content.
func (h *Handler) handleOGImage(w http.ResponseWriter, r *http.Request) {
	cfg := h.manager.Config()

	bg, card, fg, muted := ogLight, ogWhite, ogGray900, ogGray500
	if cfg.Theme == models.ThemeDark {
		bg, card, fg, muted = ogDark, ogDarkCard, ogWhite, ogGrayLight
	}

	face := basicfont.Face7x13
	img := image.NewRGBA(image.Rect(0, 0, ogW, ogH))

	margin, pad := 20, 32
	ogFill(img, 0, 0, ogW, ogH, bg)
	ogFill(img, margin, margin, ogW-2*margin, ogH-2*margin, card)
	ogFill(img, margin, margin, ogW-2*margin, 6, ogIndigo)

	cx := margin + pad
	cw := ogW - 2*margin - 2*pad
	y := margin + pad + 6

	ogTxt(img, face, ogIndigo, cx, y, strings.ToUpper(cfg.SiteName))
	y += 30

	headline := ogWrapLines(face, cfg.HeroHeadline, cw)
	if len(headline) > 3 {
		headline = headline[:3]
	}
	for _, line := range headline {
		ogTxt(img, face, fg, cx, y, line)
		y += 18
	}
	y += 10

	tagline := ogWrapLines(face, cfg.Tagline, cw)
	if len(tagline) > 2 {
		tagline = tagline[:2]
	}
	for _, line := range tagline {
		ogTxt(img, face, muted, cx, y, line)
		y += 16
	}

	fy := ogH - margin - pad
	ogFill(img, cx, fy-14, cw, 1, muted)
	ogTxt(img, face, muted, cx, fy-8, cfg.ContactEmail)

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if err := png.Encode(w, img); err != nil {
		log.Printf("og: encode error: %v", err)
	}
}

func ogFill(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	draw.Draw(img, image.Rect(x, y, x+w, y+h), &image.Uniform{c}, image.Point{}, draw.Src)
}

func ogTxt(img *image.RGBA, face font.Face, col color.Color, x, y int, text string) {
	(&font.Drawer{
		Dst: img, Src: &image.Uniform{col}, Face: face,
		Dot: fixed.P(x, y),
	}).DrawString(text)
}

func ogMsr(face font.Face, text string) int {
	return (&font.Drawer{Face: face}).MeasureString(text).Ceil()
}

func ogWrapLines(face font.Face, text string, maxW int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		if t := cur + " " + w; ogMsr(face, t) <= maxW {
			cur = t
		} else {
			lines = append(lines, cur)
			cur = w
		}
	}
	return append(lines, cur)
}
