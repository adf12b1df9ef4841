package pexels

import "strings"

// Orientation restricts photo or video search results to a shape.
type Orientation string

// Supported orientations
const (
	OrientationLandscape Orientation = "landscape"
	OrientationPortrait  Orientation = "portrait"
	OrientationSquare    Orientation = "square"
)

// String returns the wire token sent to the API
func (o Orientation) String() string {
	return string(o)
}

// ParseOrientation converts user input into an Orientation
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(s) {
	case "landscape":
		return OrientationLandscape, nil
	case "portrait":
		return OrientationPortrait, nil
	case "square":
		return OrientationSquare, nil
	default:
		return "", invalidParam("orientation", "must be one of landscape, portrait, square, got %q", s)
	}
}

// Size restricts search results to a minimum photo or video size.
type Size string

// Supported sizes
const (
	SizeLarge  Size = "large"
	SizeMedium Size = "medium"
	SizeSmall  Size = "small"
)

// String returns the wire token sent to the API
func (s Size) String() string {
	return string(s)
}

// ParseSize converts user input into a Size
func ParseSize(s string) (Size, error) {
	switch strings.ToLower(s) {
	case "large":
		return SizeLarge, nil
	case "medium":
		return SizeMedium, nil
	case "small":
		return SizeSmall, nil
	default:
		return "", invalidParam("size", "must be one of large, medium, small, got %q", s)
	}
}

// Color restricts photo search results to a dominant color. It is either
// one of the named colors the API understands or a #rrggbb hex code.
type Color string

// Named colors accepted by the search endpoint
const (
	ColorRed       Color = "red"
	ColorOrange    Color = "orange"
	ColorYellow    Color = "yellow"
	ColorGreen     Color = "green"
	ColorTurquoise Color = "turquoise"
	ColorBlue      Color = "blue"
	ColorViolet    Color = "violet"
	ColorPink      Color = "pink"
	ColorBrown     Color = "brown"
	ColorBlack     Color = "black"
	ColorGray      Color = "gray"
	ColorWhite     Color = "white"
)

var namedColors = map[string]Color{
	"red":       ColorRed,
	"orange":    ColorOrange,
	"yellow":    ColorYellow,
	"green":     ColorGreen,
	"turquoise": ColorTurquoise,
	"blue":      ColorBlue,
	"violet":    ColorViolet,
	"pink":      ColorPink,
	"brown":     ColorBrown,
	"black":     ColorBlack,
	"gray":      ColorGray,
	"white":     ColorWhite,
}

// String returns the wire token sent to the API
func (c Color) String() string {
	return string(c)
}

// ParseColor converts user input into a Color. It accepts the named colors
// or a hex code of the form #rrggbb.
func ParseColor(s string) (Color, error) {
	lower := strings.ToLower(s)
	if c, ok := namedColors[lower]; ok {
		return c, nil
	}
	if isHexColor(lower) {
		return Color(lower), nil
	}
	return "", invalidParam("color", "must be a named color or #rrggbb hex code, got %q", s)
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		default:
			return false
		}
	}
	return true
}

// MediaType filters collection media to a single kind. The zero value
// requests all media.
type MediaType string

// Supported media type filters
const (
	MediaTypeAll    MediaType = ""
	MediaTypePhotos MediaType = "photos"
	MediaTypeVideos MediaType = "videos"
)

// String returns the wire token sent to the API
func (m MediaType) String() string {
	return string(m)
}

// ParseMediaType converts user input into a MediaType. An empty string
// selects all media.
func ParseMediaType(s string) (MediaType, error) {
	switch strings.ToLower(s) {
	case "":
		return MediaTypeAll, nil
	case "photo", "photos":
		return MediaTypePhotos, nil
	case "video", "videos":
		return MediaTypeVideos, nil
	default:
		return "", invalidParam("type", "must be photos or videos, got %q", s)
	}
}

// MediaSort orders items within a collection. The API default is ascending.
type MediaSort string

// Supported sort orders
const (
	MediaSortAsc  MediaSort = "asc"
	MediaSortDesc MediaSort = "desc"
)

// String returns the wire token sent to the API
func (m MediaSort) String() string {
	return string(m)
}

// ParseMediaSort converts user input into a MediaSort
func ParseMediaSort(s string) (MediaSort, error) {
	switch strings.ToLower(s) {
	case "asc":
		return MediaSortAsc, nil
	case "desc":
		return MediaSortDesc, nil
	default:
		return "", invalidParam("sort", "must be asc or desc, got %q", s)
	}
}

// Locale narrows a search to a language/region.
type Locale string

// Locales supported by the search endpoints
const (
	LocaleEnUS Locale = "en-US"
	LocalePtBR Locale = "pt-BR"
	LocaleEsES Locale = "es-ES"
	LocaleCaES Locale = "ca-ES"
	LocaleDeDE Locale = "de-DE"
	LocaleItIT Locale = "it-IT"
	LocaleFrFR Locale = "fr-FR"
	LocaleSvSE Locale = "sv-SE"
	LocaleIdID Locale = "id-ID"
	LocalePlPL Locale = "pl-PL"
	LocaleJaJP Locale = "ja-JP"
	LocaleZhTW Locale = "zh-TW"
	LocaleZhCN Locale = "zh-CN"
	LocaleKoKR Locale = "ko-KR"
	LocaleThTH Locale = "th-TH"
	LocaleNlNL Locale = "nl-NL"
	LocaleHuHU Locale = "hu-HU"
	LocaleViVN Locale = "vi-VN"
	LocaleCsCZ Locale = "cs-CZ"
	LocaleDaDK Locale = "da-DK"
	LocaleFiFI Locale = "fi-FI"
	LocaleUkUA Locale = "uk-UA"
	LocaleElGR Locale = "el-GR"
	LocaleRoRO Locale = "ro-RO"
	LocaleNbNO Locale = "nb-NO"
	LocaleSkSK Locale = "sk-SK"
	LocaleTrTR Locale = "tr-TR"
	LocaleRuRU Locale = "ru-RU"
)

var supportedLocales = map[string]Locale{}

func init() {
	for _, l := range []Locale{
		LocaleEnUS, LocalePtBR, LocaleEsES, LocaleCaES, LocaleDeDE, LocaleItIT,
		LocaleFrFR, LocaleSvSE, LocaleIdID, LocalePlPL, LocaleJaJP, LocaleZhTW,
		LocaleZhCN, LocaleKoKR, LocaleThTH, LocaleNlNL, LocaleHuHU, LocaleViVN,
		LocaleCsCZ, LocaleDaDK, LocaleFiFI, LocaleUkUA, LocaleElGR, LocaleRoRO,
		LocaleNbNO, LocaleSkSK, LocaleTrTR, LocaleRuRU,
	} {
		supportedLocales[strings.ToLower(string(l))] = l
	}
}

// String returns the wire token sent to the API
func (l Locale) String() string {
	return string(l)
}

// ParseLocale converts user input into a Locale. Both en-US and en_US forms
// are accepted.
func ParseLocale(s string) (Locale, error) {
	normalized := strings.ToLower(strings.ReplaceAll(s, "_", "-"))
	if l, ok := supportedLocales[normalized]; ok {
		return l, nil
	}
	return "", invalidParam("locale", "unsupported locale %q", s)
}

// PhotoSize selects one of the pre-rendered image sizes in a photo's src map.
type PhotoSize string

// Available photo sizes
const (
	PhotoSizeOriginal  PhotoSize = "original"
	PhotoSizeLarge2X   PhotoSize = "large2x"
	PhotoSizeLarge     PhotoSize = "large"
	PhotoSizeMedium    PhotoSize = "medium"
	PhotoSizeSmall     PhotoSize = "small"
	PhotoSizePortrait  PhotoSize = "portrait"
	PhotoSizeLandscape PhotoSize = "landscape"
	PhotoSizeTiny      PhotoSize = "tiny"
)

// String returns the size name
func (p PhotoSize) String() string {
	return string(p)
}

// ParsePhotoSize converts user input into a PhotoSize
func ParsePhotoSize(s string) (PhotoSize, error) {
	switch strings.ToLower(s) {
	case "original":
		return PhotoSizeOriginal, nil
	case "large2x":
		return PhotoSizeLarge2X, nil
	case "large":
		return PhotoSizeLarge, nil
	case "medium":
		return PhotoSizeMedium, nil
	case "small":
		return PhotoSizeSmall, nil
	case "portrait":
		return PhotoSizePortrait, nil
	case "landscape":
		return PhotoSizeLandscape, nil
	case "tiny":
		return PhotoSizeTiny, nil
	default:
		return "", invalidParam("size", "unknown photo size %q", s)
	}
}
