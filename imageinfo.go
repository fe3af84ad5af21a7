package metatext

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"time"

	"github.com/dustin/go-humanize"
)

// fileDateLayout matches the "%Y-%m-%d %X" layout of the info overlay.
const fileDateLayout = "2006-01-02 15:04:05"

// ImageSource tells where an image came from.
type ImageSource int

const (
	SourceNone ImageSource = iota
	SourceFile
	SourceClipboard
	SourceInternalText
	SourceGenerated
)

func (s ImageSource) String() string {
	switch s {
	case SourceNone:
		return "none"
	case SourceFile:
		return "file"
	case SourceClipboard:
		return "clipboard"
	case SourceInternalText:
		return "internal text"
	case SourceGenerated:
		return "auto generated"
	default:
		return "unknown"
	}
}

// ImageDescriptor is what a decoder reports about a loaded image.
type ImageDescriptor struct {
	Source       ImageSource
	Path         string
	Width        int64
	Height       int64
	BitsPerPixel int64
	Channels     []Channel
	NumSubImages int64
	LoadTime     time.Duration
	DisplayTime  time.Duration
	Codec        string
	// UniqueValues is the number of distinct pixel values, or -1 when it
	// was not counted.
	UniqueValues int64
}

// ImageInfoEntries lists the rows of the image information overlay. File
// rows are included only when fi is not nil.
func ImageInfoEntries(d ImageDescriptor, fi fs.FileInfo) ([]Entry, error) {
	var entries []Entry

	if fi != nil {
		if d.Source != SourceFile {
			entries = append(entries, NewEntry("Source", Text(d.Source.String())))
		} else {
			entries = append(entries, NewEntry("File path", Text(d.Path)))
		}
		size := fi.Size()
		entries = append(entries,
			NewEntry("File size", Text(humanize.IBytes(uint64(max(size, 0))))),
			NewEntry("File date", Text(fi.ModTime().Local().Format(fileDateLayout))),
		)
		if size > 0 {
			bitmapSize := d.Width * d.Height * d.BitsPerPixel / 8
			entries = append(entries, NewEntry("Compression ratio", Text("1:"), Float(float64(bitmapSize)/float64(size))))
		}
	}

	channels, err := FormatChannels(d.Channels)
	if err != nil {
		return nil, err
	}

	codec := d.Codec
	if codec == "" {
		codec = "N/A"
	}

	entries = append(entries,
		NewEntry("Width", Int(d.Width), Text("px")),
		NewEntry("Height", Int(d.Height), Text("px")),
		NewEntry("bit depth", Int(d.BitsPerPixel), Text(" bpp")),
		NewEntry("channels info", Text(channels)),
		NewEntry("Num sub-images", Int(d.NumSubImages)),
		NewEntry("Load time", Float(milliseconds(d.LoadTime)), Text("ms")),
		NewEntry("Display time", Int(d.DisplayTime.Milliseconds()), Text("ms")),
		NewEntry("Codec used", Text(codec)),
	)
	if d.UniqueValues > -1 {
		entries = append(entries, NewEntry("Unique values", Int(d.UniqueValues)))
	}
	return entries, nil
}

// ImageInfoMessage renders the image information overlay with its header.
func ImageInfoMessage(d ImageDescriptor, fi fs.FileInfo, opts Options) (string, error) {
	entries, err := ImageInfoEntries(d, fi)
	if err != nil {
		return "", err
	}
	body, err := Render(entries, opts)
	if err != nil {
		return "", err
	}
	return DefaultHeaderColor + "Image information\n\n" + body, nil
}

// DescribeImageFile decodes the header of the image at path. Pixels are
// decoded only for GIF frame counting and when countUnique is set.
func DescribeImageFile(path string, countUnique bool) (ImageDescriptor, error) {
	d := ImageDescriptor{Source: SourceFile, Path: path, UniqueValues: -1}

	start := time.Now()
	data, err := os.ReadFile(path)
	if err != nil {
		return d, err
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return d, fmt.Errorf("%w: %s: %s", ErrDecode, path, err)
	}

	d.Width = int64(cfg.Width)
	d.Height = int64(cfg.Height)
	d.Codec = format
	d.Channels, d.BitsPerPixel = channelsOf(cfg.ColorModel)

	if format == "gif" {
		g, err := gif.DecodeAll(bytes.NewReader(data))
		if err != nil {
			return d, fmt.Errorf("%w: %s: %s", ErrDecode, path, err)
		}
		d.NumSubImages = int64(len(g.Image))
	}
	d.LoadTime = time.Since(start)

	if countUnique {
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return d, fmt.Errorf("%w: %s: %s", ErrDecode, path, err)
		}
		d.UniqueValues = CountUniqueValues(img)
	}

	return d, nil
}

// CountUniqueValues returns the number of distinct colors in img.
func CountUniqueValues(img image.Image) int64 {
	b := img.Bounds()
	seen := make(map[color.RGBA64]struct{})
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			seen[color.RGBA64Model.Convert(img.At(x, y)).(color.RGBA64)] = struct{}{}
		}
	}
	return int64(len(seen))
}

func channelsOf(m color.Model) ([]Channel, int64) {
	if _, ok := m.(color.Palette); ok {
		return uniformChannels(8, SemanticRed, SemanticGreen, SemanticBlue, SemanticOpacity), 8
	}
	var channels []Channel
	switch m {
	case color.RGBAModel, color.NRGBAModel, color.NYCbCrAModel:
		channels = uniformChannels(8, SemanticRed, SemanticGreen, SemanticBlue, SemanticOpacity)
	case color.RGBA64Model, color.NRGBA64Model:
		channels = uniformChannels(16, SemanticRed, SemanticGreen, SemanticBlue, SemanticOpacity)
	case color.YCbCrModel:
		channels = uniformChannels(8, SemanticRed, SemanticGreen, SemanticBlue)
	case color.GrayModel:
		channels = uniformChannels(8, SemanticMonochrome)
	case color.Gray16Model:
		channels = uniformChannels(16, SemanticMonochrome)
	case color.AlphaModel:
		channels = uniformChannels(8, SemanticOpacity)
	case color.Alpha16Model:
		channels = uniformChannels(16, SemanticOpacity)
	}
	var bpp int64
	for _, c := range channels {
		bpp += int64(c.Width)
	}
	return channels, bpp
}

func uniformChannels(width uint8, semantics ...ChannelSemantic) []Channel {
	channels := make([]Channel, len(semantics))
	for i, s := range semantics {
		channels[i] = Channel{Semantic: s, DataType: DataTypeUnsigned, Width: width}
	}
	return channels
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
