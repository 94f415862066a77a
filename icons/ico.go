// Package icons: This file implements the legacy Windows ICO container format.
// An ICO file is a small directory of embedded bitmaps: a 6-byte ICONDIR
// header, one 16-byte ICONDIRENTRY per image, then for each image a 40-byte
// BITMAPINFOHEADER followed by raw 32bpp BGRA pixel rows (bottom-up) and a
// 1-bit AND mask whose rows are padded to 32-bit boundaries. The format has no
// compression and no checksums; correctness is entirely about field layout.
package icons

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"iconforge/utilities/logger"

	"github.com/nfnt/resize"
)

// Fixed sizes of the container's building blocks, in bytes.
const (
	icoDirSize   = 6  // ICONDIR header
	icoEntrySize = 16 // one ICONDIRENTRY
	bmpInfoSize  = 40 // BITMAPINFOHEADER
)

// iconDir is the ICONDIR header that opens every ICO file.
type iconDir struct {
	Reserved uint16 // Must be 0
	Type     uint16 // 1 for icons (2 would be cursors)
	Count    uint16 // Number of images in the file
}

// iconDirEntry is the 16-byte directory entry describing one embedded image.
type iconDirEntry struct {
	Width      uint8  // Image width; 0 means 256
	Height     uint8  // Image height; 0 means 256
	Colors     uint8  // Palette size; 0 for 32bpp
	Reserved   uint8  // Must be 0
	Planes     uint16 // Color planes; 1
	BitCount   uint16 // Bits per pixel; 32
	BytesInRes uint32 // Size of the image data (BMP header + pixels + mask)
	Offset     uint32 // File offset of the image data
}

// bitmapInfoHeader is the BITMAPINFOHEADER preceding each image's pixel data.
// Height is doubled because it counts both the XOR (color) and AND (mask)
// bitmaps.
type bitmapInfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32 // 2x image height: XOR + AND
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32 // pixel bytes + mask bytes
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

// maskRowSize returns the byte length of one AND-mask row for the given width.
// Mask rows carry one bit per pixel and are padded to DWORD (32-bit) boundaries.
func maskRowSize(width int) int {
	return ((width + 31) / 32) * 4
}

// entrySize returns the declared BytesInRes for a square image of the given
// side: BMP header plus 32bpp pixel data plus the aligned AND mask.
func entrySize(side int) int {
	return bmpInfoSize + side*side*4 + maskRowSize(side)*side
}

// encodeImageEntry renders one embedded image: BITMAPINFOHEADER, BGRA pixel
// rows written bottom-up, and a zeroed AND mask. With 32bpp entries the alpha
// channel carries transparency, so the AND mask stays fully opaque.
func encodeImageEntry(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	maskSize := maskRowSize(width) * height
	pixelSize := width * height * 4

	buf := &bytes.Buffer{}
	header := bitmapInfoHeader{
		Size:      bmpInfoSize,
		Width:     int32(width),
		Height:    int32(height * 2),
		Planes:    1,
		BitCount:  32,
		SizeImage: uint32(pixelSize + maskSize),
	}
	if err := binary.Write(buf, binary.LittleEndian, header); err != nil {
		return nil, err
	}

	// Pixel rows are stored bottom-up, each pixel as BGRA.
	for y := bounds.Max.Y - 1; y >= bounds.Min.Y; y-- {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			buf.WriteByte(byte(b >> 8))
			buf.WriteByte(byte(g >> 8))
			buf.WriteByte(byte(r >> 8))
			buf.WriteByte(byte(a >> 8))
		}
	}

	buf.Write(make([]byte, maskSize))

	return buf.Bytes(), nil
}

// encodeICOImages packs the given images into an ICO container. The images are
// written in the order given; the first image's data begins directly after the
// directory, at offset 6 + 16*count.
func encodeICOImages(w io.Writer, images []image.Image) error {
	if len(images) == 0 {
		return fmt.Errorf("ico container needs at least one image")
	}

	dir := &bytes.Buffer{}
	if err := binary.Write(dir, binary.LittleEndian, iconDir{Type: 1, Count: uint16(len(images))}); err != nil {
		return err
	}

	imageData := &bytes.Buffer{}
	offset := icoDirSize + icoEntrySize*len(images)

	for _, img := range images {
		data, err := encodeImageEntry(img)
		if err != nil {
			return err
		}

		width := img.Bounds().Dx()
		height := img.Bounds().Dy()
		if width > 256 || height > 256 {
			return fmt.Errorf("ico image %dx%d exceeds the 256 pixel limit", width, height)
		}

		entry := iconDirEntry{
			Width:      uint8(width % 256), // 256 wraps to the sentinel 0
			Height:     uint8(height % 256),
			Planes:     1,
			BitCount:   32,
			BytesInRes: uint32(len(data)),
			Offset:     uint32(offset),
		}
		if err := binary.Write(dir, binary.LittleEndian, entry); err != nil {
			return err
		}

		imageData.Write(data)
		offset += len(data)
	}

	if _, err := w.Write(dir.Bytes()); err != nil {
		return err
	}
	_, err := w.Write(imageData.Bytes())
	return err
}

// EncodeICO resizes the source image to each of the given square sizes and
// packs the results into a multi-resolution ICO container. Lanczos resampling
// keeps small sizes crisp, matching what the PNG pipeline uses.
func EncodeICO(w io.Writer, img image.Image, sizes []int) error {
	var images []image.Image
	for _, size := range sizes {
		images = append(images, resize.Resize(uint(size), uint(size), img, resize.Lanczos3))
	}
	return encodeICOImages(w, images)
}

// minimalSide is the edge length of the minimal placeholder icon.
const minimalSide = 16

// minimalFill is the solid fill of the minimal icon. The pixel stream is the
// fixed per-pixel byte sequence 00 00 FF FF, which in BGRA order is an opaque
// pixel with only the red channel set.
var minimalFill = color.NRGBA{R: 255, A: 255}

// WriteMinimalICO writes a minimal single-image 16x16 ICO file that the
// Windows Resource Compiler will accept. This is a build workaround for when
// no real artwork exists yet: a solid single-color square with a zeroed AND
// mask.
//
// Parameters:
//   - path: Output file path (typically icon.ico)
//
// Returns an error if the file cannot be written.
func WriteMinimalICO(path string) error {
	img := image.NewNRGBA(image.Rect(0, 0, minimalSide, minimalSide))
	for i := range img.Pix {
		switch i % 4 {
		case 0:
			img.Pix[i] = minimalFill.R
		case 1:
			img.Pix[i] = minimalFill.G
		case 2:
			img.Pix[i] = minimalFill.B
		case 3:
			img.Pix[i] = minimalFill.A
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", path, err)
	}
	defer file.Close()

	if err := encodeICOImages(file, []image.Image{img}); err != nil {
		return fmt.Errorf("failed to encode minimal ICO: %v", err)
	}

	logger.Info("Created minimal %s (%dx%d)", path, minimalSide, minimalSide)
	return nil
}
