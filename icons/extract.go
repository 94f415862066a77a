// Package icons: This file recovers PNG artwork from an existing ICO file.
// Useful when the only surviving source of an application's icon is the
// compiled Windows container. The specialized ICO decoder is used instead of
// image.Decode because it copes better with containers that carry cursor
// data, where format sniffing on the initial bytes goes wrong.
package icons

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"iconforge/utilities/fileManagement"
	"iconforge/utilities/logger"

	"github.com/fogleman/gg"
	ico "github.com/sergeymakinen/go-ico"
)

// ExtractPNG decodes the icon stored in icoPath and writes it next to the
// source as a .png with the same base name.
//
// Returns an error if the file is missing, cannot be decoded as an ICO, or
// the PNG cannot be written.
func ExtractPNG(icoPath string) error {
	if !fileManagement.Exists(icoPath) {
		return fmt.Errorf("%s not found", icoPath)
	}

	icoBytes, err := os.ReadFile(icoPath)
	if err != nil {
		return err
	}

	icon, err := ico.Decode(bytes.NewReader(icoBytes))
	if err != nil {
		return fmt.Errorf("failed to decode ICO: %w", err)
	}

	// Re-encode through a drawing context, which flattens whatever pixel
	// layout the decoder produced into plain RGBA.
	ctx := gg.NewContextForImage(icon)

	pngPath := strings.TrimSuffix(icoPath, ".ico") + ".png"
	if err := ctx.SavePNG(pngPath); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	logger.Info("Extracted %s from %s (%dx%d)", pngPath, icoPath, ctx.Width(), ctx.Height())
	return nil
}
