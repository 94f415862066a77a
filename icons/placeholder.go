// Package icons: This file renders placeholder source artwork so the rest of
// the pipeline can run before real artwork exists. The placeholder is a
// rounded single-color square at full working resolution, using the same fill
// as the minimal ICO so the two stand-ins look related.
package icons

import (
	"fmt"

	"iconforge/utilities/logger"

	"github.com/fogleman/gg"
)

// placeholderSide is the working resolution of generated placeholder artwork.
// 1024 covers the largest iconset entry (512@2x) without upscaling.
const placeholderSide = 1024

// WritePlaceholder renders a placeholder source icon at path.
//
// Returns an error if the PNG cannot be written.
func WritePlaceholder(path string) error {
	ctx := gg.NewContext(placeholderSide, placeholderSide)

	// Transparent background, rounded square covering the inner 90%.
	margin := float64(placeholderSide) * 0.05
	side := float64(placeholderSide) - 2*margin
	radius := side * 0.18

	ctx.SetRGBA255(int(minimalFill.R), int(minimalFill.G), int(minimalFill.B), int(minimalFill.A))
	ctx.DrawRoundedRectangle(margin, margin, side, side, radius)
	ctx.Fill()

	if err := ctx.SavePNG(path); err != nil {
		return fmt.Errorf("failed to write placeholder %s: %v", path, err)
	}

	logger.Info("Created placeholder %s (%dx%d)", path, placeholderSide, placeholderSide)
	return nil
}
