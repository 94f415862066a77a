// Package icons: This file drives the full asset-generation pipeline.
// From one source image it produces every icon artifact a desktop build
// needs: the standalone PNG sizes, the multi-resolution Windows ICO, and the
// macOS ICNS bundle. The steps run strictly in sequence and each one logs the
// artifact it produced; the first failure aborts the run.
package icons

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"iconforge/utilities/fileManagement"
	"iconforge/utilities/logger"

	"github.com/disintegration/imaging"
)

// Generate produces the complete icon set from the source image at sourcePath.
// Outputs land in the profile's output directory:
//   - one PNG per configured size (default 32x32, 128x128, 128x128@2x)
//   - icon.ico with the configured embedded sizes (default 16..256)
//   - icon.icns via iconutil or the built-in encoder
//   - a copy of the normalized source as icon.png, so the output directory is
//     a self-contained icon set
//
// Returns an error if the source is missing or any artifact cannot be written.
func Generate(sourcePath string) error {
	if !fileManagement.Exists(sourcePath) {
		return fmt.Errorf("%s not found", sourcePath)
	}

	decoded, err := imaging.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %v", sourcePath, err)
	}

	// Work on four-channel pixels from here on, whatever the source layout was.
	if _, alreadyRGBA := decoded.(*image.NRGBA); !alreadyRGBA {
		logger.Info("Converted source to RGBA from %T", decoded)
	}
	src := imaging.Clone(decoded)

	outputDir := GetOutputDirectory()
	if err := fileManagement.CreateIfNotExists(outputDir, 0755); err != nil {
		return err
	}

	if err := writePNGSizes(src, outputDir); err != nil {
		return err
	}

	if err := writeICO(src, outputDir); err != nil {
		return err
	}

	if err := BuildICNS(src, outputDir); err != nil {
		return err
	}

	if err := placeSource(sourcePath, outputDir); err != nil {
		return err
	}

	logger.Info("Icon generation complete in %s", outputDir)
	return nil
}

// writePNGSizes renders each configured standalone PNG size.
func writePNGSizes(src image.Image, outputDir string) error {
	for _, target := range GetPNGTargets() {
		resized := imaging.Resize(src, target.Pixels, target.Pixels, imaging.Lanczos)
		outPath := filepath.Join(outputDir, target.Name)
		if err := imaging.Save(resized, outPath); err != nil {
			return fmt.Errorf("failed to write %s: %v", outPath, err)
		}
		logger.Info("Generated %s (%dx%d)", outPath, target.Pixels, target.Pixels)
	}
	return nil
}

// writeICO packs the configured sizes into a multi-resolution icon.ico.
// Windows Resource Compiler expects the full size ladder for best results.
func writeICO(src image.Image, outputDir string) error {
	icoPath := filepath.Join(outputDir, "icon.ico")

	file, err := os.Create(icoPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", icoPath, err)
	}
	defer file.Close()

	sizes := GetICOSizes()
	if err := EncodeICO(file, src, sizes); err != nil {
		return fmt.Errorf("failed to encode %s: %v", icoPath, err)
	}

	logger.Info("Generated %s (%d embedded sizes)", icoPath, len(sizes))
	return nil
}

// placeSource ensures the output directory contains the normalized source as
// icon.png, so the directory is usable as a drop-in icon set. When the source
// already is that file, nothing needs to happen.
func placeSource(sourcePath, outputDir string) error {
	destPath := filepath.Join(outputDir, "icon.png")

	absSource, err := filepath.Abs(sourcePath)
	if err != nil {
		return err
	}
	absDest, err := filepath.Abs(destPath)
	if err != nil {
		return err
	}
	if absSource == absDest {
		return nil
	}

	if err := fileManagement.Copy(sourcePath, destPath); err != nil {
		return fmt.Errorf("failed to copy source into %s: %v", outputDir, err)
	}

	// The copy preserves the original bytes; normalize it in place so the
	// output set never carries a three-channel source.
	if err := Normalize(destPath); err != nil {
		return err
	}

	logger.Info("Placed normalized source at %s", destPath)
	return nil
}
