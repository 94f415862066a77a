// Package icons: This file generates the macOS icon bundle (.icns).
// The preferred path builds an icon.iconset directory with the ten canonical
// resolutions and hands it to Apple's iconutil tool, which produces the same
// output Xcode would. iconutil only exists on macOS, so when it is missing or
// fails, a pure-Go ICNS encoder takes over. Either way the iconset directory
// is a temporary artifact and is removed afterwards.
package icons

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"iconforge/utilities/fileManagement"
	"iconforge/utilities/logger"

	"github.com/disintegration/imaging"
	"github.com/jackmordaunt/icns/v3"
)

// iconsetEntries lists the resolutions iconutil expects inside an iconset.
// The @2x variants share pixel sizes with the next point size up; both files
// must exist for iconutil to accept the set.
var iconsetEntries = []struct {
	Side int
	Name string
}{
	{16, "icon_16x16.png"},
	{32, "icon_16x16@2x.png"},
	{32, "icon_32x32.png"},
	{64, "icon_32x32@2x.png"},
	{128, "icon_128x128.png"},
	{256, "icon_128x128@2x.png"},
	{256, "icon_256x256.png"},
	{512, "icon_256x256@2x.png"},
	{512, "icon_512x512.png"},
	{1024, "icon_512x512@2x.png"},
}

// BuildICNS writes icon.icns into outputDir from the given source image.
// It prefers iconutil when available and falls back to the pure-Go encoder
// when iconutil is missing, fails, or times out.
func BuildICNS(img image.Image, outputDir string) error {
	icnsPath := filepath.Join(outputDir, "icon.icns")

	iconutilPath, err := fileManagement.FindProgramPath("iconutil")
	if err == nil {
		err = buildWithIconutil(img, iconutilPath, outputDir, icnsPath)
		if err == nil {
			logger.Info("Generated %s using iconutil", icnsPath)
			return nil
		}
		logger.Warn("iconutil failed (%v), falling back to built-in ICNS encoder", err)
	} else {
		logger.Debug("iconutil not available, using built-in ICNS encoder")
	}

	if err := encodeICNS(img, icnsPath); err != nil {
		return err
	}

	logger.Info("Generated %s using built-in encoder", icnsPath)
	return nil
}

// buildWithIconutil creates the iconset directory, renders every entry, and
// runs "iconutil -c icns" on it with a bounded timeout. The iconset directory
// is removed before returning, whether the conversion succeeded or not.
func buildWithIconutil(img image.Image, iconutilPath, outputDir, icnsPath string) error {
	iconsetDir := filepath.Join(outputDir, "icon.iconset")
	defer os.RemoveAll(iconsetDir)

	if err := fileManagement.CreateIfNotExists(iconsetDir, 0755); err != nil {
		return err
	}

	if err := writeIconset(img, iconsetDir); err != nil {
		return err
	}

	// iconutil can hang on malformed input; bound the call so a stuck
	// conversion fails the build instead of stalling it.
	timeout := time.Duration(GetIconutilTimeoutSeconds()) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, iconutilPath, "-c", "icns", iconsetDir, "-o", icnsPath)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("iconutil timed out after %s", timeout)
		}
		return fmt.Errorf("iconutil failed: %v\n%s", err, stderr.String())
	}

	return nil
}

// writeIconset renders the ten canonical iconset resolutions into dir.
func writeIconset(img image.Image, dir string) error {
	for _, entry := range iconsetEntries {
		resized := imaging.Resize(img, entry.Side, entry.Side, imaging.Lanczos)
		if err := imaging.Save(resized, filepath.Join(dir, entry.Name)); err != nil {
			return fmt.Errorf("failed to write iconset entry %s: %v", entry.Name, err)
		}
	}
	return nil
}

// encodeICNS writes an ICNS file without external tooling. The encoder
// derives the embedded resolutions from the source image itself.
func encodeICNS(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", path, err)
	}
	defer file.Close()

	if err := icns.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode ICNS: %v", err)
	}

	return nil
}
