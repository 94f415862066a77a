// Package icons: This file handles reading and parsing the YAML profile file.
// The profile file (typically iconforge.yaml) is optional and describes where
// the source artwork lives, where generated assets should be written, and which
// sizes each platform needs. Built-in defaults cover the common Tauri-style
// icon set, so the tool runs without any profile at all.
package icons

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"iconforge/utilities/fileManagement"
	"iconforge/utilities/logger"

	"gopkg.in/yaml.v3"
)

// profileInfo is a package-level variable that stores the parsed profile.
// It's populated by ReadProfile() and accessed by getter functions.
var profileInfo profileParameter

// pngTarget names one PNG output and the square pixel size it is rendered at.
type pngTarget struct {
	Name   string `yaml:"name"`   // Output filename (e.g., "128x128@2x.png")
	Pixels int    `yaml:"pixels"` // Square edge length in pixels
}

// profileParameter defines the structure of the YAML profile file.
// The `yaml:"tag"` annotations map YAML keys to struct fields.
type profileParameter struct {
	// Application metadata
	AppName string `yaml:"app_name"` // Used for log file naming

	// Source artwork location
	SourceFile      string `yaml:"source_file"`      // Name of the source image (default icon.png)
	SourceDirectory string `yaml:"source_directory"` // Directory containing the source image

	// Output location
	OutputDirectory string `yaml:"output_directory"` // Where generated assets are written

	// Size sets per artifact type
	PNGTargets []pngTarget `yaml:"png_sizes"` // Standalone PNG outputs
	ICOSizes   []int       `yaml:"ico_sizes"` // Embedded sizes for the multi-resolution ICO

	// Subprocess control. A pointer distinguishes an omitted field (default
	// applies) from an explicit value, which must be positive.
	IconutilTimeoutSeconds *int `yaml:"iconutil_timeout_seconds"` // Timeout for the iconutil call
}

// Built-in defaults, matching the icon set a Tauri-style desktop build expects.
var (
	defaultPNGTargets = []pngTarget{
		{Name: "32x32.png", Pixels: 32},
		{Name: "128x128.png", Pixels: 128},
		{Name: "128x128@2x.png", Pixels: 256}, // Retina display
	}
	defaultICOSizes = []int{16, 32, 48, 64, 128, 256}
)

// defaultIconutilTimeoutSeconds bounds the external iconutil invocation.
const defaultIconutilTimeoutSeconds = 30

// ReadProfile parses the YAML profile file and populates the profileInfo
// variable. A missing file is not an error when defaultOK is true (the built-in
// defaults apply); it is an error when the user named the file explicitly.
//
// Parameters:
//   - profileFileName: Path to the YAML profile file
//   - defaultOK: true when profileFileName is the implicit default location
//
// Returns an error if the file cannot be read or the YAML cannot be parsed.
func ReadProfile(profileFileName string, defaultOK bool) error {
	// Reset to zero value so repeated loads (tests, -profile overrides) don't
	// inherit fields from a previous profile.
	profileInfo = profileParameter{}

	if !fileManagement.Exists(profileFileName) {
		if defaultOK {
			logger.Debug("No profile file at %s, using built-in defaults", profileFileName)
			return nil
		}
		return fmt.Errorf("profile file not found: %s", profileFileName)
	}

	file, err := os.Open(profileFileName)
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	// Parse the YAML data into the profileInfo struct
	// yaml.Unmarshal uses the struct field tags (yaml:"key") to map YAML keys to fields
	if err := yaml.Unmarshal(data, &profileInfo); err != nil {
		return fmt.Errorf("failed to parse profile %s: %v", profileFileName, err)
	}

	logger.Debug("Loaded profile from %s", profileFileName)
	return ValidateProfile()
}

// ValidateProfile checks the loaded profile for values the pipeline cannot
// work with. This prevents partial asset sets by rejecting a bad profile
// before any file is written.
func ValidateProfile() error {
	for _, target := range profileInfo.PNGTargets {
		if target.Name == "" {
			return fmt.Errorf("png size entry with %d pixels has no name", target.Pixels)
		}
		if target.Pixels <= 0 {
			return fmt.Errorf("png size %q must have a positive pixel count", target.Name)
		}
	}

	for _, size := range profileInfo.ICOSizes {
		// A single ICO directory entry stores its dimensions in one byte,
		// where 0 means 256. Anything larger cannot be represented.
		if size <= 0 || size > 256 {
			return fmt.Errorf("ico size %d is outside the valid range 1-256", size)
		}
	}

	if profileInfo.IconutilTimeoutSeconds != nil && *profileInfo.IconutilTimeoutSeconds <= 0 {
		return fmt.Errorf("iconutil timeout must be positive, got %d", *profileInfo.IconutilTimeoutSeconds)
	}

	return nil
}

// The following functions are getters that provide access to profile values.
// They fall back to the built-in defaults when the profile leaves a field empty.

// GetAppName returns the application name used for log file naming.
func GetAppName() string {
	if profileInfo.AppName != "" {
		return profileInfo.AppName
	}
	return "iconforge"
}

// GetSourcePath returns the full path of the default source image,
// combining source_directory and source_file from the profile.
func GetSourcePath() string {
	name := profileInfo.SourceFile
	if name == "" {
		name = "icon.png"
	}
	if profileInfo.SourceDirectory != "" {
		return filepath.Join(profileInfo.SourceDirectory, name)
	}
	return name
}

// GetOutputDirectory returns the directory generated assets are written to.
func GetOutputDirectory() string {
	if profileInfo.OutputDirectory != "" {
		return profileInfo.OutputDirectory
	}
	return "."
}

// SetOutputDirectory overrides the output directory, typically from the
// -outdir command-line flag.
func SetOutputDirectory(dir string) {
	profileInfo.OutputDirectory = dir
}

// GetPNGTargets returns the list of standalone PNG outputs to generate.
func GetPNGTargets() []pngTarget {
	if len(profileInfo.PNGTargets) > 0 {
		return profileInfo.PNGTargets
	}
	return defaultPNGTargets
}

// GetICOSizes returns the embedded sizes for the multi-resolution ICO.
func GetICOSizes() []int {
	if len(profileInfo.ICOSizes) > 0 {
		return profileInfo.ICOSizes
	}
	return defaultICOSizes
}

// GetIconutilTimeoutSeconds returns the timeout for the iconutil subprocess.
func GetIconutilTimeoutSeconds() int {
	if profileInfo.IconutilTimeoutSeconds != nil {
		return *profileInfo.IconutilTimeoutSeconds
	}
	return defaultIconutilTimeoutSeconds
}
