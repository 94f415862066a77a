// Package main is the entry point for the iconforge tool.
// iconforge generates and converts desktop application icon assets (PNG, ICO,
// ICNS) during the build process. Each subcommand performs one narrow
// transformation and exits 0 on success or 1 on failure.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"iconforge/icons"
	"iconforge/utilities/logger"
)

// Command-line flags shared by all subcommands.
var (
	// profileFlag: Path to the YAML profile describing sizes and directories.
	// The default location is optional; a named location must exist.
	profileFlag = flag.String("profile", "iconforge.yaml", "Icon profile file")

	// outDirFlag: Override the output directory from the profile.
	outDirFlag = flag.String("outdir", "", "Directory for generated assets (overrides the profile)")

	// silentFlag: If true, suppresses informational log messages (only errors will be shown).
	silentFlag = flag.Bool("silent", false, "Silent mode during generation")

	// logDirFlag: Directory where log files should be written. If set, enables file logging.
	logDirFlag = flag.String("logdir", "", "Directory for log files (enables file logging)")
)

// usage prints the subcommand summary. flag.Usage covers the flags.
func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %s [flags] <command> [file]

Commands:
  generate    [source.png]  Generate the full icon set (PNGs, ICO, ICNS)
  minimal     [out.ico]     Write a minimal 16x16 single-image ICO
  normalize   [image.png]   Rewrite an image as four-channel RGBA in place
  extract     [source.ico]  Extract the icon from an ICO file as PNG
  placeholder [out.png]     Render placeholder source artwork
  syso        [source.ico]  Embed an ICO into a linkable Windows .syso object

Flags:
`, filepath.Base(os.Args[0]))
	flag.PrintDefaults()
}

// main parses flags, loads the profile, and dispatches the subcommand.
// All domain functions return errors; this is the only place that decides the
// process exit code.
func main() {
	flag.Usage = usage
	flag.Parse()

	if *silentFlag {
		logger.SetSilent(*silentFlag)
	}

	args := flag.Args()
	if len(args) < 1 {
		usage()
		os.Exit(1)
	}
	command := args[0]

	// Only the default profile location may be absent.
	defaultProfile := *profileFlag == "iconforge.yaml"
	if err := icons.ReadProfile(*profileFlag, defaultProfile); err != nil {
		errorExit(err)
	}

	if *outDirFlag != "" {
		icons.SetOutputDirectory(*outDirFlag)
	}

	// Set up file logging if a log directory is specified.
	// This enables dual logging: messages go to both stdout and the log file.
	if *logDirFlag != "" {
		if err := logger.SetLogFile(icons.GetAppName(), *logDirFlag); err != nil {
			// File logging is optional; report and continue.
			logger.Debug("Failed to set up file logging: %v", err)
		} else {
			logger.Info("Logging to file: %s", logger.GetLogFilePath())
		}
	}

	// The optional second positional argument names the input or output file;
	// every command has a fixed default.
	target := ""
	if len(args) > 1 {
		target = args[1]
	}

	var err error
	switch command {
	case "generate":
		err = icons.Generate(targetOr(target, icons.GetSourcePath()))
	case "minimal":
		err = icons.WriteMinimalICO(targetOr(target, filepath.Join(icons.GetOutputDirectory(), "icon.ico")))
	case "normalize":
		err = icons.Normalize(targetOr(target, icons.GetSourcePath()))
	case "extract":
		err = icons.ExtractPNG(targetOr(target, filepath.Join(icons.GetOutputDirectory(), "icon.ico")))
	case "placeholder":
		err = icons.WritePlaceholder(targetOr(target, icons.GetSourcePath()))
	case "syso":
		err = icons.BuildSyso(targetOr(target, filepath.Join(icons.GetOutputDirectory(), "icon.ico")))
	default:
		usage()
		err = fmt.Errorf("unknown command %q", command)
	}
	errorExit(err)

	logger.Info("iconforge completed successfully")
}

// targetOr returns the positional argument if given, the default otherwise.
func targetOr(target, fallback string) string {
	if target != "" {
		return target
	}
	return fallback
}

// errorExit is a helper function that handles errors by logging them and
// exiting the program with a non-zero code. This ensures that any error
// during asset generation stops execution immediately and provides clear
// feedback about what went wrong.
func errorExit(err error) {
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
