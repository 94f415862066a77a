// Package icons: This file embeds the generated icon into a Windows resource
// object (.syso). When the .syso sits next to a main package, the Go linker
// picks it up automatically and the resulting .exe carries the application
// icon without any resource-compiler step.
package icons

import (
	"fmt"
	"os"
	"path/filepath"

	"iconforge/utilities/fileManagement"
	"iconforge/utilities/logger"

	"github.com/tc-hib/winres"
)

// sysoFileName follows the GOOS_GOARCH suffix convention so the linker only
// includes the object in windows/amd64 builds.
const sysoFileName = "rsrc_windows_amd64.syso"

// BuildSyso reads the ICO at icoPath and writes a linkable resource object
// containing it as the application group icon.
//
// Returns an error if the ICO is missing or invalid, or the object cannot be
// written.
func BuildSyso(icoPath string) error {
	if !fileManagement.Exists(icoPath) {
		return fmt.Errorf("%s not found", icoPath)
	}

	file, err := os.Open(icoPath)
	if err != nil {
		return err
	}
	defer file.Close()

	icon, err := winres.LoadICO(file)
	if err != nil {
		return fmt.Errorf("failed to load ICO %s: %v", icoPath, err)
	}

	rs := &winres.ResourceSet{}
	if err := rs.SetIcon(winres.RT_GROUP_ICON, icon); err != nil {
		return fmt.Errorf("failed to set icon resource: %v", err)
	}

	sysoPath := filepath.Join(GetOutputDirectory(), sysoFileName)
	out, err := os.Create(sysoPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", sysoPath, err)
	}
	defer out.Close()

	if err := rs.WriteObject(out, winres.ArchAMD64); err != nil {
		return fmt.Errorf("failed to write %s: %v", sysoPath, err)
	}

	logger.Info("Generated %s", sysoPath)
	return nil
}
