// Package fileManagement provides utilities for file operations.
// This package handles copying files, checking for existence, creating
// directories, and finding executable programs in the system PATH.
package fileManagement

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Copy copies a single file from source to destination.
// This is a simple file copy operation that doesn't preserve metadata.
//
// Parameters:
//   - srcFile: Path to the source file
//   - dstFile: Path to the destination file
//
// Returns an error if the copy operation fails.
func Copy(srcFile, dstFile string) error {
	// Open the source file for reading
	in, err := os.Open(srcFile)
	if err != nil {
		return err
	}
	defer in.Close() // Ensure file is closed when function exits

	// Create the destination file
	out, err := os.Create(dstFile)
	if err != nil {
		return err
	}
	defer out.Close() // Ensure file is closed when function exits

	// Copy the file contents efficiently
	// io.Copy handles the transfer in chunks, even for large files
	_, err = io.Copy(out, in)
	if err != nil {
		return err
	}

	return nil
}

// Exists checks if a file or directory exists at the given path.
//
// Parameters:
//   - filePath: Path to check
//
// Returns true if the path exists, false otherwise.
func Exists(filePath string) bool {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return false
	}

	return true
}

// CreateIfNotExists creates a directory if it doesn't already exist.
// This is an idempotent operation - it's safe to call multiple times.
//
// Parameters:
//   - dir: Directory path to create
//   - perm: File permissions (e.g., 0755)
//
// Returns an error if directory creation fails.
func CreateIfNotExists(dir string, perm os.FileMode) error {
	// If directory already exists, nothing to do
	if Exists(dir) {
		return nil
	}

	// Create directory and all parent directories
	// os.MkdirAll is idempotent - it won't fail if parts of the path already exist
	if err := os.MkdirAll(dir, perm); err != nil {
		return fmt.Errorf("failed to create directory: '%s', error: '%s'", dir, err.Error())
	}

	return nil
}

// FindProgramPath locates an executable program in the system PATH.
// This is useful for finding system tools like "iconutil".
//
// Parameters:
//   - program: Name of the program to find (e.g., "iconutil")
//
// Returns:
//   - Full path to the executable
//   - An error if the program is not found in PATH
func FindProgramPath(program string) (string, error) {
	// exec.LookPath searches for the executable in directories listed in PATH
	path, err := exec.LookPath(program)
	if err != nil {
		return "", fmt.Errorf("program %q not found in PATH", program)
	}
	return path, nil
}
