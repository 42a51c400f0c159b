package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateFile creates outputPath/name, making the directory first when makeDir is set.
func CreateFile(makeDir bool, outputPath, name string) (*os.File, error) {
	if makeDir && outputPath != "" && outputPath != "." {
		if err := os.MkdirAll(outputPath, 0750); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}
	return os.Create(filepath.Join(outputPath, name))
}
