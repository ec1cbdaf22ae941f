package fsx

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppendFile appends content to path with a single O_APPEND write and fsyncs
// before returning. The file is created when missing; its directory must
// already exist.
func AppendFile(path string, content []byte, mode os.FileMode) error {
	cleanPath := filepath.Clean(path)

	// #nosec G304 -- append path is the CI job summary file named by the environment.
	file, err := os.OpenFile(cleanPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, mode)
	if err != nil {
		return fmt.Errorf("open append file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	if _, err := file.Write(content); err != nil {
		return fmt.Errorf("append file: %w", err)
	}
	if err := file.Sync(); err != nil {
		return fmt.Errorf("sync append file: %w", err)
	}
	return nil
}
