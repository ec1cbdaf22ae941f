// Package integration contains end-to-end tests for gtest-md over real
// report fixtures.
package integration

import (
	"path/filepath"
	"runtime"
	"sync"
)

var (
	fixturesDirOnce sync.Once
	fixturesDirPath string
)

// fixturesDir returns the path to the test fixtures directory.
func fixturesDir() string {
	fixturesDirOnce.Do(func() {
		_, filename, _, _ := runtime.Caller(0)
		fixturesDirPath = filepath.Join(filepath.Dir(filename), "..", "fixtures")
	})
	return fixturesDirPath
}

func fixture(name string) string {
	return filepath.Join(fixturesDir(), name)
}
