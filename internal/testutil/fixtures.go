package testutil

import (
	"fmt"
	"io/ioutil"
	"path"
	"runtime"
	"testing"
)

// root is the directory of the module, resolved from this file.
func root() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		panic("error loading caller")
	}
	return path.Join(path.Dir(filename), "../../")
}

// MustFixture returns the contents of a file under testdata/ or panics.
func MustFixture(relPath string) []byte {
	p := path.Join(root(), "testdata", relPath)
	bytes, err := ioutil.ReadFile(p)
	if err != nil {
		panic(fmt.Sprintf("error loading fixture %s: %v", p, err))
	}

	return bytes
}

// Fixture returns the contents of a file under testdata/.
func Fixture(t *testing.T, relPath string) []byte {
	t.Helper()

	p := path.Join(root(), "testdata", relPath)

	bytes, err := ioutil.ReadFile(p)
	if err != nil {
		t.Fatalf("error loading fixture %s: %v", p, err)
	}

	return bytes
}

// FixturePath returns the absolute path of a file under testdata/.
func FixturePath(relPath string) string {
	return path.Join(root(), "testdata", relPath)
}
