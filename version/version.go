// Package version exposes the build version of the binary.
package version

import "fmt"

// VERSION is overridden at link time, e.g.
// -ldflags "-X github.com/horizon-catalog/datamodel/version.VERSION=1.2.0".
var VERSION = "dev"

// AppVersion returns the string used to identify this program.
func AppVersion() string {
	return fmt.Sprintf("horizon-datamodel/%s", VERSION)
}
