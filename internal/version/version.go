// Package version exposes the application version, overridable at build time:
//
//	go build -ldflags "-X github.com/ndewijer/VAT-Calculator-Backend/internal/version.Version=1.2.0" ./cmd/server
package version

// Version is the application version.
var Version = "dev"
