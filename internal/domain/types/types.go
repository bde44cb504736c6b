// Package types contains common types used across the application
package types

// AppInfo identifies the running build. It is resolved from configuration at
// start and passed by value to the handlers that report it.
type AppInfo struct {
	Version     string
	Environment string
}
