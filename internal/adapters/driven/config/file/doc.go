// Package file provides file-based configuration storage.
//
// Adapters:
//   - ConfigStore: TOML configuration file with dot-notation keys
package file
