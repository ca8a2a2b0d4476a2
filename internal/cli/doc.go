// Package cli defines the Cobra command tree for the duero CLI. Each file in
// this package registers one top-level command (create, addCI, update,
// publish, config, version) with the root command. Commands delegate to
// internal packages for the work and only handle arguments, output and
// exit status.
package cli
