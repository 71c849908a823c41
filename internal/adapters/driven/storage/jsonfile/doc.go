// Package jsonfile provides a file-based SampleStore.
//
// The export is the bare JSON array of sampled entities, UTF-8 encoded,
// indented by two spaces and without HTML escaping. Downstream tooling
// reads it as a list of server records keyed by "id".
package jsonfile
