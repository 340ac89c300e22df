// Package assets embeds the data files shipped inside the binary.
package assets

import _ "embed"

// Tuning is the default tuning.yaml.
//
//go:embed tuning.yaml
var Tuning []byte
