package floor

import "embed"

// floorFS embeds the bundled sample floors.
//
//go:embed floors/*.json
var floorFS embed.FS

//go:embed schema.json
var schemaJSON []byte
