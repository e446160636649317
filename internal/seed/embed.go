package seed

import (
	"embed"
	"io/fs"
)

// vocabulary embeds the fixed core vocabulary registered at startup,
// before any legacy catalog migration runs.
//
//go:embed vocabulary.yaml
var vocabulary embed.FS

// VocabularyFS returns the embedded filesystem containing vocabulary.yaml.
func VocabularyFS() fs.FS {
	return vocabulary
}
