package assets

import (
	"embed"
	"io/fs"
)

// FormationDir is the directory inside FormationFS holding the TMX layouts.
const FormationDir = "formations"

//go:embed all:formations
var formationFS embed.FS

// FormationFS returns the embedded formation layouts.
func FormationFS() fs.FS {
	return formationFS
}
