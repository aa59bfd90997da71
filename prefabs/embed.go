package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// Library reads prefab specs. When Dir is set, a file of the same name under
// Dir wins over the embedded copy so specs can be tuned without rebuilding.
type Library struct {
	Dir string
}

// Embedded returns a library that only reads the compiled-in specs.
func Embedded() *Library {
	return &Library{}
}

func (l *Library) Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if l != nil && l.Dir != "" {
		if data, err := os.ReadFile(l.diskPath(clean)); err == nil {
			return data, nil
		}
	}
	return PrefabsFS.ReadFile(clean)
}

func (l *Library) diskPath(clean string) string {
	return filepath.Join(l.Dir, filepath.FromSlash(clean))
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}
