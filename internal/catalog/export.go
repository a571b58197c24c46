// file: internal/catalog/export.go
// version: 1.0.0
// guid: 2d4f6a8c-0b1e-43d5-97c9-f1a3b5d7e9c1

package catalog

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thriftpick/thriftpick/internal/fileops"
	"github.com/thriftpick/thriftpick/internal/models"
)

// DefaultExportName is the destination used when the user accepts the
// export offer without naming a file.
const DefaultExportName = "recommendations.json"

// Export writes items to path in catalog record shape. The format
// follows the extension (.yaml/.yml encode as YAML, anything else as
// JSON), and the write is atomic so an interrupt never corrupts an
// existing file. An empty path falls back to DefaultExportName.
func Export(items []models.Item, path string) error {
	if path == "" {
		path = DefaultExportName
	}
	data, err := marshalItems(items, path)
	if err != nil {
		return err
	}
	return fileops.WriteFileAtomic(path, data, 0644)
}

// Save writes the whole inventory to path, in the same formats Load
// accepts.
func (c *Catalog) Save(path string) error {
	data, err := marshalItems(c.items, path)
	if err != nil {
		return err
	}
	return fileops.WriteFileAtomic(path, data, 0644)
}

func marshalItems(items []models.Item, path string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := yaml.Marshal(items)
		if err != nil {
			return nil, fmt.Errorf("failed to encode items: %w", err)
		}
		return data, nil
	default:
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode items: %w", err)
		}
		return append(data, '\n'), nil
	}
}
