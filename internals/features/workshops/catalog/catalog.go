package catalog

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bytedance/sonic"
)

// Names maps a workshop id, as a decimal string, to its display name.
type Names map[string]string

// Name returns the display name of id, or "" when the id is unknown.
func (n Names) Name(id int) string {
	return n[strconv.Itoa(id)]
}

func (n Names) Has(id int) bool {
	_, ok := n[strconv.Itoa(id)]
	return ok
}

// Catalog reads workshop metadata from a JSON file. The file is read on every
// call so edits are visible without a restart.
type Catalog struct {
	path string
}

func New(path string) *Catalog {
	return &Catalog{path: path}
}

func (c *Catalog) Load() (Names, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read workshop metadata %s: %w", c.path, err)
	}
	names := Names{}
	if err := sonic.Unmarshal(raw, &names); err != nil {
		return nil, fmt.Errorf("decode workshop metadata %s: %w", c.path, err)
	}
	return names, nil
}
