package web

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// defaultStrings are the English UI strings used by APR cells and the calculator.
var defaultStrings = map[string]string{
	"APR":          "APR",
	"APY":          "APY",
	"Flexible APY": "Flexible APY",
	"Locked APY":   "Locked APY",
	"Up to":        "Up to",
	"Get %symbol%": "Get %symbol%",
}

// Catalog is a map-based translator. Unknown keys translate to themselves.
type Catalog struct {
	strings map[string]string
}

// NewCatalog returns the English catalog with overrides applied on top.
func NewCatalog(overrides map[string]string) *Catalog {
	c := &Catalog{strings: make(map[string]string, len(defaultStrings)+len(overrides))}
	for k, v := range defaultStrings {
		c.strings[k] = v
	}
	for k, v := range overrides {
		c.strings[k] = v
	}
	return c
}

// LoadCatalog reads a JSON object of key -> translation. An empty path yields the defaults.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return NewCatalog(nil), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read translations file %s: %w", path, err)
	}
	var overrides map[string]string
	if err := json.Unmarshal(raw, &overrides); err != nil {
		return nil, fmt.Errorf("failed to decode translations file %s: %w", path, err)
	}
	return NewCatalog(overrides), nil
}

// T translates key and substitutes %name% placeholders.
func (c *Catalog) T(key string, params map[string]string) string {
	text, ok := c.strings[key]
	if !ok {
		text = key
	}
	for name, value := range params {
		text = strings.ReplaceAll(text, "%"+name+"%", value)
	}
	return text
}
