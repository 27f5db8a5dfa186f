package content

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// WriteYAML dumps the feed to w.
func (f Feed) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode feed: %w", err)
	}
	return enc.Close()
}
