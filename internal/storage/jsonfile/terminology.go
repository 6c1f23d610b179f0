package jsonfile

import "github.com/ayushbridge/ayushbridge/internal/domain/terminology"

// LoadDictionary reads the NAMASTE terminology document and builds the
// immutable index. A missing or unreadable file is fatal to startup.
func LoadDictionary(path string) (*terminology.Index, error) {
	entries, err := readDocument[terminology.Entry](path)
	if err != nil {
		return nil, err
	}
	return terminology.NewIndex(entries), nil
}
