package sigfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jrh-151/simplesig/pkg/simplesig"
)

// Read parses a simplified signature file back into a SignatureSet. The
// commented header is ignored; only the YAML body matters, so hand-edited
// files load as long as they remain valid YAML.
func Read(data []byte) (*simplesig.SignatureSet, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse signature file: %w", err)
	}

	set := simplesig.NewSignatureSet()
	for _, rec := range doc.Formats {
		if rec.PUID == "" {
			return nil, fmt.Errorf("parse signature file: format %q has no puid", rec.Name)
		}
		set.Put(rec)
	}
	return set, nil
}

// ReadFile reads and parses the signature file at path.
func ReadFile(path string) (*simplesig.SignatureSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read signature file: %w", err)
	}
	return Read(data)
}
