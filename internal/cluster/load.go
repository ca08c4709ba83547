package cluster

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the YAML layout of a cluster file.
type Document struct {
	Clusters []Cluster `yaml:"clusters"`
}

// Load decodes a YAML cluster document. With strict set every cluster must
// pass Validate.
func Load(r io.Reader, strict bool) ([]Cluster, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode clusters: %w", err)
	}

	if strict {
		for i, c := range doc.Clusters {
			if err := c.Validate(); err != nil {
				return nil, fmt.Errorf("validate cluster #%d %s: %w", i, c, err)
			}
		}
	}

	return doc.Clusters, nil
}

// LoadFile reads clusters from the YAML file at path.
func LoadFile(path string, strict bool) ([]Cluster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open clusters file: %w", err)
	}
	defer f.Close()

	clusters, err := Load(f, strict)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return clusters, nil
}
