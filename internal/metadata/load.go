package metadata

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// schemaFile is the YAML layout of a schema file:
//
//	resources:
//	  - name: users
//	    table: users
//	    fields:
//	      - {name: age, type: number, sortable: true}
type schemaFile struct {
	Resources []ResourceDef `yaml:"resources"`
}

// Load registers every resource of a YAML schema. Unknown keys are rejected.
// Nothing is registered when any definition is invalid.
func (r *Registry) Load(rd io.Reader) error {
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)

	var file schemaFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode schema: %w", err)
	}

	seen := make(map[string]struct{}, len(file.Resources))
	for _, def := range file.Resources {
		if err := def.Validate(); err != nil {
			return err
		}
		if _, dup := seen[def.Name]; dup {
			return fmt.Errorf("decode schema: resource %q defined twice", def.Name)
		}
		seen[def.Name] = struct{}{}
	}
	for _, def := range file.Resources {
		if err := r.Register(def); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile is Load for a file path.
func (r *Registry) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open schema: %w", err)
	}
	defer f.Close()

	if err := r.Load(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
