package main

import (
	"sieve/internal/domain/users"
	"sieve/internal/metadata"
)

// setupRegistry registers the built-in resources, then the resources of the
// schema file when one is configured. Schema resources replace built-in ones
// of the same name.
func setupRegistry(schemaPath string) (*metadata.Registry, error) {
	reg := metadata.NewRegistry()

	if err := reg.Register(users.Definition()); err != nil {
		return nil, err
	}

	if schemaPath != "" {
		if err := reg.LoadFile(schemaPath); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
