package users

import (
	"sieve/internal/metadata"
)

// Definition describes the users table for the resource registry.
func Definition() metadata.ResourceDef {
	def := metadata.Inspect(Filter{}, Resource, Table)
	def.Label = "Users"
	return def
}
