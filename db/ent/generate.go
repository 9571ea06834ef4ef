//go:build ignore

package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

// Run from the repository root: go run db/ent/generate.go
func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/chandrashekharddev/agroscheme/gen/ent",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
