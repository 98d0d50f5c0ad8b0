package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/Dove-Chen/Minecraft-Config-Converter/internal/source"
)

func cmdSchema(args []string) error {
	fs := flag.NewFlagSet("schema", flag.ExitOnError)
	out := fs.String("out", "", "Write the schema to this file instead of stdout")
	fs.Parse(args)

	data, err := json.MarshalIndent(buildSchema(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	data = append(data, '\n')

	if *out == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}
	return os.WriteFile(*out, data, 0o644)
}

func buildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(source.Document))
	schema.Title = "ItemsAdder item configuration"
	schema.Description = "The subset of an ItemsAdder configuration file that mcc converts"
	return schema
}
