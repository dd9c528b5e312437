package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// kind identifies one of the six resource shapes the loader can produce.
type kind string

const (
	KindGmod             kind = "gmod"
	KindCodebooks        kind = "codebooks"
	KindLocations        kind = "locations"
	KindGmodVersioning   kind = "gmod-versioning"
	KindDataChannelNames kind = "iso19848-data-channel-type-names"
	KindFormatDataTypes  kind = "iso19848-format-data-types"
)

// schemas holds the embedded JSON Schema (Draft 2020-12) text for the gmod,
// codebooks, locations and gmod-versioning kinds: compile once, reuse the
// compiled *jsonschema.Schema for every document of that kind. The two
// iso19848 kinds have no entry, so Validate returns an error for them.
var schemas = map[kind]string{
	KindGmod: `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "object",
		"required": ["visRelease", "items", "relations"],
		"properties": {
			"visRelease": {"type": "string", "minLength": 1},
			"items": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["category", "type", "code", "name"],
					"properties": {
						"category": {"type": "string"},
						"type": {"type": "string"},
						"code": {"type": "string", "minLength": 1},
						"name": {"type": "string"},
						"commonName": {"type": "string"},
						"definition": {"type": "string"},
						"commonDefinition": {"type": "string"},
						"installSubstructure": {"type": "boolean"},
						"normalAssignmentNames": {"type": "object"}
					}
				}
			},
			"relations": {
				"type": "array",
				"items": {"type": "array", "items": {"type": "string"}, "minItems": 2, "maxItems": 2}
			}
		}
	}`,
	KindCodebooks: `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "object",
		"required": ["visRelease", "items"],
		"properties": {
			"visRelease": {"type": "string", "minLength": 1},
			"items": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["name", "values"],
					"properties": {
						"name": {"type": "string"},
						"values": {
							"type": "object",
							"additionalProperties": {"type": "array", "items": {"type": "string"}}
						}
					}
				}
			}
		}
	}`,
	KindLocations: `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "object",
		"required": ["visRelease", "items"],
		"properties": {
			"visRelease": {"type": "string", "minLength": 1},
			"items": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["code", "name"],
					"properties": {
						"code": {"type": "string", "minLength": 1, "maxLength": 1},
						"name": {"type": "string"},
						"definition": {"type": "string"}
					}
				}
			}
		}
	}`,
	KindGmodVersioning: `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "object",
		"required": ["visRelease", "items"],
		"properties": {
			"visRelease": {"type": "string", "minLength": 1},
			"items": {
				"type": "object",
				"additionalProperties": {
					"type": "object",
					"required": ["operations", "source"],
					"properties": {
						"operations": {"type": "array", "items": {"type": "string"}},
						"source": {"type": "string"},
						"target": {"type": "string"},
						"oldAssignment": {"type": "string"},
						"newAssignment": {"type": "string"},
						"deleteAssignment": {"type": "boolean"}
					}
				}
			}
		}
	}`,
}

var (
	compiledMu sync.Mutex
	compiled   = map[kind]*jsonschema.Schema{}
)

func compiler(k kind) (*jsonschema.Schema, error) {
	compiledMu.Lock()
	defer compiledMu.Unlock()
	if s, ok := compiled[k]; ok {
		return s, nil
	}
	src, ok := schemas[k]
	if !ok {
		return nil, fmt.Errorf("dto: no embedded schema for kind %q", k)
	}
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	url := "mem://" + string(k) + ".json"
	if err := c.AddResource(url, bytes.NewReader([]byte(src))); err != nil {
		return nil, fmt.Errorf("dto: adding schema resource for %q: %w", k, err)
	}
	schema, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("dto: compiling schema for %q: %w", k, err)
	}
	compiled[k] = schema
	return schema, nil
}

// Validate checks raw JSON bytes against the embedded schema for k. On
// success it is safe to json.Unmarshal raw into the corresponding strict Go
// struct without further nil/missing-key checks.
func Validate(k kind, raw []byte) error {
	schema, err := compiler(k)
	if err != nil {
		return err
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("dto: %s payload is not valid JSON: %w", k, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("dto: %s payload failed schema validation: %w", k, err)
	}
	return nil
}

// DecodeGmod validates and decodes a "gmod" resource document.
func DecodeGmod(raw []byte) (*GmodDto, error) {
	if err := Validate(KindGmod, raw); err != nil {
		return nil, err
	}
	var out GmodDto
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DecodeCodebooks validates and decodes a "codebooks" resource document.
func DecodeCodebooks(raw []byte) (*CodebooksDto, error) {
	if err := Validate(KindCodebooks, raw); err != nil {
		return nil, err
	}
	var out CodebooksDto
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DecodeLocations validates and decodes a "locations" resource document.
func DecodeLocations(raw []byte) (*LocationsDto, error) {
	if err := Validate(KindLocations, raw); err != nil {
		return nil, err
	}
	var out LocationsDto
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DecodeVersioning validates and decodes a "gmod-versioning" resource document.
func DecodeVersioning(raw []byte) (*VersioningDto, error) {
	if err := Validate(KindGmodVersioning, raw); err != nil {
		return nil, err
	}
	var out VersioningDto
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
