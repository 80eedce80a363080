package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "todoboard-config.schema.json"

const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "todoboard configuration",
  "type": "object",
  "required": ["columns", "id_format", "log_level", "log_format"],
  "additionalProperties": false,
  "properties": {
    "columns": {"type": "integer", "minimum": 1, "maximum": 8},
    "alt_screen": {"type": "boolean"},
    "id_format": {"enum": ["uuid", "ulid"]},
    "log_dir": {"type": "string"},
    "log_level": {"enum": ["debug", "info", "warn", "warning", "error"]},
    "log_format": {"enum": ["text", "json", "logfmt"]},
    "log_timestamps": {"type": "boolean"},
    "log_caller": {"type": "boolean"}
  }
}`

// ValidationError is a single schema violation.
type ValidationError struct {
	Path string // dotted path of the offending key
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Schema returns the JSON Schema the configuration is validated against.
func Schema() string {
	return schemaJSON
}

// Validate checks cfg against the embedded JSON Schema.
// All violations are returned joined; each is a *ValidationError.
func Validate(cfg *Config) error {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
		return fmt.Errorf("load config schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}

	doc, err := document(cfg)
	if err != nil {
		return err
	}

	if err := schema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return fmt.Errorf("validate config: %w", err)
		}
		var errs []error
		collectSchemaErrors(&errs, ve)
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// document converts cfg to the generic JSON value the validator expects.
func document(cfg *Config) (interface{}, error) {
	data, err := json.Marshal(map[string]interface{}{
		"columns":        cfg.Columns,
		"alt_screen":     cfg.AltScreen,
		"id_format":      cfg.IDFormat,
		"log_dir":        cfg.LogDir,
		"log_level":      cfg.LogLevel,
		"log_format":     cfg.LogFormat,
		"log_timestamps": cfg.LogTimestamps,
		"log_caller":     cfg.LogCaller,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal config for validation: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal config for validation: %w", err)
	}
	return doc, nil
}

func collectSchemaErrors(errs *[]error, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}
	if len(err.Causes) == 0 {
		*errs = append(*errs, &ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  errors.New(err.Message),
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(errs, cause)
	}
}

// jsonPointerToPath converts a JSON Pointer such as "/a/0/b" to "a[0].b".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
