package survey

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"anketa/internal/core"
	"anketa/pkg/schema"

	"gopkg.in/yaml.v3"
)

//go:embed catalog/*.yaml
var builtinDefinitions embed.FS

// Catalog holds survey definitions keyed by lower-cased survey type.
type Catalog struct {
	definitions map[string]*schema.SurveyDefinition
}

// NewCatalog creates a catalog preloaded with the built-in definitions.
func NewCatalog() (*Catalog, error) {
	c := &Catalog{definitions: make(map[string]*schema.SurveyDefinition)}

	entries, err := builtinDefinitions.ReadDir("catalog")
	if err != nil {
		return nil, fmt.Errorf("read built-in definitions: %w", err)
	}
	for _, entry := range entries {
		data, err := builtinDefinitions.ReadFile("catalog/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		if err := c.add(entry.Name(), data); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LoadDir adds every *.yaml definition found in dir, replacing built-ins of the same type.
func (c *Catalog) LoadDir(dir string) error {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return fmt.Errorf("list definitions: %w", err)
	}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if err := c.add(path, data); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the definition for surveyType, matched case-insensitively.
func (c *Catalog) Lookup(surveyType string) (*schema.SurveyDefinition, error) {
	def, ok := c.definitions[strings.ToLower(strings.TrimSpace(surveyType))]
	if !ok {
		return nil, &core.NotFoundError{
			Resource: "survey type",
			Key:      surveyType,
			Message:  "Неизвестный тип анкеты: " + surveyType,
		}
	}
	return def, nil
}

// Types returns the registered survey types, sorted.
func (c *Catalog) Types() []string {
	types := make([]string, 0, len(c.definitions))
	for _, def := range c.definitions {
		types = append(types, def.SurveyType)
	}
	sort.Strings(types)
	return types
}

func (c *Catalog) add(source string, data []byte) error {
	var def schema.SurveyDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return &core.ParseError{Source: source, Message: "invalid survey definition", Err: err}
	}
	if err := schema.ValidateDefinition(&def); err != nil {
		return &core.ConfigurationError{Component: source, Message: err.Error(), Err: err}
	}
	c.definitions[strings.ToLower(def.SurveyType)] = &def
	return nil
}
