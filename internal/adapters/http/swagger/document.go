package swagger

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Document returns the embedded OpenAPI document with info.version set.
func Document(version string) ([]byte, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(OpenAPI), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: parse openapi: %w", ErrRender, err)
	}
	if err := k.Set("info.version", version); err != nil {
		return nil, fmt.Errorf("%w: set version: %w", ErrRender, err)
	}
	out, err := k.Marshal(yaml.Parser())
	if err != nil {
		return nil, fmt.Errorf("%w: marshal openapi: %w", ErrRender, err)
	}
	return out, nil
}
