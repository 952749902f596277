package modules

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/PiDelport/django-develop/internal/settings"
)

// Extensions lists the settings module file extensions in lookup order.
var Extensions = []string{".toml", ".json", ".yaml", ".yml"}

type decodeFunc func(data []byte) (settings.Map, error)

var decoders = map[string]decodeFunc{
	".toml": decodeTOML,
	".json": decodeJSON,
	".yaml": decodeYAML,
	".yml":  decodeYAML,
}

func decodeTOML(data []byte) (settings.Map, error) {
	m := settings.Map{}
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return m, nil
}

// decodeJSON keeps numbers as json.Number so integers survive unchanged
// into the generated settings module.
func decodeJSON(data []byte) (settings.Map, error) {
	var m map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("failed to parse JSON: top level is not an object")
	}
	return settings.Map(m), nil
}

func decodeYAML(data []byte) (settings.Map, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if m == nil {
		m = map[string]any{}
	}
	return settings.Map(m), nil
}
