package guardrail

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// LoadDefinition reads a YAML or JSON definition file. Unknown keys are
// rejected so that a typo does not silently drop a policy. An empty name is
// replaced with a generated one.
func LoadDefinition(path string) (Definition, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext == "" {
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		return Definition{}, fmt.Errorf("failed to read guardrail definition %s: %w", path, err)
	}

	def, err := decodeDefinition(v.AllSettings())
	if err != nil {
		return Definition{}, fmt.Errorf("failed to decode guardrail definition %s: %w", path, err)
	}
	if def.Name == "" {
		def.Name = NewName("guardrail")
	}
	return def, nil
}

func decodeDefinition(raw map[string]any) (Definition, error) {
	var def Definition
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &def,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Definition{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Definition{}, err
	}
	return def, nil
}
