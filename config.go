package xgxresult

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// PolicyConfig is the declarative form of a Policy, as read from YAML:
//
//	expects: [file_not_found, parse]
//	not_expects: [permission]
//
// A missing expects key keeps the default (every kind); an explicit empty
// list expects nothing. not_expects extends the language- and system-level
// defaults.
type PolicyConfig struct {
	Expects    []Kind `yaml:"expects"`
	NotExpects []Kind `yaml:"not_expects"`
}

// Options converts c into policy options.
func (c PolicyConfig) Options() []PolicyOption {
	var opts []PolicyOption
	if c.Expects != nil {
		opts = append(opts, WithExpects(c.Expects...))
	}
	if len(c.NotExpects) > 0 {
		opts = append(opts, WithNotExpects(c.NotExpects...))
	}
	return opts
}

// Policy builds the Policy c describes.
func (c PolicyConfig) Policy() Policy { return NewPolicy(c.Options()...) }

// ParsePolicyConfig decodes a YAML policy. Malformed YAML or unknown fields
// yield Err of kind parse; an undefined kind yields Err of kind value.
func ParsePolicyConfig(data []byte) Result[PolicyConfig] {
	return Call(func() (PolicyConfig, error) {
		var c PolicyConfig
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return PolicyConfig{}, Wrap(KindParse, err)
		}
		for _, k := range append(append([]Kind(nil), c.Expects...), c.NotExpects...) {
			if !k.Defined() {
				return PolicyConfig{}, Errorf(KindValue, "undefined kind %q", k)
			}
		}
		return c, nil
	}, WithExpects(KindValue))
}

// LoadPolicyConfig reads and decodes a YAML policy file. A missing or
// unreadable file yields Err of an os kind.
func LoadPolicyConfig(path string) Result[PolicyConfig] {
	return Call(func() (PolicyConfig, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return PolicyConfig{}, err
		}
		return ParsePolicyConfig(data).Get()
	}, WithExpects(KindOS, KindValue))
}
