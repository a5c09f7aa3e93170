package scene

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/svgbuild/pkg/errors"
)

// Format is a scene file format.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Formats lists the supported formats.
var Formats = []Format{FormatTOML, FormatYAML, FormatJSON}

// ParseFormat accepts a format name. "yml" is an alias for yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeUnsupported, "unsupported scene format %q (use toml, yaml or json)", s)
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(p string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(p), ".")
	if ext == "" {
		return "", errors.New(errors.ErrCodeUnsupported, "cannot infer scene format from %q", p)
	}
	return ParseFormat(ext)
}

// Decode reads a scene in the given format. Unknown keys are rejected so
// typos do not silently drop attributes.
func Decode(r io.Reader, f Format) (*Scene, error) {
	switch f {
	case FormatTOML:
		return DecodeTOML(r)
	case FormatYAML:
		return DecodeYAML(r)
	case FormatJSON:
		return DecodeJSON(r)
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported scene format %q", f)
}

// DecodeTOML reads a TOML scene.
func DecodeTOML(r io.Reader) (*Scene, error) {
	var s Scene
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse toml scene")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, unknownKeys(keys)
	}
	return &s, nil
}

// DecodeYAML reads a YAML scene.
func DecodeYAML(r io.Reader) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if stderrors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse yaml scene")
	}
	return &s, nil
}

// DecodeJSON reads a JSON scene.
func DecodeJSON(r io.Reader) (*Scene, error) {
	var s Scene
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse json scene")
	}
	return &s, nil
}

// Parse decodes data in the given format.
func Parse(data []byte, f Format) (*Scene, error) {
	return Decode(bytes.NewReader(data), f)
}

// Load reads a scene file, inferring its format from the extension.
func Load(p string) (*Scene, error) {
	if err := errors.ValidatePath(p); err != nil {
		return nil, err
	}
	f, err := FormatFromPath(p)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene file %s not found", p)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read scene file %s", p)
	}
	return Parse(data, f)
}

func unknownKeys(keys []string) error {
	sort.Strings(keys)
	return errors.New(errors.ErrCodeInvalidFormat, "unknown keys: %s", strings.Join(keys, ", "))
}
