package dictionary

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for files whose extension maps to no format.
var ErrUnknownFormat = errors.New("unknown source format")

// FileFormat represents the supported source file formats
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatTOML
	FormatYAML
	FormatJSON
	FormatMsgpack
)

// FormatInfo contains metadata about a source file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatTOML: {
		Format:      FormatTOML,
		Description: "TOML word list",
		Extensions:  []string{".toml"},
	},
	FormatYAML: {
		Format:      FormatYAML,
		Description: "YAML word list",
		Extensions:  []string{".yaml", ".yml"},
	},
	FormatJSON: {
		Format:      FormatJSON,
		Description: "JSON word list",
		Extensions:  []string{".json"},
	},
	FormatMsgpack: {
		Format:      FormatMsgpack,
		Description: "msgpack word list",
		Extensions:  []string{".msgpack", ".bin"},
	},
}

func (f FileFormat) String() string {
	if info, ok := GetFormatInfo(f); ok {
		return info.Description
	}
	return "unknown"
}

// sourceDocument is the on-disk shape of every format.
type sourceDocument struct {
	Words []WordPair `toml:"words" yaml:"words" json:"words" msgpack:"words"`
}

// DetectFileFormat picks the format from the file extension.
func DetectFileFormat(filename string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for format, info := range supportedFormats {
		for _, e := range info.Extensions {
			if ext == e {
				return format, nil
			}
		}
	}
	return FormatUnknown, fmt.Errorf("%w: %s", ErrUnknownFormat, filename)
}

// GetFormatInfo returns information about a specific format
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}

// DecodeSource reads a word list in the given format.
// An empty document yields an empty list.
func DecodeSource(r io.Reader, format FileFormat) ([]WordPair, error) {
	var doc sourceDocument
	var err error

	switch format {
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&doc)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&doc)
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&doc)
	case FormatMsgpack:
		err = msgpack.NewDecoder(r).Decode(&doc)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}
	return doc.Words, nil
}

// EncodeSource writes a word list in the given format.
func EncodeSource(w io.Writer, format FileFormat, pairs []WordPair) error {
	doc := sourceDocument{Words: pairs}

	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(doc)
	}
	return fmt.Errorf("%w: %v", ErrUnknownFormat, format)
}

// LoadSource reads a word list file, choosing the format from its extension.
func LoadSource(filename string) ([]WordPair, error) {
	format, err := DetectFileFormat(filename)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open source %s: %w", filename, err)
	}
	defer file.Close()

	pairs, err := DecodeSource(file, format)
	if err != nil {
		return nil, fmt.Errorf("failed to read source %s: %w", filename, err)
	}
	log.Debugf("Source %s loaded: %d words (%s)", filename, len(pairs), format)
	return pairs, nil
}

// SaveSource writes pairs to filename, choosing the format from its extension.
func SaveSource(filename string, pairs []WordPair) error {
	format, err := DetectFileFormat(filename)
	if err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	if err := EncodeSource(file, format, pairs); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return file.Close()
}
