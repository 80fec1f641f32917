// Package answerfile reads answer sets from YAML or JSON files so a
// screening can be scored without the interactive questionnaire.
//
//	name: Kim Minji
//	asrs: {1: 3, 2: 4, ...}
//	impairment: {1: yes, 2: no, 3: yes}
//	wurs: {1: 2, ...}
package answerfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/mindcheck/screener/internal/domain"
)

var ErrUnsupportedFormat = errors.New("unsupported answer file format")

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// File is the on-disk shape. Keys are item ids.
type File struct {
	Name       string         `json:"name,omitempty" yaml:"name,omitempty" validate:"omitempty,min=2"`
	ASRS       map[int]int    `json:"asrs" yaml:"asrs" validate:"required,len=18,dive,keys,min=1,max=18,endkeys,min=0,max=4"`
	Impairment map[int]string `json:"impairment" yaml:"impairment" validate:"required,len=3,dive,keys,min=1,max=3,endkeys,oneof=yes no"`
	WURS       map[int]int    `json:"wurs" yaml:"wurs" validate:"required,len=25,dive,keys,min=1,max=25,endkeys,min=0,max=4"`
}

// FormatFromPath picks the decoder from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q (want .yaml, .yml or .json)", ErrUnsupportedFormat, filepath.Ext(path))
}

// ParseFormat accepts "yaml", "yml" or "json".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Load reads and decodes an answer file.
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening answer file: %w", err)
	}
	defer f.Close()
	return Decode(f, format)
}

func Decode(r io.Reader, format Format) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading answer file: %w", err)
	}

	var file File
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing yaml answer file: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf("parsing json answer file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return &file, nil
}

// AnswerSet converts the file leniently: missing maps become empty and any
// impairment answer other than yes/y counts as no.
func (f *File) AnswerSet() domain.AnswerSet {
	set := domain.NewAnswerSet()
	for id, v := range f.ASRS {
		set.ASRS[id] = v
	}
	for id, v := range f.Impairment {
		set.Impairment[id] = domain.ParseYesNo(v)
	}
	for id, v := range f.WURS {
		set.WURS[id] = v
	}
	return set
}

// FromAnswerSet builds a file from stored answers, e.g. to re-export a
// screening for later rescoring.
func FromAnswerSet(name string, set domain.AnswerSet) *File {
	f := &File{
		Name:       name,
		ASRS:       map[int]int{},
		Impairment: map[int]string{},
		WURS:       map[int]int{},
	}
	for id, v := range set.ASRS {
		f.ASRS[id] = v
	}
	for id, v := range set.Impairment {
		f.Impairment[id] = string(v)
	}
	for id, v := range set.WURS {
		f.WURS[id] = v
	}
	return f
}

// Encode writes the file in the given format.
func (f *File) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("encoding yaml answer file: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("encoding json answer file: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
