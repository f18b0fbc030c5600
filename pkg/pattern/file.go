package pattern

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Decoder turns raw pattern file text into a Pattern.
type Decoder func(src string) (*Pattern, error)

// decoders maps file extensions to their decoder. A nil entry marks an
// extension that is recognized but whose format has no decoder yet.
var decoders = map[string]Decoder{
	".rle":   DecodeRLE,
	".lif":   nil,
	".life":  nil,
	".cells": nil,
}

// UnsupportedFormatError reports a recognized pattern format that has no
// decoder, as opposed to input that failed to parse.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("pattern format %q is recognized but not supported", e.Ext)
}

// FromFile reads the file at path and decodes it with the decoder selected
// by its extension.
func FromFile(path string) (*Pattern, error) {
	ext := filepath.Ext(path)
	dec, ok := decoders[ext]
	if !ok {
		return nil, errors.Errorf("unrecognized pattern file extension %q", ext)
	}
	if dec == nil {
		return nil, &UnsupportedFormatError{Ext: ext}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read pattern file %s", path)
	}
	return dec(string(data))
}
