package namesec

import (
	"io"

	"github.com/wasmkit/namesec/indexmap"
)

// NameMap associates indices with UTF-8 names.
//
// Note: NameMap is unique by index, but names needn't be unique. Entries
// encode in ascending index order.
type NameMap = indexmap.Map[string]

// ModuleNameSection holds the symbolic identifier of a module. Ex. math
type ModuleNameSection struct {
	// Name is the module name. It can be empty, and this layer enforces no
	// constraints on it beyond valid UTF-8.
	Name string
}

// NewModuleNameSection returns a ModuleNameSection with the given name.
func NewModuleNameSection(name string) *ModuleNameSection {
	return &ModuleNameSection{Name: name}
}

// NameType implements Section.NameType.
func (s *ModuleNameSection) NameType() uint8 {
	return NameTypeModule
}

// EncodeData implements Section.EncodeData.
func (s *ModuleNameSection) EncodeData() []byte {
	return encodeName(s.Name)
}

func decodeModuleNameData(r io.Reader) (Section, error) {
	name, err := decodeName(r)
	if err != nil {
		return nil, err
	}
	return &ModuleNameSection{Name: name}, nil
}

// FunctionNameSection associates function indices with their symbolic
// identifiers. Ex. add
//
// The index is in the function namespace, where module-defined functions are
// preceded by imported ones. Functions without an entry are unnamed; indices
// needn't be contiguous or start at zero.
type FunctionNameSection struct {
	Names NameMap
}

// NameType implements Section.NameType.
func (s *FunctionNameSection) NameType() uint8 {
	return NameTypeFunctionNames
}

// EncodeData implements Section.EncodeData.
func (s *FunctionNameSection) EncodeData() []byte {
	return indexmap.Encode(s.Names, encodeName)
}

func decodeFunctionNamesData(r io.Reader) (Section, error) {
	names, err := indexmap.Decode(r, decodeName)
	if err != nil {
		return nil, err
	}
	return &FunctionNameSection{Names: names}, nil
}

// LocalNameSection associates function indices with the names of their local
// variables. Ex. add x
//
// The outer index is in the function namespace; each inner index is in the
// local namespace of that function, where parameters precede any function
// locals. Whether an index refers to a real function or local is not checked
// here; that is the concern of whoever owns the surrounding module.
type LocalNameSection struct {
	LocalNames indexmap.Map[NameMap]
}

// NameType implements Section.NameType.
func (s *LocalNameSection) NameType() uint8 {
	return NameTypeLocalNames
}

// EncodeData implements Section.EncodeData.
func (s *LocalNameSection) EncodeData() []byte {
	return indexmap.Encode(s.LocalNames, func(locals NameMap) []byte {
		return indexmap.Encode(locals, encodeName)
	})
}

func decodeLocalNamesData(r io.Reader) (Section, error) {
	localNames, err := indexmap.Decode(r, func(r io.Reader) (NameMap, error) {
		return indexmap.Decode(r, decodeName)
	})
	if err != nil {
		return nil, err
	}
	return &LocalNameSection{LocalNames: localNames}, nil
}

// UnparsedNameSection holds a subsection this package has no codec for. The
// payload is kept verbatim so it re-encodes byte-exactly.
type UnparsedNameSection struct {
	// Tag is the name type byte, any value other than 0, 1 or 2.
	Tag uint8
	// Data is the raw subsection payload.
	Data []byte
}

// NameType implements Section.NameType.
func (s *UnparsedNameSection) NameType() uint8 {
	return s.Tag
}

// EncodeData implements Section.EncodeData.
func (s *UnparsedNameSection) EncodeData() []byte {
	return s.Data
}
