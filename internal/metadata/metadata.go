// Package metadata reads the minimal slice of a configuration's XML
// metadata this toolchain needs: which kind of module a .bsl file is
// (CommonModule, ObjectModule, a form, ...), used to pick the right
// internal/global.Context before parsing it. Configuration XML is a large,
// deeply-nested format; stdlib encoding/xml decodes only the handful of
// elements named below rather than the whole document, so no third-party
// XML library is pulled in just to ignore almost everything it parses.
package metadata

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ObjectMeta is the slice of a MetaDataObject's XML this toolchain reads.
type ObjectMeta struct {
	UUID string `xml:"uuid,attr"`
	Name string `xml:"Properties>Name"`
	Kind string `xml:"-"`
}

type propertiesXML struct {
	Name string `xml:"Name"`
}

type metaDataObjectXML struct {
	UUID       string        `xml:"uuid,attr"`
	Properties propertiesXML `xml:"Properties"`
}

type metaDataXML struct {
	XMLName xml.Name          `xml:""`
	Object  metaDataObjectXML `xml:"MetaDataObject"`
}

// Load parses a single MetaDataObject .xml file, inferring its module kind
// from the root element's local name (CommonModule, Catalog, Document, …
// — the element the configuration exporter uses for the object itself,
// not a generic wrapper name).
func Load(path string) (ObjectMeta, error) {
	f, err := os.Open(path)
	if err != nil {
		return ObjectMeta{}, fmt.Errorf("metadata: open %s: %w", path, err)
	}
	defer f.Close()

	var doc metaDataXML
	dec := xml.NewDecoder(f)
	if err := dec.Decode(&doc); err != nil {
		return ObjectMeta{}, fmt.Errorf("metadata: decode %s: %w", path, err)
	}
	return ObjectMeta{
		UUID: doc.Object.UUID,
		Name: doc.Object.Properties.Name,
		Kind: doc.XMLName.Local,
	}, nil
}

// Pair locates the metadata XML file that describes a given module's .bsl
// source, by convention a sibling file with the same base name and an
// .xml extension — the layout an exported 1C configuration tree always
// uses. Grounded on the original implementation's module-pairing helper
// (original_source's ripper/utils module), which walks a configuration
// tree pairing each *Module.bsl with its *.xml sibling the same way.
func Pair(bslPath string) (string, bool) {
	if !strings.HasSuffix(strings.ToLower(bslPath), ".bsl") {
		return "", false
	}
	candidate := strings.TrimSuffix(bslPath, filepath.Ext(bslPath)) + ".xml"
	if _, err := os.Stat(candidate); err != nil {
		return "", false
	}
	return candidate, true
}
