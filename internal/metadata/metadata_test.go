package metadata

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_InfersKindFromRootElement(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Module.xml")
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<CommonModule>
  <MetaDataObject uuid="11111111-2222-3333-4444-555555555555">
    <Properties>
      <Name>MyCommonModule</Name>
    </Properties>
  </MetaDataObject>
</CommonModule>
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Kind != "CommonModule" {
		t.Errorf("Kind = %q, want CommonModule", got.Kind)
	}
	if got.Name != "MyCommonModule" {
		t.Errorf("Name = %q, want MyCommonModule", got.Name)
	}
	if got.UUID != "11111111-2222-3333-4444-555555555555" {
		t.Errorf("UUID = %q, want the uuid attribute value", got.UUID)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.xml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestPair_FindsSiblingXML(t *testing.T) {
	dir := t.TempDir()
	bsl := filepath.Join(dir, "Module.bsl")
	xmlPath := filepath.Join(dir, "Module.xml")
	if err := os.WriteFile(bsl, []byte("Procedure P()\nEndProcedure\n"), 0o644); err != nil {
		t.Fatalf("write .bsl: %v", err)
	}
	if err := os.WriteFile(xmlPath, []byte("<CommonModule/>"), 0o644); err != nil {
		t.Fatalf("write .xml: %v", err)
	}

	got, ok := Pair(bsl)
	if !ok {
		t.Fatal("expected a sibling .xml to be found")
	}
	if got != xmlPath {
		t.Errorf("Pair = %q, want %q", got, xmlPath)
	}
}

func TestPair_NoSibling(t *testing.T) {
	dir := t.TempDir()
	bsl := filepath.Join(dir, "Module.bsl")
	if err := os.WriteFile(bsl, []byte("Procedure P()\nEndProcedure\n"), 0o644); err != nil {
		t.Fatalf("write .bsl: %v", err)
	}
	if _, ok := Pair(bsl); ok {
		t.Error("expected no pair when the sibling .xml does not exist")
	}
}

func TestPair_RejectsNonBslPath(t *testing.T) {
	if _, ok := Pair("/tmp/Module.txt"); ok {
		t.Error("Pair should only accept .bsl paths")
	}
}
