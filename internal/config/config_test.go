package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  host: "127.0.0.1"
  port: 9000
catalog:
  path: "./data/products.csv"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 9000 {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	wantPath := filepath.Join(dir, "data", "products.csv")
	if cfg.Catalog.Path != wantPath {
		t.Errorf("catalog path = %q, want %q", cfg.Catalog.Path, wantPath)
	}
	if cfg.Debug {
		t.Error("debug should default to false when unset")
	}
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Host != "localhost" || cfg.Server.Port != 8080 {
		t.Errorf("server defaults not applied: %+v", cfg.Server)
	}
	if cfg.Catalog.Table != "products" {
		t.Errorf("catalog table default = %q", cfg.Catalog.Table)
	}
	if cfg.Compare.DefaultSort != SortSponsoredFirst {
		t.Errorf("default sort = %q, want %q", cfg.Compare.DefaultSort, SortSponsoredFirst)
	}
	if cfg.Compare.MaxResults != 50 {
		t.Errorf("max results default = %d, want 50", cfg.Compare.MaxResults)
	}
	if cfg.Compare.OtherGenderColumn != "female" {
		t.Errorf("other gender column default = %q, want female", cfg.Compare.OtherGenderColumn)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestLoad_AbsoluteCatalogPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "catalog:\n  path: \"/var/lib/kuraberu/products.csv\"\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Catalog.Path != "/var/lib/kuraberu/products.csv" {
		t.Errorf("absolute path should be untouched, got %q", cfg.Catalog.Path)
	}
}
