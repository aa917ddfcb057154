package tasks

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func testRunner(t *testing.T) (*Runner, string) {
	t.Helper()
	dir := t.TempDir()
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	return NewRunner(logger, dir), dir
}

// TestValidateDeployTarget verifies unset and placeholder values are rejected
func TestValidateDeployTarget(t *testing.T) {
	cases := []struct {
		name          string
		functionApp   string
		resourceGroup string
		wantErr       bool
	}{
		{"valid", "my-app", "my-rg", false},
		{"empty function app", "", "my-rg", true},
		{"empty resource group", "my-app", "", true},
		{"placeholder function app", PlaceholderFunctionApp, "my-rg", true},
		{"placeholder resource group", "my-app", PlaceholderResourceGroup, true},
		{"both unset", "", "", true},
	}

	for _, tc := range cases {
		err := ValidateDeployTarget(tc.functionApp, tc.resourceGroup)
		if tc.wantErr && err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
	}
}

// TestClean verifies build artifacts are removed and other files kept
func TestClean(t *testing.T) {
	runner, dir := testRunner(t)

	if err := os.MkdirAll(filepath.Join(dir, "bin"), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"bin/server", "coverage.out", "function-app.zip", "go.mod"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if err := runner.Clean(); err != nil {
		t.Fatalf("Expected clean to succeed, got %v", err)
	}

	for _, name := range []string{"bin", "coverage.out", "function-app.zip"} {
		if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
			t.Errorf("Expected %s to be removed", name)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "go.mod")); err != nil {
		t.Error("Expected go.mod to be kept")
	}
}

// TestCreateZip verifies the deployment package layout
func TestCreateZip(t *testing.T) {
	runner, dir := testRunner(t)

	if err := os.MkdirAll(filepath.Join(dir, "bin"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "host.json"), []byte(`{"version": "2.0"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bin", "server"), []byte("binary"), 0o755); err != nil {
		t.Fatal(err)
	}

	packagePath := filepath.Join(dir, PackageName)
	if err := runner.createZip(packagePath); err != nil {
		t.Fatalf("Expected zip creation to succeed, got %v", err)
	}

	zr, err := zip.OpenReader(packagePath)
	if err != nil {
		t.Fatalf("Failed to open package: %v", err)
	}
	defer zr.Close()

	found := make(map[string]bool)
	for _, f := range zr.File {
		found[f.Name] = true
	}

	for _, want := range []string{"host.json", "bin/server"} {
		if !found[want] {
			t.Errorf("Expected %s in package, got %v", want, found)
		}
	}
}
