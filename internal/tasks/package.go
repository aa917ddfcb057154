package tasks

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// PackageName is the deployment package written by AzPackage
const PackageName = "function-app.zip"

// Files carried into the deployment package alongside the server binary
var packageIncludes = []string{
	"host.json",
	"bin/server",
}

// buildServerBinary compiles the server entrypoint for the Functions host
func (r *Runner) buildServerBinary() error {
	r.logger.Info("Building server binary...")

	cmd := []string{"build", "-o", "bin/server", "./cmd/server"}
	return r.run("go", cmd...)
}

// AzPackage creates the zip deployment package for Azure Functions
func (r *Runner) AzPackage() error {
	r.logger.Info("Creating deployment package...")

	packagePath := filepath.Join(r.workDir, PackageName)
	if _, err := os.Stat(packagePath); err == nil {
		if err := os.Remove(packagePath); err != nil {
			return err
		}
		r.logger.Info("Removed existing package")
	}

	// The custom handler is a linux binary regardless of the build host
	os.Setenv("GOOS", "linux")
	os.Setenv("GOARCH", "amd64")
	os.Setenv("CGO_ENABLED", "0")
	if err := r.buildServerBinary(); err != nil {
		return err
	}

	r.logger.Info("Creating zip package...")
	if err := r.createZip(packagePath); err != nil {
		return err
	}

	info, err := os.Stat(packagePath)
	if err != nil {
		return err
	}

	sizeMB := float64(info.Size()) / (1024 * 1024)
	r.logger.Infof("Package created: %s (%.2f MB)", PackageName, sizeMB)

	if sizeMB > 100 {
		r.logger.Warn("Package is larger than 100MB - deployment may be slow")
	} else if sizeMB > 50 {
		r.logger.Warn("Package is larger than 50MB - consider excluding more files")
	}

	return nil
}

func (r *Runner) createZip(packagePath string) error {
	out, err := os.Create(packagePath)
	if err != nil {
		return err
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	defer zw.Close()

	for _, name := range packageIncludes {
		src := filepath.Join(r.workDir, name)
		if err := addFileToZip(zw, src, name); err != nil {
			return err
		}
	}

	return nil
}

func addFileToZip(zw *zip.Writer, src, name string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = strings.ReplaceAll(name, string(os.PathSeparator), "/")
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}

	_, err = io.Copy(w, f)
	return err
}
