package installer

import (
	"archive/tar"    // For reading .tar archives
	"archive/zip"    // For reading .zip archives
	"compress/bzip2" // For reading .bz2 compressed data
	"compress/gzip"  // For reading .gz compressed data
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"arch-setup/internal/logger"
	"github.com/bodgit/sevenzip" // For reading .7z archives
	"github.com/spf13/afero"
	"github.com/xi2/xz" // For reading .xz compressed data
)

// archiveExtensions are the formats ExtractArchive understands, longest first.
var archiveExtensions = []string{".tar.gz", ".tgz", ".tar.bz2", ".tar.xz", ".tar", ".zip", ".7z"}

// archiveStem strips a known archive extension from a file name.
func archiveStem(name string) string {
	base := filepath.Base(name)
	for _, ext := range archiveExtensions {
		if strings.HasSuffix(base, ext) {
			return strings.TrimSuffix(base, ext)
		}
	}
	return base
}

// ExtractArchive unpacks src into dest on fs and returns the path of the
// archive's top-level entry (usually its single root directory).
func ExtractArchive(fs afero.Fs, src, dest string) (string, error) {
	switch {
	case strings.HasSuffix(src, ".zip"):
		logger.Debug("[DEBUG] compression type is zip\n")
		return extractZip(fs, src, dest)
	case strings.HasSuffix(src, ".7z"):
		logger.Debug("[DEBUG] compression type is .7z\n")
		return extract7z(fs, src, dest)
	case strings.HasSuffix(src, ".tar"), strings.HasSuffix(src, ".tar.gz"), strings.HasSuffix(src, ".tgz"),
		strings.HasSuffix(src, ".tar.bz2"), strings.HasSuffix(src, ".tar.xz"):
		logger.Debug("[DEBUG] compression type is .tar.*\n")
		return extractTarArchive(fs, src, dest)
	default:
		return "", fmt.Errorf("unsupported archive format: %s", src)
	}
}

// entryPath joins an archive entry name onto dest, refusing names that escape it.
func entryPath(dest, name string) (string, error) {
	target := filepath.Join(dest, name)
	if target != filepath.Clean(dest) && !strings.HasPrefix(target, filepath.Clean(dest)+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry %q escapes %s", name, dest)
	}
	return target, nil
}

// topLevelOf returns the first path element of an archive entry name.
func topLevelOf(name string) string {
	name = strings.TrimPrefix(name, "./")
	return strings.SplitN(name, "/", 2)[0]
}

func writeEntry(fs afero.Fs, target string, mode os.FileMode, r io.Reader) error {
	if err := fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	if mode.Perm() == 0 {
		mode = 0644
	}
	out, err := fs.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}
	_, err = io.Copy(out, r)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}

// extractTarArchive handles tar and compressed tar variants
func extractTarArchive(fs afero.Fs, src, dest string) (string, error) {
	logger.Debug("[DEBUG] uncompressing %s to %s\n", src, dest)
	f, err := fs.Open(src)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var reader io.Reader = f
	switch {
	case strings.HasSuffix(src, ".tar.gz"), strings.HasSuffix(src, ".tgz"):
		gr, err := gzip.NewReader(f)
		if err != nil {
			return "", err
		}
		defer gr.Close()
		reader = gr
	case strings.HasSuffix(src, ".tar.bz2"):
		reader = bzip2.NewReader(f)
	case strings.HasSuffix(src, ".tar.xz"):
		xzr, err := xz.NewReader(f, 0)
		if err != nil {
			return "", err
		}
		reader = xzr
	}

	tr := tar.NewReader(reader)
	var topLevel string

	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		if topLevel == "" {
			topLevel = topLevelOf(hdr.Name)
		}

		target, err := entryPath(dest, hdr.Name)
		if err != nil {
			return "", err
		}
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := fs.MkdirAll(target, 0755); err != nil {
				return "", err
			}
		case tar.TypeReg:
			if err := writeEntry(fs, target, os.FileMode(hdr.Mode), tr); err != nil {
				return "", err
			}
		default:
			logger.Debug("[DEBUG] Skipping tar entry %s (type %c)\n", hdr.Name, hdr.Typeflag)
		}
	}
	return filepath.Join(dest, topLevel), nil
}

// extractZip extracts a .zip archive
func extractZip(fs afero.Fs, src, dest string) (string, error) {
	f, err := fs.Open(src)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	r, err := zip.NewReader(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("failed to open zip archive: %w", err)
	}

	var topLevel string
	for _, zf := range r.File {
		if topLevel == "" {
			topLevel = topLevelOf(zf.Name)
		}
		target, err := entryPath(dest, zf.Name)
		if err != nil {
			return "", err
		}
		if zf.FileInfo().IsDir() {
			if err := fs.MkdirAll(target, 0755); err != nil {
				return "", err
			}
			continue
		}
		rc, err := zf.Open()
		if err != nil {
			return "", err
		}
		err = writeEntry(fs, target, zf.Mode(), rc)
		rc.Close()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(dest, topLevel), nil
}

// extract7z handles .7z extraction using the sevenzip library
func extract7z(fs afero.Fs, src, dest string) (string, error) {
	f, err := fs.Open(src)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	r, err := sevenzip.NewReader(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("failed to open 7z archive: %w", err)
	}

	var topLevel string
	for _, sf := range r.File {
		if topLevel == "" {
			topLevel = topLevelOf(sf.Name)
		}
		target, err := entryPath(dest, sf.Name)
		if err != nil {
			return "", err
		}
		if sf.FileInfo().IsDir() {
			if err := fs.MkdirAll(target, 0755); err != nil {
				return "", err
			}
			continue
		}
		rc, err := sf.Open()
		if err != nil {
			return "", err
		}
		err = writeEntry(fs, target, sf.Mode(), rc)
		rc.Close()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(dest, topLevel), nil
}
