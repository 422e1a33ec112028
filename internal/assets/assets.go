// Package assets copies the files a converted topology references into
// the new project tree: renamed startup configurations and artwork
// images. Missing source files are reported as warnings, never as
// errors; the conversion result stays usable without them.
package assets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"topoconvert/internal/domain"
)

// Manager copies referenced assets relative to the old project
// directory into the new project files directory.
type Manager struct {
	log *logrus.Logger
}

// NewManager creates an asset manager.
func NewManager(log *logrus.Logger) *Manager {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Manager{log: log}
}

// Report summarizes an asset copy pass.
type Report struct {
	CopiedConfigs int
	CopiedImages  int
	Missing       []string
}

// CopyConfigs copies startup configurations from the old project
// directory into <filesDir>/dynamips/configs under their new names.
func (m *Manager) CopyConfigs(oldDir, filesDir string, pairs []domain.ConfigPair) (*Report, error) {
	report := &Report{}
	if len(pairs) == 0 {
		return report, nil
	}

	configDir := filepath.Join(filesDir, "dynamips", "configs")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}

	for _, pair := range pairs {
		src := filepath.Join(oldDir, pair.Old)
		dst := filepath.Join(configDir, pair.New)
		if err := copyFile(src, dst); err != nil {
			report.Missing = append(report.Missing, pair.Old)
			m.log.WithField("config", pair.Old).Warn("startup configuration not found")
			continue
		}
		report.CopiedConfigs++
	}
	return report, nil
}

// CopyImages copies artwork images into <filesDir>/images, keeping
// their base names.
func (m *Manager) CopyImages(oldDir, filesDir string, paths []string) (*Report, error) {
	report := &Report{}
	if len(paths) == 0 {
		return report, nil
	}

	imageDir := filepath.Join(filesDir, "images")
	if err := os.MkdirAll(imageDir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}

	for _, path := range paths {
		src := path
		if !filepath.IsAbs(src) {
			src = filepath.Join(oldDir, src)
		}
		dst := filepath.Join(imageDir, filepath.Base(path))
		if err := copyFile(src, dst); err != nil {
			report.Missing = append(report.Missing, path)
			m.log.WithField("image", path).Warn("image not found")
			continue
		}
		report.CopiedImages++
	}
	return report, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
