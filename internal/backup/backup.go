package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"routinely/internal/logger"
)

const (
	// MaxBackups is how many backups rotation keeps.
	MaxBackups = 14
	// DirName is the backup directory next to the store file.
	DirName = "backups"
	// FilePrefix namespaces backup files.
	FilePrefix = "routinely-"

	timestampFormat = "20060102-150405"
)

// Info describes one backup file.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager snapshots the store file (JSON or SQLite alike) into a sibling
// backups directory. The store works the same way for either format, so a
// plain file copy is a complete backup.
type Manager struct {
	storePath string
	backupDir string
}

func NewManager(storePath string) *Manager {
	return &Manager{
		storePath: storePath,
		backupDir: filepath.Join(filepath.Dir(storePath), DirName),
	}
}

func (m *Manager) BackupDir() string {
	return m.backupDir
}

// Create snapshots the current store file and rotates old backups.
func (m *Manager) Create() (string, error) {
	return m.create(true)
}

func (m *Manager) create(rotate bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	if _, err := os.Stat(m.storePath); os.IsNotExist(err) {
		return "", fmt.Errorf("store does not exist: %s", m.storePath)
	}

	name := FilePrefix + time.Now().Format(timestampFormat) + filepath.Ext(m.storePath)
	dest := filepath.Join(m.backupDir, name)

	// Same-second collisions get a numeric suffix.
	for counter := 1; ; counter++ {
		if _, err := os.Stat(dest); os.IsNotExist(err) {
			break
		}
		dest = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s",
			FilePrefix, time.Now().Format(timestampFormat), counter, filepath.Ext(m.storePath)))
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
	}

	if err := copyFile(m.storePath, dest); err != nil {
		return "", fmt.Errorf("failed to copy store file: %w", err)
	}

	if rotate {
		if err := m.rotate(); err != nil {
			// Rotation trouble should not fail the backup itself.
			logger.Warn("failed to rotate old backups", "error", err)
		}
	}

	return dest, nil
}

// List returns the available backups, newest first.
func (m *Manager) List() ([]Info, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), FilePrefix) {
			continue
		}

		stamp := strings.TrimPrefix(entry.Name(), FilePrefix)
		stamp = strings.TrimSuffix(stamp, filepath.Ext(stamp))
		// Drop a collision counter suffix if present.
		if len(stamp) > len(timestampFormat) {
			stamp = stamp[:len(timestampFormat)]
		}

		ts, err := time.Parse(timestampFormat, stamp)
		if err != nil {
			continue
		}

		path := filepath.Join(m.backupDir, entry.Name())
		fi, err := os.Stat(path)
		if err != nil {
			continue
		}

		backups = append(backups, Info{Path: path, Timestamp: ts, Size: fi.Size()})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups, nil
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}

	for i := MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// Restore replaces the store file with a backup. The current store is
// snapshotted first so a bad restore is recoverable.
func (m *Manager) Restore(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupPath)
	}

	if _, err := os.Stat(m.storePath); err == nil {
		pre, err := m.create(false)
		if err != nil {
			return fmt.Errorf("failed to snapshot current store before restore: %w", err)
		}
		fmt.Printf("Saved current store as: %s\n", filepath.Base(pre))
	}

	// Copy to a temp file and rename so the swap is atomic.
	tmp := m.storePath + ".restore.tmp"
	if err := copyFile(backupPath, tmp); err != nil {
		return fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tmp, m.storePath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to restore store: %w", err)
	}

	return nil
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}

	return destFile.Sync()
}
