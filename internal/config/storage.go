package config

import (
	"os"
	"sync"
)

type StorageConfig struct {
	// BaseDir is the root of the local artifact store. CV files live under
	// <BaseDir>/users/<user_id>/cvs, report artifacts under
	// <BaseDir>/users/<user_id>/reports.
	BaseDir     string
	MaxFileMB   int64
	MaxPDFPages int
}

var (
	storageConfig *StorageConfig
	storageOnce   sync.Once
)

func LoadStorageConfig() *StorageConfig {
	storageOnce.Do(func() {
		baseDir := os.Getenv("STORAGE_DIR")
		if baseDir == "" {
			baseDir = "./uploads"
		}
		storageConfig = &StorageConfig{
			BaseDir:     baseDir,
			MaxFileMB:   5,
			MaxPDFPages: 5,
		}
	})
	return storageConfig
}
