// Package filex handles the device key file that backs the sealed session
// storage.
package filex

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/insula/internal/common"
)

const (
	secretSize = 32
	saltSize   = 16
)

// ErrCorruptKeyFile is returned when an existing key file has the wrong size.
var ErrCorruptKeyFile = errors.New("corrupt key file")

// KeyMaterial is the device secret and salt read from the key file.
type KeyMaterial struct {
	Secret []byte
	Salt   []byte
}

// LoadOrCreateKey reads the key file at path, creating it with fresh random
// material (mode 0600, parent directories 0700) when it does not exist.
func LoadOrCreateKey(path string) (*KeyMaterial, error) {
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if len(data) != secretSize+saltSize {
			return nil, fmt.Errorf("%s: %w", path, ErrCorruptKeyFile)
		}
		return &KeyMaterial{Secret: data[:secretSize], Salt: data[secretSize:]}, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("read key file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}

	data = common.GenerateRandByteArray(secretSize + saltSize)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, fmt.Errorf("write key file: %w", err)
	}
	return &KeyMaterial{Secret: data[:secretSize], Salt: data[secretSize:]}, nil
}
