// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vault

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/baasify/pkg/types"
)

// vaultFile is the on-disk shape of a saved vault.
type vaultFile struct {
	Assets []types.Asset `yaml:"assets"`
}

// LoadFile reads a vault report from a YAML file. A missing file is an
// error; callers that want an empty vault for a missing file should check
// with os.Stat first.
func LoadFile(path string) (*Vault, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vault file: %w", err)
	}
	var f vaultFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing vault file: %w", err)
	}
	v := New()
	for _, a := range f.Assets {
		if err := v.Add(a); err != nil {
			return nil, fmt.Errorf("loading asset %s: %w", a.ID, err)
		}
	}
	return v, nil
}

// SaveFile writes the vault to a YAML file, overwriting any existing
// content. Assets are written in insertion order.
func (v *Vault) SaveFile(path string) error {
	data, err := yaml.Marshal(vaultFile{Assets: v.List()})
	if err != nil {
		return fmt.Errorf("encoding vault: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing vault file: %w", err)
	}
	return nil
}
