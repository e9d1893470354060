package config

import (
	"errors"
	"strings"

	vault "github.com/hashicorp/vault/api"
)

type VaultLoader interface {
	LoadSecretData(path string) (*vault.Secret, error)
}

type DefaultVaultLoader struct {
	*vault.Client
}

var _ VaultLoader = &DefaultVaultLoader{}

func newVaultClient(cfg *vault.Config) (VaultLoader, error) {
	cli, err := vault.NewClient(cfg)
	if err != nil {
		return &DefaultVaultLoader{}, err
	}
	return &DefaultVaultLoader{Client: cli}, nil
}

// Replaced in tests
var NewVaultClient = newVaultClient

func (v *DefaultVaultLoader) LoadSecretData(vaultPath string) (*vault.Secret, error) {
	secret, err := v.Logical().Read(vaultPath)
	// a missing path reads as a nil secret
	if err != nil || secret == nil {
		return &vault.Secret{}, err
	}
	return secret, nil
}

// readVaultSecret resolves "<url>,<path>/<key>" against a kv v2 mount.
// VAULT_TOKEN is read from the environment by the vault client.
func readVaultSecret(ref string) (string, error) {
	args := strings.Split(ref, ",")
	if len(args) != 2 {
		return "", errors.New("vault secret has 2 comma separated arguments (url,path)")
	}
	url, fullPath := args[0], args[1]

	idx := strings.LastIndex(fullPath, "/")
	if idx == -1 || idx == len(fullPath)-1 {
		return "", errors.New("malformed vault secret in config file")
	}
	path, key := fullPath[:idx], fullPath[idx+1:]

	client, err := NewVaultClient(&vault.Config{Address: url})
	if err != nil {
		return "", err
	}
	secret, err := client.LoadSecretData(path)
	if err != nil {
		return "", err
	}
	data, _ := secret.Data["data"].(map[string]interface{})
	value, _ := data[key].(string)
	return strings.TrimSpace(value), nil
}
