package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Secret is a reference to a value held elsewhere, e.g. "env:XCM_SEED"
type Secret string

type SecretType string

var Env SecretType = "env"
var Vault SecretType = "vault"
var Raw SecretType = "raw"
var File SecretType = "file"

var errInvalidSource = errors.New("invalid secret source for: ***")

var resolvers = map[SecretType]func(ref string) (string, error){
	Raw:   func(ref string) (string, error) { return ref, nil },
	Env:   func(ref string) (string, error) { return strings.TrimSpace(os.Getenv(ref)), nil },
	File:  readFileSecret,
	Vault: readVaultSecret,
}

// GetSecret dereferences a "<type>:<reference>" secret.
// Everything after the first colon is the reference.
func GetSecret(uri string) (string, error) {
	kind, ref, ok := strings.Cut(uri, ":")
	if !ok {
		return "", errInvalidSource
	}
	resolve, ok := resolvers[SecretType(kind)]
	if !ok {
		return "", errInvalidSource
	}
	return resolve(ref)
}

func readFileSecret(path string) (string, error) {
	if len(path) > 1 && path[0] == '~' {
		path = strings.Replace(path, "~", os.Getenv("HOME"), 1)
	}
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()
	contents, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(contents)), nil
}

func (s Secret) Load() (string, error) {
	return GetSecret(string(s))
}

func (s Secret) LoadOrBlank() string {
	deref, _ := GetSecret(string(s))
	return deref
}

func NewRawSecret(secret string) Secret {
	return Secret(fmt.Sprintf("%s:%s", Raw, secret))
}

func HasTypePrefix(secretRef string) bool {
	kind, _, _ := strings.Cut(secretRef, ":")
	_, ok := resolvers[SecretType(kind)]
	return ok
}
