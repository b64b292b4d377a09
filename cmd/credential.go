package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// credential carries the secrets used to authenticate against the target.
// Ref is the reference the password was resolved from and is the only part
// safe to print.
type credential struct {
	Ref        string
	Password   string
	KeyPath    string
	Passphrase string
}

// hasPassword reports whether password auth is used.
func (c credential) hasPassword() bool { return c.Password != "" }

// sshpassSecret returns the secret the local ssh clients must be fed through
// sshpass, and the prompt to answer ("" for the password prompt). A key
// passphrase wins because ssh asks for it before falling back to a password.
func (c credential) sshpassSecret() (prompt, secret string, ok bool) {
	switch {
	case c.Passphrase != "":
		return "passphrase", c.Passphrase, true
	case c.Password != "":
		return "", c.Password, true
	}
	return "", "", false
}

// String never reveals the secret values.
func (c credential) String() string {
	switch {
	case c.Ref != "":
		return c.Ref
	case c.KeyPath != "":
		return "key:" + c.KeyPath
	default:
		return "agent"
	}
}

// resolveCredential turns a credential reference into a credential. Supported
// references are "env:NAME" and "file:PATH"; an empty reference means key or
// agent authentication only.
func resolveCredential(ref, keyPath, passphrase string) (credential, error) {
	c := credential{Ref: strings.TrimSpace(ref), KeyPath: keyPath, Passphrase: passphrase}
	if c.Ref == "" {
		return c, nil
	}
	scheme, value, ok := strings.Cut(c.Ref, ":")
	if !ok || value == "" {
		return credential{}, fmt.Errorf("credential reference %q must look like env:NAME or file:PATH", c.Ref)
	}
	switch scheme {
	case "env":
		v, set := os.LookupEnv(value)
		if !set || v == "" {
			return credential{}, fmt.Errorf("credential environment variable %s is not set", value)
		}
		c.Password = v
	case "file":
		b, err := afero.ReadFile(appFs, value)
		if err != nil {
			return credential{}, fmt.Errorf("read credential file: %w", err)
		}
		c.Password = strings.TrimRight(string(b), "\r\n")
		if c.Password == "" {
			return credential{}, fmt.Errorf("credential file %s is empty", value)
		}
	default:
		return credential{}, fmt.Errorf("unsupported credential scheme %q", scheme)
	}
	return c, nil
}
