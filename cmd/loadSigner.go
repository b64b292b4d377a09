package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"golang.org/x/crypto/ssh"
)

// loadSigner reads a private key file, decrypting it when a passphrase is
// given. An encrypted key without a passphrase gets an actionable error.
func loadSigner(path, passphrase string) (ssh.Signer, error) {
	b, err := afero.ReadFile(appFs, path)
	if err != nil {
		return nil, err
	}
	if passphrase != "" {
		return ssh.ParsePrivateKeyWithPassphrase(b, []byte(passphrase))
	}
	s, err := ssh.ParsePrivateKey(b)
	if err == nil {
		return s, nil
	}
	var passphraseMissingError *ssh.PassphraseMissingError
	if errors.As(err, &passphraseMissingError) {
		return nil, fmt.Errorf("private key is encrypted; provide --passphrase or DEPLOY_SYNC_PASSPHRASE")
	}
	return nil, err
}
