package session

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/pbkdf2"

	"github.com/yasminaliabdi/event-planner/internal/errors"
)

// Store file names under the data directory. The token and the serialized
// identity live in two separate slots; they are written together and cleared
// together, and a load that finds only one of them reports no session.
const (
	tokenFile    = "token"
	identityFile = "identity.json"
)

// ErrNoSession is returned by Load when no complete session is persisted
var ErrNoSession = errors.New(errors.ErrCodeSessionStoreRead, "no stored session")

// Store persists the session to disk, encrypted at rest
type Store struct {
	dir string
	key []byte
}

// NewStore creates a session store rooted at dir. The encryption key is
// derived from passphrase with PBKDF2; an empty passphrase falls back to a
// built-in one, which protects against casual reads only.
func NewStore(dir, passphrase string) *Store {
	if passphrase == "" {
		passphrase = "eventplanner-session-store"
	}
	salt := []byte("eventplanner-session-store")
	key := pbkdf2.Key([]byte(passphrase), salt, 100000, 32, sha256.New)

	return &Store{
		dir: dir,
		key: key,
	}
}

// Save writes both slots. Partial writes leave at most one slot behind, which
// Load treats the same as no session.
func (s *Store) Save(token string, identity []byte) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return errors.Wrap(errors.ErrCodeSessionStoreWrite, "cannot create session directory", err)
	}

	sealedToken, err := s.encrypt([]byte(token))
	if err != nil {
		return errors.Wrap(errors.ErrCodeSessionStoreWrite, "cannot encrypt token", err)
	}
	sealedIdentity, err := s.encrypt(identity)
	if err != nil {
		return errors.Wrap(errors.ErrCodeSessionStoreWrite, "cannot encrypt identity", err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(sealedToken), 0600); err != nil {
		return errors.Wrap(errors.ErrCodeSessionStoreWrite, "cannot write token slot", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, identityFile), []byte(sealedIdentity), 0600); err != nil {
		return errors.Wrap(errors.ErrCodeSessionStoreWrite, "cannot write identity slot", err)
	}

	return nil
}

// Load reads both slots. It returns ErrNoSession when either slot is absent
// and a corrupt-store error when a slot exists but cannot be decrypted.
func (s *Store) Load() (string, []byte, error) {
	sealedToken, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, ErrNoSession
		}
		return "", nil, errors.Wrap(errors.ErrCodeSessionStoreRead, "cannot read token slot", err)
	}

	sealedIdentity, err := os.ReadFile(filepath.Join(s.dir, identityFile))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, ErrNoSession
		}
		return "", nil, errors.Wrap(errors.ErrCodeSessionStoreRead, "cannot read identity slot", err)
	}

	token, err := s.decrypt(string(sealedToken))
	if err != nil {
		return "", nil, errors.NewStoreCorruptError(err)
	}
	identity, err := s.decrypt(string(sealedIdentity))
	if err != nil {
		return "", nil, errors.NewStoreCorruptError(err)
	}

	return string(token), identity, nil
}

// Clear removes both slots. Missing slots are not an error.
func (s *Store) Clear() error {
	var firstErr error
	for _, name := range []string{tokenFile, identityFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
			if firstErr == nil {
				firstErr = errors.Wrap(errors.ErrCodeSessionStoreWrite, "cannot clear session slot "+name, err)
			}
		}
	}
	return firstErr
}

// encrypt seals a value with AES-GCM
func (s *Store) encrypt(plaintext []byte) (string, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// decrypt opens a value sealed by encrypt
func (s *Store) decrypt(sealed string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(data) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := data[:nonceSize], data[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, nil)
}
