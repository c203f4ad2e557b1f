// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/argon2"
)

// ErrDecryptionFailed wraps AES-GCM authentication failures. It almost
// always means the configured key material does not match the material the
// snapshot was encrypted with.
var ErrDecryptionFailed = errors.New("snapshot decryption failed")

// snapshotKeyLen is the AES-256 key size in bytes.
const snapshotKeyLen = 32

// snapshotEncryptor is the private implementation of [Encryptor].
type snapshotEncryptor struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewSnapshotEncryptor constructs an [Encryptor] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func NewSnapshotEncryptor() Encryptor {
	return &snapshotEncryptor{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
	}
}

// DeriveKey implements [Encryptor]. Key material decoding to exactly 32
// bytes is treated as a ready key; shorter or longer material is stretched
// with Argon2id using the sync key id as the salt, so the same passphrase
// targeting two different slots yields two different keys.
func (e *snapshotEncryptor) DeriveKey(material, syncKeyID string) ([]byte, error) {
	if material == "" {
		return nil, errors.New("empty key material")
	}

	raw, err := base64.StdEncoding.DecodeString(material)
	if err != nil {
		return nil, fmt.Errorf("decode key material: %w", err)
	}

	if len(raw) == snapshotKeyLen {
		return raw, nil
	}

	return argon2.IDKey(
		raw,
		[]byte(syncKeyID),
		e.argonTime,
		e.argonMemory,
		e.argonThreads,
		snapshotKeyLen,
	), nil
}

// EncryptFileToString implements [Encryptor]. It reads the whole snapshot
// file, then encrypts it with key using AES-256-GCM. The output is a Base64
// (standard encoding) string of the blob: nonce (12 bytes) ‖ ciphertext.
// Returns an error if reading, cipher creation, or nonce generation fails.
func (e *snapshotEncryptor) EncryptFileToString(path string, key []byte) (string, error) {
	// 1. Read the plaintext snapshot
	plaintext, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read snapshot file: %w", err)
	}

	// 2. Build AES-GCM cipher from the snapshot key
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	// 3. Generate a random nonce
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// 4. Encrypt: nonce || ciphertext
	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	blob := append(nonce, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptStringToFile implements [Encryptor]. It Base64-decodes content,
// splits out the nonce, decrypts the ciphertext with key via AES-256-GCM,
// and writes the plaintext snapshot to destPath with 0600 permissions.
// An authentication-tag mismatch is reported as [ErrDecryptionFailed].
func (e *snapshotEncryptor) DecryptStringToFile(content string, key []byte, destPath string) error {
	// 1. Decode base64 blob
	blob, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		return fmt.Errorf("decode base64: %w", err)
	}

	// 2. Build AES-GCM cipher from the snapshot key
	block, err := aes.NewCipher(key)
	if err != nil {
		return fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return fmt.Errorf("create gcm: %w", err)
	}

	// 3. Split nonce and ciphertext
	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return fmt.Errorf("%w: ciphertext too short", ErrDecryptionFailed)
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	// 4. Decrypt and verify auth tag. An error here almost always means the
	// configured key material does not match the remote snapshot.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	// 5. Write the plaintext snapshot for the importer
	if err := os.WriteFile(destPath, plaintext, 0o600); err != nil {
		return fmt.Errorf("write decrypted snapshot: %w", err)
	}

	return nil
}
