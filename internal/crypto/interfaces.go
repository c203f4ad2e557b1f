package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/encryptor_mock.go -package=mock

// Encryptor is the symmetric encryption collaborator for database snapshots.
// It knows nothing about the network, versions, or the local database; its
// only job is to turn a plaintext snapshot file into an opaque string and
// back.
//
// Scheme of work:
//
//	key     = DeriveKey(material, syncKeyID)       (once per sync cycle)
//	content = EncryptFileToString(path, key)       (push)
//	          DecryptStringToFile(content, key, p) (pull)
type Encryptor interface {
	// DeriveKey turns the configured base64 key material into a 256-bit
	// snapshot key. Material that decodes to exactly 32 bytes is used as-is;
	// anything else is stretched with Argon2id, salted with the sync key id
	// so different slots never share a key.
	DeriveKey(material, syncKeyID string) ([]byte, error)

	// EncryptFileToString reads the file at path and encrypts it with key
	// using AES-256-GCM. Returns a base64 blob (nonce || ciphertext) safe to
	// store on the server.
	EncryptFileToString(path string, key []byte) (string, error)

	// DecryptStringToFile decrypts a base64 blob produced by
	// EncryptFileToString and writes the plaintext to destPath (0600).
	// Returns an error if authentication fails (e.g. wrong key material) or
	// the blob is malformed.
	DecryptStringToFile(content string, key []byte, destPath string) error
}
