// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/MKhiriev/go-note-vault/models"
)

const saltLength = 16

// contentCipher is the private implementation of [ContentCipher]. It is a
// pure transform over the provided bytes: all randomness (salt, nonce) is
// generated per call and recorded in the resulting blob.
type contentCipher struct {
	deriver KeyDeriver
}

// NewContentCipher constructs a [ContentCipher] that derives per-blob keys
// with deriver and encrypts with AES-256-GCM.
func NewContentCipher(deriver KeyDeriver) ContentCipher {
	return &contentCipher{deriver: deriver}
}

// Encrypt implements [ContentCipher]. It generates a fresh 16-byte salt and
// a fresh GCM nonce on every call, so encrypting the same plaintext under
// the same password twice yields entirely different blobs.
func (c *contentCipher) Encrypt(plaintext, password string) (*models.EncryptedBlob, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	key := c.deriver.DeriveKey(password, salt)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, []byte(plaintext), nil)

	return &models.EncryptedBlob{
		Encrypted:  true,
		Alg:        models.AlgAESGCM,
		KDF:        models.KDFPBKDF2SHA256,
		Iterations: c.deriver.Iterations(),
		Salt:       base64.StdEncoding.EncodeToString(salt),
		IV:         base64.StdEncoding.EncodeToString(nonce),
		Data:       base64.StdEncoding.EncodeToString(ciphertext),
	}, nil
}

// Decrypt implements [ContentCipher]. The key is recomputed from the blob's
// own salt and recorded iteration count, so rotating the deriver's default
// parameters never breaks previously written data.
//
// Blobs without an algorithm tag predate tagging and are decrypted as legacy
// AES-256-CBC.
func (c *contentCipher) Decrypt(blob *models.EncryptedBlob, password string) (string, error) {
	salt, err := base64.StdEncoding.DecodeString(blob.Salt)
	if err != nil {
		return "", fmt.Errorf("%w: decode salt: %w", ErrDecryptionFailed, err)
	}
	iv, err := base64.StdEncoding.DecodeString(blob.IV)
	if err != nil {
		return "", fmt.Errorf("%w: decode iv: %w", ErrDecryptionFailed, err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(blob.Data)
	if err != nil {
		return "", fmt.Errorf("%w: decode ciphertext: %w", ErrDecryptionFailed, err)
	}

	key := c.deriveBlobKey(blob, password, salt)

	switch blob.Alg {
	case models.AlgAESGCM:
		return c.decryptGCM(key, iv, ciphertext)
	case models.AlgAESCBC, "":
		// Legacy unauthenticated mode, kept readable for old records only.
		return c.decryptCBC(key, iv, ciphertext)
	default:
		return "", fmt.Errorf("%w: unknown algorithm %q", ErrDecryptionFailed, blob.Alg)
	}
}

// deriveBlobKey derives the content key with the iteration count recorded in
// the blob, falling back to the deriver's current default for records that
// predate parameter tagging.
func (c *contentCipher) deriveBlobKey(blob *models.EncryptedBlob, password string, salt []byte) []byte {
	if blob.Iterations != 0 && blob.Iterations != c.deriver.Iterations() {
		return NewKeyDeriverWithIterations(blob.Iterations).DeriveKey(password, salt)
	}

	return c.deriver.DeriveKey(password, salt)
}

func (c *contentCipher) decryptGCM(key, nonce, ciphertext []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	if len(nonce) != gcm.NonceSize() {
		return "", fmt.Errorf("%w: bad nonce length %d", ErrDecryptionFailed, len(nonce))
	}

	// Decrypt and verify auth tag. An error here almost always means the
	// caller supplied the wrong password, producing a wrong key.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return string(plaintext), nil
}

func (c *contentCipher) decryptCBC(key, iv, ciphertext []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	if len(iv) != aes.BlockSize {
		return "", fmt.Errorf("%w: bad iv length %d", ErrDecryptionFailed, len(iv))
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: bad ciphertext length %d", ErrDecryptionFailed, len(ciphertext))
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := stripPKCS7(plaintext)
	if err != nil {
		return "", err
	}

	return string(unpadded), nil
}

// stripPKCS7 validates and removes PKCS#7 padding. CBC carries no integrity
// tag, so invalid padding is the only wrong-password signal available for
// legacy blobs.
func stripPKCS7(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty plaintext", ErrDecryptionFailed)
	}

	padding := int(data[len(data)-1])
	if padding == 0 || padding > aes.BlockSize || padding > len(data) {
		return nil, fmt.Errorf("%w: invalid padding", ErrDecryptionFailed)
	}

	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, fmt.Errorf("%w: invalid padding", ErrDecryptionFailed)
		}
	}

	return data[:len(data)-padding], nil
}
