package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/jeleniasty/budget-aggregator/config"
)

// AESEncryptionService implements ports.EncryptionService using AES-256-GCM
// for reversible field encryption and HMAC-SHA256 for blind indexing.
type AESEncryptionService struct {
	aesKey  []byte // 32-byte key for AES-256
	hmacKey []byte
}

// NewAESEncryptionService creates a new encryption service from the decoded
// application keys. Key material is validated at config load time, but the
// constructor re-checks so it cannot be misused with raw byte slices.
func NewAESEncryptionService(cfg config.EncryptionConfig) (*AESEncryptionService, error) {
	aesKey, err := cfg.DecodedAESKey()
	if err != nil {
		return nil, fmt.Errorf("decoding AES key: %w", err)
	}
	hmacKey, err := cfg.DecodedHMACKey()
	if err != nil {
		return nil, fmt.Errorf("decoding HMAC key: %w", err)
	}
	return &AESEncryptionService{aesKey: aesKey, hmacKey: hmacKey}, nil
}

// Encrypt encrypts plaintext using AES-256-GCM.
// Returns base64-encoded token: nonce(12) + ciphertext.
func (s *AESEncryptionService) Encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(s.aesKey)
	if err != nil {
		return "", fmt.Errorf("creating cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("creating GCM: %w", err)
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	ciphertext := aesGCM.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Decrypt decrypts a base64-encoded AES-256-GCM token.
func (s *AESEncryptionService) Decrypt(token string) (string, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("decoding token: %w", err)
	}

	block, err := aes.NewCipher(s.aesKey)
	if err != nil {
		return "", fmt.Errorf("creating cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("creating GCM: %w", err)
	}

	nonceSize := aesGCM.NonceSize()
	if len(ciphertext) < nonceSize {
		return "", fmt.Errorf("token too short")
	}

	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("decrypting: %w", err)
	}

	return string(plaintext), nil
}

// BlindIndex computes a deterministic HMAC-SHA256 digest of plaintext,
// base64-encoded. Equal inputs always produce equal digests, which makes
// the value usable for exact-match lookups without decryption.
func (s *AESEncryptionService) BlindIndex(plaintext string) (string, error) {
	mac := hmac.New(sha256.New, s.hmacKey)
	if _, err := mac.Write([]byte(plaintext)); err != nil {
		return "", fmt.Errorf("computing blind index: %w", err)
	}
	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}
