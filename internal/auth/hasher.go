package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	// ErrEmptyPepper is returned by NewHasher when no pepper is configured.
	ErrEmptyPepper = errors.New("pepper must not be empty")
	// ErrMalformedHash is returned when a stored digest is not an argon2id PHC string.
	ErrMalformedHash = errors.New("malformed password hash")
)

// HasherConfig carries the pepper and argon2id cost parameters.
type HasherConfig struct {
	Pepper  string
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
	SaltLen uint32
}

// DefaultHasherConfig returns production argon2id parameters for pepper.
func DefaultHasherConfig(pepper string) HasherConfig {
	return HasherConfig{
		Pepper:  pepper,
		Time:    2,
		Memory:  19 * 1024,
		Threads: 1,
		KeyLen:  32,
		SaltLen: 16,
	}
}

// Hasher is a keyed one-way hash used for passwords and refresh tokens.
// The plaintext is HMAC'd with the pepper before argon2id, so a leaked
// table of digests is useless without the process secret.
type Hasher struct {
	pepper []byte
	cfg    HasherConfig
}

// NewHasher validates cfg and returns a Hasher.
func NewHasher(cfg HasherConfig) (*Hasher, error) {
	if cfg.Pepper == "" {
		return nil, ErrEmptyPepper
	}
	if cfg.Time == 0 || cfg.Memory == 0 || cfg.Threads == 0 || cfg.KeyLen == 0 || cfg.SaltLen == 0 {
		return nil, errors.New("argon2id parameters must be positive")
	}
	return &Hasher{pepper: []byte(cfg.Pepper), cfg: cfg}, nil
}

// Hash returns an argon2id PHC string for plaintext.
func (h *Hasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, h.cfg.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	key := argon2.IDKey(h.peppered(plaintext), salt, h.cfg.Time, h.cfg.Memory, h.cfg.Threads, h.cfg.KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.cfg.Memory, h.cfg.Time, h.cfg.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether plaintext matches digest. Cost parameters are read
// from the digest so hashes survive parameter changes.
func (h *Hasher) Verify(digest, plaintext string) (bool, error) {
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false, ErrMalformedHash
	}

	var (
		memory, iterations uint32
		threads            uint8
	)
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false, ErrMalformedHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, ErrMalformedHash
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(want) == 0 {
		return false, ErrMalformedHash
	}

	got := argon2.IDKey(h.peppered(plaintext), salt, iterations, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

func (h *Hasher) peppered(plaintext string) []byte {
	mac := hmac.New(sha256.New, h.pepper)
	mac.Write([]byte(plaintext))
	return mac.Sum(nil)
}
