package credentials

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/gophtickets/internal/common"
	"github.com/dmitrijs2005/gophtickets/internal/cryptox"
	"github.com/dmitrijs2005/gophtickets/internal/logging"
)

const sealedPrefix = "v1:"

// SealedRepository encrypts values before they reach the wrapped Repository.
//
// Stored format: "v1:" + base64(salt | nonce | ciphertext). Writes use one
// salt per SealedRepository, so the argon2 derivation runs once per process;
// keys for salts seen on read are cached.
type SealedRepository struct {
	next       Repository
	passphrase []byte
	log        logging.Logger

	mu   sync.Mutex
	salt []byte
	keys map[string][]byte
}

func NewSealedRepository(next Repository, passphrase []byte, log logging.Logger) *SealedRepository {
	p := make([]byte, len(passphrase))
	copy(p, passphrase)
	return &SealedRepository{
		next:       next,
		passphrase: p,
		log:        log,
		salt:       common.GenerateRandByteArray(cryptox.SaltSize),
		keys:       make(map[string][]byte),
	}
}

// Get returns the decrypted value. Values that cannot be decrypted (wrong
// passphrase, tampering, plaintext written by another store) read as absent.
func (r *SealedRepository) Get(ctx context.Context, key string) (string, error) {
	raw, err := r.next.Get(ctx, key)
	if err != nil || raw == "" {
		return "", err
	}

	value, err := r.open(raw)
	if err != nil {
		r.log.Warn(ctx, "unreadable credential ignored", "key", key, "error", err)
		return "", nil
	}
	return value, nil
}

func (r *SealedRepository) Set(ctx context.Context, key, value string) error {
	sealed, err := r.seal(value)
	if err != nil {
		return err
	}
	return r.next.Set(ctx, key, sealed)
}

func (r *SealedRepository) SetMany(ctx context.Context, values map[string]string) error {
	sealed := make(map[string]string, len(values))
	for k, v := range values {
		s, err := r.seal(v)
		if err != nil {
			return err
		}
		sealed[k] = s
	}
	return r.next.SetMany(ctx, sealed)
}

func (r *SealedRepository) Delete(ctx context.Context, key string) error {
	return r.next.Delete(ctx, key)
}

func (r *SealedRepository) Clear(ctx context.Context) error {
	return r.next.Clear(ctx)
}

func (r *SealedRepository) seal(value string) (string, error) {
	key := r.keyFor(r.salt)
	ct, nonce, err := cryptox.Encrypt([]byte(value), key)
	if err != nil {
		return "", fmt.Errorf("seal credential: %w", err)
	}

	buf := make([]byte, 0, len(r.salt)+len(nonce)+len(ct))
	buf = append(buf, r.salt...)
	buf = append(buf, nonce...)
	buf = append(buf, ct...)

	return sealedPrefix + base64.RawStdEncoding.EncodeToString(buf), nil
}

func (r *SealedRepository) open(raw string) (string, error) {
	encoded, ok := strings.CutPrefix(raw, sealedPrefix)
	if !ok {
		return "", common.ErrCorruptedValue
	}
	buf, err := base64.RawStdEncoding.DecodeString(encoded)
	if err != nil || len(buf) <= cryptox.SaltSize+cryptox.NonceSize {
		return "", common.ErrCorruptedValue
	}

	salt := buf[:cryptox.SaltSize]
	nonce := buf[cryptox.SaltSize : cryptox.SaltSize+cryptox.NonceSize]
	ct := buf[cryptox.SaltSize+cryptox.NonceSize:]

	pt, err := cryptox.Decrypt(ct, nonce, r.keyFor(salt))
	if err != nil {
		return "", err
	}
	return string(pt), nil
}

func (r *SealedRepository) keyFor(salt []byte) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := string(salt)
	if k, ok := r.keys[id]; ok {
		return k
	}
	k := cryptox.DeriveKey(r.passphrase, salt)
	r.keys[id] = k
	return k
}
