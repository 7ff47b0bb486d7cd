package driver

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"

	"vhdlfmt/internal/config"
	"vhdlfmt/internal/version"
)

// Digest is a SHA-256 sum used as a disk cache key.
type Digest [sha256.Size]byte

// combineDigest: H(len1 || part1 || len2 || part2 ...).
func combineDigest(parts ...[]byte) Digest {
	h := sha256.New()
	var size [8]byte
	for _, p := range parts {
		binary.LittleEndian.PutUint64(size[:], uint64(len(p)))
		_, _ = h.Write(size[:])
		_, _ = h.Write(p)
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// ConfigDigest fingerprints everything besides the input that decides the
// output: the formatter version and the resolved configuration.
func ConfigDigest(cfg config.Config) (Digest, error) {
	var buf bytes.Buffer
	if err := config.Encode(&buf, cfg); err != nil {
		return Digest{}, err
	}
	return combineDigest([]byte(version.Version), buf.Bytes()), nil
}

// cacheKey: raw bytes, CRLF and BOM included, under a config fingerprint.
func cacheKey(cfg Digest, content []byte) Digest {
	return combineDigest(cfg[:], content)
}
