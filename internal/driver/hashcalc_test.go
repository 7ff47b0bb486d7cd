package driver

import (
	"testing"

	"vhdlfmt/internal/config"
)

func TestCombineDigestLengthPrefix(t *testing.T) {
	// без префикса длины "ab"+"c" и "a"+"bc" совпали бы
	if combineDigest([]byte("ab"), []byte("c")) == combineDigest([]byte("a"), []byte("bc")) {
		t.Error("part boundaries do not affect the digest")
	}
	if combineDigest([]byte("x")) != combineDigest([]byte("x")) {
		t.Error("digest is not deterministic")
	}
}

func TestConfigDigest(t *testing.T) {
	base, err := ConfigDigest(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	again, err := ConfigDigest(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	if base != again {
		t.Error("same config, different digest")
	}

	cfg := config.Default()
	cfg.LineLength = 80
	other, err := ConfigDigest(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if base == other {
		t.Error("line_length does not affect the digest")
	}
}

func TestCacheKeySeesLineEndings(t *testing.T) {
	cfg, _ := ConfigDigest(config.Default())
	if cacheKey(cfg, []byte("a\n")) == cacheKey(cfg, []byte("a\r\n")) {
		t.Error("CRLF and LF inputs share a cache key")
	}
}
