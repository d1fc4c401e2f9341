package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprintDeterministic(t *testing.T) {
	data := []byte(`{"route":"/home","description":"Landing page"}`)
	assert.Equal(t, Fingerprint(data), Fingerprint(data))
}

func TestFingerprintKnownValue(t *testing.T) {
	// sha256 of the empty input
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		Fingerprint(nil))
}

func TestFingerprintDistinguishesContent(t *testing.T) {
	a := Fingerprint([]byte(`{"route":"/home"}`))
	b := Fingerprint([]byte(`{"route":"/home" }`))
	assert.NotEqual(t, a, b, "byte-level changes must change the fingerprint")
}

func TestFingerprintLength(t *testing.T) {
	assert.Len(t, Fingerprint([]byte("x")), 64)
}
