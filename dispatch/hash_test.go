package dispatch_test

import (
	"encoding/binary"
	"testing"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filecoin-project/go-actors-utils/dispatch"
)

// identityHasher returns its input, making expected method numbers easy to
// state in tests.
type identityHasher struct{}

func (identityHasher) Hash(data []byte) []byte {
	return data
}

func TestConstructorIsMethodOne(t *testing.T) {
	num, err := dispatch.MethodNumberWithHasher(identityHasher{}, "Constructor")
	require.NoError(t, err)
	assert.Equal(t, abi.MethodNum(1), num)

	num, err = dispatch.MethodNumber("Constructor")
	require.NoError(t, err)
	assert.Equal(t, abi.MethodNum(1), num)
}

func TestMethodNumberIsDigestPrefix(t *testing.T) {
	name := "NormalMethod"
	num, err := dispatch.MethodNumberWithHasher(identityHasher{}, name)
	require.NoError(t, err)
	expected := abi.MethodNum(binary.BigEndian.Uint32([]byte(name)[:4]))
	assert.Equal(t, expected, num)
}

func TestMethodNumberIsStable(t *testing.T) {
	a := dispatch.MustMethodNumber("Receive")
	b := dispatch.MustMethodNumber("Receive")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, dispatch.MustMethodNumber("Transfer"))
}

func TestEmptyNameRejected(t *testing.T) {
	_, err := dispatch.MethodNumber("")
	assert.Error(t, err)
}

func TestShortDigestRejected(t *testing.T) {
	_, err := dispatch.MethodNumberWithHasher(identityHasher{}, "abc")
	assert.Error(t, err)
}
