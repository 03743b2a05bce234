package checksum

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/zstream/internal/core/domain"
)

func TestCRC32IEEEKnownValue(t *testing.T) {
	c := NewCRC32IEEE()

	// Reference value for the gzip trailer example payload.
	require.Equal(t, uint32(0x0d4a1185), c.Checksum([]byte("hello world")))
	require.True(t, c.Verify([]byte("hello world"), 0x0d4a1185))
	require.False(t, c.Verify([]byte("hello world!"), 0x0d4a1185))
}

func TestUpdateMatchesOneShot(t *testing.T) {
	c := NewCRC32IEEE()
	data := []byte("the quick brown fox jumps over the lazy dog")

	var sum uint32
	for i := 0; i < len(data); i += 5 {
		end := i + 5
		if end > len(data) {
			end = len(data)
		}
		sum = c.Update(sum, data[i:end])
	}

	require.Equal(t, c.Checksum(data), sum)
}

func TestFactory(t *testing.T) {
	for _, algorithm := range []string{string(CRC32IEEE), string(CRC32Castagnoli)} {
		c, err := New(domain.ChecksumAlgorithm(algorithm))
		require.NoError(t, err)
		require.Equal(t, algorithm, c.Name())
		require.Equal(t, uint8(4), c.Size())
	}

	_, err := New("md5")
	require.Error(t, err)
}
