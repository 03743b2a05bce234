package checksum

import (
	"hash/crc32"
)

type crc32Checksum struct {
	name  string
	table *crc32.Table
}

func NewCRC32IEEE() *crc32Checksum {
	return &crc32Checksum{
		name:  string(CRC32IEEE),
		table: crc32.MakeTable(crc32.IEEE),
	}
}

func NewCRC32Castagnoli() *crc32Checksum {
	return &crc32Checksum{
		name:  string(CRC32Castagnoli),
		table: crc32.MakeTable(crc32.Castagnoli),
	}
}

func (c *crc32Checksum) Checksum(data []byte) uint32 {
	return crc32.Checksum(data, c.table)
}

func (c *crc32Checksum) Update(sum uint32, data []byte) uint32 {
	return crc32.Update(sum, c.table, data)
}

func (c *crc32Checksum) Verify(data []byte, expected uint32) bool {
	return crc32.Checksum(data, c.table) == expected
}

func (c *crc32Checksum) Size() uint8 {
	return crc32.Size
}

func (c *crc32Checksum) Name() string {
	return c.name
}
