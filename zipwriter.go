package docbuild

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/klauspost/compress/flate"
)

// Compression is the ZIP entry compression method. Values are the method
// ids from the ZIP specification.
type Compression uint16

const (
	CompStore   Compression = 0
	CompDeflate Compression = 8
)

// archivePart is one named blob destined for the archive. rawOnly forces
// store regardless of the configured method; the ODT mimetype entry needs
// this so readers can sniff it at a fixed offset.
type archivePart struct {
	name    string
	data    []byte
	rawOnly bool
}

const (
	localHeaderSig   uint32 = 0x04034b50
	centralDirSig    uint32 = 0x02014b50
	endOfCentralSig  uint32 = 0x06054b50
	zipVersionNeeded uint16 = 20

	// Fixed timestamp written into every entry: 1980-01-01 00:00, the DOS
	// epoch. Office readers ignore it; a constant keeps output reproducible.
	dosDate uint16 = 0x0021
	dosTime uint16 = 0
)

type zipEntry struct {
	name   string
	crc    uint32
	method Compression
	size   uint32 // uncompressed
	stored uint32 // as written
	offset uint32
}

// buildArchive assembles parts into a ZIP archive: local file headers with
// entry data in input order, then a central directory mirroring each entry,
// then one end-of-central-directory record. All multi-byte fields are
// little-endian. No Zip64: sizes and offsets past the 32-bit ceiling return
// ErrArchiveTooLarge.
func buildArchive(parts []archivePart, comp Compression, lim Limits) ([]byte, error) {
	switch comp {
	case CompStore, CompDeflate:
	default:
		return nil, fmt.Errorf("%w: unknown compression method %d", ErrValidation, comp)
	}
	if len(parts) > 0xFFFF {
		return nil, fmt.Errorf("%w: %d entries", ErrArchiveTooLarge, len(parts))
	}

	var buf bytes.Buffer
	entries := make([]zipEntry, 0, len(parts))
	for _, part := range parts {
		method := comp
		payload := part.data
		if part.rawOnly || comp == CompStore {
			method = CompStore
		} else {
			compressed, err := deflateBytes(part.data)
			if err != nil {
				return nil, err
			}
			payload = compressed
		}
		if uint64(len(part.data)) > 0xFFFFFFFF || uint64(buf.Len()) > 0xFFFFFFFF {
			return nil, fmt.Errorf("%w: entry %q", ErrArchiveTooLarge, part.name)
		}
		e := zipEntry{
			name:   part.name,
			crc:    crc32Sum(part.data),
			method: method,
			size:   uint32(len(part.data)),
			stored: uint32(len(payload)),
			offset: uint32(buf.Len()),
		}
		writeLocalHeader(&buf, e)
		buf.Write(payload)
		entries = append(entries, e)
	}

	centralOffset := buf.Len()
	if uint64(centralOffset) > 0xFFFFFFFF {
		return nil, fmt.Errorf("%w: central directory offset", ErrArchiveTooLarge)
	}
	for _, e := range entries {
		writeCentralHeader(&buf, e)
	}
	writeEndOfCentral(&buf, len(entries), buf.Len()-centralOffset, centralOffset)

	if uint64(buf.Len()) > lim.MaxArchiveBytes {
		return nil, fmt.Errorf("%w: archive is %d bytes", ErrLimitExceeded, buf.Len())
	}
	return buf.Bytes(), nil
}

func writeLocalHeader(buf *bytes.Buffer, e zipEntry) {
	var h [30]byte
	binary.LittleEndian.PutUint32(h[0:4], localHeaderSig)
	binary.LittleEndian.PutUint16(h[4:6], zipVersionNeeded)
	binary.LittleEndian.PutUint16(h[6:8], 0) // general purpose flags
	binary.LittleEndian.PutUint16(h[8:10], uint16(e.method))
	binary.LittleEndian.PutUint16(h[10:12], dosTime)
	binary.LittleEndian.PutUint16(h[12:14], dosDate)
	binary.LittleEndian.PutUint32(h[14:18], e.crc)
	binary.LittleEndian.PutUint32(h[18:22], e.stored)
	binary.LittleEndian.PutUint32(h[22:26], e.size)
	binary.LittleEndian.PutUint16(h[26:28], uint16(len(e.name)))
	binary.LittleEndian.PutUint16(h[28:30], 0) // extra field length
	buf.Write(h[:])
	buf.WriteString(e.name)
}

func writeCentralHeader(buf *bytes.Buffer, e zipEntry) {
	var h [46]byte
	binary.LittleEndian.PutUint32(h[0:4], centralDirSig)
	binary.LittleEndian.PutUint16(h[4:6], zipVersionNeeded) // version made by
	binary.LittleEndian.PutUint16(h[6:8], zipVersionNeeded)
	binary.LittleEndian.PutUint16(h[8:10], 0) // general purpose flags
	binary.LittleEndian.PutUint16(h[10:12], uint16(e.method))
	binary.LittleEndian.PutUint16(h[12:14], dosTime)
	binary.LittleEndian.PutUint16(h[14:16], dosDate)
	binary.LittleEndian.PutUint32(h[16:20], e.crc)
	binary.LittleEndian.PutUint32(h[20:24], e.stored)
	binary.LittleEndian.PutUint32(h[24:28], e.size)
	binary.LittleEndian.PutUint16(h[28:30], uint16(len(e.name)))
	binary.LittleEndian.PutUint16(h[30:32], 0) // extra field length
	binary.LittleEndian.PutUint16(h[32:34], 0) // comment length
	binary.LittleEndian.PutUint16(h[34:36], 0) // disk number start
	binary.LittleEndian.PutUint16(h[36:38], 0) // internal attributes
	binary.LittleEndian.PutUint32(h[38:42], 0) // external attributes
	binary.LittleEndian.PutUint32(h[42:46], e.offset)
	buf.Write(h[:])
	buf.WriteString(e.name)
}

func writeEndOfCentral(buf *bytes.Buffer, count, size, offset int) {
	var h [22]byte
	binary.LittleEndian.PutUint32(h[0:4], endOfCentralSig)
	binary.LittleEndian.PutUint16(h[4:6], 0) // this disk
	binary.LittleEndian.PutUint16(h[6:8], 0) // central directory disk
	binary.LittleEndian.PutUint16(h[8:10], uint16(count))
	binary.LittleEndian.PutUint16(h[10:12], uint16(count))
	binary.LittleEndian.PutUint32(h[12:16], uint32(size))
	binary.LittleEndian.PutUint32(h[16:20], uint32(offset))
	binary.LittleEndian.PutUint16(h[20:22], 0) // comment length
	buf.Write(h[:])
}

func deflateBytes(in []byte) ([]byte, error) {
	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, err
	}
	if _, err := fw.Write(in); err != nil {
		return nil, err
	}
	if err := fw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// crcTable is the standard reflected-polynomial table for CRC-32.
var crcTable = makeCRCTable()

func makeCRCTable() [256]uint32 {
	var table [256]uint32
	for i := range table {
		c := uint32(i)
		for k := 0; k < 8; k++ {
			if c&1 != 0 {
				c = 0xEDB88320 ^ (c >> 1)
			} else {
				c >>= 1
			}
		}
		table[i] = c
	}
	return table
}

func crc32Sum(data []byte) uint32 {
	c := ^uint32(0)
	for _, b := range data {
		c = crcTable[byte(c)^b] ^ (c >> 8)
	}
	return ^c
}
