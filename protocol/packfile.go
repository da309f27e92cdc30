package protocol

import (
	"bufio"
	"bytes"
	"crypto/sha1" //nolint:gosec // pack checksums are SHA-1
	"encoding/binary"
	"errors"
	"fmt"
	gohash "hash"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/mei-friend/meigit/protocol/hash"
)

var (
	ErrNoPackfileSignature        = errors.New("the given payload has no packfile signature")
	ErrUnsupportedPackfileVersion = errors.New("the version of the packfile payload is unsupported")
	ErrUnsupportedObjectType      = errors.New("the type of the object is unsupported")
	ErrInflatedDataIncorrectSize  = errors.New("the data is the wrong size post-inflation")
	ErrObjectTooLarge             = errors.New("the object exceeds the maximum unpacked size")
	ErrPackfileChecksum           = errors.New("the packfile checksum does not match its content")
)

// MaxUnpackedObjectSize is the maximum size of an unpacked object.
const MaxUnpackedObjectSize = 64 * 1024 * 1024

// PackfileObject is one entry of a pack as it is stored: a whole object, or
// a delta against a base object.
type PackfileObject struct {
	// The type of the object. 3-bit field.
	Type ObjectType
	// Offset is where the entry starts in the pack.
	Offset int64
	// The data, uncompressed.
	// If Type is one of ObjectTypeRefDelta and ObjectTypeOfsDelta, this is a delta.
	Data []byte

	// If Type == ObjectTypeRefDelta, this is set.
	BaseHash hash.Hash
	// If Type == ObjectTypeOfsDelta, this is the absolute offset of the base.
	BaseOffset int64
}

// A PackfileReader reads the objects of a pack one after the other.
// Its format is defined here: https://git-scm.com/docs/pack-format
//
// The format goes as such:
//   - 4-byte signature: `[]byte("PACK")`
//   - 4-byte version number (2 or 3; big-endian)
//   - 4-byte number of objects contained in the pack (big-endian)
//   - The pre-defined number of objects follow.
//   - A SHA-1 of everything above.
//
// The object entries go as such:
//   - For an undeltified representation,
//     there is a n-byte type and length (3-bit type, (n-1)*7+4-bit length).
//     Finally, the compressed object data.
//   - For a deltified representation, the same byte and length is given.
//     Then, we have an object name if OBJ_REF_DELTA or a negative relative offset from the delta object's position in the pack if this is an OBJ_OFS_DELTA object.
//     Finally, the compressed delta data.
type PackfileReader struct {
	reader           *countingReader
	remainingObjects uint32

	// State that shouldn't be set when constructed.
	trailerRead bool
	err         error
}

// NewPackfileReader reads the pack header from r.
func NewPackfileReader(r io.Reader) (*PackfileReader, error) {
	cr := &countingReader{r: bufio.NewReader(r), digest: sha1.New()} //nolint:gosec

	var header [12]byte
	n, err := io.ReadFull(cr, header[:])
	if n < 4 || !bytes.Equal(header[:4], []byte("PACK")) {
		return nil, ErrNoPackfileSignature
	}
	if err != nil {
		return nil, eofIsUnexpected(err)
	}

	version := binary.BigEndian.Uint32(header[4:8])
	if version != 2 && version != 3 {
		return nil, ErrUnsupportedPackfileVersion
	}

	return &PackfileReader{reader: cr, remainingObjects: binary.BigEndian.Uint32(header[8:12])}, nil
}

// ParsePackfile is NewPackfileReader for a pack held in memory.
func ParsePackfile(payload []byte) (*PackfileReader, error) {
	return NewPackfileReader(bytes.NewReader(payload))
}

// Remaining returns the number of objects not read yet.
func (p *PackfileReader) Remaining() uint32 {
	return p.remainingObjects
}

// ReadObject reads the next object from the pack. After the last object
// the trailing checksum is verified and io.EOF is returned.
// If another error is ever returned, the reader is "tainted", and will not read more objects.
//
// This function is not concurrency-safe. Objects returned are no longer
// owned by the reader.
func (p *PackfileReader) ReadObject() (*PackfileObject, error) {
	if p.err != nil {
		return nil, fmt.Errorf("ReadObject called after error returned: %w", p.err)
	}

	if p.remainingObjects == 0 {
		if !p.trailerRead {
			p.trailerRead = true
			if err := p.readTrailer(); err != nil {
				p.err = err
				return nil, err
			}
		}
		return nil, io.EOF
	}
	p.remainingObjects--

	obj, err := p.readObject()
	if err != nil {
		p.err = err
		return nil, err
	}
	return obj, nil
}

func (p *PackfileReader) readObject() (*PackfileObject, error) {
	obj := &PackfileObject{Offset: p.reader.n}

	b, err := p.reader.ReadByte()
	if err != nil {
		return nil, eofIsUnexpected(err)
	}

	// The first byte is a 3-bit type (stored in 4 bits).
	// The remaining 4 bits are the start of a varint containing the size.
	obj.Type = ObjectType((b >> 4) & 0b111)
	size := uint64(b & 0b1111)
	shift := 4
	for b&0x80 == 0x80 {
		if b, err = p.reader.ReadByte(); err != nil {
			return nil, eofIsUnexpected(err)
		}
		if shift > 57 {
			return nil, fmt.Errorf("object at offset %d: size varint overflows", obj.Offset)
		}
		size |= uint64(b&0x7f) << shift
		shift += 7
	}
	if size > MaxUnpackedObjectSize {
		return nil, fmt.Errorf("%w: object at offset %d has %d bytes", ErrObjectTooLarge, obj.Offset, size)
	}

	switch obj.Type {
	case ObjectTypeBlob, ObjectTypeCommit, ObjectTypeTag, ObjectTypeTree:

	case ObjectTypeRefDelta:
		var ref [20]byte
		if _, err := io.ReadFull(p.reader, ref[:]); err != nil {
			return nil, eofIsUnexpected(err)
		}
		obj.BaseHash = hash.Hash(ref[:])

	case ObjectTypeOfsDelta:
		// A big-endian varint where each continuation adds one, see
		// https://git-scm.com/docs/pack-format#_original_version_1_pack_idx_files_have_the_following_format
		if b, err = p.reader.ReadByte(); err != nil {
			return nil, eofIsUnexpected(err)
		}
		distance := int64(b & 0x7f)
		for b&0x80 == 0x80 {
			if b, err = p.reader.ReadByte(); err != nil {
				return nil, eofIsUnexpected(err)
			}
			distance = ((distance + 1) << 7) | int64(b&0x7f)
		}
		obj.BaseOffset = obj.Offset - distance
		if distance <= 0 || obj.BaseOffset < 12 {
			return nil, fmt.Errorf("object at offset %d: base offset out of range", obj.Offset)
		}

	default:
		return nil, fmt.Errorf("%w (%s; original byte: %08b)",
			ErrUnsupportedObjectType, obj.Type, b)
	}

	if obj.Data, err = p.readAndInflate(size); err != nil {
		return nil, fmt.Errorf("object at offset %d: %w", obj.Offset, err)
	}
	return obj, nil
}

func (p *PackfileReader) readAndInflate(sz uint64) ([]byte, error) {
	zr, err := zlib.NewReader(p.reader)
	if err != nil {
		return nil, eofIsUnexpected(err)
	}
	defer zr.Close()

	// Reading one byte past the declared size detects oversized data and
	// lets the zlib reader consume its checksum.
	var data bytes.Buffer
	data.Grow(int(sz))
	if _, err := io.Copy(&data, io.LimitReader(zr, int64(sz)+1)); err != nil {
		return nil, eofIsUnexpected(err)
	}

	if uint64(data.Len()) != sz {
		return nil, ErrInflatedDataIncorrectSize
	}

	return data.Bytes(), nil
}

func (p *PackfileReader) readTrailer() error {
	expected := p.reader.digest.Sum(nil)

	var trailer [20]byte
	if _, err := io.ReadFull(p.reader.r, trailer[:]); err != nil {
		return eofIsUnexpected(err)
	}
	if !bytes.Equal(trailer[:], expected) {
		return ErrPackfileChecksum
	}
	return nil
}

// countingReader tracks the offset into the pack and digests what it reads.
// It is an io.ByteReader so that the zlib reader does not read ahead.
type countingReader struct {
	r      *bufio.Reader
	n      int64
	digest gohash.Hash
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	c.digest.Write(p[:n])
	return n, err
}

func (c *countingReader) ReadByte() (byte, error) {
	b, err := c.r.ReadByte()
	if err != nil {
		return 0, err
	}
	c.n++
	c.digest.Write([]byte{b})
	return b, nil
}

type ObjectType uint8

// The object types. Type 5 is reserved. 0 is invalid.
const (
	ObjectTypeInvalid  ObjectType = 0 // 0b000
	ObjectTypeCommit   ObjectType = 1 // 0b001
	ObjectTypeTree     ObjectType = 2 // 0b010
	ObjectTypeBlob     ObjectType = 3 // 0b011
	ObjectTypeTag      ObjectType = 4 // 0b100
	ObjectTypeReserved ObjectType = 5 // 0b101
	ObjectTypeOfsDelta ObjectType = 6 // 0b110
	ObjectTypeRefDelta ObjectType = 7 // 0b111
)

// IsDelta reports whether objects of this type must be applied to a base.
func (t ObjectType) IsDelta() bool {
	return t == ObjectTypeOfsDelta || t == ObjectTypeRefDelta
}

func (t ObjectType) String() string {
	switch t {
	case ObjectTypeInvalid:
		return "OBJ_INVALID"
	case ObjectTypeCommit:
		return "OBJ_COMMIT"
	case ObjectTypeTree:
		return "OBJ_TREE"
	case ObjectTypeBlob:
		return "OBJ_BLOB"
	case ObjectTypeTag:
		return "OBJ_TAG"
	case ObjectTypeReserved:
		return "OBJ_RESERVED"
	case ObjectTypeOfsDelta:
		return "OBJ_OFS_DELTA"
	case ObjectTypeRefDelta:
		return "OBJ_REF_DELTA"
	default:
		return fmt.Sprintf("ObjectType(%d)", uint8(t))
	}
}
