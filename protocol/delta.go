package protocol

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDelta = errors.New("the payload given is not a valid delta")
)

type Delta struct {
	ExpectedSourceLength uint64
	TargetLength         uint64
	// Changes contains all the modifications to do in order.
	//
	// When iterating, this must be done sequentially, in order.
	// No modifications of the source data is necessary.
	// The presence of some fields determines how to act; see the documentation of the struct.
	Changes []DeltaChange
}

type DeltaChange struct {
	// If we should add data from the delta, DeltaData contains the data to add. In this case, ignore the Length & SourceOffset fields.
	DeltaData []byte

	// If we should copy from source (DeltaData == nil), SourceOffset is the starting position in the source, and Length is how much data is to be added.
	Length       uint64
	SourceOffset uint64
}

// ParseDelta decodes a git delta: two size headers followed by copy and
// insert instructions.
func ParseDelta(payload []byte) (*Delta, error) {
	delta := &Delta{}

	var err error
	if delta.ExpectedSourceLength, payload, err = deltaHeaderSize(payload); err != nil {
		return nil, err
	}
	if delta.TargetLength, payload, err = deltaHeaderSize(payload); err != nil {
		return nil, err
	}

	var produced uint64
	for len(payload) > 0 {
		// If the top bit of cmd is unset, this is an instruction to add new data FROM the delta TO the patched source.
		// The format is:
		//	+----------+============+
		//	| 0xxxxxxx |    data    |
		//	+----------+============+
		// The x's define the size of the data to come. It must not be zero.
		//
		// If the top bit is set, however, we are instructed to copy data FROM the source TO the patched source.
		// The format is:
		//	+----------+---------+---------+---------+---------+-------+-------+-------+
		//	| 1xxxxxxx | offset1 | offset2 | offset3 | offset4 | size1 | size2 | size3 |
		//	+----------+---------+---------+---------+---------+-------+-------+-------+
		// The x's define which of the offsets and sizes are present. offset1 is represented by bit 0 (ie the right-most bit), offset2 by bit 1, etc.
		// If size == 0, size should be set to 0x10000.
		//
		// If the entire cmd is 0x0, it is reserved and MUST return an error.
		cmd := payload[0]
		payload = payload[1:]

		switch {
		case cmd&0b1000_0000 != 0: // Copy data instruction
			var offset, size uint64
			for i := range 7 {
				if cmd&(1<<i) == 0 {
					continue
				}
				if len(payload) == 0 {
					return nil, fmt.Errorf("%w: truncated copy instruction", ErrInvalidDelta)
				}
				if i < 4 {
					offset |= uint64(payload[0]) << (8 * i)
				} else {
					size |= uint64(payload[0]) << (8 * (i - 4))
				}
				payload = payload[1:]
			}
			if size == 0 { // documented exception
				size = 0x10000
			}

			if offset+size > delta.ExpectedSourceLength || offset+size < offset {
				return nil, fmt.Errorf("%w: copy of %d bytes at %d exceeds the source", ErrInvalidDelta, size, offset)
			}

			delta.Changes = append(delta.Changes, DeltaChange{
				SourceOffset: offset,
				Length:       size,
			})
			produced += size

		case cmd != 0: // Add data instruction
			n := int(cmd)
			if n > len(payload) {
				return nil, fmt.Errorf("%w: truncated insert instruction", ErrInvalidDelta)
			}

			delta.Changes = append(delta.Changes, DeltaChange{
				DeltaData: payload[:n],
			})
			produced += uint64(n)
			payload = payload[n:]

		default: // Cmd == 0; reserved.
			return nil, fmt.Errorf("%w: payload included a cmd 0x0 (reserved) instruction", ErrInvalidDelta)
		}
	}

	if produced != delta.TargetLength {
		return nil, fmt.Errorf("%w: instructions produce %d bytes, header says %d", ErrInvalidDelta, produced, delta.TargetLength)
	}
	return delta, nil
}

// Apply rebuilds the target from source.
func (d *Delta) Apply(source []byte) ([]byte, error) {
	if uint64(len(source)) != d.ExpectedSourceLength {
		return nil, fmt.Errorf("%w: source has %d bytes, delta expects %d", ErrInvalidDelta, len(source), d.ExpectedSourceLength)
	}

	out := make([]byte, 0, d.TargetLength)
	for _, change := range d.Changes {
		if change.DeltaData != nil {
			out = append(out, change.DeltaData...)
			continue
		}
		out = append(out, source[change.SourceOffset:change.SourceOffset+change.Length]...)
	}
	return out, nil
}

// ApplyDelta parses payload and applies it to source.
func ApplyDelta(source, payload []byte) ([]byte, error) {
	delta, err := ParseDelta(payload)
	if err != nil {
		return nil, err
	}
	return delta.Apply(source)
}

// deltaHeaderSize reads a little-endian base-128 size.
func deltaHeaderSize(b []byte) (uint64, []byte, error) {
	var size uint64
	for i := 0; i < len(b); i++ {
		if i > 9 {
			break
		}
		size |= uint64(b[i]&0x7f) << (7 * i)
		if b[i]&0x80 == 0 {
			return size, b[i+1:], nil
		}
	}
	return 0, nil, fmt.Errorf("%w: truncated size header", ErrInvalidDelta)
}
