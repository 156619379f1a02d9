package secs2

// encodeHeader appends the format byte and minimal-N length bytes for
// (typ, length) to buf. The caller guarantees length <= MaxLength.
func encodeHeader(buf []byte, typ ValueType, length int) []byte {
	lenBytes := [3]byte{byte(length >> 16), byte(length >> 8), byte(length)}

	n := 3
	if lenBytes[0] == 0 {
		n--
		if lenBytes[1] == 0 {
			n--
		}
	}

	buf = append(buf, typ.formatCode<<2|byte(n))
	buf = append(buf, lenBytes[3-n:]...)

	return buf
}

// decodedHeader is the parsed form of a SECS-II header: a format byte
// followed by 1-3 big-endian length bytes.
type decodedHeader struct {
	formatCode byte
	lenByteCnt int
	length     int
}

// decodeHeader reads one header from the front of data and returns it
// along with the number of bytes consumed (1 + N). It does not validate
// that formatCode names a known type; callers dispatch that themselves so
// they can report KindUnknownType with the right context.
func decodeHeader(data []byte) (decodedHeader, int, error) {
	if len(data) < 1 {
		return decodedHeader{}, 0, newCodecError(KindIncomplete, "buffer too short for header: need 1 byte, have 0")
	}

	formatByte := data[0]
	formatCode := formatByte >> 2
	n := int(formatByte & 0x3)

	if n == 0 {
		return decodedHeader{}, 0, newCodecError(KindInvalidLenByteCount, "length-byte count is zero")
	}

	if len(data) < 1+n {
		return decodedHeader{}, 0, newCodecError(KindIncomplete, "buffer too short for header: need %d bytes, have %d", 1+n, len(data))
	}

	length := 0
	for i := 0; i < n; i++ {
		length = length<<8 | int(data[1+i])
	}

	return decodedHeader{formatCode: formatCode, lenByteCnt: n, length: length}, 1 + n, nil
}
