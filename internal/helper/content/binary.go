package content

// DefaultBinarySampleSize is the number of leading bytes scanned for NUL bytes.
// It matches Git's heuristic (8000 bytes since 2005).
const DefaultBinarySampleSize = 8000

// IsBinaryContent reports whether the first sampleSize bytes of content contain a NUL byte.
// UTF-16 and UTF-32 BOMs mark the content as text, since those encodings legitimately carry NULs.
// A sampleSize of zero or less uses DefaultBinarySampleSize.
func IsBinaryContent(content []byte, sampleSize int) bool {
	if hasWideBOM(content) {
		return false
	}

	if sampleSize <= 0 {
		sampleSize = DefaultBinarySampleSize
	}
	for i := 0; i < min(len(content), sampleSize); i++ {
		if content[i] == 0 {
			return true
		}
	}
	return false
}

func hasWideBOM(content []byte) bool {
	if len(content) >= 4 {
		if (content[0] == 0xFF && content[1] == 0xFE && content[2] == 0x00 && content[3] == 0x00) ||
			(content[0] == 0x00 && content[1] == 0x00 && content[2] == 0xFE && content[3] == 0xFF) {
			return true // UTF-32
		}
	}
	if len(content) >= 2 {
		if (content[0] == 0xFF && content[1] == 0xFE) ||
			(content[0] == 0xFE && content[1] == 0xFF) {
			return true // UTF-16
		}
	}
	return false
}
