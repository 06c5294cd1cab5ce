package nbt

// Hand-rolled UTF-8, ported from the original codec rather than delegated
// to the runtime: encode packs each code point into 1-4 bytes, decode is
// deliberately lenient and skips bytes that do not match any recognized
// leading pattern.

func appendUTF8(dst []byte, s string) []byte {
	for _, r := range s {
		c := uint32(r)
		switch {
		case c < 0x80:
			dst = append(dst, byte(c))
		case c < 0x800:
			dst = append(dst, 0xc0|byte(c>>6), 0x80|byte(c&0x3f))
		case c < 0x10000:
			dst = append(dst, 0xe0|byte(c>>12), 0x80|byte(c>>6&0x3f), 0x80|byte(c&0x3f))
		default:
			dst = append(dst, 0xf0|byte(c>>18), 0x80|byte(c>>12&0x3f), 0x80|byte(c>>6&0x3f), 0x80|byte(c&0x3f))
		}
	}
	return dst
}

func decodeUTF8(b []byte) string {
	runes := make([]rune, 0, len(b))

	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c < 0x80:
			runes = append(runes, rune(c))
			i++
		case c&0xe0 == 0xc0:
			if i+2 > len(b) {
				return string(runes)
			}
			runes = append(runes, rune(c&0x1f)<<6|rune(b[i+1]&0x3f))
			i += 2
		case c&0xf0 == 0xe0:
			if i+3 > len(b) {
				return string(runes)
			}
			runes = append(runes, rune(c&0x0f)<<12|rune(b[i+1]&0x3f)<<6|rune(b[i+2]&0x3f))
			i += 3
		case c&0xf8 == 0xf0:
			if i+4 > len(b) {
				return string(runes)
			}
			runes = append(runes, rune(c&0x07)<<18|rune(b[i+1]&0x3f)<<12|rune(b[i+2]&0x3f)<<6|rune(b[i+3]&0x3f))
			i += 4
		default:
			// unrecognized leading byte, skip it
			i++
		}
	}

	return string(runes)
}
