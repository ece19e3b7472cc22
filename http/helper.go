package http

import "errors"

var errInvalidNumber = errors.New("invalid number")

// atoi parses a non-negative decimal integer. Signs, spaces and empty input
// are rejected.
func atoi(s string) (int, error) {
	if s == "" {
		return 0, errInvalidNumber
	}

	var n int
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, errInvalidNumber
		}
		if n > (maxInt-int(c-'0'))/10 {
			return 0, errInvalidNumber
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

const maxInt = int(^uint(0) >> 1)

// appendInt writes n in decimal without going through a string.
func appendInt(dst []byte, n int) []byte {
	if n == 0 {
		return append(dst, '0')
	}
	if n < 0 {
		dst = append(dst, '-')
		n = -n
	}

	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = '0' + byte(n%10)
		n /= 10
	}

	return append(dst, buf[i:]...)
}
