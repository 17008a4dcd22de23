package leads

import (
	"crypto/rand"
	"regexp"
)

const (
	codeChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength = 7
)

// NewReferenceCode builds a lead reference code: the configured prefix plus
// a fixed-length random alphanumeric suffix. Uniqueness is not checked;
// collision probability is treated as negligible.
func NewReferenceCode(prefix string) string {
	b := make([]byte, codeLength)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	for i := range b {
		b[i] = codeChars[int(b[i])%len(codeChars)]
	}
	return prefix + string(b)
}

// MatchesFormat reports whether code has the required shape for the given
// prefix: the prefix followed by 6-8 uppercase alphanumerics.
func MatchesFormat(prefix, code string) bool {
	re := regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `[A-Z0-9]{6,8}$`)
	return re.MatchString(code)
}
