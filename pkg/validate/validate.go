package validate

import "regexp"

var (
	dniRe   = regexp.MustCompile(`^\d{8}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// IsDNI reports whether s is a valid 8-digit national id.
func IsDNI(s string) bool {
	return dniRe.MatchString(s)
}

func IsEmail(s string) bool {
	return emailRe.MatchString(s)
}
