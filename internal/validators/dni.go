package validators

import (
	"regexp"
	"strconv"
	"strings"
)

// Letras de control oficiales del DNI español, indexadas por número % 23.
const dniControlLetters = "TRWAGMYFPDXBNJZSQVHLCKE"

var (
	dniPattern = regexp.MustCompile(`^[0-9]{8}[A-Z]$`)
	niePattern = regexp.MustCompile(`^[XYZ][0-9]{7}[A-Z]$`)
)

// IsDNIValid valida DNI (8 dígitos + letra) e NIE (X/Y/Z + 7 dígitos +
// letra) verificando a letra de control.
func IsDNIValid(dni string) bool {
	dni = strings.ToUpper(strings.TrimSpace(dni))

	switch {
	case dniPattern.MatchString(dni):
		number, err := strconv.Atoi(dni[:8])
		if err != nil {
			return false
		}
		return dni[8] == dniControlLetters[number%23]

	case niePattern.MatchString(dni):
		// X→0, Y→1, Z→2 antepuesto ao número
		prefix := strings.IndexByte("XYZ", dni[0])
		number, err := strconv.Atoi(strconv.Itoa(prefix) + dni[1:8])
		if err != nil {
			return false
		}
		return dni[8] == dniControlLetters[number%23]
	}

	return false
}
