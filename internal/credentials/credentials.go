package credentials

import "golang.org/x/crypto/bcrypt"

// Hash devolve um hash bcrypt com salt aleatório. Duas chamadas com o
// mesmo plaintext produzem hashes diferentes, ambos verificáveis.
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reporta se plain corresponde ao hash. Um hash malformado conta
// como mismatch, nunca como pânico.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
