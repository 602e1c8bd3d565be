package crypto

import "golang.org/x/crypto/bcrypt"

// hashCost is the fixed bcrypt work factor. Changing it only affects newly
// created hashes; verification reads the cost from the stored hash.
const hashCost = 10

// HashPassword hashes a password with bcrypt. The salt is generated by
// bcrypt and encoded into the returned hash string.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether a password matches the stored bcrypt hash.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
