package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt hash of password. The salt is embedded
// in the returned hash. Cost below bcrypt.MinCost falls back to the default.
func HashPassword(password string, cost int) ([]byte, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return bcrypt.GenerateFromPassword([]byte(password), cost)
}

// CheckPassword reports whether password matches the stored bcrypt hash.
func CheckPassword(hash []byte, password string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
