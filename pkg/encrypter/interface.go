package encrypter

// Encrypter hashes and checks passwords.
// Implementations are safe for concurrent use.
type Encrypter interface {
	HashPassword(password string) (string, error)
	CheckPasswordHash(password, hash string) bool
}

// New creates a bcrypt Encrypter. A cost outside bcrypt's range uses bcrypt.DefaultCost.
func New(cost int) Encrypter {
	if cost < minCost || cost > maxCost {
		cost = defaultCost
	}
	return &implEncrypter{cost: cost}
}
