package interfaces

// IHasher abstracts credential hashing (e.g. bcrypt). The workflow
// engine derives an initial credential during onboarding and never
// inspects the digest afterwards.
type IHasher interface {
	Hash(secret string) (string, error)
}
