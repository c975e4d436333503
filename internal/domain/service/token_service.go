package service

// TokenGenerator issues opaque, unguessable tokens such as password reset tokens.
type TokenGenerator interface {
	// Generate returns a new random token.
	Generate() (string, error)
}
