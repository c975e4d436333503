package auth

import (
	"authgate/internal/domain/service"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
)

const resetTokenLength = 32

// nanoidGenerator issues URL-safe random tokens.
type nanoidGenerator struct {
	length int
}

// NewResetTokenGenerator returns the generator used for password reset tokens.
func NewResetTokenGenerator() service.TokenGenerator {
	return &nanoidGenerator{length: resetTokenLength}
}

// Generate returns a new random token.
func (g *nanoidGenerator) Generate() (string, error) {
	token, err := gonanoid.New(g.length)
	if err != nil {
		return "", errors.Wrap(err, "generate token")
	}

	return token, nil
}
