package pkg

import "github.com/google/uuid"

// GenerateSessionID - generates a unique identifier for a game session.
func GenerateSessionID() string {
	return uuid.NewString()
}

// IsSessionID - reports whether id looks like a value from GenerateSessionID.
func IsSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
