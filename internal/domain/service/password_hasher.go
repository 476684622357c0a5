// Package service defines interfaces for domain services.
// These are contracts for capabilities the application layer needs but whose
// implementations live in the infrastructure layer.
package service

// PasswordHasher defines the interface for password hashing operations.
// This abstraction allows swapping the hashing algorithm without touching the use cases.
type PasswordHasher interface {
	// Hash generates a hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether a plaintext password matches a stored hash.
	Check(password, hash string) bool
}
