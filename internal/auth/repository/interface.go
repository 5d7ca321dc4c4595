package repository

//go:generate mockgen -source=interface.go -destination=../test/mock_store.go -package=test

// Store is one flat key/value storage tier. Implementations return an error
// only for real storage faults; a missing key reads as ("", nil).
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}
