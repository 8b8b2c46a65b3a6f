package kv

import "fmt"

// StorageReadError reports a stored collection that could not be read or
// decoded.
type StorageReadError struct {
	Key string
	Err error
}

func (e *StorageReadError) Error() string {
	return fmt.Sprintf("read storage key %q: %v", e.Key, e.Err)
}

func (e *StorageReadError) Unwrap() error {
	return e.Err
}

// StorageWriteError reports a collection the store refused to persist.
type StorageWriteError struct {
	Key string
	Err error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("write storage key %q: %v", e.Key, e.Err)
}

func (e *StorageWriteError) Unwrap() error {
	return e.Err
}
