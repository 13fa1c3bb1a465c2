package service

import "errors"

var (
	// ErrInvalidProfile wraps validation failures on Save and Rename.
	ErrInvalidProfile = errors.New("invalid rate profile")

	// ErrProfileExists is returned by Rename when the target name is taken.
	ErrProfileExists = errors.New("rate profile already exists")
)
