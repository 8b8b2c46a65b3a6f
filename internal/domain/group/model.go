package group

import "errors"

// ErrAlreadyExists is returned when a group with the same name is already stored.
var ErrAlreadyExists = errors.New("group already exists")

// AlreadyExistsMessage is the user-facing text for ErrAlreadyExists.
const AlreadyExistsMessage = "Já existe uma turma cadastrada com esse nome."
