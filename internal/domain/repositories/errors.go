package repositories

import "errors"

// ErrDuplicate indica violação de índice único na persistência
var ErrDuplicate = errors.New("duplicate record")
