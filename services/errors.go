package services

import "errors"

var (
	ErrPlayerNotFound     = errors.New("player not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrGameTypeNotFound   = errors.New("game type not found")
	ErrPlayerNameTaken    = errors.New("player name already exists")
	ErrGameTypeNameTaken  = errors.New("game type name already exists")
	ErrGameTypeInUse      = errors.New("cannot delete: game type is used by existing sessions")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
