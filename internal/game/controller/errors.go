package controller

import "errors"

var (
	ErrUnsetVariant    = errors.New("controller variant not set")
	ErrNilRand         = errors.New("random source must be provided")
	ErrInvalidRange    = errors.New("invalid target range")
	ErrEmptyTargetPool = errors.New("hold-outs eliminate every valid target count")
)
