package logger

import (
	"go.uber.org/zap"
)

var (
	String  = zap.String
	Strings = zap.Strings
	Int     = zap.Int
	Float64 = zap.Float64
	ErrorF  = zap.Error
)

type (
	Field = zap.Field
)
