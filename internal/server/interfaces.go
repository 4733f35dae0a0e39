package server

import (
	"context"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . UpdateForcer,Logger

type UpdateForcer interface {
	ForceUpdate(ctx context.Context) (err error)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}
