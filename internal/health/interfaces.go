package health

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . LastErrorer,Warner

type LastErrorer interface {
	LastError() (err error)
}

type Warner interface {
	Warn(s string)
}
