package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Update struct {
	// Period is the time between two update cycles.
	// A zero period runs a single cycle and exits.
	Period time.Duration
}

var ErrPeriodNegative = errors.New("period cannot be negative")

func (u Update) Validate() (err error) {
	if u.Period < 0 {
		return fmt.Errorf("%w: %s", ErrPeriodNegative, u.Period)
	}
	return nil
}

// Once returns true if a single update cycle should be run.
func (u Update) Once() bool {
	return u.Period == 0
}

func (u Update) String() string {
	return u.toLinesNode().String()
}

func (u Update) toLinesNode() *gotree.Node {
	if u.Once() {
		return gotree.New("Update: once")
	}
	node := gotree.New("Update")
	node.Appendf("Period: %s", u.Period)
	return node
}

func (u *Update) read(reader *reader.Reader) (err error) {
	u.Period, err = reader.Duration("PERIOD")
	return err
}
