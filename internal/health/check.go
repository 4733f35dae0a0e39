package health

import (
	"fmt"
)

// MakeIsHealthy returns a function reporting the error of
// the last update cycle, logging it as a warning.
func MakeIsHealthy(runner LastErrorer, logger Warner) func() error {
	return func() (err error) {
		err = runner.LastError()
		if err != nil {
			err = fmt.Errorf("last update cycle failed: %w", err)
			logger.Warn("unhealthy: " + err.Error())
		}
		return err
	}
}
