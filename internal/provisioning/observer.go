package provisioning

import (
	"fmt"

	"github.com/go-logr/logr"
)

// Observer receives progress notifications during provisioning.
type Observer interface {
	Printf(format string, v ...interface{})
}

// LogrObserver implements Observer on top of a logr.Logger.
type LogrObserver struct {
	log logr.Logger
}

// NewLogrObserver creates an Observer backed by the given logger.
func NewLogrObserver(log logr.Logger) *LogrObserver {
	return &LogrObserver{log: log}
}

// Printf implements Observer.
func (o *LogrObserver) Printf(format string, v ...interface{}) {
	o.log.Info(fmt.Sprintf(format, v...))
}
