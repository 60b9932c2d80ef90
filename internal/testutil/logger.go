package testutil

import (
	"github.com/dtroode/studyflow-waitlist/internal/logger"
)

func MakeNoopLogger() *logger.Logger {
	return logger.NewNoop()
}
