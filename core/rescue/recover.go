package rescue

import (
	"github.com/zenlead/studio/core/logger"
)

func Recover(cleanups ...func()) {
	if r := recover(); r != nil {
		for _, cleanup := range cleanups {
			cleanup()
		}
		logger.Error("Recovered from panic: %v", r)
	}
}
