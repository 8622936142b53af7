package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared application logger.
var Log *logrus.Logger

func BoostrapLogger() {
	Log = logrus.New()
	Log.SetOutput(os.Stdout)
	Log.SetLevel(logrus.DebugLevel)
	Log.SetReportCaller(true)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}
