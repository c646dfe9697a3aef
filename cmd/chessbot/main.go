package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.InfoLevel)

	root := Root()
	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
