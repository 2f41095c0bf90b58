package cmd

import (
	"os"
	"testing"

	"github.com/zhubert/readthrough/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}
