package actionsheet

import (
	"io"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	SetLogWriter(io.Discard)
	os.Exit(m.Run())
}
