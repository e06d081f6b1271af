package main

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/exercise-tracker/internal/logger"
	"github.com/MKhiriev/exercise-tracker/models"
)

func TestRun_InvalidFlag(t *testing.T) {
	err := run([]string{"-no-such-flag"}, models.NewAppBuildInfo("", "", ""), logger.Nop())
	assert.Error(t, err)
}

func TestRun_ReturnsWhenAddressIsBusy(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	done := make(chan error, 1)
	go func() {
		done <- run([]string{"-a", ln.Addr().String(), "-d", "memory://"}, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
	}()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after the server failed to start")
	}
}
