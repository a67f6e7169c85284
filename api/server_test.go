package api

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/trajlab/annotator-api/pkg/config"
)

func TestNewServerAppliesConfiguredTimeouts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	server := NewServer("127.0.0.1:8080", config.ServerConfig{
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   7 * time.Second,
		MaxHeaderBytes: 2048,
	})

	assert.Equal(t, "127.0.0.1:8080", server.httpServer.Addr)
	assert.Equal(t, 5*time.Second, server.httpServer.ReadTimeout)
	assert.Equal(t, 7*time.Second, server.httpServer.WriteTimeout)
	assert.Equal(t, 2048, server.httpServer.MaxHeaderBytes)
}

func TestNewServerFallsBackOnZeroValues(t *testing.T) {
	gin.SetMode(gin.TestMode)

	server := NewServer("127.0.0.1:8080", config.ServerConfig{})

	assert.Equal(t, 30*time.Second, server.httpServer.ReadTimeout)
	assert.Equal(t, 30*time.Second, server.httpServer.WriteTimeout)
	assert.Equal(t, 1<<20, server.httpServer.MaxHeaderBytes)
}
