package ipnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServerIpNetIsHostAddress(t *testing.T) {
	ipNet := ServerIpNet()

	assert.NotNil(t, ipNet.IP.To4())
	ones, bits := ipNet.Mask.Size()
	assert.Equal(t, 32, ones)
	assert.Equal(t, 32, bits)
}
