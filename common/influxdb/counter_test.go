package influxdb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rodoshi16/UTMIST-AI2/common/influxdb"
)

func TestCounterAddAndReset(t *testing.T) {
	counter := influxdb.NewCounter()

	counter.Add(1)
	counter.Add(2)

	assert.Equal(t, 3, counter.GetAndReset())
	assert.Equal(t, 0, counter.GetAndReset())
}
