package raltest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clktmr/ral/raltest"
)

func TestRegCounts(t *testing.T) {
	var reg raltest.Reg[uint16]

	reg.Store(0xbeef)
	assert.Equal(t, uint16(0xbeef), reg.Load())
	assert.Equal(t, 1, reg.Loads)
	assert.Equal(t, 1, reg.Stores)

	reg.SetRaw(0x1234)
	assert.Equal(t, uint16(0x1234), reg.Raw())
	assert.Equal(t, 1, reg.Loads)
	assert.Equal(t, 1, reg.Stores)

	reg.ResetCounts()
	assert.Zero(t, reg.Loads)
	assert.Zero(t, reg.Stores)
}

func TestTraceReg(t *testing.T) {
	trace := new(raltest.Trace)
	a := &raltest.TraceReg[uint32]{Name: "A", Trace: trace}
	b := &raltest.TraceReg[uint32]{Name: "B", Trace: trace}

	a.Store(0x1)
	b.Store(0x2)
	a.Load()

	assert.Equal(t, []string{"store A 0x1", "store B 0x2", "load A 0x1"}, trace.Ops())
	assert.Equal(t, 1, a.Loads)
	assert.Equal(t, 1, a.Stores)
}
