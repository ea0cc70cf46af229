package cmd

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/flavioheleno/max7219"
	"github.com/retroenv/retrogolib/assert"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spitest"
)

// run executes the command line against a recorded SPI port.
func run(t *testing.T, args ...string) (*spitest.Record, error) {
	t.Helper()
	port := &spitest.Record{}
	root := NewRootCommand(func(name string) (spi.PortCloser, error) {
		return port, nil
	})
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return port, root.Execute()
}

// sent returns every recorded transaction as space separated hex.
func sent(port *spitest.Record) []string {
	var ops []string
	for _, op := range port.Ops {
		ops = append(ops, fmt.Sprintf("% x", op.W))
	}
	return ops
}

func TestSingleWrites(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"on", []string{"on"}, "0c 01"},
		{"off", []string{"off"}, "0c 00"},
		{"test on", []string{"test", "on"}, "0f 01"},
		{"test off", []string{"test", "off"}, "0f 00"},
		{"intensity", []string{"intensity", "12"}, "0a 0c"},
		{"scan limit", []string{"scan-limit", "4"}, "0b 03"},
		{"decode all", []string{"decode", "all"}, "09 ff"},
		{"decode none", []string{"decode", "none"}, "09 00"},
		{"decode mask", []string{"decode", "0x0f"}, "09 0f"},
		{"digit symbol", []string{"digit", "0", "--symbol", "H", "--dp"}, "01 8c"},
		{"digit blank", []string{"digit", "2", "--symbol", " "}, "03 0f"},
		{"digit byte", []string{"digit", "7", "--byte", "0x7e"}, "08 7e"},
		{"digit segments", []string{"digit", "3", "--segments", "0,1,1,0,0,0,0,1"}, "04 86"},
		{"raw", []string{"raw", "intensity", "0x0f"}, "0a 0f"},
		{"raw binary", []string{"raw", "Digit1", "0b10000001"}, "02 81"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			port, err := run(t, tt.args...)
			assert.NoError(t, err)
			ops := sent(port)
			assert.Len(t, ops, 1)
			assert.Equal(t, tt.want, ops[0])
		})
	}
}

func TestChainAddressing(t *testing.T) {
	port, err := run(t, "--chips", "3", "--chip", "1", "digit", "0", "--byte", "0xff")
	assert.NoError(t, err)
	assert.Len(t, port.Ops, 1)
	assert.Equal(t, "00 00 01 ff 00 00", sent(port)[0])

	port, err = run(t, "--chips", "2", "--chip", "1", "--reversed", "digit", "0", "--byte", "0xff")
	assert.NoError(t, err)
	assert.Len(t, port.Ops, 1)
	assert.Equal(t, "00 00 01 ff", sent(port)[0])

	port, err = run(t, "--chips", "2", "--chip", "0", "on")
	assert.NoError(t, err)
	assert.Equal(t, "00 00 0c 01", sent(port)[0])
}

func TestText(t *testing.T) {
	port, err := run(t, "text", "--", "-12.5")
	assert.NoError(t, err)

	want := []string{"09 ff", "01 05", "02 82", "03 01", "04 0a", "05 0f", "06 0f", "07 0f", "08 0f"}
	ops := sent(port)
	assert.Len(t, ops, len(want))
	for i := range want {
		assert.Equal(t, want[i], ops[i])
	}

	port, err = run(t, "text", "--keep-decode", "8")
	assert.NoError(t, err)
	assert.Equal(t, "01 08", sent(port)[0])
	assert.Len(t, port.Ops, 8)
}

func TestClear(t *testing.T) {
	port, err := run(t, "clear", "--decode", "all")
	assert.NoError(t, err)
	ops := sent(port)
	assert.Len(t, ops, 9)
	assert.Equal(t, "09 ff", ops[0])
	for n := 1; n <= max7219.Digits; n++ {
		assert.Equal(t, fmt.Sprintf("%02x 0f", n), ops[n])
	}

	port, err = run(t, "clear", "--decode", "none")
	assert.NoError(t, err)
	ops = sent(port)
	assert.Len(t, ops, 9)
	assert.Equal(t, "09 00", ops[0])
	for n := 1; n <= max7219.Digits; n++ {
		assert.Equal(t, fmt.Sprintf("%02x 00", n), ops[n])
	}
}

func TestReset(t *testing.T) {
	port, err := run(t, "--chips", "2", "--reset-intensity", "2", "reset")
	assert.NoError(t, err)
	ops := sent(port)
	assert.Len(t, ops, 2*14)
	assert.Equal(t, "00 00 0f 00", ops[0])
	assert.Equal(t, "00 00 0a 02", ops[4])
	assert.Equal(t, "0c 01 00 00", ops[27])
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantErr    error
		errContain string
	}{
		{"scan limit too high", []string{"scan-limit", "9"}, max7219.ErrOutOfRange, ""},
		{"intensity too high", []string{"intensity", "16"}, max7219.ErrOutOfRange, ""},
		{"intensity not a number", []string{"intensity", "max"}, nil, "invalid intensity"},
		{"digit out of range", []string{"digit", "8", "--byte", "1"}, max7219.ErrOutOfRange, ""},
		{"unknown symbol", []string{"digit", "0", "--symbol", "x"}, max7219.ErrInvalidArgument, ""},
		{"symbol too long", []string{"digit", "0", "--symbol", "HE"}, nil, "single character"},
		{"short segments", []string{"digit", "0", "--segments", "1,0"}, max7219.ErrInvalidArgument, ""},
		{"no digit content", []string{"digit", "0"}, nil, "symbol"},
		{"two digit contents", []string{"digit", "0", "--symbol", "1", "--byte", "1"}, nil, "symbol"},
		{"chip out of range", []string{"--chips", "2", "--chip", "2", "on"}, max7219.ErrOutOfRange, ""},
		{"unknown register", []string{"raw", "brightness", "1"}, max7219.ErrInvalidArgument, ""},
		{"bad raw value", []string{"raw", "intensity", "0x100"}, nil, "invalid byte value"},
		{"text too long", []string{"text", "123456789"}, nil, "needs 9 digits"},
		{"bad text", []string{"text", "12a"}, max7219.ErrInvalidArgument, ""},
		{"bad decode", []string{"decode", "some"}, nil, "decode mode"},
		{"clear without decode", []string{"clear"}, nil, "decode"},
		{"negative text without separator", []string{"text", "-12.5"}, nil, "unknown shorthand flag"},
		{"bad test mode", []string{"test", "maybe"}, nil, "on or off"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			port, err := run(t, tt.args...)
			assert.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), err.Error())
			}
			if tt.errContain != "" {
				assert.ErrorContains(t, err, tt.errContain)
			}
			assert.Len(t, port.Ops, 0)
		})
	}
}

func TestOpenError(t *testing.T) {
	root := NewRootCommand(func(name string) (spi.PortCloser, error) {
		return nil, errors.New("no such bus")
	})
	root.SetArgs([]string{"--spi", "SPI9.9", "on"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	err := root.Execute()
	assert.ErrorContains(t, err, "failed to open SPI bus")
	assert.ErrorContains(t, err, "no such bus")
}
