package max7219_test

import (
	"fmt"
	"log"

	"github.com/flavioheleno/max7219"
	"periph.io/x/conn/v3/spi/spitest"
)

// Writing to the second chip of a two chip chain sends a no-op to the first.
func Example() {
	// Record the bus traffic instead of opening a real port
	port := &spitest.Record{}

	dev, err := max7219.NewSPI(port, &max7219.Opts{Chips: 2, SkipReset: true})
	if err != nil {
		log.Fatal(err)
	}

	if err := dev.SetActiveController(1); err != nil {
		log.Fatal(err)
	}
	if err := dev.SetDecodeAll(); err != nil {
		log.Fatal(err)
	}
	if err := dev.SetDigitSymbol(0, 'H', true); err != nil {
		log.Fatal(err)
	}

	for _, op := range port.Ops {
		fmt.Printf("% x\n", op.W)
	}
	// Output:
	// 09 ff 00 00
	// 01 8c 00 00
}
