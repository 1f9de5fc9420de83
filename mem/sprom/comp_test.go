package sprom

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/moaz-kh/MEM-lib/mem"
	"github.com/moaz-kh/MEM-lib/mem/port"
)

func readEdge(addr uint64) port.Signals {
	return port.Signals{Enable: true, Gate: true, Addr: addr}
}

var _ = Describe("Single-Port ROM", func() {
	var c *Comp

	image := []mem.Word{
		mem.WordFromUint64(8, 0x10),
		mem.WordFromUint64(8, 0x20),
		mem.WordFromUint64(8, 0x30),
		mem.WordFromUint64(8, 0x40),
	}

	BeforeEach(func() {
		var err error
		c, err = MakeBuilder().
			WithAddressWidth(4).
			WithDataWidth(8).
			WithMemorySize(128).
			WithReadLatency(2).
			WithContents(image).
			Build("SPROM")
		Expect(err).NotTo(HaveOccurred())
	})

	It("should serve reads after the configured latency", func() {
		c.PosEdge(readEdge(0x02))
		c.PosEdge(readEdge(0x02))
		c.PosEdge(readEdge(0x02))

		Expect(c.Dout().Uint64()).To(Equal(uint64(0x30)))
	})

	It("should ignore the write inputs entirely", func() {
		c.PosEdge(port.Signals{
			Enable: true,
			Gate:   true,
			Addr:   0x01,
			Din:    mem.WordFromUint64(8, 0xee),
			Mask:   []bool{true},
		})
		c.PosEdge(readEdge(0x01))
		c.PosEdge(readEdge(0x01))

		Expect(c.Dout().Uint64()).To(Equal(uint64(0x20)))
	})

	It("should return zero for addresses the image does not cover", func() {
		c.PosEdge(readEdge(0x0a))
		c.PosEdge(readEdge(0x0a))
		c.PosEdge(readEdge(0x0a))

		Expect(c.Dout().Uint64()).To(Equal(uint64(0)))
	})

	It("should hold the output while disabled", func() {
		c.PosEdge(readEdge(0x03))
		c.PosEdge(readEdge(0x03))
		c.PosEdge(readEdge(0x03))
		Expect(c.Dout().Uint64()).To(Equal(uint64(0x40)))

		for i := 0; i < 4; i++ {
			c.PosEdge(port.Signals{Gate: true, Addr: 0x03})
		}

		Expect(c.Dout().Uint64()).To(Equal(uint64(0x40)))
	})

	It("should force the output to the reset value on a synchronous reset", func() {
		c.PosEdge(readEdge(0x00))
		c.PosEdge(readEdge(0x00))
		c.PosEdge(readEdge(0x00))
		Expect(c.Dout().Uint64()).To(Equal(uint64(0x10)))

		c.PosEdge(port.Signals{Enable: true, Gate: true, Reset: true})
		Expect(c.Dout().Uint64()).To(Equal(uint64(0)))

		c.PosEdge(readEdge(0x00))
		c.PosEdge(readEdge(0x00))
		Expect(c.Dout().Uint64()).To(Equal(uint64(0x10)))
	})

	It("should report no ECC errors", func() {
		Expect(c.SingleBitErr()).To(BeFalse())
		Expect(c.DoubleBitErr()).To(BeFalse())
	})
})

var _ = Describe("ROM Image Loading", func() {
	It("should load a hex image file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "boot.hex")
		data := "// boot image\nde\nad\nbe\nef\n"
		Expect(os.WriteFile(path, []byte(data), 0o644)).To(Succeed())

		c, err := MakeBuilder().
			WithAddressWidth(4).
			WithDataWidth(8).
			WithMemorySize(128).
			WithReadLatency(1).
			WithImageFile(path).
			Build("SPROM")
		Expect(err).NotTo(HaveOccurred())

		c.PosEdge(readEdge(0x03))
		Expect(c.Dout().Uint64()).To(Equal(uint64(0xef)))
	})

	It("should reject an image wider than the data port", func() {
		path := filepath.Join(GinkgoT().TempDir(), "wide.hex")
		Expect(os.WriteFile(path, []byte("1ff\n"), 0o644)).To(Succeed())

		_, err := MakeBuilder().
			WithAddressWidth(4).
			WithDataWidth(8).
			WithMemorySize(128).
			WithReadLatency(1).
			WithImageFile(path).
			Build("SPROM")
		Expect(err).To(HaveOccurred())
	})
})
