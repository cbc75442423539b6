package hal

// MemoryLCDFramer produces the per-line framing Sharp memory panels expect:
// a mode byte carrying the VCOM polarity bit, a 1-based line address, and
// two trailer padding bytes. The polarity bit alternates once per completed
// full-frame refresh, as the panel requires to avoid DC bias.
type MemoryLCDFramer struct {
	vcom byte
}

func (f *MemoryLCDFramer) Overhead() (header, trailer int) { return 2, 2 }

func (f *MemoryLCDFramer) EncodeLine(line []byte, y int) {
	line[0] = 0x01 | f.vcom
	line[1] = byte(y + 1)
	line[len(line)-2] = 0
	line[len(line)-1] = 0
}

func (f *MemoryLCDFramer) EndFrame() { f.vcom ^= 0x02 }
