package ssd1306

import (
	"bytes"
	"errors"
	"testing"
)

type transfer struct {
	control bool
	bytes   []byte
}

type recordingBus struct {
	log     []transfer
	failAt  int // 1-based transfer index that fails, 0 = never
	failErr error
}

func (b *recordingBus) WriteControl(cmd []byte) error {
	return b.record(true, cmd)
}

func (b *recordingBus) WriteData(data []byte) error {
	return b.record(false, data)
}

func (b *recordingBus) record(control bool, p []byte) error {
	b.log = append(b.log, transfer{control: control, bytes: append([]byte(nil), p...)})
	if b.failAt == len(b.log) {
		return b.failErr
	}
	return nil
}

type bitmap struct {
	w, h int
	on   map[[2]int]bool
}

func (b bitmap) Pixel(x, y int) bool {
	return b.on[[2]int{x, y}]
}

func newBitmap(w, h int, lit ...[2]int) bitmap {
	b := bitmap{w: w, h: h, on: map[[2]int]bool{}}
	for _, p := range lit {
		b.on[p] = true
	}
	return b
}

func TestFlushPageOrder(t *testing.T) {
	bus := &recordingBus{}
	p, err := NewPanel(bus, DefaultOpts)
	if err != nil {
		t.Fatal(err)
	}

	if err := p.Flush(newBitmap(128, 64)); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if len(bus.log) != 16 {
		t.Fatalf("%d transfers, want 16", len(bus.log))
	}
	for page := 0; page < 8; page++ {
		addr := bus.log[2*page]
		data := bus.log[2*page+1]
		if !addr.control || !bytes.Equal(addr.bytes, []byte{0xB0 | byte(page), 0x00, 0x10}) {
			t.Errorf("page %d address = %x", page, addr.bytes)
		}
		if data.control || len(data.bytes) != 128 {
			t.Errorf("page %d data: control=%v len=%d", page, data.control, len(data.bytes))
		}
	}
}

func TestFlushPacksColumnsLSBTop(t *testing.T) {
	bus := &recordingBus{}
	p, _ := NewPanel(bus, DefaultOpts)

	// Column 3 of page 0: rows 0 and 7. Column 0 of page 1: row 9.
	src := newBitmap(128, 64, [2]int{3, 0}, [2]int{3, 7}, [2]int{0, 9})
	if err := p.Flush(src); err != nil {
		t.Fatal(err)
	}

	page0 := bus.log[1].bytes
	if page0[3] != 0x81 {
		t.Errorf("page 0 column 3 = %#02x, want 0x81", page0[3])
	}
	page1 := bus.log[3].bytes
	if page1[0] != 0x02 {
		t.Errorf("page 1 column 0 = %#02x, want 0x02", page1[0])
	}
}

func TestFlushColumnOffset(t *testing.T) {
	bus := &recordingBus{}
	p, err := NewPanel(bus, Opts{Width: 128, Height: 64, ColumnOffset: 2})
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Flush(newBitmap(128, 64)); err != nil {
		t.Fatal(err)
	}
	if got := bus.log[0].bytes; !bytes.Equal(got, []byte{0xB0, 0x02, 0x10}) {
		t.Fatalf("address = %x, want b0 02 10", got)
	}
}

func TestFlushStopsOnFirstError(t *testing.T) {
	boom := errors.New("nak")
	bus := &recordingBus{failAt: 6, failErr: boom} // page 2 data
	p, _ := NewPanel(bus, DefaultOpts)

	err := p.Flush(newBitmap(128, 64))
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped nak", err)
	}
	if len(bus.log) != 6 {
		t.Fatalf("%d transfers after failure, want 6", len(bus.log))
	}
}

func TestNewPanelRejectsGeometry(t *testing.T) {
	cases := []Opts{
		{Width: 128, Height: 60},
		{Width: 128, Height: 128},
		{Width: 0, Height: 64},
		{Width: 132, Height: 64, ColumnOffset: 2},
	}
	for _, o := range cases {
		if _, err := NewPanel(&recordingBus{}, o); !errors.Is(err, ErrGeometry) {
			t.Errorf("NewPanel(%+v) err = %v, want ErrGeometry", o, err)
		}
	}
}

func TestInitSequence(t *testing.T) {
	p, _ := NewPanel(&recordingBus{}, Opts{Width: 128, Height: 32, Contrast: 0x8F})
	seq := p.InitSequence()

	if seq[0] != 0xAE || seq[len(seq)-1] != 0xAF {
		t.Fatalf("sequence must start with display off and end with display on: %x", seq)
	}
	want := map[byte]byte{0xA8: 31, 0xDA: 0x02, 0x81: 0x8F, 0x20: 0x02}
	for i := 0; i < len(seq)-1; i++ {
		if v, ok := want[seq[i]]; ok {
			if seq[i+1] != v {
				t.Errorf("command %#02x argument = %#02x, want %#02x", seq[i], seq[i+1], v)
			}
			delete(want, seq[i])
		}
	}
	if len(want) != 0 {
		t.Errorf("commands missing from sequence: %v", want)
	}
}

type shortWriter struct{ got [][]byte }

func (w *shortWriter) Write(p []byte) (int, error) {
	w.got = append(w.got, append([]byte(nil), p...))
	return len(p), nil
}

func TestI2CBusPrefixes(t *testing.T) {
	w := &shortWriter{}
	bus := NewI2CBus(w)

	if err := bus.WriteControl([]byte{0xAF}); err != nil {
		t.Fatal(err)
	}
	if err := bus.WriteData([]byte{1, 2, 3}); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(w.got[0], []byte{0x00, 0xAF}) {
		t.Errorf("control frame = %x", w.got[0])
	}
	if !bytes.Equal(w.got[1], []byte{0x40, 1, 2, 3}) {
		t.Errorf("data frame = %x", w.got[1])
	}
}
