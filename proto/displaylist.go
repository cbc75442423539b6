// Package proto is the wire codec between a host and a lumen device: a
// display-list update message and its acknowledgement. The renderer itself
// never parses host bytes; a transport front-end decodes an update into a
// scene.List and hands it to the pipeline.
package proto

import (
	"encoding/binary"
	"errors"

	"lumen/scene"
)

// ItemKind tags one primitive record in an update message.
type ItemKind uint8

const (
	ItemRect ItemKind = iota + 1
	ItemText
	ItemImage
	ItemScaled
)

const updateVersion = 1

// ErrTruncated is returned when an update message ends mid-record.
// Individually malformed records do not produce it; they degrade to inert
// items so the rest of the frame still renders.
var ErrTruncated = errors.New("proto: truncated update message")

// FontResolver maps a wire font id to a resolved font. Returning nil
// degrades the text record.
type FontResolver func(id uint8) *scene.Font

// Update message layout (little-endian):
//   - u8:  version
//   - u16: item count, topmost first
//   - per item: u8 kind, u32 record length, record bytes
//
// Record layouts:
//
//	rect:   i32 x, y, w, h; u32 rgb
//	text:   i32 x, y; u32 fg; u8 bg flag; u32 bg; u8 font id; u16 len; bytes
//	image:  i32 x, y; u8 bg flag; u32 bg; i32 w, h; RGBA bytes (w*h*4)
//	scaled: i32 x, y, w, h; u8 bg flag; u32 bg; i32 srcX, srcY;
//	        u16 xScale, yScale; i32 srcW, srcH; RGBA bytes (srcW*srcH*4)

// EncodeUpdate serializes a display list. Items that cannot be expressed
// on the wire (inert placeholders) are skipped.
func EncodeUpdate(list scene.List, fontID func(*scene.Font) (uint8, bool)) []byte {
	buf := make([]byte, 3, 64)
	buf[0] = updateVersion

	count := 0
	for _, it := range list {
		rec, kind, ok := encodeItem(it, fontID)
		if !ok {
			continue
		}
		var hdr [5]byte
		hdr[0] = byte(kind)
		binary.LittleEndian.PutUint32(hdr[1:5], uint32(len(rec)))
		buf = append(buf, hdr[:]...)
		buf = append(buf, rec...)
		count++
	}
	binary.LittleEndian.PutUint16(buf[1:3], uint16(count))
	return buf
}

func encodeItem(it scene.Item, fontID func(*scene.Font) (uint8, bool)) ([]byte, ItemKind, bool) {
	switch v := it.(type) {
	case *scene.Rect:
		rec := make([]byte, 20)
		putI32(rec[0:], v.X)
		putI32(rec[4:], v.Y)
		putI32(rec[8:], v.W)
		putI32(rec[12:], v.H)
		binary.LittleEndian.PutUint32(rec[16:], uint32(v.Color))
		return rec, ItemRect, true

	case *scene.Text:
		id := uint8(0)
		if fontID != nil {
			got, ok := fontID(v.Font)
			if !ok {
				return nil, 0, false
			}
			id = got
		}
		rec := make([]byte, 21+len(v.Text))
		putI32(rec[0:], v.X)
		putI32(rec[4:], v.Y)
		binary.LittleEndian.PutUint32(rec[8:], uint32(v.Color))
		putBackground(rec[12:], v.Background)
		rec[17] = id
		binary.LittleEndian.PutUint16(rec[18:], uint16(len(v.Text)))
		copy(rec[20:], v.Text)
		return rec[:20+len(v.Text)], ItemText, true

	case *scene.Image:
		_, _, w, h := v.Bounds()
		rec := make([]byte, 21+len(v.Pix()))
		putI32(rec[0:], v.X)
		putI32(rec[4:], v.Y)
		putBackground(rec[8:], v.Background)
		putI32(rec[13:], w)
		putI32(rec[17:], h)
		copy(rec[21:], v.Pix())
		return rec, ItemImage, true

	case *scene.ScaledImage:
		rec := make([]byte, 41+len(v.Pix()))
		putI32(rec[0:], v.X)
		putI32(rec[4:], v.Y)
		putI32(rec[8:], v.W)
		putI32(rec[12:], v.H)
		putBackground(rec[16:], v.Background)
		putI32(rec[21:], v.SourceX)
		putI32(rec[25:], v.SourceY)
		binary.LittleEndian.PutUint16(rec[29:], uint16(v.XScale))
		binary.LittleEndian.PutUint16(rec[31:], uint16(v.YScale))
		putI32(rec[33:], v.SourceWidth())
		putI32(rec[37:], v.SourceHeight())
		copy(rec[41:], v.Pix())
		return rec, ItemScaled, true
	}
	return nil, 0, false
}

// DecodeUpdate parses an update into a display list. Malformed or unknown
// records are replaced with inert items and counted in degraded, so one bad
// primitive never blanks the frame; only a structurally truncated message
// fails outright.
func DecodeUpdate(b []byte, fonts FontResolver) (list scene.List, degraded int, err error) {
	if len(b) < 3 || b[0] != updateVersion {
		return nil, 0, ErrTruncated
	}
	count := int(binary.LittleEndian.Uint16(b[1:3]))
	off := 3

	list = make(scene.List, 0, count)
	for i := 0; i < count; i++ {
		if off+5 > len(b) {
			return nil, 0, ErrTruncated
		}
		kind := ItemKind(b[off])
		n := int(binary.LittleEndian.Uint32(b[off+1 : off+5]))
		off += 5
		if off+n > len(b) {
			return nil, 0, ErrTruncated
		}
		rec := b[off : off+n]
		off += n

		it := decodeItem(kind, rec, fonts)
		if it == nil {
			it = scene.Inert()
			degraded++
		}
		list = append(list, it)
	}
	return list, degraded, nil
}

func decodeItem(kind ItemKind, rec []byte, fonts FontResolver) scene.Item {
	switch kind {
	case ItemRect:
		if len(rec) != 20 {
			return nil
		}
		return &scene.Rect{
			X: getI32(rec[0:]), Y: getI32(rec[4:]),
			W: getI32(rec[8:]), H: getI32(rec[12:]),
			Color: scene.RGB(binary.LittleEndian.Uint32(rec[16:])),
		}

	case ItemText:
		if len(rec) < 20 {
			return nil
		}
		n := int(binary.LittleEndian.Uint16(rec[18:]))
		if len(rec) != 20+n || fonts == nil {
			return nil
		}
		font := fonts(rec[17])
		if font == nil {
			return nil
		}
		return &scene.Text{
			X: getI32(rec[0:]), Y: getI32(rec[4:]),
			Color:      scene.RGB(binary.LittleEndian.Uint32(rec[8:])),
			Background: getBackground(rec[12:]),
			Font:       font,
			Text:       string(rec[20 : 20+n]),
		}

	case ItemImage:
		if len(rec) < 21 {
			return nil
		}
		w, h := getI32(rec[13:]), getI32(rec[17:])
		im, err := scene.NewImage(getI32(rec[0:]), getI32(rec[4:]), getBackground(rec[8:]), w, h, rec[21:])
		if err != nil {
			return nil
		}
		return im

	case ItemScaled:
		if len(rec) < 41 {
			return nil
		}
		s, err := scene.NewScaledImage(
			getI32(rec[0:]), getI32(rec[4:]), getI32(rec[8:]), getI32(rec[12:]),
			getBackground(rec[16:]),
			getI32(rec[21:]), getI32(rec[25:]),
			int(binary.LittleEndian.Uint16(rec[29:])), int(binary.LittleEndian.Uint16(rec[31:])),
			getI32(rec[33:]), getI32(rec[37:]),
			rec[41:],
		)
		if err != nil {
			return nil
		}
		return s
	}
	return nil
}

func putI32(b []byte, v int) {
	binary.LittleEndian.PutUint32(b, uint32(int32(v)))
}

func getI32(b []byte) int {
	return int(int32(binary.LittleEndian.Uint32(b)))
}

// putBackground writes flag byte + u32 color.
func putBackground(b []byte, bg scene.Background) {
	c, visible := bg.Color()
	if visible {
		b[0] = 1
	} else {
		b[0] = 0
	}
	binary.LittleEndian.PutUint32(b[1:], uint32(c))
}

func getBackground(b []byte) scene.Background {
	if b[0] == 0 {
		return scene.Transparent
	}
	return scene.Bg(scene.RGB(binary.LittleEndian.Uint32(b[1:])))
}
