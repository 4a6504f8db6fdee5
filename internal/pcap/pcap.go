// Package pcap reads and writes the classic libpcap file format: a magic
// number fixing byte order, a global header naming the link layer, then a
// stream of (packet header, packet bytes) records. Adapted from the
// teacher's top-level pcap framing in main.go.
package pcap

import (
	"encoding/binary"
	"fmt"
	"io"
)

// MagicLE is the little-endian magic value.
const MagicLE Magic = 0xd4c3b2a1

// MagicBE is the big-endian magic value.
const MagicBE Magic = 0xa1b2c3d4

// Magic is the four-byte value that opens a pcap file and fixes the byte
// order of everything that follows.
type Magic uint32

func (m *Magic) Read(r io.Reader) error {
	if err := binary.Read(r, binary.BigEndian, m); err != nil {
		return err
	}
	if *m != MagicLE && *m != MagicBE {
		return fmt.Errorf("pcap: bad magic: 0x%x", uint32(*m))
	}
	return nil
}

func (m *Magic) Write(w io.Writer) error {
	return binary.Write(w, m.ByteOrder(), MagicBE)
}

// ByteOrder returns the byte order implied by the magic value.
func (m *Magic) ByteOrder() binary.ByteOrder {
	switch *m {
	case MagicLE:
		return binary.LittleEndian
	case MagicBE:
		return binary.BigEndian
	default:
		panic(fmt.Sprintf("pcap: invalid magic: 0x%x", uint32(*m)))
	}
}

// GlobalHeader is the pcap file header that follows the magic number.
type GlobalHeader struct {
	VersionMajor uint16
	VersionMinor uint16
	ThisZone     int32
	Sigfigs      uint32
	Snaplen      uint32
	LinkLayer    uint32
}

func (h *GlobalHeader) Read(r io.Reader, order binary.ByteOrder) error {
	return binary.Read(r, order, h)
}

func (h *GlobalHeader) Write(w io.Writer, order binary.ByteOrder) error {
	return binary.Write(w, order, h)
}

// PacketHeader precedes every captured packet's bytes.
type PacketHeader struct {
	TimestampSec  uint32
	TimestampUsec uint32
	Len           uint32
	OrigLen       uint32
}

// LinkLayerRadiotap is the pcap DLT for 802.11 plus a Radiotap header.
// https://www.tcpdump.org/linktypes.html
const LinkLayerRadiotap uint32 = 127

// MaxPacketLen bounds how large a single packet record this package will
// allocate for, guarding against a corrupt or hostile length field.
var MaxPacketLen uint32 = 256 * 1024

// Reader reads a pcap stream packet by packet.
type Reader struct {
	r     io.Reader
	order binary.ByteOrder
	magic Magic
	GlobalHeader
}

// NewReader reads the magic number and global header from r.
func NewReader(r io.Reader) (*Reader, error) {
	pr := &Reader{r: r}
	if err := pr.magic.Read(r); err != nil {
		return nil, err
	}
	pr.order = pr.magic.ByteOrder()
	if err := pr.GlobalHeader.Read(r, pr.order); err != nil {
		return nil, err
	}
	return pr, nil
}

// ByteOrder is the byte order fixed by the file's magic number.
func (pr *Reader) ByteOrder() binary.ByteOrder { return pr.order }

// ReadPacket reads the next packet header and bytes.
func (pr *Reader) ReadPacket() (PacketHeader, []byte, error) {
	var ph PacketHeader
	if err := binary.Read(pr.r, pr.order, &ph); err != nil {
		return ph, nil, err
	}
	if ph.Len > MaxPacketLen {
		return ph, nil, fmt.Errorf("pcap: max packet len exceeded: %d", ph.Len)
	}
	b := make([]byte, ph.Len)
	if _, err := io.ReadFull(pr.r, b); err != nil {
		return ph, nil, err
	}
	return ph, b, nil
}

// Writer writes a pcap stream packet by packet, mirroring a Reader's byte
// order and global header.
type Writer struct {
	w     io.Writer
	order binary.ByteOrder
}

// NewWriter writes the magic number and global header to w, using gh's
// link layer and order's byte order.
func NewWriter(w io.Writer, order binary.ByteOrder, gh GlobalHeader) (*Writer, error) {
	if err := binary.Write(w, order, MagicBE); err != nil {
		return nil, err
	}
	if err := gh.Write(w, order); err != nil {
		return nil, err
	}
	return &Writer{w: w, order: order}, nil
}

// WritePacket writes one packet header and its bytes.
func (pw *Writer) WritePacket(ph PacketHeader, b []byte) error {
	if err := binary.Write(pw.w, pw.order, &ph); err != nil {
		return err
	}
	_, err := pw.w.Write(b)
	return err
}
