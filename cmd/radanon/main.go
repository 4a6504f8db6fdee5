// Command radanon anonymizes MAC addresses in an 802.11 Radiotap pcap
// capture, reading from stdin and writing to stdout. It is the teacher's
// anonymization tool rebuilt on the radiotap/dot11 decoders: where the
// original re-derived MAC offsets inline while walking raw bytes, this
// version decodes the frame fully and anonymizes the addresses dot11.MPDU
// already found.
package main

import (
	"bufio"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/heistp/radtap/frame"
	"github.com/heistp/radtap/internal/anon"
	"github.com/heistp/radtap/internal/pcap"
)

// iv is a fixed AES-CTR IV. Reusing it across runs with different keys is
// safe; reusing it with the *same* key across runs is not, so every run
// without --key generates a new key (see main below).
var iv = []byte{0x64, 0x5d, 0x6e, 0xb3, 0xaf, 0xb7, 0xb9, 0xe4,
	0xcc, 0x50, 0x78, 0x87, 0xec, 0xf3, 0xa6, 0x29}

const keyLen = 16

func run(in io.Reader, out io.Writer, a *anon.MACAnonymizer, truncate bool, logger *log.Logger) (n uint64, err error) {
	w := bufio.NewWriter(out)
	defer w.Flush()

	pr, err := pcap.NewReader(bufio.NewReader(in))
	if err != nil {
		return 0, err
	}
	if pr.LinkLayer != pcap.LinkLayerRadiotap {
		return 0, errors.New("radanon: unsupported link layer (only radiotap/802.11 is supported)")
	}
	pw, err := pcap.NewWriter(w, pr.ByteOrder(), pr.GlobalHeader)
	if err != nil {
		return 0, err
	}

	for {
		ph, b, rerr := pr.ReadPacket()
		if errors.Is(rerr, io.EOF) {
			return n, nil
		}
		if rerr != nil {
			return n, rerr
		}

		f, ferr := frame.Parse(b)
		end := len(b)
		if ferr != nil {
			logger.Warn("parse frame, passing through unmodified", "n", n, "err", ferr)
		} else {
			base := f.Radiotap.PaddedSize()
			for _, rel := range f.MPDU.AddrOffset {
				off := base + rel
				if off+6 > len(b) {
					continue
				}
				a.Anonymize(b[off : off+6])
			}
			if truncate {
				end = base + f.MPDU.Offset
			}
		}

		if truncate && end < len(b) {
			b = b[:end]
			ph.Len = uint32(end)
		}
		if werr := pw.WritePacket(ph, b); werr != nil {
			return n, werr
		}
		n++
	}
}

func main() {
	var (
		keyStr   = pflag.String("key", "", "key for anonymization (generated if empty)")
		macOUI   = pflag.String("mac-oui", "pseudonym", "MAC OUI anonymization method: encrypt, pseudonym, leave")
		macNIC   = pflag.String("mac-nic", "pseudonym", "MAC NIC anonymization method: encrypt, pseudonym, leave")
		noTrunc  = pflag.Bool("no-truncate", false, "do not truncate the undecoded tail of each frame")
		logFile  = pflag.String("log-file", "", "write logs to this file instead of stderr (rotated via lumberjack)")
		logLevel = pflag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	pflag.Parse()

	logger := log.New(os.Stderr)
	if *logFile != "" {
		logger = log.New(&lumberjack.Logger{Filename: *logFile, MaxSize: 10, MaxBackups: 3, MaxAge: 28})
	}
	if lvl, err := log.ParseLevel(*logLevel); err == nil {
		logger.SetLevel(lvl)
	}

	oui, err := anon.ParseMethod(*macOUI)
	if err != nil {
		logger.Fatal(err)
	}
	nic, err := anon.ParseMethod(*macNIC)
	if err != nil {
		logger.Fatal(err)
	}

	if *keyStr == "" {
		k := make([]byte, keyLen)
		if _, err := rand.Read(k); err != nil {
			logger.Fatal("generate key", "err", err)
		}
		*keyStr = string(k)
		logger.Info("auto-generated key (not displayed; pass --key to reuse it)")
	}

	sum := sha256.Sum256([]byte(*keyStr))
	block, err := aes.NewCipher(sum[:])
	if err != nil {
		logger.Fatal("init cipher", "err", err)
	}
	stream := cipher.NewCTR(block, iv)

	a := anon.NewMACAnonymizer(oui, nic, stream)

	n, err := run(os.Stdin, os.Stdout, a, !*noTrunc, logger)
	if err != nil && !errors.Is(err, io.EOF) {
		logger.Fatal("anonymize", "after_packets", n, "err", err)
	}
	logger.Info("done", "packets", n, "addrs_anonymized", a.Count())
}
