// Command radtap dumps decoded Radiotap and 802.11 MAC header fields from
// a pcap capture, one line per frame. It is read-only: unlike radanon it
// never rewrites the capture.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/heistp/radtap/frame"
	"github.com/heistp/radtap/internal/pcap"
)

func main() {
	var (
		logFile  = pflag.String("log-file", "", "write logs to this file instead of stderr (rotated via lumberjack)")
		logLevel = pflag.String("log-level", "info", "log level: debug, info, warn, error")
		maxCount = pflag.Int("count", 0, "stop after this many frames (0 means unlimited)")
	)
	pflag.Parse()

	logger := log.New(os.Stderr)
	if *logFile != "" {
		logger = log.New(&lumberjack.Logger{
			Filename:   *logFile,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		})
	}
	if lvl, err := log.ParseLevel(*logLevel); err == nil {
		logger.SetLevel(lvl)
	}

	path := "-"
	if args := pflag.Args(); len(args) > 0 {
		path = args[0]
	}

	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			logger.Fatal("open capture", "path", path, "err", err)
		}
		defer f.Close()
		in = f
	}

	pr, err := pcap.NewReader(in)
	if err != nil {
		logger.Fatal("read pcap header", "err", err)
	}
	if pr.LinkLayer != pcap.LinkLayerRadiotap {
		logger.Fatal("unsupported link layer", "link_layer", pr.LinkLayer)
	}
	logger.Info("reading capture", "path", path, "snaplen", pr.Snaplen)

	var n int
	for {
		if *maxCount > 0 && n >= *maxCount {
			break
		}
		_, b, err := pr.ReadPacket()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.Error("read packet", "n", n, "err", err)
			break
		}
		n++

		f, err := frame.Parse(b)
		if err != nil {
			logger.Warn("parse frame", "n", n, "err", err)
			continue
		}

		rate, _ := f.Rate()
		fields := []interface{}{
			"n", n,
			"type", f.MPDU.Type,
			"subtype", f.MPDU.Subtype,
			"duration_kind", f.MPDU.Duration.Kind,
			"rate_mbps", rate,
			"encrypted", f.Encrypted(),
			"body_len", len(f.Body),
		}
		if len(f.MPDU.Addr) > 0 {
			fields = append(fields, "addr1", f.MPDU.Addr[0])
		}
		for _, fe := range f.Radiotap.Errors {
			logger.Debug("radiotap field error", "n", n, "field", fe.Field, "err", fe.Reason)
		}
		for _, fe := range f.MPDU.Errors {
			logger.Debug("mpdu field error", "n", n, "field", fe.Field, "err", fe.Reason)
		}
		logger.Info("frame", fields...)
	}

	logger.Info("done", "frames", n)
}
