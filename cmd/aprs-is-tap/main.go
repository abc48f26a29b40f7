// Command aprs-is-tap connects to an APRS-IS style server, logs in, and
// prints each decoded packet line it receives. It is a minimal stand-in
// for the teacher's src/igate.go connection/login sequence, trimmed down
// to the byte-stream contract this module's codec actually needs to
// exercise: connect, send a login line, read lines, decode, print.
package main

import (
	"bufio"
	"net"
	"time"

	"github.com/kc2g/aprscore/aprsframe"
	"github.com/kc2g/aprscore/callsign"
	"github.com/kc2g/aprscore/config"
	"github.com/kc2g/aprscore/internal/logfmt"
	"github.com/kc2g/aprscore/tnc2"
	"github.com/lestrrat-go/strftime"
	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.String("config", "", "path to a YAML config file (see config.Config)")
	var cfg config.Config
	config.Flags(pflag.CommandLine, &cfg)
	pflag.Parse()

	logger := logfmt.Default()

	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Fatal("loading config", "err", err)
		}
		cfg = loaded
		// Parse again so command-line flags override the file's values.
		pflag.Parse()
	}

	if cfg.Server == "" || cfg.Callsign == "" {
		logger.Fatal("server and callsign are required (via --config, --server, --callsign)")
	}

	call, err := callsign.ParseTNC2(cfg.Callsign)
	if err != nil {
		logger.Fatal("parsing callsign", "callsign", cfg.Callsign, "err", err)
	}

	conn, err := net.Dial("tcp", cfg.Server)
	if err != nil {
		logger.Fatal("connecting", "server", cfg.Server, "err", err)
	}
	defer conn.Close()

	login := tnc2.LoginLine(call, cfg.Passcode, "aprscore", "1.0", cfg.Filter)
	if _, err := conn.Write([]byte(login + "\r\n")); err != nil {
		logger.Fatal("sending login", "err", err)
	}
	logger.Info("sent login", "line", login)

	tap(conn, logger)
}

func tap(conn net.Conn, logger interface {
	Info(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
}) {
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		line := scanner.Text()

		stamp, err := strftime.Format("%Y-%m-%d %H:%M:%S", time.Now())
		if err != nil {
			stamp = time.Now().UTC().String()
		}

		if tnc2.IsServerComment(line) {
			c := tnc2.DecodeServerLine(line)
			logger.Info("server", "at", stamp, "text", c.Text)
			continue
		}

		f, err := aprsframe.DecodeTNC2(line)
		if err != nil {
			logger.Warn("decode failed", "at", stamp, "line", line, "err", err)
			continue
		}

		logger.Info("packet", "at", stamp, "source", f.Source.String(), "destination", f.Destination.String())
	}
}
