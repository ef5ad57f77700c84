// Command huffserve serves Huffman code tables over HTTP.
//
// Usage:
//
//     huffserve [-listen ADDR] [-debug]
//
// The listen address defaults to $HUFFSERVE_LISTEN, then to ":8080".
package main

import (
	"flag"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"

	"github.com/chronos-tachyon/huffmantree/internal/server"
)

const progName = "huffserve"

const defaultListenAddr = ":8080"

var log = logging.MustGetLogger(progName)

var leveledLogBackend logging.LeveledBackend

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatter := logging.MustStringFormatter("%{level:8s} %{module:-12s} | %{message}")
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

func listenAddrFromEnv() string {
	if addr := os.Getenv("HUFFSERVE_LISTEN"); addr != "" {
		return addr
	}
	return defaultListenAddr
}

func main() {
	startLogging()

	flags := flag.NewFlagSet(progName, flag.ExitOnError)
	listenAddr := flags.String("listen", listenAddrFromEnv(), "address to listen on")
	debugLogging := flags.Bool("debug", false, "enable debug logging")
	_ = flags.Parse(os.Args[1:])

	if *debugLogging {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := server.New(logging.MustGetLogger(progName + "/http"))

	log.Infof("listening on %s", *listenAddr)
	if err := r.Run(*listenAddr); err != nil {
		log.Fatalf("serving: %v", err)
	}
}
