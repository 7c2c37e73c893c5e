// Command kdl wires a handle.Session to the cli and/or httpapi surfaces,
// the way the teacher's main.go wires board/generator state to its uci and
// engine entry points.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jmegner/KillDoctorLuckyWeb-sub000/cli"
	"github.com/jmegner/KillDoctorLuckyWeb-sub000/config"
	"github.com/jmegner/KillDoctorLuckyWeb-sub000/handle"
	"github.com/jmegner/KillDoctorLuckyWeb-sub000/httpapi"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (defaults + KDL_ env overrides still apply)")
	httpAddr := flag.String("http", "", "serve the debug HTTP/websocket API on this address instead of the addr in config (empty uses config's http_addr; pass \"-\" to disable)")
	noCLI := flag.Bool("no-cli", false, "don't start the interactive CLI (useful when only -http is wanted)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("kdl: loading config: %v", err)
	}

	session, err := handle.NewSession(cfg)
	if err != nil {
		log.Fatalf("kdl: starting session: %v", err)
	}
	defer session.Close()

	addr := cfg.HTTPAddr
	if *httpAddr != "" {
		addr = *httpAddr
	}
	if addr != "-" {
		srv := httpapi.NewServer(addr, session)
		go func() {
			fmt.Printf("kdl: serving debug API on %s\n", addr)
			if err := srv.Serve(); err != nil {
				fmt.Fprintln(os.Stderr, "kdl: http server stopped:", err)
			}
		}()
	}

	if *noCLI {
		select {}
	}

	os.Exit(cli.Run(session, os.Stdin, os.Stdout))
}
