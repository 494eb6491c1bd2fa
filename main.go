package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aarrwnh/intvec/console"
	"github.com/aarrwnh/intvec/vector"
)

var (
	seed        = flag.Uint64("seed", 0, "random seed, 0 seeds from the current time")
	interactive = flag.Bool("i", false, "read commands from stdin after the demo")
	tui         = flag.Bool("tui", false, "open the terminal UI after the demo")
)

var (
	address  string
	ws       bool
	certPath string
	keyPath  string
)

func init() {
	flag.StringVar(&certPath, "cert", "", "path to SSL/TLS certificate file")
	flag.StringVar(&keyPath, "key", "", "path to SSL/TLS private key file")
	flag.StringVar(&address, "a", "127.0.0.1:50001", "address to use")
	flag.BoolVar(&ws, "ws", false, "use websockets")
}

func main() {
	flag.Parse()

	src := vector.TimeSource()
	if *seed != 0 {
		src = vector.NewSource(*seed)
	}

	vec := vector.New()
	if err := demo(os.Stdout, vec, src); err != nil {
		log.Fatal(err)
	}

	if !*interactive && !*tui && !ws {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(interrupt)

	app := console.NewApp(vec, src, os.Stdout, cancel)

	if ws {
		go func() {
			cfg := console.Config{Address: address, CertPath: certPath, KeyPath: keyPath}
			if err := console.StartWebsocket(app, cfg); err != nil {
				log.Println(err)
				cancel()
			}
		}()
	}

	switch {
	case *tui:
		go func() {
			if err := console.RunTUI(app); err != nil {
				log.Println(err)
			}
			cancel()
		}()
	case *interactive:
		go app.Start(os.Stdin)
	}

	select {
	case <-ctx.Done():
		log.Println("Exiting program")
	case sig := <-interrupt:
		log.Printf("Caught signal: %v\n", sig)
	}
}
