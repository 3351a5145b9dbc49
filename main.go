package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hako/durafmt"
	clipboard "golang.design/x/clipboard"
)

var doDebug bool

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

func main() {
	dataDir := flag.String("data", "", "directory for settings, sounds and screenshots")
	flag.BoolVar(&fake, "fake", false, "play against a local world without connecting")
	flag.BoolVar(&doDebug, "debug", false, "verbose/debug logging")
	flag.Parse()

	var dataErr error
	if *dataDir != "" {
		dataErr = useDataDir(*dataDir)
	}

	setupLogging(doDebug)
	if dataErr != nil {
		logError("%v", dataErr)
	}
	started := time.Now()
	defer func() {
		if r := recover(); r != nil {
			logPanic(r)
		}
		logDebug("session lasted %s", durafmt.Parse(time.Since(started)).LimitFirstN(2).Format(shortUnits))
	}()

	loadSettings()
	if gs.WindowWidth < 512 {
		gs.WindowWidth = initialWindowW
	}
	if gs.WindowHeight < 384 {
		gs.WindowHeight = initialWindowH
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard init: %v", err)
	} else {
		clipboardReady = true
	}
	initSoundContext()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer cancel()
	runGame(ctx)
}
