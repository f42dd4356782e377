package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/automoto/tilefarm/config"
	"github.com/automoto/tilefarm/shared/savedata"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: savetool [flags] dump | export FILE | import FILE | reset\n")
	flag.PrintDefaults()
}

func main() {
	appName := flag.String("app", config.Save.AppName, "Save location name")
	key := flag.String("key", config.Save.Key, "Save record key")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	m := &savedata.Manager{Store: savedata.OpenStore(*appName), Key: *key}

	var err error
	switch cmd := flag.Arg(0); cmd {
	case "dump":
		err = dump(m)
	case "export":
		err = export(m, fileArg())
	case "import":
		err = importFile(m, fileArg())
	case "reset":
		err = m.Reset()
		if err == nil {
			log.Printf("Erased save %q", *key)
		}
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("savetool: %v", err)
	}
}

func fileArg() string {
	if flag.NArg() < 2 {
		usage()
		os.Exit(2)
	}
	return flag.Arg(1)
}

func dump(m *savedata.Manager) error {
	raw, err := m.Raw()
	if errors.Is(err, savedata.ErrNoSave) {
		fmt.Println("no save")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println(string(raw))
	s, rep := savedata.Decode(raw, savedata.DefaultState(config.Player.SpawnX, config.Player.SpawnY))
	if rep.Unreadable {
		fmt.Println("record is unreadable")
		return nil
	}
	fmt.Printf("coins=%d carrots=%d player=(%.2f,%.2f,%s) plots=%d\n",
		s.Inventory.Coins, s.Inventory.Carrots, s.Player.X, s.Player.Y, s.Player.Facing, s.Plots.Len())
	if !rep.Clean() {
		fmt.Printf("repairs on load: defaulted %v, skipped %d plots\n", rep.Defaulted, rep.SkippedPlots)
	}
	return nil
}

func export(m *savedata.Manager, path string) error {
	raw, err := m.Raw()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := savedata.WriteSnapshot(f, raw); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	log.Printf("Exported save to %s", path)
	return nil
}

func importFile(m *savedata.Manager, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	raw, err := savedata.ReadSnapshot(f)
	if err != nil {
		return err
	}
	rep, err := m.Import(raw)
	if err != nil {
		return err
	}
	if !rep.Clean() {
		log.Printf("Warning: imported save will be repaired on load: defaulted %v, skipped %d plots", rep.Defaulted, rep.SkippedPlots)
	}
	log.Printf("Imported save from %s", path)
	return nil
}
