package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/parselib"
	"github.com/iw2rmb/parselib/inspect"
)

const sampleText = `hello_world 42 "he said \"hi\"" (1,2,3) (a,b,c)`

type options struct {
	text    string
	file    string
	watch   bool
	debug   string
	version bool
}

func parseFlags(args []string) (options, error) {
	var opt options
	fs := flag.NewFlagSet("parselib", flag.ContinueOnError)
	fs.StringVar(&opt.text, "text", "", "text to inspect")
	fs.StringVar(&opt.file, "file", "", "read the text to inspect from a file")
	fs.BoolVar(&opt.watch, "watch", false, "reload -file whenever it changes")
	fs.StringVar(&opt.debug, "debug", "", "write a debug log to this file")
	fs.BoolVar(&opt.version, "version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if opt.text != "" && opt.file != "" {
		return options{}, errors.New("-text and -file are mutually exclusive")
	}
	if opt.watch && opt.file == "" {
		return options{}, errors.New("-watch requires -file")
	}
	return opt, nil
}

func loadText(opt options) (string, error) {
	switch {
	case opt.file != "":
		data, err := os.ReadFile(opt.file)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case opt.text != "":
		return opt.text, nil
	default:
		return sampleText, nil
	}
}

func run(opt options) error {
	if opt.version {
		fmt.Println("parselib", parselib.VersionTag())
		return nil
	}

	if opt.debug != "" {
		f, err := tea.LogToFile(opt.debug, "parselib")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	text, err := loadText(opt)
	if err != nil {
		return err
	}
	log.Printf("loaded %d bytes", len(text))

	m := model{inspector: inspect.New(inspect.Config{
		Text:  text,
		Style: inspect.DefaultStyle(),
	})}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if opt.watch {
		stop, err := watchFile(opt.file, p.Send)
		if err != nil {
			return err
		}
		defer func() {
			if err := stop(); err != nil {
				log.Printf("stop watcher: %v", err)
			}
		}()
	}

	_, err = p.Run()
	return err
}

func main() {
	opt, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err == nil {
		err = run(opt)
	}
	if err != nil {
		_, _ = os.Stderr.WriteString("parselib: " + err.Error() + "\n")
		os.Exit(1)
	}
}
