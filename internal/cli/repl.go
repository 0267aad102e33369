package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to.
type execIface interface {
	List(ctx context.Context, args []string) error
	ChangeDir(ctx context.Context, args []string) error
	PrintDir(ctx context.Context) error
	MakeDir(ctx context.Context, args []string) error
	Touch(ctx context.Context, args []string) error
	Cat(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Rename(ctx context.Context, args []string) error
	Move(ctx context.Context, args []string) error
	Remove(ctx context.Context, args []string) error
	Find(ctx context.Context, args []string) error
	Sync(ctx context.Context) error
}

const helpText = `Available commands:
  ls                   list the current folder
  cd <name>|..|/       change folder
  pwd                  print the current path
  mkdir <name>         create a folder
  touch <name>         create an empty file
  cat <name>           print a file
  edit <name>          replace a file's content (empty line to finish)
  mv <name> <new>      rename an item
  move <name> <dest>   move an item into a sibling folder, .. or /
  rm <name>            delete an item and everything below it
  find <text>          filter the current folder by name
  sync                 push pending changes now
  exit | quit          leave the program`

// runREPL reads one command per line and dispatches it to a. Command errors
// are printed and the loop continues. It returns on EOF, exit or quit.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, prompt bool) {
	for {
		if prompt {
			printlnFn(fmt.Sprintf("fd %s> ", statusFn()))
		}
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			printlnFn(helpText)
		case "ls", "l":
			cmdErr = a.List(ctx, args)
		case "cd":
			cmdErr = a.ChangeDir(ctx, args)
		case "pwd":
			cmdErr = a.PrintDir(ctx)
		case "mkdir":
			cmdErr = a.MakeDir(ctx, args)
		case "touch":
			cmdErr = a.Touch(ctx, args)
		case "cat":
			cmdErr = a.Cat(ctx, args)
		case "edit":
			cmdErr = a.Edit(ctx, args)
		case "mv":
			cmdErr = a.Rename(ctx, args)
		case "move":
			cmdErr = a.Move(ctx, args)
		case "rm":
			cmdErr = a.Remove(ctx, args)
		case "find":
			cmdErr = a.Find(ctx, args)
		case "sync":
			cmdErr = a.Sync(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
	}
}
