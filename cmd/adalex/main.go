package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/amirrezaask/adalex"
	"github.com/amirrezaask/adalex/byteutils"
	"github.com/amirrezaask/adalex/lexers"
)

type Command func(a *App, args []string) error

type Commands map[string]Command

// App is the state of one invocation. It is dumped into the crash log.
type App struct {
	Cfg      *adalex.Config
	Out      io.Writer
	FileName string
	FileType adalex.FileType
	Content  []byte
}

var commands = Commands{
	"tokens":    tokensCommand,
	"highlight": highlightCommand,
	"kinds":     kindsCommand,
	"brackets":  bracketsCommand,
	"first":     firstCommand,
	"deps":      depsCommand,
}

const usage = `usage: adalex [-cfg path] <command> [args]

commands:
  tokens <file>      print every token with its position
  highlight <file>   print the file with syntax colors
  kinds <query>      fuzzy search token kinds
  brackets <file>    report bracket pairs and unmatched brackets
  first <file>       print the first token
  deps <file>...     print the units named by with clauses
`

func main() {
	var configPath string
	flag.StringVar(&configPath, "cfg", path.Join(os.Getenv("HOME"), ".adalex"), "path to config file, defaults to: ~/.adalex")
	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage) }
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("adalex: ")

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	command, exists := commands[flag.Arg(0)]
	if !exists {
		log.Printf("unknown command %q", flag.Arg(0))
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := adalex.ReadConfig(configPath)
	if err != nil {
		log.Fatalf("reading config: %v", err)
	}

	out := bufio.NewWriter(os.Stdout)
	app := &App{Cfg: cfg, Out: out}
	defer writeCrashLog(app)

	if err := command(app, flag.Args()[1:]); err != nil {
		out.Flush()
		log.Fatal(err)
	}
	if err := out.Flush(); err != nil {
		log.Fatal(err)
	}
}

func writeCrashLog(app *App) {
	if r := recover(); r != nil {
		crashlog := path.Join(os.Getenv("HOME"), fmt.Sprintf("adalex-crashlog-%d", time.Now().Unix()))
		err := os.WriteFile(crashlog, []byte(fmt.Sprintf("%v\n%s\n%s", r, debug.Stack(), spew.Sdump(app))), 0644)
		if err != nil {
			log.Printf("writing crash log: %v", err)
		}
		log.Fatalf("crashed: %v, see %s", r, crashlog)
	}
}

// load reads the single file argument of a command into a.
func (a *App) load(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected one file, got %d arguments", len(args))
	}
	bs, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	a.FileName = args[0]
	a.FileType = adalex.FileTypeFor(args[0])
	a.Content = bs
	return nil
}

func tokensCommand(a *App, args []string) error {
	if err := a.load(args); err != nil {
		return err
	}
	lines := byteutils.NewLineIndex(a.Content)
	l := a.FileType.NewLexer()
	tokens, err := lexers.Collect(l, a.Content, 0, len(a.Content))
	if err != nil {
		return err
	}
	for _, tok := range tokens {
		line, column := lines.Position(tok.Start)
		fmt.Fprintf(a.Out, "%d:%d\t%s\t%s\n", line, column, tok.Type, strconv.Quote(string(tok.Text(a.Content))))
	}
	return nil
}

func highlightCommand(a *App, args []string) error {
	if err := a.load(args); err != nil {
		return err
	}
	hs, err := adalex.Highlights(a.Cfg, a.FileType.NewLexer(), a.Content, 0, len(a.Content))
	if err != nil {
		return err
	}
	tabSize := a.Cfg.TabSize
	if tabSize <= 0 {
		tabSize = a.FileType.TabSize
	}
	return adalex.WriteANSI(a.Out, a.Content, hs, tabSize)
}

func kindsCommand(a *App, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected one query, got %d arguments", len(args))
	}
	for _, item := range adalex.FindKinds(args[0]) {
		spelling, _ := item.Item.Spelling()
		fmt.Fprintf(a.Out, "%d\t%s\t%s\t%s\n", item.Score, item.Item, item.Item.Category(), spelling)
	}
	return nil
}

func bracketsCommand(a *App, args []string) error {
	if err := a.load(args); err != nil {
		return err
	}
	lines := byteutils.NewLineIndex(a.Content)
	at := func(tok lexers.Token) string {
		line, column := lines.Position(tok.Start)
		return fmt.Sprintf("%s:%d:%d", a.FileName, line, column)
	}
	b := adalex.PairBrackets(lexers.Tokens(a.FileType.NewLexer(), a.Content))
	for _, p := range b.Pairs {
		fmt.Fprintf(a.Out, "%s\t%s\t%s\n", at(p.Open), at(p.Close), p.Open.Type)
	}
	for _, tok := range b.Unmatched {
		line, _ := lines.Position(tok.Start)
		fmt.Fprintf(a.Out, "%s\tunmatched %s\n\t%s\n", at(tok), tok.Type, lines.Line(line))
	}
	if len(b.Unmatched) > 0 {
		return fmt.Errorf("%s: %d unmatched brackets", a.FileName, len(b.Unmatched))
	}
	return nil
}

func firstCommand(a *App, args []string) error {
	if err := a.load(args); err != nil {
		return err
	}
	tok, ok := lexers.FirstToken(a.FileType.NewLexer(), a.Content)
	if !ok {
		return fmt.Errorf("%s: empty file", a.FileName)
	}
	fmt.Fprintf(a.Out, "%s\t%s\n", tok, strconv.Quote(string(tok.Text(a.Content))))
	return nil
}

func depsCommand(a *App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("expected at least one file")
	}
	for _, name := range args {
		if err := a.load([]string{name}); err != nil {
			return err
		}
		clauses, err := adalex.ParseContextClauses(name, a.Content)
		if err != nil {
			return err
		}
		for _, dep := range clauses.Dependencies() {
			fmt.Fprintf(a.Out, "%s\t%s\n", name, dep)
		}
	}
	return nil
}
