package main

import (
	"fmt"
	"os"
	"runtime"

	"golang.org/x/term"

	"mkicons/internal/doctor"
	"mkicons/internal/draw"
	"mkicons/internal/generator"
	"mkicons/internal/paths"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	args := os.Args[1:]
	root := "."

	// Parse flags
	filtered := args[:0]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--root", "-r":
			if i+1 < len(args) {
				root = args[i+1]
				i++
			} else {
				fmt.Fprintf(os.Stderr, "Error: --root requires a directory path\n")
				os.Exit(1)
			}
		default:
			filtered = append(filtered, args[i])
		}
	}

	cmd := "generate"
	if len(filtered) > 0 {
		cmd = filtered[0]
	}

	switch cmd {
	case "help", "-h", "--help":
		printUsage()
	case "version", "-V", "--version":
		printVersion()
	case "generate":
		runGenerator(root, false)
	case "draw":
		runGenerator(root, true)
	case "verify":
		verifyIcons(root)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", cmd)
		fmt.Fprintf(os.Stderr, "Run 'mkicons help' for usage.\n")
		os.Exit(1)
	}
}

func newGenerator(root string) *generator.Generator {
	g := generator.New(root, os.Stdout)
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		g.Marks = generator.ASCIIMarks
	}
	return g
}

func runGenerator(root string, drawn bool) {
	g := newGenerator(root)
	var err error
	if drawn {
		err = g.RunRendered(draw.Render)
	} else {
		err = g.Run()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func verifyIcons(root string) {
	dir := paths.IconsDir(root)
	fmt.Printf("Verifying icon files in %s\n", dir)
	if err := doctor.Report(dir, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("mkicons %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage() {
	fmt.Printf("mkicons %s - Generate placeholder extension icons\n", version)
	fmt.Println(`
Usage:
  mkicons [options] [command]

Options:
  --root, -r <path>      Project root (default: current directory)

Commands:
  generate               Write embedded placeholder icons (default)
  draw                   Draw placeholder icons instead of using embedded data
  verify                 Check the generated icons under <root>/public/icons
  version, -V            Show version and build date
  help, -h, --help       Show this help message

Output:
  icon-16.png, icon-32.png, icon-48.png, icon-128.png
  written under <root>/public/icons/ (created if missing)

Examples:
  mkicons                          Generate icons under ./public/icons
  mkicons -r ~/src/extension       Generate into another project
  mkicons draw                     Regenerate drawn placeholders
  mkicons verify                   Verify the generated files`)
}
