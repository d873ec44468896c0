// Command gfalgo is a thin textual-form driver over the grafalgo
// containers, exercising each container's toString contract (spec.md
// §6.1) end to end. It is not part of the core library.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jtalgo/grafalgo/internal/adt"
	"github.com/jtalgo/grafalgo/internal/cli"
	"github.com/jtalgo/grafalgo/internal/gferrors"
	"github.com/jtalgo/grafalgo/internal/glist"
	"github.com/jtalgo/grafalgo/internal/heap"
	"github.com/jtalgo/grafalgo/internal/list"
	"github.com/jtalgo/grafalgo/internal/tree"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	sub := os.Args[1]
	args := os.Args[2:]

	switch sub {
	case "help", "-h", "--help":
		usage()
	case "version", "-v", "--version":
		cli.PrintVersion("gfalgo", hasFlag(args, "--json", "-j"))
	case "list":
		must(runList(args))
	case "dlist":
		must(runDlist(args))
	case "djsets":
		must(runDjsets(args))
	case "dheap":
		must(runDheap(args))
	case "bst":
		must(runBst(args))
	case "glist":
		must(runGlist(args))
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand: %s\n", sub)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("gfalgo — textual-form driver for the grafalgo containers")
	fmt.Println()
	fmt.Println("Usage: gfalgo <command> [-n N] [op ...]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  version              print version information")
	fmt.Println("  list -n N [op ...]   build a List and print it")
	fmt.Println("  dlist -n N [op ...]  build a Dlist and print it")
	fmt.Println("  djsets -n N [op ...] build a DjSets and print it")
	fmt.Println("  dheap -n N -d D [op ...]   build a Dheap of int keys and print it")
	fmt.Println("  bst -n N [op ...]    build a Bst of int keys and print it")
	fmt.Println("  glist -n N [op ...]  build a Glist of string values and print it")
	fmt.Println()
	fmt.Println("ops for list/dlist: add:h[:after]  del:h")
	fmt.Println("ops for djsets:     link:x:y")
	fmt.Println("ops for dheap/bst:  ins:h:key")
	fmt.Println("ops for glist:      add:value[:after]  del:h")
}

func hasFlag(args []string, names ...string) bool {
	for _, a := range args {
		for _, name := range names {
			if a == name {
				return true
			}
		}
	}
	return false
}

func must(err error) {
	if err == nil {
		return
	}
	cli.ExitWithError("%v", err)
}

func parseFlags(name string, args []string, withArity bool) (*flag.FlagSet, *int, *int, []string) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	n := fs.Int("n", 16, "handle space size")
	var d *int
	if withArity {
		d = fs.Int("d", 2, "heap arity")
	}
	if err := fs.Parse(args); err != nil {
		cli.ExitWithError("%v", err)
	}
	return fs, n, d, fs.Args()
}

// splitOp splits "verb:a:b" into ["verb", "a", "b"], tolerating missing
// trailing fields.
func splitOp(op string) []string { return strings.Split(op, ":") }

func runList(args []string) error {
	_, n, _, ops := parseFlags("list", args, false)
	l := list.NewList(*n)
	for _, op := range ops {
		f := splitOp(op)
		switch f[0] {
		case "add":
			h, err := adt.ParseHandle(f[1])
			if err != nil {
				return err
			}
			after := adt.Handle(0)
			if len(f) > 2 {
				after, err = adt.ParseHandle(f[2])
				if err != nil {
					return err
				}
			}
			if err := l.Insert(h, after); err != nil {
				return err
			}
		case "del":
			h, err := adt.ParseHandle(f[1])
			if err != nil {
				return err
			}
			pred := adt.Handle(0)
			for x := l.First(); x != 0 && x != h; x = l.Next(x) {
				pred = x
			}
			if _, err := l.RemoveNext(pred); err != nil {
				return err
			}
		default:
			return gferrors.InputFormat("gfalgo list", "unknown op", map[string]any{"op": op})
		}
	}
	fmt.Println(l.String())
	return nil
}

func runDlist(args []string) error {
	_, n, _, ops := parseFlags("dlist", args, false)
	dl := list.NewDlist(*n)
	for _, op := range ops {
		f := splitOp(op)
		switch f[0] {
		case "add":
			h, err := adt.ParseHandle(f[1])
			if err != nil {
				return err
			}
			after := adt.Handle(0)
			if len(f) > 2 {
				after, err = adt.ParseHandle(f[2])
				if err != nil {
					return err
				}
			}
			if err := dl.Insert(h, after); err != nil {
				return err
			}
		case "del":
			h, err := adt.ParseHandle(f[1])
			if err != nil {
				return err
			}
			if err := dl.Remove(h); err != nil {
				return err
			}
		default:
			return gferrors.InputFormat("gfalgo dlist", "unknown op", map[string]any{"op": op})
		}
	}
	fmt.Println(dl.String())
	return nil
}

func runDjsets(args []string) error {
	_, n, _, ops := parseFlags("djsets", args, false)
	ds := list.NewDjSets(*n)
	for _, op := range ops {
		f := splitOp(op)
		switch f[0] {
		case "link":
			x, err := adt.ParseHandle(f[1])
			if err != nil {
				return err
			}
			y, err := adt.ParseHandle(f[2])
			if err != nil {
				return err
			}
			if _, err := ds.Link(ds.FindRoot(x), ds.FindRoot(y)); err != nil {
				return err
			}
		default:
			return gferrors.InputFormat("gfalgo djsets", "unknown op", map[string]any{"op": op})
		}
	}
	fmt.Println(ds.String())
	return nil
}

func runDheap(args []string) error {
	_, n, d, ops := parseFlags("dheap", args, true)
	dh := heap.NewDheap(*n, *d, func(a, b int) bool { return a < b })
	for _, op := range ops {
		f := splitOp(op)
		switch f[0] {
		case "ins":
			h, err := adt.ParseHandle(f[1])
			if err != nil {
				return err
			}
			k, err := strconv.Atoi(f[2])
			if err != nil {
				return gferrors.InputFormat("gfalgo dheap", "bad key", map[string]any{"key": f[2]})
			}
			if err := dh.Insert(h, k); err != nil {
				return err
			}
		default:
			return gferrors.InputFormat("gfalgo dheap", "unknown op", map[string]any{"op": op})
		}
	}
	fmt.Println(dh.String())
	return nil
}

func runBst(args []string) error {
	_, n, _, ops := parseFlags("bst", args, false)
	b := tree.NewBst(*n, func(a, b int) bool { return a < b })
	var root adt.Handle
	for _, op := range ops {
		f := splitOp(op)
		switch f[0] {
		case "ins":
			h, err := adt.ParseHandle(f[1])
			if err != nil {
				return err
			}
			k, err := strconv.Atoi(f[2])
			if err != nil {
				return gferrors.InputFormat("gfalgo bst", "bad key", map[string]any{"key": f[2]})
			}
			b.SetKey(h, k)
			root, _ = b.Insert(h, root)
		default:
			return gferrors.InputFormat("gfalgo bst", "unknown op", map[string]any{"op": op})
		}
	}
	fmt.Println(b.String())
	return nil
}

func runGlist(args []string) error {
	_, n, _, ops := parseFlags("glist", args, false)
	g := glist.NewGlist[string](*n)
	for _, op := range ops {
		f := splitOp(op)
		switch f[0] {
		case "add":
			after := adt.Handle(0)
			if len(f) > 2 {
				h, err := adt.ParseHandle(f[2])
				if err != nil {
					return err
				}
				after = h
			}
			if _, err := g.Insert(f[1], after); err != nil {
				return err
			}
		case "del":
			h, err := adt.ParseHandle(f[1])
			if err != nil {
				return err
			}
			if err := g.Remove(h); err != nil {
				return err
			}
		default:
			return gferrors.InputFormat("gfalgo glist", "unknown op", map[string]any{"op": op})
		}
	}
	fmt.Println(g.String())
	return nil
}
