// Command bt is the example CLI driver. It reads a tree collection
// from a file or stdin, parses and builds each tree, and ticks each
// to completion (or one iteration), printing tree names and
// per-iteration banners, with a YAML config, a -list-leaves/
// -leaves-filter registry dump, and a post-tick -query projection.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mb0/glob"

	"github.com/fuhongbo/behaviortree"
	"github.com/fuhongbo/behaviortree/logging"
	"github.com/fuhongbo/behaviortree/registry"
	"github.com/fuhongbo/behaviortree/store"
)

func main() {
	var (
		configPath    = flag.String("config", "", "path to a YAML config file")
		listLeaves    = flag.Bool("list-leaves", false, "print the standard leaf registry, name-ordered, and exit")
		leavesFilter  = flag.String("leaves-filter", "", "glob restricting -list-leaves output (overrides config)")
		query         = flag.String("query", "", "JMESPath expression projecting the context after the final tick (overrides config)")
		once          = flag.Bool("once", false, "tick each tree exactly once instead of to completion")
		maxIterations = flag.String("max-iterations", "", "override the config file's maxIterations safety cap")
		blackboard    = flag.Bool("blackboard", false, "enable the opt-in blackboard grammar extension")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bt: loading config: %v\n", err)
		os.Exit(1)
	}
	logging.SetLevel(cfg.LogLevel)

	filter := cfg.LeavesFilter
	if *leavesFilter != "" {
		filter = *leavesFilter
	}
	q := cfg.Query
	if *query != "" {
		q = *query
	}
	iterations := resolveMaxIterations(cfg, *maxIterations)

	ordered := standardLeavesOrdered()

	if *listLeaves {
		if err := runListLeaves(os.Stdout, ordered, filter); err != nil {
			fmt.Fprintf(os.Stderr, "bt: %v\n", err)
			os.Exit(1)
		}
		return
	}

	src, err := readSource(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "bt: reading source: %v\n", err)
		os.Exit(1)
	}

	var opts []behaviortree.Option
	if *blackboard {
		opts = append(opts, behaviortree.WithBlackboard())
	}
	factories, err := behaviortree.Parse(src, registry.Layered{ordered}, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bt: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Starting process")
	for _, f := range factories {
		if err := runTree(os.Stdout, f, iterations, *once, q); err != nil {
			fmt.Fprintf(os.Stderr, "bt: tree %q: %v\n", f.Name(), err)
			os.Exit(1)
		}
	}
}

func readSource(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(args[0])
	return string(data), err
}

func runTree(w io.Writer, f *behaviortree.TreeFactory, maxIterations int, justOnce bool, query string) error {
	fmt.Fprintf(w, "Testing tree %s\n", f.Name())
	instance, err := f.Optimize()
	if err != nil {
		return err
	}
	ctx := store.NewMemContext()

	i := 0
	fmt.Fprintf(w, "-------- Iteration %d ---------\n", i)
	for {
		result, err := instance.Tick(ctx)
		ctx.EndTick()
		if err != nil {
			return err
		}
		if result != behaviortree.Running || justOnce {
			break
		}
		i++
		if i >= maxIterations {
			fmt.Fprintf(w, "-------- stopped after %d iterations (safety cap) ---------\n", i)
			break
		}
		fmt.Fprintf(w, "-------- Iteration %d ---------\n", i)
	}
	fmt.Fprintln(w, "------- End of tree ----------")

	if query != "" {
		if err := runQuery(w, ctx, query); err != nil {
			return fmt.Errorf("query: %w", err)
		}
	}
	return nil
}

func runListLeaves(w io.Writer, ordered *registry.OrderedRegistry, filter string) error {
	for _, name := range ordered.Names() {
		if filter != "" {
			matched, err := glob.Match(filter, name)
			if err != nil {
				return fmt.Errorf("leaves-filter %q: %w", filter, err)
			}
			if !matched {
				continue
			}
		}
		fmt.Fprintln(w, name)
	}
	return nil
}
