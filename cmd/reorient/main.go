package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/solarlune/frames"
)

func main() {

	log.SetFlags(0)
	log.SetPrefix("reorient: ")

	defaults := frames.DefaultReorientOptions()

	from := flag.String("from", "blender", "convention the file is in: a name, or right,up,forward axes such as \"X,Z,Y\"")
	to := flag.String("to", "gltf", "convention to convert to")
	bake := flag.Bool("bake", defaults.Bake, "apply the rotation to root nodes instead of adding parent nodes")
	suffix := flag.String("suffix", defaults.WrapperSuffix, "name suffix for added parent nodes")
	list := flag.Bool("list", false, "list known conventions and exit")

	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: reorient [flags] input.gltf|glb output.gltf|glb")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *list {
		for _, name := range frames.ConventionNames() {
			c, _ := frames.LookupConvention(name)
			fmt.Printf("%-10s right %-2s up %-2s forward %-2s %s\n", name, c.Right, c.Up, c.Forward, c.Handedness())
		}
		return
	}

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	fromConv, err := frames.LookupConvention(*from)
	if err != nil {
		log.Fatal(err)
	}

	toConv, err := frames.LookupConvention(*to)
	if err != nil {
		log.Fatal(err)
	}

	options := &frames.ReorientOptions{Bake: *bake, WrapperSuffix: *suffix}

	t, err := frames.ReorientFile(flag.Arg(0), flag.Arg(1), fromConv, toConv, options)
	if err != nil {
		log.Fatal(err)
	}

	name, _ := t.Name()
	if name == "" {
		name = "identity"
	}
	id, _ := t.RotationID()
	rot := frames.RotationByID(id)
	log.Printf("%s -> %s: applied %s %s (up %s becomes %s) to %s", fromConv, toConv, name, rot.Formula(), fromConv.Up, rot.MapAxis(fromConv.Up), flag.Arg(1))

}
