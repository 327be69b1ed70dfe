// Command corvid is a small debug driver for the engine: it runs a
// depth-limited search on a position given as a FEN string (or the Kasparov
// middlegame position by default), and prints the best move and line found.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/corvid-engine/corvid"
	"github.com/corvid-engine/corvid/internal/logging"
)

func main() {
	fen := flag.String("fen", "1rb2rk1/1pqn1p1p/2pN2p1/p1N2P2/Pn1QP3/1P5P/4B1P1/2R2RK1 w - - 1 27", "FEN of the position to search")
	depth := flag.Int("depth", 4, "ply depth to search")
	presort := flag.Bool("presort", true, "order moves by static score before expanding")
	debug := flag.Bool("debug", false, "set the shared logger to debug level")
	flag.Parse()

	corvid.InitZobristKeys()

	if *debug {
		logging.SetLevel(logging.DebugLevel)
	}
	log := logging.GetLog()

	g := corvid.NewGameFromFEN(*fen)
	log.Infof("searching %q to depth %d", *fen, *depth)

	var move corvid.Move
	var score int32
	if *presort {
		move, score = g.SearchDepthPresorted(*depth)
	} else {
		move, score = g.SearchDepth(*depth)
	}

	if move.IsNull() {
		fmt.Println("no legal moves")
		os.Exit(1)
	}

	fmt.Printf("best move: %s%s (score %d)\n",
		corvid.Square2String[move.Start()], corvid.Square2String[move.End()], score)

	line := g.PrincipalVariation()
	fmt.Print("principal variation:")
	for _, m := range line {
		fmt.Printf(" %s%s", corvid.Square2String[m.Start()], corvid.Square2String[m.End()])
	}
	fmt.Println()
}
