/*
	Copyright (C) 2023 flxj(https://github.com/flxj)

	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at

		http://www.apache.org/licenses/LICENSE-2.0

	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

// Command planarity is the interactive menu front end for the engine,
// modeled on the original planarity.c command loop: generate a random
// graph or read one from a file, embed it, and report the result.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	graphlib "github.com/flxj/planarity"
	"github.com/flxj/planarity/planar"
)

func main() {
	file := flag.String("f", "", "read an adjacency-list file instead of prompting interactively")
	flag.Parse()

	in := bufio.NewScanner(os.Stdin)

	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		g, err := graphlib.ReadAdjacencyList(f)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		runEmbed(g, planar.Planar)
		return
	}

	for {
		fmt.Print(menu)
		if !in.Scan() {
			return
		}
		switch strings.TrimSpace(in.Text()) {
		case "m":
			g := randomGraph(in)
			runEmbed(g, planar.Planar)
		case "n":
			g := randomGraph(in)
			runEmbed(g, planar.Outerplanar)
		case "r":
			g := readGraph(in)
			if g != nil {
				runEmbed(g, planar.Planar)
			}
		case "c":
			g := readGraph(in)
			if g != nil {
				colours, err := graphlib.FourColor(g)
				if err != nil {
					fmt.Println("error:", err)
					break
				}
				fmt.Printf("colouring: %v\n", colours)
			}
		case "q":
			return
		default:
			fmt.Println("unrecognized command")
		}
	}
}

const menu = `
==================================================
m) Embed a random graph (planar)
n) Embed a random graph (outerplanar)
r) Read an adjacency-list graph from stdin and embed it
c) Read an adjacency-list graph from stdin and four-colour it
q) Quit
Enter command: `

func randomGraph(in *bufio.Scanner) graphlib.Graph[int, any, int] {
	fmt.Print("Enter number of vertices: ")
	n := readInt(in, 10)
	if n < 1 {
		n = 10
	}

	g, err := graphlib.NewGraph[int, any, int](false, "")
	if err != nil {
		fmt.Println("error:", err)
		return nil
	}
	for i := 0; i < n; i++ {
		if err := g.AddVertex(graphlib.Vertex[int, any]{Key: i}); err != nil {
			fmt.Println("error:", err)
			return nil
		}
	}

	pg, ki, err := graphlib.BuildEngineGraph[int, any, int](g)
	if err != nil {
		fmt.Println("error:", err)
		return nil
	}
	if err := planar.CreateRandomGraph(pg); err != nil {
		fmt.Println("error:", err)
		return nil
	}
	for _, e := range pg.EdgeList() {
		if err := g.AddEdge(graphlib.Edge[int, int]{Head: ki.Key(e[0]), Tail: ki.Key(e[1])}); err != nil {
			fmt.Println("error:", err)
			return nil
		}
	}
	return g
}

func readGraph(in *bufio.Scanner) graphlib.Graph[int, any, int] {
	fmt.Println("Enter adjacency-list lines (\"id: n1 n2 ... 0\"), blank line to finish:")
	var lines []string
	for in.Scan() {
		line := in.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	g, err := graphlib.ReadAdjacencyList(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		fmt.Println("error:", err)
		return nil
	}
	return g
}

func runEmbed(g graphlib.Graph[int, any, int], flags planar.Flags) {
	if g == nil {
		return
	}
	emb, err := graphlib.Embed(g, flags)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	switch emb.Result {
	case planar.OK:
		fmt.Println("Planar graph successfully embedded")
	case planar.NonEmbeddable:
		fmt.Println("Nonplanar graph successfully justified")
		if emb.Obstruction != nil {
			fmt.Printf("obstruction: %s on vertices %v\n", emb.Obstruction.Minor, emb.Obstruction.Vertices)
		}
	default:
		fmt.Println("Failure occurred")
	}
}

func readInt(in *bufio.Scanner, fallback int) int {
	if !in.Scan() {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(in.Text()))
	if err != nil {
		return fallback
	}
	return n
}
