// Command sklbench exercises the skip list with a shuffled key workload and
// prints per-phase timings: insert a random permutation of 1..n, search
// every key, iterate the whole list, then delete every key in a second
// random permutation.
package main

import (
	"flag"
	"fmt"
	"log"
	randv2 "math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	skiplist "github.com/kiplingw/SkipList"
)

func main() {
	var n int
	var seed uint64
	var dumpNodes int

	flag.IntVar(&n, "n", 100000, "number of keys to exercise")
	flag.Uint64Var(&seed, "seed", uint64(time.Now().UnixNano()), "seed for the workload shuffle and the list's level selector")
	flag.IntVar(&dumpNodes, "dump", 0, "render the first N nodes of a small sample list before benchmarking")
	flag.Parse()

	if n <= 0 {
		log.Fatal("-n must be positive")
	}

	rng := randv2.New(randv2.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	if dumpNodes > 0 {
		sample := skiplist.New[int, string](skiplist.WithRandSource(randv2.NewPCG(seed, seed)))
		for _, k := range []int{50, 10, 40, 20, 30, 60, 25, 5} {
			sample.Insert(k, strconv.Itoa(k))
		}
		sample.Fdump(os.Stdout, dumpNodes)
	}

	keys := rng.Perm(n)
	list := skiplist.New[int, string](skiplist.WithRandSource(randv2.NewPCG(seed, seed)))

	insertDur := timePhase(func() {
		for _, k := range keys {
			list.Insert(k, strconv.Itoa(k))
		}
	})
	if list.Len() != n {
		log.Fatalf("expected %d elements after insert, got %d", n, list.Len())
	}

	searchDur := timePhase(func() {
		for _, k := range keys {
			if it := list.Search(k); it == list.End() {
				log.Fatalf("key %d not found", k)
			}
		}
	})

	iterateDur := timePhase(func() {
		count := 0
		for range list.All() {
			count++
		}
		if count != n {
			log.Fatalf("iteration visited %d of %d elements", count, n)
		}
	})

	deleteKeys := rng.Perm(n)
	deleteDur := timePhase(func() {
		for _, k := range deleteKeys {
			if list.Delete(k) != 1 {
				log.Fatalf("delete of key %d removed nothing", k)
			}
		}
	})
	if list.Len() != 0 {
		log.Fatalf("expected empty list after deletes, got %d elements", list.Len())
	}

	fmt.Printf("n: %d\nseed: %d\n", n, seed)

	rows := [][]string{
		phaseRow("Insert", insertDur, n),
		phaseRow("Search", searchDur, n),
		phaseRow("Iterate", iterateDur, n),
		phaseRow("Delete", deleteDur, n),
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Phase", "Ops", "Total(ms)", "Ops/s"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

func timePhase(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

func phaseRow(name string, d time.Duration, ops int) []string {
	ms := float64(d.Microseconds()) / 1000.0
	thr := 0.0
	if d > 0 {
		thr = float64(ops) / d.Seconds()
	}
	return []string{
		name,
		fmt.Sprintf("%d", ops),
		fmt.Sprintf("%.3f", ms),
		fmt.Sprintf("%.2f", thr),
	}
}
