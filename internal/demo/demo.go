// Package demo drives both containers the way the command line tool
// presents them: a bucket distribution for the hash table and an
// in-order walk of the tree.
package demo

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"github.com/scottcagno/containers/internal/config"
	"github.com/scottcagno/containers/internal/sample"
	"github.com/scottcagno/containers/pkg/hashmap/chained"
	"github.com/scottcagno/containers/pkg/tree/bst"
)

type StudentTable = chained.HashMap[sample.FeaturePair, sample.Student]

var treeKeys = []int{50, 30, 70, 20, 40, 60, 80}

var treeNames = map[int]string{
	20: "Twenty",
	30: "Thirty",
	40: "Forty",
	50: "Fifty",
	60: "Sixty",
	70: "Seventy",
	80: "Eighty",
}

// FillTable inserts cfg.Iterations random keys into a new table with
// cfg.Buckets buckets.
func FillTable(cfg config.Config, seed int64) (*StudentTable, error) {
	hm, err := chained.New[sample.FeaturePair, sample.Student](cfg.Buckets)
	if err != nil {
		return nil, errors.Wrap(err, "demo: creating table")
	}
	gen := sample.NewGenerator(seed, cfg.MaxFeature)
	for i := 0; i < cfg.Iterations; i++ {
		hm.Put(gen.Pair(), gen.Student(i))
	}
	return hm, nil
}

// BuildTree returns the seven entry tree printed by the driver.
func BuildTree() *bst.Tree[int, string] {
	tree := bst.New[int, string]()
	for _, k := range treeKeys {
		tree.Put(k, treeNames[k])
	}
	return tree
}

// RenderTable writes the bucket distribution of hm to out.
func RenderTable(out io.Writer, hm *StudentTable) error {
	sizes := hm.BucketSizes()
	data := pterm.TableData{{"Bucket", "Elements"}}
	lo, hi := 0, 0
	for i, n := range sizes {
		data = append(data, []string{strconv.Itoa(i), humanize.Comma(int64(n))})
		if n < sizes[lo] {
			lo = i
		}
		if n > sizes[hi] {
			hi = i
		}
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "demo: rendering bucket table")
	}
	fmt.Fprintln(out, "HashTable Bucket Distribution:")
	fmt.Fprintln(out, table)
	fmt.Fprintf(out, "entries: %s, buckets: %s, load factor: %.2f\n",
		humanize.Comma(int64(hm.Len())), humanize.Comma(int64(hm.BucketCount())), hm.LoadFactor())
	if len(sizes) > 0 {
		fmt.Fprintf(out, "smallest bucket: %d (%d elements), largest bucket: %d (%d elements)\n",
			lo, sizes[lo], hi, sizes[hi])
	}
	return nil
}

// RenderTree writes the in-order traversal of tree to out.
func RenderTree(out io.Writer, tree *bst.Tree[int, string]) {
	fmt.Fprintln(out, "In-order Traversal of BST:")
	it := tree.Iter()
	for it.Next() {
		e := it.Entry()
		fmt.Fprintf(out, "key is %d and value is %s\n", e.Key, e.Value)
	}
	fmt.Fprintf(out, "\nTotal size of BST: %d\n", tree.Len())
}

// Run executes both demonstrations, writing the reports to out.
func Run(cfg config.Config, log logrus.FieldLogger, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "demo: invalid config")
	}
	seed := cfg.ResolveSeed()
	log.WithFields(logrus.Fields{
		"buckets":    cfg.Buckets,
		"iterations": cfg.Iterations,
		"seed":       seed,
	}).Info("filling hash table")

	hm, err := FillTable(cfg, seed)
	if err != nil {
		return err
	}
	log.WithField("entries", hm.Len()).Debug("hash table filled")
	if err := RenderTable(out, hm); err != nil {
		return err
	}

	fmt.Fprintln(out, "\n===============================")
	fmt.Fprintln(out, "Demonstrating BST Traversal")
	fmt.Fprintln(out, "===============================")
	fmt.Fprintln(out)

	tree := BuildTree()
	log.WithField("entries", tree.Len()).Info("built tree")
	RenderTree(out, tree)
	return nil
}
